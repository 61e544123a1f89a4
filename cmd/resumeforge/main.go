// Package main provides the entry point for the resume-forge CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resumeforge",
	Short: "ATS-friendly resume converter",
	Long:  "resume-forge converts structured resume JSON into ATS-friendly HTML, PDF, and DOCX documents, normalizing dates and section headers along the way.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
