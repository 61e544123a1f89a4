package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-forge/internal/config"
)

var initConfigCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write a sample configuration file with all defaults",
	RunE:  runInitConfig,
}

var initConfigOutput string

func init() {
	initConfigCmd.Flags().StringVarP(&initConfigOutput, "out", "o", "config.json", "Path to write the sample config file")

	rootCmd.AddCommand(initConfigCmd)
}

func runInitConfig(_ *cobra.Command, _ []string) error {
	if err := config.WriteSample(initConfigOutput); err != nil {
		return fmt.Errorf("failed to write sample config: %w", err)
	}
	fmt.Printf("Wrote sample config: %s\n", initConfigOutput)
	return nil
}
