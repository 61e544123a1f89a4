package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-forge/internal/store"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Retrieve a stored output document from a previous conversion run",
	Long: `Looks up a conversion run by ID and writes one of its stored output
documents (html, pdf, or docx) back out to a file.`,
	RunE: runFetch,
}

var (
	fetchRunID       string
	fetchFormat      string
	fetchOutput      string
	fetchDatabaseURL string
)

func init() {
	fetchCmd.Flags().StringVarP(&fetchRunID, "run", "r", "", "Conversion run ID (required)")
	fetchCmd.Flags().StringVarP(&fetchFormat, "format", "f", "html", "Output format to retrieve: html, pdf, docx")
	fetchCmd.Flags().StringVarP(&fetchOutput, "out", "o", "", "Path to write the document (defaults to <run-id>.<format>)")
	fetchCmd.Flags().StringVar(&fetchDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	if err := fetchCmd.MarkFlagRequired("run"); err != nil {
		panic(fmt.Sprintf("failed to mark run flag as required: %v", err))
	}

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(_ *cobra.Command, _ []string) error {
	databaseURL := fetchDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("database URL is required (set --db-url or DATABASE_URL)")
	}

	runID, err := uuid.Parse(fetchRunID)
	if err != nil {
		return fmt.Errorf("invalid run ID %q: %w", fetchRunID, err)
	}

	ctx := context.Background()
	db, err := store.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	run, err := db.GetRun(ctx, runID)
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("run %s not found", runID)
	}

	content, err := db.GetOutput(ctx, runID, fetchFormat)
	if err != nil {
		return err
	}
	if content == nil {
		return fmt.Errorf("run %s has no stored %s output", runID, fetchFormat)
	}

	outPath := fetchOutput
	if outPath == "" {
		outPath = fmt.Sprintf("%s.%s", runID, fetchFormat)
	}
	if err := os.WriteFile(outPath, content, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Printf("Wrote %s output of run %s (%s): %s\n", fetchFormat, runID, run.Status, outPath)
	return nil
}
