package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-forge/internal/store"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recent conversion runs stored in the database",
	RunE:  runRuns,
}

var (
	runsLimit       int
	runsDatabaseURL string
)

func init() {
	runsCmd.Flags().IntVarP(&runsLimit, "limit", "n", 20, "Maximum number of runs to list")
	runsCmd.Flags().StringVar(&runsDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(runsCmd)
}

func runRuns(_ *cobra.Command, _ []string) error {
	databaseURL := runsDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("database URL is required (set --db-url or DATABASE_URL)")
	}

	ctx := context.Background()
	db, err := store.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	runs, err := db.ListRuns(ctx, runsLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No conversion runs recorded")
		return nil
	}

	fmt.Printf("%-36s  %-9s  %-16s  %-19s  %s\n", "ID", "STATUS", "FORMATS", "CREATED", "SOURCE")
	for _, run := range runs {
		fmt.Printf("%-36s  %-9s  %-16s  %-19s  %s\n",
			run.ID, run.Status, strings.Join(run.Formats, ","),
			run.CreatedAt.Format("2006-01-02 15:04:05"), run.SourceFile)
	}
	return nil
}
