package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-forge/internal/observability"
	"github.com/jonathan/resume-forge/internal/pipeline"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a resume JSON file into ATS-friendly output documents",
	Long: `Runs the full conversion pipeline: schema validation, content validation,
ATS formatting (date and header normalization, bullet cleanup), and rendering
to the requested output formats.

Configuration can be loaded from a JSON file using --config. Command-line
flags override config file values.`,
	RunE: runConvert,
}

var (
	convertInput       string
	convertConfigPath  string
	convertOutputDir   string
	convertFormats     []string
	convertStrict      bool
	convertVerbose     bool
	convertDatabaseURL string
)

func init() {
	convertCmd.Flags().StringVarP(&convertInput, "in", "i", "", "Path to resume JSON file (required)")
	convertCmd.Flags().StringVar(&convertConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	convertCmd.Flags().StringVarP(&convertOutputDir, "out-dir", "o", "", "Output directory (overrides config)")
	convertCmd.Flags().StringSliceVarP(&convertFormats, "format", "f", nil, "Output formats: html, pdf, docx (overrides config)")
	convertCmd.Flags().BoolVar(&convertStrict, "strict", false, "Treat validation warnings as failures")
	convertCmd.Flags().BoolVarP(&convertVerbose, "verbose", "v", false, "Print detailed progress information")
	convertCmd.Flags().StringVar(&convertDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	if err := convertCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(convertCmd)
}

func runConvert(_ *cobra.Command, _ []string) error {
	databaseURL := convertDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}

	result, err := pipeline.Run(context.Background(), pipeline.RunOptions{
		InputPath:   convertInput,
		ConfigPath:  convertConfigPath,
		OutputDir:   convertOutputDir,
		Formats:     convertFormats,
		Strict:      convertStrict,
		Verbose:     convertVerbose,
		DatabaseURL: databaseURL,
		OnProgress: func(event pipeline.ProgressEvent) {
			if convertVerbose {
				fmt.Printf("[%s] %s\n", event.Step, event.Message)
			}
		},
	})

	var validationErr *pipeline.ValidationFailedError
	if errors.As(err, &validationErr) {
		printViolations(result)
		return err
	}
	if err != nil {
		return err
	}

	printViolations(result)
	if convertVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintResume(result.Document)
		printer.PrintOutputs(result.Outputs, []string{"html", "pdf", "docx"})
		return nil
	}
	for format, path := range result.Outputs {
		fmt.Printf("Wrote %s output: %s\n", format, path)
	}
	return nil
}

func printViolations(result *pipeline.Result) {
	if result == nil || result.Violations == nil {
		return
	}
	for _, violation := range result.Violations.Violations {
		location := violation.Field
		if location == "" {
			location = "resume"
		}
		fmt.Printf("%s [%s] %s: %s\n", violation.Severity, violation.Type, location, violation.Details)
	}
}
