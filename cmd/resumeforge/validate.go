package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-forge/internal/schemas"
	"github.com/jonathan/resume-forge/internal/types"
	"github.com/jonathan/resume-forge/internal/validation"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a resume JSON file without converting it",
	Long: `Checks a resume file against the JSON schema and the content rules
(field lengths, date sanity, completeness) and reports all violations.
Exits non-zero when error-severity violations are present.`,
	RunE: runValidate,
}

var (
	validateInput  string
	validateOutput string
)

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to resume JSON file (required)")
	validateCmd.Flags().StringVarP(&validateOutput, "out", "o", "", "Path to write violations JSON report (optional)")

	if err := validateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(validateInput)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	if schemaPath := schemas.ResolveSchemaPath(schemas.ResumeSchemaPath); schemaPath != "" {
		if err := schemas.ValidateDocument(schemaPath, data); err != nil {
			return fmt.Errorf("resume does not match schema: %w", err)
		}
	}

	var doc types.ResumeData
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to decode resume: %w", err)
	}

	violations := validation.New().Validate(&doc)

	if validateOutput != "" {
		report, err := json.MarshalIndent(violations, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal violations: %w", err)
		}
		if err := os.WriteFile(validateOutput, report, 0o644); err != nil {
			return fmt.Errorf("failed to write violations report: %w", err)
		}
	}

	for _, violation := range violations.Violations {
		location := violation.Field
		if location == "" {
			location = "resume"
		}
		fmt.Printf("%s [%s] %s: %s\n", violation.Severity, violation.Type, location, violation.Details)
	}

	if !violations.Valid() {
		return fmt.Errorf("resume validation failed with %d errors", len(violations.Errors()))
	}

	fmt.Printf("Resume is valid (%d warnings)\n", len(violations.Violations))
	return nil
}
