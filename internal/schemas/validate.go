// Package schemas provides JSON Schema validation for resume documents and
// configuration files.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ResumeSchemaPath is the repository-relative path of the resume document
// schema.
const ResumeSchemaPath = "schemas/resume.schema.json"

// ResolveSchemaPath attempts to find a schema file by trying multiple
// common path resolutions: relative to the working directory, then one and
// two levels up. Returns the first path that exists, or an empty string.
// CLI commands and tests run from different directory contexts, which is
// why the lookup walks upward.
func ResolveSchemaPath(relativePath string) string {
	candidates := []string{
		relativePath,
		filepath.Join("..", relativePath),
		filepath.Join("..", "..", relativePath),
	}

	for _, candidate := range candidates {
		if absPath, err := filepath.Abs(candidate); err == nil {
			if _, err := os.Stat(absPath); err == nil {
				return absPath
			}
		}
	}

	return ""
}

// FieldError represents a single validation error at a specific field path
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates schema validation failures, each tagged with
// the field path that failed, so callers can report precisely which entry
// is broken.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateDocument validates raw JSON bytes against a schema file.
func ValidateDocument(schemaPath string, document []byte) error {
	schemaAbsPath, err := filepath.Abs(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to resolve schema path: %w", err)
	}
	if _, err := os.Stat(schemaAbsPath); os.IsNotExist(err) {
		return fmt.Errorf("schema file not found: %s", schemaAbsPath)
	}

	return runValidation(
		gojsonschema.NewReferenceLoader("file://"+schemaAbsPath),
		gojsonschema.NewBytesLoader(document),
		schemaAbsPath,
	)
}

// ValidateFile validates a JSON file against a schema file.
func ValidateFile(schemaPath, jsonPath string) error {
	document, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("failed to read JSON file %s: %w", jsonPath, err)
	}
	return ValidateDocument(schemaPath, document)
}

// ValidateString validates JSON string content against schema string
// content; used by tests and embedded schemas.
func ValidateString(schemaContent, jsonContent string) error {
	return runValidation(
		gojsonschema.NewStringLoader(schemaContent),
		gojsonschema.NewStringLoader(jsonContent),
		"(string schema)",
	)
}

// runValidation executes the schema check and converts the result into the
// package's structured error types.
func runValidation(schemaLoader, documentLoader gojsonschema.JSONLoader, schemaDesc string) error {
	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Path:    schemaDesc,
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
