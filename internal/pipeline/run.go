// Package pipeline provides the high-level orchestration for the resume conversion process.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-forge/internal/ats"
	"github.com/jonathan/resume-forge/internal/config"
	"github.com/jonathan/resume-forge/internal/render"
	"github.com/jonathan/resume-forge/internal/schemas"
	"github.com/jonathan/resume-forge/internal/store"
	"github.com/jonathan/resume-forge/internal/types"
	"github.com/jonathan/resume-forge/internal/validation"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Step names reported through progress events and stored as artifact kinds
const (
	StepLoad     = "load"
	StepValidate = "validate"
	StepFormat   = "format"
	StepRender   = "render"
)

// RunOptions holds configuration for running the conversion pipeline
type RunOptions struct {
	InputPath   string
	ConfigPath  string
	OutputDir   string   // overrides config when set
	Formats     []string // overrides config when set
	Strict      bool     // treat warning violations as failures
	DatabaseURL string
	Verbose     bool
	OnProgress  ProgressCallback
}

// Result holds the outputs of a completed conversion run
type Result struct {
	RunID      uuid.UUID
	Document   *types.ResumeData
	Violations *types.Violations
	Outputs    map[string]string // format -> output file path
}

// ValidationFailedError is returned when the input resume has
// error-severity content violations.
type ValidationFailedError struct {
	Violations *types.Violations
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("resume validation failed with %d errors", len(e.Violations.Errors()))
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, step, message, runID string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{Step: step, Message: message, RunID: runID})
	}
}

// Run executes the full conversion pipeline: load, validate, format, render.
// The returned Result carries the violations report even when Run fails
// validation, so callers can show the user what to fix.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = cfg.Output.OutputDir
	}
	formats := opts.Formats
	if len(formats) == 0 {
		formats = cfg.Output.Formats
	}

	// Connect storage if configured. Persistence is best-effort: a
	// conversion should not fail because the database is down.
	var db *store.Store
	var runID uuid.UUID
	if opts.DatabaseURL != "" {
		db, err = store.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			fmt.Printf("Warning: failed to connect to database: %v\n", err)
			fmt.Printf("Continuing without persistence...\n")
			db = nil
		} else {
			defer db.Close()
			if err := db.Migrate(ctx); err != nil {
				fmt.Printf("Warning: failed to prepare database schema: %v\n", err)
				db = nil
			} else if runID, err = db.CreateRun(ctx, opts.InputPath, formats); err != nil {
				fmt.Printf("Warning: failed to record run: %v\n", err)
				db = nil
			}
		}
	}

	result, err := run(ctx, &opts, cfg, db, runID, outputDir, formats)
	if db != nil {
		status := store.StatusCompleted
		if err != nil {
			status = store.StatusFailed
		}
		if completeErr := db.CompleteRun(ctx, runID, status); completeErr != nil {
			fmt.Printf("Warning: failed to finalize run record: %v\n", completeErr)
		}
	}
	return result, err
}

func run(ctx context.Context, opts *RunOptions, cfg *config.Config, db *store.Store, runID uuid.UUID, outputDir string, formats []string) (*Result, error) {
	result := &Result{RunID: runID, Outputs: make(map[string]string)}

	// Step 1: load and decode the input document
	if opts.Verbose {
		fmt.Printf("Step 1/4: Loading resume from %s...\n", opts.InputPath)
	}
	doc, err := loadResume(opts.InputPath)
	if err != nil {
		return result, err
	}
	emitProgress(opts, StepLoad, fmt.Sprintf("Loaded resume for %s", doc.Contact.Name), runID.String())

	// Step 2: content validation
	if opts.Verbose {
		fmt.Printf("Step 2/4: Validating resume content...\n")
	}
	result.Violations = validation.New().Validate(doc)
	if db != nil {
		if err := db.SaveViolations(ctx, runID, result.Violations); err != nil {
			fmt.Printf("Warning: failed to save violations: %v\n", err)
		}
	}
	if !result.Violations.Valid() || (opts.Strict && len(result.Violations.Violations) > 0) {
		return result, &ValidationFailedError{Violations: result.Violations}
	}
	emitProgress(opts, StepValidate,
		fmt.Sprintf("Validated resume with %d warnings", len(result.Violations.Violations)), runID.String())

	// Step 3: ATS formatting
	if opts.Verbose {
		fmt.Printf("Step 3/4: Applying ATS formatting...\n")
	}
	atsCfg := cfg.ATSConfig()
	formatted, err := ats.NewFormatter(&atsCfg).Format(doc)
	if err != nil {
		return result, fmt.Errorf("formatting failed: %w", err)
	}
	result.Document = formatted
	if db != nil {
		if err := db.SaveDocument(ctx, runID, formatted); err != nil {
			fmt.Printf("Warning: failed to save document: %v\n", err)
		}
	}
	emitProgress(opts, StepFormat, "Applied ATS formatting", runID.String())

	// Step 4: render all requested formats concurrently
	if opts.Verbose {
		fmt.Printf("Step 4/4: Rendering %s...\n", strings.Join(formats, ", "))
	}
	if err := renderAll(ctx, opts, cfg, db, runID, formatted, outputDir, formats, result); err != nil {
		return result, err
	}
	emitProgress(opts, StepRender,
		fmt.Sprintf("Rendered %d output files to %s", len(result.Outputs), outputDir), runID.String())

	return result, nil
}

// loadResume reads, schema-checks, and decodes a resume JSON file
func loadResume(path string) (*types.ResumeData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}

	if schemaPath := schemas.ResolveSchemaPath(schemas.ResumeSchemaPath); schemaPath != "" {
		if err := schemas.ValidateDocument(schemaPath, data); err != nil {
			return nil, fmt.Errorf("resume does not match schema: %w", err)
		}
	}

	var doc types.ResumeData
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode resume: %w", err)
	}
	return &doc, nil
}

// renderAll fans the render work out across formats. Output files share
// the input file's base name.
func renderAll(ctx context.Context, opts *RunOptions, cfg *config.Config, db *store.Store, runID uuid.UUID, doc *types.ResumeData, outputDir string, formats []string, result *Result) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	htmlRenderer, err := render.NewHTMLRenderer(cfg.HTML)
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(filepath.Base(opts.InputPath), filepath.Ext(opts.InputPath))

	var mu sync.Mutex
	g, gCtx := errgroup.WithContext(ctx)
	for _, format := range formats {
		format := format
		g.Go(func() error {
			var content []byte
			var err error
			switch format {
			case "html":
				content, err = htmlRenderer.Render(doc)
			case "pdf":
				content, err = render.NewPDFRenderer(cfg.PDF, htmlRenderer).Render(gCtx, doc)
			case "docx":
				atsCfg := cfg.ATSConfig()
				content, err = render.NewDOCXRenderer(cfg.DOCX, atsCfg.BulletStyle).Render(doc)
			default:
				return fmt.Errorf("unknown output format: %s", format)
			}
			if err != nil {
				return fmt.Errorf("%s rendering failed: %w", format, err)
			}

			outPath := filepath.Join(outputDir, base+"."+format)
			if err := os.WriteFile(outPath, content, 0o644); err != nil {
				return fmt.Errorf("failed to write %s output: %w", format, err)
			}

			if db != nil {
				if err := db.SaveOutput(gCtx, runID, format, content); err != nil {
					fmt.Printf("Warning: failed to save %s output: %v\n", format, err)
				}
			}

			mu.Lock()
			result.Outputs[format] = outPath
			mu.Unlock()
			return nil
		})
	}
	return g.Wait()
}
