// Package config provides configuration loading, merging, and validation
// for the resume-forge CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-forge/internal/ats"
	"github.com/jonathan/resume-forge/internal/schemas"
)

// ATSOptions controls the formatting engine. Boolean options are pointers
// so an explicit false in a config file survives the merge with defaults.
type ATSOptions struct {
	MaxLineLength      int      `json:"max_line_length,omitempty" validate:"omitempty,min=20,max=200"`
	BulletStyle        string   `json:"bullet_style,omitempty" validate:"omitempty,oneof=• - *"`
	SectionOrder       []string `json:"section_order,omitempty"`
	OptimizeKeywords   *bool    `json:"optimize_keywords,omitempty"`
	RemoveSpecialChars *bool    `json:"remove_special_chars,omitempty"`
}

// HTMLOptions controls HTML output generation
type HTMLOptions struct {
	Theme           string `json:"theme,omitempty" validate:"omitempty,oneof=default professional modern"`
	MetaDescription string `json:"meta_description,omitempty"`
}

// PDFOptions controls PDF output generation
type PDFOptions struct {
	PageSize     string  `json:"page_size,omitempty" validate:"omitempty,oneof=Letter A4 Legal"`
	MarginTop    float64 `json:"margin_top,omitempty" validate:"omitempty,min=0,max=3"`
	MarginBottom float64 `json:"margin_bottom,omitempty" validate:"omitempty,min=0,max=3"`
	MarginLeft   float64 `json:"margin_left,omitempty" validate:"omitempty,min=0,max=3"`
	MarginRight  float64 `json:"margin_right,omitempty" validate:"omitempty,min=0,max=3"`
}

// DOCXOptions controls DOCX output generation
type DOCXOptions struct {
	FontFamily string `json:"font_family,omitempty"`
	FontSize   int    `json:"font_size,omitempty" validate:"omitempty,min=8,max=16"`
}

// OutputOptions selects which formats to generate and where to put them
type OutputOptions struct {
	Formats   []string `json:"formats,omitempty" validate:"omitempty,dive,oneof=html pdf docx"`
	OutputDir string   `json:"output_dir,omitempty"`
}

// Config is the root configuration for a resume-forge run
type Config struct {
	ATS    ATSOptions    `json:"ats,omitempty"`
	HTML   HTMLOptions   `json:"html,omitempty"`
	PDF    PDFOptions    `json:"pdf,omitempty"`
	DOCX   DOCXOptions   `json:"docx,omitempty"`
	Output OutputOptions `json:"output,omitempty"`
}

// configSchemaPath is the schema file used to sanity-check user config
// files before they are decoded.
const configSchemaPath = "schemas/config.schema.json"

func boolPtr(b bool) *bool { return &b }

// Default returns the built-in configuration defaults.
func Default() Config {
	return Config{
		ATS: ATSOptions{
			MaxLineLength:      80,
			BulletStyle:        "•",
			SectionOrder:       []string{"contact", "summary", "experience", "education", "skills", "projects", "certifications"},
			OptimizeKeywords:   boolPtr(true),
			RemoveSpecialChars: boolPtr(true),
		},
		HTML: HTMLOptions{
			Theme:           "professional",
			MetaDescription: "Professional resume",
		},
		PDF: PDFOptions{
			PageSize:     "Letter",
			MarginTop:    0.75,
			MarginBottom: 0.75,
			MarginLeft:   0.75,
			MarginRight:  0.75,
		},
		DOCX: DOCXOptions{
			FontFamily: "Calibri",
			FontSize:   11,
		},
		Output: OutputOptions{
			Formats:   []string{"html", "pdf", "docx"},
			OutputDir: "output",
		},
	}
}

// Load reads a JSON config file, deep-merges it over the defaults, and
// validates the result. An empty path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return &cfg, nil
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	// Schema check runs first so a malformed file reports field paths
	// instead of a decode error. Skipped when the schema file cannot be
	// located (e.g. an installed binary run outside the repo).
	if schemaPath := schemas.ResolveSchemaPath(configSchemaPath); schemaPath != "" {
		if err := schemas.ValidateDocument(schemaPath, data); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	}

	var fileCfg Config
	if err := json.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	// User values win; defaults fill whatever the file leaves unset.
	merged := fileCfg
	if err := mergo.Merge(&merged, cfg); err != nil {
		return nil, fmt.Errorf("failed to merge config defaults: %w", err)
	}

	if err := merged.Validate(); err != nil {
		return nil, err
	}

	return &merged, nil
}

// Validate checks the configuration's field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// ATSConfig converts the loaded options into the formatting engine's
// config, resolving pointer booleans.
func (c *Config) ATSConfig() ats.Config {
	out := ats.DefaultConfig()
	if c.ATS.MaxLineLength > 0 {
		out.MaxLineLength = c.ATS.MaxLineLength
	}
	if c.ATS.BulletStyle != "" {
		out.BulletStyle = c.ATS.BulletStyle
	}
	if len(c.ATS.SectionOrder) > 0 {
		out.SectionOrder = c.ATS.SectionOrder
	}
	if c.ATS.OptimizeKeywords != nil {
		out.OptimizeKeywords = *c.ATS.OptimizeKeywords
	}
	if c.ATS.RemoveSpecialChars != nil {
		out.RemoveSpecialChars = *c.ATS.RemoveSpecialChars
	}
	return out
}

// WriteSample writes a fully-populated sample config file that users can
// edit down.
func WriteSample(path string) error {
	data, err := json.MarshalIndent(Default(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal sample config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write sample config %s: %w", path, err)
	}
	return nil
}
