// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-forge/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResume outputs a human-readable summary of a loaded resume.
func (p *Printer) PrintResume(doc *types.ResumeData) {
	if doc == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", doc.Contact.Name))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", doc.Contact.Email))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Sections: %s\n", strings.Join(doc.Sections(), ", ")))
	sb.WriteString(fmt.Sprintf("Experience entries: %d\n", len(doc.Experience)))

	totalBullets := 0
	for _, exp := range doc.Experience {
		totalBullets += len(exp.Bullets)
	}
	sb.WriteString(fmt.Sprintf("Achievement bullets: %d", totalBullets))

	p.printBox("Resume", sb.String())
}

// PrintViolations outputs a human-readable summary of a validation report.
// Only the first few violations of each severity are shown.
func (p *Printer) PrintViolations(violations *types.Violations) {
	if violations == nil {
		return
	}
	if len(violations.Violations) == 0 {
		p.printBox("Validation", "No violations found")
		return
	}

	var sb strings.Builder

	errors := violations.Errors()
	warnings := len(violations.Violations) - len(errors)
	sb.WriteString(fmt.Sprintf("%d errors, %d warnings\n", len(errors), warnings))

	count := min(len(violations.Violations), maxItemsToShow)
	for i := 0; i < count; i++ {
		violation := violations.Violations[i]
		sb.WriteString(fmt.Sprintf("\n%s %s", violation.Severity, violation.Type))
		if violation.Field != "" {
			sb.WriteString(fmt.Sprintf(" at %s", violation.Field))
		}
	}
	if len(violations.Violations) > count {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(violations.Violations)-count))
	}

	p.printBox("Validation", sb.String())
}

// PrintOutputs outputs the rendered file paths at the end of a run.
func (p *Printer) PrintOutputs(outputs map[string]string, formats []string) {
	if len(outputs) == 0 {
		return
	}

	var sb strings.Builder
	for _, format := range formats {
		if path, ok := outputs[format]; ok {
			sb.WriteString(fmt.Sprintf("%-5s %s\n", format, path))
		}
	}

	p.printBox("Outputs", strings.TrimRight(sb.String(), "\n"))
}
