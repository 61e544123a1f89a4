package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-forge/internal/types"
)

func TestPrinter_PrintResume(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintResume(&types.ResumeData{
		Contact: types.ContactInfo{Name: "Jane Doe", Email: "jane@example.com"},
		Experience: []types.Experience{
			{Title: "Engineer", Company: "Acme", Bullets: []string{"a", "b"}},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "Experience entries: 1")
	assert.Contains(t, out, "Achievement bullets: 2")
}

func TestPrinter_PrintResume_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintResume(nil)

	assert.Empty(t, buf.String())
}

func TestPrinter_PrintViolations(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	violations := &types.Violations{}
	violations.Add("missing_email", types.SeverityError, "contact.email", "email address is required")
	violations.Add("no_summary", types.SeverityWarning, "summary", "consider adding a summary")
	printer.PrintViolations(violations)

	out := buf.String()
	assert.Contains(t, out, "1 errors, 1 warnings")
	assert.Contains(t, out, "missing_email")
	assert.Contains(t, out, "contact.email")
}

func TestPrinter_PrintViolations_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintViolations(&types.Violations{})

	assert.Contains(t, buf.String(), "No violations found")
}

func TestPrinter_PrintViolations_Truncates(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	violations := &types.Violations{}
	for i := 0; i < 8; i++ {
		violations.Add("no_bullets", types.SeverityWarning, "experience", "consider adding bullets")
	}
	printer.PrintViolations(violations)

	assert.Contains(t, buf.String(), "... and 3 more")
}

func TestPrinter_PrintOutputs(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintOutputs(map[string]string{
		"html": "output/resume.html",
		"pdf":  "output/resume.pdf",
	}, []string{"html", "pdf", "docx"})

	out := buf.String()
	assert.Contains(t, out, "output/resume.html")
	assert.Contains(t, out, "output/resume.pdf")
}
