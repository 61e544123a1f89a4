// Package types provides type definitions for structured resume data used throughout the resume-forge system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Violation severities. Errors make a resume unusable for ATS parsing;
// warnings are advisory and never block generation.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Violation represents a single validation finding against a resume document
type Violation struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Details  string `json:"details"`

	// Field is the path of the offending field, e.g. "experience[2].end_date"
	Field string `json:"field,omitempty"`
}

// Violations represents the outcome of validating one resume document
type Violations struct {
	Violations []Violation `json:"violations"`
}

// Add appends a violation
func (v *Violations) Add(violationType, severity, field, details string) {
	v.Violations = append(v.Violations, Violation{
		Type:     violationType,
		Severity: severity,
		Field:    field,
		Details:  details,
	})
}

// Errors returns only the error-severity violations
func (v *Violations) Errors() []Violation {
	var out []Violation
	for _, violation := range v.Violations {
		if violation.Severity == SeverityError {
			out = append(out, violation)
		}
	}
	return out
}

// Valid reports whether the document has no error-severity violations
func (v *Violations) Valid() bool {
	return len(v.Errors()) == 0
}
