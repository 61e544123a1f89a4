package ats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeaderNormalize_KnownVariants(t *testing.T) {
	h := NewHeaderNormalizer()

	cases := []struct {
		input    string
		expected string
	}{
		{"Work Experience", "Experience"},
		{"Professional Summary", "Summary"},
		{"Technical Skills", "Skills"},
		{"Employment History", "Experience"},
		{"Academic Background", "Education"},
		{"Licenses and Certifications", "Certifications"},
		{"Key Projects", "Projects"},
		{"Contact Info", "Contact Information"},
		{"Career Objective", "Summary"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, h.Normalize(tc.input), "input: %q", tc.input)
	}
}

func TestHeaderNormalize_CaseInsensitive(t *testing.T) {
	h := NewHeaderNormalizer()

	assert.Equal(t, "Experience", h.Normalize("WORK EXPERIENCE"))
	assert.Equal(t, "Experience", h.Normalize("work experience"))
	assert.Equal(t, "Skills", h.Normalize("TeChNiCaL sKiLlS"))
}

func TestHeaderNormalize_CleansPunctuationAndWhitespace(t *testing.T) {
	h := NewHeaderNormalizer()

	cases := []struct {
		input    string
		expected string
	}{
		{"WORK EXPERIENCE:", "Experience"},
		{"Education.", "Education"},
		{"-Skills-", "Skills"},
		{"__Summary__", "Summary"},
		{"Work\n\tExperience", "Experience"},
		{"  Contact   Information  ", "Contact Information"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, h.Normalize(tc.input), "input: %q", tc.input)
	}
}

func TestHeaderNormalize_UnknownFallsBackToTitleCase(t *testing.T) {
	h := NewHeaderNormalizer()

	// Unrecognized headers are never an error: cleaned and title-cased.
	assert.Equal(t, "Volunteer Work", h.Normalize("volunteer work"))
	assert.Equal(t, "Publications", h.Normalize("PUBLICATIONS"))
	assert.Equal(t, "My Custom Section", h.Normalize("my CUSTOM section:"))
}

func TestHeaderNormalize_EmptyInput(t *testing.T) {
	h := NewHeaderNormalizer()

	assert.Equal(t, "", h.Normalize(""))
	assert.Equal(t, "", h.Normalize("   "))
}

func TestHeaderNormalize_Idempotent(t *testing.T) {
	h := NewHeaderNormalizer()

	inputs := []string{
		"Work Experience",
		"PROFESSIONAL SUMMARY:",
		"volunteer work",
		"Contact Information",
		"",
	}

	for _, input := range inputs {
		once := h.Normalize(input)
		assert.Equal(t, once, h.Normalize(once), "canonical form must be a fixed point, input: %q", input)
	}
}

func TestIsStandardHeader(t *testing.T) {
	h := NewHeaderNormalizer()

	for _, standard := range []string{"Summary", "Experience", "Education", "Skills", "Certifications", "Projects", "Contact Information"} {
		assert.True(t, h.IsStandardHeader(standard), "header: %q", standard)
	}

	// The check is an exact, case-sensitive match with no normalization.
	assert.False(t, h.IsStandardHeader("experience"))
	assert.False(t, h.IsStandardHeader("Work Experience"))
	assert.False(t, h.IsStandardHeader(""))
}

func TestHeaderCategory(t *testing.T) {
	h := NewHeaderNormalizer()

	cases := []struct {
		input    string
		expected string
	}{
		{"Work Experience", "experience"},
		{"professional summary", "summary"},
		{"TECHNICAL SKILLS", "skills"},
		{"Contact Details", "contact"},
	}

	for _, tc := range cases {
		category, ok := h.Category(tc.input)
		assert.True(t, ok, "input: %q", tc.input)
		assert.Equal(t, tc.expected, category, "input: %q", tc.input)
	}
}

func TestHeaderCategory_UnknownHeader(t *testing.T) {
	h := NewHeaderNormalizer()

	// Category has no title-case fallback.
	_, ok := h.Category("Volunteer Work")
	assert.False(t, ok)
	_, ok = h.Category("")
	assert.False(t, ok)
}

func TestNormalizeAll_PreservesOrderAndLength(t *testing.T) {
	h := NewHeaderNormalizer()

	input := []string{"work experience", "unknown section", "technical skills"}
	normalized := h.NormalizeAll(input)

	assert.Equal(t, []string{"Experience", "Unknown Section", "Skills"}, normalized)
}

func TestSuggestOrder(t *testing.T) {
	h := NewHeaderNormalizer()

	input := []string{"Technical Skills", "Work Experience", "Contact Info", "Education"}
	ordered := h.SuggestOrder(input)

	assert.Equal(t, []string{"Contact Information", "Experience", "Education", "Skills"}, ordered)
}

func TestSuggestOrder_UnknownHeadersSortLastStably(t *testing.T) {
	h := NewHeaderNormalizer()

	// Two unrecognized headers keep their relative input order after all
	// known headers.
	input := []string{"Zeta Section", "Education", "Alpha Section", "Summary"}
	ordered := h.SuggestOrder(input)

	assert.Equal(t, []string{"Summary", "Education", "Zeta Section", "Alpha Section"}, ordered)
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Work Experience", titleCase("work experience"))
	assert.Equal(t, "Work Experience", titleCase("WORK EXPERIENCE"))
	assert.Equal(t, "A", titleCase("a"))
	assert.Equal(t, "", titleCase(""))
}
