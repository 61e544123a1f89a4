package ats

import (
	"sort"
	"strings"
	"unicode"
)

// HeaderNormalizer maps free-form section header text onto the fixed set of
// canonical ATS headers. Headers outside the known synonym sets are not
// errors: they are cleaned and title-cased instead.
type HeaderNormalizer struct{}

// NewHeaderNormalizer returns a header normalizer. The synonym tables are
// package-level read-only maps, so the zero value is equally usable; the
// constructor exists for symmetry with DateNormalizer.
func NewHeaderNormalizer() *HeaderNormalizer {
	return &HeaderNormalizer{}
}

// Normalize rewrites a section header to its canonical display form.
// Empty or whitespace-only input comes back as an empty string.
func (h *HeaderNormalizer) Normalize(header string) string {
	if header == "" {
		return header
	}

	cleaned := cleanHeader(header)

	if category, ok := headerCategories[strings.ToLower(cleaned)]; ok {
		return standardHeaders[category]
	}

	// Unknown header: pass through title-cased.
	return titleCase(cleaned)
}

// IsStandardHeader reports whether the header is already one of the
// canonical display headers. The comparison is exact; no cleaning is done.
func (h *HeaderNormalizer) IsStandardHeader(header string) bool {
	for _, display := range standardHeaders {
		if header == display {
			return true
		}
	}
	return false
}

// Category returns the lowercase category key for a header ("experience",
// "skills", ...). Unlike Normalize there is no title-case fallback: an
// unrecognized header reports ok=false.
func (h *HeaderNormalizer) Category(header string) (string, bool) {
	category, ok := headerCategories[strings.ToLower(cleanHeader(header))]
	return category, ok
}

// NormalizeAll normalizes a list of headers element-wise, preserving order
// and length.
func (h *HeaderNormalizer) NormalizeAll(headers []string) []string {
	normalized := make([]string, len(headers))
	for i, header := range headers {
		normalized[i] = h.Normalize(header)
	}
	return normalized
}

// SuggestOrder normalizes the headers and reorders them into the
// ATS-preferred section order. Headers not in the preferred list sort after
// all known headers; the sort is stable, so unknown headers keep their
// relative input order.
func (h *HeaderNormalizer) SuggestOrder(headers []string) []string {
	normalized := h.NormalizeAll(headers)

	rank := func(header string) int {
		for i, preferred := range preferredHeaderOrder {
			if header == preferred {
				return i
			}
		}
		return len(preferredHeaderOrder)
	}

	sort.SliceStable(normalized, func(i, j int) bool {
		return rank(normalized[i]) < rank(normalized[j])
	})
	return normalized
}

// cleanHeader collapses internal whitespace runs to single spaces, trims,
// and strips decorating punctuation from the ends.
func cleanHeader(header string) string {
	cleaned := strings.Join(strings.Fields(header), " ")
	return strings.Trim(cleaned, ":.-_")
}

// titleCase capitalizes the first letter of every space-separated word and
// lowercases the rest.
func titleCase(s string) string {
	words := strings.Split(s, " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		for j := 1; j < len(runes); j++ {
			runes[j] = unicode.ToLower(runes[j])
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
