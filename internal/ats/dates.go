package ats

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// yearPattern matches the first standalone 4-digit run in a string.
var yearPattern = regexp.MustCompile(`\b(\d{4})\b`)

// datePattern pairs a shape matcher with the formatter that rewrites its
// capture groups into canonical form.
type datePattern struct {
	re     *regexp.Regexp
	format func(groups []string) string
}

// DateNormalizer rewrites free-form date and date-range strings into the
// canonical "Month YYYY - Month YYYY" family of forms for ATS parsing.
//
// Unrecognized input is never an error: it is returned unchanged apart from
// surrounding-whitespace trimming, since resume content is inherently
// unstructured and rejecting it would be hostile to the tool's purpose.
type DateNormalizer struct {
	patterns []datePattern
}

// NewDateNormalizer builds a normalizer with its ordered shape patterns.
//
// The patterns are tried in sequence and the first match wins, so more
// specific shapes must precede shorter, ambiguous ones. This ordering is a
// correctness dependency, not an implementation detail. All patterns are
// anchored at the start only: trailing text after a recognized shape is
// dropped from the output.
func NewDateNormalizer() *DateNormalizer {
	return &DateNormalizer{
		patterns: []datePattern{
			// "January 2020 - December 2021"
			{regexp.MustCompile(`(?i)^(\w+)\s+(\d{4})\s*[-–—]\s*(\w+)\s+(\d{4})`), formatMonthRange},
			// "January 2020 - Present" or "January 2020 - December"
			{regexp.MustCompile(`(?i)^(\w+)\s+(\d{4})\s*[-–—]\s*(\w+)(?:\s+(\d{4}))?`), formatMonthRange},
			// "2020 - 2021" or "2020 - Present"
			{regexp.MustCompile(`(?i)^(\d{4})\s*[-–—]\s*(\w+|\d{4})`), formatYearRange},
			// "January 2020"
			{regexp.MustCompile(`(?i)^(\w+)\s+(\d{4})`), formatMonthYear},
			// "2020"
			{regexp.MustCompile(`^(\d{4})$`), formatBareYear},
		},
	}
}

// Normalize rewrites a date string into canonical form. It is a total
// function: input matching none of the known shapes comes back trimmed but
// otherwise untouched.
func (d *DateNormalizer) Normalize(dateStr string) string {
	if strings.TrimSpace(dateStr) == "" {
		return dateStr
	}

	cleaned := strings.TrimSpace(dateStr)

	for _, p := range d.patterns {
		if m := p.re.FindStringSubmatch(cleaned); m != nil {
			return p.format(m[1:])
		}
	}

	return cleaned
}

// NormalizeRange normalizes a start/end date pair independently. No
// cross-field validation happens here; see ValidateOrder.
func (d *DateNormalizer) NormalizeRange(startDate, endDate string) (string, string) {
	return d.Normalize(startDate), d.Normalize(endDate)
}

// ValidateOrder reports whether the start date does not come after the end
// date. The check is advisory and fails open: an end date meaning "present"
// is always valid, and if a 4-digit year cannot be extracted from either
// side the pair is assumed valid.
func (d *DateNormalizer) ValidateOrder(startDate, endDate string) bool {
	if isPresent(endDate) {
		return true
	}

	startYear, startOK := ExtractYear(startDate)
	endYear, endOK := ExtractYear(endDate)
	if startOK && endOK {
		return startYear <= endYear
	}

	return true
}

// ExtractYear returns the first standalone 4-digit year found in the
// string, scanning left to right. Digit runs longer or shorter than 4 are
// not years. The second return value is false when no year is present.
func ExtractYear(dateStr string) (int, bool) {
	if dateStr == "" {
		return 0, false
	}

	m := yearPattern.FindStringSubmatch(dateStr)
	if m == nil {
		return 0, false
	}

	year, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return year, true
}

// formatMonthRange handles "Month Year - X" shapes where X is a month with
// an optional year, or a present-synonym. When the end month carries no
// year, the year is omitted from the output rather than inferred from the
// start date.
func formatMonthRange(groups []string) string {
	startMonth := standardizeMonth(groups[0])
	startYear := groups[1]
	endWord := groups[2]

	if isPresent(endWord) {
		return fmt.Sprintf("%s %s - Present", startMonth, startYear)
	}

	endMonth := standardizeMonth(endWord)
	if len(groups) > 3 && groups[3] != "" {
		return fmt.Sprintf("%s %s - %s %s", startMonth, startYear, endMonth, groups[3])
	}
	return fmt.Sprintf("%s %s - %s", startMonth, startYear, endMonth)
}

// formatYearRange handles "Year - Year" and "Year - Present" shapes. An end
// segment that is neither a year nor a present-synonym is emitted as-is.
func formatYearRange(groups []string) string {
	if isPresent(groups[1]) {
		return fmt.Sprintf("%s - Present", groups[0])
	}
	return fmt.Sprintf("%s - %s", groups[0], groups[1])
}

func formatMonthYear(groups []string) string {
	return fmt.Sprintf("%s %s", standardizeMonth(groups[0]), groups[1])
}

func formatBareYear(groups []string) string {
	return groups[0]
}

// standardizeMonth rewrites a month token to its canonical full name. A
// token that is not a known month is title-cased and passed through.
func standardizeMonth(month string) string {
	if month == "" {
		return month
	}

	if canonical, ok := monthNames[strings.ToLower(strings.TrimSpace(month))]; ok {
		return canonical
	}
	return titleCase(month)
}

// isPresent reports whether the token is one of the present-synonyms.
func isPresent(dateStr string) bool {
	return presentSynonyms[strings.ToLower(strings.TrimSpace(dateStr))]
}
