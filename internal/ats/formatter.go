package ats

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-forge/internal/types"
)

// specialCharsPattern matches characters that commonly break ATS text
// extraction. Letters, digits, whitespace and basic resume punctuation are
// kept; everything else is dropped.
var specialCharsPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s\-.,()&/]`)

// charReplacements rewrites typographic characters before the catch-all
// pattern runs: curly quotes are removed outright (not substituted), dashes
// become the canonical spaced hyphen, and the ellipsis rune becomes three
// periods. Order matters, so this is a slice rather than a map.
var charReplacements = []struct {
	old string
	new string
}{
	{"“", ""},    // left double curly quote
	{"”", ""},    // right double curly quote
	{"‘", ""},    // left single curly quote
	{"’", ""},    // right single curly quote
	{"—", " - "}, // em dash
	{"–", " - "}, // en dash
	{"…", "..."}, // ellipsis
}

// Config controls the formatter's behavior. The zero value is not useful;
// use DefaultConfig as a base.
type Config struct {
	MaxLineLength      int
	BulletStyle        string
	SectionOrder       []string
	OptimizeKeywords   bool
	RemoveSpecialChars bool
}

// DefaultConfig returns the formatting defaults used when no configuration
// is supplied.
func DefaultConfig() Config {
	return Config{
		MaxLineLength:      80,
		BulletStyle:        "•",
		SectionOrder:       []string{"contact", "summary", "experience", "education", "skills", "projects", "certifications"},
		OptimizeKeywords:   true,
		RemoveSpecialChars: true,
	}
}

// Formatter applies ATS compliance formatting rules across a structured
// resume document. It holds no per-call state and is safe to share across
// goroutines formatting different documents.
type Formatter struct {
	cfg     Config
	dates   *DateNormalizer
	headers *HeaderNormalizer
}

// NewFormatter creates a formatter. A nil config selects the defaults.
func NewFormatter(cfg *Config) *Formatter {
	resolved := DefaultConfig()
	if cfg != nil {
		resolved = *cfg
	}
	return &Formatter{
		cfg:     resolved,
		dates:   NewDateNormalizer(),
		headers: NewHeaderNormalizer(),
	}
}

// Dates exposes the formatter's date normalizer.
func (f *Formatter) Dates() *DateNormalizer { return f.dates }

// Headers exposes the formatter's header normalizer.
func (f *Formatter) Headers() *HeaderNormalizer { return f.headers }

// Format applies ATS formatting rules to a resume document and returns a
// new document; the input is never mutated. Every section is optional and
// independently transformed. Entry counts and relative order are preserved.
//
// A nil document is the one hard failure.
func (f *Formatter) Format(doc *types.ResumeData) (*types.ResumeData, error) {
	if doc == nil {
		return nil, &InvalidInputError{Message: "resume document is required"}
	}

	out := doc.Clone()

	out.Contact = f.formatContact(out.Contact)

	if out.Summary != "" {
		out.Summary = f.formatSummary(out.Summary)
	}

	for i := range out.Experience {
		out.Experience[i] = f.formatExperience(out.Experience[i])
	}

	for i := range out.Education {
		out.Education[i] = f.formatEducation(out.Education[i])
	}

	if out.Skills != nil {
		f.formatSkills(out.Skills)
	}

	for i := range out.Projects {
		out.Projects[i] = f.formatProject(out.Projects[i])
	}

	for i := range out.Certifications {
		out.Certifications[i] = f.formatCertification(out.Certifications[i])
	}

	for name, lines := range out.AdditionalSections {
		formatted := make([]string, len(lines))
		for i, line := range lines {
			formatted[i] = f.FormatSectionContent(line)
		}
		out.AdditionalSections[name] = formatted
	}

	return out, nil
}

// ValidateATSCompliance is a read-only viability check: a resume without an
// email address in its contact block cannot be matched to a candidate by
// any ATS. It is intentionally narrow, not a full rules engine.
func (f *Formatter) ValidateATSCompliance(doc *types.ResumeData) bool {
	if doc == nil {
		return false
	}
	return strings.TrimSpace(doc.Contact.Email) != ""
}

func (f *Formatter) formatContact(contact types.ContactInfo) types.ContactInfo {
	if f.cfg.RemoveSpecialChars {
		contact.Name = f.cleanSpecialChars(contact.Name)
		if contact.Location != "" {
			contact.Location = f.cleanSpecialChars(contact.Location)
		}
	}
	return contact
}

func (f *Formatter) formatSummary(summary string) string {
	formatted := strings.TrimSpace(summary)
	if f.cfg.RemoveSpecialChars {
		formatted = f.cleanSpecialChars(formatted)
	}
	return f.wrapText(formatted)
}

func (f *Formatter) formatExperience(exp types.Experience) types.Experience {
	if f.cfg.RemoveSpecialChars {
		exp.Title = f.cleanSpecialChars(exp.Title)
		exp.Company = f.cleanSpecialChars(exp.Company)
		if exp.Location != "" {
			exp.Location = f.cleanSpecialChars(exp.Location)
		}
	}

	exp.StartDate, exp.EndDate = f.dates.NormalizeRange(exp.StartDate, exp.EndDate)

	if len(exp.Bullets) > 0 {
		exp.Bullets = f.OptimizeBulletPoints(exp.Bullets)
	}

	return exp
}

func (f *Formatter) formatEducation(edu types.Education) types.Education {
	if f.cfg.RemoveSpecialChars {
		edu.Degree = f.cleanSpecialChars(edu.Degree)
		edu.School = f.cleanSpecialChars(edu.School)
		if edu.Location != "" {
			edu.Location = f.cleanSpecialChars(edu.Location)
		}
	}

	if edu.StartDate != "" {
		edu.StartDate = f.dates.Normalize(edu.StartDate)
	}
	if edu.EndDate != "" {
		edu.EndDate = f.dates.Normalize(edu.EndDate)
	}

	return edu
}

func (f *Formatter) formatSkills(skills *types.Skills) {
	if !f.cfg.RemoveSpecialChars {
		return
	}

	for i := range skills.Categories {
		skills.Categories[i].Name = f.cleanSpecialChars(skills.Categories[i].Name)
		for j, skill := range skills.Categories[i].Skills {
			skills.Categories[i].Skills[j] = f.cleanSpecialChars(skill)
		}
	}
	for i, skill := range skills.RawSkills {
		skills.RawSkills[i] = f.cleanSpecialChars(skill)
	}
}

func (f *Formatter) formatProject(proj types.Project) types.Project {
	if f.cfg.RemoveSpecialChars {
		proj.Name = f.cleanSpecialChars(proj.Name)
		if proj.Description != "" {
			proj.Description = f.cleanSpecialChars(proj.Description)
		}
	}

	if proj.Date != "" {
		proj.Date = f.dates.Normalize(proj.Date)
	}

	if len(proj.Bullets) > 0 {
		proj.Bullets = f.OptimizeBulletPoints(proj.Bullets)
	}

	return proj
}

func (f *Formatter) formatCertification(cert types.Certification) types.Certification {
	if f.cfg.RemoveSpecialChars {
		cert.Name = f.cleanSpecialChars(cert.Name)
		cert.Issuer = f.cleanSpecialChars(cert.Issuer)
	}

	cert.Date = f.dates.Normalize(cert.Date)
	if cert.Expiry != "" {
		cert.Expiry = f.dates.Normalize(cert.Expiry)
	}

	return cert
}

// OptimizeBulletPoints cleans a bullet list for ATS parsing: blank entries
// are dropped, each bullet is trimmed and cleaned, and only the first
// character is re-cased. The rest of the bullet keeps its original casing,
// so acronyms and product names survive.
func (f *Formatter) OptimizeBulletPoints(bullets []string) []string {
	if len(bullets) == 0 {
		return bullets
	}

	optimized := make([]string, 0, len(bullets))
	for _, bullet := range bullets {
		if strings.TrimSpace(bullet) == "" {
			continue
		}

		cleaned := strings.TrimSpace(bullet)
		if f.cfg.RemoveSpecialChars {
			cleaned = f.cleanSpecialChars(cleaned)
		}
		cleaned = capitalizeFirst(cleaned)
		optimized = append(optimized, f.wrapText(cleaned))
	}

	return optimized
}

// FormatSectionContent formats a block of free section text: trim, special
// character cleanup, and line wrapping.
func (f *Formatter) FormatSectionContent(content string) string {
	if content == "" {
		return content
	}

	formatted := strings.TrimSpace(content)
	if f.cfg.RemoveSpecialChars {
		formatted = f.cleanSpecialChars(formatted)
	}
	return f.wrapText(formatted)
}

// StandardizeSectionHeaders normalizes the display header for every section
// key, leaving empty headers untouched.
func (f *Formatter) StandardizeSectionHeaders(sectionNames map[string]string) map[string]string {
	standardized := make(map[string]string, len(sectionNames))
	for key, header := range sectionNames {
		if header != "" {
			standardized[key] = f.headers.Normalize(header)
		} else {
			standardized[key] = header
		}
	}
	return standardized
}

// cleanSpecialChars removes ATS-unfriendly characters from text and
// collapses the resulting whitespace.
func (f *Formatter) cleanSpecialChars(text string) string {
	if text == "" {
		return text
	}

	cleaned := text
	for _, r := range charReplacements {
		cleaned = strings.ReplaceAll(cleaned, r.old, r.new)
	}

	cleaned = specialCharsPattern.ReplaceAllString(cleaned, "")

	return strings.Join(strings.Fields(cleaned), " ")
}

// wrapText wraps text at word boundaries to the configured maximum line
// length. Words are never split; a single word longer than the limit is
// emitted on its own line.
func (f *Formatter) wrapText(text string) string {
	if text == "" || utf8.RuneCountInString(text) <= f.cfg.MaxLineLength {
		return text
	}

	words := strings.Fields(text)
	var lines []string
	var current []string
	currentLength := 0

	for _, word := range words {
		wordLength := utf8.RuneCountInString(word)
		if len(current) > 0 {
			wordLength++ // the joining space
		}

		if currentLength+wordLength > f.cfg.MaxLineLength && len(current) > 0 {
			lines = append(lines, strings.Join(current, " "))
			current = []string{word}
			currentLength = utf8.RuneCountInString(word)
		} else {
			current = append(current, word)
			currentLength += wordLength
		}
	}

	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}

	return strings.Join(lines, "\n")
}

// capitalizeFirst upper-cases the first rune of a string, leaving the rest
// untouched.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
