// Package validation checks resume content quality beyond what the JSON
// schema can express: field lengths, date sanity, and advisory
// completeness checks. Schema validation catches structural problems;
// this package catches documents that are structurally fine but would
// still parse badly in an ATS.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-forge/internal/ats"
	"github.com/jonathan/resume-forge/internal/types"
)

const (
	minFieldLength  = 2
	minBulletLength = 5
	maxBulletLength = 200
	minTotalBullets = 3
)

// datePatterns are the date shapes accepted by the format check. The
// formatter normalizes most inputs into the third shape, but hand-written
// resumes using numeric forms are accepted as-is.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d{4}$`),
	regexp.MustCompile(`^\d{1,2}/\d{4}$`),
	regexp.MustCompile(`(?i)^(january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{4}$`),
	regexp.MustCompile(`(?i)^(jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)\s+\d{4}$`),
	regexp.MustCompile(`^\d{4}-\d{2}$`),
}

var nonDigits = regexp.MustCompile(`\D`)

// Validator checks resume documents for content problems
type Validator struct {
	dates *ats.DateNormalizer
}

// New creates a content validator
func New() *Validator {
	return &Validator{dates: ats.NewDateNormalizer()}
}

// Validate runs all content checks over a resume and returns the collected
// violations. Error-severity violations make the document unusable;
// warnings are advisory.
func (v *Validator) Validate(doc *types.ResumeData) *types.Violations {
	out := &types.Violations{}
	if doc == nil {
		out.Add("missing_document", types.SeverityError, "", "resume document is required")
		return out
	}

	v.validateContact(doc.Contact, out)
	v.validateExperience(doc.Experience, out)
	v.validateEducation(doc.Education, out)
	v.validateStructure(doc, out)
	return out
}

func (v *Validator) validateContact(contact types.ContactInfo, out *types.Violations) {
	if utf8.RuneCountInString(strings.TrimSpace(contact.Name)) < minFieldLength {
		out.Add("short_name", types.SeverityError, "contact.name",
			fmt.Sprintf("name must be at least %d characters long", minFieldLength))
	}

	if strings.TrimSpace(contact.Email) == "" {
		out.Add("missing_email", types.SeverityError, "contact.email", "email address is required")
	}

	if contact.Phone != "" && !validPhone(contact.Phone) {
		out.Add("odd_phone", types.SeverityWarning, "contact.phone",
			"phone number format may not be standard")
	}

	if contact.LinkedIn != "" && !strings.HasPrefix(contact.LinkedIn, "https://linkedin.com") &&
		!strings.HasPrefix(contact.LinkedIn, "https://www.linkedin.com") {
		out.Add("odd_linkedin_url", types.SeverityWarning, "contact.linkedin",
			"LinkedIn URL should start with https://www.linkedin.com")
	}

	if contact.GitHub != "" && !strings.HasPrefix(contact.GitHub, "https://github.com") &&
		!strings.HasPrefix(contact.GitHub, "https://www.github.com") {
		out.Add("odd_github_url", types.SeverityWarning, "contact.github",
			"GitHub URL should start with https://github.com")
	}
}

func (v *Validator) validateExperience(experience []types.Experience, out *types.Violations) {
	if len(experience) == 0 {
		out.Add("no_experience", types.SeverityWarning, "experience",
			"consider adding work experience entries")
		return
	}

	for i, exp := range experience {
		path := fmt.Sprintf("experience[%d]", i)

		if utf8.RuneCountInString(strings.TrimSpace(exp.Title)) < minFieldLength {
			out.Add("short_title", types.SeverityError, path+".title",
				"job title must be at least 2 characters")
		}
		if utf8.RuneCountInString(strings.TrimSpace(exp.Company)) < minFieldLength {
			out.Add("short_company", types.SeverityError, path+".company",
				"company name must be at least 2 characters")
		}

		v.validateDateRange(exp.StartDate, exp.EndDate, path, types.SeverityError, out)
		v.validateBullets(exp.Bullets, path, out)
	}
}

func (v *Validator) validateEducation(education []types.Education, out *types.Violations) {
	if len(education) == 0 {
		out.Add("no_education", types.SeverityWarning, "education",
			"consider adding education entries")
		return
	}

	for i, edu := range education {
		path := fmt.Sprintf("education[%d]", i)

		if utf8.RuneCountInString(strings.TrimSpace(edu.Degree)) < minFieldLength {
			out.Add("short_degree", types.SeverityError, path+".degree",
				"degree name must be at least 2 characters")
		}
		if utf8.RuneCountInString(strings.TrimSpace(edu.School)) < minFieldLength {
			out.Add("short_school", types.SeverityError, path+".school",
				"school name must be at least 2 characters")
		}

		// Education dates are optional; problems are advisory only.
		if edu.StartDate != "" || edu.EndDate != "" {
			v.validateDateRange(edu.StartDate, edu.EndDate, path, types.SeverityWarning, out)
		}
	}
}

func (v *Validator) validateStructure(doc *types.ResumeData, out *types.Violations) {
	if len(doc.Sections()) < 3 {
		out.Add("sparse_resume", types.SeverityWarning, "",
			"resume should have at least 3 main sections (contact, experience, education)")
	}

	if doc.Summary == "" {
		out.Add("no_summary", types.SeverityWarning, "summary",
			"consider adding a professional summary")
	}

	if !doc.Skills.HasSkills() {
		out.Add("no_skills", types.SeverityWarning, "skills",
			"consider adding a skills section")
	}

	totalBullets := 0
	for _, exp := range doc.Experience {
		totalBullets += len(exp.Bullets)
	}
	if totalBullets < minTotalBullets {
		out.Add("few_bullets", types.SeverityWarning, "experience",
			fmt.Sprintf("resume should have at least %d achievement bullets across all experience", minTotalBullets))
	}
}

func (v *Validator) validateBullets(bullets []string, path string, out *types.Violations) {
	if len(bullets) == 0 {
		out.Add("no_bullets", types.SeverityWarning, path+".bullets",
			"consider adding achievement bullets")
		return
	}

	for i, bullet := range bullets {
		bulletPath := fmt.Sprintf("%s.bullets[%d]", path, i)
		length := utf8.RuneCountInString(bullet)

		if length < minBulletLength {
			out.Add("short_bullet", types.SeverityWarning, bulletPath,
				fmt.Sprintf("bullet point is very short (%d chars)", length))
		}
		if length > maxBulletLength {
			out.Add("long_bullet", types.SeverityWarning, bulletPath,
				fmt.Sprintf("bullet point is very long (%d chars)", length))
		}
	}
}

// validateDateRange checks presence, format, and ordering of a date pair.
// Ordering uses the normalizer's fail-open check, so an unparseable year is
// never reported as an ordering violation.
func (v *Validator) validateDateRange(startDate, endDate, path, severity string, out *types.Violations) {
	if strings.TrimSpace(startDate) == "" {
		out.Add("missing_start_date", severity, path+".start_date", "start date is missing")
		return
	}
	if strings.TrimSpace(endDate) == "" {
		out.Add("missing_end_date", severity, path+".end_date", "end date is missing")
		return
	}

	normalizedStart, normalizedEnd := v.dates.NormalizeRange(startDate, endDate)

	if !validDateFormat(normalizedStart) {
		out.Add("unrecognized_date", severity, path+".start_date",
			fmt.Sprintf("start date %q format is not recognized", startDate))
	}
	if !isOpenEnded(normalizedEnd) && !validDateFormat(normalizedEnd) {
		out.Add("unrecognized_date", severity, path+".end_date",
			fmt.Sprintf("end date %q format is not recognized", endDate))
	}

	if !v.dates.ValidateOrder(normalizedStart, normalizedEnd) {
		out.Add("dates_out_of_order", types.SeverityWarning, path,
			fmt.Sprintf("start date %q comes after end date %q", startDate, endDate))
	}
}

// validDateFormat reports whether a single date (not a range) follows one
// of the accepted shapes. Range strings are checked endpoint by endpoint.
func validDateFormat(dateStr string) bool {
	for _, part := range strings.Split(dateStr, " - ") {
		if !singleDateOK(strings.TrimSpace(part)) {
			return false
		}
	}
	return true
}

func singleDateOK(dateStr string) bool {
	if dateStr == "" {
		return false
	}
	if isOpenEnded(dateStr) {
		return true
	}
	for _, p := range datePatterns {
		if p.MatchString(dateStr) {
			return true
		}
	}
	return false
}

func isOpenEnded(dateStr string) bool {
	switch strings.ToLower(strings.TrimSpace(dateStr)) {
	case "present", "current", "ongoing", "unknown":
		return true
	}
	return false
}

func validPhone(phone string) bool {
	digits := nonDigits.ReplaceAllString(phone, "")
	return len(digits) >= 10 && len(digits) <= 15
}
