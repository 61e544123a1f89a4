// Package ats provides the ATS compliance formatting engine: date and
// header standardization plus the document-level formatting orchestrator.
package ats

// monthNames maps lowercase month-name variants to the canonical full
// capitalized month name. Three-letter abbreviations are accepted for every
// month, plus the common four-letter "sept".
var monthNames = map[string]string{
	"january": "January", "jan": "January",
	"february": "February", "feb": "February",
	"march": "March", "mar": "March",
	"april": "April", "apr": "April",
	"may":  "May",
	"june": "June", "jun": "June",
	"july": "July", "jul": "July",
	"august": "August", "aug": "August",
	"september": "September", "sep": "September", "sept": "September",
	"october": "October", "oct": "October",
	"november": "November", "nov": "November",
	"december": "December", "dec": "December",
}

// presentSynonyms is the closed set of tokens that mean "ongoing, no end
// date". All of them canonicalize to the literal "Present".
var presentSynonyms = map[string]bool{
	"present": true,
	"current": true,
	"now":     true,
	"ongoing": true,
	"today":   true,
}

// Canonical section header display strings, keyed by category.
var standardHeaders = map[string]string{
	"summary":        "Summary",
	"experience":     "Experience",
	"education":      "Education",
	"skills":         "Skills",
	"certifications": "Certifications",
	"projects":       "Projects",
	"contact":        "Contact Information",
}

// headerSynonyms lists, per category, every header variant that maps to the
// canonical header. The sets are closed and non-overlapping by construction.
var headerSynonyms = map[string][]string{
	"summary": {
		"summary", "professional summary", "executive summary", "profile",
		"professional profile", "career summary", "overview", "objective",
		"career objective", "professional objective",
	},
	"experience": {
		"experience", "work experience", "professional experience",
		"employment", "employment history", "work history",
		"career history", "professional background", "positions held",
		"relevant experience",
	},
	"education": {
		"education", "academic background", "academic history",
		"educational background", "academic qualifications",
		"qualifications", "academic credentials", "degrees",
		"education and training", "formal education",
	},
	"skills": {
		"skills", "technical skills", "core competencies",
		"competencies", "areas of expertise", "expertise",
		"capabilities", "proficiencies", "technical proficiencies",
		"key skills", "skill set", "technologies",
	},
	"certifications": {
		"certifications", "certificates", "professional certifications",
		"licenses", "licenses and certifications", "credentials",
		"professional credentials", "accreditations",
		"professional development", "training",
	},
	"projects": {
		"projects", "key projects", "notable projects",
		"project experience", "selected projects",
		"project portfolio", "accomplishments",
		"key accomplishments", "achievements",
	},
	"contact": {
		"contact", "contact information", "contact details",
		"personal information", "personal details", "contact info",
	},
}

// headerCategories is the reverse index: lowercase variant -> category key.
// Built once at package init; read-only afterwards.
var headerCategories = buildHeaderIndex()

func buildHeaderIndex() map[string]string {
	index := make(map[string]string)
	for category, variants := range headerSynonyms {
		for _, variant := range variants {
			index[variant] = category
		}
	}
	return index
}

// preferredHeaderOrder is the ATS-preferred ordering of canonical headers.
// Headers outside this list sort after all known ones.
var preferredHeaderOrder = []string{
	"Contact Information",
	"Summary",
	"Experience",
	"Education",
	"Skills",
	"Projects",
	"Certifications",
}
