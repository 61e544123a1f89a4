// Package types provides type definitions for structured resume data used throughout the resume-forge system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "sort"

// ContactInfo represents the contact block of a resume
type ContactInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
	Location string `json:"location,omitempty"`
}

// Experience represents a single work experience entry
type Experience struct {
	Title     string   `json:"title"`
	Company   string   `json:"company"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Location  string   `json:"location,omitempty"`
	Bullets   []string `json:"bullets,omitempty"`
}

// Education represents a single education entry
type Education struct {
	Degree     string   `json:"degree"`
	School     string   `json:"school"`
	StartDate  string   `json:"start_date,omitempty"`
	EndDate    string   `json:"end_date,omitempty"`
	Location   string   `json:"location,omitempty"`
	GPA        string   `json:"gpa,omitempty"`
	Honors     []string `json:"honors,omitempty"`
	Coursework []string `json:"coursework,omitempty"`
}

// SkillCategory represents a named group of related skills
type SkillCategory struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// Skills represents the skills section, either categorized or flat
type Skills struct {
	Categories []SkillCategory `json:"categories,omitempty"`
	RawSkills  []string        `json:"raw_skills,omitempty"`
}

// HasSkills reports whether any skills are defined
func (s *Skills) HasSkills() bool {
	return s != nil && (len(s.Categories) > 0 || len(s.RawSkills) > 0)
}

// Project represents a project entry (optional section)
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Bullets      []string `json:"bullets,omitempty"`
	URL          string   `json:"url,omitempty"`
	Date         string   `json:"date,omitempty"`
}

// Certification represents a professional certification
type Certification struct {
	Name         string `json:"name"`
	Issuer       string `json:"issuer"`
	Date         string `json:"date"`
	Expiry       string `json:"expiry,omitempty"`
	CredentialID string `json:"credential_id,omitempty"`
}

// ResumeData is the root model containing all resume sections.
// Contact is the only required section; everything else is optional.
type ResumeData struct {
	Contact            ContactInfo         `json:"contact"`
	Summary            string              `json:"summary,omitempty"`
	Experience         []Experience        `json:"experience,omitempty"`
	Education          []Education         `json:"education,omitempty"`
	Skills             *Skills             `json:"skills,omitempty"`
	Projects           []Project           `json:"projects,omitempty"`
	Certifications     []Certification     `json:"certifications,omitempty"`
	AdditionalSections map[string][]string `json:"additional_sections,omitempty"`
}

// Clone returns a deep copy of the resume. Formatting always works on a
// copy so the caller's document is never mutated in place.
func (r *ResumeData) Clone() *ResumeData {
	if r == nil {
		return nil
	}

	out := *r
	out.Experience = append([]Experience(nil), r.Experience...)
	for i := range out.Experience {
		out.Experience[i].Bullets = append([]string(nil), r.Experience[i].Bullets...)
	}
	out.Education = append([]Education(nil), r.Education...)
	for i := range out.Education {
		out.Education[i].Honors = append([]string(nil), r.Education[i].Honors...)
		out.Education[i].Coursework = append([]string(nil), r.Education[i].Coursework...)
	}
	if r.Skills != nil {
		skills := Skills{
			Categories: append([]SkillCategory(nil), r.Skills.Categories...),
			RawSkills:  append([]string(nil), r.Skills.RawSkills...),
		}
		for i := range skills.Categories {
			skills.Categories[i].Skills = append([]string(nil), r.Skills.Categories[i].Skills...)
		}
		out.Skills = &skills
	}
	out.Projects = append([]Project(nil), r.Projects...)
	for i := range out.Projects {
		out.Projects[i].Technologies = append([]string(nil), r.Projects[i].Technologies...)
		out.Projects[i].Bullets = append([]string(nil), r.Projects[i].Bullets...)
	}
	out.Certifications = append([]Certification(nil), r.Certifications...)
	if r.AdditionalSections != nil {
		out.AdditionalSections = make(map[string][]string, len(r.AdditionalSections))
		for name, lines := range r.AdditionalSections {
			out.AdditionalSections[name] = append([]string(nil), lines...)
		}
	}
	return &out
}

// Sections returns the names of all populated sections, in resume order.
// Additional custom sections are appended after the standard ones.
func (r *ResumeData) Sections() []string {
	sections := []string{"contact"}
	if r.Summary != "" {
		sections = append(sections, "summary")
	}
	if len(r.Experience) > 0 {
		sections = append(sections, "experience")
	}
	if len(r.Education) > 0 {
		sections = append(sections, "education")
	}
	if r.Skills.HasSkills() {
		sections = append(sections, "skills")
	}
	if len(r.Projects) > 0 {
		sections = append(sections, "projects")
	}
	if len(r.Certifications) > 0 {
		sections = append(sections, "certifications")
	}
	extra := make([]string, 0, len(r.AdditionalSections))
	for name := range r.AdditionalSections {
		extra = append(extra, name)
	}
	// Map iteration order is random; sort for deterministic output.
	sort.Strings(extra)
	return append(sections, extra...)
}
