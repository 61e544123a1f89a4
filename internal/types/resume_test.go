package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumeData_Clone_DeepCopy(t *testing.T) {
	original := &ResumeData{
		Contact: ContactInfo{Name: "Jane Doe", Email: "jane@example.com"},
		Experience: []Experience{
			{Title: "Engineer", Company: "Acme", Bullets: []string{"Did a thing"}},
		},
		Skills: &Skills{
			Categories: []SkillCategory{{Name: "Languages", Skills: []string{"Go"}}},
			RawSkills:  []string{"SQL"},
		},
		AdditionalSections: map[string][]string{
			"Awards": {"Best in show"},
		},
	}

	clone := original.Clone()

	require.Equal(t, original, clone)

	clone.Contact.Name = "Someone Else"
	clone.Experience[0].Bullets[0] = "changed"
	clone.Skills.RawSkills[0] = "changed"
	clone.Skills.Categories[0].Skills[0] = "changed"
	clone.AdditionalSections["Awards"][0] = "changed"

	assert.Equal(t, "Jane Doe", original.Contact.Name)
	assert.Equal(t, "Did a thing", original.Experience[0].Bullets[0])
	assert.Equal(t, "SQL", original.Skills.RawSkills[0])
	assert.Equal(t, "Go", original.Skills.Categories[0].Skills[0])
	assert.Equal(t, "Best in show", original.AdditionalSections["Awards"][0])
}

func TestResumeData_Clone_Nil(t *testing.T) {
	var empty *ResumeData
	assert.Nil(t, empty.Clone())
}

func TestResumeData_Sections(t *testing.T) {
	doc := &ResumeData{
		Contact:    ContactInfo{Name: "Jane Doe"},
		Summary:    "Engineer",
		Experience: []Experience{{Title: "Engineer"}},
		AdditionalSections: map[string][]string{
			"Volunteering": {"Soup kitchen"},
			"Awards":       {"Best in show"},
		},
	}

	sections := doc.Sections()

	// Standard sections in resume order, custom sections sorted after.
	assert.Equal(t, []string{"contact", "summary", "experience", "Awards", "Volunteering"}, sections)
}

func TestSkills_HasSkills(t *testing.T) {
	var none *Skills
	assert.False(t, none.HasSkills())
	assert.False(t, (&Skills{}).HasSkills())
	assert.True(t, (&Skills{RawSkills: []string{"Go"}}).HasSkills())
	assert.True(t, (&Skills{Categories: []SkillCategory{{Name: "Languages", Skills: []string{"Go"}}}}).HasSkills())
}

func TestViolations_SeverityFiltering(t *testing.T) {
	v := &Violations{}
	v.Add("missing_email", SeverityError, "contact.email", "email address is required")
	v.Add("no_summary", SeverityWarning, "summary", "consider adding a summary")

	assert.False(t, v.Valid())
	require.Len(t, v.Errors(), 1)
	assert.Equal(t, "missing_email", v.Errors()[0].Type)
}

func TestViolations_WarningsOnlyIsValid(t *testing.T) {
	v := &Violations{}
	v.Add("no_summary", SeverityWarning, "summary", "consider adding a summary")

	assert.True(t, v.Valid())
	assert.Empty(t, v.Errors())
}
