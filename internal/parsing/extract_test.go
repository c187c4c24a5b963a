package parsing

import (
	"testing"

	"github.com/electronicmaxwell/JobApplicationFiller/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `John Smith
Boston, MA
john.smith@example.com
+1 (555) 123-4567
linkedin.com/in/johnsmith

EDUCATION
Massachusetts Institute of Technology
Bachelor of Science in Computer Science
2015-2019
GPA: 3.8/4.0

EXPERIENCE
Senior Software Engineer
Acme Corporation
2019-2022
Built resilient data pipelines for enterprise clients.

SKILLS
Go, Python, Kubernetes, PostgreSQL

LANGUAGES
English - Native
Spanish (Professional working proficiency)
French

CERTIFICATIONS
AWS Certified Solutions Architect
2021

US Citizen, authorized to work without sponsorship.
`

func TestExtractEducation(t *testing.T) {
	tests := []struct {
		name     string
		section  string
		expected []types.EducationEntry
	}{
		{
			name:     "Empty section",
			section:  "",
			expected: nil,
		},
		{
			name:    "Full entry with degree dates and GPA",
			section: "Massachusetts Institute of Technology\nBachelor of Science in Computer Science\n2015-2019\nGPA: 3.8/4.0",
			expected: []types.EducationEntry{
				{
					Institution: "Massachusetts Institute of Technology",
					Degree:      "Bachelor of Science in Computer Science",
					Dates:       "2015-2019",
					GPA:         "3.8/4.0",
				},
			},
		},
		{
			name:    "Missing secondary attributes keep the record",
			section: "Stanford University",
			expected: []types.EducationEntry{
				{Institution: "Stanford University"},
			},
		},
		{
			name:     "No institution anchor discards the candidate",
			section:  "Bachelor of Arts\n2010-2014",
			expected: nil,
		},
		{
			name:    "Dates embedded in the anchor line are stripped",
			section: "Oakwood College, 2012-2016",
			expected: []types.EducationEntry{
				{Institution: "Oakwood College", Dates: "2012-2016"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractEducation(tt.section))
		})
	}
}

func TestExtractExperienceTitleIsPositional(t *testing.T) {
	section := "Senior Software Engineer\nAcme Corporation\n2019-2022\nBuilt resilient data pipelines for enterprise clients."

	entries := extractExperience(section)
	require.Len(t, entries, 1)

	assert.Equal(t, "Acme Corporation", entries[0].Company)
	assert.Equal(t, "Senior Software Engineer", entries[0].Title)
	assert.Equal(t, "2019-2022", entries[0].Dates)
	assert.Contains(t, entries[0].Description, "resilient data pipelines")
}

func TestExtractExperienceRequiresCompanyAnchor(t *testing.T) {
	section := "Senior Engineer\n2019-2022\nDid some things."
	assert.Nil(t, extractExperience(section))
}

func TestExtractExperiencePresentRange(t *testing.T) {
	section := "Staff Engineer\nGlobex LLC\n2020 - Present"

	entries := extractExperience(section)
	require.Len(t, entries, 1)
	assert.Equal(t, "2020-Present", entries[0].Dates)
}

func TestExtractCertifications(t *testing.T) {
	section := "AWS Certified Solutions Architect\n2021"

	entries := extractCertifications(section)
	require.Len(t, entries, 1)

	assert.Equal(t, "AWS Certified Solutions Architect", entries[0].Name)
	assert.Equal(t, "2021", entries[0].Date)
	assert.Equal(t, "Amazon Web Services", entries[0].Issuer)
}

func TestExtractSkills(t *testing.T) {
	tests := []struct {
		name     string
		section  string
		expected []string
	}{
		{"Empty", "", nil},
		{"Comma separated", "Go, Python, Kubernetes", []string{"Go", "Python", "Kubernetes"}},
		{"Bulleted lines", "- Go\n- Python\n- Go", []string{"Go", "Python"}},
		{"Mixed delimiters preserve order", "Go; Python | Rust\nTerraform", []string{"Go", "Python", "Rust", "Terraform"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractSkills(tt.section))
		})
	}
}

func TestExtractPersonalInfo(t *testing.T) {
	info := extractPersonalInfo(sampleResume)

	assert.Equal(t, "John Smith", info.FullName)
	assert.Equal(t, "john.smith@example.com", info.Email)
	assert.Equal(t, "+1 (555) 123-4567", info.Phone)
	assert.Equal(t, "Boston, MA", info.Location)
}

func TestExtractSocialLinks(t *testing.T) {
	links := extractSocialLinks(sampleResume)

	assert.Equal(t, "linkedin.com/in/johnsmith", links["linkedin"])
	assert.NotContains(t, links, "github")
}

func TestExtractWorkAuthorization(t *testing.T) {
	assert.Equal(t, "US Citizen, authorized to work without sponsorship.",
		extractWorkAuthorization(sampleResume))
	assert.Empty(t, extractWorkAuthorization("no relevant keywords here"))
}

func TestExtractProfileIdempotence(t *testing.T) {
	first := ExtractProfile(sampleResume)
	second := ExtractProfile(sampleResume)

	assert.Equal(t, first, second, "extraction must be deterministic over identical text")
}

func TestExtractProfileFromSampleResume(t *testing.T) {
	profile := ExtractProfile(sampleResume)

	require.Len(t, profile.Education, 1)
	assert.Equal(t, "Massachusetts Institute of Technology", profile.Education[0].Institution)

	require.Len(t, profile.Experience, 1)
	assert.Equal(t, "Acme Corporation", profile.Experience[0].Company)

	assert.Equal(t, []string{"Go", "Python", "Kubernetes", "PostgreSQL"}, profile.Skills)

	require.Len(t, profile.Languages, 3)
	assert.Equal(t, types.LanguageEntry{Language: "English", Proficiency: "Native"}, profile.Languages[0])
	assert.Equal(t, types.LanguageEntry{Language: "Spanish", Proficiency: "Professional"}, profile.Languages[1])
	assert.Equal(t, types.LanguageEntry{Language: "French", Proficiency: types.ProficiencyNotSpecified}, profile.Languages[2])
}
