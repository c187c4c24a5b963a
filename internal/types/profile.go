// Package types provides type definitions for structured data used throughout the job application filler.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Profile is the canonical structured representation of a person's
// job-application data. It is the single mutable aggregate per person;
// everything else in the system either produces fragments of it or reads it.
type Profile struct {
	PersonalInfo      PersonalInfo          `json:"personal_info"`
	Education         []EducationEntry      `json:"education"`
	Experience        []ExperienceEntry     `json:"experience"`
	Skills            []string              `json:"skills"`
	Languages         []LanguageEntry       `json:"languages"`
	Certifications    []CertificationEntry  `json:"certifications"`
	References        []string              `json:"references,omitempty"`
	WorkAuthorization string                `json:"work_authorization,omitempty"`
	SocialMedia       map[string]string     `json:"social_media,omitempty"`
	Credentials       map[string]Credential `json:"credentials,omitempty"`
}

// PersonalInfo holds the top-level contact attributes extracted from a resume.
type PersonalInfo struct {
	FullName    string `json:"full_name,omitempty"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	Phone       string `json:"phone,omitempty"`
	Location    string `json:"location,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
}

// EducationEntry represents one education record. Institution is the primary
// identifying field; extraction that cannot find it discards the candidate.
type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree,omitempty"`
	Dates       string `json:"dates,omitempty"`
	GPA         string `json:"gpa,omitempty"`
}

// ExperienceEntry represents one work experience record. Company is the
// primary identifying field.
type ExperienceEntry struct {
	Company     string `json:"company"`
	Title       string `json:"title,omitempty"`
	Dates       string `json:"dates,omitempty"`
	Description string `json:"description,omitempty"`
}

// LanguageEntry represents a spoken language and its proficiency level.
// Proficiency is free text or one of the fixed vocabulary values
// Native, Fluent, Professional, Not specified.
type LanguageEntry struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

// ProficiencyNotSpecified is the default proficiency when a language is
// found without a confident proficiency keyword nearby.
const ProficiencyNotSpecified = "Not specified"

// CertificationEntry represents one certification record. Name is the
// primary identifying field.
type CertificationEntry struct {
	Name   string `json:"name"`
	Date   string `json:"date,omitempty"`
	Issuer string `json:"issuer,omitempty"`
}

// Credential holds login credentials for one site. It is created by user
// input, consumed only by the site authenticator and must never be logged.
type Credential struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// FirstName returns the first whitespace token of the full name.
// Single-token names yield the same value for FirstName and LastName.
func (p PersonalInfo) FirstName() string {
	tokens := strings.Fields(p.FullName)
	if len(tokens) == 0 {
		return ""
	}
	return tokens[0]
}

// LastName returns the last whitespace token of the full name.
func (p PersonalInfo) LastName() string {
	tokens := strings.Fields(p.FullName)
	if len(tokens) == 0 {
		return ""
	}
	return tokens[len(tokens)-1]
}
