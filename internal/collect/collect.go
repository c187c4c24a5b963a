// Package collect gathers missing profile fields interactively on the
// terminal. Every question may be skipped with a blank answer.
package collect

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"go.uber.org/zap"

	"github.com/electronicmaxwell/JobApplicationFiller/internal/types"
)

// workAuthorizationChoices is the fixed answer vocabulary offered for the
// work-authorization question. The last entry opens a free-text prompt.
var workAuthorizationChoices = []string{
	"US Citizen",
	"Permanent Resident",
	"Visa holder, requires sponsorship",
	"Authorized to work, no sponsorship required",
	"Other",
}

// proficiencyChoices mirrors the proficiency vocabulary used by resume
// extraction so collected and extracted languages stay comparable.
var proficiencyChoices = []string{
	"Native",
	"Fluent",
	"Professional",
	"Conversational",
	"Basic",
	types.ProficiencyNotSpecified,
}

// Collector asks the user for answers. The prompt functions default to
// promptui and are replaceable in tests.
type Collector struct {
	prompt func(label string) (string, error)
	choose func(label string, items []string) (string, error)
	log    *zap.Logger
}

// New returns a terminal-backed Collector. A nil logger disables logging.
func New(log *zap.Logger) *Collector {
	if log == nil {
		log = zap.NewNop()
	}
	return &Collector{
		prompt: runPrompt,
		choose: runSelect,
		log:    log,
	}
}

func runPrompt(label string) (string, error) {
	p := promptui.Prompt{Label: label}
	answer, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	return strings.TrimSpace(answer), nil
}

func runSelect(label string, items []string) (string, error) {
	s := promptui.Select{Label: label, Items: items}
	_, answer, err := s.Run()
	if err != nil {
		return "", fmt.Errorf("selection failed: %w", err)
	}
	return answer, nil
}

// Fill walks the missing-field list in order and writes the answers into
// the profile. Skipped questions leave the profile untouched.
func (c *Collector) Fill(profile *types.Profile, missing []types.MissingField) error {
	for _, field := range missing {
		if err := c.fillOne(profile, field); err != nil {
			return err
		}
	}
	return nil
}

func (c *Collector) fillOne(profile *types.Profile, field types.MissingField) error {
	switch field {
	case types.MissingFullName:
		return c.fillString("Full name", &profile.PersonalInfo.FullName)
	case types.MissingEmail:
		return c.fillString("Email address", &profile.PersonalInfo.Email)
	case types.MissingPhone:
		return c.fillString("Phone number", &profile.PersonalInfo.Phone)
	case types.MissingLocation:
		return c.fillString("Location (city, state)", &profile.PersonalInfo.Location)
	case types.MissingDateOfBirth:
		return c.fillString("Date of birth", &profile.PersonalInfo.DateOfBirth)
	case types.MissingEducation:
		return c.collectEducation(profile)
	case types.MissingCompleteEducationDetails:
		return c.completeEducation(profile)
	case types.MissingWorkExperience:
		return c.collectExperience(profile)
	case types.MissingCompleteWorkExperienceDetails:
		return c.completeExperience(profile)
	case types.MissingSkills:
		return c.collectSkills(profile)
	case types.MissingLanguages:
		return c.collectLanguages(profile)
	case types.MissingReferences:
		return c.collectReferences(profile)
	case types.MissingWorkAuthorization:
		return c.collectWorkAuthorization(profile)
	case types.MissingSocialMediaProfiles:
		return c.collectSocialMedia(profile)
	default:
		c.log.Warn("no collector for field", zap.String("field", string(field)))
		return nil
	}
}

func (c *Collector) fillString(label string, dst *string) error {
	answer, err := c.prompt(label + " (blank to skip)")
	if err != nil {
		return err
	}
	if answer != "" {
		*dst = answer
	}
	return nil
}

func (c *Collector) collectEducation(profile *types.Profile) error {
	for {
		institution, err := c.prompt("Institution (blank to finish)")
		if err != nil {
			return err
		}
		if institution == "" {
			return nil
		}
		entry := types.EducationEntry{Institution: institution}
		if err := c.fillString("Degree", &entry.Degree); err != nil {
			return err
		}
		if err := c.fillString("Dates (e.g. 2015-2019)", &entry.Dates); err != nil {
			return err
		}
		profile.Education = append(profile.Education, entry)
	}
}

func (c *Collector) completeEducation(profile *types.Profile) error {
	for i := range profile.Education {
		entry := &profile.Education[i]
		if entry.Degree == "" {
			if err := c.fillString("Degree at "+entry.Institution, &entry.Degree); err != nil {
				return err
			}
		}
		if entry.Dates == "" {
			if err := c.fillString("Dates at "+entry.Institution, &entry.Dates); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Collector) collectExperience(profile *types.Profile) error {
	for {
		company, err := c.prompt("Company (blank to finish)")
		if err != nil {
			return err
		}
		if company == "" {
			return nil
		}
		entry := types.ExperienceEntry{Company: company}
		if err := c.fillString("Job title", &entry.Title); err != nil {
			return err
		}
		if err := c.fillString("Dates (e.g. 2019-Present)", &entry.Dates); err != nil {
			return err
		}
		if err := c.fillString("Short description", &entry.Description); err != nil {
			return err
		}
		profile.Experience = append(profile.Experience, entry)
	}
}

func (c *Collector) completeExperience(profile *types.Profile) error {
	for i := range profile.Experience {
		entry := &profile.Experience[i]
		if entry.Title == "" {
			if err := c.fillString("Job title at "+entry.Company, &entry.Title); err != nil {
				return err
			}
		}
		if entry.Dates == "" {
			if err := c.fillString("Dates at "+entry.Company, &entry.Dates); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Collector) collectSkills(profile *types.Profile) error {
	answer, err := c.prompt("Skills, comma separated (blank to skip)")
	if err != nil {
		return err
	}
	for _, skill := range strings.Split(answer, ",") {
		skill = strings.TrimSpace(skill)
		if skill != "" {
			profile.Skills = append(profile.Skills, skill)
		}
	}
	return nil
}

func (c *Collector) collectLanguages(profile *types.Profile) error {
	for {
		language, err := c.prompt("Language (blank to finish)")
		if err != nil {
			return err
		}
		if language == "" {
			return nil
		}
		proficiency, err := c.choose("Proficiency in "+language, proficiencyChoices)
		if err != nil {
			return err
		}
		profile.Languages = append(profile.Languages, types.LanguageEntry{
			Language:    language,
			Proficiency: proficiency,
		})
	}
}

func (c *Collector) collectReferences(profile *types.Profile) error {
	for {
		reference, err := c.prompt("Reference, name and contact (blank to finish)")
		if err != nil {
			return err
		}
		if reference == "" {
			return nil
		}
		profile.References = append(profile.References, reference)
	}
}

func (c *Collector) collectWorkAuthorization(profile *types.Profile) error {
	answer, err := c.choose("Work authorization status", workAuthorizationChoices)
	if err != nil {
		return err
	}
	if answer == "Other" {
		answer, err = c.prompt("Work authorization status (blank to skip)")
		if err != nil {
			return err
		}
	}
	if answer != "" {
		profile.WorkAuthorization = answer
	}
	return nil
}

func (c *Collector) collectSocialMedia(profile *types.Profile) error {
	for {
		network, err := c.prompt("Social network, e.g. linkedin (blank to finish)")
		if err != nil {
			return err
		}
		if network == "" {
			return nil
		}
		url, err := c.prompt("Profile URL for " + network)
		if err != nil {
			return err
		}
		if url == "" {
			continue
		}
		if profile.SocialMedia == nil {
			profile.SocialMedia = make(map[string]string)
		}
		profile.SocialMedia[strings.ToLower(network)] = url
	}
}
