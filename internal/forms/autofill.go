package forms

import (
	"strings"

	"github.com/electronicmaxwell/JobApplicationFiller/internal/types"
)

// SkipReason explains why a classified field was not filled.
type SkipReason string

// Skip reasons reported per field. A skipped field is reported, never
// forced.
const (
	SkipNoValue          SkipReason = "no value"
	SkipNoMatchingOption SkipReason = "no matching option"
)

// FilledField records one resolved fill.
type FilledField struct {
	Descriptor types.DomFieldDescriptor `json:"descriptor"`
	Category   types.Category           `json:"category"`
	Value      string                   `json:"value"`
}

// SkippedField records one field that could not be filled and why.
type SkippedField struct {
	Descriptor types.DomFieldDescriptor `json:"descriptor"`
	Category   types.Category           `json:"category"`
	Reason     SkipReason               `json:"reason"`
}

// FillReport is the unit of output of the autofill mapper: how many fields
// resolved to values and which were skipped, with reasons.
type FillReport struct {
	Filled  []FilledField  `json:"filled"`
	Skipped []SkippedField `json:"skipped"`
}

// FilledCount returns the number of resolved fills.
func (r *FillReport) FilledCount() int { return len(r.Filled) }

// MapValues resolves a Profile against classified fields into concrete
// values. Fields classified CategoryNone are not attempted. Enumerated
// controls match by case-insensitive substring of the option display text;
// a computed value with no matching option is skipped, never forced.
func MapValues(p *types.Profile, classifications []types.FieldClassification) *FillReport {
	report := &FillReport{}

	for _, fc := range classifications {
		if fc.Category == types.CategoryNone {
			continue
		}

		value := resolveValue(p, fc)
		if value == "" {
			report.Skipped = append(report.Skipped, SkippedField{
				Descriptor: fc.Descriptor,
				Category:   fc.Category,
				Reason:     SkipNoValue,
			})
			continue
		}

		if fc.Descriptor.Enumerated() {
			option, ok := matchOption(fc.Descriptor.Options, value)
			if !ok {
				report.Skipped = append(report.Skipped, SkippedField{
					Descriptor: fc.Descriptor,
					Category:   fc.Category,
					Reason:     SkipNoMatchingOption,
				})
				continue
			}
			value = option
		}

		report.Filled = append(report.Filled, FilledField{
			Descriptor: fc.Descriptor,
			Category:   fc.Category,
			Value:      value,
		})
	}

	return report
}

// resolveValue computes the raw value for one classified field from the
// profile.
func resolveValue(p *types.Profile, fc types.FieldClassification) string {
	switch fc.Category {
	case types.CategoryFirstName:
		return p.PersonalInfo.FirstName()
	case types.CategoryLastName:
		return p.PersonalInfo.LastName()
	case types.CategoryFullName:
		return p.PersonalInfo.FullName
	case types.CategoryEmail:
		return p.PersonalInfo.Email
	case types.CategoryPhone:
		return p.PersonalInfo.Phone
	case types.CategoryAddress:
		return p.PersonalInfo.Location
	case types.CategoryCity:
		return locationCity(p.PersonalInfo.Location)
	case types.CategoryState:
		return locationState(p.PersonalInfo.Location)
	case types.CategoryZip:
		// The profile carries no postal code; zip fields are reported as
		// skipped rather than filled with the location.
		return ""
	case types.CategoryEducation:
		return educationValue(p.Education, fc.Descriptor.Multiline())
	case types.CategoryExperience:
		return experienceValue(p.Experience, fc.Descriptor.Multiline())
	case types.CategorySkills:
		return strings.Join(p.Skills, ", ")
	default:
		return ""
	}
}

// locationCity returns the part before the comma of a "City, ST" location,
// or the whole location when it has no comma.
func locationCity(location string) string {
	city, _, found := strings.Cut(location, ",")
	if !found {
		return strings.TrimSpace(location)
	}
	return strings.TrimSpace(city)
}

// locationState returns the part after the comma of a "City, ST" location.
// A location without that shape yields no state rather than a guess.
func locationState(location string) string {
	_, state, found := strings.Cut(location, ",")
	if !found {
		return ""
	}
	return strings.TrimSpace(state)
}

// educationValue joins all entries for multi-line controls; single-line
// controls get only the most recent (index 0) entry.
func educationValue(entries []types.EducationEntry, multiline bool) string {
	if len(entries) == 0 {
		return ""
	}
	if !multiline {
		return formatEducation(entries[0])
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, formatEducation(e))
	}
	return strings.Join(lines, "\n")
}

func experienceValue(entries []types.ExperienceEntry, multiline bool) string {
	if len(entries) == 0 {
		return ""
	}
	if !multiline {
		return formatExperience(entries[0])
	}
	blocks := make([]string, 0, len(entries))
	for _, e := range entries {
		blocks = append(blocks, formatExperience(e))
	}
	return strings.Join(blocks, "\n\n")
}

// formatEducation renders "institution, degree, dates", omitting absent
// parts.
func formatEducation(e types.EducationEntry) string {
	return joinParts(e.Institution, e.Degree, e.Dates)
}

// formatExperience renders "company, title, dates" with the description on
// its own line.
func formatExperience(e types.ExperienceEntry) string {
	head := joinParts(e.Company, e.Title, e.Dates)
	if e.Description == "" {
		return head
	}
	return head + "\n" + e.Description
}

func joinParts(parts ...string) string {
	kept := parts[:0:0]
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, ", ")
}

// matchOption finds the option whose display text contains the computed
// value as a case-insensitive substring. The option value is returned, or
// the display text when the value attribute is empty.
func matchOption(options []types.OptionDescriptor, value string) (string, bool) {
	needle := strings.ToLower(value)
	for _, option := range options {
		if strings.Contains(strings.ToLower(option.Text), needle) {
			if option.Value != "" {
				return option.Value, true
			}
			return option.Text, true
		}
	}
	return "", false
}
