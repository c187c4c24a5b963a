package profile

import (
	"encoding/json"
	"strings"

	"github.com/electronicmaxwell/JobApplicationFiller/internal/types"
)

// completenessRule pairs a ticket with the predicate that decides whether
// the ticket applies. Rules are evaluated in slice order and each appends
// at most one ticket; the output order is a contract consumed by the
// collection interface.
type completenessRule struct {
	ticket  types.MissingField
	applies func(p *types.Profile, serialized string) bool
}

var workAuthorizationSignals = []string{
	"citizen", "permanent resident", "work authorization", "visa",
}

var socialMediaSignals = []string{
	"linkedin", "github", "twitter", "facebook", "instagram",
}

// completenessRules is the fixed rule table, in emission order.
var completenessRules = []completenessRule{
	{types.MissingFullName, func(p *types.Profile, _ string) bool {
		return strings.TrimSpace(p.PersonalInfo.FullName) == ""
	}},
	{types.MissingEmail, func(p *types.Profile, _ string) bool {
		return strings.TrimSpace(p.PersonalInfo.Email) == ""
	}},
	{types.MissingPhone, func(p *types.Profile, _ string) bool {
		return strings.TrimSpace(p.PersonalInfo.Phone) == ""
	}},
	{types.MissingLocation, func(p *types.Profile, _ string) bool {
		return strings.TrimSpace(p.PersonalInfo.Location) == ""
	}},
	{types.MissingDateOfBirth, func(p *types.Profile, _ string) bool {
		return strings.TrimSpace(p.PersonalInfo.DateOfBirth) == ""
	}},
	{types.MissingEducation, func(p *types.Profile, _ string) bool {
		return len(p.Education) == 0
	}},
	{types.MissingCompleteEducationDetails, func(p *types.Profile, _ string) bool {
		for _, e := range p.Education {
			if e.Degree == "" || e.Dates == "" {
				return true
			}
		}
		return false
	}},
	{types.MissingWorkExperience, func(p *types.Profile, _ string) bool {
		return len(p.Experience) == 0
	}},
	{types.MissingCompleteWorkExperienceDetails, func(p *types.Profile, _ string) bool {
		for _, e := range p.Experience {
			if e.Title == "" || e.Dates == "" {
				return true
			}
		}
		return false
	}},
	{types.MissingSkills, func(p *types.Profile, _ string) bool {
		return len(p.Skills) == 0
	}},
	{types.MissingLanguages, func(p *types.Profile, _ string) bool {
		return len(p.Languages) == 0
	}},
	// Resumes never carry references, so the ticket is unconditional.
	{types.MissingReferences, func(_ *types.Profile, _ string) bool {
		return true
	}},
	{types.MissingWorkAuthorization, func(_ *types.Profile, serialized string) bool {
		return !containsAnySignal(serialized, workAuthorizationSignals)
	}},
	{types.MissingSocialMediaProfiles, func(_ *types.Profile, serialized string) bool {
		return !containsAnySignal(serialized, socialMediaSignals)
	}},
}

// Analyze inspects an assembled Profile and returns missing-field tickets
// in the documented rule order. The result is deterministic for a fixed
// Profile. completeEducationDetails and completeWorkExperienceDetails are
// emitted once per list, not once per entry.
func Analyze(p *types.Profile) []types.MissingField {
	serialized := Serialize(p)

	var tickets []types.MissingField
	for _, rule := range completenessRules {
		if rule.applies(p, serialized) {
			tickets = append(tickets, rule.ticket)
		}
	}
	return tickets
}

// Serialize renders the whole profile as lowercase text for keyword gates.
func Serialize(p *types.Profile) string {
	data, err := json.Marshal(p)
	if err != nil {
		return ""
	}
	return strings.ToLower(string(data))
}

func containsAnySignal(serialized string, signals []string) bool {
	for _, signal := range signals {
		if strings.Contains(serialized, signal) {
			return true
		}
	}
	return false
}
