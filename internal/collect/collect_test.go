package collect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/electronicmaxwell/JobApplicationFiller/internal/types"
)

// scriptedCollector returns canned answers in order. Select questions pick
// the scripted answer verbatim.
func scriptedCollector(t *testing.T, answers ...string) *Collector {
	t.Helper()
	i := 0
	next := func() string {
		require.Less(t, i, len(answers), "ran out of scripted answers")
		answer := answers[i]
		i++
		return answer
	}
	return &Collector{
		prompt: func(string) (string, error) { return next(), nil },
		choose: func(string, []string) (string, error) { return next(), nil },
		log:    zap.NewNop(),
	}
}

func TestFillPersonalFields(t *testing.T) {
	c := scriptedCollector(t, "John Smith", "john@example.com")
	profile := &types.Profile{}

	err := c.Fill(profile, []types.MissingField{types.MissingFullName, types.MissingEmail})

	require.NoError(t, err)
	assert.Equal(t, "John Smith", profile.PersonalInfo.FullName)
	assert.Equal(t, "john@example.com", profile.PersonalInfo.Email)
}

func TestFillBlankAnswerSkips(t *testing.T) {
	c := scriptedCollector(t, "")
	profile := &types.Profile{PersonalInfo: types.PersonalInfo{Phone: "+1 555"}}

	err := c.Fill(profile, []types.MissingField{types.MissingPhone})

	require.NoError(t, err)
	assert.Equal(t, "+1 555", profile.PersonalInfo.Phone)
}

func TestCollectEducationLoopsUntilBlank(t *testing.T) {
	c := scriptedCollector(t,
		"MIT", "BSc Computer Science", "2015-2019",
		"Harvard", "", "2019-2021",
		"",
	)
	profile := &types.Profile{}

	err := c.Fill(profile, []types.MissingField{types.MissingEducation})

	require.NoError(t, err)
	require.Len(t, profile.Education, 2)
	assert.Equal(t, types.EducationEntry{
		Institution: "MIT",
		Degree:      "BSc Computer Science",
		Dates:       "2015-2019",
	}, profile.Education[0])
	assert.Equal(t, "Harvard", profile.Education[1].Institution)
	assert.Empty(t, profile.Education[1].Degree)
}

func TestCompleteEducationOnlyAsksForGaps(t *testing.T) {
	c := scriptedCollector(t, "2015-2019")
	profile := &types.Profile{
		Education: []types.EducationEntry{
			{Institution: "MIT", Degree: "BSc"},
			{Institution: "Harvard", Degree: "MSc", Dates: "2019-2021"},
		},
	}

	err := c.Fill(profile, []types.MissingField{types.MissingCompleteEducationDetails})

	require.NoError(t, err)
	assert.Equal(t, "2015-2019", profile.Education[0].Dates)
	assert.Equal(t, "2019-2021", profile.Education[1].Dates)
}

func TestCompleteExperienceOnlyAsksForGaps(t *testing.T) {
	c := scriptedCollector(t, "Engineer")
	profile := &types.Profile{
		Experience: []types.ExperienceEntry{
			{Company: "Acme Corp", Dates: "2019-Present"},
		},
	}

	err := c.Fill(profile, []types.MissingField{types.MissingCompleteWorkExperienceDetails})

	require.NoError(t, err)
	assert.Equal(t, "Engineer", profile.Experience[0].Title)
}

func TestCollectSkillsSplitsCommaList(t *testing.T) {
	c := scriptedCollector(t, "Go, Python , , SQL")
	profile := &types.Profile{}

	err := c.Fill(profile, []types.MissingField{types.MissingSkills})

	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Python", "SQL"}, profile.Skills)
}

func TestCollectLanguagesUsesProficiencyVocabulary(t *testing.T) {
	c := scriptedCollector(t, "Spanish", "Fluent", "")
	profile := &types.Profile{}

	err := c.Fill(profile, []types.MissingField{types.MissingLanguages})

	require.NoError(t, err)
	require.Len(t, profile.Languages, 1)
	assert.Equal(t, types.LanguageEntry{Language: "Spanish", Proficiency: "Fluent"}, profile.Languages[0])
}

func TestCollectWorkAuthorizationOtherFallsBackToFreeText(t *testing.T) {
	c := scriptedCollector(t, "Other", "EU Blue Card")
	profile := &types.Profile{}

	err := c.Fill(profile, []types.MissingField{types.MissingWorkAuthorization})

	require.NoError(t, err)
	assert.Equal(t, "EU Blue Card", profile.WorkAuthorization)
}

func TestCollectSocialMediaLowercasesNetwork(t *testing.T) {
	c := scriptedCollector(t, "LinkedIn", "https://linkedin.com/in/jsmith", "")
	profile := &types.Profile{}

	err := c.Fill(profile, []types.MissingField{types.MissingSocialMediaProfiles})

	require.NoError(t, err)
	assert.Equal(t, "https://linkedin.com/in/jsmith", profile.SocialMedia["linkedin"])
}

func TestCollectReferences(t *testing.T) {
	c := scriptedCollector(t, "Jane Doe, jane@example.com", "")
	profile := &types.Profile{}

	err := c.Fill(profile, []types.MissingField{types.MissingReferences})

	require.NoError(t, err)
	assert.Equal(t, []string{"Jane Doe, jane@example.com"}, profile.References)
}
