package profile

import (
	"testing"

	"github.com/electronicmaxwell/JobApplicationFiller/internal/types"
	"github.com/stretchr/testify/assert"
)

func populatedProfile() *types.Profile {
	return &types.Profile{
		PersonalInfo: types.PersonalInfo{
			FullName:    "Jane Q Public",
			Email:       "jane@example.com",
			Phone:       "+1 555 000 1111",
			Location:    "Austin, TX",
			DateOfBirth: "1990-04-01",
		},
		Education: []types.EducationEntry{
			{Institution: "MIT", Degree: "BS", Dates: "2010-2014"},
		},
		Experience: []types.ExperienceEntry{
			{Company: "Acme Corp", Title: "Engineer", Dates: "2014-2020"},
		},
		Skills:    []string{"Go", "Rust"},
		Languages: []types.LanguageEntry{{Language: "English", Proficiency: "Native"}},
	}
}

func TestMergeMonotonicity(t *testing.T) {
	dst := populatedProfile()
	before := *dst

	Merge(dst, &types.Profile{})

	assert.Equal(t, before.PersonalInfo, dst.PersonalInfo, "empty fragment must not null out personal info")
	assert.Equal(t, before.Education, dst.Education)
	assert.Equal(t, before.Experience, dst.Experience)
	assert.Equal(t, before.Skills, dst.Skills)
	assert.Equal(t, before.Languages, dst.Languages)
}

func TestMergeDoesNotOverwritePopulatedFields(t *testing.T) {
	dst := populatedProfile()

	Merge(dst, &types.Profile{
		PersonalInfo: types.PersonalInfo{FullName: "Someone Else", Email: ""},
	})

	assert.Equal(t, "Jane Q Public", dst.PersonalInfo.FullName, "populated field keeps its first value")
}

func TestMergeReassemblyIsIdempotent(t *testing.T) {
	fragment := populatedProfile()
	dst := &types.Profile{}

	Merge(dst, fragment)
	once := *dst
	Merge(dst, fragment)

	assert.Equal(t, once.Education, dst.Education, "re-assembly must not duplicate entries")
	assert.Equal(t, once.Experience, dst.Experience)
	assert.Equal(t, once.Skills, dst.Skills)
	assert.Equal(t, once.Languages, dst.Languages)
}

func TestMergeDiscardsEntriesWithoutPrimaryField(t *testing.T) {
	dst := &types.Profile{}

	Merge(dst, &types.Profile{
		Education:  []types.EducationEntry{{Degree: "BS", Dates: "2010-2014"}},
		Experience: []types.ExperienceEntry{{Title: "Engineer"}},
		Languages:  []types.LanguageEntry{{Proficiency: "Fluent"}},
	})

	assert.Empty(t, dst.Education)
	assert.Empty(t, dst.Experience)
	assert.Empty(t, dst.Languages)
}

func TestMergeSkillsSetSemantics(t *testing.T) {
	dst := &types.Profile{Skills: []string{"Go", "Python"}}

	Merge(dst, &types.Profile{Skills: []string{"go", "Rust", "Python", "Terraform"}})

	assert.Equal(t, []string{"Go", "Python", "Rust", "Terraform"}, dst.Skills,
		"skills deduplicate case-insensitively preserving first-seen order")
}
