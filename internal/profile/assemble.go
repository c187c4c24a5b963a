// Package profile merges extraction fragments into the canonical Profile
// and analyzes an assembled Profile for missing or incomplete fields.
package profile

import (
	"strings"

	"github.com/electronicmaxwell/JobApplicationFiller/internal/types"
)

// Merge assembles a fragment into dst. The merge is monotonic: a populated
// field is never overwritten by an empty one, entry lists only grow, and
// re-assembling the same fragment is a no-op. Entries missing their primary
// identifying field are discarded.
func Merge(dst, fragment *types.Profile) {
	if fragment == nil {
		return
	}

	mergePersonal(&dst.PersonalInfo, fragment.PersonalInfo)

	for _, entry := range fragment.Education {
		if strings.TrimSpace(entry.Institution) == "" {
			continue
		}
		if !containsEducation(dst.Education, entry) {
			dst.Education = append(dst.Education, entry)
		}
	}

	for _, entry := range fragment.Experience {
		if strings.TrimSpace(entry.Company) == "" {
			continue
		}
		if !containsExperience(dst.Experience, entry) {
			dst.Experience = append(dst.Experience, entry)
		}
	}

	dst.Skills = mergeSkills(dst.Skills, fragment.Skills)

	for _, entry := range fragment.Languages {
		if strings.TrimSpace(entry.Language) == "" {
			continue
		}
		if !containsLanguage(dst.Languages, entry.Language) {
			dst.Languages = append(dst.Languages, entry)
		}
	}

	for _, entry := range fragment.Certifications {
		if strings.TrimSpace(entry.Name) == "" {
			continue
		}
		if !containsCertification(dst.Certifications, entry.Name) {
			dst.Certifications = append(dst.Certifications, entry)
		}
	}

	for _, ref := range fragment.References {
		if ref != "" && !containsString(dst.References, ref) {
			dst.References = append(dst.References, ref)
		}
	}

	if dst.WorkAuthorization == "" {
		dst.WorkAuthorization = fragment.WorkAuthorization
	}

	for name, url := range fragment.SocialMedia {
		if url == "" {
			continue
		}
		if dst.SocialMedia == nil {
			dst.SocialMedia = make(map[string]string)
		}
		if _, ok := dst.SocialMedia[name]; !ok {
			dst.SocialMedia[name] = url
		}
	}

	for site, credential := range fragment.Credentials {
		if dst.Credentials == nil {
			dst.Credentials = make(map[string]types.Credential)
		}
		if _, ok := dst.Credentials[site]; !ok {
			dst.Credentials[site] = credential
		}
	}
}

func mergePersonal(dst *types.PersonalInfo, src types.PersonalInfo) {
	if dst.FullName == "" {
		dst.FullName = src.FullName
	}
	if dst.Email == "" {
		dst.Email = src.Email
	}
	if dst.Phone == "" {
		dst.Phone = src.Phone
	}
	if dst.Location == "" {
		dst.Location = src.Location
	}
	if dst.DateOfBirth == "" {
		dst.DateOfBirth = src.DateOfBirth
	}
}

// mergeSkills deduplicates with set semantics while preserving first-seen
// order.
func mergeSkills(existing, incoming []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, skill := range existing {
		seen[strings.ToLower(skill)] = true
	}
	for _, skill := range incoming {
		skill = strings.TrimSpace(skill)
		if skill == "" || seen[strings.ToLower(skill)] {
			continue
		}
		seen[strings.ToLower(skill)] = true
		existing = append(existing, skill)
	}
	return existing
}

func containsEducation(entries []types.EducationEntry, candidate types.EducationEntry) bool {
	for _, e := range entries {
		if strings.EqualFold(e.Institution, candidate.Institution) &&
			e.Degree == candidate.Degree && e.Dates == candidate.Dates {
			return true
		}
	}
	return false
}

func containsExperience(entries []types.ExperienceEntry, candidate types.ExperienceEntry) bool {
	for _, e := range entries {
		if strings.EqualFold(e.Company, candidate.Company) &&
			e.Title == candidate.Title && e.Dates == candidate.Dates {
			return true
		}
	}
	return false
}

func containsLanguage(entries []types.LanguageEntry, language string) bool {
	for _, e := range entries {
		if strings.EqualFold(e.Language, language) {
			return true
		}
	}
	return false
}

func containsCertification(entries []types.CertificationEntry, name string) bool {
	for _, e := range entries {
		if strings.EqualFold(e.Name, name) {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
