// Package parsing turns free-form resume text into structured profile
// fragments using section segmentation and layered pattern cascades.
package parsing

import "strings"

// SectionKind identifies a recognized resume section.
type SectionKind string

// Recognized section kinds.
const (
	SectionEducation      SectionKind = "education"
	SectionExperience     SectionKind = "experience"
	SectionSkills         SectionKind = "skills"
	SectionLanguages      SectionKind = "languages"
	SectionCertifications SectionKind = "certifications"
)

// sectionKinds lists all kinds in scan order.
var sectionKinds = []SectionKind{
	SectionEducation,
	SectionExperience,
	SectionSkills,
	SectionLanguages,
	SectionCertifications,
}

// sectionHeadings maps each section kind to its heading vocabulary.
// A line is a heading anchor for a kind when, after trimming and stripping
// a trailing colon, it equals or starts with one of these phrases.
var sectionHeadings = map[SectionKind][]string{
	SectionEducation: {
		"education",
		"academic background",
		"academic history",
		"educational background",
	},
	SectionExperience: {
		"experience",
		"work experience",
		"professional experience",
		"employment history",
		"employment",
		"work history",
		"career history",
	},
	SectionSkills: {
		"skills",
		"technical skills",
		"core competencies",
		"technologies",
	},
	SectionLanguages: {
		"languages",
		"language skills",
	},
	SectionCertifications: {
		"certifications",
		"certificates",
		"licenses & certifications",
		"professional certifications",
	},
}

// Sections holds the captured text per section kind. Absent sections map
// to the empty string.
type Sections map[SectionKind]string

// Segment splits raw resume text into labeled sections. For each kind the
// first heading anchor wins; the capture runs from the line after the
// anchor up to, and exclusive of, the next recognized heading of any other
// kind, or end of document. A missing heading yields an empty capture, not
// an error.
func Segment(text string) Sections {
	lines := strings.Split(text, "\n")

	// Pre-compute the heading kind of every line so boundary checks see
	// all recognized headings, not just the winning anchors.
	headingAt := make([]SectionKind, len(lines))
	for i, line := range lines {
		headingAt[i] = headingKind(line)
	}

	anchors := make(map[SectionKind]int)
	for i, kind := range headingAt {
		if kind == "" {
			continue
		}
		if _, seen := anchors[kind]; !seen {
			anchors[kind] = i
		}
	}

	sections := make(Sections, len(sectionKinds))
	for _, kind := range sectionKinds {
		anchor, ok := anchors[kind]
		if !ok {
			sections[kind] = ""
			continue
		}

		var captured []string
		for i := anchor + 1; i < len(lines); i++ {
			if headingAt[i] != "" && headingAt[i] != kind {
				break
			}
			captured = append(captured, lines[i])
		}
		sections[kind] = strings.TrimSpace(strings.Join(captured, "\n"))
	}

	return sections
}

// headingKind returns the section kind a line anchors, or "" when the line
// is not a recognized heading.
func headingKind(line string) SectionKind {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimSuffix(trimmed, ":")
	trimmed = strings.TrimSpace(trimmed)
	if trimmed == "" || len(trimmed) > 48 {
		return ""
	}
	lower := strings.ToLower(trimmed)

	for _, kind := range sectionKinds {
		for _, phrase := range sectionHeadings[kind] {
			if lower == phrase || strings.HasPrefix(lower, phrase+" ") {
				return kind
			}
		}
	}
	return ""
}
