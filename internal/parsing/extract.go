package parsing

import (
	"regexp"
	"strings"

	"github.com/electronicmaxwell/JobApplicationFiller/internal/types"
)

// Context window size around a primary anchor, in bytes, clipped to the
// section bounds. Secondary attributes (degree, dates, GPA, issuer, title,
// description) are only searched inside this window.
const (
	windowBefore = 160
	windowAfter  = 280
)

var (
	// datePattern recognizes the two canonical date shapes: a range
	// (YYYY-YYYY or YYYY-Present) or a bare year. The range alternative
	// comes first so the full range wins over its first year.
	datePattern = regexp.MustCompile(`(?i)\b(?:19|20)\d{2}\s*[-–]\s*(?:(?:19|20)\d{2}|present)\b|\b(?:19|20)\d{2}\b`)

	// gpaPattern accepts N or N/M numeric forms after a GPA label.
	gpaPattern = regexp.MustCompile(`(?i)\bgpa\b[:\s]*([0-9](?:\.[0-9]+)?(?:\s*/\s*[0-9]{1,2}(?:\.[0-9]+)?)?)`)

	institutionPattern = regexp.MustCompile(`(?im)^.*\b(?:university|college|institute|school|academy|polytechnic)\b.*$`)

	degreePattern = regexp.MustCompile(`(?i)\b(?:ph\.?d|doctor(?:ate)?|master(?:'?s)?|bachelor(?:'?s)?|associate(?:'?s)?|m\.?b\.?a|b\.?s(?:c)?|m\.?s(?:c)?|b\.?a|m\.?a|b\.?eng|diploma)\b[^,\n]*`)

	companyPattern = regexp.MustCompile(`(?im)^.*\b(?:inc|llc|ltd|corp(?:oration)?|company|gmbh|technologies|solutions|labs|consulting|group|agency|studios)\b\.?.*$`)

	certificationPattern = regexp.MustCompile(`(?im)^.*\b(?:certified|certification|certificate|licen[cs]e[sd]?|aws|azure|google cloud|cisco|comptia|pmp|scrum|oracle)\b.*$`)

	issuerPattern = regexp.MustCompile(`(?:issued by|offered by|from)\s+([A-Z][A-Za-z0-9 .&'-]{2,40})`)
)

// certificationIssuers maps vendor keywords found in a certification name
// to the issuing organization.
var certificationIssuers = []struct {
	keyword string
	issuer  string
}{
	{"aws", "Amazon Web Services"},
	{"azure", "Microsoft"},
	{"google cloud", "Google"},
	{"gcp", "Google"},
	{"cisco", "Cisco"},
	{"comptia", "CompTIA"},
	{"pmp", "Project Management Institute"},
	{"scrum", "Scrum Alliance"},
	{"oracle", "Oracle"},
}

// ExtractProfile runs the full extraction cascade over raw resume text and
// returns a profile fragment. Extraction is deterministic: running it twice
// on identical text yields identical fragments.
func ExtractProfile(text string) *types.Profile {
	sections := Segment(text)

	return &types.Profile{
		PersonalInfo:      extractPersonalInfo(text),
		Education:         extractEducation(sections[SectionEducation]),
		Experience:        extractExperience(sections[SectionExperience]),
		Skills:            extractSkills(sections[SectionSkills]),
		Languages:         ExtractLanguages(sections[SectionLanguages], text),
		Certifications:    extractCertifications(sections[SectionCertifications]),
		SocialMedia:       extractSocialLinks(text),
		WorkAuthorization: extractWorkAuthorization(text),
	}
}

// extractEducation finds institution anchors in the education section and
// searches the context window around each for degree, dates and GPA.
// A candidate without an institution is discarded; missing secondary
// attributes never discard the record.
func extractEducation(section string) []types.EducationEntry {
	if section == "" {
		return nil
	}

	var entries []types.EducationEntry
	seen := make(map[string]bool)

	for _, loc := range institutionPattern.FindAllStringIndex(section, -1) {
		institution := cleanAnchorLine(section[loc[0]:loc[1]])
		if institution == "" || seen[strings.ToLower(institution)] {
			continue
		}
		seen[strings.ToLower(institution)] = true

		win := window(section, loc[0], loc[1])
		entry := types.EducationEntry{Institution: institution}

		if m := degreePattern.FindString(win); m != "" {
			entry.Degree = strings.TrimSpace(strings.TrimRight(m, " .;"))
		}
		if m := datePattern.FindString(win); m != "" {
			entry.Dates = normalizeDates(m)
		}
		if m := gpaPattern.FindStringSubmatch(win); m != nil {
			entry.GPA = strings.ReplaceAll(m[1], " ", "")
		}

		entries = append(entries, entry)
	}

	return entries
}

// extractExperience finds company anchors in the experience section. The
// job title is the first non-empty line preceding the date-or-anchor match
// within the window. This is a positional heuristic, not a semantic one;
// resumes with unusual line breaks will misfire and that is accepted
// behavior.
func extractExperience(section string) []types.ExperienceEntry {
	if section == "" {
		return nil
	}

	var entries []types.ExperienceEntry
	seen := make(map[string]bool)

	for _, loc := range companyPattern.FindAllStringIndex(section, -1) {
		company := cleanAnchorLine(section[loc[0]:loc[1]])
		if company == "" || seen[strings.ToLower(company)] {
			continue
		}
		seen[strings.ToLower(company)] = true

		win := window(section, loc[0], loc[1])
		winStart := loc[0] - windowBefore
		if winStart < 0 {
			winStart = 0
		}
		entry := types.ExperienceEntry{Company: company}

		dateLoc := datePattern.FindStringIndex(win)
		if dateLoc != nil {
			entry.Dates = normalizeDates(win[dateLoc[0]:dateLoc[1]])
		}

		// Boundary for the title scan: whichever of the anchor and the
		// date match comes first in the window.
		boundary := loc[0] - winStart
		if dateLoc != nil && dateLoc[0] < boundary {
			boundary = dateLoc[0]
		}
		entry.Title = precedingLine(win[:boundary])

		entry.Description = experienceDescription(section, loc[1])

		entries = append(entries, entry)
	}

	return entries
}

// precedingLine returns the first non-empty line preceding the given text
// boundary, scanning backwards.
func precedingLine(before string) string {
	lines := strings.Split(before, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(strings.TrimLeft(lines[i], "-•* \t"))
		if line != "" {
			return line
		}
	}
	return ""
}

// experienceDescription captures the text following the anchor line inside
// the window, with dates stripped out.
func experienceDescription(section string, anchorEnd int) string {
	hi := anchorEnd + windowAfter
	if hi > len(section) {
		hi = len(section)
	}
	rest := section[anchorEnd:hi]
	rest = datePattern.ReplaceAllString(rest, "")

	var parts []string
	for _, line := range strings.Split(rest, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "-•* \t"))
		if line == "" {
			continue
		}
		parts = append(parts, line)
	}
	desc := strings.Join(parts, " ")
	runes := []rune(desc)
	if len(runes) > 240 {
		desc = strings.TrimSpace(string(runes[:240]))
	}
	return desc
}

// extractCertifications finds certification anchors and looks in the
// window for a date and an issuer.
func extractCertifications(section string) []types.CertificationEntry {
	if section == "" {
		return nil
	}

	var entries []types.CertificationEntry
	seen := make(map[string]bool)

	for _, loc := range certificationPattern.FindAllStringIndex(section, -1) {
		name := cleanAnchorLine(section[loc[0]:loc[1]])
		if name == "" || seen[strings.ToLower(name)] {
			continue
		}
		seen[strings.ToLower(name)] = true

		win := window(section, loc[0], loc[1])
		entry := types.CertificationEntry{Name: name}

		if m := datePattern.FindString(win); m != "" {
			entry.Date = normalizeDates(m)
		}
		if m := issuerPattern.FindStringSubmatch(win); m != nil {
			entry.Issuer = strings.TrimSpace(m[1])
		} else {
			lower := strings.ToLower(name)
			for _, vi := range certificationIssuers {
				if strings.Contains(lower, vi.keyword) {
					entry.Issuer = vi.issuer
					break
				}
			}
		}

		entries = append(entries, entry)
	}

	return entries
}

// extractSkills splits the skills section on common delimiters and bullet
// markers, preserving first-seen order.
func extractSkills(section string) []string {
	if section == "" {
		return nil
	}

	var skills []string
	for _, raw := range strings.FieldsFunc(section, func(r rune) bool {
		return r == ',' || r == ';' || r == '|' || r == '\n' || r == '•' || r == '·'
	}) {
		skill := strings.TrimSpace(strings.TrimLeft(raw, "-•* \t"))
		skill = strings.TrimSuffix(skill, ".")
		if skill == "" || len(skill) > 48 {
			continue
		}
		skills = append(skills, skill)
	}

	return NormalizeSkills(skills)
}

// window returns the context window around an anchor match, bounded before
// and after and clipped to the section bounds.
func window(section string, start, end int) string {
	lo := start - windowBefore
	if lo < 0 {
		lo = 0
	}
	hi := end + windowAfter
	if hi > len(section) {
		hi = len(section)
	}
	return section[lo:hi]
}

// cleanAnchorLine trims bullet markers, embedded dates and trailing
// separators from an anchor line.
func cleanAnchorLine(line string) string {
	line = strings.TrimSpace(strings.TrimLeft(line, "-•* \t"))
	line = datePattern.ReplaceAllString(line, "")
	return strings.Trim(line, " \t,;|–-")
}

// normalizeDates canonicalizes a date match: dashes unified, surrounding
// spaces removed, Present capitalized.
func normalizeDates(match string) string {
	match = strings.ReplaceAll(match, "–", "-")
	match = strings.ReplaceAll(match, " ", "")
	if idx := strings.Index(strings.ToLower(match), "present"); idx >= 0 {
		match = match[:idx] + "Present"
	}
	return match
}
