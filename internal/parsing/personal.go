package parsing

import (
	"regexp"
	"strings"

	"github.com/electronicmaxwell/JobApplicationFiller/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

	phonePattern = regexp.MustCompile(`\+?\(?\d[\d\s().\-]{7,}\d`)

	// yearRangePattern rejects phone candidates that are really date ranges.
	yearRangePattern = regexp.MustCompile(`^(?:19|20)\d{2}\s*[-–]\s*(?:19|20)\d{2}$`)

	locationLabelPattern = regexp.MustCompile(`(?im)^(?:location|address)[:\s]+(.+)$`)

	// cityStatePattern matches "City, ST" style locations.
	cityStatePattern = regexp.MustCompile(`\b([A-Z][a-zA-Z]+(?: [A-Z][a-zA-Z]+)?,\s*[A-Z]{2})\b`)

	dateOfBirthPattern = regexp.MustCompile(`(?i)(?:date of birth|d\.?o\.?b\.?|born)[:\s]+([0-9]{1,2}[./\-][0-9]{1,2}[./\-][0-9]{2,4}|[A-Za-z]+ [0-9]{1,2},? [0-9]{4})`)

	socialLinkPattern = regexp.MustCompile(`(?i)\b(?:https?://)?(?:www\.)?(linkedin\.com|github\.com|twitter\.com|facebook\.com|instagram\.com)/[^\s,;)]+`)

	workAuthorizationKeywords = []string{
		"citizen",
		"permanent resident",
		"work authorization",
		"visa",
	}
)

// extractPersonalInfo scans the whole document for contact attributes.
// First match wins for each attribute; attributes that cannot be found are
// left empty and surface later through the completeness analyzer.
func extractPersonalInfo(text string) types.PersonalInfo {
	info := types.PersonalInfo{
		FullName:    extractFullName(text),
		Email:       emailPattern.FindString(text),
		DateOfBirth: "",
	}

	for _, m := range phonePattern.FindAllString(text, -1) {
		m = strings.TrimSpace(m)
		if digitCount(m) >= 9 && !yearRangePattern.MatchString(m) {
			info.Phone = m
			break
		}
	}

	if m := locationLabelPattern.FindStringSubmatch(text); m != nil {
		info.Location = strings.TrimSpace(m[1])
	} else if m := cityStatePattern.FindStringSubmatch(text); m != nil {
		info.Location = m[1]
	}

	if m := dateOfBirthPattern.FindStringSubmatch(text); m != nil {
		info.DateOfBirth = strings.TrimSpace(m[1])
	}

	return info
}

// extractFullName looks for a plausible name among the first few non-empty
// lines: two to four capitalized words with no contact markers.
func extractFullName(text string) string {
	scanned := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		scanned++
		if scanned > 5 {
			break
		}
		if strings.ContainsAny(line, "@:/") || digitCount(line) > 0 || len(line) > 40 {
			continue
		}
		if headingKind(line) != "" {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		capitalized := true
		for _, w := range words {
			r := rune(w[0])
			if r < 'A' || r > 'Z' {
				capitalized = false
				break
			}
		}
		if capitalized {
			return line
		}
	}
	return ""
}

// extractSocialLinks collects one URL per known social network, keyed by
// the network name.
func extractSocialLinks(text string) map[string]string {
	var links map[string]string
	for _, m := range socialLinkPattern.FindAllStringSubmatch(text, -1) {
		name := strings.TrimSuffix(strings.ToLower(m[1]), ".com")
		if links == nil {
			links = make(map[string]string)
		}
		if _, ok := links[name]; !ok {
			links[name] = strings.TrimRight(m[0], ".,")
		}
	}
	return links
}

// extractWorkAuthorization captures the line around the first work
// authorization keyword, if any.
func extractWorkAuthorization(text string) string {
	lower := strings.ToLower(text)
	for _, keyword := range workAuthorizationKeywords {
		idx := strings.Index(lower, keyword)
		if idx < 0 {
			continue
		}
		lineStart := strings.LastIndexByte(text[:idx], '\n') + 1
		lineEnd := strings.IndexByte(text[idx:], '\n')
		if lineEnd < 0 {
			lineEnd = len(text)
		} else {
			lineEnd += idx
		}
		return strings.TrimSpace(text[lineStart:lineEnd])
	}
	return ""
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
