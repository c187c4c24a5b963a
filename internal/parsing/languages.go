package parsing

import (
	"strings"

	"github.com/electronicmaxwell/JobApplicationFiller/internal/types"
)

// languageVocabulary is the closed set of language names the extractor
// scans for, in emission order.
var languageVocabulary = []string{
	"English", "Spanish", "French", "German", "Chinese", "Mandarin",
	"Cantonese", "Japanese", "Korean", "Italian", "Portuguese", "Russian",
	"Arabic", "Hindi", "Dutch", "Swedish", "Norwegian", "Danish", "Polish",
	"Turkish", "Hebrew", "Vietnamese", "Thai", "Greek", "Ukrainian",
}

// proficiencyKeywords maps keywords found near a language name to the
// canonical proficiency vocabulary, in lookup order.
var proficiencyKeywords = []struct {
	keyword   string
	canonical string
}{
	{"native", "Native"},
	{"bilingual", "Native"},
	{"mother tongue", "Native"},
	{"fluent", "Fluent"},
	{"professional", "Professional"},
	{"full working", "Professional"},
	{"advanced", "Professional"},
	{"intermediate", "Intermediate"},
	{"conversational", "Conversational"},
	{"basic", "Basic"},
	{"beginner", "Basic"},
	{"elementary", "Basic"},
}

// The proficiency window is the line containing the language name: wide
// enough for "English - Native" and "Fluent in Spanish", narrow enough to
// keep a neighboring line's proficiency from bleeding over.

// ExtractLanguages runs the two-tier language scan. With a dedicated
// languages section, every vocabulary language found there is emitted,
// defaulting to Not specified when no proficiency keyword is nearby. With
// no section, the same scan runs against the whole document but only emits
// an entry when both the language name and a proficiency keyword are found,
// to control false positives. A language is never added twice.
func ExtractLanguages(section, document string) []types.LanguageEntry {
	if strings.TrimSpace(section) != "" {
		return scanLanguages(section, false)
	}
	return scanLanguages(document, true)
}

func scanLanguages(text string, requireProficiency bool) []types.LanguageEntry {
	lower := strings.ToLower(text)

	var entries []types.LanguageEntry
	seen := make(map[string]bool)

	for _, language := range languageVocabulary {
		idx := indexWord(lower, strings.ToLower(language))
		if idx < 0 || seen[language] {
			continue
		}

		lineStart := strings.LastIndexByte(lower[:idx], '\n') + 1
		lineEnd := strings.IndexByte(lower[idx:], '\n')
		if lineEnd < 0 {
			lineEnd = len(lower)
		} else {
			lineEnd += idx
		}

		proficiency := ""
		win := lower[lineStart:lineEnd]
		for _, pk := range proficiencyKeywords {
			if strings.Contains(win, pk.keyword) {
				proficiency = pk.canonical
				break
			}
		}

		if proficiency == "" {
			if requireProficiency {
				continue
			}
			proficiency = types.ProficiencyNotSpecified
		}

		seen[language] = true
		entries = append(entries, types.LanguageEntry{
			Language:    language,
			Proficiency: proficiency,
		})
	}

	return entries
}

// indexWord finds needle in haystack at a word boundary.
func indexWord(haystack, needle string) int {
	from := 0
	for {
		idx := strings.Index(haystack[from:], needle)
		if idx < 0 {
			return -1
		}
		idx += from
		beforeOK := idx == 0 || !isLetter(haystack[idx-1])
		afterIdx := idx + len(needle)
		afterOK := afterIdx >= len(haystack) || !isLetter(haystack[afterIdx])
		if beforeOK && afterOK {
			return idx
		}
		from = idx + len(needle)
	}
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
