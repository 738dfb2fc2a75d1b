// Package extracting derives canonical, deduplicated qualification keywords
// from free text using the shared vocabulary. Extraction is a pure function
// of the input text and the catalog: identical text always yields an
// identical, sorted keyword set.
package extracting

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/vocab"
)

// Extractor pulls qualification keywords out of text blocks.
type Extractor struct {
	vocab *vocab.Vocabulary
}

// New creates an Extractor backed by the given vocabulary.
func New(v *vocab.Vocabulary) *Extractor {
	return &Extractor{vocab: v}
}

// Extract returns the sorted keyword set for text: technical terms with
// canonical casing, normalized experience durations, education keywords,
// soft skills and seniority tokens.
func (e *Extractor) Extract(text string) []string {
	set := make(map[string]bool)

	// Technical terms, canonicalized per category.
	for _, cat := range e.vocab.Technical {
		for _, match := range cat.Pattern.FindAllString(text, -1) {
			term := match
			key := strings.ToLower(collapseSpaces(match))
			if canonical, ok := cat.Casing[key]; ok {
				term = canonical
			}
			set[term] = true
		}
	}

	// Experience durations, normalized to "N+ years experience".
	for _, pattern := range e.vocab.ExperiencePatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			if len(m) > 1 && m[1] != "" {
				set[fmt.Sprintf("%s+ years experience", m[1])] = true
			}
		}
	}

	lower := strings.ToLower(text)

	// Education keywords, title-cased.
	for _, kw := range e.vocab.EducationKeywords {
		if containsWord(lower, kw) {
			set[titleCase(kw)] = true
		}
	}

	// Soft skills, title-cased.
	for _, skill := range e.vocab.SoftSkills {
		if containsWord(lower, skill) {
			set[titleCase(skill)] = true
		}
	}

	// Seniority tokens.
	for _, level := range e.vocab.Seniority {
		if containsWord(lower, strings.ToLower(level)) {
			set[level] = true
		}
	}

	keywords := make([]string, 0, len(set))
	for kw := range set {
		keywords = append(keywords, kw)
	}
	sort.Strings(keywords)
	return keywords
}

// containsWord reports whether the lower-cased text contains term bounded by
// non-word characters.
func containsWord(lowerText, term string) bool {
	idx := 0
	for {
		pos := strings.Index(lowerText[idx:], term)
		if pos < 0 {
			return false
		}
		pos += idx
		before := pos == 0 || !isWordByte(lowerText[pos-1])
		afterIdx := pos + len(term)
		after := afterIdx >= len(lowerText) || !isWordByte(lowerText[afterIdx])
		if before && after {
			return true
		}
		idx = pos + len(term)
		if idx >= len(lowerText) {
			return false
		}
	}
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

var multiSpace = regexp.MustCompile(`\s+`)

func collapseSpaces(s string) string {
	return multiSpace.ReplaceAllString(strings.TrimSpace(s), " ")
}

// titleCase upper-cases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
