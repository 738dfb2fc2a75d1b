// Package segmenting splits raw resume text into named sections using
// header-pattern matching with content-sniffing fallbacks for documents
// whose headers were garbled by OCR or encoding noise.
package segmenting

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocab"
)

// Segmenter detects resume sections against a vocabulary's header table.
type Segmenter struct {
	vocab *vocab.Vocabulary
}

// New creates a Segmenter backed by the given vocabulary.
func New(v *vocab.Vocabulary) *Segmenter {
	return &Segmenter{vocab: v}
}

// headerMatch records one detected section header and its span in the text.
type headerMatch struct {
	start int
	end   int
	name  string
}

// Segment splits text into a SectionMap. It never fails; when nothing can be
// detected it returns an empty map.
func (s *Segmenter) Segment(text string) types.SectionMap {
	sections := types.SectionMap{}
	if strings.TrimSpace(text) == "" {
		return sections
	}

	// Pass 1: header-pattern scan over the uppercased text.
	upper := strings.ToUpper(text)
	matches := make([]headerMatch, 0)
	for _, sp := range s.vocab.SectionPatterns {
		for _, loc := range sp.Pattern.FindAllStringIndex(upper, -1) {
			matches = append(matches, headerMatch{start: loc[0], end: loc[1], name: sp.Name})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].start != matches[j].start {
			return matches[i].start < matches[j].start
		}
		// Longer header wins on ties so "TECHNICAL SKILLS" beats "SKILLS".
		return matches[i].end > matches[j].end
	})

	// Drop headers nested inside another header span, e.g. the SKILLS match
	// inside a TECHNICAL SKILLS heading; alias resolution fills those in.
	kept := matches[:0]
	lastEnd := -1
	for _, m := range matches {
		if m.start < lastEnd {
			continue
		}
		kept = append(kept, m)
		lastEnd = m.end
	}
	matches = kept

	for i, m := range matches {
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1].start
		}
		// Offsets come from the uppercased text, which can differ in length
		// from the original for some unicode input.
		start := m.end
		if end > len(text) {
			end = len(text)
		}
		if start > end {
			continue
		}
		content := strings.TrimSpace(text[start:end])
		if content == "" {
			continue
		}
		// First detection wins; later headers for the same canonical key
		// never overwrite an already-populated section.
		if _, ok := sections[m.name]; !ok {
			sections[m.name] = content
		}
	}

	// Pass 2: alias resolution. Copy alias content into a canonical key only
	// while that key is still unset.
	for canonical, aliases := range s.vocab.SectionAliases {
		if _, ok := sections[canonical]; ok {
			continue
		}
		for _, alias := range aliases {
			if content, ok := sections[alias]; ok {
				sections[canonical] = content
				break
			}
		}
	}

	// Pass 3: indicator-phrase sniffing for sections whose headers were
	// mangled beyond pattern recognition.
	for name, indicators := range s.vocab.SectionIndicators {
		if _, ok := sections[name]; ok {
			continue
		}
		if chunk := sniffParagraphs(text, indicators); chunk != "" {
			sections[name] = chunk
		}
	}

	// Last resort: too few sections found, re-scan line by line treating any
	// known header keyword as a boundary.
	if len(sections) < 3 {
		s.segmentByLines(text, sections)
	}

	return sections
}

// sniffParagraphs searches for indicator phrases and returns the paragraphs
// around each hit, bounded by the nearest blank-line breaks.
func sniffParagraphs(text string, indicators []string) string {
	chunks := make([]string, 0)
	seen := make(map[string]bool)
	for _, indicator := range indicators {
		pos := strings.Index(text, indicator)
		if pos < 0 {
			continue
		}
		start := strings.LastIndex(text[:pos], "\n\n")
		if start < 0 {
			start = 0
		}
		end := strings.Index(text[pos:], "\n\n")
		if end < 0 {
			end = len(text)
		} else {
			end += pos
		}
		chunk := strings.TrimSpace(text[start:end])
		if chunk != "" && !seen[chunk] {
			chunks = append(chunks, chunk)
			seen[chunk] = true
		}
	}
	return strings.Join(chunks, "\n\n")
}

// segmentByLines accumulates lines under any line that contains a known
// header keyword, filling only sections that are still missing.
func (s *Segmenter) segmentByLines(text string, sections types.SectionMap) {
	lines := strings.Split(text, "\n")
	current := ""
	var buf []string

	flush := func() {
		if current == "" || len(buf) == 0 {
			return
		}
		if _, ok := sections[current]; !ok {
			sections[current] = strings.TrimSpace(strings.Join(buf, "\n"))
		}
		buf = nil
	}

	for _, line := range lines {
		lineUpper := strings.ToUpper(strings.TrimSpace(line))
		if lineUpper == "" {
			continue
		}

		boundary := ""
		for _, name := range s.vocab.CanonicalSections {
			for _, kw := range s.vocab.HeaderKeywords[name] {
				if strings.Contains(lineUpper, kw) {
					boundary = name
					break
				}
			}
			if boundary != "" {
				break
			}
		}

		if boundary != "" {
			flush()
			current = boundary
			continue
		}
		if current != "" {
			buf = append(buf, line)
		}
	}
	flush()
}
