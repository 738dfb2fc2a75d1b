// Package vocab provides the static keyword vocabulary used by section
// segmentation, keyword extraction and aspect scoring. The vocabulary is
// built once at startup and treated as read-only; tests may construct
// smaller catalogs.
package vocab

import "regexp"

// Category is one group of technical terms sharing a detection pattern.
// Casing maps the lower-cased match to its canonical display form; terms
// absent from the map keep the casing they matched with.
type Category struct {
	Name    string
	Pattern *regexp.Regexp
	Casing  map[string]string
}

// SectionPattern pairs a canonical section name with the header regex that
// detects it. Patterns are matched against the uppercased document.
type SectionPattern struct {
	Name    string
	Pattern *regexp.Regexp
}

// Vocabulary is the full catalog consumed by the extraction pipeline.
type Vocabulary struct {
	// Technical term categories (languages, frameworks, databases, ...).
	Technical []Category

	// Soft skills, stored lower-case; extracted title-cased.
	SoftSkills []string

	// Education keywords, stored lower-case; extracted title-cased.
	EducationKeywords []string

	// EducationLevels ranks degree keywords for the education aspect.
	EducationLevels map[string]int

	// EducationEvidence is the broader last-resort keyword list used when a
	// resume has no detectable education section. Two or more hits count as
	// minimal evidence.
	EducationEvidence []string

	// Seniority tokens such as Junior and Senior, stored in display case.
	Seniority []string

	// CriticalSkills is the lower-cased subset of keywords weighted 3x in
	// the keyword overlap bonus.
	CriticalSkills map[string]bool

	// ImportantSkills is the lower-cased list eligible for the overlap
	// bonus at normal weight. CriticalSkills is a subset of this list.
	ImportantSkills []string

	// AchievementPatterns detect quantified achievements. An optional first
	// capture group carries the numeric value used for the bonus.
	AchievementPatterns []*regexp.Regexp

	// AchievementKeywords are achievement nouns counted alongside pattern hits.
	AchievementKeywords []string

	// SectionPatterns is the ordered header table for segmentation.
	SectionPatterns []SectionPattern

	// SectionAliases copies alias content into a canonical key when the
	// canonical key was not detected (canonical -> alias keys, tried in
	// order). Detected canonical sections are never overwritten.
	SectionAliases map[string][]string

	// SectionIndicators are high-precision phrases used to recover a section
	// whose header was garbled (canonical section -> indicator phrases).
	SectionIndicators map[string][]string

	// HeaderKeywords drive the line-scan last resort (canonical -> tokens
	// that mark a boundary when found in an uppercased line).
	HeaderKeywords map[string][]string

	// CanonicalSections fixes the order sections are listed in when a
	// SectionMap is displayed.
	CanonicalSections []string

	// ExperiencePatterns match "N+ years experience" in either word order,
	// capturing the year count.
	ExperiencePatterns []*regexp.Regexp

	// YearsPattern matches bare "N years"/"N yrs" mentions, capturing N.
	YearsPattern *regexp.Regexp

	// StudentPattern marks explicit in-progress education evidence.
	StudentPattern *regexp.Regexp

	// InstitutionPattern detects institution names when no degree level is
	// stated.
	InstitutionPattern *regexp.Regexp
}
