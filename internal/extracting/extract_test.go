package extracting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/vocab"
)

func TestExtract_TechnicalTermsCanonicalCasing(t *testing.T) {
	e := New(vocab.Default())

	keywords := e.Extract("Built services with PYTHON, javascript and PostgreSQL.")

	assert.Contains(t, keywords, "Python")
	assert.Contains(t, keywords, "JavaScript")
	assert.Contains(t, keywords, "PostgreSQL")
}

func TestExtract_ExperienceDurationNormalized(t *testing.T) {
	e := New(vocab.Default())

	keywords := e.Extract("Over 5 years of experience shipping backend systems.")

	assert.Contains(t, keywords, "5+ years experience")
}

func TestExtract_ExperienceDurationReversedPhrasing(t *testing.T) {
	e := New(vocab.Default())

	keywords := e.Extract("Experience of 3 years with distributed systems.")

	assert.Contains(t, keywords, "3+ years experience")
}

func TestExtract_EducationAndSoftSkills(t *testing.T) {
	e := New(vocab.Default())

	keywords := e.Extract("Bachelor degree holder with strong communication and leadership.")

	assert.Contains(t, keywords, "Bachelor")
	assert.Contains(t, keywords, "Communication")
	assert.Contains(t, keywords, "Leadership")
}

func TestExtract_WordBoundaries(t *testing.T) {
	e := New(vocab.Default())

	// "scrum" inside another word must not match.
	keywords := e.Extract("Worked on scrummaging tools.")

	assert.NotContains(t, keywords, "Scrum")
}

func TestExtract_DeduplicatedAndSorted(t *testing.T) {
	e := New(vocab.Default())

	keywords := e.Extract("Python, python, PYTHON. SQL and sql.")

	count := 0
	for _, kw := range keywords {
		if kw == "Python" {
			count++
		}
	}
	assert.Equal(t, 1, count, "duplicates collapse to one canonical entry")

	require.True(t, len(keywords) >= 2)
	for i := 1; i < len(keywords); i++ {
		assert.LessOrEqual(t, keywords[i-1], keywords[i], "keywords are sorted")
	}
}

func TestExtract_EmptyText(t *testing.T) {
	e := New(vocab.Default())

	assert.Empty(t, e.Extract(""))
	assert.Empty(t, e.Extract("nothing recognizable here"))
}

func TestExtract_Idempotent(t *testing.T) {
	e := New(vocab.Default())

	text := "Senior backend engineer with 5 years of experience in Python, " +
		"PostgreSQL and Docker. Bachelor degree, strong communication and teamwork."
	keywords := e.Extract(text)
	require.NotEmpty(t, keywords)

	// Extracting from the keywords' own text reproduces the same set: every
	// canonical form (casing, title case, "N+ years experience") re-matches
	// the rule that produced it and nothing new appears.
	again := e.Extract(strings.Join(keywords, " "))

	assert.Equal(t, keywords, again)
}

func TestExtract_Deterministic(t *testing.T) {
	e := New(vocab.Default())

	text := "Senior engineer, 4+ years experience, Python, PostgreSQL, teamwork."
	first := e.Extract(text)
	second := e.Extract(text)

	assert.Equal(t, first, second)
}
