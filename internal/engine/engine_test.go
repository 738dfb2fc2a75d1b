package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/vocab"
)

func newTestEngine() *Engine {
	return New(vocab.Default(), Options{})
}

const sampleResume = `EXPERIENCE
5 years experience building web services in Python.

SKILLS
Python, Git
`

func TestScore_ExperienceYearsSatisfied(t *testing.T) {
	e := newTestEngine()
	job := "We need 3+ years experience with Python, SQL."

	result, err := e.Score(context.Background(), sampleResume, job, nil)
	require.NoError(t, err)

	assert.Equal(t, 100.0, result.AspectScores.Experience)
	assert.Contains(t, result.MatchedKeywords, "Python")
	assert.Contains(t, result.MissingKeywords, "SQL")
}

func TestScore_EmptyJobDescription(t *testing.T) {
	e := newTestEngine()

	result, err := e.Score(context.Background(), sampleResume, "", nil)
	require.NoError(t, err)

	assert.Empty(t, result.MatchedKeywords)
	assert.Empty(t, result.MissingKeywords)
	assert.Zero(t, result.AspectScores.Skills)
}

func TestScore_NoEducationEvidence(t *testing.T) {
	e := newTestEngine()
	resume := "Shipping Python APIs and tooling for ops teams."
	job := "Bachelor's degree required. Python."

	result, err := e.Score(context.Background(), resume, job, nil)
	require.NoError(t, err)

	assert.LessOrEqual(t, result.AspectScores.Education, 30.0)
}

func TestScore_QuantifiedAchievementBonus(t *testing.T) {
	e := newTestEngine()
	resume := `EXPERIENCE
Increased revenue by 75% after rebuilding the checkout flow in Python.
`

	result, err := e.Score(context.Background(), resume, "Python developer role", nil)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, result.AspectScores.Achievements, 80.0)
	assert.Equal(t, 10.0, result.AchievementBonus)
}

func TestScore_Deterministic(t *testing.T) {
	e := newTestEngine()
	job := "Senior role, 4+ years experience, Python, PostgreSQL, communication."

	first, err := e.Score(context.Background(), sampleResume, job, nil)
	require.NoError(t, err)
	second, err := e.Score(context.Background(), sampleResume, job, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestScore_MatchedAndMissingPartitionJobKeywords(t *testing.T) {
	e := newTestEngine()
	job := "Looking for Python, SQL, Docker, teamwork and 2 years experience."

	result, err := e.Score(context.Background(), sampleResume, job, nil)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, kw := range result.MatchedKeywords {
		seen[kw] = true
	}
	for _, kw := range result.MissingKeywords {
		assert.False(t, seen[kw], "keyword %q both matched and missing", kw)
	}

	jobKeywords := e.extractor.Extract(job)
	assert.Len(t, jobKeywords, len(result.MatchedKeywords)+len(result.MissingKeywords))
}

func TestScore_InvalidWeightsRejected(t *testing.T) {
	e := newTestEngine()

	_, err := e.Score(context.Background(), sampleResume, "Python", map[string]float64{"vibes": 1})

	var cfgErr *scoring.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestScore_AllZeroWeightsRejected(t *testing.T) {
	e := newTestEngine()
	zero := map[string]float64{
		"skills": 0, "experience": 0, "achievements": 0, "education": 0, "culturalFit": 0,
	}

	_, err := e.Score(context.Background(), sampleResume, "Python", zero)

	var cfgErr *scoring.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestScore_WeightOverridesShiftScore(t *testing.T) {
	e := newTestEngine()
	job := "Python, SQL, Docker, Kubernetes."

	skillsHeavy, err := e.Score(context.Background(), sampleResume, job, map[string]float64{
		"skills": 1, "experience": 0, "achievements": 0, "education": 0, "culturalFit": 0,
	})
	require.NoError(t, err)
	balanced, err := e.Score(context.Background(), sampleResume, job, nil)
	require.NoError(t, err)

	assert.NotEqual(t, balanced.Score, skillsHeavy.Score)
}

func TestScore_RecommendationsBounded(t *testing.T) {
	e := newTestEngine()

	result, err := e.Score(context.Background(), sampleResume, "Python, SQL", nil)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(result.Recommendations), 3)
	assert.LessOrEqual(t, len(result.Recommendations), 5)
	assert.NotEmpty(t, result.Analysis)
}
