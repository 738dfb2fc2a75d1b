package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

func perfectScores() types.AspectScores {
	return types.AspectScores{
		Skills:       100,
		Experience:   100,
		Achievements: 100,
		Education:    100,
		CulturalFit:  100,
	}
}

func TestComposite_WeightedSum(t *testing.T) {
	weights, err := Resolve(nil, StandardWeights())
	require.NoError(t, err)

	score := Composite(CompositeInput{
		Scores: types.AspectScores{
			Skills:       80,
			Experience:   60,
			Achievements: 40,
			Education:    50,
			CulturalFit:  50,
		},
		Weights:          weights,
		AchievementBonus: 2,
	})

	// 32 + 18 + 8 + 2.5 + 2.5 + 2
	assert.Equal(t, 65.0, score)
}

func TestComposite_BonusCappedAt100(t *testing.T) {
	weights, err := Resolve(nil, StandardWeights())
	require.NoError(t, err)

	score := Composite(CompositeInput{
		Scores:           perfectScores(),
		Weights:          weights,
		AchievementBonus: 10,
		MatchedCount:     10,
		JobKeywordCount:  10,
		Semantic:         95,
	})

	assert.Equal(t, 100.0, score)
}

func TestComposite_CapWhenMissingKeywords(t *testing.T) {
	weights, err := Resolve(nil, StandardWeights())
	require.NoError(t, err)

	score := Composite(CompositeInput{
		Scores:           perfectScores(),
		Weights:          weights,
		AchievementBonus: 10,
		MatchedCount:     10,
		MissingCount:     3,
		JobKeywordCount:  13,
		Semantic:         95,
	})

	assert.Equal(t, 95.0, score)
}

func TestComposite_CapAbove95WithoutNearPerfectCoverage(t *testing.T) {
	weights, err := Resolve(nil, StandardWeights())
	require.NoError(t, err)

	score := Composite(CompositeInput{
		Scores:          perfectScores(),
		Weights:         weights,
		MatchedCount:    8,
		MissingCount:    2,
		JobKeywordCount: 10,
		Semantic:        95,
	})

	assert.Equal(t, 95.0, score)
}

func TestComposite_CapAbove95WithLowSemanticEvidence(t *testing.T) {
	weights, err := Resolve(nil, StandardWeights())
	require.NoError(t, err)

	score := Composite(CompositeInput{
		Scores:          perfectScores(),
		Weights:         weights,
		MatchedCount:    10,
		JobKeywordCount: 10,
		Semantic:        70,
	})

	assert.Equal(t, 95.0, score)
}

func TestComposite_RoundsToOneDecimal(t *testing.T) {
	weights, err := Resolve(nil, StandardWeights())
	require.NoError(t, err)

	score := Composite(CompositeInput{
		Scores: types.AspectScores{
			Skills:       33.333,
			Experience:   33.333,
			Achievements: 33.333,
			Education:    33.333,
			CulturalFit:  33.333,
		},
		Weights: weights,
	})

	assert.Equal(t, 33.3, score)
}
