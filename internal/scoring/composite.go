package scoring

import (
	"math"

	"github.com/jonathan/resume-matcher/internal/types"
)

// CompositeInput carries the evidence the integrity cap inspects alongside
// the scores being combined. Weights must already be resolved.
type CompositeInput struct {
	Scores           types.AspectScores
	Weights          Weights
	AchievementBonus float64
	MatchedCount     int
	MissingCount     int
	JobKeywordCount  int
	Semantic         float64
}

// Composite folds the five aspect scores into the final 0-100 score:
// weighted sum, achievement bonus capped at 100, then integrity capping.
// Scores above 90 with more than two missing keywords cap at 95; scores
// above 95 survive only when matched coverage is at least 90% of the job
// keyword set and the semantic evidence itself is at least 90.
func Composite(in CompositeInput) float64 {
	raw := in.Scores.Skills*in.Weights[AspectSkills] +
		in.Scores.Experience*in.Weights[AspectExperience] +
		in.Scores.Achievements*in.Weights[AspectAchievements] +
		in.Scores.Education*in.Weights[AspectEducation] +
		in.Scores.CulturalFit*in.Weights[AspectCulturalFit]

	score := math.Min(100, raw+in.AchievementBonus)

	if score > 90 {
		if in.MissingCount > 2 {
			score = math.Min(95, score)
		}
		if score > 95 {
			nearPerfect := float64(in.MatchedCount) >= 0.9*float64(in.JobKeywordCount) &&
				in.Semantic >= 90
			if !nearPerfect {
				score = 95
			}
		}
	}

	return Round1(score)
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
