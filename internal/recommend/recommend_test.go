package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-matcher/internal/types"
)

func TestRecommendations_StrongCandidateKeepsFiveMax(t *testing.T) {
	scores := types.AspectScores{
		Skills:       85,
		Experience:   80,
		Achievements: 30,
		Education:    40,
		CulturalFit:  60,
	}

	recs := Recommendations(scores, []string{"Python", "SQL"}, nil)

	assert.LessOrEqual(t, len(recs), 5)
	assert.Contains(t, recs[0], "Technical skills align well")
	assert.Contains(t, recs, culturalFitPrompt)
	assert.Contains(t, recs[len(recs)-1], "Strong technical match")
}

func TestRecommendations_SkillsGapListsMissing(t *testing.T) {
	scores := types.AspectScores{Skills: 40, Experience: 80, Achievements: 80, Education: 80, CulturalFit: 50}

	recs := Recommendations(scores, nil, []string{"Rust", "Kafka", "Terraform", "gRPC"})

	assert.Contains(t, recs[0], "Rust, Kafka, Terraform")
	assert.NotContains(t, recs[0], "gRPC")
}

func TestRecommendations_BackfillsToThree(t *testing.T) {
	scores := types.AspectScores{Skills: 90, Experience: 65, Achievements: 80, Education: 80, CulturalFit: 50}

	recs := Recommendations(scores, []string{"Go"}, nil)

	assert.GreaterOrEqual(t, len(recs), 3)
}

func TestRecommendations_WeakCandidateTriggersEveryRule(t *testing.T) {
	scores := types.AspectScores{Skills: 20, Experience: 20, Achievements: 20, Education: 20, CulturalFit: 20}

	recs := Recommendations(scores, nil, []string{"Python"})

	assert.Len(t, recs, 5)
	assert.Contains(t, recs[0], "Verify proficiency")
}

func TestAnalysis_ScoreBands(t *testing.T) {
	scores := types.AspectScores{Education: 80}

	assert.Contains(t, Analysis(92, scores, nil, nil, 0), "exceptional match")
	assert.Contains(t, Analysis(80, scores, nil, nil, 0), "strong match")
	assert.Contains(t, Analysis(65, scores, nil, nil, 0), "good match")
	assert.Contains(t, Analysis(45, scores, nil, nil, 0), "moderate match")
	assert.Contains(t, Analysis(20, scores, nil, nil, 0), "limited alignment")
}

func TestAnalysis_AchievementAndEducationClauses(t *testing.T) {
	scores := types.AspectScores{Education: 75}

	text := Analysis(80, scores, []string{"Python"}, nil, 10)

	assert.Contains(t, text, "adding 10.0% to their overall score")
	assert.Contains(t, text, "educational background meets our requirements")
}

func TestAnalysis_StrengthsTruncatedWithCount(t *testing.T) {
	matched := []string{"Go", "Python", "SQL", "AWS", "Docker", "Kubernetes", "Git"}

	text := Analysis(80, types.AspectScores{}, matched, nil, 0)

	assert.Contains(t, text, "Go, Python, SQL, AWS, Docker, and 2 more")
}

func TestAnalysis_NoMissingKeywordsPromptsCulturalFit(t *testing.T) {
	text := Analysis(80, types.AspectScores{}, []string{"Go"}, nil, 0)

	assert.Contains(t, text, "cultural fit and long-term career goals")
}

func TestAnalysis_InterviewFocusNamesMissing(t *testing.T) {
	text := Analysis(50, types.AspectScores{}, nil, []string{"Rust", "Kafka"}, 0)

	assert.Contains(t, text, "exploring the candidate's experience with Rust, Kafka")
}
