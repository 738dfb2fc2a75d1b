// Package recommend turns a scored match into HR-facing guidance: an
// ordered recommendation list and a templated analysis narrative.
package recommend

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const culturalFitPrompt = "Assess team fit and alignment with company values during the interview."

var backfill = []string{
	"Verify the candidate's availability and notice period.",
	"Assess communication skills and teamwork capabilities.",
	"Discuss salary expectations and benefits requirements.",
}

// Recommendations evaluates the fixed rule list in order and returns at most
// five entries, backfilled to at least three with generic interview prompts.
func Recommendations(scores types.AspectScores, matched, missing []string) []string {
	var recs []string

	if scores.Skills >= 70 {
		recs = append(recs, "Technical skills align well with requirements. Focus interview on depth of experience.")
	} else if len(missing) > 0 {
		top := missing
		if len(top) > 3 {
			top = top[:3]
		}
		recs = append(recs, fmt.Sprintf("Verify proficiency in missing technical skills: %s", strings.Join(top, ", ")))
	}

	if scores.Experience < 60 {
		recs = append(recs, "Discuss relevant work experience in detail as the resume shows limited alignment.")
	}
	if scores.Achievements < 40 {
		recs = append(recs, "Ask for specific examples of project outcomes and quantifiable achievements.")
	}
	if scores.Education < 50 {
		recs = append(recs, "Verify educational qualifications and relevance to the position.")
	}
	if !contains(recs, culturalFitPrompt) {
		recs = append(recs, culturalFitPrompt)
	}
	if scores.Skills > 70 && scores.Experience > 70 {
		recs = append(recs, "Strong technical match. Focus on assessing leadership potential and career goals.")
	}

	for _, extra := range backfill {
		if len(recs) >= 3 {
			break
		}
		if !contains(recs, extra) {
			recs = append(recs, extra)
		}
	}

	if len(recs) > 5 {
		recs = recs[:5]
	}
	return recs
}

// Analysis builds the templated narrative paragraph: assessment band,
// achievement clause, education clause, strengths, interview focus.
func Analysis(finalScore float64, scores types.AspectScores, matched, missing []string, achievementBonus float64) string {
	var assessment string
	switch {
	case finalScore >= 90:
		assessment = "HR Assessment: The candidate's resume shows an exceptional match for this position. The candidate possesses nearly all required qualifications and would likely excel in this role."
	case finalScore >= 75:
		assessment = "HR Assessment: The candidate's resume shows a strong match for this position. The candidate has most of the key qualifications we're looking for."
	case finalScore >= 60:
		assessment = "HR Assessment: The candidate's resume shows a good match for this position. The candidate has many relevant skills, though there are some gaps to explore."
	case finalScore >= 40:
		assessment = "HR Assessment: The candidate's resume shows a moderate match. While there are some relevant qualifications, several key requirements appear to be missing."
	default:
		assessment = "HR Assessment: The candidate's resume shows limited alignment with this position. The candidate lacks several key qualifications required for success in this role."
	}

	achievementNote := ""
	if achievementBonus > 0 {
		achievementNote = fmt.Sprintf(" The resume includes quantifiable achievements that demonstrate measurable impact, adding %.1f%% to their overall score.", achievementBonus)
	}

	educationNote := " Consider discussing the candidate's educational background during the interview."
	if scores.Education >= 70 {
		educationNote = " The candidate's educational background meets our requirements."
	}

	strengths := describeStrengths(matched)
	focus := describeInterviewFocus(missing)

	return assessment + achievementNote + educationNote + " " + strengths + " " + focus
}

func describeStrengths(matched []string) string {
	if len(matched) == 0 {
		return "No notable qualification overlap was detected."
	}
	top := matched
	if len(top) > 5 {
		top = top[:5]
	}
	listed := strings.Join(top, ", ")
	if len(matched) > 5 {
		listed += fmt.Sprintf(", and %d more", len(matched)-5)
	}
	return fmt.Sprintf("Notable qualifications include experience with %s.", listed)
}

func describeInterviewFocus(missing []string) string {
	if len(missing) == 0 {
		return "The candidate's qualifications align well with all key requirements. Recommend focusing the interview on cultural fit and long-term career goals."
	}
	top := missing
	if len(top) > 3 {
		top = top[:3]
	}
	listed := strings.Join(top, ", ")
	if len(missing) > 3 {
		listed += fmt.Sprintf(", and %d more", len(missing)-3)
	}
	return fmt.Sprintf("During the interview, recommend exploring the candidate's experience with %s.", listed)
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
