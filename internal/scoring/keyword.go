package scoring

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/vocab"
)

// KeywordOverlapScore grades a keyword match result on a 0-100 scale.
//
// The base score weights exact matches at 0.8 and partial matches at 0.4 of
// their coverage ratio. On top of that sit two bonuses: a critical-skills
// bonus of up to 30 points in which hits on critical skills count three
// times, and a tiering bonus rewarding overall coverage.
func KeywordOverlapScore(result matching.Result, jobKeywords []string, v *vocab.Vocabulary) float64 {
	if len(jobKeywords) == 0 {
		return 0
	}

	total := float64(len(jobKeywords))
	base := float64(len(result.Exact))/total*100*0.8 +
		float64(len(result.Partial))/total*100*0.4

	base += importantSkillsBonus(result.Matched, jobKeywords, v)
	base += coverageBonus(len(result.Matched), total)

	if base > 100 {
		base = 100
	}
	return base
}

// importantSkillsBonus scores coverage of the important-skills list among
// the matched keywords, scaled to at most 30 points. Critical skills weigh
// three times as much as ordinary important skills.
func importantSkillsBonus(matched, jobKeywords []string, v *vocab.Vocabulary) float64 {
	possible := importantWeight(jobKeywords, v)
	if possible == 0 {
		return 0
	}
	hit := importantWeight(matched, v)
	return hit / possible * 30
}

func importantWeight(keywords []string, v *vocab.Vocabulary) float64 {
	weight := 0.0
	for _, kw := range keywords {
		lower := strings.ToLower(kw)
		for _, skill := range v.ImportantSkills {
			if strings.Contains(lower, skill) {
				if v.CriticalSkills[skill] {
					weight += 3
				} else {
					weight++
				}
				break
			}
		}
	}
	return weight
}

func coverageBonus(matched int, total float64) float64 {
	ratio := float64(matched) / total
	switch {
	case ratio >= 0.8:
		return 15
	case ratio >= 0.6:
		return 10
	case matched >= 5:
		return 5
	default:
		return float64(matched)
	}
}
