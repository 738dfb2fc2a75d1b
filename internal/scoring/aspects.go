package scoring

import (
	"context"
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-matcher/internal/embedding"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocab"
)

// AspectInput carries everything the aspect scorers read. All fields are
// request-local; the scorer itself holds no per-request state.
type AspectInput struct {
	ResumeText  string
	JobText     string
	Sections    types.SectionMap
	Match       matching.Result
	JobKeywords []string
}

// AspectResult is the output of a full aspect pass. Semantic is the (possibly
// boosted) similarity evidence the integrity cap inspects; Bonus is the
// additive achievement bonus applied after weighting.
type AspectResult struct {
	Scores   types.AspectScores
	Bonus    float64
	Semantic float64
}

// AspectScorer computes the five aspect scores. It is safe for concurrent
// use; the similarity model handles its own lazy initialization.
type AspectScorer struct {
	vocab  *vocab.Vocabulary
	sim    embedding.Similarity
	logger *log.Logger
}

// NewAspectScorer builds a scorer over the given vocabulary and similarity
// model. A nil logger falls back to the process default.
func NewAspectScorer(v *vocab.Vocabulary, sim embedding.Similarity, logger *log.Logger) *AspectScorer {
	if logger == nil {
		logger = log.Default()
	}
	return &AspectScorer{vocab: v, sim: sim, logger: logger}
}

// Score runs all five aspect computations and the high-match boost.
// Similarity failures degrade to documented defaults and are logged, never
// surfaced.
func (s *AspectScorer) Score(ctx context.Context, in AspectInput) AspectResult {
	semantic := s.semanticScore(ctx, in.ResumeText, in.JobText)
	keywordScore := KeywordOverlapScore(in.Match, in.JobKeywords, s.vocab)

	jobCount := len(in.JobKeywords)
	if jobCount == 0 {
		jobCount = 1
	}
	highMatch := len(in.Match.Matched) > 7 ||
		float64(len(in.Match.Matched))/float64(jobCount) > 0.7

	experience := s.experienceScore(ctx, in.ResumeText, in.Sections, in.JobText)

	if highMatch {
		semantic = clamp(semantic * 1.3)
		keywordScore = clamp(keywordScore * 1.25)
		if experience < 40 {
			experience = 40
		}
	}

	achievements, bonus := s.achievementsScore(in.ResumeText)

	return AspectResult{
		Scores: types.AspectScores{
			Skills:       clamp(keywordScore*0.7 + semantic*0.3),
			Experience:   clamp(experience),
			Achievements: clamp(achievements),
			Education:    clamp(s.educationScore(in.Sections, in.ResumeText, in.JobText)),
			CulturalFit:  clamp(s.culturalFitScore(in.ResumeText, in.JobText)),
		},
		Bonus:    bonus,
		Semantic: semantic,
	}
}

func (s *AspectScorer) semanticScore(ctx context.Context, resumeText, jobText string) float64 {
	if resumeText == "" || jobText == "" {
		return 0
	}
	sim, err := s.sim.Similarity(ctx, resumeText, jobText)
	if err != nil {
		s.logger.Printf("semantic similarity unavailable, scoring keyword-only: %v", err)
		return 0
	}
	return sim * 100
}

// experienceScore compares explicit year counts when both sides state them,
// otherwise falls back to similarity between the experience section and the
// job text.
func (s *AspectScorer) experienceScore(ctx context.Context, resumeText string, sections types.SectionMap, jobText string) float64 {
	resumeYears := maxYears(s.vocab.YearsPattern, resumeText)
	jobYears := maxYears(s.vocab.YearsPattern, jobText)
	if resumeYears > 0 && jobYears > 0 {
		if resumeYears >= jobYears {
			return 100
		}
		return float64(resumeYears) / float64(jobYears) * 100
	}

	section := sections["experience"]
	if section == "" {
		return 0
	}

	sim, err := s.sim.Similarity(ctx, section, jobText)
	if err != nil {
		s.logger.Printf("experience similarity unavailable, using neutral default: %v", err)
		return 50
	}
	return sim * 100
}

func maxYears(pattern *regexp.Regexp, text string) int {
	best := 0
	for _, m := range pattern.FindAllStringSubmatch(text, -1) {
		if years, err := strconv.Atoi(m[1]); err == nil && years > best {
			best = years
		}
	}
	return best
}

// educationScore ranks the highest degree keyword on each side. With no
// stated requirement the score reflects how much education evidence exists;
// explicit student markers floor a proportional score at 50.
func (s *AspectScorer) educationScore(sections types.SectionMap, resumeText, jobText string) float64 {
	section := sections["education"]

	if section == "" {
		hits := 0
		for _, kw := range s.vocab.EducationEvidence {
			if containsWord(resumeText, kw) {
				hits++
			}
		}
		if hits >= 2 {
			return 30
		}
		return 0
	}

	requiredLevel := 0
	resumeLevel := 0
	for level, rank := range s.vocab.EducationLevels {
		if containsWord(jobText, level) && rank > requiredLevel {
			requiredLevel = rank
		}
		if containsWord(section, level) && rank > resumeLevel {
			resumeLevel = rank
		}
	}

	if requiredLevel == 0 {
		switch {
		case resumeLevel > 0:
			return 70
		case s.vocab.InstitutionPattern.MatchString(section):
			return 50
		default:
			return 30
		}
	}

	if resumeLevel >= requiredLevel {
		return 100
	}
	proportional := float64(resumeLevel) / float64(requiredLevel) * 100
	if s.vocab.StudentPattern.MatchString(section) && proportional < 50 {
		return 50
	}
	return proportional
}

// achievementsScore counts quantified-achievement pattern hits plus
// achievement noun hits, maps the count onto fixed tiers, and derives the
// additive bonus from the average captured numeric value.
func (s *AspectScorer) achievementsScore(resumeText string) (score, bonus float64) {
	count := 0
	var values []float64

	for _, pattern := range s.vocab.AchievementPatterns {
		for _, m := range pattern.FindAllStringSubmatch(resumeText, -1) {
			count++
			if len(m) > 1 && m[1] != "" {
				if v, err := strconv.ParseFloat(m[1], 64); err == nil {
					values = append(values, v)
				}
			}
		}
	}
	for _, kw := range s.vocab.AchievementKeywords {
		if containsWord(resumeText, kw) {
			count++
		}
	}

	switch {
	case count == 0:
		score = 0
	case count == 1:
		score = 40
	case count == 2:
		score = 60
	case count <= 5:
		score = 80
	default:
		score = 100
	}

	if len(values) > 0 {
		sum := 0.0
		for _, v := range values {
			sum += v
		}
		switch avg := sum / float64(len(values)); {
		case avg > 50:
			bonus = 10
		case avg > 20:
			bonus = 5
		default:
			bonus = 2
		}
	} else if count > 0 {
		bonus = 2
	}

	return score, bonus
}

// culturalFitScore is the soft-skill overlap ratio. A job that names no soft
// skills gets the neutral 50.
func (s *AspectScorer) culturalFitScore(resumeText, jobText string) float64 {
	var jobSkills []string
	for _, skill := range s.vocab.SoftSkills {
		if containsWord(jobText, skill) {
			jobSkills = append(jobSkills, skill)
		}
	}
	if len(jobSkills) == 0 {
		return 50
	}

	overlap := 0
	for _, skill := range jobSkills {
		if containsWord(resumeText, skill) {
			overlap++
		}
	}
	return float64(overlap) / float64(len(jobSkills)) * 100
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// containsWord reports a case-insensitive hit of phrase in text on word
// boundaries.
func containsWord(text, phrase string) bool {
	lowerText := strings.ToLower(text)
	lowerPhrase := strings.ToLower(phrase)
	for offset := 0; ; {
		i := strings.Index(lowerText[offset:], lowerPhrase)
		if i < 0 {
			return false
		}
		start := offset + i
		end := start + len(lowerPhrase)
		if (start == 0 || !isWordByte(lowerText[start-1])) &&
			(end == len(lowerText) || !isWordByte(lowerText[end])) {
			return true
		}
		offset = start + 1
	}
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
