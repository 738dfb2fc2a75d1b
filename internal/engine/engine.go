// Package engine orchestrates the full scoring pipeline: segmentation,
// keyword extraction, matching, aspect scoring, compositing and
// recommendation generation. One Engine serves concurrent requests; every
// stage operates on request-local data.
package engine

import (
	"context"
	"log"

	"github.com/jonathan/resume-matcher/internal/embedding"
	"github.com/jonathan/resume-matcher/internal/extracting"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/recommend"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/segmenting"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocab"
)

// Engine is the deterministic resume scoring pipeline. Construct once and
// share; it holds no per-request state.
type Engine struct {
	segmenter *segmenting.Segmenter
	extractor *extracting.Extractor
	scorer    *scoring.AspectScorer
	profile   scoring.Weights
}

// Options configure optional Engine collaborators.
type Options struct {
	// Similarity overrides the embedding model. Nil selects the lexical
	// fallback, which keeps the engine fully deterministic.
	Similarity embedding.Similarity

	// Profile is the baseline weight profile. Nil selects the standard one.
	Profile scoring.Weights

	Logger *log.Logger
}

// New builds an Engine over the given vocabulary.
func New(v *vocab.Vocabulary, opts Options) *Engine {
	sim := opts.Similarity
	if sim == nil {
		sim = embedding.Lexical{}
	}
	profile := opts.Profile
	if profile == nil {
		profile = scoring.StandardWeights()
	}
	return &Engine{
		segmenter: segmenting.New(v),
		extractor: extracting.New(v),
		scorer:    scoring.NewAspectScorer(v, sim, opts.Logger),
		profile:   profile,
	}
}

// Score runs the full pipeline for one resume against one job description.
// weightOverrides may be nil; invalid overrides are the only hard failure.
// Similarity-model problems degrade to documented defaults internally.
func (e *Engine) Score(ctx context.Context, resumeText, jobText string, weightOverrides map[string]float64) (*types.MatchResult, error) {
	weights, err := scoring.Resolve(weightOverrides, e.profile)
	if err != nil {
		return nil, err
	}

	sections := e.segmenter.Segment(resumeText)
	resumeKeywords := e.extractor.Extract(resumeText)
	jobKeywords := e.extractor.Extract(jobText)

	match := matching.Match(resumeKeywords, jobKeywords)

	aspects := e.scorer.Score(ctx, scoring.AspectInput{
		ResumeText:  resumeText,
		JobText:     jobText,
		Sections:    sections,
		Match:       match,
		JobKeywords: jobKeywords,
	})

	final := scoring.Composite(scoring.CompositeInput{
		Scores:           aspects.Scores,
		Weights:          weights,
		AchievementBonus: aspects.Bonus,
		MatchedCount:     len(match.Matched),
		MissingCount:     len(match.Missing),
		JobKeywordCount:  len(jobKeywords),
		Semantic:         aspects.Semantic,
	})

	rounded := types.AspectScores{
		Skills:       scoring.Round1(aspects.Scores.Skills),
		Experience:   scoring.Round1(aspects.Scores.Experience),
		Achievements: scoring.Round1(aspects.Scores.Achievements),
		Education:    scoring.Round1(aspects.Scores.Education),
		CulturalFit:  scoring.Round1(aspects.Scores.CulturalFit),
	}

	return &types.MatchResult{
		Score:            final,
		MatchedKeywords:  nonNil(match.Matched),
		MissingKeywords:  nonNil(match.Missing),
		AspectScores:     rounded,
		AchievementBonus: scoring.Round1(aspects.Bonus),
		Recommendations:  recommend.Recommendations(rounded, match.Matched, match.Missing),
		Analysis:         recommend.Analysis(final, rounded, match.Matched, match.Missing, aspects.Bonus),
	}, nil
}

// Sections exposes the segmentation stage for inspection output.
func (e *Engine) Sections(text string) types.SectionMap {
	return e.segmenter.Segment(text)
}

// Keywords exposes the extraction stage for inspection output.
func (e *Engine) Keywords(text string) []string {
	return e.extractor.Extract(text)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
