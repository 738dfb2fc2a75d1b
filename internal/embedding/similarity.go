// Package embedding provides text similarity scoring for the aspect scorer.
// A shared, lazily-initialized embedding model backs the semantic scores;
// when the model is unavailable the package degrades to a deterministic
// lexical similarity so scoring requests never fail on model errors.
package embedding

import (
	"context"
	"errors"
	"math"
	"strings"
)

// ErrEmptyText is returned when either input has no scorable content.
var ErrEmptyText = errors.New("embedding: empty text")

// Similarity computes a similarity score in [0, 1] between two text blocks.
// Implementations must be safe for concurrent use.
type Similarity interface {
	Similarity(ctx context.Context, a, b string) (float64, error)
}

// cosine computes the cosine similarity of two equal-length vectors,
// clamped to [0, 1].
func cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if sim < 0 {
		return 0
	}
	if sim > 1 {
		return 1
	}
	return sim
}

// Lexical is a deterministic term-frequency cosine similarity. It serves as
// the fallback when no embedding model is configured or the model call
// fails, and gives tests a dependency-free Similarity implementation.
type Lexical struct{}

// Similarity tokenizes both texts into lower-cased words and computes the
// cosine of their term-frequency vectors.
func (Lexical) Similarity(_ context.Context, a, b string) (float64, error) {
	tokensA := tokenize(a)
	tokensB := tokenize(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0, ErrEmptyText
	}

	vocab := make(map[string]int)
	for token := range tokensA {
		if _, ok := vocab[token]; !ok {
			vocab[token] = len(vocab)
		}
	}
	for token := range tokensB {
		if _, ok := vocab[token]; !ok {
			vocab[token] = len(vocab)
		}
	}

	vecA := make([]float64, len(vocab))
	vecB := make([]float64, len(vocab))
	for token, count := range tokensA {
		vecA[vocab[token]] = float64(count)
	}
	for token, count := range tokensB {
		vecB[vocab[token]] = float64(count)
	}

	return cosine(vecA, vecB), nil
}

// tokenize splits text into lower-cased alphanumeric words with counts.
func tokenize(text string) map[string]int {
	counts := make(map[string]int)
	var word strings.Builder
	flush := func() {
		if word.Len() > 1 {
			counts[word.String()]++
		}
		word.Reset()
	}
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '+' || r == '#' {
			word.WriteRune(r)
			continue
		}
		flush()
	}
	flush()
	return counts
}
