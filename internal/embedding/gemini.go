package embedding

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultEmbeddingModel is the Gemini embedding model used for semantic
// similarity.
const DefaultEmbeddingModel = "text-embedding-004"

// maxEmbedChars bounds the text sent per embedding call.
const maxEmbedChars = 25000

// GeminiEmbedder computes similarity from Gemini text embeddings.
type GeminiEmbedder struct {
	client *genai.Client
	model  string
}

// NewGeminiEmbedder creates an embedder backed by the Gemini API.
func NewGeminiEmbedder(ctx context.Context, apiKey, model string) (*GeminiEmbedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultEmbeddingModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiEmbedder{client: client, model: model}, nil
}

// Similarity embeds both texts and returns their cosine similarity.
func (g *GeminiEmbedder) Similarity(ctx context.Context, a, b string) (float64, error) {
	if a == "" || b == "" {
		return 0, ErrEmptyText
	}

	vecA, err := g.embed(ctx, a)
	if err != nil {
		return 0, err
	}
	vecB, err := g.embed(ctx, b)
	if err != nil {
		return 0, err
	}

	return cosine(vecA, vecB), nil
}

// Close releases the underlying API client.
func (g *GeminiEmbedder) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

func (g *GeminiEmbedder) embed(ctx context.Context, text string) ([]float64, error) {
	if len(text) > maxEmbedChars {
		text = text[:maxEmbedChars]
	}

	em := g.client.EmbeddingModel(g.model)
	resp, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("failed to embed content: %w", err)
	}
	if resp.Embedding == nil || len(resp.Embedding.Values) == 0 {
		return nil, fmt.Errorf("empty embedding in response")
	}

	vec := make([]float64, len(resp.Embedding.Values))
	for i, v := range resp.Embedding.Values {
		vec[i] = float64(v)
	}
	return vec, nil
}
