package embedding

import (
	"context"
	"log"
	"sync"
	"time"
)

// DefaultCallTimeout bounds a single model similarity call. On timeout the
// provider falls back to lexical similarity instead of failing the request.
const DefaultCallTimeout = 10 * time.Second

// Provider is the shared similarity resource used by the aspect scorer. The
// embedding model is initialized at most once per process, on first use;
// after initialization the model handle is read-only and safe for
// concurrent inference.
type Provider struct {
	apiKey      string
	model       string
	callTimeout time.Duration
	logger      *log.Logger

	once     sync.Once
	embedder *GeminiEmbedder
	initErr  error

	fallback Lexical
}

// Option configures a Provider.
type Option func(*Provider)

// WithModel overrides the embedding model name.
func WithModel(model string) Option {
	return func(p *Provider) { p.model = model }
}

// WithCallTimeout overrides the per-call timeout for model inference.
func WithCallTimeout(d time.Duration) Option {
	return func(p *Provider) { p.callTimeout = d }
}

// WithLogger overrides the logger used for degradation notices.
func WithLogger(logger *log.Logger) Option {
	return func(p *Provider) { p.logger = logger }
}

// NewProvider creates a Provider. With an empty API key every call uses the
// lexical fallback; the model is never loaded.
func NewProvider(apiKey string, opts ...Option) *Provider {
	p := &Provider{
		apiKey:      apiKey,
		model:       DefaultEmbeddingModel,
		callTimeout: DefaultCallTimeout,
		logger:      log.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Similarity returns a score in [0, 1]. Model load failures and per-call
// errors degrade to lexical similarity; only empty input yields an error.
func (p *Provider) Similarity(ctx context.Context, a, b string) (float64, error) {
	if a == "" || b == "" {
		return 0, ErrEmptyText
	}

	if p.apiKey == "" {
		return p.fallback.Similarity(ctx, a, b)
	}

	p.once.Do(func() {
		p.embedder, p.initErr = NewGeminiEmbedder(context.Background(), p.apiKey, p.model)
		if p.initErr != nil {
			p.logger.Printf("embedding: model load failed, using lexical similarity: %v", p.initErr)
		}
	})
	if p.initErr != nil {
		return p.fallback.Similarity(ctx, a, b)
	}

	callCtx, cancel := context.WithTimeout(ctx, p.callTimeout)
	defer cancel()

	sim, err := p.embedder.Similarity(callCtx, a, b)
	if err != nil {
		p.logger.Printf("embedding: similarity call failed, using lexical fallback: %v", err)
		return p.fallback.Similarity(ctx, a, b)
	}
	return sim, nil
}

// Close releases the model handle if it was loaded.
func (p *Provider) Close() error {
	if p.embedder != nil {
		return p.embedder.Close()
	}
	return nil
}
