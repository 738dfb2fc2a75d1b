// Package fetch - cached.go provides URL fetching with in-memory caching.
package fetch

import (
	"context"
	"sync"
	"time"
)

// DefaultCacheTTL is how long a fetched job posting stays fresh.
const DefaultCacheTTL = 1 * time.Hour

// CachedFetcher wraps URL fetching with an in-memory cache. Job postings
// rarely change within a scoring session, so repeated batch analyses against
// the same posting reuse the first fetch.
type CachedFetcher struct {
	options   *Options
	cacheTTL  time.Duration
	skipCache bool // For testing or forcing fresh fetches

	mu      sync.RWMutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	result    Result
	fetchedAt time.Time
}

// CachedFetcherConfig holds configuration for the cached fetcher.
type CachedFetcherConfig struct {
	CacheTTL  time.Duration
	SkipCache bool
	Options   *Options
}

// DefaultCachedFetcherConfig returns sensible defaults.
func DefaultCachedFetcherConfig() *CachedFetcherConfig {
	return &CachedFetcherConfig{
		CacheTTL:  DefaultCacheTTL,
		SkipCache: false,
		Options:   DefaultOptions(),
	}
}

// NewCachedFetcher creates a new cached fetcher.
func NewCachedFetcher(config *CachedFetcherConfig) *CachedFetcher {
	if config == nil {
		config = DefaultCachedFetcherConfig()
	}
	if config.Options == nil {
		config.Options = DefaultOptions()
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = DefaultCacheTTL
	}
	return &CachedFetcher{
		options:   config.Options,
		cacheTTL:  config.CacheTTL,
		skipCache: config.SkipCache,
		entries:   make(map[string]cacheEntry),
	}
}

// CachedResult extends Result with cache metadata.
type CachedResult struct {
	*Result
	FromCache bool
}

// Fetch retrieves a URL, using the cache if the entry is still fresh.
// Fresh fetches have their main text extracted with job-posting selectors
// before caching.
func (f *CachedFetcher) Fetch(ctx context.Context, urlStr string) (*CachedResult, error) {
	if !f.skipCache {
		f.mu.RLock()
		entry, ok := f.entries[urlStr]
		f.mu.RUnlock()
		if ok && time.Since(entry.fetchedAt) < f.cacheTTL {
			result := entry.result
			return &CachedResult{Result: &result, FromCache: true}, nil
		}
	}

	result, err := URL(ctx, urlStr, f.options)
	if err != nil {
		return nil, err
	}

	platform := DetectPlatform(urlStr)
	text, _ := ExtractMainText(result.HTML, PlatformContentSelectors(platform), PlatformNoiseSelectors(platform)...)
	result.Text = text

	f.mu.Lock()
	f.entries[urlStr] = cacheEntry{result: *result, fetchedAt: time.Now()}
	f.mu.Unlock()

	return &CachedResult{Result: result, FromCache: false}, nil
}

// JobText fetches a job posting and returns its main text, using the cache
// for repeat URLs. When useBrowser is set and the static text looks like an
// unrendered SPA shell, the page is re-rendered in a headless browser and
// the cache entry is replaced with the rendered text.
func (f *CachedFetcher) JobText(ctx context.Context, urlStr string, useBrowser, verbose bool) (string, error) {
	result, err := f.Fetch(ctx, urlStr)
	if err != nil {
		return "", err
	}

	text := result.Text
	if useBrowser && ShouldUseBrowser(text) {
		html, err := BrowserSimple(ctx, urlStr, verbose)
		if err != nil {
			return "", err
		}
		platform := DetectPlatform(urlStr)
		text, err = ExtractMainText(html, PlatformContentSelectors(platform), PlatformNoiseSelectors(platform)...)
		if err != nil {
			return "", err
		}

		rendered := *result.Result
		rendered.HTML = html
		rendered.Text = text
		f.mu.Lock()
		f.entries[urlStr] = cacheEntry{result: rendered, fetchedAt: time.Now()}
		f.mu.Unlock()
	}

	return text, nil
}

// InvalidateCache drops the cached entry for a URL, forcing a re-fetch on
// the next request.
func (f *CachedFetcher) InvalidateCache(urlStr string) {
	f.mu.Lock()
	delete(f.entries, urlStr)
	f.mu.Unlock()
}
