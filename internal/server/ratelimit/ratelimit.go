// Package ratelimit throttles API clients with per-endpoint token buckets.
// Scoring is CPU-bound and batch analysis fans out workers, so the analyze
// endpoints carry tighter budgets than reads; /health is never limited.
package ratelimit

import (
	"sync"
	"time"
)

// idleBucketTTL is how long an untouched client bucket survives before the
// background sweep reclaims it.
const idleBucketTTL = time.Hour

// bucket is the token bucket for one client+endpoint+method triple. Tokens
// refill continuously at rate per second up to capacity.
type bucket struct {
	mu         sync.Mutex
	capacity   float64
	rate       float64
	tokens     float64
	lastRefill time.Time
	lastSeen   time.Time
}

func newBucket(capacity int, rate float64) *bucket {
	now := time.Now()
	return &bucket{
		capacity:   float64(capacity),
		rate:       rate,
		tokens:     float64(capacity),
		lastRefill: now,
		lastSeen:   now,
	}
}

// refillLocked advances the token count to now. Callers hold b.mu.
func (b *bucket) refillLocked(now time.Time) {
	b.tokens = min(b.capacity, b.tokens+now.Sub(b.lastRefill).Seconds()*b.rate)
	b.lastRefill = now
}

// take consumes one token if available and reports the remaining budget and
// the time the bucket is full again.
func (b *bucket) take() (ok bool, remaining int, reset time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.refillLocked(now)
	b.lastSeen = now

	if b.tokens >= 1 {
		b.tokens--
		ok = true
	}

	remaining = int(b.tokens)
	reset = now
	if b.tokens < b.capacity {
		reset = now.Add(time.Duration((b.capacity - b.tokens) / b.rate * float64(time.Second)))
	}
	return ok, remaining, reset
}

func (b *bucket) idleSince(cutoff time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastSeen.Before(cutoff)
}

// Info reports the budget state returned with every decision. The server
// copies it into the X-RateLimit response headers; Limit 0 means the
// request was exempt and no headers are written.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds limiter-wide settings. Per-endpoint budgets come from
// EndpointConfigs; everything else falls back to the default budget.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// Limiter tracks one token bucket per client, endpoint and method.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	config  *Config

	sweepTicker *time.Ticker
	sweepStop   chan struct{}
}

// NewLimiter builds a limiter. A nil config enables limiting with the
// default budget only.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
		}
	}

	l := &Limiter{
		buckets: make(map[string]*bucket),
		config:  config,
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.sweepTicker = time.NewTicker(config.CleanupInterval)
		l.sweepStop = make(chan struct{})
		go l.sweep()
	}
	return l
}

// Allow decides whether one request from clientID may proceed against the
// given endpoint and method.
func (l *Limiter) Allow(clientID, endpoint, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{}
	}

	ec := MatchEndpoint(endpoint, method, l.config.EndpointConfigs)
	if ec == nil {
		ec = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
			Burst:  l.config.DefaultLimit,
		}
	}
	if ec.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	b := l.bucketFor(clientID+":"+endpoint+":"+method, ec)
	ok, remaining, reset := b.take()

	info := Info{
		Allowed:   ok,
		Limit:     ec.Limit,
		Remaining: remaining,
		ResetTime: reset,
	}
	if !ok {
		if wait := time.Until(reset); wait > 0 {
			info.RetryAfter = wait
		}
	}
	return ok, info
}

// bucketFor returns the bucket for key, creating it on first use.
func (l *Limiter) bucketFor(key string, ec *EndpointConfig) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.buckets[key]; ok {
		return b
	}
	capacity := ec.Burst
	if capacity <= 0 {
		capacity = ec.Limit
	}
	b := newBucket(capacity, float64(ec.Limit)/ec.Window.Seconds())
	l.buckets[key] = b
	return b
}

// sweep periodically drops buckets belonging to clients that went quiet, so
// one-off scoring clients do not accumulate forever.
func (l *Limiter) sweep() {
	for {
		select {
		case <-l.sweepTicker.C:
			cutoff := time.Now().Add(-idleBucketTTL)
			l.mu.Lock()
			for key, b := range l.buckets {
				if b.idleSince(cutoff) {
					delete(l.buckets, key)
				}
			}
			l.mu.Unlock()
		case <-l.sweepStop:
			return
		}
	}
}

// Stop terminates the sweep goroutine.
func (l *Limiter) Stop() {
	if l.sweepTicker != nil {
		l.sweepTicker.Stop()
	}
	if l.sweepStop != nil {
		close(l.sweepStop)
	}
}
