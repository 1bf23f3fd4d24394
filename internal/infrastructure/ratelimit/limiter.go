// Package ratelimit provides client-side rate limiting for outbound calls to
// the upstream travel-data provider, keyed by endpoint.
package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// Config holds token-bucket parameters shared by all keys.
type Config struct {
	// RequestsPerSecond is the sustained request rate per key.
	RequestsPerSecond float64

	// Burst is the maximum burst size per key.
	Burst int
}

// DefaultConfig returns limits safe for a typical metered API plan.
func DefaultConfig() Config {
	return Config{
		RequestsPerSecond: 10,
		Burst:             20,
	}
}

// KeyedLimiter maintains one token-bucket limiter per key. Keys are created
// lazily on first use with the configured defaults.
type KeyedLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	defaults Config
}

// NewKeyedLimiter creates a limiter with the given defaults.
func NewKeyedLimiter(cfg Config) *KeyedLimiter {
	return &KeyedLimiter{
		limiters: make(map[string]*rate.Limiter),
		defaults: cfg,
	}
}

// limiter returns the limiter for a key, creating it if needed.
func (k *KeyedLimiter) limiter(key string) *rate.Limiter {
	k.mu.RLock()
	lim, ok := k.limiters[key]
	k.mu.RUnlock()
	if ok {
		return lim
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	if lim, ok = k.limiters[key]; ok {
		return lim
	}

	lim = rate.NewLimiter(rate.Limit(k.defaults.RequestsPerSecond), k.defaults.Burst)
	k.limiters[key] = lim
	return lim
}

// SetLimit overrides the rate for a specific key.
func (k *KeyedLimiter) SetLimit(key string, rps float64, burst int) {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.limiters[key] = rate.NewLimiter(rate.Limit(rps), burst)
}

// Wait blocks until the key's limiter permits one event or the context is
// cancelled.
func (k *KeyedLimiter) Wait(ctx context.Context, key string) error {
	return k.limiter(key).Wait(ctx)
}

// Allow reports whether one event may happen now for the key.
func (k *KeyedLimiter) Allow(key string) bool {
	return k.limiter(key).Allow()
}
