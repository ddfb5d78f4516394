// Package ratelimit provides a per-key sliding-window rate limiter
// backed by in-process memory, sized for a single-instance deployment.
package ratelimit

import (
	"context"
	"errors"
	"sync"
	"time"
)

var (
	ErrInvalidLimit    = errors.New("ratelimit: invalid limit")
	ErrInvalidInterval = errors.New("ratelimit: invalid interval")
	ErrKeyRequired     = errors.New("ratelimit: key is required")
)

// Result contains the outcome of a rate limit check.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// RetryAfter returns how long to wait before the next request is
// allowed. Returns 0 if the current request was allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed {
		return 0
	}
	return time.Until(r.ResetAt)
}

// Limiter is the interface the middleware consumes.
type Limiter interface {
	Allow(ctx context.Context, key string) (*Result, error)
}

// SlidingWindow tracks individual request timestamps per key within a
// moving time window.
type SlidingWindow struct {
	mu     sync.Mutex
	hits   map[string][]time.Time
	limit  int
	window time.Duration
}

func NewSlidingWindow(limit int, window time.Duration) (*SlidingWindow, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if window <= 0 {
		return nil, ErrInvalidInterval
	}
	return &SlidingWindow{
		hits:   make(map[string][]time.Time),
		limit:  limit,
		window: window,
	}, nil
}

// Allow checks if a request is allowed for the given key and, if so,
// records it.
func (sw *SlidingWindow) Allow(ctx context.Context, key string) (*Result, error) {
	if key == "" {
		return nil, ErrKeyRequired
	}

	now := time.Now()
	cutoff := now.Add(-sw.window)

	sw.mu.Lock()
	defer sw.mu.Unlock()

	valid := sw.hits[key][:0]
	for _, ts := range sw.hits[key] {
		if ts.After(cutoff) {
			valid = append(valid, ts)
		}
	}

	allowed := len(valid) < sw.limit
	if allowed {
		valid = append(valid, now)
	}
	if len(valid) > 0 {
		sw.hits[key] = valid
	} else {
		delete(sw.hits, key)
	}

	resetAt := now.Add(sw.window)
	if len(valid) > 0 {
		resetAt = valid[0].Add(sw.window)
	}

	return &Result{
		Allowed:   allowed,
		Limit:     sw.limit,
		Remaining: max(0, sw.limit-len(valid)),
		ResetAt:   resetAt,
	}, nil
}
