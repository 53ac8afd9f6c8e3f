// Package ratelimit provides the in-memory sliding-window throttle used
// for login attempts. State is process-local: it starts empty on boot and
// is not shared across instances, so this is advisory throttling, not a
// guarantee against distributed abuse.
package ratelimit

import (
	"sync"
	"time"
)

// SlidingWindowLimiter keeps, per client key, the timestamps of recent
// attempts. An attempt is allowed while the in-window count (including the
// attempt itself) stays at or below max; with max = 10 the 11th in-window
// attempt is the first to be denied. Denied attempts still occupy a slot.
type SlidingWindowLimiter struct {
	mu       sync.Mutex
	window   time.Duration
	max      int
	attempts map[string][]time.Time
}

func New(max int, window time.Duration) *SlidingWindowLimiter {
	return &SlidingWindowLimiter{
		window:   window,
		max:      max,
		attempts: make(map[string][]time.Time),
	}
}

// Allow records an attempt for key at now and reports whether it may
// proceed. Timestamps older than now-window are dropped on every call.
// Keys themselves are never evicted over the process lifetime.
func (l *SlidingWindowLimiter) Allow(key string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := now.Add(-l.window)
	kept := l.attempts[key][:0]
	for _, t := range l.attempts[key] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	kept = append(kept, now)
	l.attempts[key] = kept

	return len(kept) <= l.max
}
