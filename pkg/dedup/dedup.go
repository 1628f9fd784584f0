// Package dedup suppresses repeats of an event within a time window. The
// shell uses it to keep user-facing notices, like the hidden-to-tray notice,
// from firing on every occurrence.
package dedup

import (
	"sync"
	"time"
)

// Window tracks when each event key last fired and lets it through at most
// once per interval.
type Window struct {
	last     map[string]time.Time
	mu       sync.Mutex
	interval time.Duration
	maxKeys  int
}

// NewWindow creates a deduplication window. maxKeys bounds the tracking map;
// keys older than the interval are evicted once it is exceeded.
func NewWindow(interval time.Duration, maxKeys int) *Window {
	return &Window{
		last:     make(map[string]time.Time),
		interval: interval,
		maxKeys:  maxKeys,
	}
}

// Allow reports whether the event keyed by key may fire at time t, and
// records it if so. Safe for concurrent use.
func (w *Window) Allow(key string, t time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if last, ok := w.last[key]; ok && t.Sub(last) < w.interval {
		return false
	}
	w.last[key] = t

	if len(w.last) > w.maxKeys {
		cutoff := t.Add(-w.interval)
		for k, ts := range w.last {
			if ts.Before(cutoff) {
				delete(w.last, k)
			}
		}
	}
	return true
}

// Size returns the number of tracked keys. Safe for concurrent use.
func (w *Window) Size() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.last)
}
