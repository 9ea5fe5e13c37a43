package store

import (
	"context"
	"sync"
	"time"
)

// Default sliding-window limits for the chat endpoint.
const (
	DefaultMaxRequests = 10
	DefaultWindow      = 60 * time.Second
)

// clientWindow holds the recent accepted-request timestamps for one client
// identifier. Guarded by its own mutex so the prune-check-append sequence is
// atomic per identifier.
type clientWindow struct {
	mu     sync.Mutex
	stamps []time.Time
}

// MemoryAdmission is a process-local sliding-window rate limiter keyed by
// client identifier. Windows for inactive clients are never evicted; a
// multi-instance deployment should use RedisAdmission instead so all
// instances share one window table.
type MemoryAdmission struct {
	mu      sync.Mutex
	windows map[string]*clientWindow

	limit  int
	window time.Duration
	now    func() time.Time
}

func NewMemoryAdmission(limit int, window time.Duration) *MemoryAdmission {
	return &MemoryAdmission{
		windows: make(map[string]*clientWindow),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

// WithClock replaces the time source. Intended for tests that advance time
// instead of sleeping through the window.
func (a *MemoryAdmission) WithClock(now func() time.Time) *MemoryAdmission {
	a.now = now
	return a
}

// Allow prunes timestamps older than the trailing window, rejects without
// recording when the client is at the limit, and records the attempt
// otherwise. Never returns an error.
func (a *MemoryAdmission) Allow(_ context.Context, clientID string) (bool, error) {
	w := a.windowFor(clientID)

	w.mu.Lock()
	defer w.mu.Unlock()

	now := a.now()
	cutoff := now.Add(-a.window)

	kept := w.stamps[:0]
	for _, ts := range w.stamps {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	w.stamps = kept

	if len(w.stamps) >= a.limit {
		return false, nil
	}

	w.stamps = append(w.stamps, now)
	return true, nil
}

func (a *MemoryAdmission) windowFor(clientID string) *clientWindow {
	a.mu.Lock()
	defer a.mu.Unlock()

	w, ok := a.windows[clientID]
	if !ok {
		w = &clientWindow{}
		a.windows[clientID] = w
	}
	return w
}
