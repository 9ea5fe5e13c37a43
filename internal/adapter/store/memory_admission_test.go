package store

import (
	"context"
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestMemoryAdmissionLimit(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1700000000, 0)}
	adm := NewMemoryAdmission(10, time.Minute).WithClock(clock.Now)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		allowed, err := adm.Allow(ctx, "1.2.3.4")
		if err != nil {
			t.Fatalf("Allow returned error: %v", err)
		}
		if !allowed {
			t.Fatalf("request %d rejected, want first 10 accepted", i+1)
		}
		clock.Advance(time.Second)
	}

	allowed, _ := adm.Allow(ctx, "1.2.3.4")
	if allowed {
		t.Fatal("11th request within the window was accepted")
	}
}

func TestMemoryAdmissionRejectedAttemptNotRecorded(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1700000000, 0)}
	adm := NewMemoryAdmission(2, time.Minute).WithClock(clock.Now)
	ctx := context.Background()

	adm.Allow(ctx, "a")
	adm.Allow(ctx, "a")

	// Hammering while throttled must not extend the throttle.
	for i := 0; i < 5; i++ {
		if ok, _ := adm.Allow(ctx, "a"); ok {
			t.Fatal("over-limit request accepted")
		}
	}

	clock.Advance(61 * time.Second)
	if ok, _ := adm.Allow(ctx, "a"); !ok {
		t.Fatal("request after window expiry rejected; rejected attempts were recorded")
	}
}

func TestMemoryAdmissionWindowExpiry(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1700000000, 0)}
	adm := NewMemoryAdmission(10, time.Minute).WithClock(clock.Now)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		adm.Allow(ctx, "throttled")
	}
	if ok, _ := adm.Allow(ctx, "throttled"); ok {
		t.Fatal("expected rejection at the limit")
	}

	clock.Advance(61 * time.Second)
	if ok, _ := adm.Allow(ctx, "throttled"); !ok {
		t.Fatal("client still rejected after the window elapsed")
	}
}

func TestMemoryAdmissionPerClientIsolation(t *testing.T) {
	adm := NewMemoryAdmission(1, time.Minute)
	ctx := context.Background()

	if ok, _ := adm.Allow(ctx, "a"); !ok {
		t.Fatal("first request for client a rejected")
	}
	if ok, _ := adm.Allow(ctx, "a"); ok {
		t.Fatal("second request for client a accepted")
	}
	if ok, _ := adm.Allow(ctx, "b"); !ok {
		t.Fatal("client b throttled by client a's window")
	}
}

// The check-prune-append sequence must be atomic per identifier: concurrent
// requests from one client can never push the accepted count past the limit.
func TestMemoryAdmissionConcurrentSameClient(t *testing.T) {
	adm := NewMemoryAdmission(10, time.Minute)
	ctx := context.Background()

	var wg sync.WaitGroup
	var accepted int64
	var mu sync.Mutex

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := adm.Allow(ctx, "racer"); ok {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if accepted != 10 {
		t.Fatalf("accepted %d concurrent requests, want exactly 10", accepted)
	}
}
