package middleware

import (
	"fmt"
	"testing"
	"time"
)

func newTestLimiter(maxReqs int, window time.Duration) *RateLimiter {
	// Construct directly to avoid the background cleanup goroutine in tests.
	return &RateLimiter{
		entries: make(map[string]*entry),
		config: RateLimitConfig{
			Max:    maxReqs,
			Window: window,
			KeyFn:  KeyByIP,
		},
	}
}

func TestAllowUnderLimit(t *testing.T) {
	rl := newTestLimiter(3, time.Minute)

	for i := 1; i <= 3; i++ {
		if !rl.Allow("ip:1.2.3.4") {
			t.Errorf("request %d should be allowed", i)
		}
	}
}

func TestAllowBlocksOverLimit(t *testing.T) {
	rl := newTestLimiter(2, time.Minute)

	rl.Allow("ip:1.2.3.4")
	rl.Allow("ip:1.2.3.4")
	if rl.Allow("ip:1.2.3.4") {
		t.Error("third request should be blocked")
	}
}

func TestAllowKeysAreIndependent(t *testing.T) {
	rl := newTestLimiter(1, time.Minute)

	if !rl.Allow("ip:1.1.1.1") {
		t.Error("first key should be allowed")
	}
	if !rl.Allow("ip:2.2.2.2") {
		t.Error("second key should not be affected by the first")
	}
	if rl.Allow("ip:1.1.1.1") {
		t.Error("first key should now be blocked")
	}
}

func TestAllowWindowResets(t *testing.T) {
	rl := newTestLimiter(1, 30*time.Millisecond)

	if !rl.Allow("ip:1.2.3.4") {
		t.Fatal("first request should be allowed")
	}
	if rl.Allow("ip:1.2.3.4") {
		t.Fatal("second request inside the window should be blocked")
	}

	time.Sleep(40 * time.Millisecond)

	if !rl.Allow("ip:1.2.3.4") {
		t.Error("request after the window should be allowed again")
	}
}

func TestAllowManyKeys(t *testing.T) {
	rl := newTestLimiter(5, time.Minute)

	for i := 0; i < 100; i++ {
		key := fmt.Sprintf("ip:10.0.0.%d", i)
		if !rl.Allow(key) {
			t.Fatalf("fresh key %s should be allowed", key)
		}
	}
}
