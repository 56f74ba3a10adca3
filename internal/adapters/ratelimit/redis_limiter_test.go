package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestLimiter(t *testing.T, maxRequests int, window time.Duration) (*RedisRateLimiter, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	limiter, err := NewRedisRateLimiter(client, maxRequests, window)
	if err != nil {
		t.Fatalf("new limiter: %v", err)
	}
	return limiter, mr
}

func TestRedisLimiterAllowsUpToMax(t *testing.T) {
	limiter, _ := newTestLimiter(t, 3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		res, err := limiter.Allow(ctx, "1.2.3.4")
		if err != nil {
			t.Fatalf("allow %d: %v", i, err)
		}
		if !res.Allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
		if res.Remaining != 3-i-1 {
			t.Errorf("request %d remaining = %d, want %d", i+1, res.Remaining, 3-i-1)
		}
	}

	res, err := limiter.Allow(ctx, "1.2.3.4")
	if err != nil {
		t.Fatalf("allow over limit: %v", err)
	}
	if res.Allowed {
		t.Error("4th request within window should be blocked")
	}
	if res.Remaining != 0 {
		t.Errorf("blocked request remaining = %d, want 0", res.Remaining)
	}
	if res.ResetAt.IsZero() {
		t.Error("blocked request must carry a resetAt")
	}
}

func TestRedisLimiterKeysAreIndependent(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	if res, _ := limiter.Allow(ctx, "a"); !res.Allowed {
		t.Fatal("first request for key a should be allowed")
	}
	if res, _ := limiter.Allow(ctx, "b"); !res.Allowed {
		t.Error("key b must not share key a's window")
	}
	if res, _ := limiter.Allow(ctx, "a"); res.Allowed {
		t.Error("second request for key a should be blocked")
	}
}

func TestRedisLimiterWindowExpires(t *testing.T) {
	limiter, mr := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	if res, _ := limiter.Allow(ctx, "ip"); !res.Allowed {
		t.Fatal("first request should be allowed")
	}
	if res, _ := limiter.Allow(ctx, "ip"); res.Allowed {
		t.Fatal("second request should be blocked")
	}

	// TTL on the sorted set frees the window.
	mr.FastForward(2 * time.Minute)

	if res, _ := limiter.Allow(ctx, "ip"); !res.Allowed {
		t.Error("request after window expiry should be allowed")
	}
}

func TestRedisLimiterClear(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	if res, _ := limiter.Allow(ctx, "ip"); !res.Allowed {
		t.Fatal("first request should be allowed")
	}
	if err := limiter.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if res, _ := limiter.Allow(ctx, "ip"); !res.Allowed {
		t.Error("request after Clear should be allowed")
	}
}

func TestMemoryLimiterBlocksAndClears(t *testing.T) {
	limiter, err := NewMemoryRateLimiter(2, time.Minute)
	if err != nil {
		t.Fatalf("new limiter: %v", err)
	}
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		res, err := limiter.Allow(ctx, "ip")
		if err != nil {
			t.Fatalf("allow %d: %v", i, err)
		}
		if !res.Allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	res, err := limiter.Allow(ctx, "ip")
	if err != nil {
		t.Fatalf("allow over limit: %v", err)
	}
	if res.Allowed {
		t.Error("request over burst should be blocked")
	}

	if err := limiter.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
}
