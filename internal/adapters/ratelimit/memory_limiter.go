package ratelimit

import (
	"context"
	"errors"
	"sync"
	"time"
	"vacation-planner-service/internal/ports"

	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryRateLimiter implements the RateLimiter port with one token-bucket
// limiter per key, held in process memory. Suitable for single-instance
// deployments; use the Redis limiter when running more than one replica.
type MemoryRateLimiter struct {
	mu          sync.Mutex
	visitors    map[string]*visitor
	maxRequests int
	window      time.Duration
}

func NewMemoryRateLimiter(maxRequests int, window time.Duration) (*MemoryRateLimiter, error) {
	if maxRequests < 1 {
		return nil, errors.New("memory rate limiter: maxRequests must be positive")
	}
	if window <= 0 {
		return nil, errors.New("memory rate limiter: window must be positive")
	}

	return &MemoryRateLimiter{
		visitors:    make(map[string]*visitor),
		maxRequests: maxRequests,
		window:      window,
	}, nil
}

func (l *MemoryRateLimiter) Allow(ctx context.Context, key string) (ports.RateLimitResult, error) {
	if key == "" {
		return ports.RateLimitResult{}, errors.New("rate limit: key must be non-empty")
	}

	now := time.Now()

	l.mu.Lock()
	v, ok := l.visitors[key]
	if !ok {
		perSecond := rate.Limit(float64(l.maxRequests) / l.window.Seconds())
		v = &visitor{limiter: rate.NewLimiter(perSecond, l.maxRequests)}
		l.visitors[key] = v
	}
	v.lastSeen = now
	l.mu.Unlock()

	allowed := v.limiter.Allow()

	return ports.RateLimitResult{
		Allowed:   allowed,
		Remaining: int(v.limiter.Tokens()),
		ResetAt:   now.Add(l.window),
	}, nil
}

// Clear drops visitors idle for longer than one window.
func (l *MemoryRateLimiter) Clear(ctx context.Context) error {
	cutoff := time.Now().Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, v := range l.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(l.visitors, key)
		}
	}

	return nil
}
