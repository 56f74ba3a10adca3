package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"
	"vacation-planner-service/internal/ports"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit:"

// RedisRateLimiter implements the RateLimiter port with a sliding window over
// a Redis sorted set per key: members are request timestamps, scores their
// unix milliseconds. Shared state lives in Redis, so multiple service
// instances enforce one combined limit.
type RedisRateLimiter struct {
	client      *redis.Client
	maxRequests int
	window      time.Duration
}

func NewRedisRateLimiter(client *redis.Client, maxRequests int, window time.Duration) (*RedisRateLimiter, error) {
	if client == nil {
		return nil, errors.New("redis rate limiter: client must be non-nil")
	}
	if maxRequests < 1 {
		return nil, fmt.Errorf("redis rate limiter: maxRequests must be positive, got %d", maxRequests)
	}
	if window <= 0 {
		return nil, fmt.Errorf("redis rate limiter: window must be positive, got %s", window)
	}

	return &RedisRateLimiter{
		client:      client,
		maxRequests: maxRequests,
		window:      window,
	}, nil
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (ports.RateLimitResult, error) {
	if key == "" {
		return ports.RateLimitResult{}, errors.New("rate limit: key must be non-empty")
	}

	now := time.Now()
	windowStart := now.Add(-l.window)
	k := keyPrefix + key

	pipe := l.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, k, "0", strconv.FormatInt(windowStart.UnixMilli(), 10))
	countCmd := pipe.ZCard(ctx, k)
	if _, err := pipe.Exec(ctx); err != nil {
		return ports.RateLimitResult{}, fmt.Errorf("rate limit: trim window for %q: %w", key, err)
	}

	count := int(countCmd.Val())
	if count >= l.maxRequests {
		resetAt := now.Add(l.window)
		// The oldest surviving timestamp says when a slot frees up.
		oldest, err := l.client.ZRangeWithScores(ctx, k, 0, 0).Result()
		if err == nil && len(oldest) > 0 {
			resetAt = time.UnixMilli(int64(oldest[0].Score)).Add(l.window)
		}

		return ports.RateLimitResult{Allowed: false, Remaining: 0, ResetAt: resetAt}, nil
	}

	record := l.client.TxPipeline()
	record.ZAdd(ctx, k, redis.Z{
		Score:  float64(now.UnixMilli()),
		Member: strconv.FormatInt(now.UnixNano(), 10),
	})
	record.Expire(ctx, k, l.window)
	if _, err := record.Exec(ctx); err != nil {
		return ports.RateLimitResult{}, fmt.Errorf("rate limit: record request for %q: %w", key, err)
	}

	return ports.RateLimitResult{
		Allowed:   true,
		Remaining: l.maxRequests - count - 1,
		ResetAt:   now.Add(l.window),
	}, nil
}

// Clear drops all tracked windows. Entries also expire on their own via key
// TTLs; Clear exists for explicit lifecycle control.
func (l *RedisRateLimiter) Clear(ctx context.Context) error {
	iter := l.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()

	keys := make([]string, 0, 64)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("rate limit: scan keys: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}

	if err := l.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("rate limit: delete %d keys: %w", len(keys), err)
	}

	return nil
}
