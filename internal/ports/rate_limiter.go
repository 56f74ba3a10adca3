package ports

import (
	"context"
	"time"
)

// Outcome of a single rate-limit check.
type RateLimitResult struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

// Contract for request rate limiting keyed by caller identity (typically IP).
//
// Limiter state is an injected stateful collaborator with an explicit
// lifecycle, never a package-level global: construct it at the composition
// root and Clear it on a schedule.
type RateLimiter interface {
	// Allow records one request attempt for key and reports whether it fits
	// within the configured window.
	Allow(ctx context.Context, key string) (RateLimitResult, error)

	// Clear drops stale tracking state.
	Clear(ctx context.Context) error
}
