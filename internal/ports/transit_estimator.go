package ports

import (
	"context"
	"vacation-planner-service/internal/domain"
)

// Distance and estimated travel duration between two points.
type TransitResult struct {
	DistanceKm      float64
	DurationMinutes int
}

// Contract for estimating travel time between two geographic points.
//
// This is the single source of truth for "travel time between two points":
// the synchronous optimizer path and the asynchronous per-leg recomputation
// path must observe identical estimates, so implementations delegate to
// domain.Haversine and domain.TransitMinutes.
type TransitEstimator interface {
	// Return distance and estimated travel duration between two points.
	Estimate(ctx context.Context, from, to domain.Coordinates) (TransitResult, error)
}
