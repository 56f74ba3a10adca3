package transit

import (
	"context"
	"math"
	"time"
	"vacation-planner-service/internal/domain"
	"vacation-planner-service/internal/ports"
)

// HaversineTransitProvider implements TransitEstimator from great-circle
// distance at a fixed average speed. It stands in for a real routing provider;
// an optional artificial delay mimics one's latency for async paths.
//
// The duration comes from the unrounded distance; the reported distance is
// rounded to two decimals for presentation. Safe for concurrent use.
type HaversineTransitProvider struct {
	delay time.Duration
}

func NewHaversineTransitProvider(delay time.Duration) *HaversineTransitProvider {
	return &HaversineTransitProvider{delay: delay}
}

func (p *HaversineTransitProvider) Estimate(
	ctx context.Context,
	from, to domain.Coordinates,
) (ports.TransitResult, error) {
	if p.delay > 0 {
		timer := time.NewTimer(p.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ports.TransitResult{}, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return ports.TransitResult{}, err
	}

	km := domain.Haversine(from, to)

	return ports.TransitResult{
		DistanceKm:      math.Round(km*100) / 100,
		DurationMinutes: domain.TransitMinutes(km),
	}, nil
}
