package transit

import (
	"context"
	"fmt"
	"log"
	"vacation-planner-service/internal/domain"
	"vacation-planner-service/internal/ports"
)

// TransitCache is the persistence contract the cached provider needs:
// batched reads and writes of leg estimates keyed by quantized coordinates.
type TransitCache interface {
	GetMany(ctx context.Context, origin string, destinations []string) (map[string]ports.TransitResult, error)
	PutMany(ctx context.Context, origin string, results map[string]ports.TransitResult) error
}

// CachedTransitProvider wraps a TransitEstimator with a persistent cache so
// repeated legs of the same plan skip recomputation.
//
// Cache write failures are logged and otherwise ignored; an estimate that
// could not be cached is still a valid estimate.
type CachedTransitProvider struct {
	inner ports.TransitEstimator
	cache TransitCache
}

func NewCachedTransitProvider(inner ports.TransitEstimator, cache TransitCache) *CachedTransitProvider {
	return &CachedTransitProvider{inner: inner, cache: cache}
}

func (p *CachedTransitProvider) Estimate(
	ctx context.Context,
	from, to domain.Coordinates,
) (ports.TransitResult, error) {
	origin := CoordKey(from)
	destination := CoordKey(to)

	if p.cache != nil {
		hits, err := p.cache.GetMany(ctx, origin, []string{destination})
		if err != nil {
			return ports.TransitResult{}, fmt.Errorf("cached transit estimate: read cache: %w", err)
		}
		if hit, ok := hits[destination]; ok {
			return hit, nil
		}
	}

	result, err := p.inner.Estimate(ctx, from, to)
	if err != nil {
		return ports.TransitResult{}, fmt.Errorf(
			"cached transit estimate: %s -> %s: %w",
			origin, destination, err,
		)
	}

	if p.cache != nil {
		if err := p.cache.PutMany(ctx, origin, map[string]ports.TransitResult{destination: result}); err != nil {
			log.Printf("transit cache write failed: %v", err)
		}
	}

	return result, nil
}

// CoordKey quantizes coordinates to five decimal places (~1 m) to form a
// stable cache key.
func CoordKey(c domain.Coordinates) string {
	return fmt.Sprintf("%.5f,%.5f", c.Lat, c.Lon)
}
