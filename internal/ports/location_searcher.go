package ports

import (
	"context"
	"vacation-planner-service/internal/domain"
)

// Port: a boundary for looking up candidate locations to add to a plan.
//
// Both methods return an empty slice, never an error, when nothing matches.
// typeFilter narrows results to one location type; the empty string means no
// filter.
type LocationSearcher interface {
	// Search candidate locations by free-text query (destination name first,
	// then location name/city/country substrings).
	Search(ctx context.Context, query string, typeFilter domain.LocationType) ([]*domain.Location, error)

	// ByDestination returns the catalog for an exact destination key.
	ByDestination(ctx context.Context, destination string, typeFilter domain.LocationType) ([]*domain.Location, error)
}
