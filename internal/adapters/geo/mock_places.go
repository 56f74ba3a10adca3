package geo

import (
	"context"
	"strings"
	"time"
	"vacation-planner-service/internal/domain"
)

// MockPlacesProvider implements the LocationSearcher port over a fixed
// in-memory catalog. It stands in for a real places API during development
// and tests; an optional artificial delay mimics provider latency.
//
// Lookups never fail: no match yields an empty slice.
type MockPlacesProvider struct {
	delay time.Duration
}

func NewMockPlacesProvider(delay time.Duration) *MockPlacesProvider {
	return &MockPlacesProvider{delay: delay}
}

// Search matches a destination key first (substring of "City, Country"), then
// falls back to matching individual location names, cities, and countries.
func (p *MockPlacesProvider) Search(
	ctx context.Context,
	query string,
	typeFilter domain.LocationType,
) ([]*domain.Location, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}

	normalized := strings.ToLower(strings.TrimSpace(query))

	var results []*domain.Location
	for _, dest := range destinationKeys {
		if strings.Contains(strings.ToLower(dest), normalized) {
			results = catalog[dest]
			break
		}
	}

	if len(results) == 0 {
		for _, dest := range destinationKeys {
			for _, loc := range catalog[dest] {
				if strings.Contains(strings.ToLower(loc.Name), normalized) ||
					strings.Contains(strings.ToLower(loc.City), normalized) ||
					strings.Contains(strings.ToLower(loc.Country), normalized) {
					results = append(results, loc)
				}
			}
		}
	}

	return filterByType(results, typeFilter), nil
}

// ByDestination returns the catalog for an exact destination key.
func (p *MockPlacesProvider) ByDestination(
	ctx context.Context,
	destination string,
	typeFilter domain.LocationType,
) ([]*domain.Location, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}

	return filterByType(catalog[destination], typeFilter), nil
}

// Destinations lists the catalog's destination keys in stable order.
func Destinations() []string {
	out := make([]string, len(destinationKeys))
	copy(out, destinationKeys)
	return out
}

// Catalog returns every catalog location, in destination then catalog order.
// Used to seed the location repository.
func Catalog() []*domain.Location {
	out := make([]*domain.Location, 0, 32)
	for _, dest := range destinationKeys {
		out = append(out, catalog[dest]...)
	}
	return out
}

func (p *MockPlacesProvider) wait(ctx context.Context) error {
	if p.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(p.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func filterByType(locations []*domain.Location, typeFilter domain.LocationType) []*domain.Location {
	out := make([]*domain.Location, 0, len(locations))
	for _, loc := range locations {
		if typeFilter == "" || loc.Type == typeFilter {
			out = append(out, loc)
		}
	}
	return out
}

// Catalog iteration must be deterministic; map order is not.
var destinationKeys = []string{
	"Paris, France",
	"Tokyo, Japan",
	"Barcelona, Spain",
}

var catalog = map[string][]*domain.Location{
	"Paris, France": {
		{LocationID: 1, Name: "Eiffel Tower", Type: domain.LocationTypeStandard, Category: "Landmark", City: "Paris", Country: "France", Latitude: 48.8584, Longitude: 2.2945, TypicalVisitDuration: 120, Description: "Iconic iron lattice tower on the Champ de Mars"},
		{LocationID: 2, Name: "Louvre Museum", Type: domain.LocationTypeStandard, Category: "Museum", City: "Paris", Country: "France", Latitude: 48.8606, Longitude: 2.3376, TypicalVisitDuration: 180, Description: "World's largest art museum"},
		{LocationID: 3, Name: "Musée de la Chasse et de la Nature", Type: domain.LocationTypeHiddenGem, Category: "Museum", City: "Paris", Country: "France", Latitude: 48.8606, Longitude: 2.3583, TypicalVisitDuration: 90, Description: "Unique museum dedicated to hunting and nature"},
		{LocationID: 4, Name: "Le Marais District", Type: domain.LocationTypeHiddenGem, Category: "Neighborhood", City: "Paris", Country: "France", Latitude: 48.8566, Longitude: 2.3622, TypicalVisitDuration: 150, Description: "Historic district with charming streets and boutiques"},
		{LocationID: 5, Name: "Notre-Dame Cathedral", Type: domain.LocationTypeStandard, Category: "Landmark", City: "Paris", Country: "France", Latitude: 48.8530, Longitude: 2.3499, TypicalVisitDuration: 90, Description: "Medieval Catholic cathedral"},
		{LocationID: 6, Name: "Sacré-Cœur", Type: domain.LocationTypeStandard, Category: "Landmark", City: "Paris", Country: "France", Latitude: 48.8867, Longitude: 2.3431, TypicalVisitDuration: 75, Description: "Basilica on Montmartre hill"},
		{LocationID: 7, Name: "Septime", Type: domain.LocationTypeHiddenGem, Category: "Gastronomy", City: "Paris", Country: "France", Latitude: 48.8527, Longitude: 2.3795, TypicalVisitDuration: 120, Description: "Contemporary French bistro"},
		{LocationID: 8, Name: "Jardin du Luxembourg", Type: domain.LocationTypeStandard, Category: "Nature", City: "Paris", Country: "France", Latitude: 48.8462, Longitude: 2.3372, TypicalVisitDuration: 90, Description: "Beautiful public park"},
	},
	"Tokyo, Japan": {
		{LocationID: 9, Name: "Senso-ji Temple", Type: domain.LocationTypeStandard, Category: "Landmark", City: "Tokyo", Country: "Japan", Latitude: 35.7148, Longitude: 139.7967, TypicalVisitDuration: 90, Description: "Ancient Buddhist temple in Asakusa"},
		{LocationID: 10, Name: "teamLab Borderless", Type: domain.LocationTypeStandard, Category: "Museum", City: "Tokyo", Country: "Japan", Latitude: 35.6262, Longitude: 139.7845, TypicalVisitDuration: 150, Description: "Digital art museum"},
		{LocationID: 11, Name: "Yanaka District", Type: domain.LocationTypeHiddenGem, Category: "Neighborhood", City: "Tokyo", Country: "Japan", Latitude: 35.7279, Longitude: 139.7677, TypicalVisitDuration: 120, Description: "Old Tokyo neighborhood with traditional atmosphere"},
		{LocationID: 12, Name: "Tsukiji Outer Market", Type: domain.LocationTypeHiddenGem, Category: "Gastronomy", City: "Tokyo", Country: "Japan", Latitude: 35.6654, Longitude: 139.7707, TypicalVisitDuration: 90, Description: "Fresh seafood and street food market"},
		{LocationID: 13, Name: "Meiji Shrine", Type: domain.LocationTypeStandard, Category: "Landmark", City: "Tokyo", Country: "Japan", Latitude: 35.6764, Longitude: 139.6993, TypicalVisitDuration: 75, Description: "Shinto shrine surrounded by forest"},
		{LocationID: 14, Name: "Shinjuku Gyoen", Type: domain.LocationTypeStandard, Category: "Nature", City: "Tokyo", Country: "Japan", Latitude: 35.6852, Longitude: 139.7100, TypicalVisitDuration: 120, Description: "Large park with traditional Japanese gardens"},
	},
	"Barcelona, Spain": {
		{LocationID: 15, Name: "Sagrada Familia", Type: domain.LocationTypeStandard, Category: "Landmark", City: "Barcelona", Country: "Spain", Latitude: 41.4036, Longitude: 2.1744, TypicalVisitDuration: 120, Description: "Gaudí's unfinished basilica"},
		{LocationID: 16, Name: "Park Güell", Type: domain.LocationTypeStandard, Category: "Nature", City: "Barcelona", Country: "Spain", Latitude: 41.4145, Longitude: 2.1527, TypicalVisitDuration: 90, Description: "Gaudí's colorful park"},
		{LocationID: 17, Name: "El Born Cultural Center", Type: domain.LocationTypeHiddenGem, Category: "Museum", City: "Barcelona", Country: "Spain", Latitude: 41.3851, Longitude: 2.1826, TypicalVisitDuration: 75, Description: "Archaeological site and cultural center"},
		{LocationID: 18, Name: "Bunkers del Carmel", Type: domain.LocationTypeHiddenGem, Category: "Nature", City: "Barcelona", Country: "Spain", Latitude: 41.4178, Longitude: 2.1669, TypicalVisitDuration: 60, Description: "Panoramic viewpoint with city views"},
		{LocationID: 19, Name: "La Boqueria Market", Type: domain.LocationTypeStandard, Category: "Gastronomy", City: "Barcelona", Country: "Spain", Latitude: 41.3818, Longitude: 2.1713, TypicalVisitDuration: 60, Description: "Famous public market"},
		{LocationID: 20, Name: "Gothic Quarter", Type: domain.LocationTypeStandard, Category: "Neighborhood", City: "Barcelona", Country: "Spain", Latitude: 41.3828, Longitude: 2.1764, TypicalVisitDuration: 120, Description: "Medieval neighborhood"},
	},
}
