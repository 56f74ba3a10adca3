package geo

import (
	"context"
	"testing"
	"vacation-planner-service/internal/domain"
)

func TestSearchByDestinationName(t *testing.T) {
	p := NewMockPlacesProvider(0)

	results, err := p.Search(context.Background(), "paris", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 8 {
		t.Fatalf("expected 8 Paris locations, got %d", len(results))
	}
}

func TestSearchFallbackByLocationName(t *testing.T) {
	p := NewMockPlacesProvider(0)

	results, err := p.Search(context.Background(), "Meiji", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].Name != "Meiji Shrine" {
		t.Fatalf("expected Meiji Shrine, got %v", results)
	}
}

func TestSearchTypeFilter(t *testing.T) {
	p := NewMockPlacesProvider(0)

	gems, err := p.Search(context.Background(), "Barcelona", domain.LocationTypeHiddenGem)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gems) != 2 {
		t.Fatalf("expected 2 hidden gems, got %d", len(gems))
	}
	for _, g := range gems {
		if g.Type != domain.LocationTypeHiddenGem {
			t.Errorf("location %q has type %q", g.Name, g.Type)
		}
	}
}

func TestSearchNoMatchReturnsEmpty(t *testing.T) {
	p := NewMockPlacesProvider(0)

	results, err := p.Search(context.Background(), "Atlantis", "")
	if err != nil {
		t.Fatalf("no-match lookups must not fail: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected empty result, got %d locations", len(results))
	}
}

func TestByDestinationExactKey(t *testing.T) {
	p := NewMockPlacesProvider(0)

	results, err := p.ByDestination(context.Background(), "Tokyo, Japan", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 6 {
		t.Fatalf("expected 6 Tokyo locations, got %d", len(results))
	}

	// Non-catalog destination degrades to empty, never an error.
	none, err := p.ByDestination(context.Background(), "Oslo, Norway", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected empty result, got %d", len(none))
	}
}

func TestCatalogCoversAllDestinations(t *testing.T) {
	locations := Catalog()
	if len(locations) != 20 {
		t.Fatalf("expected 20 catalog locations, got %d", len(locations))
	}

	seen := map[int]bool{}
	for _, loc := range locations {
		if seen[loc.LocationID] {
			t.Errorf("duplicate location id %d", loc.LocationID)
		}
		seen[loc.LocationID] = true
	}
}
