package cache

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"vacation-planner-service/internal/adapters/repositories"
	"vacation-planner-service/internal/ports"
)

func newTestCache(t *testing.T) *SqliteTransitCache {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	db.SetMaxOpenConns(1)

	if err := repositories.InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	return NewSqliteTransitCache(db)
}

func TestTransitCacheRoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	put := map[string]ports.TransitResult{
		"48.85840,2.29450": {DistanceKm: 3.2, DurationMinutes: 96},
		"48.86060,2.33760": {DistanceKm: 1.1, DurationMinutes: 33},
	}
	if err := c.PutMany(ctx, "48.85300,2.34990", put); err != nil {
		t.Fatalf("put many: %v", err)
	}

	got, err := c.GetMany(ctx, "48.85300,2.34990",
		[]string{"48.85840,2.29450", "48.86060,2.33760", "35.71480,139.79670"})
	if err != nil {
		t.Fatalf("get many: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(got))
	}
	if got["48.85840,2.29450"].DurationMinutes != 96 {
		t.Fatalf("unexpected hit: %+v", got["48.85840,2.29450"])
	}
	if _, ok := got["35.71480,139.79670"]; ok {
		t.Fatal("expected miss for uncached destination")
	}
}

func TestTransitCacheUpsert(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	first := map[string]ports.TransitResult{"a": {DistanceKm: 1, DurationMinutes: 10}}
	second := map[string]ports.TransitResult{"a": {DistanceKm: 2, DurationMinutes: 20}}
	if err := c.PutMany(ctx, "origin", first); err != nil {
		t.Fatalf("first put: %v", err)
	}
	if err := c.PutMany(ctx, "origin", second); err != nil {
		t.Fatalf("second put: %v", err)
	}

	got, err := c.GetMany(ctx, "origin", []string{"a"})
	if err != nil {
		t.Fatalf("get many: %v", err)
	}
	if got["a"].DurationMinutes != 20 || got["a"].DistanceKm != 2 {
		t.Fatalf("expected overwrite, got %+v", got["a"])
	}
}

func TestTransitCacheEdgeInputs(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	if _, err := c.GetMany(ctx, "", []string{"a"}); err == nil {
		t.Error("expected error for empty origin")
	}

	got, err := c.GetMany(ctx, "origin", nil)
	if err != nil {
		t.Fatalf("empty destinations: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no hits, got %d", len(got))
	}

	if err := c.PutMany(ctx, "origin", nil); err != nil {
		t.Fatalf("empty put should be a no-op: %v", err)
	}
}
