package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"vacation-planner-service/internal/platform/obs"
	"vacation-planner-service/internal/ports"
)

// SQLTransitCache is a Postgres-backed cache for origin->destination transit
// estimates. Keys are quantized coordinate strings produced by the caller.
type SQLTransitCache struct {
	DB *sql.DB
}

func NewSQLTransitCache(db *sql.DB) *SQLTransitCache {
	return &SQLTransitCache{DB: db}
}

// Fetch cached estimates for one origin and multiple destinations.
func (s *SQLTransitCache) GetMany(
	ctx context.Context,
	origin string,
	destinations []string,
) (_ map[string]ports.TransitResult, err error) {
	defer obs.Time(ctx, "transit.cache.GetMany")(&err)

	if s.DB == nil {
		return nil, errors.New("transit cache: db is nil")
	}

	if origin == "" {
		return nil, errors.New("get transit cache: origin must not be empty")
	}

	if len(destinations) == 0 {
		return map[string]ports.TransitResult{}, nil
	}

	seen := map[string]struct{}{}
	uniq := make([]string, 0, len(destinations))
	for _, d := range destinations {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}

		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		uniq = append(uniq, d)
	}

	if len(uniq) == 0 {
		return map[string]ports.TransitResult{}, nil
	}

	q := `
	SELECT destination, distance_km, duration_minutes
    FROM transit_cache
    WHERE origin = $1
        AND destination = ANY($2::text[]);
	`

	rows, err := s.DB.QueryContext(ctx, q, origin, uniq)
	if err != nil {
		return nil, fmt.Errorf("get transit cache: query transit_cache table: %w", err)
	}
	defer rows.Close()

	out := make(map[string]ports.TransitResult, len(uniq))
	for rows.Next() {
		var dest string
		var km float64
		var minutes int
		if err := rows.Scan(&dest, &km, &minutes); err != nil {
			return nil, fmt.Errorf("get transit cache: scan rows: %w", err)
		}
		out[dest] = ports.TransitResult{
			DistanceKm:      km,
			DurationMinutes: minutes,
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get transit cache: row iteration: %w", err)
	}

	return out, nil
}

// Store many cached transit estimates for a single origin.
func (s *SQLTransitCache) PutMany(
	ctx context.Context,
	origin string,
	results map[string]ports.TransitResult,
) error {
	if s.DB == nil {
		return errors.New("transit cache: db is nil")
	}

	if origin == "" {
		return errors.New("insert transit cache: origin must not be empty")
	}

	if len(results) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert transit cache: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO transit_cache (origin, destination, distance_km, duration_minutes)
    VALUES ($1, $2, $3, $4)
	ON CONFLICT (origin, destination) DO UPDATE
	SET distance_km = EXCLUDED.distance_km,
		duration_minutes = EXCLUDED.duration_minutes;
	`)
	if err != nil {
		return fmt.Errorf("insert transit cache: db prepare: %w", err)
	}
	defer stmt.Close()

	for dest, r := range results {
		if strings.TrimSpace(dest) == "" {
			return fmt.Errorf("insert transit cache: empty destination key")
		}

		if _, err := stmt.ExecContext(ctx, origin, dest, r.DistanceKm, r.DurationMinutes); err != nil {
			return fmt.Errorf("insert transit cache dest=%q: %w", dest, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert transit cache commit: %w", err)
	}

	return nil
}
