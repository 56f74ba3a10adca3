package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"vacation-planner-service/internal/ports"
)

// SQLite-backed cache for origin->destination transit estimates.
// Keys are expected to be consistent (already quantized) by the caller.
type SqliteTransitCache struct {
	DB *sql.DB
}

func NewSqliteTransitCache(db *sql.DB) *SqliteTransitCache {
	return &SqliteTransitCache{DB: db}
}

// Fetch cached estimates for one origin and multiple destinations.
func (s *SqliteTransitCache) GetMany(
	ctx context.Context,
	origin string,
	destinations []string,
) (map[string]ports.TransitResult, error) {
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
	ph := make([]string, 0, len(destinations))
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
		ph = append(ph, "?")
	}

	if len(uniq) == 0 {
		return map[string]ports.TransitResult{}, nil
	}

	placeholders := strings.Join(ph, ",")
	args := make([]any, 0, 1+len(uniq))
	args = append(args, origin)
	for _, d := range uniq {
		args = append(args, d)
	}

	// SQLite does not support binding slices directly in an IN (...) clause.
	// Only the placeholder structure is interpolated; all values remain parameterized.
	q := fmt.Sprintf(`
	SELECT
        destination,
        distance_km,
        duration_minutes
    FROM transit_cache
    WHERE origin = ?
        AND destination IN (%s);
	`, placeholders)

	rows, err := s.DB.QueryContext(ctx, q, args...)
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
func (s *SqliteTransitCache) PutMany(
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
	INSERT OR REPLACE INTO transit_cache (
        origin,
        destination,
        distance_km,
        duration_minutes
    )
    VALUES (?, ?, ?, ?)
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
