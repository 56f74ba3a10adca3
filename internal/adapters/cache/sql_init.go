package cache

import (
	"database/sql"
	"errors"
	"fmt"
)

// InitPostgresSchema creates the transit cache table on a Postgres database.
// Safe to run repeatedly.
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	query := `
	CREATE TABLE IF NOT EXISTS transit_cache (
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		distance_km DOUBLE PRECISION NOT NULL,
		duration_minutes INTEGER NOT NULL,
		PRIMARY KEY (origin, destination)
	);
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("init postgres schema: create transit_cache: %w", err)
	}

	return nil
}
