package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"vacation-planner-service/internal/domain"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createUsersQuery := `
	CREATE TABLE IF NOT EXISTS users (
		user_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		home_base TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		deleted_at TEXT
	);
	`

	createPlansQuery := `
	CREATE TABLE IF NOT EXISTS plans (
		plan_id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id TEXT NOT NULL,
		destination TEXT NOT NULL,
		city TEXT NOT NULL,
		country TEXT NOT NULL,
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		max_daily_hours INTEGER NOT NULL,
		breakfast_duration INTEGER NOT NULL DEFAULT 60,
		lunch_duration INTEGER NOT NULL DEFAULT 90,
		dinner_duration INTEGER NOT NULL DEFAULT 120,
		status TEXT NOT NULL DEFAULT 'draft',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		deleted_at TEXT
	);
	`

	createActivitiesQuery := `
	CREATE TABLE IF NOT EXISTS activities (
		activity_id INTEGER PRIMARY KEY AUTOINCREMENT,
		plan_id INTEGER NOT NULL,
		location_id INTEGER,
		day_number INTEGER NOT NULL,
		order_in_day INTEGER NOT NULL,
		location_name TEXT NOT NULL,
		visit_duration INTEGER NOT NULL,
		transit_duration INTEGER NOT NULL DEFAULT 0,
		category TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		priority INTEGER NOT NULL DEFAULT 5,
		latitude REAL,
		longitude REAL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		deleted_at TEXT
	);
	`

	createLocationsQuery := `
	CREATE TABLE IF NOT EXISTS locations (
		location_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		category TEXT NOT NULL,
		city TEXT NOT NULL,
		country TEXT NOT NULL,
		latitude REAL NOT NULL,
		longitude REAL NOT NULL,
		typical_visit_duration INTEGER NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		deleted_at TEXT
	);
	`

	createTransitCacheQuery := `
	CREATE TABLE IF NOT EXISTS transit_cache (
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		distance_km REAL NOT NULL,
		duration_minutes INTEGER NOT NULL,
		PRIMARY KEY (origin, destination)
	);
	`

	createActivityIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_activities_plan_day
	ON activities(plan_id, day_number, order_in_day);
	`

	createPlanIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_plans_user_status
	ON plans(user_id, status);
	`

	statements := []string{
		createUsersQuery,
		createPlansQuery,
		createActivitiesQuery,
		createLocationsQuery,
		createTransitCacheQuery,
		createActivityIndexQuery,
		createPlanIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the location catalog. Existing rows are left untouched so the seed
// is safe to run on every startup.
func SeedLocations(db *sql.DB, locations []*domain.Location) error {
	if db == nil {
		return errors.New("seed locations: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed locations: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR IGNORE INTO locations (
		location_id,
		name,
		type,
		category,
		city,
		country,
		latitude,
		longitude,
		typical_visit_duration,
		description
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed locations: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, loc := range locations {
		if loc.LocationID <= 0 {
			return fmt.Errorf("seed locations: invalid location_id %d for %q", loc.LocationID, loc.Name)
		}

		_, err := stmt.Exec(
			loc.LocationID,
			loc.Name,
			string(loc.Type),
			loc.Category,
			loc.City,
			loc.Country,
			loc.Latitude,
			loc.Longitude,
			loc.TypicalVisitDuration,
			loc.Description,
		)
		if err != nil {
			return fmt.Errorf("seed locations: insert location_id=%d: %w", loc.LocationID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed locations: commit tx: %w", err)
	}

	return nil
}
