package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"vacation-planner-service/internal/domain"
)

// SQLite-backed implementation of the LocationRepository port.
type SqliteLocationRepository struct{ DB *sql.DB }

func NewSqliteLocationRepository(db *sql.DB) *SqliteLocationRepository {
	return &SqliteLocationRepository{DB: db}
}

const locationColumns = `
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
`

// GetLocation returns the location or nil when it does not exist.
func (s *SqliteLocationRepository) GetLocation(ctx context.Context, locationID int) (*domain.Location, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite location repository: DB is nil")
	}

	query := `SELECT ` + locationColumns + ` FROM locations WHERE location_id = ? AND deleted_at IS NULL;`

	location, err := scanLocation(s.DB.QueryRowContext(ctx, query, locationID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get location %d: %w", locationID, err)
	}

	return location, nil
}

func (s *SqliteLocationRepository) ListLocationsByCity(ctx context.Context, city string) ([]*domain.Location, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite location repository: DB is nil")
	}

	query := `
	SELECT ` + locationColumns + `
	FROM locations
	WHERE city = ? AND deleted_at IS NULL
	ORDER BY location_id;
	`
	rows, err := s.DB.QueryContext(ctx, query, city)
	if err != nil {
		return nil, fmt.Errorf("list locations by city: query locations table: %w", err)
	}
	defer rows.Close()

	locations := make([]*domain.Location, 0, 16)
	for rows.Next() {
		location, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("list locations by city: %w", err)
		}
		locations = append(locations, location)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list locations by city: row iteration: %w", err)
	}

	return locations, nil
}

func (s *SqliteLocationRepository) CreateLocation(ctx context.Context, location *domain.Location) error {
	if s.DB == nil {
		return errors.New("sqlite location repository: DB is nil")
	}
	if location == nil {
		return errors.New("create location: location must be non-nil")
	}

	query := `
	INSERT INTO locations (
		name, type, category, city, country,
		latitude, longitude, typical_visit_duration, description
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	res, err := s.DB.ExecContext(ctx, query,
		location.Name,
		string(location.Type),
		location.Category,
		location.City,
		location.Country,
		location.Latitude,
		location.Longitude,
		location.TypicalVisitDuration,
		location.Description,
	)
	if err != nil {
		return fmt.Errorf("create location: insert: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create location: last insert id: %w", err)
	}
	location.LocationID = int(id)

	return nil
}

func scanLocation(row rowScanner) (*domain.Location, error) {
	var (
		location domain.Location
		locType  string
	)

	err := row.Scan(
		&location.LocationID,
		&location.Name,
		&locType,
		&location.Category,
		&location.City,
		&location.Country,
		&location.Latitude,
		&location.Longitude,
		&location.TypicalVisitDuration,
		&location.Description,
	)
	if err != nil {
		return nil, err
	}

	location.Type = domain.LocationType(locType)

	return &location, nil
}
