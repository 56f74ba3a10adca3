package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"vacation-planner-service/internal/domain"
	"vacation-planner-service/internal/ports"
)

// SQLite-backed implementation of the ActivityRepository port.
type SqliteActivityRepository struct{ DB *sql.DB }

func NewSqliteActivityRepository(db *sql.DB) *SqliteActivityRepository {
	return &SqliteActivityRepository{DB: db}
}

const activityColumns = `
	activity_id,
	plan_id,
	location_id,
	day_number,
	order_in_day,
	location_name,
	visit_duration,
	transit_duration,
	category,
	notes,
	priority,
	latitude,
	longitude,
	created_at,
	updated_at,
	deleted_at
`

func (s *SqliteActivityRepository) CreateActivity(ctx context.Context, activity *domain.Activity) error {
	if s.DB == nil {
		return errors.New("sqlite activity repository: DB is nil")
	}
	if activity == nil {
		return errors.New("create activity: activity must be non-nil")
	}

	now := time.Now()
	activity.CreatedAt = now
	activity.UpdatedAt = now
	if activity.Priority == 0 {
		activity.Priority = domain.DefaultPriority
	}

	query := `
	INSERT INTO activities (
		plan_id, location_id, day_number, order_in_day,
		location_name, visit_duration, transit_duration,
		category, notes, priority, latitude, longitude,
		created_at, updated_at
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	res, err := s.DB.ExecContext(ctx, query,
		activity.PlanID,
		activity.LocationID,
		activity.DayNumber,
		activity.OrderInDay,
		activity.LocationName,
		activity.VisitDuration,
		activity.TransitDuration,
		activity.Category,
		activity.Notes,
		activity.Priority,
		activity.Latitude,
		activity.Longitude,
		timeToDB(now),
		timeToDB(now),
	)
	if err != nil {
		return fmt.Errorf("create activity: insert: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create activity: last insert id: %w", err)
	}
	activity.ActivityID = int(id)

	return nil
}

// GetActivity returns the activity or nil when it does not exist or is
// soft-deleted.
func (s *SqliteActivityRepository) GetActivity(ctx context.Context, activityID int) (*domain.Activity, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite activity repository: DB is nil")
	}

	query := `SELECT ` + activityColumns + ` FROM activities WHERE activity_id = ? AND deleted_at IS NULL;`

	activity, err := scanActivity(s.DB.QueryRowContext(ctx, query, activityID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get activity %d: %w", activityID, err)
	}

	return activity, nil
}

func (s *SqliteActivityRepository) ListPlanActivities(ctx context.Context, planID int) ([]*domain.Activity, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite activity repository: DB is nil")
	}

	query := `
	SELECT ` + activityColumns + `
	FROM activities
	WHERE plan_id = ? AND deleted_at IS NULL
	ORDER BY day_number, order_in_day, activity_id;
	`
	rows, err := s.DB.QueryContext(ctx, query, planID)
	if err != nil {
		return nil, fmt.Errorf("list plan activities: query activities table: %w", err)
	}
	defer rows.Close()

	activities := make([]*domain.Activity, 0, 32)
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("list plan activities: %w", err)
		}
		activities = append(activities, activity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list plan activities: row iteration: %w", err)
	}

	return activities, nil
}

func (s *SqliteActivityRepository) UpdateActivity(ctx context.Context, activity *domain.Activity) error {
	if s.DB == nil {
		return errors.New("sqlite activity repository: DB is nil")
	}
	if activity == nil {
		return errors.New("update activity: activity must be non-nil")
	}

	activity.UpdatedAt = time.Now()

	query := `
	UPDATE activities
	SET day_number = ?,
		order_in_day = ?,
		location_name = ?,
		visit_duration = ?,
		transit_duration = ?,
		category = ?,
		notes = ?,
		priority = ?,
		latitude = ?,
		longitude = ?,
		updated_at = ?
	WHERE activity_id = ? AND deleted_at IS NULL;
	`
	res, err := s.DB.ExecContext(ctx, query,
		activity.DayNumber,
		activity.OrderInDay,
		activity.LocationName,
		activity.VisitDuration,
		activity.TransitDuration,
		activity.Category,
		activity.Notes,
		activity.Priority,
		activity.Latitude,
		activity.Longitude,
		timeToDB(activity.UpdatedAt),
		activity.ActivityID,
	)
	if err != nil {
		return fmt.Errorf("update activity %d: %w", activity.ActivityID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update activity %d: rows affected: %w", activity.ActivityID, err)
	}
	if n == 0 {
		return fmt.Errorf("update activity %d: activity not found", activity.ActivityID)
	}

	return nil
}

func (s *SqliteActivityRepository) SoftDeleteActivity(ctx context.Context, activityID int) error {
	if s.DB == nil {
		return errors.New("sqlite activity repository: DB is nil")
	}

	now := timeToDB(time.Now())
	query := `
	UPDATE activities
	SET deleted_at = ?, updated_at = ?
	WHERE activity_id = ? AND deleted_at IS NULL;
	`
	if _, err := s.DB.ExecContext(ctx, query, now, now, activityID); err != nil {
		return fmt.Errorf("soft delete activity %d: %w", activityID, err)
	}

	return nil
}

// ReorderActivities applies a manual rearrangement in one transaction.
func (s *SqliteActivityRepository) ReorderActivities(ctx context.Context, updates []ports.ActivityOrderUpdate) error {
	if s.DB == nil {
		return errors.New("sqlite activity repository: DB is nil")
	}

	if len(updates) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("reorder activities: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	UPDATE activities
	SET day_number = ?, order_in_day = ?, updated_at = ?
	WHERE activity_id = ? AND deleted_at IS NULL;
	`)
	if err != nil {
		return fmt.Errorf("reorder activities: db prepare: %w", err)
	}
	defer stmt.Close()

	now := timeToDB(time.Now())
	for _, u := range updates {
		if _, err := stmt.ExecContext(ctx, u.DayNumber, u.OrderInDay, now, u.ActivityID); err != nil {
			return fmt.Errorf("reorder activities: activity_id=%d: %w", u.ActivityID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("reorder activities: commit: %w", err)
	}

	return nil
}

// ApplyOptimization persists optimizer output: new order and transit values.
func (s *SqliteActivityRepository) ApplyOptimization(ctx context.Context, activities []*domain.Activity) error {
	if s.DB == nil {
		return errors.New("sqlite activity repository: DB is nil")
	}

	if len(activities) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("apply optimization: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	UPDATE activities
	SET order_in_day = ?, transit_duration = ?, updated_at = ?
	WHERE activity_id = ? AND deleted_at IS NULL;
	`)
	if err != nil {
		return fmt.Errorf("apply optimization: db prepare: %w", err)
	}
	defer stmt.Close()

	now := timeToDB(time.Now())
	for _, a := range activities {
		if _, err := stmt.ExecContext(ctx, a.OrderInDay, a.TransitDuration, now, a.ActivityID); err != nil {
			return fmt.Errorf("apply optimization: activity_id=%d: %w", a.ActivityID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("apply optimization: commit: %w", err)
	}

	return nil
}

func scanActivity(row rowScanner) (*domain.Activity, error) {
	var (
		activity   domain.Activity
		locationID sql.NullInt64
		latitude   sql.NullFloat64
		longitude  sql.NullFloat64
		createdAt  string
		updatedAt  string
		deletedAt  sql.NullString
	)

	err := row.Scan(
		&activity.ActivityID,
		&activity.PlanID,
		&locationID,
		&activity.DayNumber,
		&activity.OrderInDay,
		&activity.LocationName,
		&activity.VisitDuration,
		&activity.TransitDuration,
		&activity.Category,
		&activity.Notes,
		&activity.Priority,
		&latitude,
		&longitude,
		&createdAt,
		&updatedAt,
		&deletedAt,
	)
	if err != nil {
		return nil, err
	}

	if locationID.Valid {
		id := int(locationID.Int64)
		activity.LocationID = &id
	}
	if latitude.Valid {
		lat := latitude.Float64
		activity.Latitude = &lat
	}
	if longitude.Valid {
		lon := longitude.Float64
		activity.Longitude = &lon
	}

	if activity.CreatedAt, err = timeFromDB(createdAt); err != nil {
		return nil, fmt.Errorf("scan activity %d: %w", activity.ActivityID, err)
	}
	if activity.UpdatedAt, err = timeFromDB(updatedAt); err != nil {
		return nil, fmt.Errorf("scan activity %d: %w", activity.ActivityID, err)
	}
	if activity.DeletedAt, err = nullTimeFromDB(deletedAt); err != nil {
		return nil, fmt.Errorf("scan activity %d: %w", activity.ActivityID, err)
	}

	return &activity, nil
}
