package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"vacation-planner-service/internal/domain"
)

// SQLite-backed implementation of the PlanRepository port.
type SqlitePlanRepository struct{ DB *sql.DB }

func NewSqlitePlanRepository(db *sql.DB) *SqlitePlanRepository {
	return &SqlitePlanRepository{DB: db}
}

const planColumns = `
	plan_id,
	user_id,
	destination,
	city,
	country,
	start_date,
	end_date,
	max_daily_hours,
	breakfast_duration,
	lunch_duration,
	dinner_duration,
	status,
	created_at,
	updated_at,
	deleted_at
`

func (s *SqlitePlanRepository) CreatePlan(ctx context.Context, plan *domain.Plan) error {
	if s.DB == nil {
		return errors.New("sqlite plan repository: DB is nil")
	}
	if plan == nil {
		return errors.New("create plan: plan must be non-nil")
	}

	now := time.Now()
	plan.CreatedAt = now
	plan.UpdatedAt = now
	if plan.Status == "" {
		plan.Status = domain.PlanStatusDraft
	}

	query := `
	INSERT INTO plans (
		user_id, destination, city, country,
		start_date, end_date, max_daily_hours,
		breakfast_duration, lunch_duration, dinner_duration,
		status, created_at, updated_at
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	res, err := s.DB.ExecContext(ctx, query,
		plan.UserID,
		plan.Destination,
		plan.City,
		plan.Country,
		timeToDB(plan.StartDate),
		timeToDB(plan.EndDate),
		plan.MaxDailyHours,
		plan.BreakfastDuration,
		plan.LunchDuration,
		plan.DinnerDuration,
		string(plan.Status),
		timeToDB(now),
		timeToDB(now),
	)
	if err != nil {
		return fmt.Errorf("create plan: insert: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create plan: last insert id: %w", err)
	}
	plan.PlanID = int(id)

	return nil
}

// GetPlan returns the plan or nil when it does not exist or is soft-deleted.
func (s *SqlitePlanRepository) GetPlan(ctx context.Context, planID int) (*domain.Plan, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite plan repository: DB is nil")
	}

	query := `SELECT ` + planColumns + ` FROM plans WHERE plan_id = ? AND deleted_at IS NULL;`

	plan, err := scanPlan(s.DB.QueryRowContext(ctx, query, planID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get plan %d: %w", planID, err)
	}

	return plan, nil
}

func (s *SqlitePlanRepository) ListPlans(ctx context.Context, userID string) ([]*domain.Plan, error) {
	query := `
	SELECT ` + planColumns + `
	FROM plans
	WHERE user_id = ? AND deleted_at IS NULL
	ORDER BY start_date, plan_id;
	`
	return s.queryPlans(ctx, query, userID)
}

func (s *SqlitePlanRepository) ListPlansByStatus(
	ctx context.Context,
	userID string,
	status domain.PlanStatus,
) ([]*domain.Plan, error) {
	query := `
	SELECT ` + planColumns + `
	FROM plans
	WHERE user_id = ? AND status = ? AND deleted_at IS NULL
	ORDER BY start_date, plan_id;
	`
	return s.queryPlans(ctx, query, userID, string(status))
}

func (s *SqlitePlanRepository) UpdatePlan(ctx context.Context, plan *domain.Plan) error {
	if s.DB == nil {
		return errors.New("sqlite plan repository: DB is nil")
	}
	if plan == nil {
		return errors.New("update plan: plan must be non-nil")
	}

	plan.UpdatedAt = time.Now()

	query := `
	UPDATE plans
	SET destination = ?,
		city = ?,
		country = ?,
		start_date = ?,
		end_date = ?,
		max_daily_hours = ?,
		breakfast_duration = ?,
		lunch_duration = ?,
		dinner_duration = ?,
		status = ?,
		updated_at = ?
	WHERE plan_id = ? AND deleted_at IS NULL;
	`
	res, err := s.DB.ExecContext(ctx, query,
		plan.Destination,
		plan.City,
		plan.Country,
		timeToDB(plan.StartDate),
		timeToDB(plan.EndDate),
		plan.MaxDailyHours,
		plan.BreakfastDuration,
		plan.LunchDuration,
		plan.DinnerDuration,
		string(plan.Status),
		timeToDB(plan.UpdatedAt),
		plan.PlanID,
	)
	if err != nil {
		return fmt.Errorf("update plan %d: %w", plan.PlanID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update plan %d: rows affected: %w", plan.PlanID, err)
	}
	if n == 0 {
		return fmt.Errorf("update plan %d: plan not found", plan.PlanID)
	}

	return nil
}

func (s *SqlitePlanRepository) SoftDeletePlan(ctx context.Context, planID int) error {
	if s.DB == nil {
		return errors.New("sqlite plan repository: DB is nil")
	}

	now := timeToDB(time.Now())
	query := `
	UPDATE plans
	SET deleted_at = ?, updated_at = ?
	WHERE plan_id = ? AND deleted_at IS NULL;
	`
	if _, err := s.DB.ExecContext(ctx, query, now, now, planID); err != nil {
		return fmt.Errorf("soft delete plan %d: %w", planID, err)
	}

	return nil
}

// RefreshStatuses rolls non-draft statuses forward by date: upcoming plans
// whose trip has started become active, and any unfinished non-draft plan
// whose trip has ended becomes completed. Draft plans are never touched.
func (s *SqlitePlanRepository) RefreshStatuses(ctx context.Context, now time.Time) (int64, error) {
	if s.DB == nil {
		return 0, errors.New("sqlite plan repository: DB is nil")
	}

	nowDB := timeToDB(now)

	completeQuery := `
	UPDATE plans
	SET status = 'completed', updated_at = ?
	WHERE status IN ('upcoming', 'active')
		AND end_date < ?
		AND deleted_at IS NULL;
	`
	completed, err := s.DB.ExecContext(ctx, completeQuery, nowDB, nowDB)
	if err != nil {
		return 0, fmt.Errorf("refresh statuses: complete ended plans: %w", err)
	}

	activateQuery := `
	UPDATE plans
	SET status = 'active', updated_at = ?
	WHERE status = 'upcoming'
		AND start_date <= ?
		AND deleted_at IS NULL;
	`
	activated, err := s.DB.ExecContext(ctx, activateQuery, nowDB, nowDB)
	if err != nil {
		return 0, fmt.Errorf("refresh statuses: activate started plans: %w", err)
	}

	nCompleted, _ := completed.RowsAffected()
	nActivated, _ := activated.RowsAffected()

	return nCompleted + nActivated, nil
}

func (s *SqlitePlanRepository) queryPlans(ctx context.Context, query string, args ...any) ([]*domain.Plan, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite plan repository: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list plans: query plans table: %w", err)
	}
	defer rows.Close()

	plans := make([]*domain.Plan, 0, 16)
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("list plans: %w", err)
		}
		plans = append(plans, plan)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list plans: row iteration: %w", err)
	}

	return plans, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlan(row rowScanner) (*domain.Plan, error) {
	var (
		plan      domain.Plan
		status    string
		startDate string
		endDate   string
		createdAt string
		updatedAt string
		deletedAt sql.NullString
	)

	err := row.Scan(
		&plan.PlanID,
		&plan.UserID,
		&plan.Destination,
		&plan.City,
		&plan.Country,
		&startDate,
		&endDate,
		&plan.MaxDailyHours,
		&plan.BreakfastDuration,
		&plan.LunchDuration,
		&plan.DinnerDuration,
		&status,
		&createdAt,
		&updatedAt,
		&deletedAt,
	)
	if err != nil {
		return nil, err
	}

	plan.Status = domain.PlanStatus(status)

	if plan.StartDate, err = timeFromDB(startDate); err != nil {
		return nil, fmt.Errorf("scan plan %d: %w", plan.PlanID, err)
	}
	if plan.EndDate, err = timeFromDB(endDate); err != nil {
		return nil, fmt.Errorf("scan plan %d: %w", plan.PlanID, err)
	}
	if plan.CreatedAt, err = timeFromDB(createdAt); err != nil {
		return nil, fmt.Errorf("scan plan %d: %w", plan.PlanID, err)
	}
	if plan.UpdatedAt, err = timeFromDB(updatedAt); err != nil {
		return nil, fmt.Errorf("scan plan %d: %w", plan.PlanID, err)
	}
	if plan.DeletedAt, err = nullTimeFromDB(deletedAt); err != nil {
		return nil, fmt.Errorf("scan plan %d: %w", plan.PlanID, err)
	}

	return &plan, nil
}
