package ports

import (
	"context"
	"time"
	"vacation-planner-service/internal/domain"
)

// ActivityOrderUpdate repositions one activity during a manual reorder.
type ActivityOrderUpdate struct {
	ActivityID int
	DayNumber  int
	OrderInDay int
}

// Port: a boundary for persisting Plan entities.
// Deletes are soft: rows are marked, not erased.
type PlanRepository interface {
	CreatePlan(ctx context.Context, plan *domain.Plan) error
	GetPlan(ctx context.Context, planID int) (*domain.Plan, error)
	ListPlans(ctx context.Context, userID string) ([]*domain.Plan, error)
	ListPlansByStatus(ctx context.Context, userID string, status domain.PlanStatus) ([]*domain.Plan, error)
	UpdatePlan(ctx context.Context, plan *domain.Plan) error
	SoftDeletePlan(ctx context.Context, planID int) error

	// RefreshStatuses rolls non-draft plan statuses forward by date and
	// returns the number of plans touched. Advisory only; the schedule core
	// never reads time.
	RefreshStatuses(ctx context.Context, now time.Time) (int64, error)
}

// Port: a boundary for persisting Activity entities.
type ActivityRepository interface {
	CreateActivity(ctx context.Context, activity *domain.Activity) error
	GetActivity(ctx context.Context, activityID int) (*domain.Activity, error)
	ListPlanActivities(ctx context.Context, planID int) ([]*domain.Activity, error)
	UpdateActivity(ctx context.Context, activity *domain.Activity) error
	SoftDeleteActivity(ctx context.Context, activityID int) error

	// ReorderActivities applies a manual drag-and-drop rearrangement.
	ReorderActivities(ctx context.Context, updates []ActivityOrderUpdate) error

	// ApplyOptimization persists optimizer output: new orderInDay and
	// transitDuration values for every given activity.
	ApplyOptimization(ctx context.Context, activities []*domain.Activity) error
}

// Port: a boundary for the location catalog.
type LocationRepository interface {
	GetLocation(ctx context.Context, locationID int) (*domain.Location, error)
	ListLocationsByCity(ctx context.Context, city string) ([]*domain.Location, error)
	CreateLocation(ctx context.Context, location *domain.Location) error
}

// Port: a boundary for user accounts (thin auth glue).
type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
}
