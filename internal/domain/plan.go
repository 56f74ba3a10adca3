package domain

import (
	"math"
	"time"
)

// Advisory trip status. The core never derives status from dates; the nightly
// status job and user actions are the only writers.
type PlanStatus string

const (
	PlanStatusDraft     PlanStatus = "draft"
	PlanStatusUpcoming  PlanStatus = "upcoming"
	PlanStatusActive    PlanStatus = "active"
	PlanStatusCompleted PlanStatus = "completed"
)

// Default meal durations in minutes, applied when a plan is created without
// explicit overrides.
const (
	DefaultBreakfastDuration = 60
	DefaultLunchDuration     = 90
	DefaultDinnerDuration    = 120
)

// Plan is a user's trip: a destination, an inclusive date range, and the
// per-day time budget the schedule aggregator measures against.
// Plans are soft-deleted (DeletedAt set, rows kept).
type Plan struct {
	PlanID            int
	UserID            string
	Destination       string
	City              string
	Country           string
	StartDate         time.Time
	EndDate           time.Time
	MaxDailyHours     int
	BreakfastDuration int
	LunchDuration     int
	DinnerDuration    int
	Status            PlanStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time
}

// TripDays returns the inclusive day count of the trip. A plan whose start and
// end dates coincide is a one-day trip.
func (p *Plan) TripDays() int {
	return int(math.Ceil(p.EndDate.Sub(p.StartDate).Hours()/24)) + 1
}

// MaxDailyMinutes is the activity ceiling for a single day.
func (p *Plan) MaxDailyMinutes() int {
	return p.MaxDailyHours * 60
}

// TotalBreakTime is the fixed meal budget in minutes, constant across all days
// of the plan.
func (p *Plan) TotalBreakTime() int {
	return p.BreakfastDuration + p.LunchDuration + p.DinnerDuration
}
