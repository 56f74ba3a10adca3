package domain

import "time"

// DaySchedule is the derived time-budget breakdown for one calendar day of a
// plan. It is a pure projection recomputed from the plan and its activities;
// it is never persisted and has no lifecycle of its own.
type DaySchedule struct {
	DayNumber         int
	Date              time.Time
	Activities        []*Activity
	TotalActivityTime int
	TotalTransitTime  int
	TotalBreakTime    int
	TotalTime         int
	IsOverBudget      bool
	AvailableTime     int
}

// ScheduleViolation records one over-budget day.
type ScheduleViolation struct {
	DayNumber      int
	TotalTime      int
	MaxTime        int
	OverageMinutes int
}

// ScheduleValidation is the advisory result of checking a plan's schedule.
// It never mutates the plan; suggestions name removal candidates only.
type ScheduleValidation struct {
	IsValid     bool
	Violations  []ScheduleViolation
	Suggestions []string
}

// OptimizationResult is the outcome of reordering a plan's activities.
// OptimizedActivities always carries every input activity; ReorderedDays lists
// only the days whose new arrangement was strictly better than the stored one.
type OptimizationResult struct {
	OptimizedActivities   []*Activity
	TotalTransitTimeSaved int
	ReorderedDays         []int
}
