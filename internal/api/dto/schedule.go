package dto

type DayScheduleResponse struct {
	DayNumber         int                `json:"day_number"`
	Date              string             `json:"date"`
	Activities        []ActivityResponse `json:"activities"`
	TotalActivityTime int                `json:"total_activity_time"`
	TotalTransitTime  int                `json:"total_transit_time"`
	TotalBreakTime    int                `json:"total_break_time"`
	TotalTime         int                `json:"total_time"`
	IsOverBudget      bool               `json:"is_over_budget"`
	AvailableTime     int                `json:"available_time"`
}

type ScheduleResponse struct {
	PlanID       int                   `json:"plan_id"`
	DaySchedules []DayScheduleResponse `json:"day_schedules"`
}

type ViolationResponse struct {
	DayNumber      int `json:"day_number"`
	TotalTime      int `json:"total_time"`
	MaxTime        int `json:"max_time"`
	OverageMinutes int `json:"overage_minutes"`
}

type ValidationResponse struct {
	IsValid             bool                `json:"is_valid"`
	Violations          []ViolationResponse `json:"violations"`
	Suggestions         []string            `json:"suggestions"`
	ActivitySuggestions []string            `json:"activity_suggestions"`
}

type OptimizeResponse struct {
	PlanID                int                   `json:"plan_id"`
	TotalTransitTimeSaved int                   `json:"total_transit_time_saved"`
	ReorderedDays         []int                 `json:"reordered_days"`
	Activities            []ActivityResponse    `json:"activities"`
	DaySchedules          []DayScheduleResponse `json:"day_schedules"`
}
