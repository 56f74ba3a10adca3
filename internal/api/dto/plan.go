package dto

import "time"

// CreatePlanRequest uses pointers for the fields that have server-side
// defaults so "absent" and "zero" stay distinguishable.
type CreatePlanRequest struct {
	Destination       string `json:"destination"`
	City              string `json:"city"`
	Country           string `json:"country"`
	StartDate         string `json:"start_date"`
	EndDate           string `json:"end_date"`
	MaxDailyHours     int    `json:"max_daily_hours"`
	BreakfastDuration *int   `json:"breakfast_duration"`
	LunchDuration     *int   `json:"lunch_duration"`
	DinnerDuration    *int   `json:"dinner_duration"`
}

type UpdatePlanRequest struct {
	Destination       *string `json:"destination"`
	City              *string `json:"city"`
	Country           *string `json:"country"`
	StartDate         *string `json:"start_date"`
	EndDate           *string `json:"end_date"`
	MaxDailyHours     *int    `json:"max_daily_hours"`
	BreakfastDuration *int    `json:"breakfast_duration"`
	LunchDuration     *int    `json:"lunch_duration"`
	DinnerDuration    *int    `json:"dinner_duration"`
	Status            *string `json:"status"`
}

type PlanResponse struct {
	PlanID            int       `json:"plan_id"`
	Destination       string    `json:"destination"`
	City              string    `json:"city"`
	Country           string    `json:"country"`
	StartDate         string    `json:"start_date"`
	EndDate           string    `json:"end_date"`
	TripDays          int       `json:"trip_days"`
	MaxDailyHours     int       `json:"max_daily_hours"`
	BreakfastDuration int       `json:"breakfast_duration"`
	LunchDuration     int       `json:"lunch_duration"`
	DinnerDuration    int       `json:"dinner_duration"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type ListPlansResponse struct {
	Plans []PlanResponse `json:"plans"`
}
