package services

import (
	"reflect"
	"strings"
	"testing"
	"time"
	"vacation-planner-service/internal/domain"
)

func testPlan(t *testing.T, start, end string) *domain.Plan {
	t.Helper()

	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		t.Fatalf("parse start date %q: %v", start, err)
	}
	endDate, err := time.Parse("2006-01-02", end)
	if err != nil {
		t.Fatalf("parse end date %q: %v", end, err)
	}

	return &domain.Plan{
		PlanID:            1,
		UserID:            "user-1",
		Destination:       "Paris, France",
		StartDate:         startDate,
		EndDate:           endDate,
		MaxDailyHours:     8,
		BreakfastDuration: 60,
		LunchDuration:     90,
		DinnerDuration:    120,
		Status:            domain.PlanStatusDraft,
	}
}

func TestComputeDaySchedulesSingleDayTrip(t *testing.T) {
	plan := testPlan(t, "2026-06-01", "2026-06-01")

	schedules, err := ComputeDaySchedules(plan, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(schedules) != 1 {
		t.Fatalf("expected 1 schedule, got %d", len(schedules))
	}
	if schedules[0].DayNumber != 1 {
		t.Errorf("dayNumber = %d, want 1", schedules[0].DayNumber)
	}
	if !schedules[0].Date.Equal(plan.StartDate) {
		t.Errorf("date = %v, want %v", schedules[0].Date, plan.StartDate)
	}
}

func TestComputeDaySchedulesOnePerDay(t *testing.T) {
	plan := testPlan(t, "2026-06-01", "2026-06-05")

	schedules, err := ComputeDaySchedules(plan, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(schedules) != 5 {
		t.Fatalf("expected 5 schedules, got %d", len(schedules))
	}

	for i, s := range schedules {
		if s.DayNumber != i+1 {
			t.Errorf("schedule %d dayNumber = %d, want %d", i, s.DayNumber, i+1)
		}
		wantDate := plan.StartDate.AddDate(0, 0, i)
		if !s.Date.Equal(wantDate) {
			t.Errorf("schedule %d date = %v, want %v", i, s.Date, wantDate)
		}
		if len(s.Activities) != 0 {
			t.Errorf("schedule %d has %d activities, want 0", i, len(s.Activities))
		}
		if s.TotalActivityTime != 0 || s.TotalTransitTime != 0 {
			t.Errorf("empty day %d has nonzero activity/transit time", i+1)
		}
	}
}

func TestComputeDaySchedulesOverBudgetExample(t *testing.T) {
	plan := testPlan(t, "2026-06-01", "2026-06-01")

	activities := []*domain.Activity{
		{ActivityID: 1, PlanID: 1, DayNumber: 1, OrderInDay: 0, LocationName: "Eiffel Tower", VisitDuration: 120, TransitDuration: 30, Priority: 5},
		{ActivityID: 2, PlanID: 1, DayNumber: 1, OrderInDay: 1, LocationName: "Louvre Museum", VisitDuration: 90, TransitDuration: 0, Priority: 5},
	}

	schedules, err := ComputeDaySchedules(plan, activities)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := schedules[0]
	if s.TotalActivityTime != 210 {
		t.Errorf("totalActivityTime = %d, want 210", s.TotalActivityTime)
	}
	if s.TotalTransitTime != 30 {
		t.Errorf("totalTransitTime = %d, want 30", s.TotalTransitTime)
	}
	if s.TotalBreakTime != 270 {
		t.Errorf("totalBreakTime = %d, want 270", s.TotalBreakTime)
	}
	if s.TotalTime != 510 {
		t.Errorf("totalTime = %d, want 510", s.TotalTime)
	}
	if !s.IsOverBudget {
		t.Error("expected day to be over budget")
	}
	if s.AvailableTime != -30 {
		t.Errorf("availableTime = %d, want -30", s.AvailableTime)
	}
}

func TestComputeDaySchedulesInvariants(t *testing.T) {
	plan := testPlan(t, "2026-06-01", "2026-06-03")

	activities := []*domain.Activity{
		{ActivityID: 1, DayNumber: 1, OrderInDay: 0, VisitDuration: 60, TransitDuration: 15, Priority: 3},
		{ActivityID: 2, DayNumber: 2, OrderInDay: 0, VisitDuration: 200, TransitDuration: 45, Priority: 7},
		{ActivityID: 3, DayNumber: 2, OrderInDay: 1, VisitDuration: 180, TransitDuration: 0, Priority: 2},
	}

	schedules, err := ComputeDaySchedules(plan, activities)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, s := range schedules {
		if s.TotalTime != s.TotalActivityTime+s.TotalTransitTime+s.TotalBreakTime {
			t.Errorf("day %d: totalTime %d != sum of parts", s.DayNumber, s.TotalTime)
		}
		if s.IsOverBudget != (s.TotalTime > plan.MaxDailyMinutes()) {
			t.Errorf("day %d: isOverBudget inconsistent with totals", s.DayNumber)
		}
		if s.AvailableTime != plan.MaxDailyMinutes()-s.TotalTime {
			t.Errorf("day %d: availableTime %d inconsistent", s.DayNumber, s.AvailableTime)
		}
	}
}

func TestComputeDaySchedulesSortsAndFilters(t *testing.T) {
	plan := testPlan(t, "2026-06-01", "2026-06-01")
	deleted := time.Now()

	activities := []*domain.Activity{
		{ActivityID: 1, DayNumber: 1, OrderInDay: 2, LocationName: "Third", VisitDuration: 30},
		{ActivityID: 2, DayNumber: 1, OrderInDay: 0, LocationName: "First", VisitDuration: 30},
		{ActivityID: 3, DayNumber: 1, OrderInDay: 1, LocationName: "Gone", VisitDuration: 30, DeletedAt: &deleted},
		{ActivityID: 4, DayNumber: 1, OrderInDay: 1, LocationName: "Second", VisitDuration: 30},
	}

	schedules, err := ComputeDaySchedules(plan, activities)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := make([]string, 0, len(schedules[0].Activities))
	for _, a := range schedules[0].Activities {
		got = append(got, a.LocationName)
	}
	want := []string{"First", "Second", "Third"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("day order = %v, want %v", got, want)
	}
}

func TestComputeDaySchedulesIdempotent(t *testing.T) {
	plan := testPlan(t, "2026-06-01", "2026-06-02")
	activities := []*domain.Activity{
		{ActivityID: 1, DayNumber: 1, OrderInDay: 0, VisitDuration: 90, TransitDuration: 20},
		{ActivityID: 2, DayNumber: 2, OrderInDay: 0, VisitDuration: 45, TransitDuration: 0},
	}

	first, err := ComputeDaySchedules(plan, activities)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ComputeDaySchedules(plan, activities)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("repeated calls with identical input produced different output")
	}
}

func TestComputeDaySchedulesReversedRange(t *testing.T) {
	plan := testPlan(t, "2026-06-05", "2026-06-01")

	if _, err := ComputeDaySchedules(plan, nil); err == nil {
		t.Fatal("expected error for end date before start date")
	}
}

func TestValidateScheduleViolations(t *testing.T) {
	plan := testPlan(t, "2026-06-01", "2026-06-02")

	activities := []*domain.Activity{
		// Day 1: 210 + 30 + 270 = 510 > 480.
		{ActivityID: 1, DayNumber: 1, OrderInDay: 0, LocationName: "Eiffel Tower", VisitDuration: 120, TransitDuration: 30, Priority: 8},
		{ActivityID: 2, DayNumber: 1, OrderInDay: 1, LocationName: "Louvre Museum", VisitDuration: 90, TransitDuration: 0, Priority: 2},
		// Day 2: comfortably under budget.
		{ActivityID: 3, DayNumber: 2, OrderInDay: 0, LocationName: "Le Marais District", VisitDuration: 60, TransitDuration: 0, Priority: 5},
	}

	validation, err := ValidateSchedule(plan, activities)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if validation.IsValid {
		t.Error("expected invalid schedule")
	}
	if len(validation.Violations) != 1 {
		t.Fatalf("expected 1 violation, got %d", len(validation.Violations))
	}

	v := validation.Violations[0]
	if v.DayNumber != 1 {
		t.Errorf("violation dayNumber = %d, want 1", v.DayNumber)
	}
	if v.TotalTime != 510 || v.MaxTime != 480 || v.OverageMinutes != 30 {
		t.Errorf("violation = %+v, want totalTime=510 maxTime=480 overage=30", v)
	}

	if len(validation.Suggestions) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(validation.Suggestions))
	}
	// Lowest priority first: the Louvre (priority 2) before the tower (8).
	want := `Day 1: Remove or shorten activities like "Louvre Museum", "Eiffel Tower"`
	if validation.Suggestions[0] != want {
		t.Errorf("suggestion = %q, want %q", validation.Suggestions[0], want)
	}
}

func TestValidateScheduleAllWithinBudget(t *testing.T) {
	plan := testPlan(t, "2026-06-01", "2026-06-03")

	validation, err := ValidateSchedule(plan, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !validation.IsValid {
		t.Error("expected valid schedule")
	}
	if len(validation.Violations) != 0 || len(validation.Suggestions) != 0 {
		t.Errorf(
			"expected no violations/suggestions, got %d/%d",
			len(validation.Violations), len(validation.Suggestions),
		)
	}
}

func TestActivitySuggestions(t *testing.T) {
	plan := testPlan(t, "2026-06-01", "2026-06-02")

	// Day 1 has one short activity (lots of room), day 2 is empty.
	activities := []*domain.Activity{
		{ActivityID: 1, DayNumber: 1, OrderInDay: 0, LocationName: "La Boqueria Market", VisitDuration: 60},
	}

	suggestions, err := ActivitySuggestions(plan, activities)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var sawRoom, sawEmpty bool
	for _, s := range suggestions {
		if strings.HasPrefix(s, "Day 1:") && strings.Contains(s, "Consider adding") {
			sawRoom = true
		}
		if s == "Day 2: No activities planned yet." {
			sawEmpty = true
		}
	}

	if !sawRoom {
		t.Errorf("missing free-time suggestion for day 1, got %v", suggestions)
	}
	if !sawEmpty {
		t.Errorf("missing empty-day suggestion for day 2, got %v", suggestions)
	}
}
