package services

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"vacation-planner-service/internal/domain"
)

// ComputeDaySchedules derives the per-day time budget projection for a plan.
//
// It returns exactly one DaySchedule per calendar day of the trip, numbered
// 1..TripDays, including days with no activities. Transit time is summed from
// stored values; nothing is recomputed from coordinates here. The function is
// pure: identical inputs always produce identical output.
//
// The only error is the precondition guard on a reversed date range; schema
// checks upstream are expected to reject it, but trip length math is undefined
// for such inputs so the guard is explicit.
func ComputeDaySchedules(plan *domain.Plan, activities []*domain.Activity) ([]domain.DaySchedule, error) {
	if plan == nil {
		return nil, errors.New("compute day schedules: plan must be non-nil")
	}

	if plan.EndDate.Before(plan.StartDate) {
		return nil, fmt.Errorf(
			"compute day schedules: plan %d end date %s precedes start date %s",
			plan.PlanID,
			plan.EndDate.Format("2006-01-02"),
			plan.StartDate.Format("2006-01-02"),
		)
	}

	tripDays := plan.TripDays()
	maxTime := plan.MaxDailyMinutes()
	totalBreakTime := plan.TotalBreakTime()

	schedules := make([]domain.DaySchedule, 0, tripDays)

	for day := 1; day <= tripDays; day++ {
		dayActivities := make([]*domain.Activity, 0, 8)
		for _, a := range activities {
			if a.DayNumber == day && a.DeletedAt == nil {
				dayActivities = append(dayActivities, a)
			}
		}

		// Stable sort: equal orderInDay values keep insertion order.
		slices.SortStableFunc(dayActivities, func(a, b *domain.Activity) int {
			return a.OrderInDay - b.OrderInDay
		})

		totalActivityTime := 0
		totalTransitTime := 0
		for _, a := range dayActivities {
			totalActivityTime += a.VisitDuration
			totalTransitTime += a.TransitDuration
		}

		totalTime := totalActivityTime + totalTransitTime + totalBreakTime

		schedules = append(schedules, domain.DaySchedule{
			DayNumber:         day,
			Date:              plan.StartDate.AddDate(0, 0, day-1),
			Activities:        dayActivities,
			TotalActivityTime: totalActivityTime,
			TotalTransitTime:  totalTransitTime,
			TotalBreakTime:    totalBreakTime,
			TotalTime:         totalTime,
			IsOverBudget:      totalTime > maxTime,
			AvailableTime:     maxTime - totalTime,
		})
	}

	return schedules, nil
}

// ValidateSchedule checks every day of the plan against its time budget.
//
// For each over-budget day it emits a violation record and a suggestion naming
// up to three lowest-priority activities as removal or shortening candidates.
// Advisory only: nothing is mutated.
func ValidateSchedule(plan *domain.Plan, activities []*domain.Activity) (*domain.ScheduleValidation, error) {
	schedules, err := ComputeDaySchedules(plan, activities)
	if err != nil {
		return nil, fmt.Errorf("validate schedule: %w", err)
	}

	maxTime := plan.MaxDailyMinutes()
	violations := make([]domain.ScheduleViolation, 0)
	suggestions := make([]string, 0)

	for _, schedule := range schedules {
		if !schedule.IsOverBudget {
			continue
		}

		violations = append(violations, domain.ScheduleViolation{
			DayNumber:      schedule.DayNumber,
			TotalTime:      schedule.TotalTime,
			MaxTime:        maxTime,
			OverageMinutes: schedule.TotalTime - maxTime,
		})

		suggestions = append(suggestions, cutSuggestion(schedule))
	}

	return &domain.ScheduleValidation{
		IsValid:     len(violations) == 0,
		Violations:  violations,
		Suggestions: suggestions,
	}, nil
}

// cutSuggestion names the day's lowest-priority activities as candidates to
// remove or shorten. Priority is a hint only; nothing is enforced.
func cutSuggestion(schedule domain.DaySchedule) string {
	candidates := slices.Clone(schedule.Activities)
	slices.SortStableFunc(candidates, func(a, b *domain.Activity) int {
		return a.Priority - b.Priority
	})

	if len(candidates) > 3 {
		candidates = candidates[:3]
	}

	names := make([]string, 0, len(candidates))
	for _, a := range candidates {
		names = append(names, fmt.Sprintf("%q", a.LocationName))
	}

	return fmt.Sprintf(
		"Day %d: Remove or shorten activities like %s",
		schedule.DayNumber,
		strings.Join(names, ", "),
	)
}

// ActivitySuggestions points out days with spare room or no plans at all.
func ActivitySuggestions(plan *domain.Plan, activities []*domain.Activity) ([]string, error) {
	schedules, err := ComputeDaySchedules(plan, activities)
	if err != nil {
		return nil, fmt.Errorf("activity suggestions: %w", err)
	}

	suggestions := make([]string, 0)
	for _, schedule := range schedules {
		if schedule.AvailableTime > 120 {
			suggestions = append(suggestions, fmt.Sprintf(
				"Day %d: You have %d hours available. Consider adding more activities.",
				schedule.DayNumber,
				schedule.AvailableTime/60,
			))
		}

		if len(schedule.Activities) == 0 {
			suggestions = append(suggestions, fmt.Sprintf(
				"Day %d: No activities planned yet.",
				schedule.DayNumber,
			))
		}
	}

	return suggestions, nil
}
