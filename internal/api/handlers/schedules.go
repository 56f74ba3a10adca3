package handlers

import (
	"log"
	"net/http"

	"vacation-planner-service/internal/api/dto"
	"vacation-planner-service/internal/domain"
	"vacation-planner-service/internal/ports"
	"vacation-planner-service/internal/services"
)

type ScheduleHandler struct {
	Plans      ports.PlanRepository
	Activities ports.ActivityRepository
}

// Schedule returns the derived day-by-day time breakdown for a plan.
func (h *ScheduleHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	plan, activities, ok := h.loadPlanActivities(w, r)
	if !ok {
		return
	}

	schedules, err := services.ComputeDaySchedules(plan, activities)
	if err != nil {
		log.Printf("compute schedules failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ScheduleResponse{
		PlanID:       plan.PlanID,
		DaySchedules: toDayScheduleResponses(schedules),
	})
}

// Validation reports over-budget days with cut suggestions, plus free-time
// hints. Advisory only: nothing is mutated.
func (h *ScheduleHandler) Validation(w http.ResponseWriter, r *http.Request) {
	plan, activities, ok := h.loadPlanActivities(w, r)
	if !ok {
		return
	}

	validation, err := services.ValidateSchedule(plan, activities)
	if err != nil {
		log.Printf("validate schedule failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	hints, err := services.ActivitySuggestions(plan, activities)
	if err != nil {
		log.Printf("activity suggestions failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ValidationResponse{
		IsValid:             validation.IsValid,
		Violations:          make([]dto.ViolationResponse, 0, len(validation.Violations)),
		Suggestions:         validation.Suggestions,
		ActivitySuggestions: hints,
	}
	for _, v := range validation.Violations {
		res.Violations = append(res.Violations, dto.ViolationResponse{
			DayNumber:      v.DayNumber,
			TotalTime:      v.TotalTime,
			MaxTime:        v.MaxTime,
			OverageMinutes: v.OverageMinutes,
		})
	}
	writeJSON(w, r, http.StatusOK, res)
}

// Optimize reorders each day's activities along a shorter transit path,
// persists the new arrangement, and returns the refreshed schedule.
func (h *ScheduleHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	plan, activities, ok := h.loadPlanActivities(w, r)
	if !ok {
		return
	}

	result := services.OptimizeActivitiesOrder(activities)

	if err := h.Activities.ApplyOptimization(r.Context(), result.OptimizedActivities); err != nil {
		log.Printf("persist optimization failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	schedules, err := services.ComputeDaySchedules(plan, result.OptimizedActivities)
	if err != nil {
		log.Printf("compute schedules failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.OptimizeResponse{
		PlanID:                plan.PlanID,
		TotalTransitTimeSaved: result.TotalTransitTimeSaved,
		ReorderedDays:         result.ReorderedDays,
		Activities:            make([]dto.ActivityResponse, 0, len(result.OptimizedActivities)),
		DaySchedules:          toDayScheduleResponses(schedules),
	}
	for _, a := range result.OptimizedActivities {
		res.Activities = append(res.Activities, toActivityResponse(a))
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *ScheduleHandler) loadPlanActivities(w http.ResponseWriter, r *http.Request) (*domain.Plan, []*domain.Activity, bool) {
	plan, ok := loadOwnedPlan(w, r, h.Plans)
	if !ok {
		return nil, nil, false
	}

	activities, err := h.Activities.ListPlanActivities(r.Context(), plan.PlanID)
	if err != nil {
		log.Printf("list activities failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return nil, nil, false
	}

	return plan, activities, true
}

func toDayScheduleResponses(schedules []domain.DaySchedule) []dto.DayScheduleResponse {
	out := make([]dto.DayScheduleResponse, 0, len(schedules))
	for _, s := range schedules {
		day := dto.DayScheduleResponse{
			DayNumber:         s.DayNumber,
			Date:              s.Date.Format(dateLayout),
			Activities:        make([]dto.ActivityResponse, 0, len(s.Activities)),
			TotalActivityTime: s.TotalActivityTime,
			TotalTransitTime:  s.TotalTransitTime,
			TotalBreakTime:    s.TotalBreakTime,
			TotalTime:         s.TotalTime,
			IsOverBudget:      s.IsOverBudget,
			AvailableTime:     s.AvailableTime,
		}
		for _, a := range s.Activities {
			day.Activities = append(day.Activities, toActivityResponse(a))
		}
		out = append(out, day)
	}
	return out
}
