package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"vacation-planner-service/internal/api/dto"
	"vacation-planner-service/internal/domain"
	"vacation-planner-service/internal/ports"
)

const dateLayout = "2006-01-02"

type PlanHandler struct {
	Plans      ports.PlanRepository
	Activities ports.ActivityRepository
}

// Create makes a new draft plan for the authenticated user.
func (h *PlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePlanRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	destination := strings.TrimSpace(req.Destination)
	if destination == "" {
		writeError(w, r, http.StatusBadRequest, "destination is required")
		return
	}
	start, end, ok := parseDateRange(w, r, req.StartDate, req.EndDate)
	if !ok {
		return
	}
	if req.MaxDailyHours < 1 || req.MaxDailyHours > 24 {
		writeError(w, r, http.StatusBadRequest, "max_daily_hours must be between 1 and 24")
		return
	}

	plan := &domain.Plan{
		UserID:            UserIDFromContext(r.Context()),
		Destination:       destination,
		City:              strings.TrimSpace(req.City),
		Country:           strings.TrimSpace(req.Country),
		StartDate:         start,
		EndDate:           end,
		MaxDailyHours:     req.MaxDailyHours,
		BreakfastDuration: mealDuration(req.BreakfastDuration, domain.DefaultBreakfastDuration),
		LunchDuration:     mealDuration(req.LunchDuration, domain.DefaultLunchDuration),
		DinnerDuration:    mealDuration(req.DinnerDuration, domain.DefaultDinnerDuration),
	}
	if plan.BreakfastDuration < 0 || plan.LunchDuration < 0 || plan.DinnerDuration < 0 {
		writeError(w, r, http.StatusBadRequest, "meal durations must be non-negative")
		return
	}

	if err := h.Plans.CreatePlan(r.Context(), plan); err != nil {
		log.Printf("create plan failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, toPlanResponse(plan))
}

// List returns the user's plans, optionally filtered by ?status=.
func (h *PlanHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())

	var (
		plans []*domain.Plan
		err   error
	)
	if status := r.URL.Query().Get("status"); status != "" {
		if !validStatus(domain.PlanStatus(status)) {
			writeError(w, r, http.StatusBadRequest, "invalid status filter")
			return
		}
		plans, err = h.Plans.ListPlansByStatus(r.Context(), userID, domain.PlanStatus(status))
	} else {
		plans, err = h.Plans.ListPlans(r.Context(), userID)
	}
	if err != nil {
		log.Printf("list plans failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListPlansResponse{Plans: make([]dto.PlanResponse, 0, len(plans))}
	for _, p := range plans {
		res.Plans = append(res.Plans, toPlanResponse(p))
	}
	writeJSON(w, r, http.StatusOK, res)
}

// Get returns one plan owned by the authenticated user.
func (h *PlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	plan, ok := loadOwnedPlan(w, r, h.Plans)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, toPlanResponse(plan))
}

// Update applies a partial update to a plan.
func (h *PlanHandler) Update(w http.ResponseWriter, r *http.Request) {
	plan, ok := loadOwnedPlan(w, r, h.Plans)
	if !ok {
		return
	}

	var req dto.UpdatePlanRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Destination != nil {
		if strings.TrimSpace(*req.Destination) == "" {
			writeError(w, r, http.StatusBadRequest, "destination must be non-empty")
			return
		}
		plan.Destination = strings.TrimSpace(*req.Destination)
	}
	if req.City != nil {
		plan.City = strings.TrimSpace(*req.City)
	}
	if req.Country != nil {
		plan.Country = strings.TrimSpace(*req.Country)
	}
	if req.StartDate != nil {
		start, err := time.Parse(dateLayout, *req.StartDate)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
			return
		}
		plan.StartDate = start
	}
	if req.EndDate != nil {
		end, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "end_date must be YYYY-MM-DD")
			return
		}
		plan.EndDate = end
	}
	if plan.EndDate.Before(plan.StartDate) {
		writeError(w, r, http.StatusBadRequest, "end_date must not be before start_date")
		return
	}
	if req.MaxDailyHours != nil {
		if *req.MaxDailyHours < 1 || *req.MaxDailyHours > 24 {
			writeError(w, r, http.StatusBadRequest, "max_daily_hours must be between 1 and 24")
			return
		}
		plan.MaxDailyHours = *req.MaxDailyHours
	}
	if req.BreakfastDuration != nil {
		plan.BreakfastDuration = *req.BreakfastDuration
	}
	if req.LunchDuration != nil {
		plan.LunchDuration = *req.LunchDuration
	}
	if req.DinnerDuration != nil {
		plan.DinnerDuration = *req.DinnerDuration
	}
	if plan.BreakfastDuration < 0 || plan.LunchDuration < 0 || plan.DinnerDuration < 0 {
		writeError(w, r, http.StatusBadRequest, "meal durations must be non-negative")
		return
	}
	if req.Status != nil {
		if !validStatus(domain.PlanStatus(*req.Status)) {
			writeError(w, r, http.StatusBadRequest, "invalid status")
			return
		}
		plan.Status = domain.PlanStatus(*req.Status)
	}

	if err := h.Plans.UpdatePlan(r.Context(), plan); err != nil {
		log.Printf("update plan failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toPlanResponse(plan))
}

// Delete soft-deletes a plan. Its activities stay persisted but unreachable.
func (h *PlanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	plan, ok := loadOwnedPlan(w, r, h.Plans)
	if !ok {
		return
	}

	if err := h.Plans.SoftDeletePlan(r.Context(), plan.PlanID); err != nil {
		log.Printf("delete plan failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Clone copies a plan and its activities into a fresh draft.
func (h *PlanHandler) Clone(w http.ResponseWriter, r *http.Request) {
	plan, ok := loadOwnedPlan(w, r, h.Plans)
	if !ok {
		return
	}

	clone := *plan
	clone.PlanID = 0
	clone.Status = domain.PlanStatusDraft
	clone.Destination = plan.Destination + " (copy " + uuid.NewString()[:8] + ")"
	clone.DeletedAt = nil

	if err := h.Plans.CreatePlan(r.Context(), &clone); err != nil {
		log.Printf("clone plan failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	activities, err := h.Activities.ListPlanActivities(r.Context(), plan.PlanID)
	if err != nil {
		log.Printf("clone plan: list activities failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	for _, a := range activities {
		copied := *a
		copied.ActivityID = 0
		copied.PlanID = clone.PlanID
		if err := h.Activities.CreateActivity(r.Context(), &copied); err != nil {
			log.Printf("clone plan: copy activity failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
	}

	writeJSON(w, r, http.StatusCreated, toPlanResponse(&clone))
}

// loadOwnedPlan loads the plan from the {id} wildcard and enforces ownership.
// Plans belonging to other users read as not found.
func loadOwnedPlan(w http.ResponseWriter, r *http.Request, plans ports.PlanRepository) (*domain.Plan, bool) {
	planID, ok := pathID(w, r)
	if !ok {
		return nil, false
	}

	plan, err := plans.GetPlan(r.Context(), planID)
	if err != nil {
		log.Printf("get plan failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return nil, false
	}
	if plan == nil || plan.UserID != UserIDFromContext(r.Context()) {
		writeError(w, r, http.StatusNotFound, "plan not found")
		return nil, false
	}

	return plan, true
}

func parseDateRange(w http.ResponseWriter, r *http.Request, startStr, endStr string) (time.Time, time.Time, bool) {
	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse(dateLayout, endStr)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "end_date must be YYYY-MM-DD")
		return time.Time{}, time.Time{}, false
	}
	if end.Before(start) {
		writeError(w, r, http.StatusBadRequest, "end_date must not be before start_date")
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func mealDuration(override *int, fallback int) int {
	if override != nil {
		return *override
	}
	return fallback
}

func validStatus(s domain.PlanStatus) bool {
	switch s {
	case domain.PlanStatusDraft, domain.PlanStatusUpcoming, domain.PlanStatusActive, domain.PlanStatusCompleted:
		return true
	}
	return false
}

func toPlanResponse(p *domain.Plan) dto.PlanResponse {
	return dto.PlanResponse{
		PlanID:            p.PlanID,
		Destination:       p.Destination,
		City:              p.City,
		Country:           p.Country,
		StartDate:         p.StartDate.Format(dateLayout),
		EndDate:           p.EndDate.Format(dateLayout),
		TripDays:          p.TripDays(),
		MaxDailyHours:     p.MaxDailyHours,
		BreakfastDuration: p.BreakfastDuration,
		LunchDuration:     p.LunchDuration,
		DinnerDuration:    p.DinnerDuration,
		Status:            string(p.Status),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
