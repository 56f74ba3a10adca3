package handlers

import (
	"log"
	"net/http"
	"strings"

	"vacation-planner-service/internal/api/dto"
	"vacation-planner-service/internal/domain"
	"vacation-planner-service/internal/ports"
	"vacation-planner-service/internal/services"
)

type ActivityHandler struct {
	Plans      ports.PlanRepository
	Activities ports.ActivityRepository
	Locations  ports.LocationRepository
	Transit    ports.TransitEstimator
}

// Create adds an activity to a plan. When location_id is given, name,
// coordinates, and visit duration default from the catalog entry.
func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	plan, ok := loadOwnedPlan(w, r, h.Plans)
	if !ok {
		return
	}

	var req dto.CreateActivityRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	activity := &domain.Activity{
		PlanID:        plan.PlanID,
		LocationID:    req.LocationID,
		DayNumber:     req.DayNumber,
		LocationName:  strings.TrimSpace(req.LocationName),
		VisitDuration: req.VisitDuration,
		Category:      strings.TrimSpace(req.Category),
		Notes:         req.Notes,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
	}

	if req.LocationID != nil {
		location, err := h.Locations.GetLocation(r.Context(), *req.LocationID)
		if err != nil {
			log.Printf("create activity: load location failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
		if location == nil {
			writeError(w, r, http.StatusBadRequest, "unknown location_id")
			return
		}
		if activity.LocationName == "" {
			activity.LocationName = location.Name
		}
		if activity.Category == "" {
			activity.Category = location.Category
		}
		if activity.VisitDuration == 0 {
			activity.VisitDuration = location.TypicalVisitDuration
		}
		if activity.Latitude == nil && activity.Longitude == nil {
			coords := location.Coordinates()
			activity.Latitude = &coords.Lat
			activity.Longitude = &coords.Lon
		}
	}

	if activity.LocationName == "" {
		writeError(w, r, http.StatusBadRequest, "location_name is required")
		return
	}
	if activity.VisitDuration < 1 {
		writeError(w, r, http.StatusBadRequest, "visit_duration must be positive")
		return
	}
	if activity.DayNumber < 1 || activity.DayNumber > plan.TripDays() {
		writeError(w, r, http.StatusBadRequest, "day_number is outside the trip's day range")
		return
	}
	if (activity.Latitude == nil) != (activity.Longitude == nil) {
		writeError(w, r, http.StatusBadRequest, "latitude and longitude must be given together")
		return
	}
	if req.Priority != nil {
		if *req.Priority < 1 || *req.Priority > 10 {
			writeError(w, r, http.StatusBadRequest, "priority must be between 1 and 10")
			return
		}
		activity.Priority = *req.Priority
	}

	if req.OrderInDay != nil {
		if *req.OrderInDay < 0 {
			writeError(w, r, http.StatusBadRequest, "order_in_day must be non-negative")
			return
		}
		activity.OrderInDay = *req.OrderInDay
	} else {
		order, err := h.nextOrderInDay(r, plan.PlanID, activity.DayNumber)
		if err != nil {
			log.Printf("create activity: next order failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
		activity.OrderInDay = order
	}

	if err := h.Activities.CreateActivity(r.Context(), activity); err != nil {
		log.Printf("create activity failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, toActivityResponse(activity))
}

// Update applies a partial update to an activity.
func (h *ActivityHandler) Update(w http.ResponseWriter, r *http.Request) {
	activity, plan, ok := h.ownedActivity(w, r)
	if !ok {
		return
	}

	var req dto.UpdateActivityRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.DayNumber != nil {
		if *req.DayNumber < 1 || *req.DayNumber > plan.TripDays() {
			writeError(w, r, http.StatusBadRequest, "day_number is outside the trip's day range")
			return
		}
		activity.DayNumber = *req.DayNumber
	}
	if req.OrderInDay != nil {
		if *req.OrderInDay < 0 {
			writeError(w, r, http.StatusBadRequest, "order_in_day must be non-negative")
			return
		}
		activity.OrderInDay = *req.OrderInDay
	}
	if req.LocationName != nil {
		if strings.TrimSpace(*req.LocationName) == "" {
			writeError(w, r, http.StatusBadRequest, "location_name must be non-empty")
			return
		}
		activity.LocationName = strings.TrimSpace(*req.LocationName)
	}
	if req.VisitDuration != nil {
		if *req.VisitDuration < 1 {
			writeError(w, r, http.StatusBadRequest, "visit_duration must be positive")
			return
		}
		activity.VisitDuration = *req.VisitDuration
	}
	if req.Category != nil {
		activity.Category = strings.TrimSpace(*req.Category)
	}
	if req.Notes != nil {
		activity.Notes = *req.Notes
	}
	if req.Priority != nil {
		if *req.Priority < 1 || *req.Priority > 10 {
			writeError(w, r, http.StatusBadRequest, "priority must be between 1 and 10")
			return
		}
		activity.Priority = *req.Priority
	}
	if req.Latitude != nil {
		activity.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		activity.Longitude = req.Longitude
	}
	if (activity.Latitude == nil) != (activity.Longitude == nil) {
		writeError(w, r, http.StatusBadRequest, "latitude and longitude must be given together")
		return
	}

	if err := h.Activities.UpdateActivity(r.Context(), activity); err != nil {
		log.Printf("update activity failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toActivityResponse(activity))
}

// Delete soft-deletes an activity. The day's remaining order keys keep their
// gaps; the schedule aggregator tolerates them.
func (h *ActivityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	activity, _, ok := h.ownedActivity(w, r)
	if !ok {
		return
	}

	if err := h.Activities.SoftDeleteActivity(r.Context(), activity.ActivityID); err != nil {
		log.Printf("delete activity failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Reorder applies a manual drag-and-drop rearrangement across the plan's
// days in one batch.
func (h *ActivityHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	plan, ok := loadOwnedPlan(w, r, h.Plans)
	if !ok {
		return
	}

	var req dto.ReorderActivitiesRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if len(req.Updates) == 0 {
		writeError(w, r, http.StatusBadRequest, "updates must be non-empty")
		return
	}

	activities, err := h.Activities.ListPlanActivities(r.Context(), plan.PlanID)
	if err != nil {
		log.Printf("reorder: list activities failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	known := make(map[int]bool, len(activities))
	for _, a := range activities {
		known[a.ActivityID] = true
	}

	updates := make([]ports.ActivityOrderUpdate, 0, len(req.Updates))
	for _, u := range req.Updates {
		if !known[u.ActivityID] {
			writeError(w, r, http.StatusBadRequest, "updates reference an activity outside this plan")
			return
		}
		if u.DayNumber < 1 || u.DayNumber > plan.TripDays() {
			writeError(w, r, http.StatusBadRequest, "day_number is outside the trip's day range")
			return
		}
		if u.OrderInDay < 0 {
			writeError(w, r, http.StatusBadRequest, "order_in_day must be non-negative")
			return
		}
		updates = append(updates, ports.ActivityOrderUpdate{
			ActivityID: u.ActivityID,
			DayNumber:  u.DayNumber,
			OrderInDay: u.OrderInDay,
		})
	}

	if err := h.Activities.ReorderActivities(r.Context(), updates); err != nil {
		log.Printf("reorder activities failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	reordered, err := h.Activities.ListPlanActivities(r.Context(), plan.PlanID)
	if err != nil {
		log.Printf("reorder: reload activities failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	// Stored leg times describe the old arrangement; refresh them.
	reordered, err = services.RecomputeTransitTimes(r.Context(), reordered, h.Transit)
	if err != nil {
		log.Printf("reorder: recompute transit failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if err := h.Activities.ApplyOptimization(r.Context(), reordered); err != nil {
		log.Printf("reorder: persist transit failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListActivitiesResponse{Activities: make([]dto.ActivityResponse, 0, len(reordered))}
	for _, a := range reordered {
		res.Activities = append(res.Activities, toActivityResponse(a))
	}
	writeJSON(w, r, http.StatusOK, res)
}

// ownedActivity loads the activity from the {id} wildcard and enforces
// ownership through its plan.
func (h *ActivityHandler) ownedActivity(w http.ResponseWriter, r *http.Request) (*domain.Activity, *domain.Plan, bool) {
	activityID, ok := pathID(w, r)
	if !ok {
		return nil, nil, false
	}

	activity, err := h.Activities.GetActivity(r.Context(), activityID)
	if err != nil {
		log.Printf("get activity failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return nil, nil, false
	}
	if activity == nil {
		writeError(w, r, http.StatusNotFound, "activity not found")
		return nil, nil, false
	}

	plan, err := h.Plans.GetPlan(r.Context(), activity.PlanID)
	if err != nil {
		log.Printf("get activity plan failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return nil, nil, false
	}
	if plan == nil || plan.UserID != UserIDFromContext(r.Context()) {
		writeError(w, r, http.StatusNotFound, "activity not found")
		return nil, nil, false
	}

	return activity, plan, true
}

func (h *ActivityHandler) nextOrderInDay(r *http.Request, planID, dayNumber int) (int, error) {
	activities, err := h.Activities.ListPlanActivities(r.Context(), planID)
	if err != nil {
		return 0, err
	}

	next := 0
	for _, a := range activities {
		if a.DayNumber == dayNumber && a.OrderInDay >= next {
			next = a.OrderInDay + 1
		}
	}
	return next, nil
}

func toActivityResponse(a *domain.Activity) dto.ActivityResponse {
	return dto.ActivityResponse{
		ActivityID:      a.ActivityID,
		PlanID:          a.PlanID,
		LocationID:      a.LocationID,
		DayNumber:       a.DayNumber,
		OrderInDay:      a.OrderInDay,
		LocationName:    a.LocationName,
		VisitDuration:   a.VisitDuration,
		TransitDuration: a.TransitDuration,
		Category:        a.Category,
		Notes:           a.Notes,
		Priority:        a.Priority,
		Latitude:        a.Latitude,
		Longitude:       a.Longitude,
	}
}
