package services

import (
	"testing"
	"vacation-planner-service/internal/domain"
)

func coordActivity(id, day, order int, name string, lat, lon float64, transit int) *domain.Activity {
	return &domain.Activity{
		ActivityID:      id,
		DayNumber:       day,
		OrderInDay:      order,
		LocationName:    name,
		VisitDuration:   60,
		TransitDuration: transit,
		Priority:        domain.DefaultPriority,
		Latitude:        &lat,
		Longitude:       &lon,
	}
}

func TestOptimizeReordersStraightLine(t *testing.T) {
	// Three stops on a line, presented A, C, B. Nearest-neighbor from A must
	// yield A, B, C. Stored legs (A->C then C->B) total 100; the optimized
	// legs are 33 + 33.
	activities := []*domain.Activity{
		coordActivity(1, 1, 0, "A", 0, 0, 67),
		coordActivity(2, 1, 1, "C", 0, 0.02, 33),
		coordActivity(3, 1, 2, "B", 0, 0.01, 0),
	}

	result := OptimizeActivitiesOrder(activities)

	if len(result.OptimizedActivities) != 3 {
		t.Fatalf("expected 3 activities, got %d", len(result.OptimizedActivities))
	}

	gotNames := []string{}
	for _, a := range result.OptimizedActivities {
		gotNames = append(gotNames, a.LocationName)
	}
	want := []string{"A", "B", "C"}
	for i := range want {
		if gotNames[i] != want[i] {
			t.Fatalf("order = %v, want %v", gotNames, want)
		}
	}

	for i, a := range result.OptimizedActivities {
		if a.OrderInDay != i {
			t.Errorf("activity %q orderInDay = %d, want %d", a.LocationName, a.OrderInDay, i)
		}
	}

	if last := result.OptimizedActivities[2]; last.TransitDuration != 0 {
		t.Errorf("last leg transitDuration = %d, want 0", last.TransitDuration)
	}

	if result.TotalTransitTimeSaved != 34 {
		t.Errorf("totalTransitTimeSaved = %d, want 34", result.TotalTransitTimeSaved)
	}
	if len(result.ReorderedDays) != 1 || result.ReorderedDays[0] != 1 {
		t.Errorf("reorderedDays = %v, want [1]", result.ReorderedDays)
	}
}

func TestOptimizeMissingCoordinatesPassesThrough(t *testing.T) {
	// One activity without coordinates blocks optimization for the whole day.
	noCoords := &domain.Activity{
		ActivityID:      2,
		DayNumber:       1,
		OrderInDay:      1,
		LocationName:    "Mystery Spot",
		VisitDuration:   60,
		TransitDuration: 45,
	}
	activities := []*domain.Activity{
		coordActivity(1, 1, 0, "A", 48.8584, 2.2945, 30),
		noCoords,
		coordActivity(3, 1, 2, "B", 48.8606, 2.3376, 0),
	}

	result := OptimizeActivitiesOrder(activities)

	if len(result.OptimizedActivities) != 3 {
		t.Fatalf("expected 3 activities, got %d", len(result.OptimizedActivities))
	}
	for i, a := range result.OptimizedActivities {
		orig := activities[i]
		if a.ActivityID != orig.ActivityID || a.OrderInDay != orig.OrderInDay || a.TransitDuration != orig.TransitDuration {
			t.Errorf("activity %d changed on pass-through: %+v vs %+v", i, a, orig)
		}
	}
	if result.TotalTransitTimeSaved != 0 {
		t.Errorf("totalTransitTimeSaved = %d, want 0", result.TotalTransitTimeSaved)
	}
	if len(result.ReorderedDays) != 0 {
		t.Errorf("reorderedDays = %v, want empty", result.ReorderedDays)
	}
}

func TestOptimizeSingleActivityDayPassesThrough(t *testing.T) {
	only := coordActivity(1, 3, 0, "Solo", 35.7148, 139.7967, 25)

	result := OptimizeActivitiesOrder([]*domain.Activity{only})

	if len(result.OptimizedActivities) != 1 {
		t.Fatalf("expected 1 activity, got %d", len(result.OptimizedActivities))
	}
	if got := result.OptimizedActivities[0]; got.TransitDuration != 25 || got.OrderInDay != 0 {
		t.Errorf("single-activity day was modified: %+v", got)
	}
}

func TestOptimizeIdenticalCoordinatesZeroTransit(t *testing.T) {
	activities := []*domain.Activity{
		coordActivity(1, 1, 0, "A", 41.4036, 2.1744, 10),
		coordActivity(2, 1, 1, "B", 41.4036, 2.1744, 10),
		coordActivity(3, 1, 2, "C", 41.4036, 2.1744, 10),
	}

	result := OptimizeActivitiesOrder(activities)

	for _, a := range result.OptimizedActivities {
		if a.TransitDuration != 0 {
			t.Errorf("activity %q transitDuration = %d, want 0", a.LocationName, a.TransitDuration)
		}
	}
	// Ties resolve to the first-scanned candidate, so presented order holds.
	want := []string{"A", "B", "C"}
	for i, a := range result.OptimizedActivities {
		if a.LocationName != want[i] {
			t.Errorf("position %d = %q, want %q", i, a.LocationName, want[i])
		}
	}
	if result.TotalTransitTimeSaved != 30 {
		t.Errorf("totalTransitTimeSaved = %d, want 30", result.TotalTransitTimeSaved)
	}
}

func TestOptimizeKeepsNonImprovedArrangement(t *testing.T) {
	// Stored transit values are already lower than any haversine estimate, so
	// the optimizer finds no improvement. The recomputed arrangement is still
	// emitted; there is deliberately no rollback to the stored values.
	activities := []*domain.Activity{
		coordActivity(1, 1, 0, "A", 0, 0, 0),
		coordActivity(2, 1, 1, "B", 0, 0.01, 0),
	}

	result := OptimizeActivitiesOrder(activities)

	if len(result.ReorderedDays) != 0 {
		t.Errorf("reorderedDays = %v, want empty", result.ReorderedDays)
	}
	if result.TotalTransitTimeSaved != 0 {
		t.Errorf("totalTransitTimeSaved = %d, want 0", result.TotalTransitTimeSaved)
	}
	// First leg now carries the recomputed estimate, not the stored zero.
	if got := result.OptimizedActivities[0].TransitDuration; got != 33 {
		t.Errorf("first leg transitDuration = %d, want recomputed 33", got)
	}
}

func TestOptimizeMixedDays(t *testing.T) {
	// Day 1 is optimizable, day 2 lacks coordinate coverage. Partial success
	// across days is expected.
	day2NoCoords := &domain.Activity{
		ActivityID: 5, DayNumber: 2, OrderInDay: 1, LocationName: "No Map", VisitDuration: 30, TransitDuration: 12,
	}
	activities := []*domain.Activity{
		coordActivity(1, 1, 0, "A", 0, 0, 67),
		coordActivity(2, 1, 1, "C", 0, 0.02, 33),
		coordActivity(3, 1, 2, "B", 0, 0.01, 0),
		coordActivity(4, 2, 0, "D", 10, 10, 5),
		day2NoCoords,
	}

	result := OptimizeActivitiesOrder(activities)

	if len(result.OptimizedActivities) != 5 {
		t.Fatalf("expected 5 activities, got %d", len(result.OptimizedActivities))
	}
	if len(result.ReorderedDays) != 1 || result.ReorderedDays[0] != 1 {
		t.Errorf("reorderedDays = %v, want [1]", result.ReorderedDays)
	}

	// Day 2 activities emitted untouched after day 1's group.
	if got := result.OptimizedActivities[3]; got.LocationName != "D" || got.TransitDuration != 5 {
		t.Errorf("day 2 activity changed: %+v", got)
	}
	if got := result.OptimizedActivities[4]; got.LocationName != "No Map" || got.TransitDuration != 12 {
		t.Errorf("day 2 activity changed: %+v", got)
	}
}

func TestOptimizeDoesNotMutateInput(t *testing.T) {
	a := coordActivity(1, 1, 0, "A", 0, 0, 67)
	c := coordActivity(2, 1, 1, "C", 0, 0.02, 33)
	b := coordActivity(3, 1, 2, "B", 0, 0.01, 0)

	OptimizeActivitiesOrder([]*domain.Activity{a, c, b})

	if a.OrderInDay != 0 || c.OrderInDay != 1 || b.OrderInDay != 2 {
		t.Error("input activities were mutated")
	}
	if a.TransitDuration != 67 || c.TransitDuration != 33 {
		t.Error("input transit durations were mutated")
	}
}
