package services

import (
	"context"
	"errors"
	"testing"
	"vacation-planner-service/internal/domain"
	"vacation-planner-service/internal/ports"
)

// stubEstimator returns a fixed duration per call and records the legs asked for.
type stubEstimator struct {
	duration int
	legs     [][2]domain.Coordinates
	err      error
}

func (s *stubEstimator) Estimate(ctx context.Context, from, to domain.Coordinates) (ports.TransitResult, error) {
	if s.err != nil {
		return ports.TransitResult{}, s.err
	}
	s.legs = append(s.legs, [2]domain.Coordinates{from, to})
	return ports.TransitResult{DistanceKm: 1, DurationMinutes: s.duration}, nil
}

func TestRecomputeTransitTimes(t *testing.T) {
	activities := []*domain.Activity{
		coordActivity(1, 1, 1, "Second", 0, 0.01, 99),
		coordActivity(2, 1, 0, "First", 0, 0, 99),
		coordActivity(3, 1, 2, "Third", 0, 0.02, 99),
	}

	est := &stubEstimator{duration: 17}
	out, err := RecomputeTransitTimes(context.Background(), activities, est)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) != 3 {
		t.Fatalf("expected 3 activities, got %d", len(out))
	}

	// Legs follow orderInDay, not input order.
	if out[0].LocationName != "First" || out[1].LocationName != "Second" || out[2].LocationName != "Third" {
		t.Fatalf("unexpected order: %s, %s, %s", out[0].LocationName, out[1].LocationName, out[2].LocationName)
	}

	if out[0].TransitDuration != 17 || out[1].TransitDuration != 17 {
		t.Errorf("legs = %d, %d, want 17 each", out[0].TransitDuration, out[1].TransitDuration)
	}
	if out[2].TransitDuration != 0 {
		t.Errorf("last leg = %d, want 0", out[2].TransitDuration)
	}

	if len(est.legs) != 2 {
		t.Errorf("estimator called %d times, want 2", len(est.legs))
	}

	// Input untouched.
	for _, a := range activities {
		if a.TransitDuration != 99 {
			t.Error("input activity was mutated")
		}
	}
}

func TestRecomputeTransitTimesMissingCoordinates(t *testing.T) {
	bare := &domain.Activity{ActivityID: 2, DayNumber: 1, OrderInDay: 1, LocationName: "No Map", VisitDuration: 30, TransitDuration: 50}
	activities := []*domain.Activity{
		coordActivity(1, 1, 0, "A", 0, 0, 50),
		bare,
		coordActivity(3, 1, 2, "B", 0, 0.01, 50),
	}

	est := &stubEstimator{duration: 9}
	out, err := RecomputeTransitTimes(context.Background(), activities, est)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A -> "No Map" and "No Map" -> B both lack an endpoint, so both legs are 0.
	if out[0].TransitDuration != 0 || out[1].TransitDuration != 0 {
		t.Errorf("legs = %d, %d, want 0 each", out[0].TransitDuration, out[1].TransitDuration)
	}
	if len(est.legs) != 0 {
		t.Errorf("estimator called %d times, want 0", len(est.legs))
	}
}

func TestRecomputeTransitTimesEstimatorError(t *testing.T) {
	activities := []*domain.Activity{
		coordActivity(1, 1, 0, "A", 0, 0, 0),
		coordActivity(2, 1, 1, "B", 0, 0.01, 0),
	}

	est := &stubEstimator{err: errors.New("provider down")}
	if _, err := RecomputeTransitTimes(context.Background(), activities, est); err == nil {
		t.Fatal("expected error from failing estimator")
	}
}
