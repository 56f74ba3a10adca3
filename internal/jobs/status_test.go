package jobs

import (
	"context"
	"testing"
	"time"

	"vacation-planner-service/internal/ports"
)

type stubPlanRepo struct {
	ports.PlanRepository
	refreshed int
	lastNow   time.Time
}

func (s *stubPlanRepo) RefreshStatuses(_ context.Context, now time.Time) (int64, error) {
	s.refreshed++
	s.lastNow = now
	return 3, nil
}

type stubLimiter struct {
	cleared int
}

func (s *stubLimiter) Allow(context.Context, string) (ports.RateLimitResult, error) {
	return ports.RateLimitResult{Allowed: true}, nil
}

func (s *stubLimiter) Clear(context.Context) error {
	s.cleared++
	return nil
}

func TestRunRefreshesAndClears(t *testing.T) {
	repo := &stubPlanRepo{}
	limiter := &stubLimiter{}
	refresher := NewStatusRefresher(repo, limiter)

	now := time.Date(2026, time.June, 10, 3, 0, 0, 0, time.UTC)
	refresher.Run(context.Background(), now)

	if repo.refreshed != 1 {
		t.Fatalf("expected 1 refresh, got %d", repo.refreshed)
	}
	if !repo.lastNow.Equal(now) {
		t.Fatalf("expected now %v, got %v", now, repo.lastNow)
	}
	if limiter.cleared != 1 {
		t.Fatalf("expected 1 limiter clear, got %d", limiter.cleared)
	}
}

func TestRunWithoutLimiter(t *testing.T) {
	repo := &stubPlanRepo{}
	refresher := NewStatusRefresher(repo, nil)

	refresher.Run(context.Background(), time.Now())

	if repo.refreshed != 1 {
		t.Fatalf("expected 1 refresh, got %d", repo.refreshed)
	}
}

func TestBuildDailySpec(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "03:30", want: "0 30 3 * * *"},
		{in: "0:0", want: "0 0 0 * * *"},
		{in: "23:59", want: "0 59 23 * * *"},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "noon", wantErr: true},
	}
	for _, tc := range tests {
		got, err := buildDailySpec(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("%q: expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%q: expected %q, got %q", tc.in, tc.want, got)
		}
	}
}
