// Package jobs runs the service's scheduled maintenance: the nightly plan
// status roll-forward and rate-limiter cleanup.
package jobs

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"vacation-planner-service/internal/ports"
)

// StatusRefresher rolls plan statuses forward by date once a day and clears
// stale rate-limiter state on the same schedule.
type StatusRefresher struct {
	Plans   ports.PlanRepository
	Limiter ports.RateLimiter

	cron *cron.Cron
}

func NewStatusRefresher(plans ports.PlanRepository, limiter ports.RateLimiter) *StatusRefresher {
	return &StatusRefresher{
		Plans:   plans,
		Limiter: limiter,
		cron:    cron.New(cron.WithSeconds()),
	}
}

// Start registers the daily job at the given HH:MM time and starts the
// scheduler.
func (s *StatusRefresher) Start(timeStr string) error {
	spec, err := buildDailySpec(timeStr)
	if err != nil {
		return fmt.Errorf("status refresher: %w", err)
	}

	if _, err := s.cron.AddFunc(spec, s.runOnce); err != nil {
		return fmt.Errorf("status refresher: register job: %w", err)
	}

	s.cron.Start()
	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *StatusRefresher) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *StatusRefresher) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	s.Run(ctx, time.Now())
}

// Run performs one refresh pass. Exposed for manual runs and tests.
func (s *StatusRefresher) Run(ctx context.Context, now time.Time) {
	touched, err := s.Plans.RefreshStatuses(ctx, now)
	if err != nil {
		log.Printf("status refresh failed: %v", err)
	} else {
		log.Printf("status refresh done: plans=%d", touched)
	}

	if s.Limiter != nil {
		if err := s.Limiter.Clear(ctx); err != nil {
			log.Printf("rate limiter cleanup failed: %v", err)
		}
	}
}

func buildDailySpec(timeStr string) (string, error) {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid time %q, expected HH:MM", timeStr)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("invalid hour in %q", timeStr)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("invalid minute in %q", timeStr)
	}
	// cron format: second minute hour dom month dow
	return fmt.Sprintf("0 %d %d * * *", minute, hour), nil
}
