package services

import (
	"context"
	"fmt"
	"slices"
	"vacation-planner-service/internal/domain"
	"vacation-planner-service/internal/ports"
)

// RecomputeTransitTimes refreshes every leg's stored transitDuration through
// the TransitEstimator port, keeping current ordering.
//
// Activities are grouped by day, sorted by orderInDay, and each leg to its
// successor is re-estimated. The last activity of a day, and any leg where
// either endpoint lacks coordinates, gets 0. Input is not mutated; copies are
// returned, with day groups in first-seen input order.
func RecomputeTransitTimes(
	ctx context.Context,
	activities []*domain.Activity,
	estimator ports.TransitEstimator,
) ([]*domain.Activity, error) {
	byDay := make(map[int][]*domain.Activity)
	dayOrder := make([]int, 0)
	for _, a := range activities {
		if _, ok := byDay[a.DayNumber]; !ok {
			dayOrder = append(dayOrder, a.DayNumber)
		}
		byDay[a.DayNumber] = append(byDay[a.DayNumber], a)
	}

	out := make([]*domain.Activity, 0, len(activities))

	for _, day := range dayOrder {
		sorted := slices.Clone(byDay[day])
		slices.SortStableFunc(sorted, func(a, b *domain.Activity) int {
			return a.OrderInDay - b.OrderInDay
		})

		for i, a := range sorted {
			leg := 0

			if i < len(sorted)-1 {
				from, fromOK := a.Coordinates()
				to, toOK := sorted[i+1].Coordinates()

				if fromOK && toOK {
					estimate, err := estimator.Estimate(ctx, from, to)
					if err != nil {
						return nil, fmt.Errorf(
							"recompute transit times: day %d leg %d: %w",
							day, i, err,
						)
					}
					leg = estimate.DurationMinutes
				}
			}

			updated := *a
			updated.TransitDuration = leg
			out = append(out, &updated)
		}
	}

	return out, nil
}
