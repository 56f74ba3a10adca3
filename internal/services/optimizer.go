package services

import (
	"math"
	"slices"
	"vacation-planner-service/internal/domain"
)

// OptimizeActivitiesOrder reorders each day's activities to approximate a
// shorter total transit path using a greedy nearest-neighbor walk over
// great-circle distance.
//
// The heuristic minimizes the immediate hop at each step. It does not attempt
// exact tour solving; determinism and simplicity are preferred over
// optimality. Per day:
//
//   - Days with one activity, or with any activity missing coordinates, pass
//     through unchanged. Optimization is all-or-nothing within a day.
//   - The walk is seeded with the first activity in the day's presented order,
//     not a distance-chosen start.
//   - orderInDay is rewritten as 0..k-1 and each leg's transitDuration is
//     re-estimated from coordinates; the last leg of a day is 0.
//   - A day counts as reordered only when the new transit total is strictly
//     lower than the stored one. The new arrangement is kept even when it is
//     not an improvement; callers relying on rollback must snapshot the input.
//
// Day groups appear in the output in first-seen input order. O(n²) per day,
// which is fine for single-digit to low-tens activity counts.
func OptimizeActivitiesOrder(activities []*domain.Activity) *domain.OptimizationResult {
	byDay := make(map[int][]*domain.Activity)
	dayOrder := make([]int, 0)
	for _, a := range activities {
		if _, ok := byDay[a.DayNumber]; !ok {
			dayOrder = append(dayOrder, a.DayNumber)
		}
		byDay[a.DayNumber] = append(byDay[a.DayNumber], a)
	}

	result := &domain.OptimizationResult{
		OptimizedActivities: make([]*domain.Activity, 0, len(activities)),
		ReorderedDays:       make([]int, 0),
	}

	for _, day := range dayOrder {
		dayActivities := byDay[day]

		if len(dayActivities) <= 1 {
			result.OptimizedActivities = append(result.OptimizedActivities, dayActivities...)
			continue
		}

		coverage := true
		for _, a := range dayActivities {
			if !a.HasCoordinates() {
				coverage = false
				break
			}
		}
		if !coverage {
			result.OptimizedActivities = append(result.OptimizedActivities, dayActivities...)
			continue
		}

		baselineTransit := 0
		for _, a := range dayActivities {
			baselineTransit += a.TransitDuration
		}

		ordered := nearestNeighborOrder(dayActivities)

		newTransit := 0
		for i, a := range ordered {
			leg := 0
			if i < len(ordered)-1 {
				from, _ := a.Coordinates()
				to, _ := ordered[i+1].Coordinates()
				leg = domain.TransitMinutes(domain.Haversine(from, to))
			}

			optimized := *a
			optimized.OrderInDay = i
			optimized.TransitDuration = leg
			newTransit += leg

			result.OptimizedActivities = append(result.OptimizedActivities, &optimized)
		}

		if newTransit < baselineTransit {
			result.TotalTransitTimeSaved += baselineTransit - newTransit
			result.ReorderedDays = append(result.ReorderedDays, day)
		}
	}

	return result
}

// nearestNeighborOrder walks the day's activities greedily: start from the
// first activity as presented, then repeatedly append the closest remaining
// one. Ties resolve to the first-scanned minimum, so output is stable with no
// randomization.
func nearestNeighborOrder(activities []*domain.Activity) []*domain.Activity {
	ordered := make([]*domain.Activity, 0, len(activities))
	remaining := slices.Clone(activities)

	ordered = append(ordered, remaining[0])
	remaining = remaining[1:]

	for len(remaining) > 0 {
		current, _ := ordered[len(ordered)-1].Coordinates()

		nearest := 0
		minDistance := math.Inf(1)
		for i, candidate := range remaining {
			coords, _ := candidate.Coordinates()
			if d := domain.Haversine(current, coords); d < minDistance {
				minDistance = d
				nearest = i
			}
		}

		ordered = append(ordered, remaining[nearest])
		remaining = slices.Delete(remaining, nearest, nearest+1)
	}

	return ordered
}
