package domain

import "time"

// Default activity priority on the 1 (cut first) .. 10 (keep) scale.
const DefaultPriority = 5

// Activity is a single planned stop within one day of a plan.
//
// TransitDuration is the stored travel time in minutes FROM this activity TO
// the next one in the same day's order; the last activity of a day carries a
// value that describes nothing and is zeroed by optimization. OrderInDay is a
// 0-based sort key that tolerates gaps; the aggregator orders by it before
// deriving a sequence. Coordinates are optional and only required for route
// optimization.
type Activity struct {
	ActivityID      int
	PlanID          int
	LocationID      *int
	DayNumber       int
	OrderInDay      int
	LocationName    string
	VisitDuration   int
	TransitDuration int
	Category        string
	Notes           string
	Priority        int
	Latitude        *float64
	Longitude       *float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time
}

// HasCoordinates reports whether the activity can participate in route
// optimization.
func (a *Activity) HasCoordinates() bool {
	return a.Latitude != nil && a.Longitude != nil
}

// Coordinates returns the activity's position; ok is false when either
// coordinate is missing.
func (a *Activity) Coordinates() (Coordinates, bool) {
	if !a.HasCoordinates() {
		return Coordinates{}, false
	}
	return Coordinates{Lat: *a.Latitude, Lon: *a.Longitude}, true
}
