package domain

import "time"

// LocationType distinguishes well-known attractions from local picks.
type LocationType string

const (
	LocationTypeStandard  LocationType = "standard"
	LocationTypeHiddenGem LocationType = "hidden_gem"
)

// Location is a catalog entry a user can add to a plan as an activity.
type Location struct {
	LocationID           int
	Name                 string
	Type                 LocationType
	Category             string
	City                 string
	Country              string
	Latitude             float64
	Longitude            float64
	TypicalVisitDuration int
	Description          string
	CreatedAt            time.Time
	UpdatedAt            time.Time
	DeletedAt            *time.Time
}

// Coordinates returns the location's position.
func (l *Location) Coordinates() Coordinates {
	return Coordinates{Lat: l.Latitude, Lon: l.Longitude}
}
