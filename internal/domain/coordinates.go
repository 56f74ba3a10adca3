package domain

import "math"

// Immutable geographic coordinates in decimal degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Earth radius used for great-circle math, in kilometers.
const earthRadiusKm = 6371

// Average-speed proxy: 0.5 km of great-circle distance per minute.
const transitSpeedFactor = 0.5

// Haversine returns the great-circle distance between two points in kilometers.
// The route optimizer and the transit estimator both delegate here so their
// results stay bit-for-bit identical.
func Haversine(from, to Coordinates) float64 {
	dLat := (to.Lat - from.Lat) * math.Pi / 180
	dLon := (to.Lon - from.Lon) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(from.Lat*math.Pi/180)*math.Cos(to.Lat*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// TransitMinutes converts a great-circle distance to an estimated travel
// duration in minutes using a fixed average-speed proxy. This is not a real
// routing estimate; it is the single formula shared by the optimizer and the
// transit estimation adapter.
func TransitMinutes(distanceKm float64) int {
	return int(math.Round(distanceKm * transitSpeedFactor * 60))
}
