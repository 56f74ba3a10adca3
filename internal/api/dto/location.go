package dto

type LocationResponse struct {
	LocationID           int     `json:"location_id"`
	Name                 string  `json:"name"`
	Type                 string  `json:"type"`
	Category             string  `json:"category"`
	City                 string  `json:"city"`
	Country              string  `json:"country"`
	Latitude             float64 `json:"latitude"`
	Longitude            float64 `json:"longitude"`
	TypicalVisitDuration int     `json:"typical_visit_duration"`
	Description          string  `json:"description"`
}

type ListLocationsResponse struct {
	Locations []LocationResponse `json:"locations"`
}
