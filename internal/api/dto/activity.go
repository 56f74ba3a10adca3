package dto

type CreateActivityRequest struct {
	LocationID    *int     `json:"location_id"`
	DayNumber     int      `json:"day_number"`
	OrderInDay    *int     `json:"order_in_day"`
	LocationName  string   `json:"location_name"`
	VisitDuration int      `json:"visit_duration"`
	Category      string   `json:"category"`
	Notes         string   `json:"notes"`
	Priority      *int     `json:"priority"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
}

type UpdateActivityRequest struct {
	DayNumber     *int     `json:"day_number"`
	OrderInDay    *int     `json:"order_in_day"`
	LocationName  *string  `json:"location_name"`
	VisitDuration *int     `json:"visit_duration"`
	Category      *string  `json:"category"`
	Notes         *string  `json:"notes"`
	Priority      *int     `json:"priority"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
}

type ReorderItem struct {
	ActivityID int `json:"activity_id"`
	DayNumber  int `json:"day_number"`
	OrderInDay int `json:"order_in_day"`
}

type ReorderActivitiesRequest struct {
	Updates []ReorderItem `json:"updates"`
}

type ActivityResponse struct {
	ActivityID      int      `json:"activity_id"`
	PlanID          int      `json:"plan_id"`
	LocationID      *int     `json:"location_id"`
	DayNumber       int      `json:"day_number"`
	OrderInDay      int      `json:"order_in_day"`
	LocationName    string   `json:"location_name"`
	VisitDuration   int      `json:"visit_duration"`
	TransitDuration int      `json:"transit_duration"`
	Category        string   `json:"category"`
	Notes           string   `json:"notes"`
	Priority        int      `json:"priority"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
}

type ListActivitiesResponse struct {
	Activities []ActivityResponse `json:"activities"`
}
