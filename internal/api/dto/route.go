package dto

type OptimizeRequest struct {
	Stops           []StopRequest `json:"stops"`
	CurrentLocation *Coordinates  `json:"current_location"`
}

type PlanRequest struct {
	DriverID        string       `json:"driver_id"`
	CurrentLocation *Coordinates `json:"current_location"`
}

type SegmentResponse struct {
	From            StopResponse `json:"from"`
	To              StopResponse `json:"to"`
	DistanceKm      float64      `json:"distance_km"`
	DurationMinutes float64      `json:"duration_minutes"`
}

type SavingsResponse struct {
	DistanceKm  float64 `json:"distance_km"`
	TimeMinutes float64 `json:"time_minutes"`
	Percent     int     `json:"percent"`
}

type RouteResponse struct {
	Stops                []StopResponse    `json:"stops"`
	TotalDistanceKm      float64           `json:"total_distance_km"`
	TotalDistanceText    string            `json:"total_distance_text"`
	TotalDurationMinutes float64           `json:"total_duration_minutes"`
	TotalDurationText    string            `json:"total_duration_text"`
	Savings              SavingsResponse   `json:"savings"`
	Segments             []SegmentResponse `json:"segments"`
}
