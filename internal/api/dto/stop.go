package dto

type TimeWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// StopRequest is a stop as submitted by a client. Coordinates are optional
// pointers: stops without them are geocoded by address when possible and
// filtered otherwise.
type StopRequest struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	Address           string      `json:"address"`
	Lat               *float64    `json:"lat"`
	Lng               *float64    `json:"lng"`
	Priority          string      `json:"priority"`
	TimeWindow        *TimeWindow `json:"time_window"`
	EstimatedDuration *float64    `json:"estimated_duration"`
	Type              string      `json:"type"`
}

type StopResponse struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	Address           string      `json:"address"`
	Lat               float64     `json:"lat"`
	Lng               float64     `json:"lng"`
	Priority          string      `json:"priority"`
	TimeWindow        *TimeWindow `json:"time_window,omitempty"`
	EstimatedDuration *float64    `json:"estimated_duration,omitempty"`
	Type              string      `json:"type"`
}

type ListStopsResponse struct {
	Stops []StopResponse `json:"stops"`
}
