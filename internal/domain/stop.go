package domain

// Priority controls how early a stop is visited. Only PriorityHigh affects
// ordering: high-priority stops are front-loaded regardless of geography.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "low"
)

// StopType distinguishes pickups from deliveries. Informational only for
// route optimization.
type StopType string

const (
	StopTypePickup   StopType = "pickup"
	StopTypeDelivery StopType = "delivery"
)

// CurrentLocationID is the reserved id of the synthetic stop prepended when a
// caller supplies its current position. It never appears in returned stop lists.
const CurrentLocationID = "__current_location__"

// DefaultDwellMinutes is assumed for stops that carry no estimated duration.
const DefaultDwellMinutes = 5.0

// TimeWindow is a desired visiting window as "HH:mm" times of day.
// It is carried through the model but not enforced by the optimizer.
type TimeWindow struct {
	Start string
	End   string
}

// Stop is a single pickup or delivery waypoint.
// Lat/Lng must be finite for any stop handed to distance computation;
// filtering stops without coordinates is the caller's responsibility.
type Stop struct {
	ID       string
	Name     string
	Address  string
	Lat      float64
	Lng      float64
	Priority Priority
	// TimeWindow is accepted and passed through unchanged; no
	// constraint satisfaction is applied during optimization.
	TimeWindow *TimeWindow
	// EstimatedDuration is the expected minutes spent at the stop.
	// Nil means DefaultDwellMinutes.
	EstimatedDuration *float64
	Type              StopType
}

// DwellMinutes returns the time spent at the stop once arrived.
func (s Stop) DwellMinutes() float64 {
	if s.EstimatedDuration == nil {
		return DefaultDwellMinutes
	}
	return *s.EstimatedDuration
}

// IsCurrentLocation reports whether the stop is the synthetic start sentinel.
func (s Stop) IsCurrentLocation() bool {
	return s.ID == CurrentLocationID
}
