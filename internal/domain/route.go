package domain

// RouteSegment is one leg of the final tour between two consecutive stops.
// Distance is rounded to one decimal, duration to the nearest minute.
type RouteSegment struct {
	From            Stop
	To              Stop
	DistanceKm      float64
	DurationMinutes float64
}

// Savings quantifies the optimized route against the naive (input) order.
// Distance and time are floored at zero; Percent is relative to the naive
// distance and rounded to the nearest integer.
type Savings struct {
	DistanceKm  float64
	TimeMinutes float64
	Percent     int
}

// OptimizedRoute is the result of one optimization call.
// It is the output of a routing algorithm and describes the visiting order
// along with aggregate distance and duration metrics.
// It is immutable planning data and contains no side effects.
type OptimizedRoute struct {
	// Stops is the reordered input list. The synthetic current-location
	// sentinel is never included, even when one was supplied.
	Stops []Stop
	// TotalDistanceKm sums consecutive great-circle legs over the final
	// order, including the leg from the current location when supplied.
	TotalDistanceKm float64
	// TotalDurationMinutes is the travel-time estimate plus per-stop dwell.
	TotalDurationMinutes float64
	Savings              Savings
	// Segments holds one entry per consecutive pair in the final tour.
	Segments []RouteSegment
}
