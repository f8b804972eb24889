package services

import (
	"math"

	"driver-route-service/internal/domain"
	"driver-route-service/internal/geo"
)

// Optimize computes a visiting order for the given stops that approximately
// minimizes total travel distance.
//
// A full pairwise distance matrix over the working list feeds a
// priority-aware nearest-neighbor construction, which a 2-opt pass then
// improves until no shortening reversal remains. The naive total (input
// order) is kept as the baseline for savings, so the optimized distance is
// never reported as worse than it.
//
// When currentLocation is supplied a sentinel stop is prepended as the fixed
// start; it is accounted for in totals and segments but stripped from the
// returned stop list. Optimize is a total function over its documented input
// shapes: empty input yields a zero-valued result, not an error. It performs
// no I/O and is safe for concurrent callers.
func Optimize(stops []domain.Stop, currentLocation *domain.Coordinates) domain.OptimizedRoute {
	if len(stops) == 0 {
		return domain.OptimizedRoute{
			Stops:    []domain.Stop{},
			Segments: []domain.RouteSegment{},
		}
	}

	hasStart := currentLocation != nil

	working := make([]domain.Stop, 0, len(stops)+1)
	if hasStart {
		working = append(working, domain.Stop{
			ID:   domain.CurrentLocationID,
			Name: "Current location",
			Lat:  currentLocation.Lat,
			Lng:  currentLocation.Lng,
		})
	}
	working = append(working, stops...)

	matrix := geo.NewDistanceMatrix(working)

	inputOrder := make([]int, len(working))
	for i := range inputOrder {
		inputOrder[i] = i
	}
	naiveKm := matrix.TourDistance(inputOrder)

	order := nearestNeighborOrder(working, matrix)
	order = twoOptOrder(order, matrix)

	tour := make([]domain.Stop, len(order))
	for k, idx := range order {
		tour[k] = working[idx]
	}

	optimizedKm := matrix.TourDistance(order)

	dwellMinutes := 0.0
	for _, s := range stops {
		dwellMinutes += s.DwellMinutes()
	}

	savedKm := naiveKm - optimizedKm
	if savedKm < 0 {
		savedKm = 0
	}
	percent := 0
	if naiveKm > 0 {
		percent = int(math.Round(savedKm / naiveKm * 100))
	}

	visible := tour
	if hasStart {
		visible = tour[1:]
	}

	return domain.OptimizedRoute{
		Stops:                visible,
		TotalDistanceKm:      optimizedKm,
		TotalDurationMinutes: geo.EstimateTravelMinutes(optimizedKm) + dwellMinutes,
		Savings: domain.Savings{
			DistanceKm:  savedKm,
			TimeMinutes: geo.EstimateTravelMinutes(savedKm),
			Percent:     percent,
		},
		Segments: buildSegments(tour),
	}
}

// buildSegments produces one leg per consecutive pair of the final tour,
// including the leg out of the synthetic start when one is present.
func buildSegments(tour []domain.Stop) []domain.RouteSegment {
	segments := make([]domain.RouteSegment, 0, len(tour))
	for k := 0; k+1 < len(tour); k++ {
		from, to := tour[k], tour[k+1]
		km := geo.Distance(from.Lat, from.Lng, to.Lat, to.Lng)
		segments = append(segments, domain.RouteSegment{
			From:            from,
			To:              to,
			DistanceKm:      math.Round(km*10) / 10,
			DurationMinutes: math.Round(geo.EstimateTravelMinutes(km)),
		})
	}
	return segments
}
