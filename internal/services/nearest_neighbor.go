package services

import (
	"driver-route-service/internal/domain"
	"driver-route-service/internal/geo"
	"math"
)

// Build an initial visiting order using a priority-aware greedy
// nearest-neighbor construction.
//
// The tour starts at index 0 (the synthetic current location when one was
// supplied, otherwise the caller's first stop). High-priority stops are
// visited next, strictly in their original input order regardless of
// geography: front-loading urgent deliveries is a business policy, not a
// distance optimization. Every remaining position is filled with the
// unvisited stop nearest to the last one visited.
//
// The result is always a permutation of 0..len(stops)-1. Ties resolve to the
// first candidate in matrix scan order, which is stable for identical input.
func nearestNeighborOrder(stops []domain.Stop, matrix geo.DistanceMatrix) []int {
	n := len(stops)

	order := make([]int, 0, n)
	if n <= 2 {
		for i := 0; i < n; i++ {
			order = append(order, i)
		}
		return order
	}

	visited := make([]bool, n)
	order = append(order, 0)
	visited[0] = true

	for i := 1; i < n; i++ {
		if stops[i].Priority == domain.PriorityHigh {
			order = append(order, i)
			visited[i] = true
		}
	}

	for len(order) < n {
		last := order[len(order)-1]

		best := -1
		bestDistance := math.MaxFloat64

		// Select the next stop by minimum distance from the tour's tail (greedy step.)
		for j := 0; j < n; j++ {
			if visited[j] {
				continue
			}
			if d := matrix.At(last, j); d < bestDistance {
				bestDistance = d
				best = j
			}
		}

		order = append(order, best)
		visited[best] = true
	}

	return order
}
