package services

import "driver-route-service/internal/geo"

// Improve a tour by repeatedly reversing sub-tours whose endpoints form
// crossing edges (2-opt local search).
//
// Positions 0 and len-1 are never disturbed, so the fixed start and the
// established priority front-loading survive the pass. After any improving
// reversal the scan restarts from the top; a full pass with no improvement
// terminates the search. Total distance is monotonically non-increasing, so
// the output tour is never longer than the input tour.
//
// Tours of three or fewer stops are returned unchanged: with both endpoints
// pinned there is no sub-tour left to reverse.
func twoOptOrder(order []int, matrix geo.DistanceMatrix) []int {
	n := len(order)
	if n <= 3 {
		return order
	}

	improved := true
	for improved {
		improved = false

		for i := 1; i < n-1 && !improved; i++ {
			for j := i + 1; j < n-1; j++ {
				a, b := order[i-1], order[i]
				c, d := order[j], order[j+1]

				current := matrix.At(a, b) + matrix.At(c, d)
				reversed := matrix.At(a, c) + matrix.At(b, d)

				if reversed < current {
					reverseSegment(order, i, j)
					improved = true
					break
				}
			}
		}
	}

	return order
}

// reverseSegment reverses order[i..j] in place.
func reverseSegment(order []int, i, j int) {
	for i < j {
		order[i], order[j] = order[j], order[i]
		i++
		j--
	}
}
