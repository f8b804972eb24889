package geo

import "driver-route-service/internal/domain"

// DistanceMatrix holds pairwise great-circle distances in kilometers for an
// ordered list of stops. It is symmetric with a zero diagonal and must be
// rebuilt whenever the stop set or its order changes; route sizes are small
// enough that the O(N^2) recompute is cheaper than incremental bookkeeping.
type DistanceMatrix [][]float64

// NewDistanceMatrix computes the full pairwise matrix for stops.
func NewDistanceMatrix(stops []domain.Stop) DistanceMatrix {
	n := len(stops)
	m := make(DistanceMatrix, n)
	for i := range m {
		m[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := Distance(stops[i].Lat, stops[i].Lng, stops[j].Lat, stops[j].Lng)
			m[i][j] = d
			m[j][i] = d
		}
	}

	return m
}

// At returns the distance between the stops at positions i and j.
func (m DistanceMatrix) At(i, j int) float64 { return m[i][j] }

// TourDistance sums consecutive-leg distances along the given visiting order.
// The order holds indexes into the stop list the matrix was built from.
func (m DistanceMatrix) TourDistance(order []int) float64 {
	total := 0.0
	for k := 0; k+1 < len(order); k++ {
		total += m[order[k]][order[k+1]]
	}
	return total
}
