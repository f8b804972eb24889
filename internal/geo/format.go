package geo

import (
	"fmt"
	"math"
)

// FormatDistance renders a distance for display: meters below 1 km,
// otherwise kilometers with one decimal.
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%d m", int(math.Round(km*1000)))
	}
	return fmt.Sprintf("%.1f km", km)
}

// FormatDuration renders a duration in minutes for display: "N min" below
// an hour, otherwise "Hh Mmin".
func FormatDuration(minutes float64) string {
	total := int(math.Round(minutes))
	if total < 60 {
		return fmt.Sprintf("%d min", total)
	}
	return fmt.Sprintf("%dh %dmin", total/60, total%60)
}
