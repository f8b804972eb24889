package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"

	"driver-route-service/internal/domain"
	"driver-route-service/internal/ports"
)

// PrepareStops enforces the optimizer's coordinate precondition at the API
// boundary: stops arriving without finite coordinates get one geocoding
// attempt by address, and whatever still lacks coordinates is filtered out.
//
// A nil geocoder skips the backfill, so the service degrades to plain
// filtering when geocoding is not configured.
func PrepareStops(
	ctx context.Context,
	stops []domain.Stop,
	geocoder ports.Geocoder,
) ([]domain.Stop, error) {
	missing := make([]string, 0)
	for _, s := range stops {
		if !hasCoordinates(s) && normalizeAddress(s.Address) != "" {
			missing = append(missing, normalizeAddress(s.Address))
		}
	}

	resolved := map[string]domain.Coordinates{}
	if geocoder != nil && len(missing) > 0 {
		var err error
		resolved, err = geocoder.GeocodeMany(ctx, missing)
		if err != nil {
			return nil, fmt.Errorf("prepare stops: geocode %d addresses: %w", len(missing), err)
		}
	}

	kept := make([]domain.Stop, 0, len(stops))
	dropped := 0
	for _, s := range stops {
		if !hasCoordinates(s) {
			if c, ok := resolved[normalizeAddress(s.Address)]; ok {
				s.Lat = c.Lat
				s.Lng = c.Lng
			}
		}
		if !hasCoordinates(s) {
			dropped++
			continue
		}
		kept = append(kept, s)
	}

	if dropped > 0 {
		log.Printf("prepare stops: dropped=%d of %d (no coordinates)", dropped, len(stops))
	}

	return kept, nil
}

// normalizeAddress collapses whitespace the same way the geocoder keys its
// results, so lookups never miss on interior spacing.
func normalizeAddress(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func hasCoordinates(s domain.Stop) bool {
	return !math.IsNaN(s.Lat) && !math.IsInf(s.Lat, 0) &&
		!math.IsNaN(s.Lng) && !math.IsInf(s.Lng, 0)
}
