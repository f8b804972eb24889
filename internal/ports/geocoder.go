package ports

import (
	"context"
	"driver-route-service/internal/domain"
)

// Contract for resolving street addresses to coordinates.
type Geocoder interface {
	// Return coordinates for each address that could be resolved, keyed by
	// the whitespace-normalized address; addresses missing from the result
	// could not be geocoded.
	GeocodeMany(ctx context.Context, addresses []string) (map[string]domain.Coordinates, error)
}
