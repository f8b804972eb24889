package ports

import (
	"context"
	"driver-route-service/internal/domain"
)

// Port: a boundary for retrieving a driver's pending stops from a data source.
type StopRepository interface {
	// Return pending stops for the driver, pre-filtered to rows with
	// coordinates and ordered by route position then creation time.
	ListPendingStops(ctx context.Context, driverID string) ([]domain.Stop, error)
}
