package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"driver-route-service/internal/domain"
	"driver-route-service/internal/platform/obs"
	"driver-route-service/internal/ports"
)

type PlanDriverRouteRequest struct {
	DriverID        string
	CurrentLocation *domain.Coordinates
}

// PlanDriverRoute fetches the driver's pending stops and optimizes their
// visiting order. The repository is expected to exclude rows without
// coordinates, so the optimizer only ever sees computable stops.
//
// When a notifier is provided, a RouteEvent is published after every
// successful planning run.
func PlanDriverRoute(
	ctx context.Context,
	req PlanDriverRouteRequest,
	repo ports.StopRepository,
	notifier *RouteNotifier,
) (_ domain.OptimizedRoute, err error) {
	defer obs.Time(ctx, "services.PlanDriverRoute")(&err)

	driverID := strings.TrimSpace(req.DriverID)
	if driverID == "" {
		return domain.OptimizedRoute{}, errors.New("plan driver route: driverID must be non-empty")
	}

	stops, err := repo.ListPendingStops(ctx, driverID)
	if err != nil {
		return domain.OptimizedRoute{}, fmt.Errorf("plan driver route: list pending stops for %q: %w", driverID, err)
	}

	route := Optimize(stops, req.CurrentLocation)

	if notifier != nil {
		notifier.Publish(RouteEvent{
			DriverID:        driverID,
			StopCount:       len(route.Stops),
			TotalDistanceKm: route.TotalDistanceKm,
			SavingsPercent:  route.Savings.Percent,
		})
	}

	return route, nil
}
