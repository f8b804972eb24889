package api

import (
	"net/http"

	"driver-route-service/internal/api/handlers"
	"driver-route-service/internal/ports"
	"driver-route-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	repo ports.StopRepository,
	geocoder ports.Geocoder,
	notifier *services.RouteNotifier,
) http.Handler {
	mux := http.NewServeMux()

	stopHandler := &handlers.StopHandler{Repo: repo}
	routeHandler := &handlers.RouteHandler{Geocoder: geocoder}
	planHandler := &handlers.PlanHandler{
		Repo:     repo,
		Notifier: notifier,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/stops", stopHandler.List)
	mux.HandleFunc("/routes/optimize", routeHandler.Optimize)
	mux.HandleFunc("/plans", planHandler.Plan)

	return loggingMiddleware(mux)
}
