package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"driver-route-service/internal/api/dto"
	"driver-route-service/internal/domain"
	"driver-route-service/internal/ports"
	"driver-route-service/internal/services"
)

// PlanHandler plans a route over a driver's pending stops.
// It coordinates repository access, route optimization, and event publishing.
type PlanHandler struct {
	Repo     ports.StopRepository
	Notifier *services.RouteNotifier
}

func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if strings.TrimSpace(req.DriverID) == "" {
		writeError(w, r, http.StatusBadRequest, "driver_id is required")
		return
	}

	var current *domain.Coordinates
	if req.CurrentLocation != nil {
		current = &domain.Coordinates{
			Lat: req.CurrentLocation.Lat,
			Lng: req.CurrentLocation.Lng,
		}
	}

	svcReq := services.PlanDriverRouteRequest{
		DriverID:        req.DriverID,
		CurrentLocation: current,
	}

	route, err := services.PlanDriverRoute(r.Context(), svcReq, h.Repo, h.Notifier)
	if err != nil {
		log.Printf("plan driver route failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toRouteResponse(route))
}
