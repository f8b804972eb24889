package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"driver-route-service/internal/api/dto"
	"driver-route-service/internal/domain"
	"driver-route-service/internal/ports"
	"driver-route-service/internal/services"
)

// maxStopsPerRequest bounds the O(N^2) matrix a single request can demand.
const maxStopsPerRequest = 100

// RouteHandler computes optimized visiting orders for caller-supplied stops.
type RouteHandler struct {
	// Geocoder may be nil; stops without coordinates are then filtered
	// instead of backfilled.
	Geocoder ports.Geocoder
}

// Optimize reorders the submitted stops to approximately minimize total
// travel distance and reports the savings against the submitted order.
func (h *RouteHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.OptimizeRequest

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

	if len(req.Stops) > maxStopsPerRequest {
		writeError(w, r, http.StatusBadRequest, "too many stops")
		return
	}

	stops := make([]domain.Stop, 0, len(req.Stops))
	for _, s := range req.Stops {
		if s.ID == "" {
			writeError(w, r, http.StatusBadRequest, "stop id is required")
			return
		}
		if s.ID == domain.CurrentLocationID {
			writeError(w, r, http.StatusBadRequest, "stop id is reserved")
			return
		}
		stops = append(stops, toDomainStop(s))
	}

	prepared, err := services.PrepareStops(r.Context(), stops, h.Geocoder)
	if err != nil {
		log.Printf("prepare stops failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	var current *domain.Coordinates
	if req.CurrentLocation != nil {
		current = &domain.Coordinates{
			Lat: req.CurrentLocation.Lat,
			Lng: req.CurrentLocation.Lng,
		}
	}

	route := services.Optimize(prepared, current)

	writeJSON(w, r, http.StatusOK, toRouteResponse(route))
}
