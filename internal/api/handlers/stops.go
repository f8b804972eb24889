package handlers

import (
	"log"
	"net/http"
	"strings"

	"driver-route-service/internal/api/dto"
	"driver-route-service/internal/ports"
)

// StopHandler exposes read-only pending-stop retrieval endpoints.
type StopHandler struct {
	Repo ports.StopRepository
}

func (h *StopHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	driverID := strings.TrimSpace(r.URL.Query().Get("driver_id"))
	if driverID == "" {
		writeError(w, r, http.StatusBadRequest, "driver_id is required")
		return
	}

	stops, err := h.Repo.ListPendingStops(r.Context(), driverID)
	if err != nil {
		log.Printf("list pending stops failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListStopsResponse{
		Stops: make([]dto.StopResponse, 0, len(stops)),
	}
	for _, s := range stops {
		res.Stops = append(res.Stops, toStopResponse(s))
	}

	writeJSON(w, r, http.StatusOK, res)
}
