package handlers

import (
	"net/http"
)

// serviceName identifies this service in liveness responses so probes
// hitting the wrong port fail loudly instead of reporting a healthy stranger.
const serviceName = "driver-route-service"

// Health provides a minimal liveness check endpoint.
func Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := map[string]string{
		"status":  "ok",
		"service": serviceName,
	}
	writeJSON(w, r, http.StatusOK, res)
}
