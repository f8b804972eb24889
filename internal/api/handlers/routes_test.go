package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driver-route-service/internal/api/dto"
	"driver-route-service/internal/domain"
)

type fakeGeocoder struct {
	results map[string]domain.Coordinates
	err     error
}

func (g *fakeGeocoder) GeocodeMany(_ context.Context, _ []string) (map[string]domain.Coordinates, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.results, nil
}

func postOptimize(t *testing.T, h *RouteHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/routes/optimize", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Optimize(rec, req)
	return rec
}

func TestOptimizeHappyPath(t *testing.T) {
	h := &RouteHandler{}
	body := `{
		"stops": [
			{"id": "s1", "name": "Depot", "lat": 5.30, "lng": -4.00},
			{"id": "s2", "name": "Market", "lat": 5.36, "lng": -4.05},
			{"id": "s3", "name": "Pharmacy", "lat": 5.32, "lng": -4.02}
		],
		"current_location": {"lat": 5.35, "lng": -4.01}
	}`

	rec := postOptimize(t, h, body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var res dto.RouteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	require.Len(t, res.Stops, 3)
	got := map[string]bool{}
	for _, s := range res.Stops {
		got[s.ID] = true
	}
	assert.True(t, got["s1"] && got["s2"] && got["s3"], "response must contain every submitted stop")

	// With a current location the tour has four nodes and three legs.
	require.Len(t, res.Segments, 3)
	assert.Equal(t, domain.CurrentLocationID, res.Segments[0].From.ID)

	assert.Greater(t, res.TotalDistanceKm, 0.0)
	assert.NotEmpty(t, res.TotalDistanceText)
	assert.NotEmpty(t, res.TotalDurationText)
	assert.GreaterOrEqual(t, res.Savings.Percent, 0)
}

func TestOptimizeGeocodesMissingCoordinates(t *testing.T) {
	h := &RouteHandler{Geocoder: &fakeGeocoder{results: map[string]domain.Coordinates{
		"Rue des Jardins, Abidjan": {Lat: 5.35, Lng: -4.01},
	}}}
	body := `{
		"stops": [
			{"id": "s1", "lat": 5.30, "lng": -4.00},
			{"id": "s2", "address": "Rue des Jardins, Abidjan"}
		]
	}`

	rec := postOptimize(t, h, body)
	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.RouteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Stops, 2)
}

func TestOptimizeFiltersUnresolvableStops(t *testing.T) {
	h := &RouteHandler{} // no geocoder configured
	body := `{
		"stops": [
			{"id": "s1", "lat": 5.30, "lng": -4.00},
			{"id": "s2", "address": "Rue des Jardins, Abidjan"}
		]
	}`

	rec := postOptimize(t, h, body)
	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.RouteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Stops, 1)
	assert.Equal(t, "s1", res.Stops[0].ID)
}

func TestOptimizeRejectsBadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{`},
		{"unknown field", `{"stops": [], "nope": 1}`},
		{"trailing object", `{"stops": []}{"stops": []}`},
		{"missing stop id", `{"stops": [{"name": "Depot", "lat": 5.3, "lng": -4.0}]}`},
		{"reserved stop id", fmt.Sprintf(`{"stops": [{"id": %q, "lat": 5.3, "lng": -4.0}]}`, domain.CurrentLocationID)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := postOptimize(t, &RouteHandler{}, tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestOptimizeRejectsTooManyStops(t *testing.T) {
	var sb strings.Builder
	sb.WriteString(`{"stops": [`)
	for i := 0; i <= maxStopsPerRequest; i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, `{"id": "s%d", "lat": 5.3, "lng": -4.0}`, i)
	}
	sb.WriteString(`]}`)

	rec := postOptimize(t, &RouteHandler{}, sb.String())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOptimizeMethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/routes/optimize", nil)
	rec := httptest.NewRecorder()
	(&RouteHandler{}).Optimize(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
}
