package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driver-route-service/internal/api/dto"
	"driver-route-service/internal/domain"
	"driver-route-service/internal/services"
)

func TestPlanHappyPath(t *testing.T) {
	repo := &fakeStopRepo{stops: []domain.Stop{
		{ID: "s1", Lat: 5.30, Lng: -4.00},
		{ID: "s2", Lat: 5.36, Lng: -4.05},
		{ID: "s3", Lat: 5.32, Lng: -4.02},
	}}
	notifier := services.NewRouteNotifier()
	defer notifier.Close()
	events, cancel := notifier.Subscribe(1)
	defer cancel()

	h := &PlanHandler{Repo: repo, Notifier: notifier}

	body := `{"driver_id": "driver-01", "current_location": {"lat": 5.35, "lng": -4.01}}`
	req := httptest.NewRequest(http.MethodPost, "/plans", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Plan(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "driver-01", repo.driverID)

	var res dto.RouteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Stops, 3)

	select {
	case ev := <-events:
		assert.Equal(t, "driver-01", ev.DriverID)
		assert.Equal(t, 3, ev.StopCount)
	default:
		t.Fatal("no RouteEvent published")
	}
}

func TestPlanRequiresDriverID(t *testing.T) {
	h := &PlanHandler{Repo: &fakeStopRepo{}}

	req := httptest.NewRequest(http.MethodPost, "/plans", strings.NewReader(`{"driver_id": ""}`))
	rec := httptest.NewRecorder()
	h.Plan(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlanMethodNotAllowed(t *testing.T) {
	h := &PlanHandler{Repo: &fakeStopRepo{}}

	req := httptest.NewRequest(http.MethodGet, "/plans", nil)
	rec := httptest.NewRecorder()
	h.Plan(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
}
