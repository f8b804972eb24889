package handlers

import (
	"encoding/json"
	"log"
	"math"
	"net/http"

	"driver-route-service/internal/api/dto"
	"driver-route-service/internal/domain"
	"driver-route-service/internal/geo"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// toDomainStop maps a request stop onto the domain shape. Missing coordinates
// become NaN so the preparation boundary can recognize and geocode them.
func toDomainStop(s dto.StopRequest) domain.Stop {
	stop := domain.Stop{
		ID:                s.ID,
		Name:              s.Name,
		Address:           s.Address,
		Lat:               math.NaN(),
		Lng:               math.NaN(),
		EstimatedDuration: s.EstimatedDuration,
		Type:              domain.StopType(s.Type),
	}

	if s.Lat != nil {
		stop.Lat = *s.Lat
	}
	if s.Lng != nil {
		stop.Lng = *s.Lng
	}

	switch s.Priority {
	case string(domain.PriorityHigh):
		stop.Priority = domain.PriorityHigh
	case string(domain.PriorityLow):
		stop.Priority = domain.PriorityLow
	default:
		stop.Priority = domain.PriorityNormal
	}

	if s.TimeWindow != nil {
		stop.TimeWindow = &domain.TimeWindow{Start: s.TimeWindow.Start, End: s.TimeWindow.End}
	}

	return stop
}

func toStopResponse(s domain.Stop) dto.StopResponse {
	out := dto.StopResponse{
		ID:                s.ID,
		Name:              s.Name,
		Address:           s.Address,
		Lat:               s.Lat,
		Lng:               s.Lng,
		Priority:          string(s.Priority),
		EstimatedDuration: s.EstimatedDuration,
		Type:              string(s.Type),
	}
	if s.TimeWindow != nil {
		out.TimeWindow = &dto.TimeWindow{Start: s.TimeWindow.Start, End: s.TimeWindow.End}
	}
	return out
}

func toRouteResponse(route domain.OptimizedRoute) dto.RouteResponse {
	stops := make([]dto.StopResponse, 0, len(route.Stops))
	for _, s := range route.Stops {
		stops = append(stops, toStopResponse(s))
	}

	segments := make([]dto.SegmentResponse, 0, len(route.Segments))
	for _, seg := range route.Segments {
		segments = append(segments, dto.SegmentResponse{
			From:            toStopResponse(seg.From),
			To:              toStopResponse(seg.To),
			DistanceKm:      seg.DistanceKm,
			DurationMinutes: seg.DurationMinutes,
		})
	}

	return dto.RouteResponse{
		Stops:                stops,
		TotalDistanceKm:      route.TotalDistanceKm,
		TotalDistanceText:    geo.FormatDistance(route.TotalDistanceKm),
		TotalDurationMinutes: route.TotalDurationMinutes,
		TotalDurationText:    geo.FormatDuration(route.TotalDurationMinutes),
		Savings: dto.SavingsResponse{
			DistanceKm:  route.Savings.DistanceKm,
			TimeMinutes: route.Savings.TimeMinutes,
			Percent:     route.Savings.Percent,
		},
		Segments: segments,
	}
}
