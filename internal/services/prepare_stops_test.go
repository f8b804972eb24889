package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"driver-route-service/internal/domain"
)

type stubGeocoder struct {
	results map[string]domain.Coordinates
	err     error
	asked   []string
}

func (g *stubGeocoder) GeocodeMany(_ context.Context, addresses []string) (map[string]domain.Coordinates, error) {
	g.asked = append(g.asked, addresses...)
	if g.err != nil {
		return nil, g.err
	}
	return g.results, nil
}

func TestPrepareStopsBackfillsFromGeocoder(t *testing.T) {
	stops := []domain.Stop{
		{ID: "s1", Lat: 5.30, Lng: -4.00},
		{ID: "s2", Address: "Rue des Jardins, Abidjan", Lat: math.NaN(), Lng: math.NaN()},
	}
	g := &stubGeocoder{results: map[string]domain.Coordinates{
		"Rue des Jardins, Abidjan": {Lat: 5.35, Lng: -4.01},
	}}

	kept, err := PrepareStops(context.Background(), stops, g)
	if err != nil {
		t.Fatalf("PrepareStops: %v", err)
	}
	if len(kept) != 2 {
		t.Fatalf("kept %d stops, want 2", len(kept))
	}
	if kept[1].Lat != 5.35 || kept[1].Lng != -4.01 {
		t.Fatalf("s2 coordinates not backfilled: %+v", kept[1])
	}
	if len(g.asked) != 1 || g.asked[0] != "Rue des Jardins, Abidjan" {
		t.Fatalf("geocoder asked %v, want only the missing address", g.asked)
	}
}

func TestPrepareStopsMatchesNormalizedAddressKeys(t *testing.T) {
	// Geocoders key their results by the whitespace-normalized address, so a
	// stop submitted with interior double spaces or tabs must still pick up
	// the resolved coordinates.
	stops := []domain.Stop{
		{ID: "s1", Address: "Rue  des Jardins,\tAbidjan", Lat: math.NaN(), Lng: math.NaN()},
	}
	g := &stubGeocoder{results: map[string]domain.Coordinates{
		"Rue des Jardins, Abidjan": {Lat: 5.35, Lng: -4.01},
	}}

	kept, err := PrepareStops(context.Background(), stops, g)
	if err != nil {
		t.Fatalf("PrepareStops: %v", err)
	}
	if len(kept) != 1 {
		t.Fatalf("kept %d stops, want 1", len(kept))
	}
	if kept[0].Lat != 5.35 || kept[0].Lng != -4.01 {
		t.Fatalf("coordinates not backfilled: %+v", kept[0])
	}
	if len(g.asked) != 1 || g.asked[0] != "Rue des Jardins, Abidjan" {
		t.Fatalf("geocoder asked %v, want the normalized address", g.asked)
	}
}

func TestPrepareStopsDropsUnresolved(t *testing.T) {
	stops := []domain.Stop{
		{ID: "s1", Lat: 5.30, Lng: -4.00},
		{ID: "s2", Address: "nowhere", Lat: math.NaN(), Lng: math.NaN()},
	}
	g := &stubGeocoder{results: map[string]domain.Coordinates{}}

	kept, err := PrepareStops(context.Background(), stops, g)
	if err != nil {
		t.Fatalf("PrepareStops: %v", err)
	}
	if len(kept) != 1 || kept[0].ID != "s1" {
		t.Fatalf("kept %v, want only s1", idsOf(kept))
	}
}

func TestPrepareStopsNilGeocoderFilters(t *testing.T) {
	stops := []domain.Stop{
		{ID: "s1", Lat: 5.30, Lng: -4.00},
		{ID: "s2", Address: "Rue des Jardins, Abidjan", Lat: math.NaN(), Lng: math.NaN()},
	}

	kept, err := PrepareStops(context.Background(), stops, nil)
	if err != nil {
		t.Fatalf("PrepareStops: %v", err)
	}
	if len(kept) != 1 || kept[0].ID != "s1" {
		t.Fatalf("kept %v, want only s1", idsOf(kept))
	}
}

func TestPrepareStopsGeocoderError(t *testing.T) {
	stops := []domain.Stop{
		{ID: "s1", Address: "somewhere", Lat: math.NaN(), Lng: math.NaN()},
	}
	g := &stubGeocoder{err: errors.New("upstream down")}

	if _, err := PrepareStops(context.Background(), stops, g); err == nil {
		t.Fatal("expected error when geocoder fails")
	}
}

func TestPrepareStopsNoMissingSkipsGeocoder(t *testing.T) {
	stops := []domain.Stop{
		{ID: "s1", Lat: 5.30, Lng: -4.00},
		{ID: "s2", Lat: 5.31, Lng: -4.01},
	}
	g := &stubGeocoder{err: errors.New("should not be called")}

	kept, err := PrepareStops(context.Background(), stops, g)
	if err != nil {
		t.Fatalf("PrepareStops: %v", err)
	}
	if len(kept) != 2 {
		t.Fatalf("kept %d stops, want 2", len(kept))
	}
	if len(g.asked) != 0 {
		t.Fatalf("geocoder called with %v, want no calls", g.asked)
	}
}
