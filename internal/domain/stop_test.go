package domain

import "testing"

func TestDwellMinutesDefault(t *testing.T) {
	s := Stop{ID: "s1"}
	if got := s.DwellMinutes(); got != DefaultDwellMinutes {
		t.Fatalf("DwellMinutes = %v, want default %v", got, DefaultDwellMinutes)
	}

	d := 12.0
	s.EstimatedDuration = &d
	if got := s.DwellMinutes(); got != 12 {
		t.Fatalf("DwellMinutes = %v, want 12", got)
	}
}

func TestIsCurrentLocation(t *testing.T) {
	if (Stop{ID: "stop-001"}).IsCurrentLocation() {
		t.Fatal("regular stop reported as current location")
	}
	if !(Stop{ID: CurrentLocationID}).IsCurrentLocation() {
		t.Fatal("sentinel stop not recognized")
	}
}
