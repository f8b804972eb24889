package domain

import "testing"

func TestLonLat(t *testing.T) {
	c := Coordinates{Lat: 5.32, Lng: -4.02}
	got := c.LonLat()
	if len(got) != 2 || got[0] != -4.02 || got[1] != 5.32 {
		t.Fatalf("LonLat() = %v, want [-4.02 5.32]", got)
	}
}
