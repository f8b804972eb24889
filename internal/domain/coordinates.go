package domain

// Immutable geographic coordinates (latitude, longitude) in degrees.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Return coordinates as [lon, lat] for external API compatibility.
func (c Coordinates) LonLat() []float64 { return []float64{c.Lng, c.Lat} }
