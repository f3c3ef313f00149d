package domain

// GeoPoint represents a geographic coordinate (WGS 84).
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Offset returns the point moved by the given deltas in degrees.
func (p GeoPoint) Offset(dLat, dLon float64) GeoPoint {
	return GeoPoint{Lat: p.Lat + dLat, Lon: p.Lon + dLon}
}

// Valid reports whether the point is finite and inside WGS 84 ranges.
func (p GeoPoint) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// KnownLocations maps canonical location names to their base coordinate.
// Lookups are exact string matches.
type KnownLocations map[string]GeoPoint

// Lookup returns the base coordinate for name.
func (k KnownLocations) Lookup(name string) (GeoPoint, bool) {
	p, ok := k[name]
	return p, ok
}

// Viewport is the initial map center and zoom.
type Viewport struct {
	Center GeoPoint `json:"center"`
	Zoom   int      `json:"zoom"`
	Region string   `json:"region,omitempty"` // empty for the global default
}

// Region is a named map area selected when a search term contains Match.
type Region struct {
	Name   string   `json:"name"`
	Match  string   `json:"match"`
	Center GeoPoint `json:"center"`
	Zoom   int      `json:"zoom"`
}
