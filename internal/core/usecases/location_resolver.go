package usecases

import (
	"github.com/samirrijal/stayfinder/internal/core/domain"
	"github.com/samirrijal/stayfinder/internal/pkg/geospatial"
)

// DefaultJitter is the base marker offset in degrees.
const DefaultJitter = 0.015

// LocationResolver places listings on the map from their location name.
// It is stateless and safe for concurrent use.
type LocationResolver struct {
	known  domain.KnownLocations
	jitter float64
}

// NewLocationResolver creates a resolver over the given table. A non-positive
// jitter selects DefaultJitter.
func NewLocationResolver(known domain.KnownLocations, jitter float64) *LocationResolver {
	if jitter <= 0 {
		jitter = DefaultJitter
	}
	return &LocationResolver{known: known, jitter: jitter}
}

// Resolve returns the coordinate for the index-th listing of the current result.
// Names missing from the table resolve around fallback.
func (r *LocationResolver) Resolve(locationName string, index int, fallback domain.GeoPoint) domain.GeoPoint {
	base, ok := r.known.Lookup(locationName)
	if !ok {
		base = fallback
	}
	if index <= 0 {
		return base
	}

	dLat, dLon := geospatial.SpiralOffset(index, r.jitter)
	p := base.Offset(dLat, dLon)
	p.Lat, p.Lon = geospatial.Clamp(p.Lat, p.Lon)
	return p
}

// Known reports whether the name has a table entry.
func (r *LocationResolver) Known(locationName string) bool {
	_, ok := r.known.Lookup(locationName)
	return ok
}
