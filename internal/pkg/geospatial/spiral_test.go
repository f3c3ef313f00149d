package geospatial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpiralOffset_CenterAtZero(t *testing.T) {
	dLat, dLon := SpiralOffset(0, 0.015)
	assert.Equal(t, 0.0, dLat)
	assert.Equal(t, 0.0, dLon)
}

func TestSpiralOffset_FirstIndex(t *testing.T) {
	dLat, dLon := SpiralOffset(1, 0.015)

	r := 0.015 * math.Sqrt(2)
	a := 137.508 * math.Pi / 180
	assert.InDelta(t, r*math.Cos(a), dLat, 1e-12)
	assert.InDelta(t, r*math.Sin(a), dLon, 1e-12)
}

func TestSpiralOffset_RadiusGrowsWithSqrt(t *testing.T) {
	for i := 1; i <= 50; i++ {
		dLat, dLon := SpiralOffset(i, 0.01)
		assert.InDelta(t, 0.01*math.Sqrt(float64(i+1)), math.Hypot(dLat, dLon), 1e-12, "index %d", i)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name             string
		lat, lon         float64
		wantLat, wantLon float64
	}{
		{"inside", 10, 20, 10, 20},
		{"north pole", 91, 0, 90, 0},
		{"south pole", -95, 0, -90, 0},
		{"east wrap", 0, 181, 0, -179},
		{"west wrap", 0, -181, 0, 179},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lat, lon := Clamp(tc.lat, tc.lon)
			assert.InDelta(t, tc.wantLat, lat, 1e-9)
			assert.InDelta(t, tc.wantLon, lon, 1e-9)
		})
	}
}
