package geospatial

import "math"

// GoldenAngle is the angle in degrees that spreads successive points around a
// circle with minimal overlap for any prefix length.
const GoldenAngle = 137.508

// SpiralOffset returns the (Δlat, Δlon) offset in degrees for the index-th point
// of a golden-angle spiral. Index 0 sits on the center. The radius grows with
// sqrt(index+1) so point density stays roughly uniform per unit area.
func SpiralOffset(index int, jitter float64) (dLat, dLon float64) {
	if index <= 0 {
		return 0, 0
	}

	angle := math.Mod(float64(index)*GoldenAngle, 360)
	radius := jitter * math.Sqrt(float64(index+1))

	rad := toRad(angle)
	return radius * math.Cos(rad), radius * math.Sin(rad)
}

// Clamp keeps a coordinate inside WGS 84 ranges, wrapping longitude.
func Clamp(lat, lon float64) (float64, float64) {
	lat = math.Max(-90, math.Min(90, lat))
	if lon > 180 || lon < -180 {
		lon = math.Mod(lon+180, 360)
		if lon < 0 {
			lon += 360
		}
		lon -= 180
	}
	return lat, lon
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
