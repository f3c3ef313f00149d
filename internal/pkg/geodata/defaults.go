package geodata

import "github.com/samirrijal/stayfinder/internal/core/domain"

// DefaultKnownLocations returns the built-in table of canonical location names.
// Every call returns a fresh map.
func DefaultKnownLocations() domain.KnownLocations {
	return domain.KnownLocations{
		"Malibu, California":          {Lat: 34.0259, Lon: -118.7798},
		"Big Sur, California":         {Lat: 36.2704, Lon: -121.8081},
		"Lake Tahoe, California":      {Lat: 39.0968, Lon: -120.0324},
		"Aspen, Colorado":             {Lat: 39.1911, Lon: -106.8175},
		"Miami Beach, Florida":        {Lat: 25.7907, Lon: -80.1300},
		"New York, New York":          {Lat: 40.7128, Lon: -74.0060},
		"Cancun, Mexico":              {Lat: 21.1619, Lon: -86.8515},
		"Reykjavik, Iceland":          {Lat: 64.1466, Lon: -21.9426},
		"London, United Kingdom":      {Lat: 51.5074, Lon: -0.1278},
		"Paris, France":               {Lat: 48.8566, Lon: 2.3522},
		"Barcelona, Spain":            {Lat: 41.3874, Lon: 2.1686},
		"Santorini, Greece":           {Lat: 36.3932, Lon: 25.4615},
		"Cape Town, South Africa":     {Lat: -33.9249, Lon: 18.4241},
		"Dubai, United Arab Emirates": {Lat: 25.2048, Lon: 55.2708},
		"Makkah, Saudi Arabia":        {Lat: 21.3891, Lon: 39.8579},
		"Madinah, Saudi Arabia":       {Lat: 24.5247, Lon: 39.5692},
		"Bali, Indonesia":             {Lat: -8.3405, Lon: 115.0920},
		"Kyoto, Japan":                {Lat: 35.0116, Lon: 135.7681},
		"Tokyo, Japan":                {Lat: 35.6762, Lon: 139.6503},
		"Sydney, Australia":           {Lat: -33.8688, Lon: 151.2093},
	}
}

// DefaultRegions returns the built-in region table in lookup priority order.
// Specific places come before the broader areas that contain them.
func DefaultRegions() []domain.Region {
	return []domain.Region{
		{Name: "Great Mosque of Makkah", Match: "great mosque of makkah", Center: domain.GeoPoint{Lat: 21.4225, Lon: 39.8262}, Zoom: 15},
		{Name: "Makkah", Match: "makkah", Center: domain.GeoPoint{Lat: 21.3891, Lon: 39.8579}, Zoom: 12},
		{Name: "Madinah", Match: "madinah", Center: domain.GeoPoint{Lat: 24.5247, Lon: 39.5692}, Zoom: 12},
		{Name: "Saudi Arabia", Match: "saudi arabia", Center: domain.GeoPoint{Lat: 23.8859, Lon: 45.0792}, Zoom: 5},
		{Name: "New York", Match: "new york", Center: domain.GeoPoint{Lat: 40.7128, Lon: -74.0060}, Zoom: 11},
		{Name: "Malibu", Match: "malibu", Center: domain.GeoPoint{Lat: 34.0259, Lon: -118.7798}, Zoom: 12},
		{Name: "Big Sur", Match: "big sur", Center: domain.GeoPoint{Lat: 36.2704, Lon: -121.8081}, Zoom: 11},
		{Name: "Lake Tahoe", Match: "tahoe", Center: domain.GeoPoint{Lat: 39.0968, Lon: -120.0324}, Zoom: 11},
		{Name: "California", Match: "california", Center: domain.GeoPoint{Lat: 36.7783, Lon: -119.4179}, Zoom: 6},
		{Name: "Aspen", Match: "aspen", Center: domain.GeoPoint{Lat: 39.1911, Lon: -106.8175}, Zoom: 12},
		{Name: "Miami", Match: "miami", Center: domain.GeoPoint{Lat: 25.7907, Lon: -80.1300}, Zoom: 12},
		{Name: "Cancun", Match: "cancun", Center: domain.GeoPoint{Lat: 21.1619, Lon: -86.8515}, Zoom: 12},
		{Name: "Iceland", Match: "iceland", Center: domain.GeoPoint{Lat: 64.9631, Lon: -19.0208}, Zoom: 6},
		{Name: "London", Match: "london", Center: domain.GeoPoint{Lat: 51.5074, Lon: -0.1278}, Zoom: 11},
		{Name: "Paris", Match: "paris", Center: domain.GeoPoint{Lat: 48.8566, Lon: 2.3522}, Zoom: 12},
		{Name: "Barcelona", Match: "barcelona", Center: domain.GeoPoint{Lat: 41.3874, Lon: 2.1686}, Zoom: 12},
		{Name: "Santorini", Match: "santorini", Center: domain.GeoPoint{Lat: 36.3932, Lon: 25.4615}, Zoom: 12},
		{Name: "Cape Town", Match: "cape town", Center: domain.GeoPoint{Lat: -33.9249, Lon: 18.4241}, Zoom: 11},
		{Name: "Dubai", Match: "dubai", Center: domain.GeoPoint{Lat: 25.2048, Lon: 55.2708}, Zoom: 11},
		{Name: "Bali", Match: "bali", Center: domain.GeoPoint{Lat: -8.3405, Lon: 115.0920}, Zoom: 10},
		{Name: "Kyoto", Match: "kyoto", Center: domain.GeoPoint{Lat: 35.0116, Lon: 135.7681}, Zoom: 12},
		{Name: "Tokyo", Match: "tokyo", Center: domain.GeoPoint{Lat: 35.6762, Lon: 139.6503}, Zoom: 11},
		{Name: "Japan", Match: "japan", Center: domain.GeoPoint{Lat: 36.2048, Lon: 138.2529}, Zoom: 5},
		{Name: "Sydney", Match: "sydney", Center: domain.GeoPoint{Lat: -33.8688, Lon: 151.2093}, Zoom: 11},
	}
}

// DefaultViewport is the global view used when no region matches.
func DefaultViewport() domain.Viewport {
	return domain.Viewport{Center: domain.GeoPoint{Lat: 20, Lon: 0}, Zoom: 2}
}
