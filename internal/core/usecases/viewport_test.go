package usecases_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/samirrijal/stayfinder/internal/core/domain"
	"github.com/samirrijal/stayfinder/internal/core/usecases"
	"github.com/samirrijal/stayfinder/internal/pkg/geodata"
)

func TestViewportLocator_Locate(t *testing.T) {
	v := usecases.NewViewportLocator(geodata.DefaultRegions(), geodata.DefaultViewport())

	tests := []struct {
		term   string
		region string
	}{
		{"", ""},
		{"nowhere in particular", ""},
		{"New York", "New York"},
		{"brooklyn, NEW YORK city", "New York"},
		{"Great Mosque of Makkah", "Great Mosque of Makkah"},
		{"makkah hotels", "Makkah"},
		{"Riyadh, Saudi Arabia", "Saudi Arabia"},
		{"Malibu, California", "Malibu"},
		{"Sacramento, California", "California"},
		{"tokyo", "Tokyo"},
		{"Osaka, Japan", "Japan"},
	}
	for _, tc := range tests {
		t.Run(tc.term, func(t *testing.T) {
			got := v.Locate(tc.term)
			assert.Equal(t, tc.region, got.Region)
			if tc.region == "" {
				assert.Equal(t, geodata.DefaultViewport(), got)
			}
		})
	}
}

func TestViewportLocator_FirstMatchWins(t *testing.T) {
	regions := []domain.Region{
		{Name: "first", Match: "bay", Center: domain.GeoPoint{Lat: 1, Lon: 1}, Zoom: 5},
		{Name: "second", Match: "bay area", Center: domain.GeoPoint{Lat: 2, Lon: 2}, Zoom: 9},
	}
	v := usecases.NewViewportLocator(regions, domain.Viewport{Zoom: 2})

	got := v.Locate("Bay Area")
	assert.Equal(t, domain.Viewport{Center: domain.GeoPoint{Lat: 1, Lon: 1}, Zoom: 5, Region: "first"}, got)
}

func TestViewportLocator_RegionsCopy(t *testing.T) {
	regions := []domain.Region{{Name: "a", Match: "a"}}
	v := usecases.NewViewportLocator(regions, domain.Viewport{})
	regions[0].Match = "changed"

	got := v.Regions()
	assert.Equal(t, "a", got[0].Match)
	got[0].Match = "mutated"
	assert.Equal(t, "a", v.Regions()[0].Match)
}
