package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samirrijal/stayfinder/internal/core/domain"
	"github.com/samirrijal/stayfinder/internal/pkg/geodata"
)

func run(t *testing.T, args ...string) []byte {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute(), out.String())
	return out.Bytes()
}

func TestSearchCommand(t *testing.T) {
	var res domain.SearchResult
	require.NoError(t, json.Unmarshal(run(t, "search", "malibu"), &res))

	require.NotZero(t, res.Count)
	assert.Equal(t, "Malibu", res.Viewport.Region)
	for _, m := range res.Matches {
		assert.Contains(t, m.Listing.LocationName, "Malibu")
	}
	assert.Equal(t, geodata.DefaultKnownLocations()["Malibu, California"], res.Matches[0].Coordinate)
}

func TestResolveCommand(t *testing.T) {
	var out struct {
		Known      bool            `json:"known"`
		Coordinate domain.GeoPoint `json:"coordinate"`
	}
	require.NoError(t, json.Unmarshal(run(t, "resolve", "Nowhere", "--lat", "12.5", "--lon", "-3"), &out))

	assert.False(t, out.Known)
	assert.Equal(t, domain.GeoPoint{Lat: 12.5, Lon: -3}, out.Coordinate)
}

func TestViewportCommand(t *testing.T) {
	var vp domain.Viewport
	require.NoError(t, json.Unmarshal(run(t, "viewport", "Kyoto"), &vp))
	assert.Equal(t, "Kyoto", vp.Region)
}
