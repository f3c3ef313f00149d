package usecases_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/samirrijal/stayfinder/internal/core/domain"
	"github.com/samirrijal/stayfinder/internal/core/usecases"
)

func fixtureCatalog() []domain.Listing {
	return []domain.Listing{
		{ID: "1", Title: "Oceanfront Villa", LocationName: "Malibu, California", Price: 450},
		{ID: "2", Title: "Ski-in Chalet", LocationName: "Aspen, Colorado", Price: 320},
		{ID: "3", Title: "Art Deco Loft", LocationName: "Miami Beach, Florida", Price: 180},
		{ID: "4", Title: "Malibu Canyon Cabin", LocationName: "Topanga, California", Price: 210},
		{ID: "5", Title: "Brownstone Suite", LocationName: "New York, New York", Price: 260},
		{ID: "6", Title: "Riad with Pool", LocationName: "Marrakesh, Morocco", Price: 95},
	}
}

func ids(ls []domain.Listing) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = l.ID
	}
	return out
}

func isSubsequence(sub, full []domain.Listing) bool {
	j := 0
	for _, l := range full {
		if j < len(sub) && sub[j].ID == l.ID {
			j++
		}
	}
	return j == len(sub)
}

func TestFilterListings(t *testing.T) {
	catalog := fixtureCatalog()
	inf := math.Inf(1)

	tests := []struct {
		name  string
		query domain.QueryState
		want  []string
	}{
		{"everything", domain.QueryState{PriceMin: math.Inf(-1), PriceMax: inf}, []string{"1", "2", "3", "4", "5", "6"}},
		{"title or location", domain.QueryState{SearchTerm: "malibu", PriceMin: 0, PriceMax: inf}, []string{"1", "4"}},
		{"upper case", domain.QueryState{SearchTerm: "MALIBU", PriceMin: 0, PriceMax: inf}, []string{"1", "4"}},
		{"location only", domain.QueryState{SearchTerm: "california", PriceMin: 0, PriceMax: inf}, []string{"1", "4"}},
		{"title only", domain.QueryState{SearchTerm: "chalet", PriceMin: 0, PriceMax: inf}, []string{"2"}},
		{"price bounds inclusive", domain.QueryState{PriceMin: 180, PriceMax: 260}, []string{"3", "4", "5"}},
		{"term and price", domain.QueryState{SearchTerm: "california", PriceMin: 300, PriceMax: 500}, []string{"1"}},
		{"no match", domain.QueryState{SearchTerm: "nonexistent-place", PriceMin: 0, PriceMax: inf}, []string{}},
		{"empty range", domain.QueryState{PriceMin: 1000, PriceMax: 2000}, []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := usecases.FilterListings(catalog, tc.query)
			if diff := cmp.Diff(tc.want, ids(got)); diff != "" {
				t.Errorf("FilterListings mismatch (-want +got):\n%s", diff)
			}
			assert.True(t, isSubsequence(got, catalog))
		})
	}
}

func TestFilterListings_FullCatalogAtTrueBounds(t *testing.T) {
	catalog := fixtureCatalog()
	q := usecases.NewQueryState(catalog, "")
	assert.Equal(t, 95.0, q.PriceMin)
	assert.Equal(t, 450.0, q.PriceMax)

	if diff := cmp.Diff(catalog, usecases.FilterListings(catalog, q)); diff != "" {
		t.Errorf("expected full catalog (-want +got):\n%s", diff)
	}
}

func TestFilterListings_CaseInsensitiveEquivalence(t *testing.T) {
	catalog := fixtureCatalog()
	for _, pair := range [][2]string{{"MALIBU", "malibu"}, {"New York", "nEW yORK"}, {"BEACH", "beach"}} {
		a := usecases.FilterListings(catalog, domain.QueryState{SearchTerm: pair[0], PriceMax: 1000})
		b := usecases.FilterListings(catalog, domain.QueryState{SearchTerm: pair[1], PriceMax: 1000})
		assert.Equal(t, ids(a), ids(b), pair[0])
	}
}

func TestFilterListings_EmptyCatalog(t *testing.T) {
	got := usecases.FilterListings(nil, domain.QueryState{PriceMax: 100})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterListings_DoesNotMutateCatalog(t *testing.T) {
	catalog := fixtureCatalog()
	before := fixtureCatalog()
	_ = usecases.FilterListings(catalog, domain.QueryState{SearchTerm: "loft", PriceMax: 1000})
	assert.Equal(t, before, catalog)
}
