package usecases

import (
	"strings"

	"github.com/samirrijal/stayfinder/internal/core/domain"
	"github.com/samirrijal/stayfinder/internal/pkg/textmatch"
)

// ViewportLocator picks the initial map viewport for a search term.
type ViewportLocator struct {
	regions  []domain.Region
	matches  []string // folded Region.Match, same order
	fallback domain.Viewport
}

// NewViewportLocator creates a locator. Regions are tried in the given order.
func NewViewportLocator(regions []domain.Region, fallback domain.Viewport) *ViewportLocator {
	v := &ViewportLocator{
		regions:  append([]domain.Region(nil), regions...),
		matches:  make([]string, len(regions)),
		fallback: fallback,
	}
	for i, r := range regions {
		v.matches[i] = textmatch.Lower(r.Match)
	}
	return v
}

// Locate returns the viewport of the first region whose match string is
// contained in term, or the global default.
func (v *ViewportLocator) Locate(term string) domain.Viewport {
	if term == "" {
		return v.fallback
	}
	t := textmatch.Lower(term)
	for i, m := range v.matches {
		if m != "" && strings.Contains(t, m) {
			r := v.regions[i]
			return domain.Viewport{Center: r.Center, Zoom: r.Zoom, Region: r.Name}
		}
	}
	return v.fallback
}

// Default returns the global default viewport.
func (v *ViewportLocator) Default() domain.Viewport { return v.fallback }

// Regions returns a copy of the region table in priority order.
func (v *ViewportLocator) Regions() []domain.Region {
	return append([]domain.Region(nil), v.regions...)
}
