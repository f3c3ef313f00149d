package usecases

import (
	"github.com/samirrijal/stayfinder/internal/core/domain"
	"github.com/samirrijal/stayfinder/internal/pkg/textmatch"
)

// FilterListings returns the listings matching the query, in catalog order.
// A listing matches when the search term is empty or is contained in its title
// or location name (case-insensitive), and its price is within the bounds.
func FilterListings(catalog []domain.Listing, q domain.QueryState) []domain.Listing {
	out := make([]domain.Listing, 0, len(catalog))
	term := textmatch.NewMatcher(q.SearchTerm)

	for _, l := range catalog {
		if l.Price < q.PriceMin || l.Price > q.PriceMax {
			continue
		}
		if !term.In(l.Title) && !term.In(l.LocationName) {
			continue
		}
		out = append(out, l)
	}
	return out
}
