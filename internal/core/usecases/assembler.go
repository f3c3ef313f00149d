package usecases

import (
	"github.com/samirrijal/stayfinder/internal/core/domain"
)

// Assembler combines filtering, viewport lookup and coordinate resolution
// into one result. It is pure and safe for concurrent use.
type Assembler struct {
	resolver  *LocationResolver
	viewports *ViewportLocator
}

// NewAssembler creates an Assembler.
func NewAssembler(resolver *LocationResolver, viewports *ViewportLocator) *Assembler {
	return &Assembler{resolver: resolver, viewports: viewports}
}

// Assemble filters catalog by q and places every match on the map. Indexes
// passed to the resolver are positions within the filtered result.
func (a *Assembler) Assemble(catalog []domain.Listing, q domain.QueryState) domain.SearchResult {
	viewport := a.viewports.Locate(q.SearchTerm)
	listings := FilterListings(catalog, q)

	res := domain.SearchResult{
		Query:      q,
		PriceRange: domain.PriceRangeOf(catalog),
		Viewport:   viewport,
		Matches:    make([]domain.Match, len(listings)),
		Count:      len(listings),
	}
	for i, l := range listings {
		if !a.resolver.Known(l.LocationName) {
			res.Unresolved++
		}
		res.Matches[i] = domain.Match{
			Listing:    l,
			Coordinate: a.resolver.Resolve(l.LocationName, i, viewport.Center),
		}
	}
	return res
}

// Resolver returns the location resolver.
func (a *Assembler) Resolver() *LocationResolver { return a.resolver }

// Viewports returns the viewport locator.
func (a *Assembler) Viewports() *ViewportLocator { return a.viewports }
