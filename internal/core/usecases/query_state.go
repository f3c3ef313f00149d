package usecases

import (
	"github.com/samirrijal/stayfinder/internal/core/domain"
)

// NewQueryState creates the initial query for a catalog. The price bounds are
// taken from the catalog's min/max once and are not re-derived later.
func NewQueryState(catalog []domain.Listing, searchTerm string) domain.QueryState {
	pr := domain.PriceRangeOf(catalog)
	return domain.QueryState{SearchTerm: searchTerm, PriceMin: pr.Min, PriceMax: pr.Max}
}

// SearchSession owns the query state of one search UI. It is not safe for
// concurrent use: a session belongs to the single goroutine driving it.
type SearchSession struct {
	assembler *Assembler
	query     domain.QueryState
	stay      *domain.Stay
}

// NewSearchSession starts a session; catalog is only used to seed the price bounds.
func NewSearchSession(assembler *Assembler, catalog []domain.Listing, searchTerm string) *SearchSession {
	return &SearchSession{
		assembler: assembler,
		query:     NewQueryState(catalog, searchTerm),
	}
}

// Query returns the current query state.
func (s *SearchSession) Query() domain.QueryState { return s.query }

// SetSearchTerm replaces the free-text term.
func (s *SearchSession) SetSearchTerm(term string) {
	s.query.SearchTerm = term
}

// SetPriceRange replaces the price bounds. The state is unchanged on error.
func (s *SearchSession) SetPriceRange(min, max float64) error {
	next := s.query
	next.PriceMin, next.PriceMax = min, max
	if err := next.Validate(); err != nil {
		return err
	}
	s.query = next
	return nil
}

// SetStay sets the dates used for the nights display. nil clears them.
func (s *SearchSession) SetStay(stay *domain.Stay) {
	s.stay = stay
}

// Recompute derives the result for the current state from catalog.
func (s *SearchSession) Recompute(catalog []domain.Listing) domain.SearchResult {
	res := s.assembler.Assemble(catalog, s.query)
	if s.stay != nil {
		res.Nights = s.stay.Nights()
	}
	return res
}
