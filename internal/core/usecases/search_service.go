package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/samirrijal/stayfinder/internal/core/domain"
	"github.com/samirrijal/stayfinder/internal/core/ports"
	"github.com/samirrijal/stayfinder/internal/pkg/telemetry"
)

// SearchRequest is a search as it arrives from navigation parameters.
// Nil price bounds default to the catalog's min/max.
type SearchRequest struct {
	Location string
	PriceMin *float64
	PriceMax *float64
	CheckIn  string
	CheckOut string
}

// SearchService runs searches against the catalog and reports them.
type SearchService struct {
	listings  *ListingService
	assembler *Assembler
	publisher ports.EventPublisher
	navigator ports.Navigator
}

// NewSearchService creates a new SearchService. publisher and navigator may be nil.
func NewSearchService(
	listings *ListingService,
	assembler *Assembler,
	publisher ports.EventPublisher,
	navigator ports.Navigator,
) *SearchService {
	return &SearchService{
		listings:  listings,
		assembler: assembler,
		publisher: publisher,
		navigator: navigator,
	}
}

// Search loads the catalog and assembles the result for req.
func (s *SearchService) Search(ctx context.Context, req SearchRequest) (*domain.SearchResult, error) {
	ctx, span := otel.Tracer(telemetry.TracerName).Start(ctx, "SearchService.Search")
	defer span.End()

	stay, err := ParseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	catalog, err := s.listings.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	q := NewQueryState(catalog, req.Location)
	if req.PriceMin != nil {
		q.PriceMin = *req.PriceMin
	}
	if req.PriceMax != nil {
		q.PriceMax = *req.PriceMax
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}

	res := s.assembler.Assemble(catalog, q)
	if stay != nil {
		res.Nights = stay.Nights()
	}

	span.SetAttributes(
		telemetry.AttrSearchTerm.String(q.SearchTerm),
		telemetry.AttrCatalogSize.Int(len(catalog)),
		telemetry.AttrResultCount.Int(res.Count),
		telemetry.AttrUnresolved.Int(res.Unresolved),
		telemetry.AttrViewportRegion.String(res.Viewport.Region),
	)

	s.report(ctx, &res)
	return &res, nil
}

// NewSession starts a search session seeded from the current catalog.
func (s *SearchService) NewSession(ctx context.Context, searchTerm string) (*SearchSession, []domain.Listing, error) {
	catalog, err := s.listings.Catalog(ctx)
	if err != nil {
		return nil, nil, err
	}
	return NewSearchSession(s.assembler, catalog, searchTerm), catalog, nil
}

// Catalog returns the current catalog.
func (s *SearchService) Catalog(ctx context.Context) ([]domain.Listing, error) {
	return s.listings.Catalog(ctx)
}

// PriceRange returns the catalog's price bounds.
func (s *SearchService) PriceRange(ctx context.Context) (domain.PriceRange, error) {
	catalog, err := s.listings.Catalog(ctx)
	if err != nil {
		return domain.PriceRange{}, err
	}
	return domain.PriceRangeOf(catalog), nil
}

// Resolve places a single location name. A nil fallback uses the default viewport center.
func (s *SearchService) Resolve(locationName string, index int, fallback *domain.GeoPoint) domain.GeoPoint {
	fb := s.assembler.Viewports().Default().Center
	if fallback != nil {
		fb = *fallback
	}
	return s.assembler.Resolver().Resolve(locationName, index, fb)
}

// Known reports whether a location name is in the known-location table.
func (s *SearchService) Known(locationName string) bool {
	return s.assembler.Resolver().Known(locationName)
}

// Viewport returns the initial viewport for a search term.
func (s *SearchService) Viewport(term string) domain.Viewport {
	return s.assembler.Viewports().Locate(term)
}

// Regions returns the region table in lookup order.
func (s *SearchService) Regions() []domain.Region {
	return s.assembler.Viewports().Regions()
}

// Select hands the listing to the navigator and returns its detail path.
func (s *SearchService) Select(ctx context.Context, listingID string) (string, error) {
	ctx, span := otel.Tracer(telemetry.TracerName).Start(ctx, "SearchService.Select")
	defer span.End()
	span.SetAttributes(telemetry.AttrListingID.String(listingID))

	l, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		return "", err
	}

	path := "/listings/" + l.ID
	if s.navigator != nil {
		event := &domain.SelectionEvent{
			ID:        uuid.NewString(),
			Time:      time.Now().UTC(),
			ListingID: l.ID,
			Path:      path,
		}
		if err := s.navigator.OpenListing(ctx, event); err != nil {
			return "", fmt.Errorf("open listing %s: %w", l.ID, err)
		}
	}
	return path, nil
}

// report publishes the search event; failures are logged, never returned.
func (s *SearchService) report(ctx context.Context, res *domain.SearchResult) {
	if s.publisher == nil {
		return
	}
	event := &domain.SearchEvent{
		ID:         uuid.NewString(),
		Time:       time.Now().UTC(),
		Query:      res.Query,
		Count:      res.Count,
		RegionName: res.Viewport.Region,
	}
	if err := s.publisher.PublishSearch(ctx, event); err != nil {
		slog.WarnContext(ctx, "publish search event", "error", err)
	}
}
