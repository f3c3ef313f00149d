package usecases

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/samirrijal/stayfinder/internal/core/domain"
	"github.com/samirrijal/stayfinder/internal/core/ports"
)

// CatalogCacheKey holds the cached catalog.
const CatalogCacheKey = "listings:catalog"

// GenerationCacheKey holds the catalog generation that prefixes per-listing
// keys. Invalidate replaces it, orphaning every cached listing at once.
const GenerationCacheKey = "listings:generation"

const (
	catalogTTL    = 60
	listingTTL    = 600
	generationTTL = 24 * 60 * 60 // must outlive listingTTL
)

// ListingCacheKey returns the cache key of one listing within a generation.
func ListingCacheKey(generation, id string) string {
	return "listings:id:" + generation + ":" + id
}

// ListingService reads the catalog through an optional cache.
type ListingService struct {
	listings ports.ListingRepository
	cache    ports.CacheService
}

// NewListingService creates a new ListingService. cache may be nil.
func NewListingService(listings ports.ListingRepository, cache ports.CacheService) *ListingService {
	return &ListingService{listings: listings, cache: cache}
}

// Catalog returns every listing in catalog order.
func (s *ListingService) Catalog(ctx context.Context) ([]domain.Listing, error) {
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, CatalogCacheKey); err == nil {
			var listings []domain.Listing
			if err := json.Unmarshal(data, &listings); err == nil {
				return listings, nil
			}
		}
	}

	listings, err := s.listings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}

	// Cache for 1 minute; catalog updates also invalidate explicitly
	if s.cache != nil {
		if data, err := json.Marshal(listings); err == nil {
			_ = s.cache.Set(ctx, CatalogCacheKey, data, catalogTTL)
		}
	}

	return listings, nil
}

// GetByID returns a single listing.
func (s *ListingService) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	if id == "" {
		return nil, domain.ErrListingNotFound
	}

	var cacheKey string
	if s.cache != nil {
		cacheKey = ListingCacheKey(s.generation(ctx), id)
		if data, err := s.cache.Get(ctx, cacheKey); err == nil {
			var l domain.Listing
			if err := json.Unmarshal(data, &l); err == nil {
				return &l, nil
			}
		}
	}

	l, err := s.listings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(l); err == nil {
			_ = s.cache.Set(ctx, cacheKey, data, listingTTL)
		}
	}

	return l, nil
}

// Invalidate drops the cached catalog and starts a new listing generation.
func (s *ListingService) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Delete(ctx, CatalogCacheKey); err != nil {
		return fmt.Errorf("drop catalog: %w", err)
	}
	if err := s.cache.Set(ctx, GenerationCacheKey, []byte(uuid.NewString()), generationTTL); err != nil {
		return fmt.Errorf("bump generation: %w", err)
	}
	return nil
}

// generation returns the current listing generation; "0" until the first
// invalidation or after the key expires.
func (s *ListingService) generation(ctx context.Context) string {
	if data, err := s.cache.Get(ctx, GenerationCacheKey); err == nil && len(data) > 0 {
		return string(data)
	}
	return "0"
}
