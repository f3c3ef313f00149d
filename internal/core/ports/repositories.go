package ports

import (
	"context"

	"github.com/samirrijal/stayfinder/internal/core/domain"
)

// ListingRepository is the catalog data source.
// List must return listings in catalog order.
type ListingRepository interface {
	List(ctx context.Context) ([]domain.Listing, error)
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
}

// ListingWriter persists catalog listings.
type ListingWriter interface {
	UpsertBatch(ctx context.Context, listings []domain.Listing) error
}
