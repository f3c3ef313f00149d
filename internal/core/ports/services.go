package ports

import (
	"context"

	"github.com/samirrijal/stayfinder/internal/core/domain"
)

// EventPublisher publishes domain events to a message broker.
type EventPublisher interface {
	PublishSearch(ctx context.Context, event *domain.SearchEvent) error
	PublishCatalogUpdated(ctx context.Context, count int) error
}

// EventSubscriber subscribes to domain events from a message broker.
type EventSubscriber interface {
	SubscribeCatalogUpdated(ctx context.Context, handler func(ctx context.Context, count int) error) error
}

// Navigator opens the detail view for a listing.
type Navigator interface {
	OpenListing(ctx context.Context, event *domain.SelectionEvent) error
}

// CacheService provides read-through caching.
type CacheService interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttlSeconds int) error
	Delete(ctx context.Context, key string) error
}
