package workflows

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samirrijal/stayfinder/internal/core/domain"
	"github.com/samirrijal/stayfinder/internal/core/ports"
	"github.com/samirrijal/stayfinder/internal/core/usecases"
	"github.com/samirrijal/stayfinder/internal/pkg/metrics"
)

// SyncActivities holds the activity implementations for the catalog sync workflow.
type SyncActivities struct {
	Load     func(path string) ([]domain.Listing, error)
	Writer   ports.ListingWriter
	Listings *usecases.ListingService
	Events   ports.EventPublisher // optional
}

// ReadCatalogFile loads and validates a listing file.
func (a *SyncActivities) ReadCatalogFile(ctx context.Context, path string) ([]domain.Listing, error) {
	listings, err := a.Load(path)
	if err != nil {
		metrics.CatalogSyncs.WithLabelValues("read", "error").Inc()
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	metrics.CatalogSyncs.WithLabelValues("read", "ok").Inc()
	return listings, nil
}

// UpsertListings writes the listings and returns how many were written.
func (a *SyncActivities) UpsertListings(ctx context.Context, listings []domain.Listing) (int, error) {
	if err := a.Writer.UpsertBatch(ctx, listings); err != nil {
		metrics.CatalogSyncs.WithLabelValues("upsert", "error").Inc()
		return 0, fmt.Errorf("upsert %d listings: %w", len(listings), err)
	}
	metrics.CatalogSyncs.WithLabelValues("upsert", "ok").Inc()
	return len(listings), nil
}

// InvalidateCatalogCache drops the cached catalog and records its new size.
func (a *SyncActivities) InvalidateCatalogCache(ctx context.Context) (int, error) {
	if err := a.Listings.Invalidate(ctx); err != nil {
		metrics.CatalogSyncs.WithLabelValues("invalidate", "error").Inc()
		return 0, fmt.Errorf("invalidate catalog cache: %w", err)
	}
	catalog, err := a.Listings.Catalog(ctx)
	if err != nil {
		metrics.CatalogSyncs.WithLabelValues("invalidate", "error").Inc()
		return 0, fmt.Errorf("reload catalog: %w", err)
	}
	metrics.CatalogSize.Set(float64(len(catalog)))
	metrics.CatalogSyncs.WithLabelValues("invalidate", "ok").Inc()
	return len(catalog), nil
}

// PublishCatalogUpdated tells API instances to drop their cached catalog.
func (a *SyncActivities) PublishCatalogUpdated(ctx context.Context, count int) error {
	if a.Events == nil {
		slog.Info("catalog updated (no publisher)", "count", count)
		return nil
	}
	if err := a.Events.PublishCatalogUpdated(ctx, count); err != nil {
		metrics.CatalogSyncs.WithLabelValues("publish", "error").Inc()
		return fmt.Errorf("publish catalog updated: %w", err)
	}
	metrics.CatalogSyncs.WithLabelValues("publish", "ok").Inc()
	return nil
}
