package usecases

import (
	"context"
	"log/slog"
	"sync"

	"github.com/samirrijal/stayfinder/internal/core/ports"
)

// CatalogWatcher reacts to catalog updates: it drops the cached catalog and
// notifies every live search session.
type CatalogWatcher struct {
	listings *ListingService

	mu   sync.Mutex
	subs map[chan int]struct{}
}

// NewCatalogWatcher creates a CatalogWatcher.
func NewCatalogWatcher(listings *ListingService) *CatalogWatcher {
	return &CatalogWatcher{listings: listings, subs: make(map[chan int]struct{})}
}

// Watch registers the watcher with an event subscriber.
func (w *CatalogWatcher) Watch(ctx context.Context, sub ports.EventSubscriber) error {
	return sub.SubscribeCatalogUpdated(ctx, w.HandleUpdated)
}

// HandleUpdated processes one catalog.updated notification. Cache failures
// are logged; sessions are notified regardless.
func (w *CatalogWatcher) HandleUpdated(ctx context.Context, count int) error {
	if err := w.listings.Invalidate(ctx); err != nil {
		slog.WarnContext(ctx, "invalidate catalog cache", "error", err)
	}
	slog.InfoContext(ctx, "catalog updated", "listings", count)

	w.mu.Lock()
	defer w.mu.Unlock()
	for ch := range w.subs {
		offer(ch, count)
	}
	return nil
}

// Subscribe returns a channel receiving listing counts of new catalogs and a
// function that ends the subscription. A slow reader only sees the latest count.
func (w *CatalogWatcher) Subscribe() (<-chan int, func()) {
	ch := make(chan int, 1)
	w.mu.Lock()
	w.subs[ch] = struct{}{}
	w.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			w.mu.Lock()
			delete(w.subs, ch)
			w.mu.Unlock()
		})
	}
}

// offer replaces any pending value in ch with v without blocking.
func offer(ch chan int, v int) {
	select {
	case ch <- v:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- v:
	default:
	}
}
