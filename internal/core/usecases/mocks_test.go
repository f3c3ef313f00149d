package usecases_test

import (
	"context"
	"errors"
	"sync"

	"github.com/samirrijal/stayfinder/internal/core/domain"
)

// ---- Mock ports ----

type mockListingRepo struct {
	listFn    func(ctx context.Context) ([]domain.Listing, error)
	getByIDFn func(ctx context.Context, id string) (*domain.Listing, error)
	listCalls int
}

func (m *mockListingRepo) List(ctx context.Context) ([]domain.Listing, error) {
	m.listCalls++
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return fixtureCatalog(), nil
}

func (m *mockListingRepo) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	for _, l := range fixtureCatalog() {
		if l.ID == id {
			return &l, nil
		}
	}
	return nil, domain.ErrListingNotFound
}

var errCacheMiss = errors.New("cache miss")

type mockCache struct {
	mu        sync.Mutex
	data      map[string][]byte
	ttls      map[string]int
	deleteErr error
}

func newMockCache() *mockCache {
	return &mockCache{data: map[string][]byte{}, ttls: map[string]int{}}
}

func (m *mockCache) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, errCacheMiss
	}
	return v, nil
}

func (m *mockCache) Set(_ context.Context, key string, value []byte, ttlSeconds int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	m.ttls[key] = ttlSeconds
	return nil
}

func (m *mockCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.data, key)
	return nil
}

type mockPublisher struct {
	searches []*domain.SearchEvent
	updates  []int
	err      error
}

func (m *mockPublisher) PublishSearch(_ context.Context, e *domain.SearchEvent) error {
	m.searches = append(m.searches, e)
	return m.err
}

func (m *mockPublisher) PublishCatalogUpdated(_ context.Context, count int) error {
	m.updates = append(m.updates, count)
	return m.err
}

type mockNavigator struct {
	opened []*domain.SelectionEvent
	err    error
}

func (m *mockNavigator) OpenListing(_ context.Context, e *domain.SelectionEvent) error {
	if m.err != nil {
		return m.err
	}
	m.opened = append(m.opened, e)
	return nil
}
