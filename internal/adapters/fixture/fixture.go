// Package fixture serves the listing catalog from JSON, either the embedded
// sample catalog or a file supplied at runtime.
package fixture

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/samirrijal/stayfinder/internal/core/domain"
)

//go:embed listings.json
var sample []byte

// Repo is an in-memory catalog. It implements ports.ListingRepository and
// ports.ListingWriter.
type Repo struct {
	mu       sync.RWMutex
	listings []domain.Listing
	index    map[string]int
}

// NewRepo creates a repo holding listings in the given order.
func NewRepo(listings []domain.Listing) *Repo {
	r := &Repo{index: make(map[string]int, len(listings))}
	r.put(listings)
	return r
}

// Sample returns a repo over the embedded sample catalog.
func Sample() (*Repo, error) {
	listings, err := Parse(sample)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return NewRepo(listings), nil
}

// Load reads a catalog file. An empty path selects the embedded sample.
func Load(path string) ([]domain.Listing, error) {
	if path == "" {
		return Parse(sample)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a JSON array of listings and rejects duplicate or empty ids
// and negative prices.
func Parse(data []byte) ([]domain.Listing, error) {
	var listings []domain.Listing
	if err := json.Unmarshal(data, &listings); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	seen := make(map[string]struct{}, len(listings))
	for i, l := range listings {
		if l.ID == "" {
			return nil, fmt.Errorf("listing %d: missing id", i)
		}
		if _, dup := seen[l.ID]; dup {
			return nil, fmt.Errorf("listing %d: duplicate id %q", i, l.ID)
		}
		if l.Price < 0 {
			return nil, fmt.Errorf("listing %s: negative price", l.ID)
		}
		seen[l.ID] = struct{}{}
	}
	return listings, nil
}

// List returns a copy of the catalog.
func (r *Repo) List(_ context.Context) ([]domain.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Listing{}, r.listings...), nil
}

// GetByID returns a listing by id.
func (r *Repo) GetByID(_ context.Context, id string) (*domain.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[id]
	if !ok {
		return nil, domain.ErrListingNotFound
	}
	l := r.listings[i]
	return &l, nil
}

// UpsertBatch replaces listings by id in place and appends new ones.
func (r *Repo) UpsertBatch(_ context.Context, listings []domain.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.put(listings)
	return nil
}

func (r *Repo) put(listings []domain.Listing) {
	for _, l := range listings {
		if i, ok := r.index[l.ID]; ok {
			r.listings[i] = l
			continue
		}
		r.index[l.ID] = len(r.listings)
		r.listings = append(r.listings, l)
	}
}
