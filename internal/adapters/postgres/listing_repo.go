package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/samirrijal/stayfinder/internal/core/domain"
)

const listingColumns = `id, title, location_name, price, rating, review_count,
	image_ref, original_price, is_new, is_guest_favorite, created_at`

// ListingRepo implements ports.ListingRepository and ports.ListingWriter with pgx.
type ListingRepo struct {
	db *DB
}

// NewListingRepo creates a new ListingRepo.
func NewListingRepo(db *DB) *ListingRepo {
	return &ListingRepo{db: db}
}

// List returns the catalog in insertion order.
func (r *ListingRepo) List(ctx context.Context) ([]domain.Listing, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT `+listingColumns+` FROM listings ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listings := []domain.Listing{}
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

// GetByID returns a listing by id.
func (r *ListingRepo) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	row := r.db.Pool.QueryRow(ctx, `SELECT `+listingColumns+` FROM listings WHERE id = $1`, id)
	l, err := scanListing(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrListingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// UpsertBatch inserts or updates many listings using pgx.Batch. Existing rows
// keep their position in the catalog.
func (r *ListingRepo) UpsertBatch(ctx context.Context, listings []domain.Listing) error {
	if len(listings) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, l := range listings {
		batch.Queue(`
			INSERT INTO listings (id, title, location_name, price, rating, review_count,
			                      image_ref, original_price, is_new, is_guest_favorite)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (id) DO UPDATE
			SET title = EXCLUDED.title, location_name = EXCLUDED.location_name,
			    price = EXCLUDED.price, rating = EXCLUDED.rating,
			    review_count = EXCLUDED.review_count, image_ref = EXCLUDED.image_ref,
			    original_price = EXCLUDED.original_price, is_new = EXCLUDED.is_new,
			    is_guest_favorite = EXCLUDED.is_guest_favorite, updated_at = now()
		`, l.ID, l.Title, l.LocationName, l.Price, l.Rating, l.ReviewCount,
			l.ImageRef, l.OriginalPrice, l.IsNew, l.IsGuestFavorite)
	}
	br := r.db.Pool.SendBatch(ctx, batch)
	defer br.Close()
	for _, l := range listings {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("upsert listing %s: %w", l.ID, err)
		}
	}
	return nil
}

func scanListing(row pgx.Row) (domain.Listing, error) {
	var l domain.Listing
	err := row.Scan(
		&l.ID, &l.Title, &l.LocationName, &l.Price, &l.Rating, &l.ReviewCount,
		&l.ImageRef, &l.OriginalPrice, &l.IsNew, &l.IsGuestFavorite, &l.CreatedAt,
	)
	return l, err
}
