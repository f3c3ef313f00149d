package domain

import (
	"errors"
	"time"
)

// ErrListingNotFound is returned when a listing id is not in the catalog.
var ErrListingNotFound = errors.New("listing not found")

// Listing is one rentable property in the catalog.
type Listing struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	LocationName    string    `json:"location_name"`
	Price           float64   `json:"price"` // nightly rate
	Rating          *float64  `json:"rating,omitempty"`
	ReviewCount     *int      `json:"review_count,omitempty"`
	ImageRef        string    `json:"image_ref,omitempty"`
	OriginalPrice   *float64  `json:"original_price,omitempty"`
	IsNew           bool      `json:"is_new,omitempty"`
	IsGuestFavorite bool      `json:"is_guest_favorite,omitempty"`
	CreatedAt       time.Time `json:"created_at,omitempty"`
}

// PriceRange is the min/max nightly price across a catalog.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// PriceRangeOf returns the price bounds of the catalog. An empty catalog yields {0, 0}.
func PriceRangeOf(catalog []Listing) PriceRange {
	if len(catalog) == 0 {
		return PriceRange{}
	}
	pr := PriceRange{Min: catalog[0].Price, Max: catalog[0].Price}
	for _, l := range catalog[1:] {
		if l.Price < pr.Min {
			pr.Min = l.Price
		}
		if l.Price > pr.Max {
			pr.Max = l.Price
		}
	}
	return pr
}
