package domain

import (
	"errors"
	"math"
	"time"
)

// ErrInvalidPriceRange is returned when a query's price bounds are inverted or not numbers.
var ErrInvalidPriceRange = errors.New("price_min must not exceed price_max")

// ErrInvalidStay is returned when checkout is not after checkin.
var ErrInvalidStay = errors.New("checkout must be after checkin")

// QueryState is the user input driving a search.
type QueryState struct {
	SearchTerm string  `json:"search_term"`
	PriceMin   float64 `json:"price_min"`
	PriceMax   float64 `json:"price_max"`
}

// Validate checks PriceMin <= PriceMax.
func (q QueryState) Validate() error {
	if math.IsNaN(q.PriceMin) || math.IsNaN(q.PriceMax) || q.PriceMin > q.PriceMax {
		return ErrInvalidPriceRange
	}
	return nil
}

// Match is a listing in a result paired with its map coordinate.
type Match struct {
	Listing    Listing  `json:"listing"`
	Coordinate GeoPoint `json:"coordinate"`
}

// SearchResult is the filtered, order-preserving view of the catalog.
type SearchResult struct {
	Query      QueryState `json:"query"`
	PriceRange PriceRange `json:"price_range"`
	Viewport   Viewport   `json:"viewport"`
	Matches    []Match    `json:"matches"`
	Count      int        `json:"count"`
	Unresolved int        `json:"unresolved"` // matches placed around the viewport center
	Nights     int        `json:"nights,omitempty"`
}

// Listings returns the listings of the result in order.
func (r *SearchResult) Listings() []Listing {
	out := make([]Listing, len(r.Matches))
	for i, m := range r.Matches {
		out[i] = m.Listing
	}
	return out
}

// Stay is a check-in/check-out pair used for display pricing.
type Stay struct {
	CheckIn  time.Time `json:"checkin"`
	CheckOut time.Time `json:"checkout"`
}

// Nights returns ceil((checkout - checkin) / 1 day).
func (s Stay) Nights() int {
	d := s.CheckOut.Sub(s.CheckIn)
	day := 24 * time.Hour
	n := int(d / day)
	if d%day > 0 {
		n++
	}
	return n
}

// SearchEvent records a performed search for analytics.
type SearchEvent struct {
	ID         string     `json:"id"`
	Time       time.Time  `json:"time"`
	Query      QueryState `json:"query"`
	Count      int        `json:"count"`
	RegionName string     `json:"region,omitempty"`
}

// SelectionEvent records a user opening a listing from a result.
type SelectionEvent struct {
	ID        string    `json:"id"`
	Time      time.Time `json:"time"`
	ListingID string    `json:"listing_id"`
	Path      string    `json:"path"`
}
