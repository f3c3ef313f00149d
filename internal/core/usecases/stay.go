package usecases

import (
	"fmt"
	"time"

	"github.com/samirrijal/stayfinder/internal/core/domain"
)

// ParseStay parses ISO 8601 checkin/checkout dates. It returns nil when either
// date is absent, since nights are only shown for a complete pair.
func ParseStay(checkin, checkout string) (*domain.Stay, error) {
	if checkin == "" || checkout == "" {
		return nil, nil
	}

	in, err := parseDate(checkin)
	if err != nil {
		return nil, fmt.Errorf("checkin: %w", err)
	}
	out, err := parseDate(checkout)
	if err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}
	if !out.After(in) {
		return nil, domain.ErrInvalidStay
	}

	return &domain.Stay{CheckIn: in, CheckOut: out}, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
