package usecases_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samirrijal/stayfinder/internal/core/domain"
	"github.com/samirrijal/stayfinder/internal/core/usecases"
)

func TestParseStay(t *testing.T) {
	tests := []struct {
		name      string
		in, out   string
		nights    int
		wantNil   bool
		wantError bool
	}{
		{name: "dates", in: "2026-07-01", out: "2026-07-05", nights: 4},
		{name: "one night", in: "2026-07-01", out: "2026-07-02", nights: 1},
		{name: "partial day rounds up", in: "2026-07-01T10:00:00Z", out: "2026-07-02T11:00:00Z", nights: 2},
		{name: "missing checkout", in: "2026-07-01", wantNil: true},
		{name: "missing both", wantNil: true},
		{name: "malformed", in: "07/01/2026", out: "2026-07-05", wantError: true},
		{name: "inverted", in: "2026-07-05", out: "2026-07-01", wantError: true},
		{name: "same day", in: "2026-07-05", out: "2026-07-05", wantError: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stay, err := usecases.ParseStay(tc.in, tc.out)
			if tc.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tc.wantNil {
				assert.Nil(t, stay)
				return
			}
			require.NotNil(t, stay)
			assert.Equal(t, tc.nights, stay.Nights())
		})
	}
}

func TestParseStay_InvertedIsSentinel(t *testing.T) {
	_, err := usecases.ParseStay("2026-07-05", "2026-07-01")
	assert.ErrorIs(t, err, domain.ErrInvalidStay)
}
