package textmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsFold(t *testing.T) {
	tests := []struct {
		s, substr string
		want      bool
	}{
		{"Malibu, California", "malibu", true},
		{"Malibu, California", "MALIBU", true},
		{"Malibu, California", "CALIF", true},
		{"Malibu, California", "", true},
		{"", "", true},
		{"", "a", false},
		{"Malibu, California", "nonexistent-place", false},
		{"Zürich", "ZÜRICH", true},
		{"Zürich", "zurich", false},
		{"Straße am See", "STRASSE", false},
		{"Straße am See", "STRAßE", true},
		{"STRASSE 5", "strasse", true},
	}
	for _, tc := range tests {
		t.Run(tc.s+"/"+tc.substr, func(t *testing.T) {
			assert.Equal(t, tc.want, ContainsFold(tc.s, tc.substr))
		})
	}
}

func TestMatcher(t *testing.T) {
	m := NewMatcher("Beach")
	assert.False(t, m.Empty())
	assert.True(t, m.In("Miami Beach, Florida"))
	assert.True(t, m.In("BEACHFRONT villa"))
	assert.False(t, m.In("Aspen, Colorado"))

	empty := NewMatcher("")
	assert.True(t, empty.Empty())
	assert.True(t, empty.In("anything"))
}

func TestLower(t *testing.T) {
	assert.Equal(t, "malibu, california", Lower("Malibu, California"))
	assert.Equal(t, "straße", Lower("STRAßE"))
	assert.Equal(t, "zürich", Lower("ZÜRICH"))
}
