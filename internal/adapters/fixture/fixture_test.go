package fixture

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samirrijal/stayfinder/internal/core/domain"
)

func TestSample(t *testing.T) {
	repo, err := Sample()
	require.NoError(t, err)

	listings, err := repo.List(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, listings)
	assert.Equal(t, "l-1001", listings[0].ID)

	l, err := repo.GetByID(context.Background(), "l-1014")
	require.NoError(t, err)
	assert.Equal(t, "Paris, France", l.LocationName)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := NewRepo(nil)
	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestUpsertBatch_KeepsOrder(t *testing.T) {
	repo := NewRepo([]domain.Listing{{ID: "a", Price: 1}, {ID: "b", Price: 2}})
	err := repo.UpsertBatch(context.Background(), []domain.Listing{{ID: "a", Price: 10}, {ID: "c", Price: 3}})
	require.NoError(t, err)

	listings, _ := repo.List(context.Background())
	require.Len(t, listings, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{listings[0].ID, listings[1].ID, listings[2].ID})
	assert.Equal(t, 10.0, listings[0].Price)
}

func TestList_ReturnsCopy(t *testing.T) {
	repo := NewRepo([]domain.Listing{{ID: "a", Title: "A"}})
	listings, _ := repo.List(context.Background())
	listings[0].Title = "changed"

	again, _ := repo.List(context.Background())
	assert.Equal(t, "A", again[0].Title)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"valid", `[{"id":"a","price":1},{"id":"b","price":0}]`, ""},
		{"missing id", `[{"price":1}]`, "missing id"},
		{"duplicate", `[{"id":"a"},{"id":"a"}]`, "duplicate id"},
		{"negative", `[{"id":"a","price":-1}]`, "negative price"},
		{"not json", `{`, "decode catalog"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data))
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"x","title":"X","location_name":"Paris, France","price":99}]`), 0o600))

	listings, err := Load(path)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, 99.0, listings[0].Price)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
