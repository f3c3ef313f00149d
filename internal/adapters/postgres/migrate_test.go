package postgres_test

import (
	"strings"
	"testing"

	"github.com/samirrijal/stayfinder/internal/adapters/postgres"
)

func TestMigrations(t *testing.T) {
	migrations, err := postgres.Migrations()
	if err != nil {
		t.Fatalf("migrations: %v", err)
	}
	if len(migrations) == 0 {
		t.Fatal("expected embedded migrations")
	}
	for i, m := range migrations {
		if i > 0 && migrations[i-1].Name >= m.Name {
			t.Errorf("migrations out of order: %s before %s", migrations[i-1].Name, m.Name)
		}
		if !strings.Contains(m.SQL, "IF NOT EXISTS") {
			t.Errorf("%s should be idempotent", m.Name)
		}
	}
}
