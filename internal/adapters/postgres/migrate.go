package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migration is one schema file applied by Migrate.
type Migration struct {
	Name string
	SQL  string
}

// Migrations returns the embedded schema files in apply order.
func Migrations() ([]Migration, error) {
	names, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	out := make([]Migration, 0, len(names))
	for _, name := range names {
		data, err := migrations.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		out = append(out, Migration{Name: name, SQL: string(data)})
	}
	return out, nil
}

// Migrate applies every embedded migration. Files are idempotent, so running
// it twice is harmless. applied is called after each file.
func (db *DB) Migrate(ctx context.Context, applied func(name string)) error {
	files, err := Migrations()
	if err != nil {
		return err
	}
	for _, m := range files {
		if _, err := db.Pool.Exec(ctx, m.SQL); err != nil {
			return fmt.Errorf("exec %s: %w", m.Name, err)
		}
		if applied != nil {
			applied(m.Name)
		}
	}
	return nil
}

// Reset drops the listing schema.
func (db *DB) Reset(ctx context.Context) error {
	_, err := db.Pool.Exec(ctx, `DROP TABLE IF EXISTS listings`)
	return err
}
