package postgres

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// NewMigrator opens a goose provider on top of the pool. The database/sql
// handle borrows connections from the pool and is not closed separately.
func NewMigrator(pool *pgxpool.Pool, migrations fs.FS) (*goose.Provider, error) {
	db := stdlib.OpenDBFromPool(pool)

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations)
	if err != nil {
		return nil, fmt.Errorf("goose provider: %w", err)
	}
	return provider, nil
}

// MigrateUp applies all pending migrations and returns the number applied.
func MigrateUp(ctx context.Context, pool *pgxpool.Pool, migrations fs.FS) (int, error) {
	provider, err := NewMigrator(pool, migrations)
	if err != nil {
		return 0, err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return len(results), fmt.Errorf("goose up: %w", err)
	}
	return len(results), nil
}
