package storage

import (
	"context"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
)

// sessionPoolConns caps the pool for this single-user deployment: one
// wearable posting packages plus the dashboard and MCP readers.
const sessionPoolConns = 4

// DB is the sessions repository backed by a pgxpool.Pool.
type DB struct {
	Pool *pgxpool.Pool
}

// Open connects to the sessions database and verifies the connection.
// Migrate must have run first (Open does not touch the schema, so
// read-only consumers like the MCP binary can share it).
func Open(ctx context.Context, dsn string) (*DB, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing sessions dsn: %w", err)
	}
	poolCfg.MaxConns = sessionPoolConns

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating sessions pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging sessions database: %w", err)
	}
	return &DB{Pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	db.Pool.Close()
}

// Migrate applies pending sessions-table migrations from the given
// directory.
func Migrate(dsn, migrationsPath string) error {
	m, err := migrate.New("file://"+migrationsPath, dsn)
	if err != nil {
		return fmt.Errorf("creating sessions migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migrating sessions schema: %w", err)
	}
	return nil
}
