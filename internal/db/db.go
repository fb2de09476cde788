// Package db provides PostgreSQL storage for essay analyses.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect opens a pool and verifies it with a ping.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

const schema = `
CREATE TABLE IF NOT EXISTS essay_analyses (
	id               UUID PRIMARY KEY,
	student_name     TEXT NOT NULL DEFAULT '',
	class_name       TEXT NOT NULL DEFAULT '',
	theme            TEXT NOT NULL DEFAULT '',
	title            TEXT NOT NULL DEFAULT '',
	total_score      INTEGER NOT NULL,
	report           JSONB NOT NULL,
	teacher_comments TEXT NOT NULL DEFAULT '',
	archive_path     TEXT NOT NULL DEFAULT '',
	created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS essay_analyses_class_idx ON essay_analyses (class_name, created_at DESC);
`

// Migrate creates the essay_analyses table and its index when missing.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
