package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// EnsureAuxiliaryObjects creates the database objects that Ent/Atlas cannot
// express: the pgvector extension, the events table used as LISTEN/NOTIFY
// transport, a partial unique index guaranteeing a single active model
// version, and a full-text GIN index over clean text. All statements are
// idempotent, so tests that build their schema through Ent call this too.
func EnsureAuxiliaryObjects(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	stmts := []struct {
		name string
		sql  string
	}{
		{
			name: "vector extension",
			sql:  `CREATE EXTENSION IF NOT EXISTS vector`,
		},
		{
			name: "events table",
			sql: `CREATE TABLE IF NOT EXISTS events (
				id BIGSERIAL PRIMARY KEY,
				target TEXT NOT NULL DEFAULT 'all',
				payload TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)`,
		},
		{
			name: "events created_at index",
			sql:  `CREATE INDEX IF NOT EXISTS idx_events_created_at ON events (created_at)`,
		},
		{
			name: "single active model version",
			sql: `CREATE UNIQUE INDEX IF NOT EXISTS model_versions_single_active
				ON model_versions ((is_active))
				WHERE is_active`,
		},
		{
			name: "clean_text GIN index",
			sql: `CREATE INDEX IF NOT EXISTS idx_crawled_items_clean_text_gin
				ON crawled_items USING gin(to_tsvector('simple', clean_text))`,
		},
	}

	for _, s := range stmts {
		if _, err := db.ExecContext(ctx, s.sql); err != nil {
			return fmt.Errorf("failed to create %s: %w", s.name, err)
		}
	}

	return nil
}
