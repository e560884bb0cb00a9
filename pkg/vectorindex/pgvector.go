package vectorindex

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pgvector/pgvector-go"
)

// PgStore keeps embeddings in the evidence_vectors table on the primary
// Postgres. IVF-flat gives approximate search once the planner opts in;
// small corpora fall back to sequential scan, which is exact.
type PgStore struct {
	db  *sql.DB
	dim int
}

// NewPgStore creates a pgvector-backed store over an existing pool.
func NewPgStore(db *sql.DB, dim int) *PgStore {
	if db == nil {
		panic("vectorindex.NewPgStore: db must not be nil")
	}
	if dim <= 0 {
		panic("vectorindex.NewPgStore: dimension must be positive")
	}
	return &PgStore{db: db, dim: dim}
}

// EnsureSchema creates the extension, table, and index when missing. The
// baseline migration does the same; tests that build their schema through
// Ent call this directly.
func (s *PgStore) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE EXTENSION IF NOT EXISTS vector`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS evidence_vectors (
			id BIGSERIAL PRIMARY KEY,
			doc_id TEXT NOT NULL UNIQUE,
			embedding vector(%d) NOT NULL,
			metadata JSONB NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, s.dim),
		`CREATE INDEX IF NOT EXISTS idx_evidence_vectors_embedding
			ON evidence_vectors USING ivfflat (embedding vector_l2_ops) WITH (lists = 100)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure vector schema: %w", err)
		}
	}
	return nil
}

// Insert implements Store.
func (s *PgStore) Insert(ctx context.Context, docID string, vector []float32, metadata map[string]any) (string, error) {
	if err := checkDimension(s.dim, vector); err != nil {
		return "", err
	}

	var metaJSON []byte
	if metadata != nil {
		var err error
		metaJSON, err = json.Marshal(metadata)
		if err != nil {
			return "", fmt.Errorf("marshal vector metadata: %w", err)
		}
	}

	var id int64
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO evidence_vectors (doc_id, embedding, metadata)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (doc_id) DO UPDATE
		 SET embedding = EXCLUDED.embedding, metadata = EXCLUDED.metadata
		 RETURNING id`,
		docID, pgvector.NewVector(vector), metaJSON,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("upsert vector for %s: %w", docID, err)
	}
	return strconv.FormatInt(id, 10), nil
}

// Search implements Store.
func (s *PgStore) Search(ctx context.Context, vector []float32, topK int) ([]Match, error) {
	if err := checkDimension(s.dim, vector); err != nil {
		return nil, err
	}
	if topK <= 0 {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, doc_id, metadata, embedding <-> $1 AS distance
		 FROM evidence_vectors
		 ORDER BY embedding <-> $1
		 LIMIT $2`,
		pgvector.NewVector(vector), topK,
	)
	if err != nil {
		return nil, fmt.Errorf("vector search: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var (
			id       int64
			docID    string
			metaJSON []byte
			distance float64
		)
		if err := rows.Scan(&id, &docID, &metaJSON, &distance); err != nil {
			return nil, fmt.Errorf("scan vector match: %w", err)
		}
		m := Match{
			ExternalID: strconv.FormatInt(id, 10),
			DocID:      docID,
			Distance:   distance,
		}
		if len(metaJSON) > 0 {
			if err := json.Unmarshal(metaJSON, &m.Metadata); err != nil {
				return nil, fmt.Errorf("decode vector metadata: %w", err)
			}
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vector matches: %w", err)
	}
	return matches, nil
}

// Delete implements Store.
func (s *PgStore) Delete(ctx context.Context, docID string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM evidence_vectors WHERE doc_id = $1`, docID); err != nil {
		return fmt.Errorf("delete vector for %s: %w", docID, err)
	}
	return nil
}

// Flush implements Store. Writes are durable on commit; ANALYZE keeps the
// ivfflat planner statistics fresh after bulk loads.
func (s *PgStore) Flush(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `ANALYZE evidence_vectors`); err != nil {
		return fmt.Errorf("flush vector index: %w", err)
	}
	return nil
}
