// Package vectorindex provides the nearest-neighbor evidence store keyed by
// document id. Two implementations exist: a pgvector-backed store sharing
// the primary Postgres, and an exact in-memory store for tests and small
// corpora. Both are upsert-by-doc-id and search by L2 distance.
package vectorindex

import (
	"context"
	"errors"
	"fmt"
)

// ErrDimensionMismatch is returned when a vector's length differs from the
// store's configured dimension.
var ErrDimensionMismatch = errors.New("vector dimension mismatch")

// Match is one search hit, ascending by Distance.
type Match struct {
	ExternalID string
	DocID      string
	Distance   float64
	Metadata   map[string]any
}

// Store is the vector index capability. The wire protocol behind it is an
// implementation detail; callers only see document ids and distances.
type Store interface {
	// Insert upserts the vector for docID and returns the index handle.
	Insert(ctx context.Context, docID string, vector []float32, metadata map[string]any) (string, error)
	// Search returns up to topK nearest matches by L2 distance.
	Search(ctx context.Context, vector []float32, topK int) ([]Match, error)
	// Delete removes the vector for docID. Unknown ids are not an error.
	Delete(ctx context.Context, docID string) error
	// Flush makes pending writes visible to search.
	Flush(ctx context.Context) error
}

func checkDimension(dim int, vector []float32) error {
	if len(vector) != dim {
		return fmt.Errorf("%w: got %d, store dimension %d", ErrDimensionMismatch, len(vector), dim)
	}
	return nil
}
