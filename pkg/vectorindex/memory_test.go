package vectorindex

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vec(dim int, fill float32) []float32 {
	v := make([]float32, dim)
	for i := range v {
		v[i] = fill
	}
	return v
}

func TestMemStore_DimensionEnforced(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore(4)

	_, err := s.Insert(ctx, "doc-1", vec(3, 1), nil)
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = s.Search(ctx, vec(5, 1), 3)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestMemStore_UpsertReplacesByDocID(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore(2)

	id1, err := s.Insert(ctx, "doc-1", []float32{0, 0}, map[string]any{"v": 1})
	require.NoError(t, err)

	id2, err := s.Insert(ctx, "doc-1", []float32{3, 4}, map[string]any{"v": 2})
	require.NoError(t, err)

	// Re-insertion replaces in place: same handle, one entry.
	assert.Equal(t, id1, id2)
	assert.Equal(t, 1, s.Len())

	matches, err := s.Search(ctx, []float32{3, 4}, 1)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "doc-1", matches[0].DocID)
	assert.InDelta(t, 0, matches[0].Distance, 1e-9)
	assert.Equal(t, map[string]any{"v": 2}, matches[0].Metadata)
}

func TestMemStore_SearchOrdersByL2(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore(2)

	_, err := s.Insert(ctx, "far", []float32{10, 10}, nil)
	require.NoError(t, err)
	_, err = s.Insert(ctx, "near", []float32{1, 0}, nil)
	require.NoError(t, err)
	_, err = s.Insert(ctx, "mid", []float32{3, 0}, nil)
	require.NoError(t, err)

	matches, err := s.Search(ctx, []float32{0, 0}, 2)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "near", matches[0].DocID)
	assert.Equal(t, "mid", matches[1].DocID)
	assert.Less(t, matches[0].Distance, matches[1].Distance)
}

func TestMemStore_TopKBounds(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore(2)

	for _, id := range []string{"a", "b", "c"} {
		_, err := s.Insert(ctx, id, []float32{1, 1}, nil)
		require.NoError(t, err)
	}

	matches, err := s.Search(ctx, []float32{0, 0}, 10)
	require.NoError(t, err)
	assert.Len(t, matches, 3)

	matches, err = s.Search(ctx, []float32{0, 0}, 0)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestMemStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore(2)

	_, err := s.Insert(ctx, "doc-1", []float32{1, 1}, nil)
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "doc-1"))
	require.NoError(t, s.Delete(ctx, "doc-1")) // unknown id is fine

	matches, err := s.Search(ctx, []float32{1, 1}, 5)
	require.NoError(t, err)
	assert.Empty(t, matches)
}
