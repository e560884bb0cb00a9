package embedding

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingEmbedder struct {
	dim int
}

func (f *failingEmbedder) Embed(context.Context, string) ([]float32, error) {
	return nil, errors.New("service down")
}

func (f *failingEmbedder) EmbedBatch(context.Context, []string) ([][]float32, error) {
	return nil, errors.New("service down")
}

func (f *failingEmbedder) Dimension() int    { return f.dim }
func (f *failingEmbedder) ModelName() string { return "failing" }

func TestFailoverUsesPrimaryWhenHealthy(t *testing.T) {
	primary := NewHashEmbedder(16)
	fallback := &failingEmbedder{dim: 16}
	f := NewFailover(primary, fallback, slog.Default())

	vec, err := f.Embed(context.Background(), "text")
	require.NoError(t, err)
	assert.Len(t, vec, 16)
	assert.Equal(t, HashModelName, f.ModelName())
}

func TestFailoverFallsBack(t *testing.T) {
	primary := &failingEmbedder{dim: 16}
	fallback := NewHashEmbedder(16)
	f := NewFailover(primary, fallback, slog.Default())

	vec, err := f.Embed(context.Background(), "text")
	require.NoError(t, err)
	want, _ := fallback.Embed(context.Background(), "text")
	assert.Equal(t, want, vec)

	vecs, err := f.EmbedBatch(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	assert.Len(t, vecs, 2)
}

func TestFailoverHonorsCancellation(t *testing.T) {
	primary := &failingEmbedder{dim: 16}
	fallback := NewHashEmbedder(16)
	f := NewFailover(primary, fallback, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := f.Embed(ctx, "text")
	require.ErrorIs(t, err, context.Canceled)
}

func TestFailoverPanicsOnDimensionMismatch(t *testing.T) {
	assert.Panics(t, func() {
		NewFailover(NewHashEmbedder(8), NewHashEmbedder(16), slog.Default())
	})
}
