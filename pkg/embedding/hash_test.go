package embedding

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashEmbedderDeterministic(t *testing.T) {
	e := NewHashEmbedder(DefaultDimension)

	a, err := e.Embed(context.Background(), "मुफ्त पैसा जीतें")
	require.NoError(t, err)
	b, err := e.Embed(context.Background(), "मुफ्त पैसा जीतें")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	other, err := e.Embed(context.Background(), "a completely different text")
	require.NoError(t, err)
	assert.NotEqual(t, a, other)
}

func TestHashEmbedderDimensionAndNorm(t *testing.T) {
	e := NewHashEmbedder(64)

	vec, err := e.Embed(context.Background(), "hello")
	require.NoError(t, err)
	require.Len(t, vec, 64)
	assert.Equal(t, 64, e.Dimension())

	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, math.Sqrt(sum), 0.0001)
}

func TestHashEmbedderBatch(t *testing.T) {
	e := NewHashEmbedder(32)

	vecs, err := e.EmbedBatch(context.Background(), []string{"one", "two", "three"})
	require.NoError(t, err)
	require.Len(t, vecs, 3)

	single, err := e.Embed(context.Background(), "two")
	require.NoError(t, err)
	assert.Equal(t, single, vecs[1])
}

func TestHashEmbedderPanicsOnBadDimension(t *testing.T) {
	assert.Panics(t, func() { NewHashEmbedder(0) })
}
