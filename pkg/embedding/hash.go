package embedding

import (
	"context"
	"crypto/md5"
	"math"
)

// HashModelName marks vectors that came from the hash fallback in
// model-version records.
const HashModelName = "hash-fallback"

// HashEmbedder produces deterministic pseudo-embeddings by chaining MD5
// digests of the input text. The vectors carry no semantics, but they are
// stable across processes, so identical texts still retrieve each other
// while the real encoder is unreachable.
type HashEmbedder struct {
	dim int
}

// NewHashEmbedder creates a hash embedder with the given dimension.
func NewHashEmbedder(dim int) *HashEmbedder {
	if dim <= 0 {
		panic("embedding.NewHashEmbedder: dimension must be positive")
	}
	return &HashEmbedder{dim: dim}
}

// Embed implements Embedder. The result is L2-normalized.
func (e *HashEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	vec := make([]float32, e.dim)
	block := md5.Sum([]byte(text))
	for i := range vec {
		if i > 0 && i%md5.Size == 0 {
			block = md5.Sum(block[:])
		}
		vec[i] = float32(block[i%md5.Size])/127.5 - 1
	}
	normalize(vec)
	return vec, nil
}

// EmbedBatch implements Embedder.
func (e *HashEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vecs := make([][]float32, len(texts))
	for i, text := range texts {
		vec, err := e.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		vecs[i] = vec
	}
	return vecs, nil
}

// Dimension implements Embedder.
func (e *HashEmbedder) Dimension() int { return e.dim }

// ModelName implements Embedder.
func (e *HashEmbedder) ModelName() string { return HashModelName }

func normalize(vec []float32) {
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	if sum == 0 {
		return
	}
	inv := 1 / math.Sqrt(sum)
	for i := range vec {
		vec[i] = float32(float64(vec[i]) * inv)
	}
}
