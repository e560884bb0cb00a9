// Package embedding provides the text encoders behind the vector index:
// the multilingual sidecar used in production, a deterministic hash
// fallback, and a failover wrapper combining the two.
package embedding

import "context"

// DefaultDimension matches the multilingual MiniLM encoder the system
// ships with.
const DefaultDimension = 384

// DefaultModel is the sentence encoder served by the embedding sidecar.
const DefaultModel = "paraphrase-multilingual-MiniLM-L12-v2"

// Embedder turns text into fixed-dimension vectors.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	// Dimension is the length of every vector this embedder returns.
	Dimension() int
	// ModelName identifies the encoder for model-version records.
	ModelName() string
}
