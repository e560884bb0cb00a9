package embedding

import (
	"context"
	"log/slog"
)

// Failover tries the primary embedder and falls back on error. Vectors from
// the fallback are only consistent with other fallback vectors, so retrieval
// quality degrades during an outage but ingestion never stalls.
type Failover struct {
	primary  Embedder
	fallback Embedder
	logger   *slog.Logger
}

// NewFailover wraps primary with fallback. Both must share a dimension.
func NewFailover(primary, fallback Embedder, logger *slog.Logger) *Failover {
	if primary == nil {
		panic("embedding.NewFailover: primary must not be nil")
	}
	if fallback == nil {
		panic("embedding.NewFailover: fallback must not be nil")
	}
	if logger == nil {
		panic("embedding.NewFailover: logger must not be nil")
	}
	if primary.Dimension() != fallback.Dimension() {
		panic("embedding.NewFailover: primary and fallback dimensions differ")
	}
	return &Failover{
		primary:  primary,
		fallback: fallback,
		logger:   logger.With("component", "embedding.failover"),
	}
}

// Embed implements Embedder.
func (f *Failover) Embed(ctx context.Context, text string) ([]float32, error) {
	vec, err := f.primary.Embed(ctx, text)
	if err == nil {
		return vec, nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	f.logger.Warn("primary embedder failed, using fallback",
		"primary", f.primary.ModelName(),
		"error", err)
	return f.fallback.Embed(ctx, text)
}

// EmbedBatch implements Embedder.
func (f *Failover) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vecs, err := f.primary.EmbedBatch(ctx, texts)
	if err == nil {
		return vecs, nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	f.logger.Warn("primary embedder failed, using fallback",
		"primary", f.primary.ModelName(),
		"error", err)
	return f.fallback.EmbedBatch(ctx, texts)
}

// Dimension implements Embedder.
func (f *Failover) Dimension() int { return f.primary.Dimension() }

// ModelName implements Embedder.
func (f *Failover) ModelName() string { return f.primary.ModelName() }
