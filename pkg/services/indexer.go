package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/factforge/factforge/ent"
	"github.com/factforge/factforge/ent/vectorrecord"
	"github.com/factforge/factforge/pkg/embedding"
	"github.com/factforge/factforge/pkg/models"
	"github.com/factforge/factforge/pkg/vectorindex"
)

// Indexer ties the vector index to its database bookkeeping. Auto-labeled
// and reviewer-approved scam documents go through the same path: embed the
// clean text, upsert the vector in the index, upsert the VectorRecord row
// inside the caller's transaction.
//
// The index write happens before the transaction commits; callers that see
// the commit fail should call Unindex to take the orphaned vector back out.
type Indexer struct {
	store    vectorindex.Store
	embedder embedding.Embedder
}

// NewIndexer creates a new Indexer
func NewIndexer(store vectorindex.Store, embedder embedding.Embedder) *Indexer {
	if store == nil {
		panic("Indexer requires a non-nil vector store")
	}
	if embedder == nil {
		panic("Indexer requires a non-nil embedder")
	}
	return &Indexer{store: store, embedder: embedder}
}

// Embed produces the vector for a document's clean text.
func (ix *Indexer) Embed(ctx context.Context, text string) ([]float32, error) {
	vec, err := ix.embedder.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to embed text: %w", err)
	}
	return vec, nil
}

// ModelName identifies the encoder backing the index.
func (ix *Indexer) ModelName() string {
	return ix.embedder.ModelName()
}

// evidenceSampleRunes bounds the text sample carried in vector metadata.
// The check pipeline quotes the sample to the LLM as evidence, so it has to
// stay prompt-sized.
const evidenceSampleRunes = 500

// Index upserts the vector for item into the index and writes the
// VectorRecord row through tx. The vector must have been produced from the
// item's current clean text (usually via Embed, done before the
// transaction starts so the sidecar call does not hold a connection open).
func (ix *Indexer) Index(ctx context.Context, tx *ent.Tx, item *ent.CrawledItem, vector []float32) error {
	metadata := map[string]any{
		"url":         item.URL,
		"domain":      item.Domain,
		"label":       string(models.LabelScam),
		"language":    string(item.Language),
		"text_sample": sampleText(item.CleanText),
	}

	externalID, err := ix.store.Insert(ctx, item.ID, vector, metadata)
	if err != nil {
		return fmt.Errorf("failed to insert vector for %s: %w", item.ID, err)
	}

	existing, err := tx.VectorRecord.Query().
		Where(vectorrecord.DocIDEQ(item.ID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to look up vector record: %w", err)
	}

	if existing != nil {
		_, err = existing.Update().
			SetEmbeddingID(ix.embedder.ModelName()).
			SetExternalID(externalID).
			SetMetadata(metadata).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to update vector record: %w", err)
		}
		return nil
	}

	_, err = tx.VectorRecord.Create().
		SetID(uuid.New().String()).
		SetDocID(item.ID).
		SetEmbeddingID(ix.embedder.ModelName()).
		SetExternalID(externalID).
		SetMetadata(metadata).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to create vector record: %w", err)
	}
	return nil
}

// Unindex removes the vector for docID from the index. Compensation for a
// failed commit; removal of an id that is not indexed is not an error.
func (ix *Indexer) Unindex(ctx context.Context, docID string) error {
	return ix.store.Delete(ctx, docID)
}

func sampleText(s string) string {
	runes := []rune(s)
	if len(runes) <= evidenceSampleRunes {
		return s
	}
	return string(runes[:evidenceSampleRunes])
}
