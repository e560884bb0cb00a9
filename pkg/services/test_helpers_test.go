package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/factforge/factforge/ent"
	"github.com/factforge/factforge/ent/crawleditem"
	"github.com/factforge/factforge/ent/reviewentry"
	entuser "github.com/factforge/factforge/ent/user"
	"github.com/factforge/factforge/pkg/audit"
	"github.com/factforge/factforge/pkg/embedding"
	"github.com/factforge/factforge/pkg/events"
	"github.com/factforge/factforge/pkg/vectorindex"
)

const testVectorDim = 8

// reviewFixture bundles a ReviewService with the fakes behind it so tests
// can assert on the index and bus sides of an action.
type reviewFixture struct {
	service  *ReviewService
	store    *vectorindex.MemStore
	recorder *events.Recorder
	audit    *audit.Service
}

func newReviewFixture(t *testing.T, client *ent.Client) *reviewFixture {
	t.Helper()

	signer, err := audit.NewSigner(bytes.Repeat([]byte("k"), audit.MinKeyBytes))
	require.NoError(t, err)

	store := vectorindex.NewMemStore(testVectorDim)
	recorder := events.NewRecorder()
	auditSvc := audit.NewService(client, signer)
	indexer := NewIndexer(store, embedding.NewHashEmbedder(testVectorDim))

	return &reviewFixture{
		service:  NewReviewService(client, indexer, auditSvc, recorder, nil),
		store:    store,
		recorder: recorder,
		audit:    auditSvc,
	}
}

func createTestItem(t *testing.T, client *ent.Client, label crawleditem.Label) *ent.CrawledItem {
	t.Helper()

	id := uuid.New().String()
	item, err := client.CrawledItem.Create().
		SetID(id).
		SetURL("https://example.com/" + id).
		SetDomain("example.com").
		SetCleanText("free lottery winner claim your prize now").
		SetLanguage(crawleditem.LanguageEn).
		SetLangConfidence(0.99).
		SetHeuristicScore(42).
		SetLabel(label).
		Save(context.Background())
	require.NoError(t, err)
	return item
}

func createTestEntry(t *testing.T, client *ent.Client, docID string, status reviewentry.Status, priority int) *ent.ReviewEntry {
	t.Helper()

	entry, err := client.ReviewEntry.Create().
		SetID(uuid.New().String()).
		SetDocID(docID).
		SetStatus(status).
		SetPriority(priority).
		Save(context.Background())
	require.NoError(t, err)
	return entry
}

func createTestUser(t *testing.T, client *ent.Client, role entuser.Role) *ent.User {
	t.Helper()

	id := uuid.New().String()
	u, err := client.User.Create().
		SetID(id).
		SetUsername("user-" + id).
		SetRole(role).
		Save(context.Background())
	require.NoError(t, err)
	return u
}
