package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factforge/factforge/ent/auditrecord"
	"github.com/factforge/factforge/ent/crawleditem"
	"github.com/factforge/factforge/ent/reviewentry"
	entuser "github.com/factforge/factforge/ent/user"
	"github.com/factforge/factforge/ent/vectorrecord"
	"github.com/factforge/factforge/pkg/audit"
	"github.com/factforge/factforge/pkg/events"
	"github.com/factforge/factforge/pkg/models"
	testdb "github.com/factforge/factforge/test/database"
)

func TestReviewService_Queue(t *testing.T) {
	client := testdb.NewTestClient(t)
	fix := newReviewFixture(t, client.Client)
	ctx := context.Background()

	low := createTestItem(t, client.Client, crawleditem.LabelNeedsReview)
	mid := createTestItem(t, client.Client, crawleditem.LabelNeedsReview)
	high := createTestItem(t, client.Client, crawleditem.LabelNeedsReview)

	createTestEntry(t, client.Client, low.ID, reviewentry.StatusPending, 3)
	createTestEntry(t, client.Client, mid.ID, reviewentry.StatusPending, 5)
	createTestEntry(t, client.Client, high.ID, reviewentry.StatusPending, 10)

	decided := createTestItem(t, client.Client, crawleditem.LabelScam)
	createTestEntry(t, client.Client, decided.ID, reviewentry.StatusApproved, 3)

	t.Run("orders by priority desc and reports pending total", func(t *testing.T) {
		resp, err := fix.service.Queue(ctx, models.ReviewQueueFilters{Status: "pending"})
		require.NoError(t, err)

		require.Len(t, resp.Items, 3)
		assert.Equal(t, high.ID, resp.Items[0].DocID)
		assert.Equal(t, mid.ID, resp.Items[1].DocID)
		assert.Equal(t, low.ID, resp.Items[2].DocID)
		assert.Equal(t, 3, resp.TotalPending)

		// Doc summaries ride along.
		assert.Equal(t, high.URL, resp.Items[0].Doc.URL)
		assert.Equal(t, "needs_review", resp.Items[0].Doc.Label)
	})

	t.Run("equal priority breaks ties oldest first", func(t *testing.T) {
		older := createTestItem(t, client.Client, crawleditem.LabelNeedsReview)
		newer := createTestItem(t, client.Client, crawleditem.LabelNeedsReview)

		first, err := client.Client.ReviewEntry.Create().
			SetID("tie-older").
			SetDocID(older.ID).
			SetPriority(7).
			SetCreatedAt(time.Now().Add(-time.Hour)).
			Save(ctx)
		require.NoError(t, err)
		_, err = client.Client.ReviewEntry.Create().
			SetID("tie-newer").
			SetDocID(newer.ID).
			SetPriority(7).
			Save(ctx)
		require.NoError(t, err)

		resp, err := fix.service.Queue(ctx, models.ReviewQueueFilters{Status: "pending", Limit: 2})
		require.NoError(t, err)
		require.Len(t, resp.Items, 2)
		// priority 10 entry still first, then the older of the 7s.
		assert.Equal(t, high.ID, resp.Items[0].DocID)
		assert.Equal(t, first.ID, resp.Items[1].ID)
	})

	t.Run("status filter", func(t *testing.T) {
		resp, err := fix.service.Queue(ctx, models.ReviewQueueFilters{Status: "approved"})
		require.NoError(t, err)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, decided.ID, resp.Items[0].DocID)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		_, err := fix.service.Queue(ctx, models.ReviewQueueFilters{Status: "limbo"})
		assert.True(t, IsValidationError(err))
	})
}

func TestReviewService_Assign(t *testing.T) {
	client := testdb.NewTestClient(t)
	fix := newReviewFixture(t, client.Client)
	ctx := context.Background()

	reviewer := createTestUser(t, client.Client, entuser.RoleReviewer)
	other := createTestUser(t, client.Client, entuser.RoleReviewer)

	t.Run("claims a pending entry", func(t *testing.T) {
		item := createTestItem(t, client.Client, crawleditem.LabelNeedsReview)
		entry := createTestEntry(t, client.Client, item.ID, reviewentry.StatusPending, 3)

		got, err := fix.service.Assign(ctx, entry.ID, reviewer.ID)
		require.NoError(t, err)
		assert.Equal(t, reviewentry.StatusInReview, got.Status)
		require.NotNil(t, got.AssignedTo)
		assert.Equal(t, reviewer.ID, *got.AssignedTo)
	})

	t.Run("re-assign by the holder is a no-op", func(t *testing.T) {
		item := createTestItem(t, client.Client, crawleditem.LabelNeedsReview)
		entry := createTestEntry(t, client.Client, item.ID, reviewentry.StatusPending, 3)

		_, err := fix.service.Assign(ctx, entry.ID, reviewer.ID)
		require.NoError(t, err)

		got, err := fix.service.Assign(ctx, entry.ID, reviewer.ID)
		require.NoError(t, err)
		assert.Equal(t, reviewentry.StatusInReview, got.Status)
	})

	t.Run("conflict when held by someone else", func(t *testing.T) {
		item := createTestItem(t, client.Client, crawleditem.LabelNeedsReview)
		entry := createTestEntry(t, client.Client, item.ID, reviewentry.StatusPending, 3)

		_, err := fix.service.Assign(ctx, entry.ID, reviewer.ID)
		require.NoError(t, err)

		_, err = fix.service.Assign(ctx, entry.ID, other.ID)
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("conflict when already decided", func(t *testing.T) {
		item := createTestItem(t, client.Client, crawleditem.LabelBenign)
		entry := createTestEntry(t, client.Client, item.ID, reviewentry.StatusRejected, 3)

		_, err := fix.service.Assign(ctx, entry.ID, reviewer.ID)
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := fix.service.Assign(ctx, "missing", reviewer.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestReviewService_Act(t *testing.T) {
	client := testdb.NewTestClient(t)
	fix := newReviewFixture(t, client.Client)
	ctx := context.Background()

	reviewer := createTestUser(t, client.Client, entuser.RoleReviewer)

	t.Run("approve relabels, indexes, audits, emits", func(t *testing.T) {
		item := createTestItem(t, client.Client, crawleditem.LabelNeedsReview)
		entry := createTestEntry(t, client.Client, item.ID, reviewentry.StatusPending, 5)

		got, err := fix.service.Act(ctx, entry.ID, reviewer.ID, models.ReviewActionApprove, "clear scam")
		require.NoError(t, err)
		assert.Equal(t, reviewentry.StatusApproved, got.Status)
		require.NotNil(t, got.Note)
		assert.Equal(t, "clear scam", *got.Note)

		// Deciding a pending entry claims it in the same stroke.
		require.NotNil(t, got.AssignedTo)
		assert.Equal(t, reviewer.ID, *got.AssignedTo)

		// Item flipped to scam.
		reloaded, err := client.Client.CrawledItem.Get(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, crawleditem.LabelScam, reloaded.Label)

		// Vector landed in the index with its bookkeeping row.
		assert.Equal(t, 1, fix.store.Len())
		record, err := client.Client.VectorRecord.Query().
			Where(vectorrecord.DocIDEQ(item.ID)).
			Only(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, record.ExternalID)

		// Audit trail and bus event.
		audits, err := client.Client.AuditRecord.Query().
			Where(auditrecord.EventTypeEQ(audit.EventReviewAction)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, audits, 1)
		assert.Equal(t, "approve", audits[0].Payload["action"])

		published := fix.recorder.ByType(events.EventReviewAction)
		require.Len(t, published, 1)
		assert.Equal(t, events.RoleTarget("reviewer"), published[0].Target)
	})

	t.Run("reject relabels benign without touching the index", func(t *testing.T) {
		item := createTestItem(t, client.Client, crawleditem.LabelNeedsReview)
		entry := createTestEntry(t, client.Client, item.ID, reviewentry.StatusInReview, 3)

		before := fix.store.Len()
		got, err := fix.service.Act(ctx, entry.ID, reviewer.ID, models.ReviewActionReject, "")
		require.NoError(t, err)
		assert.Equal(t, reviewentry.StatusRejected, got.Status)

		reloaded, err := client.Client.CrawledItem.Get(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, crawleditem.LabelBenign, reloaded.Label)
		assert.Equal(t, before, fix.store.Len())
	})

	t.Run("escalate jumps the queue and keeps the label", func(t *testing.T) {
		item := createTestItem(t, client.Client, crawleditem.LabelNeedsReview)
		entry := createTestEntry(t, client.Client, item.ID, reviewentry.StatusPending, 3)

		got, err := fix.service.Act(ctx, entry.ID, reviewer.ID, models.ReviewActionEscalate, "needs a senior look")
		require.NoError(t, err)
		assert.Equal(t, reviewentry.StatusEscalated, got.Status)
		assert.Equal(t, models.EscalatedPriority, got.Priority)

		reloaded, err := client.Client.CrawledItem.Get(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, crawleditem.LabelNeedsReview, reloaded.Label)
	})

	t.Run("conflict once decided", func(t *testing.T) {
		item := createTestItem(t, client.Client, crawleditem.LabelNeedsReview)
		entry := createTestEntry(t, client.Client, item.ID, reviewentry.StatusPending, 3)

		_, err := fix.service.Act(ctx, entry.ID, reviewer.ID, models.ReviewActionReject, "")
		require.NoError(t, err)

		_, err = fix.service.Act(ctx, entry.ID, reviewer.ID, models.ReviewActionApprove, "")
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("unknown action rejected", func(t *testing.T) {
		item := createTestItem(t, client.Client, crawleditem.LabelNeedsReview)
		entry := createTestEntry(t, client.Client, item.ID, reviewentry.StatusPending, 3)

		_, err := fix.service.Act(ctx, entry.ID, reviewer.ID, models.ReviewAction("shrug"), "")
		assert.True(t, IsValidationError(err))
	})

	t.Run("not found", func(t *testing.T) {
		_, err := fix.service.Act(ctx, "missing", reviewer.ID, models.ReviewActionApprove, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

// Two reviewers deciding the same pending entry must resolve to exactly one
// winner: one approved transition, one vector, one audit record.
func TestReviewService_ActRace(t *testing.T) {
	client := testdb.NewTestClient(t)
	fix := newReviewFixture(t, client.Client)
	ctx := context.Background()

	alice := createTestUser(t, client.Client, entuser.RoleReviewer)
	bob := createTestUser(t, client.Client, entuser.RoleReviewer)

	item := createTestItem(t, client.Client, crawleditem.LabelNeedsReview)
	entry := createTestEntry(t, client.Client, item.ID, reviewentry.StatusPending, 5)

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for _, reviewerID := range []string{alice.ID, bob.ID} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := fix.service.Act(ctx, entry.ID, id, models.ReviewActionApprove, "")
			errs <- err
		}(reviewerID)
	}
	wg.Wait()
	close(errs)

	var wins, conflicts int
	for err := range errs {
		if err == nil {
			wins++
			continue
		}
		assert.ErrorIs(t, err, ErrConflict)
		conflicts++
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, 1, conflicts)

	// Exactly one vector and one bookkeeping row.
	assert.Equal(t, 1, fix.store.Len())
	records, err := client.Client.VectorRecord.Query().
		Where(vectorrecord.DocIDEQ(item.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, records)

	// Exactly one audit entry for the action.
	audits, err := client.Client.AuditRecord.Query().
		Where(auditrecord.EventTypeEQ(audit.EventReviewAction)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, audits)

	reloaded, err := client.Client.CrawledItem.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, crawleditem.LabelScam, reloaded.Label)
}

func TestReviewService_Stats(t *testing.T) {
	client := testdb.NewTestClient(t)
	fix := newReviewFixture(t, client.Client)
	ctx := context.Background()

	me := createTestUser(t, client.Client, entuser.RoleReviewer)
	other := createTestUser(t, client.Client, entuser.RoleReviewer)

	seed := []struct {
		status   reviewentry.Status
		assignee string
	}{
		{reviewentry.StatusPending, ""},
		{reviewentry.StatusPending, me.ID},
		{reviewentry.StatusInReview, me.ID},
		{reviewentry.StatusInReview, other.ID},
		{reviewentry.StatusApproved, other.ID},
		{reviewentry.StatusEscalated, ""},
	}
	for _, s := range seed {
		item := createTestItem(t, client.Client, crawleditem.LabelNeedsReview)
		builder := client.Client.ReviewEntry.Create().
			SetID(item.ID + "-entry").
			SetDocID(item.ID).
			SetStatus(s.status)
		if s.assignee != "" {
			builder.SetAssignedTo(s.assignee)
		}
		_, err := builder.Save(ctx)
		require.NoError(t, err)
	}

	stats, err := fix.service.Stats(ctx, me.ID)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Pending)
	assert.Equal(t, 2, stats.InReview)
	assert.Equal(t, 1, stats.Approved)
	assert.Equal(t, 0, stats.Rejected)
	assert.Equal(t, 1, stats.Escalated)
	// Active entries assigned to me: one pending + one in_review.
	assert.Equal(t, 2, stats.MyAssigned)
}

func TestReviewService_GetEntry(t *testing.T) {
	client := testdb.NewTestClient(t)
	fix := newReviewFixture(t, client.Client)
	ctx := context.Background()

	item := createTestItem(t, client.Client, crawleditem.LabelNeedsReview)
	entry := createTestEntry(t, client.Client, item.ID, reviewentry.StatusPending, 3)

	got, err := fix.service.GetEntry(ctx, entry.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Edges.Doc)
	assert.Equal(t, item.URL, got.Edges.Doc.URL)

	_, err = fix.service.GetEntry(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
