package e2e

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factforge/factforge/ent/reviewentry"
	"github.com/factforge/factforge/pkg/audit"
)

// ────────────────────────────────────────────────────────────
// Scenario 6: Two reviewers claim the same entry at once
// ────────────────────────────────────────────────────────────

func TestE2E_ConcurrentAssignSingleWinner(t *testing.T) {
	app := NewTestApp(t)
	_, reviewID := app.SeedReviewItem(t)

	reviewers := []caller{
		{id: "rev-1", role: "reviewer"},
		{id: "rev-2", role: "reviewer"},
	}

	type assignResult struct {
		reviewer string
		status   int
		err      error
	}

	// Both requests release together; require/assert stay off these
	// goroutines, results come back over the channel.
	start := make(chan struct{})
	results := make(chan assignResult, len(reviewers))
	for _, rc := range reviewers {
		go func(rc caller) {
			<-start
			req, err := http.NewRequestWithContext(context.Background(), http.MethodPost,
				app.BaseURL+"/api/review/"+reviewID+"/assign", nil)
			if err != nil {
				results <- assignResult{reviewer: rc.id, err: err}
				return
			}
			req.Header.Set("X-User-ID", rc.id)
			req.Header.Set("X-User-Role", rc.role)
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				results <- assignResult{reviewer: rc.id, err: err}
				return
			}
			_ = resp.Body.Close()
			results <- assignResult{reviewer: rc.id, status: resp.StatusCode}
		}(rc)
	}
	close(start)

	var winner string
	statuses := make([]int, 0, len(reviewers))
	for range reviewers {
		r := <-results
		require.NoError(t, r.err)
		statuses = append(statuses, r.status)
		if r.status == http.StatusOK {
			winner = r.reviewer
		}
	}

	// Exactly one claim succeeds, the other reviewer gets a conflict.
	assert.ElementsMatch(t, []int{http.StatusOK, http.StatusConflict}, statuses)
	require.NotEmpty(t, winner)

	entry, err := app.EntClient.ReviewEntry.Get(context.Background(), reviewID)
	require.NoError(t, err)
	assert.Equal(t, reviewentry.StatusInReview, entry.Status)
	require.NotNil(t, entry.AssignedTo)
	assert.Equal(t, winner, *entry.AssignedTo)

	// One assignment, one audit record.
	rows := app.WaitForAuditCount(t, audit.EventReviewAssigned, 1)
	assert.Equal(t, winner, rows[0].Payload["assigned_to"])

	// The winner retrying is idempotent; the loser stays locked out.
	app.postJSON(t, "/api/review/"+reviewID+"/assign", nil,
		caller{id: winner, role: "reviewer"}, http.StatusOK)
	loser := reviewers[0].id
	if winner == loser {
		loser = reviewers[1].id
	}
	status, _ := app.request(t, http.MethodPost, "/api/review/"+reviewID+"/assign", nil,
		caller{id: loser, role: "reviewer"})
	assert.Equal(t, http.StatusConflict, status)
}
