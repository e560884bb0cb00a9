package e2e

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factforge/factforge/pkg/audit"
	"github.com/factforge/factforge/pkg/events"
)

// ────────────────────────────────────────────────────────────
// Scenario 1: Hindi claim, language auto-detected, judged FALSE
// ────────────────────────────────────────────────────────────

func TestE2E_CheckHindiClaim(t *testing.T) {
	app := NewTestApp(t)

	// One verdict and one lesson, both answered in Hindi.
	app.Gemini.AddVerdict(ProviderScriptEntry{
		Text: `{"verdict":"FALSE","trust_score":8,"confidence":90,` +
			`"reasons":["लॉटरी जीतने के लिए शुल्क नहीं देना पड़ता"],` +
			`"evidence_list":[],"one_line_tip":"शुल्क मांगने वाली लॉटरी धोखा है"}`,
	})
	app.Gemini.AddLesson(ProviderScriptEntry{
		Text: `{"mini_lesson":"असली लॉटरी कभी पहले पैसे नहीं मांगती।",` +
			`"tips":["आधिकारिक स्रोत से पुष्टि करें","अनजान नंबर पर पैसे न भेजें"],` +
			`"quiz":{"question":"लॉटरी जीतने का संदेश आए तो क्या करें?",` +
			`"options":["A) स्रोत जांचें","B) शुल्क भेजें","C) आगे भेजें","D) जवाब दें"],` +
			`"answer":"A"}}`,
	})

	result := app.CheckClaim(t, asUser,
		"बधाई हो! आपने ₹25 लाख की KBC लॉटरी जीती है, पाने के लिए ₹5000 शुल्क भेजें", "")

	assert.Equal(t, "FALSE", result["verdict"])
	assert.Equal(t, "hi", result["language_detected"])
	assert.Equal(t, float64(8), result["trust_score"])
	assert.NotEmpty(t, result["request_id"])

	// FALSE verdicts carry the teaching block.
	lesson, ok := result["mini_lesson"].(map[string]any)
	require.True(t, ok, "FALSE verdict must include a mini lesson")
	assert.Equal(t, "असली लॉटरी कभी पहले पैसे नहीं मांगती।", lesson["mini_lesson"])
	quiz, ok := lesson["quiz"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "A", quiz["answer"])

	// The check left exactly one audit record with the caller attached.
	rows := app.WaitForAuditCount(t, audit.EventCheck, 1)
	assert.Equal(t, "hi", rows[0].Payload["language"])
	assert.Equal(t, "FALSE", rows[0].Payload["verdict"])
	assert.Equal(t, "usr-1", rows[0].Payload["user_id"])

	// Completion event addressed to the requesting user only.
	completed := app.WaitForBusEvents(t, events.EventCheckCompleted, 1)
	assert.Equal(t, events.UserTarget("usr-1"), completed[0].Target)
	assert.Equal(t, result["request_id"], completed[0].Data["request_id"])
}

// ────────────────────────────────────────────────────────────
// Scenario 2: Empty claim is rejected before any side effect
// ────────────────────────────────────────────────────────────

func TestE2E_CheckEmptyClaimRejected(t *testing.T) {
	app := NewTestApp(t)

	status, body := app.request(t, http.MethodPost, "/api/check",
		map[string]any{"claim_text": "   "}, anonymous)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["message"], "claim_text")

	// A rejected claim produces no audit record, no event, and no LLM call.
	rows, err := app.Audit.List(context.Background(), audit.EventCheck, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Empty(t, app.Bus.Events())
	assert.Zero(t, app.Gemini.CallCount())
}

// ────────────────────────────────────────────────────────────
// Scenario 3: Tampered audit record fails verification
// ────────────────────────────────────────────────────────────

func TestE2E_AuditTamperDetected(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()

	app.CheckClaim(t, asUser, "Forward this message to 10 people and win a free phone", "")
	rows := app.WaitForAuditCount(t, audit.EventCheck, 1)
	id := rows[0].ID

	// Untouched record verifies clean.
	verdictBefore := app.getJSON(t, "/api/admin/audit/verify?audit_id="+id, asAdmin, http.StatusOK)
	assert.Equal(t, true, verdictBefore["valid"])

	// Rewrite the stored payload behind the service's back.
	tampered := rows[0].Payload
	tampered["verdict"] = "TRUE"
	require.NoError(t, app.EntClient.AuditRecord.UpdateOneID(id).
		SetPayload(tampered).
		Exec(ctx))

	verdictAfter := app.getJSON(t, "/api/admin/audit/verify?audit_id="+id, asAdmin, http.StatusOK)
	assert.Equal(t, false, verdictAfter["valid"])
	assert.Equal(t, id, verdictAfter["audit_id"])
}
