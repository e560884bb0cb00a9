package e2e

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factforge/factforge/pkg/audit"
	"github.com/factforge/factforge/pkg/events"
	"github.com/factforge/factforge/pkg/llm"
)

// ────────────────────────────────────────────────────────────
// Scenario 7: Primary LLM outage, the fallback serves the verdict
// ────────────────────────────────────────────────────────────

func TestE2E_LLMFailover(t *testing.T) {
	app := NewTestApp(t)

	app.Gemini.SetDown(true)
	app.Ollama.AddVerdict(ProviderScriptEntry{
		Text: `{"verdict":"MISLEADING","trust_score":35,"confidence":70,` +
			`"reasons":["The photo is real but the story around it is not."],` +
			`"evidence_list":[],"one_line_tip":"Check when the photo was first published."}`,
	})

	result := app.CheckClaim(t, asUser,
		"The photo shows that the new bridge in the city collapsed with a train on it", "")

	// The caller never sees the outage, only the fallback's verdict.
	assert.Equal(t, "MISLEADING", result["verdict"])
	assert.Equal(t, llm.ProviderOllama, app.Selector.ActiveName())

	// The switch was audited and announced.
	rows := app.WaitForAuditCount(t, audit.EventLLMSwitch, 1)
	assert.Equal(t, llm.ProviderGemini, rows[0].Payload["from"])
	assert.Equal(t, llm.ProviderOllama, rows[0].Payload["to"])
	assert.Contains(t, rows[0].Payload["reason"], "failover")

	switched := app.WaitForBusEvents(t, events.EventLLMSwitched, 1)
	assert.Equal(t, events.TargetAll, switched[0].Target)
	assert.Equal(t, llm.ProviderOllama, switched[0].Data["to"])

	// The admin plane shows the rotation state.
	status := app.getJSON(t, "/api/admin/llm/status", asAdmin, http.StatusOK)
	assert.Equal(t, llm.ProviderOllama, status["active"])

	// Recovery: the admin switches back once the primary is reachable.
	app.Gemini.SetDown(false)
	app.postJSON(t, "/api/admin/llm/switch",
		map[string]any{"provider": llm.ProviderGemini}, asAdmin, http.StatusOK)
	assert.Equal(t, llm.ProviderGemini, app.Selector.ActiveName())
	app.WaitForAuditCount(t, audit.EventLLMSwitch, 2)
}

// ────────────────────────────────────────────────────────────
// Scenario 8: Total LLM outage, deterministic fallback verdict
// ────────────────────────────────────────────────────────────

func TestE2E_LLMTotalOutage(t *testing.T) {
	app := NewTestApp(t)

	app.Gemini.SetDown(true)
	app.Ollama.SetDown(true)

	result := app.CheckClaim(t, asUser,
		"Drinking hot water with lemon in it cures the virus in a day", "")

	// Checks degrade, they do not fail: the canned UNVERIFIED verdict
	// comes back with a usable tip and no teaching block.
	assert.Equal(t, "UNVERIFIED", result["verdict"])
	assert.EqualValues(t, 0, result["trust_score"])
	assert.NotEmpty(t, result["one_line_tip"])
	_, hasLesson := result["mini_lesson"]
	assert.False(t, hasLesson)

	// The degraded check is still on the audit chain.
	rows := app.WaitForAuditCount(t, audit.EventCheck, 1)
	assert.Equal(t, "UNVERIFIED", rows[0].Payload["verdict"])

	// Health keeps serving and reports the LLM plane degraded.
	health := app.getJSON(t, "/health", anonymous, http.StatusOK)
	assert.Equal(t, "degraded", health["status"])
	checks, ok := health["checks"].(map[string]any)
	require.True(t, ok)
	llmCheck, ok := checks["llm"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "degraded", llmCheck["status"])
}
