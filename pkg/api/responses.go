package api

import (
	"time"

	"github.com/factforge/factforge/pkg/llm"
	"github.com/factforge/factforge/pkg/models"
)

// HealthCheck is one component's slice of the health response.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}

// ReviewActionResponse confirms an assignment or a decision.
type ReviewActionResponse struct {
	Message    string `json:"message"`
	ReviewID   string `json:"review_id"`
	Status     string `json:"status"`
	AssignedTo string `json:"assigned_to,omitempty"`
}

// ReviewDocDetail extends the queue summary with the enrichment evidence a
// reviewer needs to judge the document.
type ReviewDocDetail struct {
	models.ReviewDocSummary

	Translit       bool           `json:"translit"`
	ImageHashes    []string       `json:"image_hashes,omitempty"`
	WhoisData      map[string]any `json:"whois_data,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	RawHTMLPath    string         `json:"raw_html_path,omitempty"`
	ScreenshotPath string         `json:"screenshot_path,omitempty"`
	IngestedAt     time.Time      `json:"ingested_at"`
}

// ReviewDetailResponse is the full review view returned by GET /api/review/:id.
type ReviewDetailResponse struct {
	ID         string          `json:"id"`
	DocID      string          `json:"doc_id"`
	Status     string          `json:"status"`
	Priority   int             `json:"priority"`
	Note       string          `json:"note,omitempty"`
	AssignedTo string          `json:"assigned_to,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	Doc        ReviewDocDetail `json:"doc"`
}

// ModelActivatedResponse confirms a new active model bundle.
type ModelActivatedResponse struct {
	Message           string `json:"message"`
	ModelID           string `json:"model_id"`
	ClassifierVersion string `json:"classifier_version"`
}

// AuditVerifyResponse is the outcome of a signature verification.
type AuditVerifyResponse struct {
	AuditID string `json:"audit_id"`
	Valid   bool   `json:"valid"`
}

// AuditCleanupResponse reports a retention purge.
type AuditCleanupResponse struct {
	Message string `json:"message"`
	Deleted int    `json:"deleted"`
}

// LLMStatusResponse is the provider rotation snapshot.
type LLMStatusResponse struct {
	Active    string               `json:"active"`
	Providers []llm.ProviderStatus `json:"providers"`
}

// LLMSwitchResponse confirms an explicit provider switch.
type LLMSwitchResponse struct {
	Message string `json:"message"`
	Active  string `json:"active"`
}

// MessageResponse is a bare confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}
