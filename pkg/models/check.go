package models

// MaxClaimChars bounds the claim accepted by the check pipeline.
const MaxClaimChars = 5000

// CheckRequest is the input of one synchronous fact-check.
type CheckRequest struct {
	ClaimText          string   `json:"claim_text"`
	Language           Language `json:"language"`
	UserID             string   `json:"user_id,omitempty"`
	IncludeTranslation bool     `json:"include_translation,omitempty"`
}

// CheckResult is the assembled fact-check response. EvidenceList carries
// the LLM's own citations; RetrievedIDs lists the retrieved document ids
// exactly in the order they were shown to the model.
type CheckResult struct {
	RequestID        string      `json:"request_id"`
	Verdict          Verdict     `json:"verdict"`
	TrustScore       float64     `json:"trust_score"`
	Confidence       float64     `json:"confidence"`
	Reasons          []string    `json:"reasons"`
	EvidenceList     []string    `json:"evidence_list"`
	OneLineTip       string      `json:"one_line_tip,omitempty"`
	ClassifierScore  *float64    `json:"classifier_score,omitempty"`
	RetrievedIDs     []string    `json:"retrieved_ids"`
	LatencyMs        int64       `json:"latency_ms"`
	LanguageDetected string      `json:"language_detected,omitempty"`
	MiniLesson       *MiniLesson `json:"mini_lesson,omitempty"`
}
