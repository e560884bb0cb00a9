package models

// Verdict is the LLM's judgment of a claim. The check pipeline guarantees
// the returned value is always one of these five, never raw model output.
type Verdict string

const (
	VerdictTrue          Verdict = "TRUE"
	VerdictFalse         Verdict = "FALSE"
	VerdictMisleading    Verdict = "MISLEADING"
	VerdictUnverified    Verdict = "UNVERIFIED"
	VerdictPartiallyTrue Verdict = "PARTIALLY TRUE"
)

// Valid reports whether v is one of the five verdict values.
func (v Verdict) Valid() bool {
	switch v {
	case VerdictTrue, VerdictFalse, VerdictMisleading, VerdictUnverified, VerdictPartiallyTrue:
		return true
	}
	return false
}

// Evidence is one retrieved document shown to the LLM as grounding.
type Evidence struct {
	DocID      string  `json:"doc_id"`
	URL        string  `json:"url"`
	Domain     string  `json:"domain"`
	Label      string  `json:"label"`
	Distance   float64 `json:"distance"`
	TextSample string  `json:"text_sample,omitempty"`
}

// VerdictResult is the structured output of the verdict prompt.
type VerdictResult struct {
	Verdict      Verdict  `json:"verdict"`
	TrustScore   float64  `json:"trust_score"`
	Confidence   float64  `json:"confidence"`
	Reasons      []string `json:"reasons"`
	EvidenceList []string `json:"evidence_list"`
	OneLineTip   string   `json:"one_line_tip"`
}

// Quiz is the single-question quiz attached to a mini lesson.
type Quiz struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// MiniLesson is the educational payload generated for FALSE/MISLEADING
// verdicts.
type MiniLesson struct {
	MiniLesson string   `json:"mini_lesson"`
	Tips       []string `json:"tips"`
	Quiz       Quiz     `json:"quiz"`
}
