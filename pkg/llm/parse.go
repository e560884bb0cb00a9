package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/factforge/factforge/pkg/models"
)

// FallbackVerdict is the verdict used when no structured output can be
// recovered from the model: UNVERIFIED with zeroed scores.
func FallbackVerdict() models.VerdictResult {
	return models.VerdictResult{
		Verdict:      models.VerdictUnverified,
		TrustScore:   0,
		Confidence:   0,
		Reasons:      []string{"The fact-check model did not return a readable verdict."},
		EvidenceList: []string{},
		OneLineTip:   "Treat this claim with caution until a trusted source confirms it.",
	}
}

// ParseVerdict extracts a VerdictResult from raw model output. The raw
// string is tried as-is, then as the outermost brace-delimited span, since
// models wrap JSON in prose and markdown fences often enough to plan for.
// Unrecoverable output becomes the UNVERIFIED fallback, never an error.
func ParseVerdict(raw string) models.VerdictResult {
	out, ok := decodeLoose[models.VerdictResult](raw)
	if !ok {
		return FallbackVerdict()
	}
	out.Verdict = models.Verdict(strings.ToUpper(strings.TrimSpace(string(out.Verdict))))
	if !out.Verdict.Valid() {
		out.Verdict = models.VerdictUnverified
	}
	out.TrustScore = clampFloat(out.TrustScore, 0, 100)
	out.Confidence = clampFloat(out.Confidence, 0, 100)
	if out.Reasons == nil {
		out.Reasons = []string{}
	}
	if out.EvidenceList == nil {
		out.EvidenceList = []string{}
	}
	return out
}

// ParseLesson extracts a MiniLesson from raw model output, falling back to
// the canned lesson when the output is unusable.
func ParseLesson(raw string) models.MiniLesson {
	out, ok := decodeLoose[models.MiniLesson](raw)
	if !ok || strings.TrimSpace(out.MiniLesson) == "" {
		return FallbackLesson()
	}
	if out.Tips == nil {
		out.Tips = []string{}
	}
	if strings.TrimSpace(out.Quiz.Question) == "" || len(out.Quiz.Options) == 0 {
		out.Quiz = FallbackLesson().Quiz
		return out
	}
	out.Quiz.Answer = normalizeQuizAnswer(out.Quiz.Answer)
	return out
}

// FallbackLesson is the canned lesson used when generation or parsing fails.
func FallbackLesson() models.MiniLesson {
	return models.MiniLesson{
		MiniLesson: "Claims that pressure you to act immediately, promise guaranteed rewards, " +
			"or cite unnamed officials are classic misinformation patterns. Check who published " +
			"the claim and whether an established outlet reports the same thing before sharing.",
		Tips: []string{
			"Search for the claim on an established news site before sharing.",
			"Be suspicious of urgency: real information rarely expires in hours.",
			"Check how long the source website has existed.",
		},
		Quiz: models.Quiz{
			Question: "What should you do first when a message says you must act immediately?",
			Options: []string{
				"A) Forward it to friends so they can act too",
				"B) Pause and verify the claim with a trusted source",
				"C) Click the link to learn more",
				"D) Reply with your details to be safe",
			},
			Answer: "B",
		},
	}
}

var numberPattern = regexp.MustCompile(`-?\d+(\.\d+)?`)

// ParseScore extracts the first number from classifier output, clamped to
// [0,1]. Output with no number at all is an error; the caller owns the
// neutral-score policy for that case.
func ParseScore(raw string) (float64, error) {
	m := numberPattern.FindString(raw)
	if m == "" {
		return 0, fmt.Errorf("no number in classifier output %q", truncateForLog([]byte(raw)))
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable number %q: %w", m, err)
	}
	return clampFloat(v, 0, 1), nil
}

func decodeLoose[T any](raw string) (T, bool) {
	var zero T
	raw = strings.TrimSpace(raw)

	var direct T
	if err := json.Unmarshal([]byte(raw), &direct); err == nil {
		return direct, true
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return zero, false
	}
	var span T
	if err := json.Unmarshal([]byte(raw[start:end+1]), &span); err != nil {
		return zero, false
	}
	return span, true
}

func normalizeQuizAnswer(answer string) string {
	trimmed := strings.ToUpper(strings.TrimSpace(answer))
	if trimmed == "" {
		return "B"
	}
	switch trimmed[0] {
	case 'A', 'B', 'C', 'D':
		return string(trimmed[0])
	}
	return "B"
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
