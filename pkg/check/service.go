// Package check implements the synchronous fact-check path: resolve the
// claim's language, retrieve similar indexed content, and synthesize a
// verdict plus an optional mini lesson with the LLM. Degraded dependencies
// never fail a check; every fallback still produces a complete response.
package check

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/factforge/factforge/pkg/audit"
	"github.com/factforge/factforge/pkg/embedding"
	"github.com/factforge/factforge/pkg/events"
	"github.com/factforge/factforge/pkg/langdetect"
	"github.com/factforge/factforge/pkg/llm"
	"github.com/factforge/factforge/pkg/models"
	"github.com/factforge/factforge/pkg/services"
	"github.com/factforge/factforge/pkg/vectorindex"
)

// retrieveTopK is how many similar documents ground a verdict.
const retrieveTopK = 6

// verdictTemperature keeps verdicts and lessons stable across retries.
const verdictTemperature = 0.1

// Generator is the slice of the provider selector the pipeline needs.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts llm.Options) (string, error)
}

// Service runs fact checks.
type Service struct {
	embedder  embedding.Embedder
	store     vectorindex.Store
	generator Generator
	audit     *audit.Service
	bus       events.Publisher
	logger    *slog.Logger
}

// NewService creates a check service. bus may be nil (bus disabled).
func NewService(embedder embedding.Embedder, store vectorindex.Store, generator Generator, auditSvc *audit.Service, bus events.Publisher, logger *slog.Logger) *Service {
	if embedder == nil {
		panic("check.NewService: embedder must not be nil")
	}
	if store == nil {
		panic("check.NewService: store must not be nil")
	}
	if generator == nil {
		panic("check.NewService: generator must not be nil")
	}
	if auditSvc == nil {
		panic("check.NewService: audit service must not be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		embedder:  embedder,
		store:     store,
		generator: generator,
		audit:     auditSvc,
		bus:       bus,
		logger:    logger.With("component", "check"),
	}
}

// Check runs one claim through the pipeline. Validation failures are the
// only errors a healthy caller sees; dependency failures degrade to the
// UNVERIFIED fallback inside a successful response. Cancellation mid-call
// propagates without an audit row, since no response was produced.
func (s *Service) Check(ctx context.Context, req models.CheckRequest) (*models.CheckResult, error) {
	started := time.Now()
	requestID := uuid.New().String()

	claim := strings.TrimSpace(req.ClaimText)
	if claim == "" {
		return nil, services.NewValidationError("claim_text", "required")
	}
	if utf8.RuneCountInString(claim) > models.MaxClaimChars {
		return nil, services.NewValidationError("claim_text",
			"longer than 5000 characters")
	}

	lang := req.Language
	detected := false
	switch {
	case lang == "" || lang == models.LanguageAuto:
		lang, _ = langdetect.Detect(claim)
		detected = true
	case !lang.Valid():
		return nil, services.NewValidationError("language",
			"must be auto, hi, ta, kn, or en")
	}

	evidence := s.retrieve(ctx, claim)

	verdict, err := s.verdict(ctx, lang, claim, evidence)
	if err != nil {
		return nil, err
	}

	result := &models.CheckResult{
		RequestID:    requestID,
		Verdict:      verdict.Verdict,
		TrustScore:   verdict.TrustScore,
		Confidence:   verdict.Confidence,
		Reasons:      verdict.Reasons,
		EvidenceList: verdict.EvidenceList,
		OneLineTip:   verdict.OneLineTip,
		RetrievedIDs: retrievedIDs(evidence),
	}
	if detected {
		result.LanguageDetected = string(lang)
	}

	if verdict.Verdict == models.VerdictFalse || verdict.Verdict == models.VerdictMisleading {
		lesson := s.lesson(ctx, lang, claim, verdict)
		result.MiniLesson = &lesson
	}

	result.LatencyMs = time.Since(started).Milliseconds()
	if result.LatencyMs < 1 {
		result.LatencyMs = 1
	}

	// The audit row and completion event still land when the client has
	// gone away by now.
	tailCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	payload := map[string]any{
		"request_id":  requestID,
		"language":    string(lang),
		"verdict":     string(result.Verdict),
		"trust_score": result.TrustScore,
		"latency_ms":  result.LatencyMs,
	}
	if req.UserID != "" {
		payload["user_id"] = req.UserID
	}
	s.audit.BestEffort(tailCtx, audit.EventCheck, payload)

	s.publishCompleted(tailCtx, req.UserID, result)

	return result, nil
}

// retrieve embeds the claim and searches the index. Failures degrade to an
// empty evidence set so retrieval outages never block a verdict.
func (s *Service) retrieve(ctx context.Context, claim string) []models.Evidence {
	vec, err := s.embedder.Embed(ctx, claim)
	if err != nil {
		s.logger.Warn("claim embedding failed, checking without evidence", "error", err)
		return nil
	}

	matches, err := s.store.Search(ctx, vec, retrieveTopK)
	if err != nil {
		s.logger.Warn("vector search failed, checking without evidence", "error", err)
		return nil
	}

	evidence := make([]models.Evidence, 0, len(matches))
	for _, m := range matches {
		evidence = append(evidence, evidenceFromMatch(m))
	}
	return evidence
}

func (s *Service) verdict(ctx context.Context, lang models.Language, claim string, evidence []models.Evidence) (models.VerdictResult, error) {
	prompt := llm.BuildVerdictPrompt(lang, claim, evidence)
	out, err := s.generator.Generate(ctx, prompt, llm.Options{
		Temperature: verdictTemperature,
		JSONOutput:  true,
	})
	if err != nil {
		if ctx.Err() != nil {
			return models.VerdictResult{}, ctx.Err()
		}
		s.logger.Warn("verdict generation failed, using fallback", "error", err)
		return llm.FallbackVerdict(), nil
	}
	return llm.ParseVerdict(out), nil
}

func (s *Service) lesson(ctx context.Context, lang models.Language, claim string, verdict models.VerdictResult) models.MiniLesson {
	prompt := llm.BuildLessonPrompt(lang, claim, verdict)
	out, err := s.generator.Generate(ctx, prompt, llm.Options{
		Temperature: verdictTemperature,
		JSONOutput:  true,
	})
	if err != nil {
		s.logger.Warn("lesson generation failed, using fallback", "error", err)
		return llm.FallbackLesson()
	}
	return llm.ParseLesson(out)
}

func (s *Service) publishCompleted(ctx context.Context, userID string, result *models.CheckResult) {
	if s.bus == nil {
		return
	}
	target := events.TargetAll
	if userID != "" {
		target = events.UserTarget(userID)
	}
	err := s.bus.Publish(ctx, events.EventCheckCompleted, map[string]any{
		"request_id":  result.RequestID,
		"verdict":     string(result.Verdict),
		"trust_score": result.TrustScore,
		"latency_ms":  result.LatencyMs,
	}, target)
	if err != nil {
		s.logger.Warn("failed to publish check event",
			"request_id", result.RequestID, "error", err)
	}
}

func retrievedIDs(evidence []models.Evidence) []string {
	ids := make([]string, 0, len(evidence))
	for _, ev := range evidence {
		ids = append(ids, ev.DocID)
	}
	return ids
}

func evidenceFromMatch(m vectorindex.Match) models.Evidence {
	ev := models.Evidence{
		DocID:    m.DocID,
		Distance: m.Distance,
	}
	ev.URL = metaString(m.Metadata, "url")
	ev.Domain = metaString(m.Metadata, "domain")
	ev.Label = metaString(m.Metadata, "label")
	ev.TextSample = metaString(m.Metadata, "text_sample")
	return ev
}

func metaString(metadata map[string]any, key string) string {
	if metadata == nil {
		return ""
	}
	s, _ := metadata[key].(string)
	return s
}
