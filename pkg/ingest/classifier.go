// Package ingest consumes enriched documents from ingest.queue, scores
// them with the LLM classifier, and routes each one to an auto label or
// the human review queue.
package ingest

import (
	"context"
	"log/slog"

	"github.com/factforge/factforge/pkg/llm"
	"github.com/factforge/factforge/pkg/models"
)

// NeutralScore is the score substituted when classification cannot produce
// a real one. It sits below every auto-label threshold, so an LLM outage
// never marks content scam.
const NeutralScore = 0.5

// classifierTemperature keeps the single-number output stable across runs.
const classifierTemperature = 0.1

// Classifier scores how scam-like a piece of content reads, in [0,1].
type Classifier interface {
	Score(ctx context.Context, text string, lang models.Language) (float64, error)
}

// Generator is the slice of the provider selector the classifier needs.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts llm.Options) (string, error)
}

// LLMClassifier asks the active text-generation provider for a single
// scam-likelihood number. Generation failures and unusable output both
// degrade to NeutralScore rather than erroring; only caller cancellation
// propagates.
type LLMClassifier struct {
	generator Generator
	logger    *slog.Logger
}

// NewLLMClassifier creates a classifier over the given generator.
func NewLLMClassifier(generator Generator, logger *slog.Logger) *LLMClassifier {
	if generator == nil {
		panic("ingest.NewLLMClassifier: generator must not be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LLMClassifier{
		generator: generator,
		logger:    logger.With("component", "ingest.classifier"),
	}
}

// Score classifies text written in lang.
func (c *LLMClassifier) Score(ctx context.Context, text string, lang models.Language) (float64, error) {
	prompt := llm.BuildClassifierPrompt(lang, text)
	out, err := c.generator.Generate(ctx, prompt, llm.Options{Temperature: classifierTemperature})
	if err != nil {
		if ctx.Err() != nil {
			return 0, ctx.Err()
		}
		c.logger.Warn("classifier generation failed, using neutral score", "error", err)
		return NeutralScore, nil
	}

	score, err := llm.ParseScore(out)
	if err != nil {
		c.logger.Warn("classifier output unusable, using neutral score", "error", err)
		return NeutralScore, nil
	}
	return score, nil
}
