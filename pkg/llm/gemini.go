package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"
)

// GeminiProvider generates text through the Gemini API.
type GeminiProvider struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

// NewGeminiProvider creates a provider bound to one model. The API key is
// required; callers that have no key configured should not construct this
// provider at all.
func NewGeminiProvider(ctx context.Context, apiKey, model string, logger *slog.Logger) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("gemini model is required")
	}
	if logger == nil {
		panic("llm.NewGeminiProvider: logger must not be nil")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiProvider{
		client: client,
		model:  model,
		logger: logger.With("component", "llm.gemini"),
	}, nil
}

// Name implements Provider.
func (p *GeminiProvider) Name() string { return ProviderGemini }

// Generate implements Provider.
func (p *GeminiProvider) Generate(ctx context.Context, prompt string, opts Options) (string, error) {
	config := &genai.GenerateContentConfig{}
	if opts.Temperature > 0 {
		config.Temperature = genai.Ptr(opts.Temperature)
	}
	if opts.JSONOutput {
		config.ResponseMIMEType = "application/json"
	}

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	start := time.Now()
	resp, err := p.client.Models.GenerateContent(ctx, p.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	out := strings.TrimSpace(resp.Text())
	if out == "" {
		return "", fmt.Errorf("gemini returned an empty response")
	}

	p.logger.Debug("gemini generation complete",
		"model", p.model,
		"duration", time.Since(start),
		"response_len", len(out))
	return out, nil
}

// Available implements Provider. The Gemini API has no free probe, so a
// constructed client is reported reachable; real failures surface in
// Generate and drive the selector's failover.
func (p *GeminiProvider) Available(ctx context.Context) bool {
	return p.client != nil
}
