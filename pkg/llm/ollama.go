package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	defaultOllamaURL = "http://localhost:11434"

	// Generation on CPU-bound ollama hosts is slow; the probe in Available
	// uses its own short deadline.
	ollamaRequestTimeout = 120 * time.Second
	ollamaProbeTimeout   = 3 * time.Second
)

// OllamaProvider talks to a local or remote ollama server over its REST API.
type OllamaProvider struct {
	baseURL    string
	model      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewOllamaProvider creates a provider for the given base URL and model.
// An empty baseURL falls back to the conventional localhost address.
func NewOllamaProvider(baseURL, model string, logger *slog.Logger) *OllamaProvider {
	if model == "" {
		panic("llm.NewOllamaProvider: model must not be empty")
	}
	if logger == nil {
		panic("llm.NewOllamaProvider: logger must not be nil")
	}
	if baseURL == "" {
		baseURL = defaultOllamaURL
	}
	return &OllamaProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		httpClient: &http.Client{
			Timeout: ollamaRequestTimeout,
		},
		logger: logger.With("component", "llm.ollama"),
	}
}

// Name implements Provider.
func (p *OllamaProvider) Name() string { return ProviderOllama }

type ollamaGenerateRequest struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	Stream  bool           `json:"stream"`
	Format  string         `json:"format,omitempty"`
	Options map[string]any `json:"options,omitempty"`
}

type ollamaGenerateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
	Error    string `json:"error,omitempty"`
}

// Generate implements Provider via POST /api/generate with stream disabled.
func (p *OllamaProvider) Generate(ctx context.Context, prompt string, opts Options) (string, error) {
	reqBody := ollamaGenerateRequest{
		Model:  p.model,
		Prompt: prompt,
		Stream: false,
	}
	if opts.JSONOutput {
		reqBody.Format = "json"
	}
	if opts.Temperature > 0 {
		reqBody.Options = map[string]any{"temperature": opts.Temperature}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal ollama request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create ollama request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read ollama response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, truncateForLog(body))
	}

	var parsed ollamaGenerateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse ollama response: %w", err)
	}
	if parsed.Error != "" {
		return "", fmt.Errorf("ollama error: %s", parsed.Error)
	}
	out := strings.TrimSpace(parsed.Response)
	if out == "" {
		return "", fmt.Errorf("ollama returned an empty response")
	}

	p.logger.Debug("ollama generation complete",
		"model", p.model,
		"duration", time.Since(start),
		"response_len", len(out))
	return out, nil
}

// Available implements Provider via GET /api/tags with a short deadline.
func (p *OllamaProvider) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, ollamaProbeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/api/tags", nil)
	if err != nil {
		return false
	}
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return resp.StatusCode == http.StatusOK
}

func truncateForLog(body []byte) string {
	const max = 512
	s := strings.TrimSpace(string(body))
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
