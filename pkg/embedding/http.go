package embedding

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

// HTTPEmbedder calls the embedding sidecar's REST API.
type HTTPEmbedder struct {
	baseURL    string
	model      string
	dim        int
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPEmbedder creates an embedder for the sidecar at baseURL. An empty
// model falls back to DefaultModel.
func NewHTTPEmbedder(baseURL, model string, dim int, logger *slog.Logger) *HTTPEmbedder {
	if baseURL == "" {
		panic("embedding.NewHTTPEmbedder: baseURL must not be empty")
	}
	if dim <= 0 {
		panic("embedding.NewHTTPEmbedder: dimension must be positive")
	}
	if logger == nil {
		panic("embedding.NewHTTPEmbedder: logger must not be nil")
	}
	if model == "" {
		model = DefaultModel
	}
	return &HTTPEmbedder{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		dim:     dim,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger.With("component", "embedding.http"),
	}
}

type embedRequest struct {
	Texts []string `json:"texts"`
	Model string   `json:"model,omitempty"`
}

type embedResponse struct {
	Embeddings [][]float32 `json:"embeddings"`
	Error      string      `json:"error,omitempty"`
}

// Embed implements Embedder for a single text.
func (e *HTTPEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vecs, err := e.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

// EmbedBatch implements Embedder via POST /embed.
func (e *HTTPEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	payload, err := json.Marshal(embedRequest{Texts: texts, Model: e.model})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal embed request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/embed", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create embed request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("embedding service request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedding response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("embedding service returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed embedResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse embedding response: %w", err)
	}
	if parsed.Error != "" {
		return nil, fmt.Errorf("embedding service error: %s", parsed.Error)
	}
	if len(parsed.Embeddings) != len(texts) {
		return nil, fmt.Errorf("embedding service returned %d vectors for %d texts", len(parsed.Embeddings), len(texts))
	}
	for i, vec := range parsed.Embeddings {
		if len(vec) != e.dim {
			return nil, fmt.Errorf("embedding %d has dimension %d, want %d", i, len(vec), e.dim)
		}
	}

	e.logger.Debug("embedded batch",
		"texts", len(texts),
		"duration", time.Since(start))
	return parsed.Embeddings, nil
}

// Dimension implements Embedder.
func (e *HTTPEmbedder) Dimension() int { return e.dim }

// ModelName implements Embedder.
func (e *HTTPEmbedder) ModelName() string { return e.model }
