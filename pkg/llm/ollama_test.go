package llm

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOllamaGenerate(t *testing.T) {
	var gotReq ollamaGenerateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/generate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(map[string]any{"response": " hello from ollama ", "done": true})
	}))
	defer server.Close()

	p := NewOllamaProvider(server.URL, "gemma2:2b", slog.Default())
	out, err := p.Generate(context.Background(), "say hello", Options{Temperature: 0.2, JSONOutput: true})
	require.NoError(t, err)
	assert.Equal(t, "hello from ollama", out)

	assert.Equal(t, "gemma2:2b", gotReq.Model)
	assert.Equal(t, "say hello", gotReq.Prompt)
	assert.False(t, gotReq.Stream)
	assert.Equal(t, "json", gotReq.Format)
	assert.InDelta(t, 0.2, gotReq.Options["temperature"], 0.0001)
}

func TestOllamaGenerateServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model blew up", http.StatusInternalServerError)
	}))
	defer server.Close()

	p := NewOllamaProvider(server.URL, "gemma2:2b", slog.Default())
	_, err := p.Generate(context.Background(), "say hello", Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestOllamaGenerateAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"error": "model not found"})
	}))
	defer server.Close()

	p := NewOllamaProvider(server.URL, "gemma2:2b", slog.Default())
	_, err := p.Generate(context.Background(), "say hello", Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model not found")
}

func TestOllamaAvailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tags", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	p := NewOllamaProvider(server.URL, "gemma2:2b", slog.Default())
	assert.True(t, p.Available(context.Background()))

	server.Close()
	assert.False(t, p.Available(context.Background()))
}

func TestOllamaName(t *testing.T) {
	p := NewOllamaProvider("", "gemma2:2b", slog.Default())
	assert.Equal(t, ProviderOllama, p.Name())
	assert.Equal(t, defaultOllamaURL, p.baseURL)
}
