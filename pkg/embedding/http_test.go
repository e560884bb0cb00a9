package embedding

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

func TestHTTPEmbedderEmbedBatch(t *testing.T) {
	var gotReq embedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/embed", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(embedResponse{
			Embeddings: [][]float32{{1, 0, 0}, {0, 1, 0}},
		})
	}))
	defer server.Close()

	e := NewHTTPEmbedder(server.URL, "", 3, slog.Default())
	vecs, err := e.EmbedBatch(context.Background(), []string{"first", "second"})
	require.NoError(t, err)
	require.Len(t, vecs, 2)
	assert.Equal(t, []float32{1, 0, 0}, vecs[0])
	assert.Equal(t, []float32{0, 1, 0}, vecs[1])

	assert.Equal(t, []string{"first", "second"}, gotReq.Texts)
	assert.Equal(t, DefaultModel, gotReq.Model)
}

func TestHTTPEmbedderSingle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(embedResponse{Embeddings: [][]float32{{0.5, 0.5}}})
	}))
	defer server.Close()

	e := NewHTTPEmbedder(server.URL, "custom-model", 2, slog.Default())
	vec, err := e.Embed(context.Background(), "text")
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, 0.5}, vec)
	assert.Equal(t, "custom-model", e.ModelName())
}

func TestHTTPEmbedderDimensionMismatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(embedResponse{Embeddings: [][]float32{{1, 2, 3, 4}}})
	}))
	defer server.Close()

	e := NewHTTPEmbedder(server.URL, "", 3, slog.Default())
	_, err := e.Embed(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dimension 4, want 3")
}

func TestHTTPEmbedderCountMismatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(embedResponse{Embeddings: [][]float32{{1, 0}}})
	}))
	defer server.Close()

	e := NewHTTPEmbedder(server.URL, "", 2, slog.Default())
	_, err := e.EmbedBatch(context.Background(), []string{"a", "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 vectors for 2 texts")
}

func TestHTTPEmbedderServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	e := NewHTTPEmbedder(server.URL, "", 3, slog.Default())
	_, err := e.Embed(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
}

func TestHTTPEmbedderEmptyBatch(t *testing.T) {
	e := NewHTTPEmbedder("http://unused.invalid", "", 3, slog.Default())
	vecs, err := e.EmbedBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, vecs)
}
