package embedding

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingProvider struct {
	calls int
}

func (p *countingProvider) Generate(ctx context.Context, text string, taskType string) (*EmbeddingResponse, error) {
	p.calls++
	return &EmbeddingResponse{Embedding: EmbeddingResponseEmbedding{Values: []float32{float32(len(text)), 1}}}, nil
}

func magnitude(v []float32) float64 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}

func TestNormalizeVector(t *testing.T) {
	assert.InDelta(t, 1.0, magnitude(normalizeVector([]float32{3, 4})), 1e-6)
	assert.Equal(t, []float32{0, 0}, normalizeVector([]float32{0, 0}))
}

func TestCachedProvider(t *testing.T) {
	next := &countingProvider{}
	p, err := NewCachedProvider(next, 8)
	require.NoError(t, err)
	ctx := context.Background()

	first, err := p.Generate(ctx, "warm wood", TaskRetrievalQuery)
	require.NoError(t, err)
	second, err := p.Generate(ctx, "warm wood", TaskRetrievalQuery)
	require.NoError(t, err)
	_, err = p.Generate(ctx, "warm wood", TaskRetrievalDocument)
	require.NoError(t, err)

	assert.Equal(t, first.Embedding.Values, second.Embedding.Values)
	assert.Equal(t, 2, next.calls)
	assert.Equal(t, 2, p.Len())
}

func TestOllamaProvider_Generate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/embeddings", r.URL.Path)
		var req ollamaEmbeddingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "nomic-embed-text", req.Model)
		w.Write([]byte(`{"embedding":[3,4]}`))
	}))
	defer srv.Close()

	res, err := NewOllamaProvider(srv.URL, "").Generate(context.Background(), "linen", TaskRetrievalDocument)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float32{0.6, 0.8}, res.Embedding.Values, 1e-6)
}

func TestOpenAIProvider_Generate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/embeddings", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		w.Write([]byte(`{"data":[{"index":0,"embedding":[0,2]}]}`))
	}))
	defer srv.Close()

	res, err := NewOpenAIProvider("sk-test", srv.URL, "").Generate(context.Background(), "linen", "")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float32{0, 1}, res.Embedding.Values, 1e-6)
}

func TestOpenAIProvider_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	_, err := NewOpenAIProvider("sk-test", srv.URL, "").Generate(context.Background(), "linen", "")
	assert.Error(t, err)
}

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(Options{Provider: "ollama"})
	require.NoError(t, err)
	assert.IsType(t, &CachedProvider{}, p)

	_, err = NewProvider(Options{Provider: "gemini"})
	assert.Error(t, err)

	_, err = NewProvider(Options{Provider: "clip"})
	assert.EqualError(t, err, "unsupported embedding provider: clip")
}
