package embedding

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedProvider memoizes embeddings per (taskType, text). Persona
// preference strings repeat across reports, so most queries hit the cache.
type CachedProvider struct {
	next  EmbeddingProvider
	cache *lru.Cache[string, []float32]
}

func NewCachedProvider(next EmbeddingProvider, size int) (*CachedProvider, error) {
	if size <= 0 {
		size = 10000
	}
	cache, err := lru.New[string, []float32](size)
	if err != nil {
		return nil, fmt.Errorf("create cache: %w", err)
	}
	return &CachedProvider{next: next, cache: cache}, nil
}

func (p *CachedProvider) Generate(ctx context.Context, text string, taskType string) (*EmbeddingResponse, error) {
	key := taskType + "\x00" + text
	if values, ok := p.cache.Get(key); ok {
		return &EmbeddingResponse{Embedding: EmbeddingResponseEmbedding{Values: values}}, nil
	}

	res, err := p.next.Generate(ctx, text, taskType)
	if err != nil {
		return nil, err
	}
	p.cache.Add(key, res.Embedding.Values)
	return res, nil
}

func (p *CachedProvider) Len() int {
	return p.cache.Len()
}
