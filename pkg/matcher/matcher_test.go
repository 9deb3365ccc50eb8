package matcher

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soulful-home-be/internal/entity"
	"soulful-home-be/pkg/catalog"
	"soulful-home-be/pkg/embedding"
)

type fakeEmbedder struct {
	vectors map[string][]float32
	calls   []string
	err     error
}

func (f *fakeEmbedder) Generate(ctx context.Context, text string, taskType string) (*embedding.EmbeddingResponse, error) {
	f.calls = append(f.calls, taskType+":"+text)
	if f.err != nil {
		return nil, f.err
	}
	v, ok := f.vectors[text]
	if !ok {
		v = []float32{1, 0}
	}
	return &embedding.EmbeddingResponse{Embedding: embedding.EmbeddingResponseEmbedding{Values: v}}, nil
}

type fakeRanker struct {
	hits  []catalog.Hit
	err   error
	query []float32
}

func (f *fakeRanker) RankAll(ctx context.Context, query []float32) ([]catalog.Hit, error) {
	f.query = query
	return f.hits, f.err
}

func persona() entity.UserReports {
	return entity.UserReports{
		InternalReport: entity.InternalReport{AestheticStyle: "warm minimalism"},
		StyleTags:      entity.StyleTags{LightingMood: "soft daylight"},
		PersonaCopy:    "You like calm rooms.",
		HomeArchetype:  "The Quiet Retreat",
	}
}

func rankedHits(n int) []catalog.Hit {
	hits := make([]catalog.Hit, n)
	for i := range hits {
		hits[i] = catalog.Hit{
			ID:          fmt.Sprintf("img%02d.jpg", i),
			Filename:    fmt.Sprintf("img%02d.jpg", i),
			Description: fmt.Sprintf("image %d", i),
			Similarity:  float32(1 - float64(i)/float64(n)),
		}
	}
	return hits
}

func TestMatch_TopAndBottom(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"warm minimalism":   {1, 0},
		"soft daylight":     {0, 1},
		"The Quiet Retreat": {1, 1},
	}}
	ranker := &fakeRanker{hits: rankedHits(20)}
	m := NewMatcher(ranker, embedder, DefaultConfig())

	res, err := m.Match(context.Background(), persona())
	require.NoError(t, err)

	require.Len(t, res.Inspirations, 6)
	require.Len(t, res.LeastMatches, 6)
	assert.Equal(t, "/house-image/img00.jpg", res.Inspirations[0].ImagePath)
	assert.Equal(t, "/house-image/img05.jpg", res.Inspirations[5].ImagePath)
	assert.Equal(t, "/house-image/img14.jpg", res.LeastMatches[0].ImagePath)
	assert.Equal(t, "/house-image/img19.jpg", res.LeastMatches[5].ImagePath)
	assert.GreaterOrEqual(t, res.LeastMatches[0].RelevanceScore, res.LeastMatches[5].RelevanceScore)
	assert.Equal(t, []string{"warm minimalism", "soft daylight", "The Quiet Retreat"}, res.Inspirations[0].MatchingAspects)

	assert.Equal(t, []string{
		"RETRIEVAL_QUERY:warm minimalism",
		"RETRIEVAL_QUERY:soft daylight",
		"RETRIEVAL_QUERY:The Quiet Retreat",
	}, embedder.calls)

	// (1,0)+(0,1)+(1,1) = (2,2), normalized
	require.Len(t, ranker.query, 2)
	assert.InDelta(t, 0.7071, ranker.query[0], 1e-3)
	assert.InDelta(t, 0.7071, ranker.query[1], 1e-3)
}

func TestMatch_SmallCatalogOverlaps(t *testing.T) {
	m := NewMatcher(&fakeRanker{hits: rankedHits(4)}, &fakeEmbedder{}, DefaultConfig())

	res, err := m.Match(context.Background(), persona())
	require.NoError(t, err)
	assert.Len(t, res.Inspirations, 4)
	assert.Len(t, res.LeastMatches, 4)
	assert.Equal(t, res.Inspirations[0].ImagePath, res.LeastMatches[0].ImagePath)
}

func TestMatch_ClampsAndFallsBack(t *testing.T) {
	ranker := &fakeRanker{hits: []catalog.Hit{
		{ID: "a.jpg", Filename: "a.jpg", Similarity: 1.0004},
		{ID: "b.jpg", Description: "only id", Similarity: -0.2},
	}}
	m := NewMatcher(ranker, &fakeEmbedder{}, DefaultConfig())

	res, err := m.Match(context.Background(), persona())
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Inspirations[0].RelevanceScore)
	assert.Equal(t, NoDescription, res.Inspirations[0].Description)
	assert.Equal(t, 0.0, res.Inspirations[1].RelevanceScore)
	assert.Equal(t, "/house-image/b.jpg", res.Inspirations[1].ImagePath)
}

func TestMatch_Errors(t *testing.T) {
	ctx := context.Background()

	m := NewMatcher(&fakeRanker{}, &fakeEmbedder{}, DefaultConfig())
	_, err := m.Match(ctx, entity.UserReports{})
	assert.ErrorIs(t, err, ErrNoPreferences)

	m = NewMatcher(&fakeRanker{err: catalog.ErrEmptyIndex}, &fakeEmbedder{}, DefaultConfig())
	_, err = m.Match(ctx, persona())
	assert.ErrorIs(t, err, ErrCatalogNotIndexed)

	boom := errors.New("embedding service down")
	m = NewMatcher(&fakeRanker{}, &fakeEmbedder{err: boom}, DefaultConfig())
	_, err = m.Match(ctx, persona())
	assert.ErrorIs(t, err, boom)

	m = NewMatcher(&fakeRanker{}, &fakeEmbedder{vectors: map[string][]float32{
		"warm minimalism": {1, 0, 0},
	}}, DefaultConfig())
	_, err = m.Match(ctx, persona())
	assert.ErrorContains(t, err, "embedding dimension changed")
}

func TestMatch_WithChromemIndex(t *testing.T) {
	ctx := context.Background()
	idx, err := catalog.NewIndex("", func(ctx context.Context, text string) ([]float32, error) {
		return nil, errors.New("unused")
	})
	require.NoError(t, err)
	require.NoError(t, idx.Add(ctx, catalog.Image{Filename: "near.jpg", Description: "near"}, []float32{1, 0}))
	require.NoError(t, idx.Add(ctx, catalog.Image{Filename: "far.jpg"}, []float32{0, 1}))

	m := NewMatcher(idx, &fakeEmbedder{}, DefaultConfig())
	res, err := m.Match(ctx, persona())
	require.NoError(t, err)
	assert.Equal(t, "/house-image/near.jpg", res.Inspirations[0].ImagePath)
	assert.Equal(t, "/house-image/far.jpg", res.LeastMatches[1].ImagePath)
	assert.Equal(t, NoDescription, res.LeastMatches[1].Description)
}
