// Package matcher ranks catalog images against a persona.
package matcher

import (
	"context"
	"errors"
	"fmt"
	"math"

	"soulful-home-be/internal/entity"
	"soulful-home-be/pkg/catalog"
	"soulful-home-be/pkg/embedding"
)

var (
	ErrNoPreferences     = errors.New("persona has no preference fields to match on")
	ErrCatalogNotIndexed = errors.New("image catalog is not indexed yet")
)

const NoDescription = "No description available"

// Ranker is the part of the catalog index the matcher needs.
type Ranker interface {
	RankAll(ctx context.Context, query []float32) ([]catalog.Hit, error)
}

type Config struct {
	TopK        int    // size of each result list
	ImagePrefix string // URL prefix prepended to file names
}

func DefaultConfig() Config {
	return Config{
		TopK:        6,
		ImagePrefix: "/house-image/",
	}
}

type Matcher struct {
	index    Ranker
	embedder embedding.EmbeddingProvider
	config   Config
}

func NewMatcher(index Ranker, embedder embedding.EmbeddingProvider, config Config) *Matcher {
	if config.TopK <= 0 {
		config.TopK = DefaultConfig().TopK
	}
	return &Matcher{index: index, embedder: embedder, config: config}
}

// Match embeds every preference of the persona, averages them into one
// query and returns the closest and the farthest catalog images.
func (m *Matcher) Match(ctx context.Context, reports entity.UserReports) (*entity.SearchResults, error) {
	prefs := reports.Preferences()
	if len(prefs) == 0 {
		return nil, ErrNoPreferences
	}

	query, err := m.queryVector(ctx, prefs)
	if err != nil {
		return nil, err
	}

	hits, err := m.index.RankAll(ctx, query)
	if errors.Is(err, catalog.ErrEmptyIndex) {
		return nil, ErrCatalogNotIndexed
	}
	if err != nil {
		return nil, err
	}

	k := m.config.TopK
	if k > len(hits) {
		k = len(hits)
	}

	return &entity.SearchResults{
		Inspirations: m.toMatches(hits[:k], prefs),
		LeastMatches: m.toMatches(hits[len(hits)-k:], prefs),
	}, nil
}

func (m *Matcher) queryVector(ctx context.Context, prefs []string) ([]float32, error) {
	var sum []float64
	for _, pref := range prefs {
		res, err := m.embedder.Generate(ctx, pref, embedding.TaskRetrievalQuery)
		if err != nil {
			return nil, fmt.Errorf("embed preference %q: %w", pref, err)
		}
		values := res.Embedding.Values
		if sum == nil {
			sum = make([]float64, len(values))
		}
		if len(values) != len(sum) {
			return nil, fmt.Errorf("embedding dimension changed: %d != %d", len(values), len(sum))
		}
		for i, v := range values {
			sum[i] += float64(v)
		}
	}

	var norm float64
	for _, v := range sum {
		norm += v * v
	}
	norm = math.Sqrt(norm)

	query := make([]float32, len(sum))
	for i, v := range sum {
		if norm > 0 {
			v /= norm
		}
		query[i] = float32(v)
	}
	return query, nil
}

func (m *Matcher) toMatches(hits []catalog.Hit, prefs []string) []entity.Match {
	matches := make([]entity.Match, 0, len(hits))
	for _, h := range hits {
		filename := h.Filename
		if filename == "" {
			filename = h.ID
		}
		description := h.Description
		if description == "" {
			description = NoDescription
		}
		aspects := make([]string, len(prefs))
		copy(aspects, prefs)

		matches = append(matches, entity.Match{
			ImagePath:       m.config.ImagePrefix + filename,
			Description:     description,
			RelevanceScore:  clamp(float64(h.Similarity)),
			MatchingAspects: aspects,
		})
	}
	return matches
}

func clamp(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
