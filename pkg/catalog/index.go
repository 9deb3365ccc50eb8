package catalog

import (
	"context"
	"errors"
	"fmt"

	chromem "github.com/philippgille/chromem-go"
)

const collectionName = "house-images"

var ErrEmptyIndex = errors.New("catalog index is empty")

// EmbedFunc produces a document embedding for text. chromem only calls it
// for documents added without a precomputed embedding.
type EmbedFunc func(ctx context.Context, text string) ([]float32, error)

type Hit struct {
	ID          string
	Filename    string
	Description string
	Similarity  float32
}

type Index struct {
	db         *chromem.DB
	collection *chromem.Collection
}

// NewIndex opens the collection, persisted under persistPath when it is set.
func NewIndex(persistPath string, embed EmbedFunc) (*Index, error) {
	var db *chromem.DB
	if persistPath != "" {
		var err error
		db, err = chromem.NewPersistentDB(persistPath, false)
		if err != nil {
			return nil, fmt.Errorf("create persistent DB: %w", err)
		}
	} else {
		db = chromem.NewDB()
	}

	collection, err := db.GetOrCreateCollection(collectionName, nil, chromem.EmbeddingFunc(embed))
	if err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}

	return &Index{db: db, collection: collection}, nil
}

// Add stores img with its embedding, replacing any previous entry for the
// same filename.
func (i *Index) Add(ctx context.Context, img Image, vector []float32) error {
	err := i.collection.AddDocument(ctx, chromem.Document{
		ID:        img.Filename,
		Content:   img.EmbeddingInput(),
		Embedding: vector,
		Metadata:  img.Metadata(),
	})
	if err != nil {
		return fmt.Errorf("add document %s: %w", img.Filename, err)
	}
	return nil
}

// Has reports whether an image with this filename is already indexed.
func (i *Index) Has(ctx context.Context, filename string) bool {
	_, err := i.collection.GetByID(ctx, filename)
	return err == nil
}

func (i *Index) Count() int {
	return i.collection.Count()
}

// RankAll returns every indexed image ordered by cosine similarity to query,
// most similar first.
func (i *Index) RankAll(ctx context.Context, query []float32) ([]Hit, error) {
	n := i.collection.Count()
	if n == 0 {
		return nil, ErrEmptyIndex
	}

	results, err := i.collection.QueryEmbedding(ctx, query, n, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("query collection: %w", err)
	}

	hits := make([]Hit, 0, len(results))
	for _, r := range results {
		hits = append(hits, Hit{
			ID:          r.ID,
			Filename:    r.Metadata["filename"],
			Description: r.Metadata["description"],
			Similarity:  r.Similarity,
		})
	}
	return hits, nil
}
