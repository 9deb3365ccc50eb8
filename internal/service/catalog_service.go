package service

import (
	"context"
	"encoding/json"
	"fmt"

	"soulful-home-be/internal/dto"
	"soulful-home-be/internal/pkg/logger"
	"soulful-home-be/pkg/catalog"
	"soulful-home-be/pkg/embedding"
)

// CatalogIndex is the part of catalog.Index the indexer writes to.
type CatalogIndex interface {
	Add(ctx context.Context, img catalog.Image, vector []float32) error
	Has(ctx context.Context, filename string) bool
	Count() int
}

type ICatalogService interface {
	// IndexAll queues every image that is not indexed yet.
	IndexAll(ctx context.Context) (*dto.IndexCatalogResponse, error)
	// IndexImage embeds one image and stores it in the index.
	IndexImage(ctx context.Context, img catalog.Image) error
	Indexed() int
	Size() int
}

type catalogService struct {
	images            []catalog.Image
	index             CatalogIndex
	embeddingProvider embedding.EmbeddingProvider
	publisherService  IPublisherService
	logger            logger.ILogger
}

func NewCatalogService(
	images []catalog.Image,
	index CatalogIndex,
	embeddingProvider embedding.EmbeddingProvider,
	publisherService IPublisherService,
	logger logger.ILogger,
) ICatalogService {
	return &catalogService{
		images:            images,
		index:             index,
		embeddingProvider: embeddingProvider,
		publisherService:  publisherService,
		logger:            logger,
	}
}

func (s *catalogService) IndexAll(ctx context.Context) (*dto.IndexCatalogResponse, error) {
	res := &dto.IndexCatalogResponse{}
	for _, img := range s.images {
		if s.index.Has(ctx, img.Filename) {
			res.Skipped++
			continue
		}

		payload, err := json.Marshal(dto.IndexImageMessage{Image: img})
		if err != nil {
			return nil, err
		}
		if err := s.publisherService.Publish(ctx, payload); err != nil {
			return nil, fmt.Errorf("failed to queue %s: %w", img.Filename, err)
		}
		res.Queued++
	}

	s.logger.Info("CATALOG", "Catalog indexing queued", map[string]interface{}{
		"queued":  res.Queued,
		"skipped": res.Skipped,
	})
	return res, nil
}

func (s *catalogService) IndexImage(ctx context.Context, img catalog.Image) error {
	res, err := s.embeddingProvider.Generate(ctx, img.EmbeddingInput(), embedding.TaskRetrievalDocument)
	if err != nil {
		return fmt.Errorf("embed %s: %w", img.Filename, err)
	}
	return s.index.Add(ctx, img, res.Embedding.Values)
}

func (s *catalogService) Indexed() int {
	return s.index.Count()
}

func (s *catalogService) Size() int {
	return len(s.images)
}
