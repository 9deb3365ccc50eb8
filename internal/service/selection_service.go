package service

import (
	"context"
	"fmt"

	"soulful-home-be/internal/dto"
	"soulful-home-be/internal/entity"
	"soulful-home-be/internal/pkg/logger"
	"soulful-home-be/internal/repository/contract"
	"soulful-home-be/pkg/events"
)

type ISelectionService interface {
	RecordSelection(ctx context.Context, req *dto.RecordSelectionRequest) (*dto.RecordSelectionResponse, error)
	GetSelections(ctx context.Context) (entity.SelectionSet, error)
}

type selectionService struct {
	repo           contract.SelectionRepository
	eventPublisher EventPublisher
	logger         logger.ILogger
}

func NewSelectionService(repo contract.SelectionRepository, eventPublisher EventPublisher, logger logger.ILogger) ISelectionService {
	return &selectionService{
		repo:           repo,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

func (s *selectionService) RecordSelection(ctx context.Context, req *dto.RecordSelectionRequest) (*dto.RecordSelectionResponse, error) {
	selection := entity.Selection{
		OptionId: req.OptionId,
		Tags:     normalizeTags(req.Tags),
	}

	if err := s.repo.Upsert(ctx, req.QuestionId, selection); err != nil {
		return nil, fmt.Errorf("failed to process selection: %w", err)
	}

	s.logger.Info("SELECTION", "Selection recorded", map[string]interface{}{
		"question_id": req.QuestionId,
		"option_id":   req.OptionId,
	})
	publishEvent(ctx, s.eventPublisher, s.logger, events.SelectionRecorded, map[string]interface{}{
		"questionId":  req.QuestionId,
		"optionId":    req.OptionId,
		"style":       selection.Tags.Style,
		"personality": selection.Tags.Personality,
		"emotional":   selection.Tags.Emotional,
	})

	return &dto.RecordSelectionResponse{Success: true}, nil
}

func (s *selectionService) GetSelections(ctx context.Context) (entity.SelectionSet, error) {
	return s.repo.FindAll(ctx)
}

// normalizeTags stores missing facets as empty lists so documents always
// carry all three keys.
func normalizeTags(tags entity.Tags) entity.Tags {
	if tags.Style == nil {
		tags.Style = []string{}
	}
	if tags.Personality == nil {
		tags.Personality = []string{}
	}
	if tags.Emotional == nil {
		tags.Emotional = []string{}
	}
	return tags
}
