package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"soulful-home-be/internal/entity"
	"soulful-home-be/internal/pkg/logger"
	"soulful-home-be/internal/pkg/serverutils"
	"soulful-home-be/internal/repository/contract"
	"soulful-home-be/pkg/events"
	"soulful-home-be/pkg/matcher"
)

const reportFailureMessage = "Failed to generate report"

type PersonaGenerator interface {
	Generate(ctx context.Context, log entity.ConversationLog, selections entity.SelectionSet) (*entity.UserReports, error)
}

type ImageMatcher interface {
	Match(ctx context.Context, reports entity.UserReports) (*entity.SearchResults, error)
}

type IReportService interface {
	GenerateReport(ctx context.Context) (*entity.ReportResult, error)
	FetchReport(ctx context.Context) (*entity.ReportResult, error)
	Preview(ctx context.Context, reports *entity.UserReports) (*entity.SearchResults, error)
}

type reportService struct {
	conversationRepo contract.ConversationRepository
	selectionRepo    contract.SelectionRepository
	reportRepo       contract.ReportRepository
	persona          PersonaGenerator
	matcher          ImageMatcher
	eventPublisher   EventPublisher
	logger           logger.ILogger
	validate         *validator.Validate
}

func NewReportService(
	conversationRepo contract.ConversationRepository,
	selectionRepo contract.SelectionRepository,
	reportRepo contract.ReportRepository,
	persona PersonaGenerator,
	matcher ImageMatcher,
	eventPublisher EventPublisher,
	logger logger.ILogger,
) IReportService {
	return &reportService{
		conversationRepo: conversationRepo,
		selectionRepo:    selectionRepo,
		reportRepo:       reportRepo,
		persona:          persona,
		matcher:          matcher,
		eventPublisher:   eventPublisher,
		logger:           logger,
		validate:         validator.New(),
	}
}

// GenerateReport runs persona generation and matching over the stored quiz
// run. Nothing is persisted unless every step succeeds.
func (s *reportService) GenerateReport(ctx context.Context) (*entity.ReportResult, error) {
	log, err := s.conversationRepo.FindAll(ctx)
	if err != nil {
		return nil, s.fail("load conversation", err)
	}
	selections, err := s.selectionRepo.FindAll(ctx)
	if err != nil {
		return nil, s.fail("load selections", err)
	}

	s.logger.Info("REPORT", "Generating user reports", map[string]interface{}{
		"turns":      len(log),
		"selections": len(selections),
	})

	reports, err := s.persona.Generate(ctx, log, selections)
	if err != nil {
		return nil, s.fail("generate persona", err)
	}
	if err := s.validate.Struct(reports); err != nil {
		return nil, s.fail("validate persona", err)
	}

	results, err := s.matcher.Match(ctx, *reports)
	if err != nil {
		return nil, s.fail("match images", err)
	}
	if err := s.validate.Struct(results); err != nil {
		return nil, s.fail("validate search results", err)
	}

	report := &entity.ReportResult{UserReports: *reports, SearchResults: *results}
	if err := s.reportRepo.Save(ctx, report); err != nil {
		return nil, s.fail("save report", err)
	}

	s.logger.Info("REPORT", "Report generated", map[string]interface{}{
		"home_archetype": reports.HomeArchetype,
		"inspirations":   len(results.Inspirations),
		"least_matches":  len(results.LeastMatches),
	})
	publishEvent(ctx, s.eventPublisher, s.logger, events.ReportGenerated, map[string]interface{}{
		"homeArchetype":  reports.HomeArchetype,
		"aestheticStyle": reports.InternalReport.AestheticStyle.String(),
		"emotionalTone":  reports.InternalReport.EmotionalTone.String(),
		"packagedFor":    reports.InternalReport.PackagedFor.String(),
		"adResistance":   reports.InternalReport.TargetAdCopy.AdResistance.String(),
	})

	return report, nil
}

func (s *reportService) fail(step string, err error) error {
	s.logger.Error("REPORT", "Report generation failed", map[string]interface{}{
		"step":  step,
		"error": err.Error(),
	})

	wrapped := fmt.Errorf("%s: %w", step, err)
	if errors.Is(err, matcher.ErrCatalogNotIndexed) {
		return serverutils.NewServiceUnavailableError(reportFailureMessage, wrapped)
	}
	return serverutils.NewInternalError(reportFailureMessage, wrapped)
}

func (s *reportService) FetchReport(ctx context.Context) (*entity.ReportResult, error) {
	report, err := s.reportRepo.FindLatest(ctx)
	if errors.Is(err, contract.ErrNotFound) {
		return nil, serverutils.NewNotFoundError("no report has been generated yet")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load report: %w", err)
	}
	return report, nil
}

// Preview matches an arbitrary persona against the catalog without storing
// anything.
func (s *reportService) Preview(ctx context.Context, reports *entity.UserReports) (*entity.SearchResults, error) {
	results, err := s.matcher.Match(ctx, *reports)
	switch {
	case errors.Is(err, matcher.ErrNoPreferences):
		return nil, serverutils.NewBadRequestError("persona has nothing to match on", err)
	case errors.Is(err, matcher.ErrCatalogNotIndexed):
		return nil, serverutils.NewServiceUnavailableError("image catalog is still indexing", err)
	case err != nil:
		return nil, serverutils.NewInternalError("failed to perform semantic search", err)
	}
	return results, nil
}
