package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"soulful-home-be/internal/config"
	"soulful-home-be/internal/controller"
	"soulful-home-be/internal/pkg/logger"
	"soulful-home-be/internal/repository/implementation"
	"soulful-home-be/internal/service"
	"soulful-home-be/pkg/catalog"
	"soulful-home-be/pkg/docstore"
	storeFactory "soulful-home-be/pkg/docstore/factory"
	"soulful-home-be/pkg/embedding"
	"soulful-home-be/pkg/events"
	"soulful-home-be/pkg/llm/factory"
	"soulful-home-be/pkg/matcher"
	"soulful-home-be/pkg/persona"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	SelectionController    controller.ISelectionController
	ConversationController controller.IConversationController
	ReportController       controller.IReportController
	BrokerController       controller.IBrokerController
	CatalogController      controller.ICatalogController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
	BrokerService   service.IBrokerService
	CatalogService  service.ICatalogService

	Logger logger.ILogger

	store  docstore.Store
	pubSub *gochannel.GoChannel
}

func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	brokerLogger := logger.NewIsolatedLogger(cfg.App.BrokerLogPath)

	store, err := storeFactory.NewStore(ctx, storeFactory.Options{
		Driver:      cfg.Store.Driver,
		Dir:         cfg.Store.Dir,
		RedisURL:    cfg.Store.RedisURL,
		RedisPrefix: cfg.Store.RedisPrefix,
		PostgresDSN: cfg.Store.Connection,
		Verbose:     cfg.App.Environment != "production",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Store.Driver, err)
	}
	log.Printf("[INFO] Using Store Driver: %s", cfg.Store.Driver)

	selectionRepo := implementation.NewSelectionRepository(store)
	conversationRepo := implementation.NewConversationRepository(store)
	reportRepo := implementation.NewReportRepository(store)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	eventPublisher := events.NewPublisher(pubSub, cfg.Quiz.EventTopic)

	// 3. AI Providers
	embeddingProvider, err := embedding.NewProvider(embedding.Options{
		Provider:      cfg.Ai.EmbeddingProvider,
		Model:         cfg.Ai.EmbeddingModel,
		OpenAIKey:     cfg.Ai.OpenAIKey,
		OpenAIBaseURL: cfg.Ai.EmbeddingBaseURL,
		OllamaBaseURL: cfg.Ai.OllamaBaseURL,
		GeminiKey:     cfg.Ai.GoogleGemini,
		CacheSize:     cfg.Ai.EmbeddingCacheSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize embedding provider: %w", err)
	}
	log.Printf("[INFO] Using Embedding Provider: %s", cfg.Ai.EmbeddingProvider)

	llmBaseURL := cfg.Ai.LLMBaseURL
	if llmBaseURL == "" && cfg.Ai.LLMProvider == "ollama" {
		llmBaseURL = cfg.Ai.OllamaBaseURL
	}
	llmKey := cfg.Ai.OpenAIKey
	if cfg.Ai.LLMProvider == "gemini" {
		llmKey = cfg.Ai.GoogleGemini
	}
	llmProvider, err := factory.NewLLMProvider(cfg.Ai.LLMProvider, cfg.Ai.LLMModel, llmBaseURL, llmKey)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM provider: %w", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Image Catalog
	images, err := catalog.Load(cfg.Catalog.Path)
	if errors.Is(err, os.ErrNotExist) {
		sysLogger.Warn("CATALOG", "Catalog file not found, matching disabled", map[string]interface{}{"path": cfg.Catalog.Path})
		images = nil
	} else if err != nil {
		return nil, err
	}

	index, err := catalog.NewIndex(cfg.Catalog.VectorPath, func(ctx context.Context, text string) ([]float32, error) {
		res, err := embeddingProvider.Generate(ctx, text, embedding.TaskRetrievalDocument)
		if err != nil {
			return nil, err
		}
		return res.Embedding.Values, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open vector index: %w", err)
	}

	// 5. Services
	publisherService := service.NewPublisherService(cfg.Catalog.TopicName, pubSub)
	catalogService := service.NewCatalogService(images, index, embeddingProvider, publisherService, sysLogger)
	consumerService := service.NewConsumerService(pubSub, cfg.Catalog.TopicName, catalogService, sysLogger)
	brokerService := service.NewBrokerService(pubSub, cfg.Quiz.EventTopic, brokerLogger, brokerLogger, sysLogger)

	selectionService := service.NewSelectionService(selectionRepo, eventPublisher, sysLogger)
	conversationService := service.NewConversationService(
		conversationRepo,
		selectionRepo,
		llmProvider, // Injected
		eventPublisher,
		sysLogger,
		cfg.Quiz.FirstQuestion,
	)
	reportService := service.NewReportService(
		conversationRepo,
		selectionRepo,
		reportRepo,
		persona.NewGenerator(llmProvider),
		matcher.NewMatcher(index, embeddingProvider, matcher.DefaultConfig()),
		eventPublisher,
		sysLogger,
	)

	// 6. Controllers
	return &Container{
		SelectionController:    controller.NewSelectionController(selectionService),
		ConversationController: controller.NewConversationController(conversationService),
		ReportController:       controller.NewReportController(reportService),
		BrokerController:       controller.NewBrokerController(brokerService),
		CatalogController:      controller.NewCatalogController(catalogService),

		ConsumerService: consumerService,
		BrokerService:   brokerService,
		CatalogService:  catalogService,

		Logger: sysLogger,

		store:  store,
		pubSub: pubSub,
	}, nil
}

// Start launches the bus consumers and queues catalog indexing.
func (c *Container) Start(ctx context.Context, indexCatalog bool) error {
	if err := c.ConsumerService.Consume(ctx); err != nil {
		return fmt.Errorf("failed to start catalog consumer: %w", err)
	}
	if err := c.BrokerService.Consume(ctx); err != nil {
		return fmt.Errorf("failed to start broker consumer: %w", err)
	}
	if indexCatalog {
		if _, err := c.CatalogService.IndexAll(ctx); err != nil {
			return fmt.Errorf("failed to queue catalog indexing: %w", err)
		}
	}
	return nil
}

func (c *Container) Close() error {
	err := c.pubSub.Close()
	if storeErr := c.store.Close(); storeErr != nil && err == nil {
		err = storeErr
	}
	_ = c.Logger.Sync()
	return err
}
