package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"

	"soulful-home-be/internal/dto"
	"soulful-home-be/internal/pkg/logger"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains catalog indexing jobs.
type consumerService struct {
	subscriber     message.Subscriber
	topicName      string
	catalogService ICatalogService
	logger         logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	catalogService ICatalogService,
	logger logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber:     subscriber,
		topicName:      topicName,
		catalogService: catalogService,
		logger:         logger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

// processMessage always acks. A failed image stays unindexed and is queued
// again by the next IndexAll.
func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	defer msg.Ack()

	var payload dto.IndexImageMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("CONSUMER", "Failed to unmarshal message", map[string]interface{}{"error": err.Error()})
		return
	}

	if err := cs.catalogService.IndexImage(ctx, payload.Image); err != nil {
		cs.logger.Error("CONSUMER", "Failed to index image", map[string]interface{}{
			"filename": payload.Image.Filename,
			"error":    err.Error(),
		})
		return
	}

	cs.logger.Debug("CONSUMER", "Image indexed", map[string]interface{}{"filename": payload.Image.Filename})
}
