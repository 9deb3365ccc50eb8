package service

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"

	"soulful-home-be/internal/dto"
	"soulful-home-be/internal/pkg/logger"
	"soulful-home-be/pkg/events"
)

const brokerModule = "BROKER"

// IBrokerService keeps the "data broker" trail: every fact the user gave
// away, in the order it was collected.
type IBrokerService interface {
	Consume(ctx context.Context) error
	Feed(ctx context.Context, limit, offset int) (*dto.BrokerFeedResponse, error)
}

type brokerService struct {
	subscriber message.Subscriber
	topicName  string
	feedLogger logger.ILogger
	feedReader logger.FeedReader
	logger     logger.ILogger
}

func NewBrokerService(
	subscriber message.Subscriber,
	topicName string,
	feedLogger logger.ILogger,
	feedReader logger.FeedReader,
	logger logger.ILogger,
) IBrokerService {
	return &brokerService{
		subscriber: subscriber,
		topicName:  topicName,
		feedLogger: feedLogger,
		feedReader: feedReader,
		logger:     logger,
	}
}

func (s *brokerService) Consume(ctx context.Context) error {
	messages, err := s.subscriber.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.record(msg)
		}
	}()

	return nil
}

func (s *brokerService) record(msg *message.Message) {
	defer msg.Ack()

	evt, err := events.Decode(msg)
	if err != nil {
		s.logger.Error("BROKER", "Dropping undecodable event", map[string]interface{}{"error": err.Error()})
		return
	}

	details := make(map[string]interface{}, len(evt.Data)+1)
	for k, v := range evt.Data {
		details[k] = v
	}
	details["occurred_at"] = evt.OccurredAt
	s.feedLogger.Info(brokerModule, evt.Type, details)
}

func (s *brokerService) Feed(ctx context.Context, limit, offset int) (*dto.BrokerFeedResponse, error) {
	entries, total, err := s.feedReader.GetLogs(brokerModule, limit, offset)
	if err != nil {
		return nil, err
	}

	res := &dto.BrokerFeedResponse{Total: total, Entries: make([]dto.BrokerFeedEntry, 0, len(entries))}
	for _, e := range entries {
		res.Entries = append(res.Entries, dto.BrokerFeedEntry{
			Id:         e.Id,
			Type:       e.Message,
			Data:       e.Details,
			RecordedAt: e.Timestamp,
		})
	}
	return res, nil
}
