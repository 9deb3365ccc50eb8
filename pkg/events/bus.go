package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// Publisher sends events to a watermill topic as JSON.
type Publisher struct {
	publisher message.Publisher
	topic     string
}

func NewPublisher(publisher message.Publisher, topic string) *Publisher {
	return &Publisher{publisher: publisher, topic: topic}
}

func (p *Publisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(BaseEvent{
		Type:       event.EventType(),
		Data:       event.Payload(),
		OccurredAt: event.Timestamp(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", event.EventType(), err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	if err := p.publisher.Publish(p.topic, msg); err != nil {
		return fmt.Errorf("failed to publish event to topic %s: %w", p.topic, err)
	}
	return nil
}

func Decode(msg *message.Message) (BaseEvent, error) {
	var evt BaseEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		return BaseEvent{}, fmt.Errorf("failed to decode event: %w", err)
	}
	return evt, nil
}
