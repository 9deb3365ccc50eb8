package service

import (
	"context"

	"soulful-home-be/internal/pkg/logger"
	"soulful-home-be/pkg/events"
)

// EventPublisher emits domain events for the broker feed.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// publishEvent never fails the caller; the feed is auxiliary.
func publishEvent(ctx context.Context, publisher EventPublisher, log logger.ILogger, eventType string, data map[string]interface{}) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, events.New(eventType, data)); err != nil {
		log.Warn("EVENTS", "Failed to publish "+eventType+" event", map[string]interface{}{"error": err.Error()})
	}
}
