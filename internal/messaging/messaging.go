// Package messaging defines the event publishing boundary between the
// storefront service and whatever broker the deployment provides.
package messaging

import (
	"context"
	"log/slog"
)

// Publisher defines an interface for publishing events to a message broker.
type Publisher interface {
	PublishEvent(ctx context.Context, topic string, key string, event any) error
}

// LogPublisher writes events to the structured log instead of a
// broker. It is the default when no brokers are configured.
type LogPublisher struct{}

func (LogPublisher) PublishEvent(ctx context.Context, topic string, key string, event any) error {
	slog.Debug("Event published (log only)", "topic", topic, "key", key, "event", event)
	return nil
}
