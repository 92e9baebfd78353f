// Package event consumes product domain events and invalidates the
// catalog snapshot so the next search sees fresh data.
package event

import (
	"context"
	"log/slog"

	pkgkafka "github.com/emveka/beautydiscountnext-sub000/pkg/kafka"
)

// Kafka topic constants for product domain events.
const (
	TopicProductCreated = "beautydiscount.product.created"
	TopicProductUpdated = "beautydiscount.product.updated"
	TopicProductDeleted = "beautydiscount.product.deleted"
)

// StaleMarker invalidates the cached catalog snapshot.
type StaleMarker interface {
	MarkStale()
}

// Consumer handles product change events. Any create, update or delete
// invalidates the whole snapshot since the catalog is refreshed wholesale.
// Invalidation is routed through a trigger so event bursts (bulk imports,
// price syncs) collapse into a single refresh.
type Consumer struct {
	trigger func()
	logger  *slog.Logger
}

// NewConsumer creates an event consumer that calls trigger on every
// relevant product event.
func NewConsumer(trigger func(), logger *slog.Logger) *Consumer {
	return &Consumer{
		trigger: trigger,
		logger:  logger,
	}
}

// Handle processes a Kafka event based on its type.
func (c *Consumer) Handle(ctx context.Context, event *pkgkafka.Event) error {
	switch event.EventType {
	case TopicProductCreated, TopicProductUpdated, TopicProductDeleted:
		c.logger.InfoContext(ctx, "catalog invalidation triggered",
			slog.String("event_type", event.EventType),
			slog.String("aggregate_id", event.AggregateID),
		)
		c.trigger()
		return nil
	default:
		c.logger.WarnContext(ctx, "unknown event type received",
			slog.String("event_type", event.EventType),
			slog.String("event_id", event.EventID),
		)
		return nil
	}
}
