package event

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgkafka "github.com/emveka/beautydiscountnext-sub000/pkg/kafka"
)

func newTestEvent(t *testing.T, eventType string) *pkgkafka.Event {
	t.Helper()
	data, err := json.Marshal(map[string]string{"id": "p-1"})
	require.NoError(t, err)
	return &pkgkafka.Event{
		EventID:     "evt-1",
		EventType:   eventType,
		AggregateID: "p-1",
		Data:        data,
	}
}

func TestConsumer_ProductEventsTriggerInvalidation(t *testing.T) {
	for _, eventType := range []string{TopicProductCreated, TopicProductUpdated, TopicProductDeleted} {
		t.Run(eventType, func(t *testing.T) {
			triggered := 0
			c := NewConsumer(func() { triggered++ }, slog.Default())

			err := c.Handle(context.Background(), newTestEvent(t, eventType))

			require.NoError(t, err)
			assert.Equal(t, 1, triggered)
		})
	}
}

func TestConsumer_UnknownEventIgnored(t *testing.T) {
	triggered := 0
	c := NewConsumer(func() { triggered++ }, slog.Default())

	err := c.Handle(context.Background(), newTestEvent(t, "beautydiscount.order.created"))

	require.NoError(t, err)
	assert.Zero(t, triggered)
}
