package chat

import (
	"context"
	"log/slog"

	"github.com/chatwire/chatwire/internal/hub"
	"github.com/chatwire/chatwire/internal/pubsub"
)

// EventBridge is the single consumer of TopicEvents. It forwards every
// envelope, in publish order, to the hub that fans frames out to connected
// sessions. Keeping one subscription between the bus and the hub preserves
// the shared delivery order every session observes.
type EventBridge struct {
	subscriber pubsub.Subscriber
	hub        *hub.Hub
}

// NewEventBridge creates a bridge between the bus and the given hub.
func NewEventBridge(sub pubsub.Subscriber, h *hub.Hub) *EventBridge {
	return &EventBridge{subscriber: sub, hub: h}
}

// Start subscribes to the event topic. Forwarding continues in the
// background until the context is canceled or the bus closes.
func (b *EventBridge) Start(ctx context.Context) error {
	slog.Info("starting event bridge", "topic", TopicEvents)
	return b.subscriber.Subscribe(ctx, TopicEvents, b.handleEvent)
}

func (b *EventBridge) handleEvent(ctx context.Context, msg pubsub.Message) error {
	b.hub.Publish(msg.Payload)
	return nil
}
