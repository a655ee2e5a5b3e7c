// Package pubsub defines the message bus contracts the relay is built on and
// an in-process implementation backed by Watermill.
package pubsub

import "context"

// Message is the unit passed between components on the bus.
type Message struct {
	// Topic identifies the channel the message belongs to (e.g. "chat.events").
	Topic string
	// UserID identifies the participant the message originates from, if any.
	UserID string
	// Payload contains the raw message data.
	Payload []byte
	// Metadata can carry arbitrary key-value context (e.g. timestamps).
	Metadata map[string]string
}

// Handler processes a single received message. Returning an error marks the
// message as not processed.
type Handler func(ctx context.Context, msg Message) error

// Publisher is the contract for sending messages onto the bus.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber is the contract for receiving messages from the bus.
type Subscriber interface {
	// Subscribe starts delivering messages on the given topic to the handler.
	// It returns once the subscription is established; delivery continues in
	// the background until the context is canceled or the bus closes.
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}
