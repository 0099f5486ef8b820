// Package pubsub carries domain events between the catalog's services in-process.
package pubsub

import (
	"context"
)

// Message is an event on the bus.
type Message struct {
	// Topic identifies the event, e.g. "schemes.created".
	Topic string
	// Payload is the JSON-encoded event.
	Payload []byte
	// Metadata carries optional context such as the request ID.
	Metadata map[string]string
}

// Handler processes one received message.
type Handler func(ctx context.Context, msg Message) error

// Publisher sends messages.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber receives messages.
type Subscriber interface {
	// Subscribe starts delivering topic to handler in the background and returns
	// once the subscription is active. Delivery stops when ctx is canceled.
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}
