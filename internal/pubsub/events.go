// Package pubsub provides a small generic publish/subscribe broker.
// The grid uses it to hear about region index swaps and sheet reloads.
package pubsub

import (
	"context"
	"time"
)

// EventType names what happened to a payload.
type EventType string

const (
	CreatedEvent EventType = "created"
	UpdatedEvent EventType = "updated"
	FailedEvent  EventType = "failed"
)

// Event carries a typed payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Err       error
	Timestamp time.Time
}

// Subscriber hands out event channels.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher publishes typed payloads.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T)
	PublishErr(err error)
}
