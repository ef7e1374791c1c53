// Package pubsub provides a generic publish/subscribe event system.
//
// Two brokers exist in poststates: a Broker[string] inside internal/log for
// streaming log entries, and a Broker[OptionChange] owned by the option store
// so the admin list can refresh when stored option values change.
package pubsub

import (
	"context"
	"time"
)

// EventType represents the type of event being published.
type EventType string

const (
	CreatedEvent EventType = "created"
	UpdatedEvent EventType = "updated"
	DeletedEvent EventType = "deleted"
)

// Event represents a published event with a typed payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// OptionChange is the payload published when an option's stored value is
// written or deleted. Value is empty for deletions.
type OptionChange struct {
	Key   string
	Value string
}

// Subscriber provides a subscription channel for events.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher allows publishing events with a typed payload.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T)
}
