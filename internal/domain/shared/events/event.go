package events

import (
	"context"
	"time"
)

// DomainEvent represents a domain event interface
type DomainEvent interface {
	// GetAggregateID returns the ID of the aggregate that generated the event
	GetAggregateID() string

	// GetEventType returns the type/name of the event
	GetEventType() string

	// GetOccurredAt returns when the event occurred
	GetOccurredAt() time.Time
}

// BaseEvent provides common fields for all domain events
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// NewBaseEvent builds the common part of an event.
func NewBaseEvent(aggregateID, eventType string, occurredAt time.Time) BaseEvent {
	return BaseEvent{
		AggregateID: aggregateID,
		EventType:   eventType,
		OccurredAt:  occurredAt,
	}
}

func (e BaseEvent) GetAggregateID() string   { return e.AggregateID }
func (e BaseEvent) GetEventType() string     { return e.EventType }
func (e BaseEvent) GetOccurredAt() time.Time { return e.OccurredAt }

// EventHandler represents a handler for domain events. Handlers run in the
// publisher's context, so writes they make join the publisher's transaction.
type EventHandler interface {
	Handle(ctx context.Context, event DomainEvent) error
}

// HandlerFunc adapts a function to EventHandler.
type HandlerFunc func(ctx context.Context, event DomainEvent) error

func (f HandlerFunc) Handle(ctx context.Context, event DomainEvent) error {
	return f(ctx, event)
}

// EventPublisher publishes domain events
type EventPublisher interface {
	PublishAll(ctx context.Context, events []DomainEvent) error
}

// EventSubscriber subscribes to domain events
type EventSubscriber interface {
	Subscribe(eventType string, handler EventHandler) error
}

// EventDispatcher combines publisher and subscriber functionality
type EventDispatcher interface {
	EventPublisher
	EventSubscriber
}
