package events

import (
	"context"
	"fmt"
	"sync"
)

// WildcardEventType subscribes a handler to every event type.
const WildcardEventType = "*"

// InMemoryEventDispatcher delivers events synchronously to the handlers
// subscribed for their type, in subscription order. The first handler error
// aborts delivery and is returned to the publisher.
type InMemoryEventDispatcher struct {
	handlers map[string][]EventHandler
	mu       sync.RWMutex
}

// NewInMemoryEventDispatcher creates a new in-memory event dispatcher
func NewInMemoryEventDispatcher() *InMemoryEventDispatcher {
	return &InMemoryEventDispatcher{
		handlers: make(map[string][]EventHandler),
	}
}

// Subscribe registers a handler for an event type, or for every type when
// eventType is WildcardEventType.
func (d *InMemoryEventDispatcher) Subscribe(eventType string, handler EventHandler) error {
	if eventType == "" {
		return fmt.Errorf("event type cannot be empty")
	}
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventType] = append(d.handlers[eventType], handler)
	return nil
}

// PublishAll delivers events in order.
func (d *InMemoryEventDispatcher) PublishAll(ctx context.Context, events []DomainEvent) error {
	for _, event := range events {
		if err := d.publish(ctx, event); err != nil {
			return fmt.Errorf("failed to publish event %s: %w", event.GetEventType(), err)
		}
	}
	return nil
}

func (d *InMemoryEventDispatcher) publish(ctx context.Context, event DomainEvent) error {
	d.mu.RLock()
	handlers := make([]EventHandler, 0, len(d.handlers[event.GetEventType()])+len(d.handlers[WildcardEventType]))
	handlers = append(handlers, d.handlers[event.GetEventType()]...)
	handlers = append(handlers, d.handlers[WildcardEventType]...)
	d.mu.RUnlock()

	for _, h := range handlers {
		if err := h.Handle(ctx, event); err != nil {
			return err
		}
	}
	return nil
}
