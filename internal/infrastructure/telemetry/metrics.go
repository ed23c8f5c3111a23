package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"campusvoice/internal/domain/issue"
	"campusvoice/internal/domain/shared/events"
)

const lifecycleScopeName = "campusvoice/issue"

// LifecycleMetrics counts issue lifecycle events and refused actions.
// It subscribes to the event dispatcher as a wildcard handler.
type LifecycleMetrics struct {
	transitions metric.Int64Counter
	refusals    metric.Int64Counter
}

// NewLifecycleMetrics registers the counters on meter. A nil meter uses
// the global provider.
func NewLifecycleMetrics(meter metric.Meter) (*LifecycleMetrics, error) {
	if meter == nil {
		meter = Meter(lifecycleScopeName)
	}
	transitions, err := meter.Int64Counter("campusvoice.issue.events",
		metric.WithDescription("Issue lifecycle events by type and resulting status"),
	)
	if err != nil {
		return nil, err
	}
	refusals, err := meter.Int64Counter("campusvoice.issue.refusals",
		metric.WithDescription("Issue actions refused by a domain guard, by error type"),
	)
	if err != nil {
		return nil, err
	}
	return &LifecycleMetrics{transitions: transitions, refusals: refusals}, nil
}

// Handle implements events.EventHandler.
func (m *LifecycleMetrics) Handle(ctx context.Context, event events.DomainEvent) error {
	attrs := []attribute.KeyValue{attribute.String("event_type", event.GetEventType())}
	if e, ok := event.(issue.LifecycleEvent); ok {
		attrs = append(attrs, attribute.String("to_status", e.ToStatus))
	}
	m.transitions.Add(ctx, 1, metric.WithAttributes(attrs...))
	return nil
}

// RecordRefusal counts an action rejected with an application error.
func (m *LifecycleMetrics) RecordRefusal(ctx context.Context, errorType string) {
	m.refusals.Add(ctx, 1, metric.WithAttributes(attribute.String("error_type", errorType)))
}
