package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	BaseEvent
}

func newTestEvent(eventType string) testEvent {
	return testEvent{BaseEvent: NewBaseEvent("iss_1", eventType, time.Now())}
}

func TestInMemoryEventDispatcher_DeliversByType(t *testing.T) {
	d := NewInMemoryEventDispatcher()

	var got []string
	require.NoError(t, d.Subscribe("issue.approved", HandlerFunc(func(ctx context.Context, e DomainEvent) error {
		got = append(got, "typed:"+e.GetEventType())
		return nil
	})))
	require.NoError(t, d.Subscribe(WildcardEventType, HandlerFunc(func(ctx context.Context, e DomainEvent) error {
		got = append(got, "any:"+e.GetEventType())
		return nil
	})))

	err := d.PublishAll(context.Background(), []DomainEvent{
		newTestEvent("issue.approved"),
		newTestEvent("issue.resolved"),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"typed:issue.approved", "any:issue.approved", "any:issue.resolved"}, got)
}

func TestInMemoryEventDispatcher_StopsOnError(t *testing.T) {
	d := NewInMemoryEventDispatcher()
	boom := errors.New("boom")

	calls := 0
	require.NoError(t, d.Subscribe(WildcardEventType, HandlerFunc(func(ctx context.Context, e DomainEvent) error {
		calls++
		return boom
	})))

	err := d.PublishAll(context.Background(), []DomainEvent{newTestEvent("a"), newTestEvent("b")})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestInMemoryEventDispatcher_SubscribeValidation(t *testing.T) {
	d := NewInMemoryEventDispatcher()
	assert.Error(t, d.Subscribe("", HandlerFunc(func(context.Context, DomainEvent) error { return nil })))
	assert.Error(t, d.Subscribe("x", nil))
}
