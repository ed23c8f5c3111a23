package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"campusvoice/internal/domain/issue"
	"campusvoice/internal/domain/shared/events"
	"campusvoice/internal/shared/biztime"
	"campusvoice/internal/shared/logger"
)

// IssueLifecycleChannel carries every issue lifecycle event across instances.
const IssueLifecycleChannel = "campusvoice:issue:lifecycle"

// IssueLifecycleMessage is the wire form of a lifecycle event.
type IssueLifecycleMessage struct {
	EventType  string `json:"event_type"`
	IssueID    string `json:"issue_id"`
	ActorID    string `json:"actor_id,omitempty"`
	FromStatus string `json:"from_status,omitempty"`
	ToStatus   string `json:"to_status"`
	OccurredAt int64  `json:"occurred_at"`
}

// IssueLifecycleHandler is a callback for received lifecycle messages
type IssueLifecycleHandler func(ctx context.Context, msg IssueLifecycleMessage)

// RedisIssueEventBus fans issue lifecycle events out over Redis Pub/Sub so
// other instances and dashboards can follow the issue board live.
type RedisIssueEventBus struct {
	client *redis.Client
	logger logger.Interface
}

func NewRedisIssueEventBus(client *redis.Client, logger logger.Interface) *RedisIssueEventBus {
	return &RedisIssueEventBus{
		client: client,
		logger: logger,
	}
}

// Handle implements events.EventHandler. Delivery is best effort: a Redis
// failure is logged and never fails the transition that raised the event.
func (b *RedisIssueEventBus) Handle(ctx context.Context, event events.DomainEvent) error {
	e, ok := event.(issue.LifecycleEvent)
	if !ok {
		return nil
	}
	if err := b.Publish(ctx, IssueLifecycleMessage{
		EventType:  e.GetEventType(),
		IssueID:    e.IssueID,
		ActorID:    e.ActorID,
		FromStatus: e.FromStatus,
		ToStatus:   e.ToStatus,
		OccurredAt: biztime.ToMillis(e.GetOccurredAt()),
	}); err != nil {
		b.logger.Warnw("dropping lifecycle event", "issue_id", e.IssueID, "event_type", e.GetEventType(), "error", err)
	}
	return nil
}

func (b *RedisIssueEventBus) Publish(ctx context.Context, msg IssueLifecycleMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := b.client.Publish(ctx, IssueLifecycleChannel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	b.logger.Debugw("lifecycle event published",
		"issue_id", msg.IssueID,
		"event_type", msg.EventType,
	)
	return nil
}

// Subscribe blocks, calling handler for every message until ctx is done.
func (b *RedisIssueEventBus) Subscribe(ctx context.Context, handler IssueLifecycleHandler) error {
	sub := b.client.Subscribe(ctx, IssueLifecycleChannel)
	defer sub.Close()

	// wait for subscription confirmation
	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to channel: %w", err)
	}
	b.logger.Infow("subscribed to issue lifecycle events", "channel", IssueLifecycleChannel)

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case msg, ok := <-ch:
			if !ok {
				b.logger.Warnw("issue lifecycle channel closed")
				return nil
			}

			var m IssueLifecycleMessage
			if err := json.Unmarshal([]byte(msg.Payload), &m); err != nil {
				b.logger.Warnw("failed to unmarshal lifecycle event", "payload", msg.Payload, "error", err)
				continue
			}
			handler(ctx, m)
		}
	}
}
