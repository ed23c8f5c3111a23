package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRateLimiter shares fixed-window counters across server instances.
type RedisRateLimiter struct {
	client redis.Cmdable
	limit  int
	window time.Duration
}

func NewRedisRateLimiter(client redis.Cmdable, limit int, window time.Duration) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		limit:  limit,
		window: window,
	}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	redisKey := l.getKey(key)

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return Decision{}, fmt.Errorf("failed to increment counter: %w", err)
	}
	if count == 1 {
		if err := l.client.PExpire(ctx, redisKey, l.window).Err(); err != nil {
			return Decision{}, fmt.Errorf("failed to set window expiry: %w", err)
		}
	}

	resetIn, err := l.client.PTTL(ctx, redisKey).Result()
	if err != nil {
		return Decision{}, fmt.Errorf("failed to read window ttl: %w", err)
	}
	if resetIn < 0 {
		// counter lost its expiry; restart the window
		if err := l.client.PExpire(ctx, redisKey, l.window).Err(); err != nil {
			return Decision{}, fmt.Errorf("failed to set window expiry: %w", err)
		}
		resetIn = l.window
	}
	return decide(int(count), l.limit, resetIn), nil
}

func (l *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, l.getKey(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

func (l *RedisRateLimiter) getKey(identifier string) string {
	return fmt.Sprintf("ratelimit:%s:%s", identifier, l.window.String())
}
