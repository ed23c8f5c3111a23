package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRateLimiter_FixedWindow(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	limiter := NewMemoryRateLimiter(3, time.Minute, clock)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		d, err := limiter.Allow(ctx, "usr_1")
		require.NoError(t, err)
		assert.True(t, d.Allowed, "request %d should be allowed", i+1)
		assert.Equal(t, 2-i, d.Remaining)
	}

	d, err := limiter.Allow(ctx, "usr_1")
	require.NoError(t, err)
	assert.False(t, d.Allowed, "4th request should be denied")
	assert.Equal(t, time.Minute, d.ResetIn)

	d, err = limiter.Allow(ctx, "usr_2")
	require.NoError(t, err)
	assert.True(t, d.Allowed, "keys are independent")

	now = now.Add(time.Minute)
	d, err = limiter.Allow(ctx, "usr_1")
	require.NoError(t, err)
	assert.True(t, d.Allowed, "a new window starts after expiry")
}

func TestMemoryRateLimiter_Reset(t *testing.T) {
	limiter := NewMemoryRateLimiter(1, time.Minute, time.Now)
	ctx := context.Background()

	_, _ = limiter.Allow(ctx, "usr_1")
	d, _ := limiter.Allow(ctx, "usr_1")
	assert.False(t, d.Allowed)

	require.NoError(t, limiter.Reset(ctx, "usr_1"))
	d, _ = limiter.Allow(ctx, "usr_1")
	assert.True(t, d.Allowed)
}

func setupMiniRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return mr, client
}

func TestRedisRateLimiter_Allow(t *testing.T) {
	mr, client := setupMiniRedis(t)
	limiter := NewRedisRateLimiter(client, 5, time.Minute)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		d, err := limiter.Allow(ctx, "usr_1")
		require.NoError(t, err)
		assert.True(t, d.Allowed, "request %d should be allowed", i+1)
	}

	d, err := limiter.Allow(ctx, "usr_1")
	require.NoError(t, err)
	assert.False(t, d.Allowed, "6th request should be denied")
	assert.Equal(t, 0, d.Remaining)

	mr.FastForward(time.Minute + time.Second)
	d, err = limiter.Allow(ctx, "usr_1")
	require.NoError(t, err)
	assert.True(t, d.Allowed, "window expired")
}

func TestRedisRateLimiter_Reset(t *testing.T) {
	_, client := setupMiniRedis(t)
	limiter := NewRedisRateLimiter(client, 1, time.Minute)
	ctx := context.Background()

	_, err := limiter.Allow(ctx, "usr_1")
	require.NoError(t, err)
	d, err := limiter.Allow(ctx, "usr_1")
	require.NoError(t, err)
	assert.False(t, d.Allowed)

	require.NoError(t, limiter.Reset(ctx, "usr_1"))
	d, err = limiter.Allow(ctx, "usr_1")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}
