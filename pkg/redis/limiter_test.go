package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLimiterTest(t *testing.T, limit int) (*WindowLimiter, *time.Time) {
	server := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { rdb.Close() })

	clock := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	limiter := NewInquiryLimiter(rdb, limit)
	limiter.now = func() time.Time { return clock }
	return limiter, &clock
}

func TestWindowLimiter_AllowsUpToLimit(t *testing.T) {
	limiter, _ := setupLimiterTest(t, 5)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		ok, err := limiter.Allow(ctx, "asha@example.com")
		require.NoError(t, err)
		assert.True(t, ok, "attempt %d", i+1)
	}

	ok, err := limiter.Allow(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.False(t, ok)

	// Other identifiers have their own window.
	ok, err = limiter.Allow(ctx, "ravi@example.com")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestWindowLimiter_RollingWindow(t *testing.T) {
	limiter, clock := setupLimiterTest(t, 2)
	ctx := context.Background()

	start := *clock
	ok, _ := limiter.Allow(ctx, "id")
	assert.True(t, ok)

	*clock = start.Add(30 * time.Minute)
	ok, _ = limiter.Allow(ctx, "id")
	assert.True(t, ok)

	*clock = start.Add(59 * time.Minute)
	ok, _ = limiter.Allow(ctx, "id")
	assert.False(t, ok, "both attempts still inside the hour")

	*clock = start.Add(61 * time.Minute)
	ok, _ = limiter.Allow(ctx, "id")
	assert.True(t, ok, "first attempt has rolled out of the window")
}

func TestWindowLimiter_RejectedAttemptsAreNotCounted(t *testing.T) {
	limiter, clock := setupLimiterTest(t, 1)
	ctx := context.Background()

	start := *clock
	ok, _ := limiter.Allow(ctx, "id")
	assert.True(t, ok)

	for i := 0; i < 3; i++ {
		*clock = start.Add(time.Duration(10*(i+1)) * time.Minute)
		ok, _ = limiter.Allow(ctx, "id")
		assert.False(t, ok)
	}

	*clock = start.Add(61 * time.Minute)
	ok, _ = limiter.Allow(ctx, "id")
	assert.True(t, ok)
}

func TestWindowLimiter_Disabled(t *testing.T) {
	limiter := NewWindowLimiter(nil, "x:", 0, time.Hour)
	ok, err := limiter.Allow(context.Background(), "id")
	require.NoError(t, err)
	assert.True(t, ok)
}
