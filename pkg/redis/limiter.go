package redis

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/malabartrails/tours-backend/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// slidingWindow keeps one sorted-set member per accepted attempt, scored by
// its time in milliseconds. Trimming, counting and recording happen in one
// script so concurrent submissions cannot overshoot the limit.
var slidingWindow = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])
redis.call('ZREMRANGEBYSCORE', key, '-inf', now - window)
if redis.call('ZCARD', key) >= limit then
	return 0
end
redis.call('ZADD', key, now, ARGV[4])
redis.call('PEXPIRE', key, window)
return 1
`)

// WindowLimiter allows at most Limit attempts per identifier within any
// rolling Window.
type WindowLimiter struct {
	client redis.Scripter
	prefix string
	limit  int
	window time.Duration
	now    func() time.Time
}

func NewWindowLimiter(client redis.Scripter, prefix string, limit int, window time.Duration) *WindowLimiter {
	return &WindowLimiter{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

// NewInquiryLimiter is the limiter used for inquiry submissions.
func NewInquiryLimiter(client redis.Scripter, perHour int) *WindowLimiter {
	return NewWindowLimiter(client, "ratelimit:inquiry:", perHour, time.Hour)
}

// Allow records an attempt for identifier and reports whether it fits in the window.
func (l *WindowLimiter) Allow(ctx context.Context, identifier string) (bool, error) {
	if l.limit <= 0 {
		return true, nil
	}

	key := l.prefix + identifier
	now := l.now().UnixMilli()
	allowed, err := slidingWindow.Run(ctx, l.client, []string{key},
		strconv.FormatInt(now, 10),
		strconv.FormatInt(l.window.Milliseconds(), 10),
		strconv.Itoa(l.limit),
		uuid.NewString(),
	).Int()
	if err != nil {
		logger.Error("Failed to evaluate rate limit", err, map[string]interface{}{
			"key": key,
		})
		return false, err
	}

	if allowed == 0 {
		logger.Warn("Rate limit exceeded", map[string]interface{}{
			"key":    key,
			"limit":  l.limit,
			"window": l.window.String(),
		})
		return false, nil
	}
	return true, nil
}
