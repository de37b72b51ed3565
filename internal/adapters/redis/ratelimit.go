package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// fixedWindowScript counts a hit and returns {count, milliseconds left in the window}.
var fixedWindowScript = goredis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return {count, redis.call('PTTL', KEYS[1])}
`)

// RateLimiter keeps one counter per form submission key under "ratelimit:".
type RateLimiter struct {
	client *Client
}

func NewRateLimiter(client *Client) *RateLimiter {
	return &RateLimiter{client: client}
}

func rateLimitKey(key string) string {
	return fmt.Sprintf("ratelimit:%s", key)
}

func (r *RateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error) {
	result, err := r.client.Run(ctx, fixedWindowScript, []string{rateLimitKey(key)}, window.Milliseconds()).Int64Slice()
	if err != nil {
		return false, 0, fmt.Errorf("ratelimit %s: %w", key, err)
	}
	if len(result) != 2 {
		return false, 0, fmt.Errorf("ratelimit %s: unexpected reply %v", key, result)
	}

	count, ttl := result[0], result[1]
	if count <= int64(limit) {
		return true, 0, nil
	}
	if ttl < 0 {
		ttl = window.Milliseconds()
	}
	return false, time.Duration(ttl) * time.Millisecond, nil
}
