package middleware

import (
	"context"
	"strconv"
	"time"

	"eventlink-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// RateLimitConfig is a fixed-window counter per client IP, backed by Redis.
type RateLimitConfig struct {
	Rdb       *redis.Client
	KeyPrefix string
	Max       int64
	Window    time.Duration
}

// RateLimit guards anonymous write endpoints (RSVP submission). Counting uses
// a plain INCR with an expiry set on the first hit of each window. A Redis
// outage disables the limiter rather than blocking guests.
func RateLimit(cfg RateLimitConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.Rdb == nil {
			return c.Next()
		}

		key := cfg.KeyPrefix + ":" + c.IP()
		ctx := context.Background()
		n, err := cfg.Rdb.Incr(ctx, key).Result()
		if err != nil {
			return c.Next()
		}
		if n == 1 {
			_, _ = cfg.Rdb.Expire(ctx, key, cfg.Window).Result()
		}
		if n > cfg.Max {
			c.Set("Retry-After", strconv.FormatInt(int64(cfg.Window/time.Second), 10))
			return response.Error(c, "Too many requests, please try again later", fiber.StatusTooManyRequests, nil)
		}
		return c.Next()
	}
}
