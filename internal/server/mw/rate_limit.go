package mw

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/htung0403/quan-li-ben-xe-sub001/internal/server/resp"
)

const (
	rateLimitKeyPrefix = "ratelimit:upload:"
	rateLimitWindow    = time.Second
)

// Counter is the part of redis.Cmdable used by RateLimit.
type Counter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	TTL(ctx context.Context, key string) *redis.DurationCmd
}

var _ Counter = (*redis.Client)(nil)

// RateLimit allows limitPerSec requests per client IP in fixed one-second windows.
// A Redis failure answers 503.
func RateLimit(rdb Counter, limitPerSec int, logger *zap.Logger) gin.HandlerFunc {
	limit := strconv.Itoa(limitPerSec)
	return func(c *gin.Context) {
		key := rateLimitKeyPrefix + c.ClientIP()
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			logger.Warn("rate limit unavailable", zap.Error(err))
			resp.Abort(c, http.StatusServiceUnavailable, "service unavailable")
			return
		}
		if count == 1 {
			expire(ctx, rdb, key, logger)
		}
		// A key left without TTL (failed EXPIRE) would block the client for good.
		if ttl, err := rdb.TTL(ctx, key).Result(); err == nil && ttl < 0 {
			expire(ctx, rdb, key, logger)
		}

		c.Header("X-RateLimit-Limit", limit)
		if count > int64(limitPerSec) {
			c.Header("Retry-After", "1")
			resp.Abort(c, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		c.Next()
	}
}

func expire(ctx context.Context, rdb Counter, key string, logger *zap.Logger) {
	if err := rdb.Expire(ctx, key, rateLimitWindow).Err(); err != nil {
		logger.Warn("rate limit expire failed", zap.String("key", key), zap.Error(err))
	}
}
