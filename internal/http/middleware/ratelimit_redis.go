package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"family_tasks/internal/logger"

	"github.com/gin-gonic/gin"
	redis "github.com/redis/go-redis/v9"
)

// NewRedisClient connects to Redis. An empty addr returns nil, as does a
// failed ping, so callers fall back to in-process state.
func NewRedisClient(addr, password string, db int) *redis.Client {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unavailable, using in-memory sessions and rate limits", "addr", addr, "error", err)
		_ = client.Close()
		return nil
	}
	return client
}

// RedisRateLimit implements a fixed-window rate limiter using Redis INCR/EXPIRE.
// key format: rl:<name>:<window_seconds>:<ip>
func RedisRateLimit(client *redis.Client, name string, maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "rl:" + name + ":" + strconv.FormatInt(int64(window.Seconds()), 10) + ":" + c.ClientIP()
		ctx := c.Request.Context()

		val, err := client.Incr(ctx, key).Result()
		if err != nil {
			// fail-open
			c.Header("X-RateLimit-Error", "redis-error")
			c.Next()
			return
		}

		if val == 1 {
			if err := client.Expire(ctx, key, window).Err(); err != nil {
				logger.WithContext(ctx).Warn("rate limit expire failed", "key", key, "error", err)
			}
		}

		if val > int64(maxRequests) {
			// a key left without ttl by a failed EXPIRE would block the ip for good
			if ttl, err := client.TTL(ctx, key).Result(); err == nil && ttl == -1 {
				_ = client.Expire(ctx, key, window).Err()
			}
			RLBlocked.WithLabelValues(name).Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		RLRequests.WithLabelValues(name).Inc()
		c.Next()
	}
}
