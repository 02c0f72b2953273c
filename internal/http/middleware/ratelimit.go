package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	redis "github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// RateLimit picks the Redis limiter when a client is available, otherwise
// a per-process token bucket per client ip.
func RateLimit(client *redis.Client, name string, maxRequests int, window time.Duration) gin.HandlerFunc {
	if maxRequests <= 0 || window <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if client != nil {
		return RedisRateLimit(client, name, maxRequests, window)
	}
	return LocalRateLimit(name, maxRequests, window)
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type localLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	limit     rate.Limit
	burst     int
	idle      time.Duration
	lastSweep time.Time
}

func (l *localLimiter) allow(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) > l.idle {
		for k, v := range l.visitors {
			if now.Sub(v.lastSeen) > l.idle {
				delete(l.visitors, k)
			}
		}
		l.lastSweep = now
	}

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// LocalRateLimit allows maxRequests per window per client ip, refilling evenly.
func LocalRateLimit(name string, maxRequests int, window time.Duration) gin.HandlerFunc {
	l := &localLimiter{
		visitors:  make(map[string]*visitor),
		limit:     rate.Limit(float64(maxRequests) / window.Seconds()),
		burst:     maxRequests,
		idle:      window,
		lastSweep: time.Now(),
	}

	return func(c *gin.Context) {
		if !l.allow(c.ClientIP(), time.Now()) {
			RLBlocked.WithLabelValues(name).Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		RLRequests.WithLabelValues(name).Inc()
		c.Next()
	}
}
