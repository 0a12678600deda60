package middleware

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/utils"
)

// RateLimiter enforces a fixed-window request limit per client IP.
// With a Redis client the counters are shared across instances; without
// one (memory, sqlite and mysql backends) it falls back to
// process-local counters.
type RateLimiter struct {
	redisClient *redis.Client
	limit       int
	window      time.Duration

	mu    sync.Mutex
	local map[string]*localWindow
}

type localWindow struct {
	bucket int64
	count  int
}

// NewRateLimiter creates a rate limiter allowing limit requests per
// window. redisClient may be nil.
func NewRateLimiter(redisClient *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		redisClient: redisClient,
		limit:       limit,
		window:      window,
		local:       make(map[string]*localWindow),
	}
}

// Limit returns a Gin middleware that rejects requests over the limit
// with 429.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		bucket := time.Now().Unix() / int64(rl.window.Seconds())

		var count int64
		if rl.redisClient != nil {
			count = rl.incrRedis(c.Request.Context(), clientIP, bucket)
		} else {
			count = rl.incrLocal(clientIP, bucket)
		}

		if count > int64(rl.limit) {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) incrRedis(ctx context.Context, clientIP string, bucket int64) int64 {
	key := fmt.Sprintf("ratelimit:ip:%s:%d", clientIP, bucket)

	count, err := rl.redisClient.Incr(ctx, key).Result()
	if err != nil {
		// A Redis outage must not lock everyone out.
		return 0
	}
	if count == 1 {
		rl.redisClient.Expire(ctx, key, rl.window+time.Second)
	}
	return count
}

func (rl *RateLimiter) incrLocal(clientIP string, bucket int64) int64 {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	w, ok := rl.local[clientIP]
	if !ok || w.bucket != bucket {
		w = &localWindow{bucket: bucket}
		rl.local[clientIP] = w
	}
	w.count++
	return int64(w.count)
}
