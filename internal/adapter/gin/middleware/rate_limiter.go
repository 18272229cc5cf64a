package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"todo-graphql-service/pkg/logger"
)

// fixedWindowScript increments the counter of the current window and
// starts the window expiry on the first hit.
var fixedWindowScript = redis.NewScript(`
	local count = redis.call('INCR', KEYS[1])
	if count == 1 then
		redis.call('EXPIRE', KEYS[1], tonumber(ARGV[1]))
	end
	return count
`)

// RateLimiterConfig holds configuration for the rate limiter.
type RateLimiterConfig struct {
	RequestsPerWindow int
	WindowSeconds     int
	Enabled           bool
}

// RateLimiter limits requests per client IP and route with a fixed window counter in Redis.
type RateLimiter struct {
	client *redis.Client
	config RateLimiterConfig
	log    *zap.Logger
}

// NewRateLimiter creates a new rate limiter. A nil client disables limiting.
func NewRateLimiter(client *redis.Client, config RateLimiterConfig, log *zap.Logger) *RateLimiter {
	return &RateLimiter{client: client, config: config, log: log}
}

// Handler returns the gin middleware. Redis failures let the request through.
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil || !rl.config.Enabled || rl.client == nil {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		key := fmt.Sprintf("ratelimit:%s:%s:%s", c.Request.Method, c.FullPath(), clientIP)
		ctx := c.Request.Context()

		count, err := fixedWindowScript.Run(ctx, rl.client, []string{key}, rl.config.WindowSeconds).Int64()
		if err != nil {
			logger.WithContext(ctx, rl.log).Warn("rate limiter redis error, allowing request",
				zap.String("client_ip", clientIP),
				zap.Error(err),
			)
			c.Next()
			return
		}

		if count > int64(rl.config.RequestsPerWindow) {
			logger.WithContext(ctx, rl.log).Warn("rate limit exceeded",
				zap.String("client_ip", clientIP),
				zap.String("path", c.Request.URL.Path),
				zap.Int64("count", count),
			)
			c.Header("Retry-After", fmt.Sprint(rl.config.WindowSeconds))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate_limit_exceeded",
				"message": fmt.Sprintf("rate limit exceeded: %d requests in %d seconds",
					rl.config.RequestsPerWindow, rl.config.WindowSeconds),
			})
			return
		}

		c.Next()
	}
}
