package middleware

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/contactanuptop/movie-booking/internal/config"
)

// tokenBucket refills and drains a per-caller bucket atomically inside
// Redis. Result: {allowed, remaining tokens, retry-after ms}.
var tokenBucket = redis.NewScript(`
	local key = KEYS[1]
	local now_ms = tonumber(ARGV[1])
	local capacity = tonumber(ARGV[2])
	local refill = tonumber(ARGV[3])
	local interval_ms = tonumber(ARGV[4])
	local ttl_s = tonumber(ARGV[5])

	local state = redis.call('HMGET', key, 'tokens', 'last_ms')
	local tokens = tonumber(state[1])
	local last_ms = tonumber(state[2])
	if tokens == nil or last_ms == nil then
		tokens = capacity
		last_ms = now_ms
	end

	local intervals = math.floor(math.max(0, now_ms - last_ms) / interval_ms)
	if intervals > 0 then
		tokens = math.min(capacity, tokens + intervals * refill)
		last_ms = last_ms + intervals * interval_ms
	end

	local allowed = 0
	local retry_ms = 0
	if tokens > 0 then
		allowed = 1
		tokens = tokens - 1
	else
		retry_ms = math.max(0, interval_ms - (now_ms - last_ms))
	end

	redis.call('HMSET', key, 'tokens', tokens, 'last_ms', last_ms)
	redis.call('EXPIRE', key, ttl_s)
	return { allowed, tokens, retry_ms }
`)

// RateLimit returns a Redis token-bucket middleware keyed by client IP
// and authenticated user. It protects the booking endpoint from
// hammering; when Redis is unavailable (nil client, or an error at
// request time) it fails open so bookings are never lost to an outage
// of the limiter itself.
func RateLimit(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return passthrough
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := cfg.Prefix + ":" + c.RealIP() + ":" + contextUserID(c)
			args := []interface{}{
				time.Now().UnixMilli(),
				cfg.Capacity,
				cfg.RefillTokens,
				cfg.RefillInterval.Milliseconds(),
				int64(cfg.TTL / time.Second),
			}
			vals, err := tokenBucket.Run(c.Request().Context(), rdb, []string{key}, args...).Int64Slice()
			if err != nil || len(vals) != 3 {
				return next(c)
			}
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Capacity))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(vals[1], 10))
			if vals[0] != 1 {
				secs := int(math.Ceil(float64(vals[2]) / 1000.0))
				c.Response().Header().Set("Retry-After", strconv.Itoa(secs))
				return c.JSON(http.StatusTooManyRequests, echo.Map{
					"error":       "too_many_requests",
					"retry_after": secs,
				})
			}
			return next(c)
		}
	}
}

func passthrough(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error { return next(c) }
}

// contextUserID returns the authenticated user stored by JWTAuth, or
// "guest" for unauthenticated requests so anonymous callers share one
// bucket per IP.
func contextUserID(c echo.Context) string {
	if s, ok := c.Get("user_id").(string); ok && s != "" {
		return s
	}
	return "guest"
}
