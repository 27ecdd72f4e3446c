package middleware

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// INCR and the window expiry run atomically; a key left without a TTL gets one.
var fixedWindowScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
local ttl = redis.call("PTTL", KEYS[1])
if ttl < 0 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
	ttl = tonumber(ARGV[1])
end
return {count, ttl}
`)

// RateLimitPolicy is one named bucket. Subject picks who a request is charged to;
// an empty subject leaves the request unmetered.
type RateLimitPolicy struct {
	Bucket  string
	Limit   int
	Window  time.Duration
	Subject func(c *gin.Context) string
}

// ClientIPSubject charges the caller's address. Used before authentication.
func ClientIPSubject(c *gin.Context) string {
	return "ip:" + c.ClientIP()
}

// UserSubject charges the authenticated user, so one account cannot spread load
// across addresses. Falls back to the address when no user is set.
func UserSubject(c *gin.Context) string {
	if userID, ok := GetUserID(c); ok && userID != "" {
		return "user:" + userID
	}
	return ClientIPSubject(c)
}

type hitCounter func(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)

type RateLimiter struct {
	count hitCounter
}

func NewRateLimiter(rdb redis.Cmdable) *RateLimiter {
	return &RateLimiter{
		count: func(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
			res, err := fixedWindowScript.Run(ctx, rdb, []string{key}, window.Milliseconds()).Int64Slice()
			if err != nil {
				return 0, 0, err
			}
			if len(res) != 2 {
				return 0, 0, fmt.Errorf("unexpected script reply %v", res)
			}
			return res[0], time.Duration(res[1]) * time.Millisecond, nil
		},
	}
}

func rateLimitKey(bucket, subject string) string {
	return fmt.Sprintf("fitjournal:rate_limit:%s:%s", bucket, subject)
}

// Limit meters requests against p. Redis errors let the request through.
func (l *RateLimiter) Limit(p RateLimitPolicy) gin.HandlerFunc {
	if p.Window <= 0 {
		p.Window = time.Minute
	}
	if p.Subject == nil {
		p.Subject = ClientIPSubject
	}

	return func(c *gin.Context) {
		if p.Limit <= 0 {
			c.Next()
			return
		}
		subject := p.Subject(c)
		if subject == "" {
			c.Next()
			return
		}

		count, ttl, err := l.count(c.Request.Context(), rateLimitKey(p.Bucket, subject), p.Window)
		if err != nil {
			log.Printf("[RATELIMIT] %s: counter unavailable, request allowed: %v", p.Bucket, err)
			c.Next()
			return
		}
		if ttl <= 0 {
			ttl = p.Window
		}

		retryIn := int((ttl + time.Second - 1) / time.Second)
		c.Header("X-RateLimit-Bucket", p.Bucket)
		c.Header("X-RateLimit-Limit", strconv.Itoa(p.Limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(max(0, int64(p.Limit)-count), 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))

		if count > int64(p.Limit) {
			log.Printf("[RATELIMIT] %s: %s over %d/%s", p.Bucket, subject, p.Limit, p.Window)
			c.Header("Retry-After", strconv.Itoa(retryIn))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":      "too many requests",
				"bucket":     p.Bucket,
				"retry_in_s": retryIn,
			})
			return
		}

		c.Next()
	}
}
