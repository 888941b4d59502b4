package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"

	"boba-storefront/internal/ratelimit"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var limitedPrefixes = []string{"/api", "/_actions"}

// RateLimit applies the per-client fixed window to API and action paths.
// Limiter failures fail open; a throttled client is better than a down
// store, but an unreachable backend must not be.
func RateLimit(limiter ratelimit.Limiter, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isLimited(c.Request.URL.Path) {
			c.Next()
			return
		}

		d, err := limiter.Allow(c.Request.Context(), ClientIP(c))
		if err != nil {
			log.Warn("rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !d.Allowed {
			retryAfter := int(math.Ceil(d.RetryAfter.Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":      "Too many requests. Please try again later.",
				"retryAfter": retryAfter,
			})
			return
		}

		c.Next()
	}
}

func isLimited(path string) bool {
	for _, p := range limitedPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// ClientIP takes the first X-Forwarded-For entry when present, otherwise
// the connection's remote address.
func ClientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		first := strings.TrimSpace(strings.SplitN(xff, ",", 2)[0])
		if first != "" {
			return first
		}
	}
	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return host
}
