package api

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/codeframe-hq/codeframe/pkg/config"
)

// clientIDHeader identifies the caller for rate limiting. Requests without
// it share the anonymous bucket.
const clientIDHeader = "X-Client-ID"

// securityHeaders sets standard security response headers.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
		c.Next()
	}
}

// clientRateLimit enforces per-client token buckets. Clients that present no
// identity all draw from one deliberately small shared bucket, so an
// anonymous flood degrades only anonymous traffic.
func clientRateLimit(cfg *config.APIConfig) gin.HandlerFunc {
	var mu sync.Mutex
	buckets := make(map[string]*rate.Limiter)
	anonymous := rate.NewLimiter(rate.Limit(cfg.AnonymousRequestsPerSecond), cfg.AnonymousBurst)

	limiterFor := func(clientID string) *rate.Limiter {
		if clientID == "" {
			return anonymous
		}
		mu.Lock()
		defer mu.Unlock()
		limiter, ok := buckets[clientID]
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(cfg.ClientRequestsPerSecond), cfg.ClientBurst)
			buckets[clientID] = limiter
		}
		return limiter
	}

	return func(c *gin.Context) {
		clientID := c.GetHeader(clientIDHeader)
		if !limiterFor(clientID).Allow() {
			if clientID == "" {
				slog.Warn("Anonymous request budget exhausted",
					"remote_addr", c.ClientIP(), "path", c.Request.URL.Path)
			}
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}
