package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"hypermedia-record-api/pkg/log"
)

// RequestLog tags every request with an id and logs method, host, path,
// and latency once the handler chain finishes.
func (m Middleware) RequestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		ctx := log.NewContext(c.Request.Context(), uuid.NewString())
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		m.l.Infof(ctx, "%s %s%s -> %d (%s)",
			c.Request.Method,
			c.Request.Host,
			c.Request.URL.RequestURI(),
			c.Writer.Status(),
			time.Since(start),
		)
	}
}

// RateLimit applies a shared token bucket sized from config. A zero
// per-minute budget disables limiting entirely.
func (m Middleware) RateLimit() gin.HandlerFunc {
	perMinute := m.cfg.RateLimit.PerMinute
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limiter := rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), perMinute)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		c.Next()
	}
}
