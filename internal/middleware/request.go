package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"retail-insights/internal/metrics"
	"retail-insights/pkg/log"
)

const (
	HeaderRequestID = "X-Request-ID"

	unmatchedRoute = "unmatched"
)

// RequestID propagates X-Request-ID, generating one when absent, and puts it
// on the request context so every log line of the request carries it.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Writer.Header().Set(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// AccessLog writes one line per request after it completes.
func (m Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		format := "%s %s %d %s ip=%s"
		args := []any{c.Request.Method, c.Request.URL.Path, status, time.Since(start), c.ClientIP()}

		switch {
		case status >= 500:
			m.l.Errorf(ctx, format, args...)
		case status >= 400:
			m.l.Warnf(ctx, format, args...)
		default:
			m.l.Infof(ctx, format, args...)
		}
	}
}

// Metrics observes request duration by method, route template and status.
func (m Middleware) Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
