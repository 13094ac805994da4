package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"weather-joke-assistant/pkg/log"
)

const HeaderRequestID = "X-Request-Id"

// RequestID reuses an incoming X-Request-Id or generates one, echoes it back
// and stores it on the request context for the logger.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// AccessLog logs one line per request.
func (mw Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		switch {
		case status >= 500:
			mw.l.Errorf(ctx, "%s %s %d %s %v", c.Request.Method, c.FullPath(), status, c.ClientIP(), time.Since(start))
		case status >= 400:
			mw.l.Warnf(ctx, "%s %s %d %s %v", c.Request.Method, c.FullPath(), status, c.ClientIP(), time.Since(start))
		default:
			mw.l.Infof(ctx, "%s %s %d %s %v", c.Request.Method, c.FullPath(), status, c.ClientIP(), time.Since(start))
		}
	}
}
