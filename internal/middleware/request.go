package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/medportal/slotbooker/internal/metrics"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const RequestIDKey = "request_id"

func RequestID() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(RequestIDKey, id)
		c.Header("X-Request-Id", id)
		c.Next()
	}
}

func RequestLogger(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		metrics.RequestDuration.
			WithLabelValues(c.Request.Method, c.FullPath()).
			Observe(elapsed.Seconds())

		if errMsg := c.GetString("error"); errMsg != "" {
			log.LogAttrs(c.Request.Context(), logger.InfoLevel, "request handled",
				logger.String("method", c.Request.Method),
				logger.String("path", c.Request.URL.Path),
				logger.Int("status", c.Writer.Status()),
				logger.Duration("duration", elapsed),
				logger.String("request_id", c.GetString(RequestIDKey)),
				logger.String("error", errMsg),
			)
			return
		}

		log.LogAttrs(c.Request.Context(), logger.InfoLevel, "request handled",
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("duration", elapsed),
			logger.String("request_id", c.GetString(RequestIDKey)),
		)
	}
}
