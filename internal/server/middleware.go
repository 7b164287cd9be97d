package server

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID injects an X-Request-ID header into the request and response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// AccessLog writes one line per API call: the request ID, the route, the
// status, and the response size, so a failed scan can be traced back from
// its X-Request-ID.
func AccessLog(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}

		requestID := c.GetString("request_id")
		logger.Printf("[%s] %s %s -> %d (%d bytes) in %s",
			requestID,
			c.Request.Method,
			route,
			c.Writer.Status(),
			max(c.Writer.Size(), 0),
			time.Since(start),
		)
	}
}

// BodyLimit caps the number of request body bytes a handler may read.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
