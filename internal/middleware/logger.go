package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID tags every request with an X-Request-ID, minting one when the
// client did not send its own. The id is echoed on the response and reused
// by Logger and by error logging.
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

// Logger writes one line per completed request: id, client, verb, path,
// status, and how long the handler took.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		c.Next()

		requestID, _ := c.Get("request_id")
		log.Printf("[%s] %s %s %s -> %d in %s",
			requestID,
			c.ClientIP(),
			c.Request.Method,
			path,
			c.Writer.Status(),
			time.Since(start),
		)
	}
}

// Recovery turns handler panics into 500 responses.
func Recovery() gin.HandlerFunc {
	return gin.Recovery()
}
