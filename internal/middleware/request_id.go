package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

const (
	RequestIDHeader     = "X-Request-ID"
	contextRequestIDKey = "request_id"
)

// RequestID tags every request with a v4 UUID, echoed in the response
// header and attached to server-side log lines.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.Must(uuid.NewV4()).String()
		}
		c.Set(contextRequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func RequestIDFromContext(c *gin.Context) string {
	return c.GetString(contextRequestIDKey)
}
