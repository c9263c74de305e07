package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"parts-support-chat/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// RequestID attaches a request id to the request context and echoes it back
// in the response header. An id supplied by the caller is kept.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := log.ContextWithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(HeaderRequestID, requestID)

		c.Next()
	}
}
