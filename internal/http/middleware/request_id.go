package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"linguagraph.app/insight/common/id"
	"linguagraph.app/insight/common/logger"
)

const RequestIDHeader = "X-Request-Id"

// RequestID assigns a snowflake ID to every request, echoes it in the
// response header, and threads it through the context log fields.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strconv.FormatInt(id.New(), 10)
		c.Writer.Header().Set(RequestIDHeader, requestID)

		ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{
			RequestID: &requestID,
		})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
