package middleware

import (
	"fmt"
	"net/http"

	"github.com/ferd-app/ferd-server/internal/modules/serializer"
	"github.com/gin-gonic/gin"
)

// BodySizeLimit caps the whole request body, uploads included. Requests
// that declare an oversize Content-Length are rejected up front; chunked
// requests fail once the reader passes the cap.
func BodySizeLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge,
				serializer.Err("Request too large",
					fmt.Sprintf("request body may not exceed %d bytes", maxBytes), nil))
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
