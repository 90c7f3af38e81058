package middleware

import (
	"fmt"
	"net/http"

	"github.com/doorscomputers/megatower-sub002/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// BodyLimit caps request bodies at maxBytes. Declared oversize bodies are
// refused up front; bodies without a Content-Length fail while being read,
// which the handlers report as 413 as well.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	message := fmt.Sprintf("Request body exceeds the %d byte limit", maxBytes)
	return func(c *gin.Context) {
		if c.Request.Body == nil || c.Request.Body == http.NoBody {
			c.Next()
			return
		}
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge,
				dto.NewErrorResponseWithRequestID(dto.ErrCodeRequestTooLarge, message, GetRequestID(c)))
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
