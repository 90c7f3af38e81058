package logger

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// requestIDGinKey mirrors the key the request ID middleware writes
const requestIDGinKey = "request_id"

// healthPaths are hit by load balancers every few seconds and log at debug level.
var healthPaths = map[string]struct{}{
	"/health":        {},
	"/api/v1/health": {},
}

// GinMiddleware logs one line per request and gives the handler chain a context
// logger carrying request_id, plus unit_id on unit routes, so the billing service
// logs with the same fields.
func GinMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		ctx := WithContext(c.Request.Context(), logger.With(
			zap.String("method", c.Request.Method),
			zap.String("path", path),
		))
		if requestID := c.GetString(requestIDGinKey); requestID != "" {
			ctx = WithRequestID(ctx, requestID)
		}
		if unitID := c.Param("unit_id"); unitID != "" {
			ctx = WithUnitID(ctx, unitID)
		}
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("body_size", c.Writer.Size()),
		}
		if route := c.FullPath(); route != "" {
			fields = append(fields, zap.String("route", route))
		}
		if query != "" {
			fields = append(fields, zap.String("query", query))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.Strings("errors", c.Errors.Errors()))
		}

		reqLogger := FromContext(c.Request.Context())
		_, health := healthPaths[path]
		switch {
		case status >= http.StatusInternalServerError:
			reqLogger.Error("HTTP Request", fields...)
		case status >= http.StatusBadRequest:
			reqLogger.Warn("HTTP Request", fields...)
		case health:
			reqLogger.Debug("HTTP Request", fields...)
		default:
			reqLogger.Info("HTTP Request", fields...)
		}
	}
}

// Recovery turns a handler panic into a 500 envelope. The panic is logged with
// the request's context logger when one is attached, so it carries the tenant
// and unit being billed.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				FromContextOr(c.Request.Context(), logger).Error("Panic recovered",
					zap.String("request_id", c.GetString(requestIDGinKey)),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.Any("error", err),
					zap.Stack("stacktrace"),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error": gin.H{
						"code":       "INTERNAL_ERROR",
						"message":    "Internal server error",
						"request_id": c.GetString(requestIDGinKey),
					},
				})
			}
		}()
		c.Next()
	}
}
