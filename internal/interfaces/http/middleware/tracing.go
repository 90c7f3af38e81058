package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracingConfig holds configuration for the tracing middleware.
type TracingConfig struct {
	// ServiceName is the name of the service for trace identification.
	ServiceName string
	// Enabled controls whether tracing is active.
	Enabled bool
}

// DefaultTracingConfig returns default tracing configuration.
func DefaultTracingConfig() TracingConfig {
	return TracingConfig{
		ServiceName: "megatower-billing",
		Enabled:     true,
	}
}

// Tracing opens a server span per request through otelgin.
func Tracing(cfg TracingConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return otelgin.Middleware(cfg.ServiceName)
}

// TracingAttributes enriches the current span once tenant middleware has run.
// It must be placed after Tracing and Tenant.
func TracingAttributes() gin.HandlerFunc {
	return func(c *gin.Context) {
		span := trace.SpanFromContext(c.Request.Context())
		if span.IsRecording() {
			enrichSpan(c, span)
		}
		c.Next()
	}
}

func enrichSpan(c *gin.Context, span trace.Span) {
	if id := GetRequestID(c); id != "" {
		span.SetAttributes(attribute.String("request_id", id))
	}
	if tenantID := GetTenantID(c); tenantID != uuid.Nil {
		span.SetAttributes(attribute.String("tenant_id", tenantID.String()))
	}
	if unitID := c.Param("unit_id"); unitID != "" {
		span.SetAttributes(attribute.String("unit_id", unitID))
	}
}

// SpanErrorMarker marks the span as failed for 4xx and 5xx responses.
// It must be placed after Tracing.
func SpanErrorMarker() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		span := trace.SpanFromContext(c.Request.Context())
		if !span.IsRecording() {
			return
		}
		status := c.Writer.Status()
		if status < http.StatusBadRequest {
			return
		}
		span.SetStatus(codes.Error, http.StatusText(status))
		span.SetAttributes(attribute.Int("http.status_code", status))
		if code, ok := c.Get(ErrorCodeKey); ok {
			if s, ok := code.(string); ok {
				span.SetAttributes(attribute.String("billing.error_code", s))
			}
		}
	}
}

// ErrorCodeKey is where handlers leave the error code of a failed request
const ErrorCodeKey = "error_code"
