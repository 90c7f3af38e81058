package middleware

import (
	"time"

	"github.com/doorscomputers/megatower-sub002/internal/infrastructure/telemetry"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// httpMetrics holds the HTTP server instruments.
type httpMetrics struct {
	requestTotal    *telemetry.Counter
	requestDuration *telemetry.Histogram
	activeRequests  metric.Int64UpDownCounter
}

func newHTTPMetrics(meter metric.Meter) (*httpMetrics, error) {
	requestTotal, err := telemetry.NewCounter(
		meter,
		"http_server_request_total",
		"Total number of HTTP requests",
		"{request}",
	)
	if err != nil {
		return nil, err
	}

	requestDuration, err := telemetry.NewHistogram(meter, telemetry.HistogramOpts{
		Name:        "http_server_request_duration_seconds",
		Description: "HTTP request latency distribution in seconds",
		Unit:        "s",
		Boundaries:  telemetry.HTTPDurationBuckets,
	})
	if err != nil {
		return nil, err
	}

	activeRequests, err := meter.Int64UpDownCounter(
		"http_server_active_requests",
		metric.WithDescription("Number of currently active HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	return &httpMetrics{
		requestTotal:    requestTotal,
		requestDuration: requestDuration,
		activeRequests:  activeRequests,
	}, nil
}

// HTTPMetrics records request count, latency and in-flight requests.
// A nil meter, or one whose instruments cannot be created, yields a pass-through.
//
// Routes are labelled with their gin pattern, never the raw path.
func HTTPMetrics(meter metric.Meter) gin.HandlerFunc {
	if meter == nil {
		return passThrough
	}
	m, err := newHTTPMetrics(meter)
	if err != nil {
		return passThrough
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		start := time.Now()

		m.activeRequests.Add(ctx, 1)
		c.Next()
		m.activeRequests.Add(ctx, -1)

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		base := []attribute.KeyValue{
			telemetry.AttrHTTPMethod.String(c.Request.Method),
			telemetry.AttrHTTPRoute.String(route),
		}

		attrs := append([]attribute.KeyValue{telemetry.AttrHTTPStatusCode.Int(c.Writer.Status())}, base...)
		if tenantID := GetTenantID(c); tenantID != uuid.Nil {
			attrs = append(attrs, telemetry.AttrTenantID.String(tenantID.String()))
		}
		m.requestTotal.Inc(ctx, attrs...)
		m.requestDuration.RecordDuration(ctx, time.Since(start), base...)
	}
}

func passThrough(c *gin.Context) {
	c.Next()
}
