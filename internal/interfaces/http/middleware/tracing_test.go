package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/doorscomputers/megatower-sub002/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func setupTestTracer(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)

	t.Cleanup(func() {
		_ = tp.Shutdown(t.Context())
		otel.SetTracerProvider(prev)
	})
	return sr
}

func spanAttrs(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		out[kv.Key] = kv.Value
	}
	return out
}

func newTracedRouter(handler gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(
		RequestID(),
		Tracing(DefaultTracingConfig()),
		SpanErrorMarker(),
		Tenant(DefaultTenantConfig()),
		TracingAttributes(),
	)
	router.POST("/api/v1/billing/units/:unit_id/payments", handler)
	return router
}

func TestTracing_Disabled(t *testing.T) {
	sr := setupTestTracer(t)

	router := gin.New()
	router.Use(Tracing(TracingConfig{Enabled: false}))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, sr.Ended())
}

func TestTracing_EnrichesSpan(t *testing.T) {
	sr := setupTestTracer(t)
	tenantID := uuid.New()
	unitID := uuid.New()

	router := newTracedRouter(func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/billing/units/"+unitID.String()+"/payments", nil)
	req.Header.Set(TenantHeaderKey, tenantID.String())
	req.Header.Set(RequestIDHeader, "req-7")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	spans := sr.Ended()
	require.Len(t, spans, 1)

	attrs := spanAttrs(spans[0])
	assert.Equal(t, "req-7", attrs["request_id"].AsString())
	assert.Equal(t, tenantID.String(), attrs["tenant_id"].AsString())
	assert.Equal(t, unitID.String(), attrs["unit_id"].AsString())
	assert.NotEqual(t, codes.Error, spans[0].Status().Code)
}

func TestSpanErrorMarker(t *testing.T) {
	sr := setupTestTracer(t)

	router := newTracedRouter(func(c *gin.Context) {
		c.Set(ErrorCodeKey, shared.CodeConflict)
		c.Status(http.StatusConflict)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/billing/units/"+uuid.NewString()+"/payments", nil)
	req.Header.Set(TenantHeaderKey, uuid.NewString())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)
	spans := sr.Ended()
	require.Len(t, spans, 1)

	assert.Equal(t, codes.Error, spans[0].Status().Code)
	attrs := spanAttrs(spans[0])
	assert.Equal(t, int64(http.StatusConflict), attrs["http.status_code"].AsInt64())
	assert.Equal(t, shared.CodeConflict, attrs["billing.error_code"].AsString())
}
