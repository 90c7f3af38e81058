package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func setupTestMeter(t *testing.T) (*sdkmetric.MeterProvider, *sdkmetric.ManualReader) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() {
		_ = mp.Shutdown(t.Context())
	})
	return mp, reader
}

func findMetricByName(t *testing.T, reader *sdkmetric.ManualReader, name string) *metricdata.Metrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(t.Context(), &rm))
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

func TestHTTPMetrics_NilMeter(t *testing.T) {
	router := gin.New()
	router.Use(HTTPMetrics(nil))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHTTPMetrics_RecordsRequests(t *testing.T) {
	mp, reader := setupTestMeter(t)
	tenantID := uuid.New()

	router := gin.New()
	router.Use(Tenant(DefaultTenantConfig()), HTTPMetrics(mp.Meter("http.server")))
	router.GET("/api/v1/billing/units/:unit_id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/billing/units/"+uuid.NewString(), nil)
		req.Header.Set(TenantHeaderKey, tenantID.String())
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	total := findMetricByName(t, reader, "http_server_request_total")
	require.NotNil(t, total)
	sum, ok := total.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 1)

	dp := sum.DataPoints[0]
	assert.Equal(t, int64(3), dp.Value)
	route, _ := dp.Attributes.Value(attribute.Key("http.route"))
	assert.Equal(t, "/api/v1/billing/units/:unit_id", route.AsString())
	tenant, _ := dp.Attributes.Value(attribute.Key("tenant_id"))
	assert.Equal(t, tenantID.String(), tenant.AsString())

	duration := findMetricByName(t, reader, "http_server_request_duration_seconds")
	require.NotNil(t, duration)
	hist, ok := duration.Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	assert.Equal(t, uint64(3), hist.DataPoints[0].Count)

	active := findMetricByName(t, reader, "http_server_active_requests")
	require.NotNil(t, active)
	gauge, ok := active.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, gauge.DataPoints, 1)
	assert.Equal(t, int64(0), gauge.DataPoints[0].Value)
}

func TestHTTPMetrics_UnmatchedRoute(t *testing.T) {
	mp, reader := setupTestMeter(t)

	router := gin.New()
	router.Use(HTTPMetrics(mp.Meter("http.server")))

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	total := findMetricByName(t, reader, "http_server_request_total")
	require.NotNil(t, total)
	sum := total.Data.(metricdata.Sum[int64])
	require.Len(t, sum.DataPoints, 1)
	route, _ := sum.DataPoints[0].Attributes.Value(attribute.Key("http.route"))
	assert.Equal(t, "unknown", route.AsString())
	status, _ := sum.DataPoints[0].Attributes.Value(attribute.Key("http.status_code"))
	assert.Equal(t, int64(http.StatusNotFound), status.AsInt64())
}
