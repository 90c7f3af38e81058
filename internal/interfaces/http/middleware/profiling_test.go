package middleware

import (
	"net/http"
	"net/http/httptest"
	"runtime/pprof"
	"testing"

	"github.com/doorscomputers/megatower-sub002/internal/infrastructure/telemetry"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfilingRouter(enabled bool, seen map[string]string) *gin.Engine {
	capture := func(c *gin.Context) {
		for _, key := range []string{
			telemetry.ProfilingLabelRoute,
			telemetry.ProfilingLabelMethod,
			telemetry.ProfilingLabelTenantID,
		} {
			if v, ok := pprof.Label(c.Request.Context(), key); ok {
				seen[key] = v
			}
		}
		c.Status(http.StatusNoContent)
	}

	router := gin.New()
	router.Use(Tenant(DefaultTenantConfig()), Profiling(DefaultProfilingConfig(enabled)))
	router.POST("/api/v1/billing/units/:unit_id/payments", capture)
	router.GET("/health", capture)
	return router
}

func TestProfiling(t *testing.T) {
	tenantID := uuid.New()

	t.Run("labels route method and tenant", func(t *testing.T) {
		seen := map[string]string{}
		req := httptest.NewRequest(http.MethodPost, "/api/v1/billing/units/"+uuid.NewString()+"/payments", nil)
		req.Header.Set(TenantHeaderKey, tenantID.String())
		w := httptest.NewRecorder()
		newProfilingRouter(true, seen).ServeHTTP(w, req)

		require.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, map[string]string{
			telemetry.ProfilingLabelRoute:    "/api/v1/billing/units/:unit_id/payments",
			telemetry.ProfilingLabelMethod:   http.MethodPost,
			telemetry.ProfilingLabelTenantID: tenantID.String(),
		}, seen)
	})

	t.Run("health is not labelled", func(t *testing.T) {
		seen := map[string]string{}
		w := httptest.NewRecorder()
		newProfilingRouter(true, seen).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, seen)
	})

	t.Run("disabled passes through", func(t *testing.T) {
		seen := map[string]string{}
		req := httptest.NewRequest(http.MethodPost, "/api/v1/billing/units/"+uuid.NewString()+"/payments", nil)
		req.Header.Set(TenantHeaderKey, tenantID.String())
		w := httptest.NewRecorder()
		newProfilingRouter(false, seen).ServeHTTP(w, req)

		require.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, seen)
	})
}
