package middleware

import (
	"context"
	"strings"

	"github.com/doorscomputers/megatower-sub002/internal/infrastructure/telemetry"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProfilingConfig holds configuration for the profiling middleware.
type ProfilingConfig struct {
	// Enabled controls whether profiling labels are added to requests.
	Enabled bool
	// SkipPaths are matched exactly or as a path prefix.
	SkipPaths []string
}

// DefaultProfilingConfig returns the profiling configuration used by the server.
func DefaultProfilingConfig(enabled bool) ProfilingConfig {
	return ProfilingConfig{
		Enabled:   enabled,
		SkipPaths: []string{"/health", "/api/v1/health", "/swagger"},
	}
}

// Profiling attaches Pyroscope labels to the CPU samples of each request:
// the matched route pattern, the HTTP method and the tenant. It must run
// after Tenant.
func Profiling(cfg ProfilingConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skip := range cfg.SkipPaths {
			if path == skip || strings.HasPrefix(path, skip+"/") {
				c.Next()
				return
			}
		}

		telemetry.WithProfilingLabels(c.Request.Context(), profilingLabels(c), func(ctx context.Context) {
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
	}
}

func profilingLabels(c *gin.Context) map[string]string {
	labels := make(map[string]string, 3)
	labels[telemetry.ProfilingLabelMethod] = c.Request.Method
	// Route pattern, not the raw path, keeps cardinality low
	labels[telemetry.ProfilingLabelRoute] = c.FullPath()
	if tenantID := GetTenantID(c); tenantID != uuid.Nil {
		labels[telemetry.ProfilingLabelTenantID] = tenantID.String()
	}
	return labels
}
