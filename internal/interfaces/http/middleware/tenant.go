package middleware

import (
	"net/http"
	"strings"

	"github.com/doorscomputers/megatower-sub002/internal/infrastructure/logger"
	"github.com/doorscomputers/megatower-sub002/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Tenant context keys
const (
	TenantIDKey     = "tenant_id"
	TenantHeaderKey = "X-Tenant-ID"
)

// TenantConfig holds configuration for tenant middleware
type TenantConfig struct {
	// SkipPaths are paths that don't require tenant context (e.g., health check)
	SkipPaths []string
}

// DefaultTenantConfig returns default tenant middleware configuration
func DefaultTenantConfig() TenantConfig {
	return TenantConfig{
		SkipPaths: []string{"/health", "/api/v1/health", "/swagger"},
	}
}

// Tenant requires a UUID X-Tenant-ID header on every request outside SkipPaths.
// Resolving the tenant itself happens upstream.
func Tenant(cfg TenantConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skip := range cfg.SkipPaths {
			if path == skip || strings.HasPrefix(path, skip+"/") {
				c.Next()
				return
			}
		}

		raw := c.GetHeader(TenantHeaderKey)
		if raw == "" {
			respondUnauthorized(c, "Tenant identification required")
			return
		}
		tenantID, err := uuid.Parse(raw)
		if err != nil {
			respondUnauthorized(c, "Invalid tenant ID format")
			return
		}

		c.Set(TenantIDKey, tenantID)
		c.Request = c.Request.WithContext(logger.WithTenantID(c.Request.Context(), tenantID.String()))
		c.Next()
	}
}

func respondUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponseWithRequestID(
		dto.ErrCodeUnauthorized, message, GetRequestID(c)))
}

// GetTenantID returns the tenant set by Tenant, or uuid.Nil
func GetTenantID(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(TenantIDKey); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}
