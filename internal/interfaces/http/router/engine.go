package router

import (
	"net/http"

	"github.com/doorscomputers/megatower-sub002/internal/infrastructure/logger"
	"github.com/doorscomputers/megatower-sub002/internal/interfaces/http/dto"
	"github.com/doorscomputers/megatower-sub002/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// EngineConfig carries what the middleware chain needs
type EngineConfig struct {
	Logger         *zap.Logger
	Meter          metric.Meter
	Tracing        middleware.TracingConfig
	Profiling      middleware.ProfilingConfig
	CORS           middleware.CORSConfig
	MaxBodySize    int64
	TrustedProxies []string
	// Docs serves the API documentation under /swagger when set
	Docs gin.HandlerFunc
}

// NewEngine builds a gin engine with the full middleware chain. Health
// endpoints are mounted on both /health and /api/v1/health and, like the
// /swagger docs, skip the tenant check.
func NewEngine(cfg EngineConfig, health gin.HandlerFunc) (*gin.Engine, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, err
	}
	engine.HandleMethodNotAllowed = true

	engine.Use(
		logger.Recovery(log),
		middleware.RequestID(),
		logger.GinMiddleware(log),
		middleware.Secure(),
		middleware.CORSWithConfig(cfg.CORS),
		middleware.Tracing(cfg.Tracing),
		middleware.SpanErrorMarker(),
		middleware.HTTPMetrics(cfg.Meter),
	)
	if cfg.MaxBodySize > 0 {
		engine.Use(middleware.BodyLimit(cfg.MaxBodySize))
	}
	engine.Use(
		middleware.Tenant(middleware.DefaultTenantConfig()),
		middleware.TracingAttributes(),
		middleware.Profiling(cfg.Profiling),
	)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponseWithRequestID(
			dto.ErrCodeRouteNotFound, "Route not found", middleware.GetRequestID(c)))
	})
	engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, dto.NewErrorResponseWithRequestID(
			dto.ErrCodeBadRequest, "Method not allowed", middleware.GetRequestID(c)))
	})

	if health != nil {
		engine.GET("/health", health)
		engine.GET("/api/v1/health", health)
	}
	if cfg.Docs != nil {
		engine.GET("/swagger/*any", cfg.Docs)
	}
	return engine, nil
}
