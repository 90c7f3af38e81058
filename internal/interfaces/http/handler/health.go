package handler

import (
	"context"
	"net/http"
	"runtime"
	"sort"
	"time"

	"github.com/doorscomputers/megatower-sub002/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// HealthCheck checks one dependency
type HealthCheck func(ctx context.Context) error

// HealthHandler reports liveness and the state of the service's dependencies
type HealthHandler struct {
	BaseHandler
	version   string
	startTime time.Time
	checks    map[string]HealthCheck
	timeout   time.Duration
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(version string, checks map[string]HealthCheck) *HealthHandler {
	return &HealthHandler{
		version:   version,
		startTime: time.Now(),
		checks:    checks,
		timeout:   2 * time.Second,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status" example:"ok"`
	Version   string            `json:"version" example:"1.0.0"`
	GoVersion string            `json:"go_version" example:"go1.25.5"`
	Uptime    string            `json:"uptime" example:"1h30m45s"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// Health godoc
// @ID           health
// @Summary      Health check
// @Description  Runs every registered dependency check. Any failed check answers 503 with status degraded
// @Tags         system
// @Produce      json
// @Success      200 {object} dto.Response{data=HealthResponse}
// @Failure      503 {object} dto.Response{data=HealthResponse}
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	resp := HealthResponse{
		Status:    "ok",
		Version:   h.version,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Checks:    make(map[string]string, len(names)),
	}
	status := http.StatusOK
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			resp.Checks[name] = err.Error()
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}

	c.JSON(status, dto.NewSuccessResponse(resp))
}
