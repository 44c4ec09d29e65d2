// internal/handlers/health.go
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zensupply/backend/internal/i18n"
	"github.com/zensupply/backend/internal/services"
	"github.com/zensupply/backend/internal/utils"
)

const Version = "1.0.0"

type HealthHandler struct {
	healthService *services.HealthService
	timeout       time.Duration
}

func NewHealthHandler(healthService *services.HealthService, timeout time.Duration) *HealthHandler {
	return &HealthHandler{
		healthService: healthService,
		timeout:       timeout,
	}
}

// GET /
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": i18n.T(utils.GetLangFromContext(c), i18n.KeyBackendReady),
	})
}

// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": Version,
	})
}

// GET /test
func (h *HealthHandler) Diagnostics(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	c.JSON(http.StatusOK, h.healthService.Diagnose(ctx))
}
