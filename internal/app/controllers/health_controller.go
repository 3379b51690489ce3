package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/alumnet/internal/app/models/dto"
)

// PingFunc checks that a backing service answers
type PingFunc func(ctx context.Context) error

// HealthController reports whether PostgreSQL and Redis are reachable
type HealthController struct {
	database PingFunc
	redis    PingFunc
}

// NewHealthController creates a new HealthController
func NewHealthController(database, redis PingFunc) *HealthController {
	return &HealthController{database: database, redis: redis}
}

// Health pings the backing services
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.HealthResponse}
// @Failure 503 {object} dto.APIResponse{data=dto.HealthResponse}
// @Router /api/health [get]
func (hc *HealthController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	resp := dto.HealthResponse{Status: "ok", Database: "up", Redis: "up"}
	if err := hc.database(ctx); err != nil {
		resp.Status, resp.Database = "degraded", "down"
	}
	if err := hc.redis(ctx); err != nil {
		resp.Status, resp.Redis = "degraded", "down"
	}

	status := http.StatusOK
	body := dto.NewSuccessResponse(resp, "")
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
		body.Success = false
	}
	c.JSON(status, body)
}
