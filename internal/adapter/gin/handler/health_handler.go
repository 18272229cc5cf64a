package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandler reports service liveness and database reachability
type HealthHandler struct {
	db      *gorm.DB
	service string
	log     *zap.Logger
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(db *gorm.DB, service string, log *zap.Logger) *HealthHandler {
	return &HealthHandler{db: db, service: service, log: log}
}

// DatabaseStatus is the connection pool snapshot returned by /health
type DatabaseStatus struct {
	Status          string `json:"status"`
	OpenConnections int    `json:"open_connections"`
	InUse           int    `json:"in_use"`
	Idle            int    `json:"idle"`
	Error           string `json:"error,omitempty"`
}

// HealthResponse represents the HTTP response of /health
type HealthResponse struct {
	Status   string         `json:"status"`
	Service  string         `json:"service"`
	Database DatabaseStatus `json:"database"`
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	resp := HealthResponse{Status: "healthy", Service: h.service}

	sqlDB, err := h.db.DB()
	if err == nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		defer cancel()
		err = sqlDB.PingContext(ctx)

		stats := sqlDB.Stats()
		resp.Database.OpenConnections = stats.OpenConnections
		resp.Database.InUse = stats.InUse
		resp.Database.Idle = stats.Idle
	}

	if err != nil {
		h.log.Error("health check failed", zap.Error(err))
		resp.Status = "unhealthy"
		resp.Database.Status = "down"
		resp.Database.Error = err.Error()
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	resp.Database.Status = "up"
	c.JSON(http.StatusOK, resp)
}
