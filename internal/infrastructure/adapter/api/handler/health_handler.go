package handler

import (
	"context"
	"net/http"

	"github.com/amirhossein-jamali/timenorm/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/timenorm/internal/domain/port/core"
	"github.com/amirhossein-jamali/timenorm/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// Pinger is anything whose liveness can be probed, e.g. the database manager
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports service health
type HealthHandler struct {
	db           Pinger
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(db Pinger, timeProvider coreport.TimeProvider, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Health handles GET /health; an unreachable database answers 503
func (h *HealthHandler) Health(c *gin.Context) {
	resp := dto.HealthResponse{
		Status:   "ok",
		Database: "ok",
		Time:     entity.Now(h.timeProvider).ISOString(),
	}

	if err := h.db.Ping(c.Request.Context()); err != nil {
		h.logger.Warn("Health check failed", map[string]any{"error": err.Error()})
		resp.Status = "degraded"
		resp.Database = "unreachable"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}
