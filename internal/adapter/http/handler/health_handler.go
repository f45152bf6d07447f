package handler

import (
	"context"
	"net/http"

	"todoapi/internal/shared"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pinger reports whether the store is reachable.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

type HealthHandler struct {
	db     Pinger
	Logger *shared.Logger
}

func NewHealthHandler(db Pinger, logger *shared.Logger) *HealthHandler {
	return &HealthHandler{db: db, Logger: logger}
}

func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.db.HealthCheck(c.Request.Context()); err != nil {
		if h.Logger != nil {
			h.Logger.ErrorWithTrace(c.Request.Context(), "health check failed", zap.Error(err))
		}

		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
