package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lyrahhq/lyrah-backend/internal/db"
	"github.com/lyrahhq/lyrah-backend/internal/logger"
)

type HealthHandler struct {
	pg  *db.PostgresService
	log *logger.Logger
}

func NewHealthHandler(pg *db.PostgresService, log *logger.Logger) *HealthHandler {
	handlerLog := log.With("handler", "HealthHandler")
	return &HealthHandler{pg: pg, log: handlerLog}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	status := "ok"
	dbStatus := "up"
	code := http.StatusOK

	if err := h.pg.Ping(c.Request.Context()); err != nil {
		h.log.Error("Healthcheck db ping failed", "error", err)
		status = "degraded"
		dbStatus = "down"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":    status,
		"database":  dbStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
