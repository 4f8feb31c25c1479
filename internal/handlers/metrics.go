package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lyrahhq/lyrah-backend/internal/logger"
	"github.com/lyrahhq/lyrah-backend/internal/services"
)

type MetricsHandler struct {
	metricsService services.MetricsService
	log            *logger.Logger
}

func NewMetricsHandler(metricsService services.MetricsService, log *logger.Logger) *MetricsHandler {
	handlerLog := log.With("handler", "MetricsHandler")
	return &MetricsHandler{metricsService: metricsService, log: handlerLog}
}

func (h *MetricsHandler) GetLatestWellnessMetric(c *gin.Context) {
	metric, err := h.metricsService.GetLatestWellnessMetric(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, metric)
}

func (h *MetricsHandler) GetSurveyStatistics(c *gin.Context) {
	stats, err := h.metricsService.GetSurveyStatistics(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, stats)
}

func (h *MetricsHandler) GetLoginHistory(c *gin.Context) {
	userID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}
	entries, err := h.metricsService.GetLoginHistory(c.Request.Context(), userID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, entries)
}

func (h *MetricsHandler) GetUserActivity(c *gin.Context) {
	userID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}
	entries, err := h.metricsService.GetUserActivity(c.Request.Context(), userID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, entries)
}

func (h *MetricsHandler) LogActivity(c *gin.Context) {
	userID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}
	var input services.ActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	input.IPAddress = c.ClientIP()
	if err := h.metricsService.LogActivity(c.Request.Context(), userID, input); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, gin.H{"message": "activity recorded"})
}
