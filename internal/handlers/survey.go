package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lyrahhq/lyrah-backend/internal/logger"
	"github.com/lyrahhq/lyrah-backend/internal/services"
)

type SurveyHandler struct {
	surveyService services.SurveyService
	log           *logger.Logger
}

func NewSurveyHandler(surveyService services.SurveyService, log *logger.Logger) *SurveyHandler {
	handlerLog := log.With("handler", "SurveyHandler")
	return &SurveyHandler{surveyService: surveyService, log: handlerLog}
}

func (h *SurveyHandler) Create(c *gin.Context) {
	var input services.SurveyCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	detail, err := h.surveyService.Create(c.Request.Context(), input)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, detail)
}

func (h *SurveyHandler) Update(c *gin.Context) {
	surveyID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var input services.SurveyUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	detail, err := h.surveyService.Update(c.Request.Context(), surveyID, input)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, detail)
}

func (h *SurveyHandler) GetAll(c *gin.Context) {
	surveys, err := h.surveyService.GetAll(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, surveys)
}

func (h *SurveyHandler) GetByID(c *gin.Context) {
	surveyID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	detail, err := h.surveyService.GetByID(c.Request.Context(), surveyID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, detail)
}

func (h *SurveyHandler) GetByProfile(c *gin.Context) {
	profileID, ok := parseUUIDParam(c, "profileId")
	if !ok {
		return
	}
	surveys, err := h.surveyService.GetByProfile(c.Request.Context(), profileID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, surveys)
}

func (h *SurveyHandler) GetLatestByProfile(c *gin.Context) {
	profileID, ok := parseUUIDParam(c, "profileId")
	if !ok {
		return
	}
	summary, err := h.surveyService.GetLatestByProfile(c.Request.Context(), profileID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, summary)
}

func (h *SurveyHandler) GetHistory(c *gin.Context) {
	profileID, ok := parseUUIDParam(c, "profileId")
	if !ok {
		return
	}
	entries, err := h.surveyService.GetHistory(c.Request.Context(), profileID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, entries)
}
