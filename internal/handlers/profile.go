package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lyrahhq/lyrah-backend/internal/logger"
	"github.com/lyrahhq/lyrah-backend/internal/services"
)

type ProfileHandler struct {
	profileService services.ProfileService
	log            *logger.Logger
}

func NewProfileHandler(profileService services.ProfileService, log *logger.Logger) *ProfileHandler {
	handlerLog := log.With("handler", "ProfileHandler")
	return &ProfileHandler{profileService: profileService, log: handlerLog}
}

func (h *ProfileHandler) Create(c *gin.Context) {
	var input services.ProfileCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	profile, err := h.profileService.Create(c.Request.Context(), input)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, profile)
}

func (h *ProfileHandler) GetAll(c *gin.Context) {
	profiles, err := h.profileService.GetAll(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, profiles)
}

func (h *ProfileHandler) GetByID(c *gin.Context) {
	profileID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	profile, err := h.profileService.GetByID(c.Request.Context(), profileID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, profile)
}

func (h *ProfileHandler) GetByUserID(c *gin.Context) {
	userID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}
	profile, err := h.profileService.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, profile)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	profileID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var input services.ProfileUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	profile, err := h.profileService.Update(c.Request.Context(), profileID, input)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, profile)
}

func (h *ProfileHandler) GetImprovementAreas(c *gin.Context) {
	profileID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	areas, err := h.profileService.GetImprovementAreas(c.Request.Context(), profileID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, areas)
}

func (h *ProfileHandler) SetImprovementArea(c *gin.Context) {
	profileID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var input services.ImprovementAreaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if err := h.profileService.SetImprovementArea(c.Request.Context(), profileID, input); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "improvement area saved"})
}

func (h *ProfileHandler) RemoveImprovementArea(c *gin.Context) {
	profileID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	optionID, ok := parseIntParam(c, "optionId")
	if !ok {
		return
	}
	if err := h.profileService.RemoveImprovementArea(c.Request.Context(), profileID, optionID); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "improvement area removed"})
}

func (h *ProfileHandler) GetWellnessActivities(c *gin.Context) {
	profileID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	activities, err := h.profileService.GetWellnessActivities(c.Request.Context(), profileID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, activities)
}

func (h *ProfileHandler) AddWellnessActivity(c *gin.Context) {
	profileID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var input services.WellnessActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if err := h.profileService.AddWellnessActivity(c.Request.Context(), profileID, input); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "wellness activity added"})
}

func (h *ProfileHandler) RemoveWellnessActivity(c *gin.Context) {
	profileID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	optionID, ok := parseIntParam(c, "optionId")
	if !ok {
		return
	}
	if err := h.profileService.RemoveWellnessActivity(c.Request.Context(), profileID, optionID); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "wellness activity removed"})
}

func parseIntParam(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return 0, false
	}
	return v, true
}
