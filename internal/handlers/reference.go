package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/lyrahhq/lyrah-backend/internal/logger"
	"github.com/lyrahhq/lyrah-backend/internal/services"
)

// ReferenceHandler exposes the read-only catalogs.
type ReferenceHandler struct {
	referenceService services.ReferenceService
	log              *logger.Logger
}

func NewReferenceHandler(referenceService services.ReferenceService, log *logger.Logger) *ReferenceHandler {
	handlerLog := log.With("handler", "ReferenceHandler")
	return &ReferenceHandler{referenceService: referenceService, log: handlerLog}
}

func (h *ReferenceHandler) GetQuestions(c *gin.Context) {
	questions, err := h.referenceService.GetQuestions(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, questions)
}

func (h *ReferenceHandler) GetQuestionByID(c *gin.Context) {
	questionID, ok := parseIntParam(c, "id")
	if !ok {
		return
	}
	question, err := h.referenceService.GetQuestionByID(c.Request.Context(), questionID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, question)
}

func (h *ReferenceHandler) GetQuestionsBySection(c *gin.Context) {
	section, ok := parseIntParam(c, "sectionNumber")
	if !ok {
		return
	}
	questions, err := h.referenceService.GetQuestionsBySection(c.Request.Context(), section)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, questions)
}

func (h *ReferenceHandler) GetQuestionsWithOptions(c *gin.Context) {
	questions, err := h.referenceService.GetQuestionsWithOptions(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, questions)
}

func (h *ReferenceHandler) GetQuestionnaire(c *gin.Context) {
	sections, err := h.referenceService.GetQuestionnaire(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, sections)
}

func (h *ReferenceHandler) GetQuestionOptions(c *gin.Context) {
	questionID, ok := parseIntParam(c, "id")
	if !ok {
		return
	}
	options, err := h.referenceService.GetQuestionOptions(c.Request.Context(), questionID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, options)
}

func (h *ReferenceHandler) GetOptionByID(c *gin.Context) {
	optionID, ok := parseIntParam(c, "optionId")
	if !ok {
		return
	}
	option, err := h.referenceService.GetOptionByID(c.Request.Context(), optionID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, option)
}

func (h *ReferenceHandler) GetCategories(c *gin.Context) {
	categories, err := h.referenceService.GetCategories(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, categories)
}

func (h *ReferenceHandler) GetCategoryByID(c *gin.Context) {
	categoryID, ok := parseIntParam(c, "id")
	if !ok {
		return
	}
	category, err := h.referenceService.GetCategoryByID(c.Request.Context(), categoryID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, category)
}

func (h *ReferenceHandler) GetCategoryQuestions(c *gin.Context) {
	categoryID, ok := parseIntParam(c, "id")
	if !ok {
		return
	}
	questions, err := h.referenceService.GetCategoryQuestions(c.Request.Context(), categoryID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, questions)
}

func (h *ReferenceHandler) GetCategoriesWithQuestions(c *gin.Context) {
	categories, err := h.referenceService.GetCategoriesWithQuestions(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, categories)
}

func (h *ReferenceHandler) GetMappings(c *gin.Context) {
	entries, err := h.referenceService.GetMappingEntries(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, entries)
}

func (h *ReferenceHandler) GetImprovementAreaOptions(c *gin.Context) {
	options, err := h.referenceService.GetImprovementAreaOptions(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, options)
}

func (h *ReferenceHandler) GetWellnessActivityOptions(c *gin.Context) {
	options, err := h.referenceService.GetWellnessActivityOptions(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, options)
}
