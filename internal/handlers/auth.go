package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lyrahhq/lyrah-backend/internal/logger"
	"github.com/lyrahhq/lyrah-backend/internal/services"
)

type AuthHandler struct {
	authService services.AuthService
	log         *logger.Logger
}

func NewAuthHandler(authService services.AuthService, log *logger.Logger) *AuthHandler {
	handlerLog := log.With("handler", "AuthHandler")
	return &AuthHandler{authService: authService, log: handlerLog}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var input services.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	result, err := h.authService.Register(c.Request.Context(), input)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, result)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input services.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	meta := services.LoginMeta{
		IPAddress: c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
	}
	result, err := h.authService.Login(c.Request.Context(), input, meta)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}
