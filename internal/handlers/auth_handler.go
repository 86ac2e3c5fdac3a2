package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"scholarly_backend/internal/logger"
	"scholarly_backend/internal/middleware"
	"scholarly_backend/internal/services"
	"scholarly_backend/internal/services/dto"
)

type AuthHandler struct {
	*BaseHandler
	authService   services.AuthService
	tokenTTL      time.Duration
	secureCookies bool
}

// secureCookies включается в production: Secure + SameSite=None для cross-site клиента
func NewAuthHandler(base *BaseHandler, authService services.AuthService, tokenTTL time.Duration, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		BaseHandler:   base,
		authService:   authService,
		tokenTTL:      tokenTTL,
		secureCookies: secureCookies,
	}
}

func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/jwt", h.RateLimit(), h.IssueToken)
	r.POST("/logout", h.Logout)
}

// IssueToken godoc
// @Summary Выдать сессионный токен
// @Description Подписывает JWT для email/имени клиента и кладет его в httpOnly cookie "token"
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.IssueTokenRequest true "Идентичность клиента"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} apperrors.AppError
// @Failure 429 {object} apperrors.AppError
// @Router /jwt [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req dto.IssueTokenRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	token, err := h.authService.IssueToken(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.setSessionCookie(c, token, int(h.tokenTTL.Seconds()))
	logger.CtxInfo(c.Request.Context(), "Session token issued", "email", req.Email)

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// Logout godoc
// @Summary Сбросить сессию
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	if h.secureCookies {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteStrictMode)
	}
	c.SetCookie(middleware.SessionCookieName, value, maxAge, "/", "", h.secureCookies, true)
}
