package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"scholarly_backend/internal/auth"
	"scholarly_backend/internal/logger"
	"scholarly_backend/internal/middleware"
	"scholarly_backend/internal/models"
	"scholarly_backend/internal/repositories"
	"scholarly_backend/internal/validator"
	"scholarly_backend/pkg/apperrors"
)

// BaseHandler - общие зависимости хэндлеров: валидатор, проверка сессии,
// guard'ы по ролям и rate limit для публичных POST.
type BaseHandler struct {
	validator *validator.Validator
	tokens    *auth.TokenManager
	userRepo  repositories.UserRepository
	limiter   *middleware.RateLimiter
}

func NewBaseHandler(v *validator.Validator, tokens *auth.TokenManager, userRepo repositories.UserRepository, limiter *middleware.RateLimiter) *BaseHandler {
	return &BaseHandler{
		validator: v,
		tokens:    tokens,
		userRepo:  userRepo,
		limiter:   limiter,
	}
}

// --- guards для RegisterRoutes ---

func (h *BaseHandler) RequireSession() gin.HandlerFunc {
	return middleware.AuthMiddleware(h.tokens)
}

func (h *BaseHandler) RequireRole(minRole models.UserRole) gin.HandlerFunc {
	return middleware.RequireRole(h.userRepo, minRole)
}

func (h *BaseHandler) RequirePermission(permission string) gin.HandlerFunc {
	return middleware.RequirePermission(h.userRepo, permission)
}

func (h *BaseHandler) RateLimit() gin.HandlerFunc {
	return h.limiter.Middleware()
}

// GetDB - пул (или транзакция) из DBMiddleware.
// Без DBMiddleware роутер собран неправильно, поэтому паника.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	db, ok := middleware.GetDB(c)
	if !ok {
		logger.CtxError(c.Request.Context(), "db is missing in gin context", "path", c.FullPath())
		panic("handlers: DBMiddleware is not installed")
	}
	return db
}

// --- привязка и валидация ---

func (h *BaseHandler) BindAndValidate_JSON(c *gin.Context, obj interface{}) bool {
	return h.bindAndValidate(c, obj, c.ShouldBindJSON, "Invalid request body: ")
}

func (h *BaseHandler) BindAndValidate_Query(c *gin.Context, obj interface{}) bool {
	return h.bindAndValidate(c, obj, c.ShouldBindQuery, "Invalid query parameters: ")
}

func (h *BaseHandler) bindAndValidate(c *gin.Context, obj interface{}, bind func(interface{}) error, prefix string) bool {
	ctx := c.Request.Context()

	if err := bind(obj); err != nil {
		logger.CtxWarn(ctx, "Request binding failed", "error", err.Error(), "path", c.FullPath())
		apperrors.HandleError(c, apperrors.NewBadRequestError(prefix+err.Error()))
		return false
	}

	err := h.validator.Validate(obj)
	if err == nil {
		return true
	}

	if vErr, ok := err.(*validator.ValidationError); ok {
		logger.CtxWarn(ctx, "Request validation failed", "fields", vErr.Errors, "path", c.FullPath())
		apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		return false
	}

	apperrors.HandleError(c, apperrors.InternalError(err))
	return false
}

// --- ошибки и сессия ---

// HandleServiceError: AppError отдается как есть (warn в лог), остальное - 500
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	if appErr, ok := apperrors.AsAppError(err); ok && appErr.HTTPCode < 500 {
		logger.CtxWarn(ctx, "Request rejected",
			"code", appErr.Code,
			"message", appErr.Message,
			"path", c.FullPath(),
		)
		apperrors.HandleError(c, appErr)
		return
	}

	logger.CtxWithError(ctx, "Request failed", err, "path", c.FullPath())
	apperrors.HandleError(c, err)
}

// GetSessionEmail возвращает email сессии или отвечает 401
func (h *BaseHandler) GetSessionEmail(c *gin.Context) (string, bool) {
	email := middleware.SessionEmail(c)
	if email == "" {
		apperrors.HandleError(c, apperrors.ErrMissingSession)
		return "", false
	}
	return email, true
}
