package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"scholarly_backend/internal/auth"
	"scholarly_backend/internal/logger"
	"scholarly_backend/internal/models"
	"scholarly_backend/internal/repositories"
	"scholarly_backend/pkg/apperrors"
	"scholarly_backend/pkg/contextkeys"
)

// SessionCookieName - httpOnly cookie с сессионным токеном
const SessionCookieName = "token"

// AuthMiddleware проверяет токен из cookie и кладет email сессии в контекст
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(SessionCookieName)
		if err != nil || raw == "" {
			apperrors.HandleError(c, apperrors.ErrMissingSession)
			return
		}

		claims, err := tokens.Parse(raw)
		if err != nil {
			logger.CtxDebug(c.Request.Context(), "Session token rejected", "error", err)
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			return
		}

		c.Set(contextkeys.SessionEmailKey, claims.Email)
		c.Set(contextkeys.SessionNameKey, claims.Name)
		ctx := logger.WithUserEmail(c.Request.Context(), claims.Email)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireRole пропускает пользователей с рангом не ниже minRole.
// Нет записи пользователя или ранг ниже - 403, цепочка прерывается.
func RequireRole(userRepo repositories.UserRepository, minRole models.UserRole) gin.HandlerFunc {
	return guard(userRepo, func(role models.UserRole) bool {
		return auth.AtLeast(role, minRole)
	})
}

// RequirePermission проверяет разрешение по таблице ролей
func RequirePermission(userRepo repositories.UserRepository, permission string) gin.HandlerFunc {
	return guard(userRepo, func(role models.UserRole) bool {
		return auth.HasPermission(role, permission)
	})
}

func guard(userRepo repositories.UserRepository, allowed func(models.UserRole) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := SessionEmail(c)
		if email == "" {
			apperrors.HandleError(c, apperrors.ErrMissingSession)
			return
		}

		db, ok := GetDB(c)
		if !ok {
			apperrors.HandleError(c, apperrors.InternalError(errors.New("database not available in context")))
			return
		}

		user, err := userRepo.FindByEmail(db.WithContext(c.Request.Context()), email)
		if err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
				return
			}
			apperrors.HandleError(c, apperrors.DatabaseError(err))
			return
		}

		if !allowed(user.Role) {
			logger.CtxWarn(c.Request.Context(), "Access denied", "role", user.Role, "path", c.FullPath())
			apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
			return
		}

		c.Set(contextkeys.UserRoleKey, user.Role)
		c.Next()
	}
}

// SessionEmail - email из проверенного токена
func SessionEmail(c *gin.Context) string {
	return c.GetString(contextkeys.SessionEmailKey)
}

func SessionIdentity(c *gin.Context) auth.Identity {
	return auth.Identity{
		Email: c.GetString(contextkeys.SessionEmailKey),
		Name:  c.GetString(contextkeys.SessionNameKey),
	}
}
