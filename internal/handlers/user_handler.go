package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"scholarly_backend/internal/auth"
	"scholarly_backend/internal/services"
	"scholarly_backend/internal/services/dto"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	{
		users.POST("", h.RateLimit(), h.CreateUser)

		protected := users.Group("", h.RequireSession())
		{
			protected.GET("/:email/role", h.GetRole)
			protected.PATCH("/:id", h.UpdateUser)
			protected.DELETE("/:id", h.DeleteUser)
			protected.GET("", h.RequirePermission(auth.PermUsersRead), h.ListUsers)
		}
	}
}

// CreateUser godoc
// @Summary Зарегистрировать пользователя
// @Description Создает пользователя с ролью student, если email еще не занят
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "Данные пользователя"
// @Success 201 {object} dto.CreateUserResponse
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} apperrors.AppError
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.userService.CreateIfAbsent(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if !result.Created {
		c.JSON(http.StatusOK, dto.MessageResponse{Message: "user already exists"})
		return
	}

	c.JSON(http.StatusCreated, dto.CreateUserResponse{
		InsertedID: result.User.ID,
		User:       result.User,
	})
}

// GetRole godoc
// @Summary Роль пользователя
// @Description Для неизвестного email возвращается student
// @Tags users
// @Produce json
// @Param email path string true "Email"
// @Success 200 {object} dto.RoleResponse
// @Failure 401 {object} apperrors.AppError
// @Security CookieAuth
// @Router /users/{email}/role [get]
func (h *UserHandler) GetRole(c *gin.Context) {
	role, err := h.userService.GetRole(c.Request.Context(), h.GetDB(c), c.Param("email"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RoleResponse{Role: role})
}

// ListUsers godoc
// @Summary Список пользователей (admin)
// @Tags users
// @Produce json
// @Param search query string false "Поиск по имени или email"
// @Param filter query string false "Фильтр по роли"
// @Param page query int false "Страница"
// @Param limit query int false "Размер страницы"
// @Success 200 {object} dto.UserListResponse
// @Failure 403 {object} apperrors.AppError
// @Security CookieAuth
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	var query dto.UserListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.userService.ListUsers(c.Request.Context(), h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateUser godoc
// @Summary Обновить пользователя
// @Description Свой профиль может менять сам пользователь, роль меняет только admin (не себе)
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "ID пользователя"
// @Param request body dto.UpdateUserRequest true "Изменения"
// @Success 200 {object} models.User
// @Failure 403 {object} apperrors.AppError
// @Failure 404 {object} apperrors.AppError
// @Security CookieAuth
// @Router /users/{id} [patch]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	email, ok := h.GetSessionEmail(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), h.GetDB(c), email, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser godoc
// @Summary Удалить пользователя
// @Tags users
// @Produce json
// @Param id path string true "ID пользователя"
// @Success 200 {object} dto.DeletedResponse
// @Failure 403 {object} apperrors.AppError
// @Security CookieAuth
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	email, ok := h.GetSessionEmail(c)
	if !ok {
		return
	}

	deleted, err := h.userService.DeleteUser(c.Request.Context(), h.GetDB(c), email, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeletedResponse{DeletedCount: deleted})
}
