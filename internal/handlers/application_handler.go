package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"scholarly_backend/internal/auth"
	"scholarly_backend/internal/services"
	"scholarly_backend/internal/services/dto"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	applications := r.Group("/applications", h.RequireSession())
	{
		applications.POST("", h.CreateApplication)
		applications.GET("/user/:email", h.ListUserApplications)
		applications.GET("/:id", h.GetApplication)
		applications.PATCH("/:id", h.UpdateApplication)
		applications.DELETE("/:id", h.DeleteApplication)

		review := applications.Group("", h.RequirePermission(auth.PermApplicationsReview))
		{
			review.GET("", h.ListApplications)
			review.PATCH("/feedback/:id", h.SetFeedback)
		}
	}
}

// CreateApplication godoc
// @Summary Подать заявку на стипендию
// @Description Email заявителя берется из сессии, поля стипендии копируются в заявку
// @Tags applications
// @Accept json
// @Produce json
// @Param request body dto.CreateApplicationRequest true "Заявка"
// @Success 201 {object} dto.CreateApplicationResponse
// @Failure 404 {object} apperrors.AppError
// @Security CookieAuth
// @Router /applications [post]
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	email, ok := h.GetSessionEmail(c)
	if !ok {
		return
	}

	var req dto.CreateApplicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	application, err := h.applicationService.Create(c.Request.Context(), h.GetDB(c), email, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateApplicationResponse{
		InsertedID:  application.ID,
		Application: application,
	})
}

// ListApplications godoc
// @Summary Все заявки (admin)
// @Description Сортировка pending, processing, completed, rejected, затем по дате создания
// @Tags applications
// @Produce json
// @Success 200 {array} models.Application
// @Failure 403 {object} apperrors.AppError
// @Security CookieAuth
// @Router /applications [get]
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	applications, err := h.applicationService.ListAll(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}

// ListUserApplications godoc
// @Summary Заявки пользователя
// @Tags applications
// @Produce json
// @Param email path string true "Email"
// @Success 200 {array} models.Application
// @Failure 403 {object} apperrors.AppError
// @Security CookieAuth
// @Router /applications/user/{email} [get]
func (h *ApplicationHandler) ListUserApplications(c *gin.Context) {
	email, ok := h.GetSessionEmail(c)
	if !ok {
		return
	}

	applications, err := h.applicationService.ListByUser(c.Request.Context(), h.GetDB(c), email, c.Param("email"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}

// GetApplication godoc
// @Summary Заявка по ID
// @Tags applications
// @Produce json
// @Param id path string true "ID заявки"
// @Success 200 {object} models.Application
// @Failure 403 {object} apperrors.AppError
// @Failure 404 {object} apperrors.AppError
// @Security CookieAuth
// @Router /applications/{id} [get]
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	email, ok := h.GetSessionEmail(c)
	if !ok {
		return
	}

	application, err := h.applicationService.Get(c.Request.Context(), h.GetDB(c), email, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, application)
}

// UpdateApplication godoc
// @Summary Изменить заявку
// @Description Владелец меняет данные пока заявка pending; статус и feedback меняет admin
// @Tags applications
// @Accept json
// @Produce json
// @Param id path string true "ID заявки"
// @Param request body dto.UpdateApplicationRequest true "Изменения"
// @Success 200 {object} models.Application
// @Failure 409 {object} apperrors.AppError
// @Security CookieAuth
// @Router /applications/{id} [patch]
func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	email, ok := h.GetSessionEmail(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	application, err := h.applicationService.Update(c.Request.Context(), h.GetDB(c), email, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, application)
}

// SetFeedback godoc
// @Summary Отзыв модератора по заявке (admin)
// @Tags applications
// @Accept json
// @Produce json
// @Param id path string true "ID заявки"
// @Param request body dto.FeedbackRequest true "Feedback"
// @Success 200 {object} models.Application
// @Security CookieAuth
// @Router /applications/feedback/{id} [patch]
func (h *ApplicationHandler) SetFeedback(c *gin.Context) {
	var req dto.FeedbackRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	application, err := h.applicationService.SetFeedback(c.Request.Context(), h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, application)
}

// DeleteApplication godoc
// @Summary Отозвать заявку
// @Description Только владелец и только пока заявка pending
// @Tags applications
// @Produce json
// @Param id path string true "ID заявки"
// @Success 200 {object} dto.DeletedResponse
// @Failure 409 {object} apperrors.AppError
// @Security CookieAuth
// @Router /applications/{id} [delete]
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	email, ok := h.GetSessionEmail(c)
	if !ok {
		return
	}

	deleted, err := h.applicationService.Delete(c.Request.Context(), h.GetDB(c), email, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeletedResponse{DeletedCount: deleted})
}
