package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"scholarly_backend/internal/auth"
	"scholarly_backend/internal/services"
	"scholarly_backend/internal/services/dto"
)

type ScholarshipHandler struct {
	*BaseHandler
	scholarshipService services.ScholarshipService
}

func NewScholarshipHandler(base *BaseHandler, scholarshipService services.ScholarshipService) *ScholarshipHandler {
	return &ScholarshipHandler{
		BaseHandler:        base,
		scholarshipService: scholarshipService,
	}
}

func (h *ScholarshipHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Публичный каталог
	r.GET("/scholarships", h.ListScholarships)

	protected := r.Group("", h.RequireSession())
	{
		protected.GET("/scholarships/:id", h.GetScholarship)

		admin := protected.Group("", h.RequirePermission(auth.PermScholarshipsWrite))
		{
			admin.POST("/add-scholarships", h.CreateScholarship)
			admin.PATCH("/scholarships/:id", h.UpdateScholarship)
			admin.DELETE("/scholarships/:id", h.DeleteScholarship)
		}
	}
}

// ListScholarships godoc
// @Summary Каталог стипендий
// @Description Фильтры по категории, предмету, штату (без учета регистра), поиск, сортировка и пагинация
// @Tags scholarships
// @Produce json
// @Param scholarshipCategory query string false "Категория (алиас schCat)"
// @Param subjectCategory query string false "Предмет (алиас subCat)"
// @Param state query string false "Штат"
// @Param search query string false "Поиск по названию, университету, предмету"
// @Param sort query string false "amount_asc|amount_desc|deadline_asc|deadline_desc|rating_desc|newest"
// @Param page query int false "Страница"
// @Param limit query int false "Размер страницы"
// @Success 200 {object} dto.ScholarshipListResponse
// @Failure 400 {object} apperrors.AppError
// @Router /scholarships [get]
func (h *ScholarshipHandler) ListScholarships(c *gin.Context) {
	var query dto.ScholarshipQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.scholarshipService.List(c.Request.Context(), h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetScholarship godoc
// @Summary Стипендия по ID
// @Tags scholarships
// @Produce json
// @Param id path string true "ID стипендии"
// @Success 200 {object} models.Scholarship
// @Failure 404 {object} apperrors.AppError
// @Security CookieAuth
// @Router /scholarships/{id} [get]
func (h *ScholarshipHandler) GetScholarship(c *gin.Context) {
	scholarship, err := h.scholarshipService.Get(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, scholarship)
}

// CreateScholarship godoc
// @Summary Добавить стипендию (admin)
// @Tags scholarships
// @Accept json
// @Produce json
// @Param request body dto.CreateScholarshipRequest true "Стипендия"
// @Success 201 {object} dto.CreateScholarshipResponse
// @Failure 400 {object} apperrors.AppError
// @Failure 403 {object} apperrors.AppError
// @Security CookieAuth
// @Router /add-scholarships [post]
func (h *ScholarshipHandler) CreateScholarship(c *gin.Context) {
	email, ok := h.GetSessionEmail(c)
	if !ok {
		return
	}

	var req dto.CreateScholarshipRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	scholarship, err := h.scholarshipService.Create(c.Request.Context(), h.GetDB(c), email, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateScholarshipResponse{
		InsertedID:  scholarship.ID,
		Scholarship: scholarship,
	})
}

// UpdateScholarship godoc
// @Summary Изменить стипендию (admin)
// @Tags scholarships
// @Accept json
// @Produce json
// @Param id path string true "ID стипендии"
// @Param request body dto.UpdateScholarshipRequest true "Изменения"
// @Success 200 {object} models.Scholarship
// @Failure 404 {object} apperrors.AppError
// @Security CookieAuth
// @Router /scholarships/{id} [patch]
func (h *ScholarshipHandler) UpdateScholarship(c *gin.Context) {
	var req dto.UpdateScholarshipRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	scholarship, err := h.scholarshipService.Update(c.Request.Context(), h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, scholarship)
}

// DeleteScholarship godoc
// @Summary Удалить стипендию (admin)
// @Description adminEmail должен совпадать с email сессии
// @Tags scholarships
// @Produce json
// @Param id path string true "ID стипендии"
// @Param adminEmail query string true "Email администратора"
// @Success 200 {object} dto.DeletedResponse
// @Failure 403 {object} apperrors.AppError
// @Failure 404 {object} apperrors.AppError
// @Security CookieAuth
// @Router /scholarships/{id} [delete]
func (h *ScholarshipHandler) DeleteScholarship(c *gin.Context) {
	email, ok := h.GetSessionEmail(c)
	if !ok {
		return
	}

	deleted, err := h.scholarshipService.Delete(c.Request.Context(), h.GetDB(c), email, c.Query("adminEmail"), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeletedResponse{DeletedCount: deleted})
}
