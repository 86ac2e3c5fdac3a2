package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"scholarly_backend/internal/auth"
	"scholarly_backend/internal/middleware"
	"scholarly_backend/internal/models"
	"scholarly_backend/internal/services"
	"scholarly_backend/internal/services/dto"
)

type ReviewHandler struct {
	*BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(base *BaseHandler, reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   base,
		reviewService: reviewService,
	}
}

func (h *ReviewHandler) RegisterRoutes(r *gin.RouterGroup) {
	reviews := r.Group("/reviews", h.RequireSession())
	{
		reviews.POST("", h.UpsertReview)
		reviews.GET("", h.RequireRole(models.UserRoleModerator), h.ListReviews)
		reviews.GET("/user/:email", h.ListUserReviews)
		reviews.GET("/:scholarshipId", h.ListScholarshipReviews)
		reviews.DELETE("/:id", h.RequirePermission(auth.PermReviewsDelete), h.DeleteReview)
	}
}

// UpsertReview godoc
// @Summary Оставить или обновить отзыв
// @Description Один отзыв на пару (email, scholarshipId); после записи пересчитывается рейтинг стипендии
// @Tags reviews
// @Accept json
// @Produce json
// @Param request body dto.UpsertReviewRequest true "Отзыв"
// @Success 200 {object} dto.ReviewUpsertResponse
// @Failure 400 {object} apperrors.AppError
// @Failure 404 {object} apperrors.AppError
// @Security CookieAuth
// @Router /reviews [post]
func (h *ReviewHandler) UpsertReview(c *gin.Context) {
	if _, ok := h.GetSessionEmail(c); !ok {
		return
	}

	var req dto.UpsertReviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.reviewService.Upsert(c.Request.Context(), h.GetDB(c), middleware.SessionIdentity(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListReviews godoc
// @Summary Все отзывы (moderator+)
// @Tags reviews
// @Produce json
// @Success 200 {array} models.Review
// @Failure 403 {object} apperrors.AppError
// @Security CookieAuth
// @Router /reviews [get]
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	reviews, err := h.reviewService.ListAll(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// ListUserReviews godoc
// @Summary Отзывы пользователя
// @Tags reviews
// @Produce json
// @Param email path string true "Email автора"
// @Success 200 {array} models.Review
// @Failure 403 {object} apperrors.AppError
// @Security CookieAuth
// @Router /reviews/user/{email} [get]
func (h *ReviewHandler) ListUserReviews(c *gin.Context) {
	email, ok := h.GetSessionEmail(c)
	if !ok {
		return
	}

	reviews, err := h.reviewService.ListByUser(c.Request.Context(), h.GetDB(c), email, c.Param("email"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// ListScholarshipReviews godoc
// @Summary Отзывы по стипендии
// @Tags reviews
// @Produce json
// @Param scholarshipId path string true "ID стипендии"
// @Success 200 {array} models.Review
// @Security CookieAuth
// @Router /reviews/{scholarshipId} [get]
func (h *ReviewHandler) ListScholarshipReviews(c *gin.Context) {
	reviews, err := h.reviewService.ListByScholarship(c.Request.Context(), h.GetDB(c), c.Param("scholarshipId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// DeleteReview godoc
// @Summary Удалить отзыв (admin)
// @Tags reviews
// @Produce json
// @Param id path string true "ID отзыва"
// @Success 200 {object} dto.DeletedResponse
// @Failure 404 {object} apperrors.AppError
// @Security CookieAuth
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	deleted, err := h.reviewService.Delete(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeletedResponse{DeletedCount: deleted})
}
