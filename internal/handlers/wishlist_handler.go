package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"scholarly_backend/internal/services"
	"scholarly_backend/internal/services/dto"
)

type WishlistHandler struct {
	*BaseHandler
	wishlistService services.WishlistService
}

func NewWishlistHandler(base *BaseHandler, wishlistService services.WishlistService) *WishlistHandler {
	return &WishlistHandler{
		BaseHandler:     base,
		wishlistService: wishlistService,
	}
}

func (h *WishlistHandler) RegisterRoutes(r *gin.RouterGroup) {
	wishlists := r.Group("/wishlists", h.RequireSession())
	{
		wishlists.POST("", h.AddToWishlist)
		wishlists.GET("", h.ListWishlist)
		wishlists.GET("/check/:scholarshipId", h.CheckWishlist)
		wishlists.DELETE("/:id", h.RemoveFromWishlist)
	}
}

// AddToWishlist godoc
// @Summary Добавить стипендию в избранное
// @Description Повторное добавление не создает дубликат
// @Tags wishlists
// @Accept json
// @Produce json
// @Param request body dto.AddWishlistRequest true "Запись"
// @Success 201 {object} dto.AddWishlistResponse
// @Success 200 {object} dto.AddWishlistResponse
// @Failure 403 {object} apperrors.AppError
// @Security CookieAuth
// @Router /wishlists [post]
func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	email, ok := h.GetSessionEmail(c)
	if !ok {
		return
	}

	var req dto.AddWishlistRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.wishlistService.Add(c.Request.Context(), h.GetDB(c), email, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	status := http.StatusCreated
	if !resp.Success {
		status = http.StatusOK
	}
	c.JSON(status, resp)
}

// ListWishlist godoc
// @Summary Избранное пользователя
// @Tags wishlists
// @Produce json
// @Param email query string true "Email владельца (должен совпадать с сессией)"
// @Success 200 {array} dto.WishlistItem
// @Failure 403 {object} apperrors.AppError
// @Security CookieAuth
// @Router /wishlists [get]
func (h *WishlistHandler) ListWishlist(c *gin.Context) {
	email, ok := h.GetSessionEmail(c)
	if !ok {
		return
	}

	items, err := h.wishlistService.List(c.Request.Context(), h.GetDB(c), email, c.Query("email"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// CheckWishlist godoc
// @Summary Есть ли стипендия в избранном
// @Tags wishlists
// @Produce json
// @Param scholarshipId path string true "ID стипендии"
// @Param email query string false "Email (если передан, должен совпадать с сессией)"
// @Success 200 {object} dto.WishlistCheckResponse
// @Security CookieAuth
// @Router /wishlists/check/{scholarshipId} [get]
func (h *WishlistHandler) CheckWishlist(c *gin.Context) {
	email, ok := h.GetSessionEmail(c)
	if !ok {
		return
	}

	resp, err := h.wishlistService.Check(c.Request.Context(), h.GetDB(c), email, c.Query("email"), c.Param("scholarshipId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RemoveFromWishlist godoc
// @Summary Удалить из избранного
// @Tags wishlists
// @Produce json
// @Param id path string true "ID записи"
// @Success 200 {object} dto.DeletedResponse
// @Failure 403 {object} apperrors.AppError
// @Failure 404 {object} apperrors.AppError
// @Security CookieAuth
// @Router /wishlists/{id} [delete]
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	email, ok := h.GetSessionEmail(c)
	if !ok {
		return
	}

	deleted, err := h.wishlistService.Delete(c.Request.Context(), h.GetDB(c), email, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeletedResponse{DeletedCount: deleted})
}
