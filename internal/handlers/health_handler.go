package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"scholarly_backend/internal/logger"
)

type HealthHandler struct {
	*BaseHandler
}

func NewHealthHandler(base *BaseHandler) *HealthHandler {
	return &HealthHandler{BaseHandler: base}
}

func (h *HealthHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/", h.Banner)
	r.GET("/healthz", h.Healthz)
}

// Banner godoc
// @Summary Проверка, что сервер запущен
// @Tags health
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func (h *HealthHandler) Banner(c *gin.Context) {
	c.String(http.StatusOK, "Scholarly server is running!")
}

// Healthz godoc
// @Summary Проверка соединения с БД
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /healthz [get]
func (h *HealthHandler) Healthz(c *gin.Context) {
	sqlDB, err := h.GetDB(c).DB()
	if err == nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		err = sqlDB.PingContext(ctx)
	}

	if err != nil {
		logger.CtxWithError(c.Request.Context(), "Health check failed", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
