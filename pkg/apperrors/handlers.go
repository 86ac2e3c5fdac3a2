package apperrors

import (
	"log/slog"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var debug atomic.Bool

// SetDebug: в debug-режиме 500-е отдают причину в details (все окружения кроме production)
func SetDebug(enabled bool) {
	debug.Store(enabled)
}

// HandleError пишет ошибку в ответ и прерывает цепочку gin.
// Все, что не *AppError, становится 500.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		slog.ErrorContext(c.Request.Context(), "server error", "error", err, "path", c.Request.URL.Path)
		appErr = forServerError(appErr, debug.Load())
	}

	c.AbortWithStatusJSON(appErr.HTTPCode, appErr)
}

func forServerError(appErr *AppError, debug bool) *AppError {
	if !debug {
		hidden := *appErr
		hidden.Message = "Internal server error"
		hidden.Details = nil
		return &hidden
	}
	if appErr.Err != nil && appErr.Details == nil {
		return appErr.WithDetails(appErr.Err.Error())
	}
	return appErr
}
