package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "scholarly_backend/docs"
	"scholarly_backend/internal/handlers"
	"scholarly_backend/internal/logger"
	"scholarly_backend/internal/metrics"
)

type Options struct {
	// EnableDocs включает /swagger (выключено в production)
	EnableDocs bool
}

// RegisterRoutes регистрирует все HTTP маршруты.
// Пути лежат в корне: клиент обращается к /scholarships, /jwt и т.д. без префикса версии.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	opts Options,
) {
	api := ginRouter.Group("")
	{
		appHandlers.HealthHandler.RegisterRoutes(api)
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.ScholarshipHandler.RegisterRoutes(api)
		appHandlers.ApplicationHandler.RegisterRoutes(api)
		appHandlers.ReviewHandler.RegisterRoutes(api)
		appHandlers.WishlistHandler.RegisterRoutes(api)
	}

	ginRouter.GET("/metrics", gin.WrapH(metrics.Handler()))

	if opts.EnableDocs {
		ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
		logger.Info("Swagger UI route /swagger/index.html registered")
	}
}
