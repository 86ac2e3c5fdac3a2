package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	HealthHandler      *HealthHandler
	AuthHandler        *AuthHandler
	UserHandler        *UserHandler
	ScholarshipHandler *ScholarshipHandler
	ApplicationHandler *ApplicationHandler
	ReviewHandler      *ReviewHandler
	WishlistHandler    *WishlistHandler
}
