package services

import (
	"scholarly_backend/internal/auth"
	"scholarly_backend/internal/repositories"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	UserService        UserService
	AuthService        AuthService
	ScholarshipService ScholarshipService
	ApplicationService ApplicationService
	ReviewService      ReviewService
	WishlistService    WishlistService
	RatingAggregator   RatingAggregator
}

// Repositories - набор репозиториев, общий для сервисов и middleware
type Repositories struct {
	User        repositories.UserRepository
	Scholarship repositories.ScholarshipRepository
	Application repositories.ApplicationRepository
	Review      repositories.ReviewRepository
	Wishlist    repositories.WishlistRepository
}

func NewRepositories() *Repositories {
	return &Repositories{
		User:        repositories.NewUserRepository(),
		Scholarship: repositories.NewScholarshipRepository(),
		Application: repositories.NewApplicationRepository(),
		Review:      repositories.NewReviewRepository(),
		Wishlist:    repositories.NewWishlistRepository(),
	}
}

func NewServiceContainer(repos *Repositories, tokens *auth.TokenManager, pagination Pagination) *ServiceContainer {
	aggregator := NewRatingAggregator(repos.Review, repos.Scholarship)

	return &ServiceContainer{
		UserService:        NewUserService(repos.User, pagination),
		AuthService:        NewAuthService(tokens),
		ScholarshipService: NewScholarshipService(repos.Scholarship, pagination),
		ApplicationService: NewApplicationService(repos.Application, repos.Scholarship, repos.User),
		ReviewService:      NewReviewService(repos.Review, repos.Scholarship, repos.User, aggregator),
		WishlistService:    NewWishlistService(repos.Wishlist, repos.Scholarship),
		RatingAggregator:   aggregator,
	}
}
