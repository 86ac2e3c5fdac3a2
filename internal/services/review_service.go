package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"scholarly_backend/internal/auth"
	"scholarly_backend/internal/logger"
	"scholarly_backend/internal/metrics"
	"scholarly_backend/internal/models"
	"scholarly_backend/internal/repositories"
	"scholarly_backend/internal/services/dto"
	"scholarly_backend/pkg/apperrors"
)

type ReviewService interface {
	// Upsert - один отзыв на (email, scholarshipId), после записи пересчитывается рейтинг
	Upsert(ctx context.Context, db *gorm.DB, session auth.Identity, req *dto.UpsertReviewRequest) (*dto.ReviewUpsertResponse, error)
	ListByScholarship(ctx context.Context, db *gorm.DB, scholarshipID string) ([]models.Review, error)
	ListByUser(ctx context.Context, db *gorm.DB, sessionEmail, email string) ([]models.Review, error)
	ListAll(ctx context.Context, db *gorm.DB) ([]models.Review, error)
	Delete(ctx context.Context, db *gorm.DB, id string) (int64, error)
}

type reviewService struct {
	reviewRepo      repositories.ReviewRepository
	scholarshipRepo repositories.ScholarshipRepository
	userRepo        repositories.UserRepository
	aggregator      RatingAggregator
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	scholarshipRepo repositories.ScholarshipRepository,
	userRepo repositories.UserRepository,
	aggregator RatingAggregator,
) ReviewService {
	return &reviewService{
		reviewRepo:      reviewRepo,
		scholarshipRepo: scholarshipRepo,
		userRepo:        userRepo,
		aggregator:      aggregator,
	}
}

func (s *reviewService) Upsert(ctx context.Context, db *gorm.DB, session auth.Identity, req *dto.UpsertReviewRequest) (*dto.ReviewUpsertResponse, error) {
	db = withContext(ctx, db)
	if err := requireValidID(req.ScholarshipID, "scholarshipId"); err != nil {
		return nil, err
	}
	if _, err := s.scholarshipRepo.FindByID(db, req.ScholarshipID); err != nil {
		return nil, mapNotFound(err, repositories.ErrScholarshipNotFound, apperrors.ErrScholarshipNotFound)
	}

	userName := strings.TrimSpace(req.UserName)
	if userName == "" {
		userName = session.Name
	}

	review, err := s.reviewRepo.Upsert(db, &models.Review{
		Email:         session.Email,
		ScholarshipID: req.ScholarshipID,
		UserName:      userName,
		UserImage:     req.UserImage,
		Rating:        req.Rating,
		Comment:       req.Comment,
	})
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	metrics.RecordReviewUpsert()
	logger.CtxInfo(ctx, "Review upserted", "review_id", review.ID, "scholarship_id", req.ScholarshipID)

	summary, err := s.aggregator.Recompute(ctx, db, req.ScholarshipID)
	if err != nil {
		return nil, err
	}

	return &dto.ReviewUpsertResponse{
		Review:      review,
		Ratings:     summary.Ratings,
		TotalReview: summary.TotalReview,
	}, nil
}

func (s *reviewService) ListByScholarship(ctx context.Context, db *gorm.DB, scholarshipID string) ([]models.Review, error) {
	if err := requireValidID(scholarshipID, "scholarshipId"); err != nil {
		return nil, err
	}
	reviews, err := s.reviewRepo.FindByScholarship(withContext(ctx, db), scholarshipID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return nonNilReviews(reviews), nil
}

func (s *reviewService) ListByUser(ctx context.Context, db *gorm.DB, sessionEmail, email string) ([]models.Review, error) {
	db = withContext(ctx, db)
	email = strings.ToLower(strings.TrimSpace(email))

	if email != sessionEmail {
		admin, err := isAdmin(db, s.userRepo, sessionEmail)
		if err != nil {
			return nil, err
		}
		if !admin {
			return nil, apperrors.ErrIdentityMismatch
		}
	}

	reviews, err := s.reviewRepo.FindByEmail(db, email)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return nonNilReviews(reviews), nil
}

func (s *reviewService) ListAll(ctx context.Context, db *gorm.DB) ([]models.Review, error) {
	reviews, err := s.reviewRepo.FindAll(withContext(ctx, db))
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return nonNilReviews(reviews), nil
}

func (s *reviewService) Delete(ctx context.Context, db *gorm.DB, id string) (int64, error) {
	db = withContext(ctx, db)
	if err := requireValidID(id, "id"); err != nil {
		return 0, err
	}

	review, err := s.reviewRepo.FindByID(db, id)
	if err != nil {
		return 0, mapNotFound(err, repositories.ErrReviewNotFound, apperrors.ErrReviewNotFound)
	}

	deleted, err := s.reviewRepo.Delete(db, id)
	if err != nil {
		return 0, apperrors.DatabaseError(err)
	}

	if _, err := s.aggregator.Recompute(ctx, db, review.ScholarshipID); err != nil {
		return 0, err
	}

	logger.CtxInfo(ctx, "Review deleted", "review_id", id, "scholarship_id", review.ScholarshipID)
	return deleted, nil
}

func nonNilReviews(reviews []models.Review) []models.Review {
	if reviews == nil {
		return []models.Review{}
	}
	return reviews
}
