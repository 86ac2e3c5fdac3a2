package services

import (
	"context"
	"math"

	"gorm.io/gorm"

	"scholarly_backend/internal/logger"
	"scholarly_backend/internal/metrics"
	"scholarly_backend/internal/repositories"
	"scholarly_backend/pkg/apperrors"
)

// RatingSummary - итоговый рейтинг стипендии после пересчета
type RatingSummary struct {
	Ratings     int
	TotalReview int64
}

// RatingAggregator пересчитывает ratings/totalReview стипендии по всем ее отзывам.
// db может быть транзакцией.
type RatingAggregator interface {
	Recompute(ctx context.Context, db *gorm.DB, scholarshipID string) (*RatingSummary, error)
}

type ratingAggregator struct {
	reviewRepo      repositories.ReviewRepository
	scholarshipRepo repositories.ScholarshipRepository
}

func NewRatingAggregator(reviewRepo repositories.ReviewRepository, scholarshipRepo repositories.ScholarshipRepository) RatingAggregator {
	return &ratingAggregator{
		reviewRepo:      reviewRepo,
		scholarshipRepo: scholarshipRepo,
	}
}

func (a *ratingAggregator) Recompute(ctx context.Context, db *gorm.DB, scholarshipID string) (*RatingSummary, error) {
	db = withContext(ctx, db)

	stats, err := a.reviewRepo.GetRatingStats(db, scholarshipID)
	if err != nil {
		metrics.RecordRatingRecompute(false)
		return nil, apperrors.DatabaseError(err)
	}

	summary := &RatingSummary{TotalReview: stats.TotalReviews}
	if stats.TotalReviews > 0 {
		summary.Ratings = int(math.Round(stats.AverageRating))
	}

	if err := a.scholarshipRepo.UpdateRating(db, scholarshipID, summary.Ratings, summary.TotalReview); err != nil {
		metrics.RecordRatingRecompute(false)
		return nil, apperrors.DatabaseError(err)
	}

	metrics.RecordRatingRecompute(true)
	logger.CtxDebug(ctx, "Rating recomputed",
		"scholarship_id", scholarshipID,
		"ratings", summary.Ratings,
		"total_review", summary.TotalReview,
	)
	return summary, nil
}
