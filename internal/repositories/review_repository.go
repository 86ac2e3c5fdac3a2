package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"scholarly_backend/internal/models"
)

var (
	ErrReviewNotFound = errors.New("review not found")
)

type ReviewRepository interface {
	// Upsert вставляет или заменяет отзыв пары (email, scholarshipId)
	Upsert(db *gorm.DB, review *models.Review) (*models.Review, error)
	FindByID(db *gorm.DB, id string) (*models.Review, error)
	FindByScholarship(db *gorm.DB, scholarshipID string) ([]models.Review, error)
	FindByEmail(db *gorm.DB, email string) ([]models.Review, error)
	FindAll(db *gorm.DB) ([]models.Review, error)
	Delete(db *gorm.DB, id string) (int64, error)
	GetRatingStats(db *gorm.DB, scholarshipID string) (*RatingStats, error)
}

// RatingStats - агрегат по отзывам одной стипендии
type RatingStats struct {
	AverageRating float64
	TotalReviews  int64
}

type ReviewRepositoryImpl struct{}

func NewReviewRepository() ReviewRepository {
	return &ReviewRepositoryImpl{}
}

func (r *ReviewRepositoryImpl) Upsert(db *gorm.DB, review *models.Review) (*models.Review, error) {
	now := time.Now()
	if review.CreatedAt.IsZero() {
		review.CreatedAt = now
	}
	review.UpdatedDate = now

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}, {Name: "scholarship_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_name", "user_image", "rating", "comment", "updated_date"}),
	}).Create(review).Error
	if err != nil {
		return nil, err
	}

	// id и createdAt у существующей записи не меняются, перечитываем
	var stored models.Review
	err = db.Where("email = ? AND scholarship_id = ?", review.Email, review.ScholarshipID).First(&stored).Error
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *ReviewRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Review, error) {
	var review models.Review
	if err := db.First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) FindByScholarship(db *gorm.DB, scholarshipID string) ([]models.Review, error) {
	var reviews []models.Review
	err := db.Where("scholarship_id = ?", scholarshipID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) FindByEmail(db *gorm.DB, email string) ([]models.Review, error) {
	var reviews []models.Review
	err := db.Where("email = ?", email).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) FindAll(db *gorm.DB) ([]models.Review, error) {
	var reviews []models.Review
	err := db.Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) Delete(db *gorm.DB, id string) (int64, error) {
	result := db.Where("id = ?", id).Delete(&models.Review{})
	return result.RowsAffected, result.Error
}

func (r *ReviewRepositoryImpl) GetRatingStats(db *gorm.DB, scholarshipID string) (*RatingStats, error) {
	var row struct {
		Average float64
		Total   int64
	}
	err := db.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS total").
		Where("scholarship_id = ?", scholarshipID).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &RatingStats{AverageRating: row.Average, TotalReviews: row.Total}, nil
}
