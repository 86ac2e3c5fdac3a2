package repositories

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"scholarly_backend/internal/models"
)

var (
	ErrWishlistNotFound = errors.New("wishlist entry not found")
)

type WishlistRepository interface {
	// Add возвращает false, если пара (userEmail, scholarshipId) уже есть
	Add(db *gorm.DB, entry *models.Wishlist) (bool, error)
	FindByID(db *gorm.DB, id string) (*models.Wishlist, error)
	FindByUserEmail(db *gorm.DB, email string) ([]models.Wishlist, error)
	FindByUserAndScholarship(db *gorm.DB, email, scholarshipID string) (*models.Wishlist, error)
	Delete(db *gorm.DB, id string) (int64, error)
}

type WishlistRepositoryImpl struct{}

func NewWishlistRepository() WishlistRepository {
	return &WishlistRepositoryImpl{}
}

func (r *WishlistRepositoryImpl) Add(db *gorm.DB, entry *models.Wishlist) (bool, error) {
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_email"}, {Name: "scholarship_id"}},
		DoNothing: true,
	}).Create(entry)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *WishlistRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Wishlist, error) {
	var entry models.Wishlist
	if err := db.First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWishlistNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *WishlistRepositoryImpl) FindByUserEmail(db *gorm.DB, email string) ([]models.Wishlist, error) {
	var entries []models.Wishlist
	err := db.Where("user_email = ?", email).
		Order("created_at ASC").
		Order("id ASC").
		Find(&entries).Error
	return entries, err
}

func (r *WishlistRepositoryImpl) FindByUserAndScholarship(db *gorm.DB, email, scholarshipID string) (*models.Wishlist, error) {
	var entry models.Wishlist
	err := db.Where("user_email = ? AND scholarship_id = ?", email, scholarshipID).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWishlistNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *WishlistRepositoryImpl) Delete(db *gorm.DB, id string) (int64, error) {
	result := db.Where("id = ?", id).Delete(&models.Wishlist{})
	return result.RowsAffected, result.Error
}
