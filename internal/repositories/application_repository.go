package repositories

import (
	"errors"

	"gorm.io/gorm"

	"scholarly_backend/internal/models"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
)

type ApplicationRepository interface {
	Create(db *gorm.DB, application *models.Application) error
	FindByID(db *gorm.DB, id string) (*models.Application, error)
	FindByUserEmail(db *gorm.DB, email string) ([]models.Application, error)
	FindAll(db *gorm.DB) ([]models.Application, error)
	UpdateFields(db *gorm.DB, id string, updates map[string]interface{}) error
	// DeleteIfStatus удаляет заявку только если ее статус все еще равен ожидаемому
	DeleteIfStatus(db *gorm.DB, id string, status models.ApplicationStatus) (int64, error)
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, application *models.Application) error {
	return db.Create(application).Error
}

func (r *ApplicationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Application, error) {
	var application models.Application
	if err := db.First(&application, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindByUserEmail(db *gorm.DB, email string) ([]models.Application, error) {
	var applications []models.Application
	err := db.Where("user_email = ?", email).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

// FindAll сортирует pending -> processing -> completed -> rejected, затем по createdAt
func (r *ApplicationRepositoryImpl) FindAll(db *gorm.DB) ([]models.Application, error) {
	var applications []models.Application
	err := db.Order(`CASE application_status
		WHEN 'pending' THEN 0
		WHEN 'processing' THEN 1
		WHEN 'completed' THEN 2
		WHEN 'rejected' THEN 3
		ELSE 4 END`).
		Order("created_at ASC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) UpdateFields(db *gorm.DB, id string, updates map[string]interface{}) error {
	result := db.Model(&models.Application{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) DeleteIfStatus(db *gorm.DB, id string, status models.ApplicationStatus) (int64, error) {
	result := db.Where("id = ? AND application_status = ?", id, status).Delete(&models.Application{})
	return result.RowsAffected, result.Error
}
