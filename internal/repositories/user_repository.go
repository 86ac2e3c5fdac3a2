package repositories

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"scholarly_backend/internal/models"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

type UserRepository interface {
	FindByID(db *gorm.DB, id string) (*models.User, error)
	FindByEmail(db *gorm.DB, email string) (*models.User, error)
	// CreateIfAbsent вставляет пользователя, если email свободен; существующая запись не меняется
	CreateIfAbsent(db *gorm.DB, user *models.User) (bool, error)
	UpdateFields(db *gorm.DB, id string, updates map[string]interface{}) error
	UpdateRoleByEmail(db *gorm.DB, email string, role models.UserRole) error
	Delete(db *gorm.DB, id string) (int64, error)
	FindWithFilter(db *gorm.DB, filter UserFilter) ([]models.User, int64, error)
}

type UserFilter struct {
	Search string
	Role   models.UserRole
	Page   int
	Limit  int
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (r *UserRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) CreateIfAbsent(db *gorm.DB, user *models.User) (bool, error) {
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(user)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *UserRepositoryImpl) UpdateFields(db *gorm.DB, id string, updates map[string]interface{}) error {
	result := db.Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) UpdateRoleByEmail(db *gorm.DB, email string, role models.UserRole) error {
	result := db.Model(&models.User{}).Where("email = ?", email).Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) Delete(db *gorm.DB, id string) (int64, error) {
	result := db.Where("id = ?", id).Delete(&models.User{})
	return result.RowsAffected, result.Error
}

// FindWithFilter - поиск по displayName/email и фильтр по роли; total считается с фильтром
func (r *UserRepositoryImpl) FindWithFilter(db *gorm.DB, filter UserFilter) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	query := db.Model(&models.User{})
	if filter.Search != "" {
		pattern := containsPattern(filter.Search)
		query = query.Where("LOWER(display_name) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern)
	}
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(offset(filter.Page, filter.Limit))
	}
	if err := query.Order("created_at DESC").Order("id").Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}
