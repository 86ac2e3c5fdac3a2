package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"scholarly_backend/internal/auth"
	"scholarly_backend/internal/models"
	"scholarly_backend/internal/repositories"
	"scholarly_backend/pkg/apperrors"
)

// maxPage - верхняя граница номера страницы, (page-1)*limit не переполняет int
const maxPage = 1_000_000

// Pagination - лимиты постраничной выдачи из конфига
type Pagination struct {
	DefaultLimit int
	MaxLimit     int
}

// Normalize возвращает page в пределах [1, maxPage] и limit в пределах [1, MaxLimit]
func (p Pagination) Normalize(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}
	if limit < 1 {
		limit = p.DefaultLimit
	}
	if p.MaxLimit > 0 && limit > p.MaxLimit {
		limit = p.MaxLimit
	}
	return page, limit
}

// mapNotFound переводит sentinel-ошибку репозитория в AppError, остальное - в DatabaseError
func mapNotFound(err error, sentinel error, appErr *apperrors.AppError) error {
	if errors.Is(err, sentinel) {
		return appErr
	}
	return apperrors.DatabaseError(err)
}

// roleOf возвращает роль пользователя сессии; отсутствие записи = student
func roleOf(db *gorm.DB, userRepo repositories.UserRepository, email string) (models.UserRole, error) {
	user, err := userRepo.FindByEmail(db, email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return models.UserRoleStudent, nil
		}
		return "", apperrors.DatabaseError(err)
	}
	return user.Role, nil
}

func isAdmin(db *gorm.DB, userRepo repositories.UserRepository, email string) (bool, error) {
	role, err := roleOf(db, userRepo, email)
	if err != nil {
		return false, err
	}
	return auth.IsAdmin(role), nil
}

func requireValidID(id, field string) error {
	if !models.IsValidID(id) {
		return apperrors.ErrInvalidID(field)
	}
	return nil
}

// withContext привязывает запросы к контексту запроса
func withContext(ctx context.Context, db *gorm.DB) *gorm.DB {
	if ctx == nil || db == nil {
		return db
	}
	return db.WithContext(ctx)
}
