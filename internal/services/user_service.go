package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"scholarly_backend/internal/auth"
	"scholarly_backend/internal/logger"
	"scholarly_backend/internal/models"
	"scholarly_backend/internal/repositories"
	"scholarly_backend/internal/services/dto"
	"scholarly_backend/pkg/apperrors"
)

type UserService interface {
	CreateIfAbsent(ctx context.Context, db *gorm.DB, req *dto.CreateUserRequest) (*dto.CreateUserResult, error)
	GetRole(ctx context.Context, db *gorm.DB, email string) (models.UserRole, error)
	ListUsers(ctx context.Context, db *gorm.DB, query *dto.UserListQuery) (*dto.UserListResponse, error)
	UpdateUser(ctx context.Context, db *gorm.DB, actorEmail, userID string, req *dto.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, db *gorm.DB, actorEmail, userID string) (int64, error)
	// EnsureAdmin создает или повышает пользователя до admin (первичная настройка)
	EnsureAdmin(ctx context.Context, db *gorm.DB, email string) error
}

type userService struct {
	userRepo   repositories.UserRepository
	pagination Pagination
}

func NewUserService(userRepo repositories.UserRepository, pagination Pagination) UserService {
	return &userService{
		userRepo:   userRepo,
		pagination: pagination,
	}
}

func (s *userService) CreateIfAbsent(ctx context.Context, db *gorm.DB, req *dto.CreateUserRequest) (*dto.CreateUserResult, error) {
	db = withContext(ctx, db)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user := &models.User{
		Email:       email,
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
		Role:        models.UserRoleStudent,
	}

	created, err := s.userRepo.CreateIfAbsent(db, user)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if !created {
		existing, err := s.userRepo.FindByEmail(db, email)
		if err != nil {
			return nil, mapNotFound(err, repositories.ErrUserNotFound, apperrors.ErrUserNotFound)
		}
		return &dto.CreateUserResult{Created: false, User: existing}, nil
	}

	logger.CtxInfo(ctx, "User created", "user_id", user.ID, "email", email)
	return &dto.CreateUserResult{Created: true, User: user}, nil
}

func (s *userService) GetRole(ctx context.Context, db *gorm.DB, email string) (models.UserRole, error) {
	return roleOf(withContext(ctx, db), s.userRepo, strings.ToLower(strings.TrimSpace(email)))
}

func (s *userService) ListUsers(ctx context.Context, db *gorm.DB, query *dto.UserListQuery) (*dto.UserListResponse, error) {
	page, limit := s.pagination.Normalize(query.Page, query.Limit)

	users, total, err := s.userRepo.FindWithFilter(withContext(ctx, db), repositories.UserFilter{
		Search: query.Search,
		Role:   models.UserRole(query.Filter),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if users == nil {
		users = []models.User{}
	}
	return &dto.UserListResponse{Users: users, TotalUsers: total}, nil
}

func (s *userService) UpdateUser(ctx context.Context, db *gorm.DB, actorEmail, userID string, req *dto.UpdateUserRequest) (*models.User, error) {
	db = withContext(ctx, db)
	if err := requireValidID(userID, "id"); err != nil {
		return nil, err
	}

	target, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, mapNotFound(err, repositories.ErrUserNotFound, apperrors.ErrUserNotFound)
	}

	actorIsAdmin, err := isAdmin(db, s.userRepo, actorEmail)
	if err != nil {
		return nil, err
	}
	isSelf := target.Email == actorEmail

	updates := make(map[string]interface{})

	if req.DisplayName != nil || req.PhotoURL != nil {
		if !isSelf && !actorIsAdmin {
			return nil, apperrors.ErrNotOwner
		}
		if req.DisplayName != nil {
			updates["display_name"] = *req.DisplayName
		}
		if req.PhotoURL != nil {
			updates["photo_url"] = *req.PhotoURL
		}
	}

	if req.Role != nil {
		if !actorIsAdmin {
			return nil, apperrors.ErrInsufficientPermissions
		}
		if isSelf {
			return nil, apperrors.ErrCannotModifySelf
		}
		updates["role"] = models.UserRole(*req.Role)
	}

	if len(updates) == 0 {
		return nil, apperrors.NewBadRequestError("Nothing to update")
	}

	if err := s.userRepo.UpdateFields(db, target.ID, updates); err != nil {
		return nil, mapNotFound(err, repositories.ErrUserNotFound, apperrors.ErrUserNotFound)
	}
	if req.Role != nil {
		logger.CtxInfo(ctx, "User role changed", "user_id", target.ID, "from", target.Role, "to", *req.Role)
	}

	updated, err := s.userRepo.FindByID(db, target.ID)
	if err != nil {
		return nil, mapNotFound(err, repositories.ErrUserNotFound, apperrors.ErrUserNotFound)
	}
	return updated, nil
}

func (s *userService) DeleteUser(ctx context.Context, db *gorm.DB, actorEmail, userID string) (int64, error) {
	db = withContext(ctx, db)
	if err := requireValidID(userID, "id"); err != nil {
		return 0, err
	}

	target, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return 0, mapNotFound(err, repositories.ErrUserNotFound, apperrors.ErrUserNotFound)
	}

	actorIsAdmin, err := isAdmin(db, s.userRepo, actorEmail)
	if err != nil {
		return 0, err
	}
	isSelf := target.Email == actorEmail

	switch {
	case isSelf && actorIsAdmin:
		return 0, apperrors.ErrCannotModifySelf
	case isSelf, actorIsAdmin:
	default:
		return 0, apperrors.ErrInsufficientPermissions
	}

	deleted, err := s.userRepo.Delete(db, target.ID)
	if err != nil {
		return 0, apperrors.DatabaseError(err)
	}
	logger.CtxInfo(ctx, "User deleted", "user_id", target.ID, "by", actorEmail)
	return deleted, nil
}

func (s *userService) EnsureAdmin(ctx context.Context, db *gorm.DB, email string) error {
	db = withContext(ctx, db)
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil
	}

	user := &models.User{Email: email, Role: models.UserRoleAdmin}
	created, err := s.userRepo.CreateIfAbsent(db, user)
	if err != nil {
		return apperrors.DatabaseError(err)
	}
	if created {
		logger.CtxInfo(ctx, "First admin created", "email", email)
		return nil
	}

	existing, err := s.userRepo.FindByEmail(db, email)
	if err != nil {
		return mapNotFound(err, repositories.ErrUserNotFound, apperrors.ErrUserNotFound)
	}
	if auth.IsAdmin(existing.Role) {
		return nil
	}
	if err := s.userRepo.UpdateRoleByEmail(db, email, models.UserRoleAdmin); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.DatabaseError(err)
	}
	logger.CtxInfo(ctx, "User promoted to admin", "email", email)
	return nil
}
