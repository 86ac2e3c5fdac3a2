package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"scholarly_backend/internal/logger"
	"scholarly_backend/internal/models"
	"scholarly_backend/internal/repositories"
	"scholarly_backend/internal/services/dto"
	"scholarly_backend/pkg/apperrors"
)

type WishlistService interface {
	Add(ctx context.Context, db *gorm.DB, sessionEmail string, req *dto.AddWishlistRequest) (*dto.AddWishlistResponse, error)
	// List возвращает записи, обогащенные полями стипендии; битые ссылки пропускаются
	List(ctx context.Context, db *gorm.DB, sessionEmail, email string) ([]dto.WishlistItem, error)
	// Check: email необязателен, но если передан, должен совпадать с сессией
	Check(ctx context.Context, db *gorm.DB, sessionEmail, email, scholarshipID string) (*dto.WishlistCheckResponse, error)
	Delete(ctx context.Context, db *gorm.DB, sessionEmail, id string) (int64, error)
}

type wishlistService struct {
	wishlistRepo    repositories.WishlistRepository
	scholarshipRepo repositories.ScholarshipRepository
}

func NewWishlistService(wishlistRepo repositories.WishlistRepository, scholarshipRepo repositories.ScholarshipRepository) WishlistService {
	return &wishlistService{
		wishlistRepo:    wishlistRepo,
		scholarshipRepo: scholarshipRepo,
	}
}

func (s *wishlistService) Add(ctx context.Context, db *gorm.DB, sessionEmail string, req *dto.AddWishlistRequest) (*dto.AddWishlistResponse, error) {
	db = withContext(ctx, db)
	if req.UserEmail != "" && !strings.EqualFold(req.UserEmail, sessionEmail) {
		return nil, apperrors.ErrIdentityMismatch
	}
	if err := requireValidID(req.ScholarshipID, "scholarshipId"); err != nil {
		return nil, err
	}

	entry := &models.Wishlist{UserEmail: sessionEmail, ScholarshipID: req.ScholarshipID}
	created, err := s.wishlistRepo.Add(db, entry)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if !created {
		return &dto.AddWishlistResponse{Success: false, Message: "already in wishlist"}, nil
	}

	logger.CtxInfo(ctx, "Wishlist entry added", "wishlist_id", entry.ID, "scholarship_id", req.ScholarshipID)
	return &dto.AddWishlistResponse{Success: true, InsertedID: entry.ID}, nil
}

func (s *wishlistService) List(ctx context.Context, db *gorm.DB, sessionEmail, email string) ([]dto.WishlistItem, error) {
	db = withContext(ctx, db)
	if !strings.EqualFold(strings.TrimSpace(email), sessionEmail) {
		return nil, apperrors.ErrIdentityMismatch
	}

	entries, err := s.wishlistRepo.FindByUserEmail(db, sessionEmail)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		if models.IsValidID(entry.ScholarshipID) {
			ids = append(ids, entry.ScholarshipID)
		}
	}

	scholarships, err := s.scholarshipRepo.FindByIDs(db, ids)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	byID := make(map[string]*models.Scholarship, len(scholarships))
	for i := range scholarships {
		byID[scholarships[i].ID] = &scholarships[i]
	}

	items := make([]dto.WishlistItem, 0, len(entries))
	for _, entry := range entries {
		if !models.IsValidID(entry.ScholarshipID) {
			logger.CtxWarn(ctx, "Wishlist entry has malformed scholarship reference",
				"wishlist_id", entry.ID, "scholarship_id", entry.ScholarshipID)
			continue
		}
		scholarship, ok := byID[entry.ScholarshipID]
		if !ok {
			logger.CtxWarn(ctx, "Wishlist entry references missing scholarship",
				"wishlist_id", entry.ID, "scholarship_id", entry.ScholarshipID)
			continue
		}
		items = append(items, dto.WishlistItem{
			ID:                  entry.ID,
			ScholarshipID:       entry.ScholarshipID,
			UserEmail:           entry.UserEmail,
			UniversityName:      scholarship.UniversityName,
			ScholarshipName:     scholarship.ScholarshipName,
			UniversityImage:     scholarship.UniversityImage,
			ScholarshipCategory: string(scholarship.ScholarshipCategory),
			SubjectCategory:     scholarship.SubjectCategory,
			State:               scholarship.State,
			ScholarshipAmount:   scholarship.ScholarshipAmount,
		})
	}
	return items, nil
}

func (s *wishlistService) Check(ctx context.Context, db *gorm.DB, sessionEmail, email, scholarshipID string) (*dto.WishlistCheckResponse, error) {
	if email != "" && !strings.EqualFold(strings.TrimSpace(email), sessionEmail) {
		return nil, apperrors.ErrIdentityMismatch
	}

	entry, err := s.wishlistRepo.FindByUserAndScholarship(withContext(ctx, db), sessionEmail, scholarshipID)
	if err != nil {
		if errors.Is(err, repositories.ErrWishlistNotFound) {
			return &dto.WishlistCheckResponse{IsSaved: false, ID: nil}, nil
		}
		return nil, apperrors.DatabaseError(err)
	}
	id := entry.ID
	return &dto.WishlistCheckResponse{IsSaved: true, ID: &id}, nil
}

func (s *wishlistService) Delete(ctx context.Context, db *gorm.DB, sessionEmail, id string) (int64, error) {
	db = withContext(ctx, db)
	if err := requireValidID(id, "id"); err != nil {
		return 0, err
	}

	entry, err := s.wishlistRepo.FindByID(db, id)
	if err != nil {
		return 0, mapNotFound(err, repositories.ErrWishlistNotFound, apperrors.ErrWishlistNotFound)
	}
	if entry.UserEmail != sessionEmail {
		return 0, apperrors.ErrNotOwner
	}

	deleted, err := s.wishlistRepo.Delete(db, id)
	if err != nil {
		return 0, apperrors.DatabaseError(err)
	}
	return deleted, nil
}
