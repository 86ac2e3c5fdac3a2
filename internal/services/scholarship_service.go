package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"scholarly_backend/internal/logger"
	"scholarly_backend/internal/models"
	"scholarly_backend/internal/repositories"
	"scholarly_backend/internal/services/dto"
	"scholarly_backend/pkg/apperrors"
)

type ScholarshipService interface {
	List(ctx context.Context, db *gorm.DB, query *dto.ScholarshipQuery) (*dto.ScholarshipListResponse, error)
	Get(ctx context.Context, db *gorm.DB, id string) (*models.Scholarship, error)
	Create(ctx context.Context, db *gorm.DB, postedBy string, req *dto.CreateScholarshipRequest) (*models.Scholarship, error)
	Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateScholarshipRequest) (*models.Scholarship, error)
	// Delete требует, чтобы adminEmail из запроса совпадал с email сессии
	Delete(ctx context.Context, db *gorm.DB, sessionEmail, adminEmail, id string) (int64, error)
}

type scholarshipService struct {
	scholarshipRepo repositories.ScholarshipRepository
	pagination      Pagination
}

func NewScholarshipService(scholarshipRepo repositories.ScholarshipRepository, pagination Pagination) ScholarshipService {
	return &scholarshipService{
		scholarshipRepo: scholarshipRepo,
		pagination:      pagination,
	}
}

func (s *scholarshipService) List(ctx context.Context, db *gorm.DB, query *dto.ScholarshipQuery) (*dto.ScholarshipListResponse, error) {
	page, limit := s.pagination.Normalize(query.Page, query.Limit)

	items, total, err := s.scholarshipRepo.Search(withContext(ctx, db), repositories.ScholarshipFilter{
		ScholarshipCategory: query.Category(),
		SubjectCategory:     query.Subject(),
		State:               query.State,
		Search:              query.Search,
		Sort:                models.ScholarshipSort(query.Sort),
		Page:                page,
		Limit:               limit,
	})
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if items == nil {
		items = []models.Scholarship{}
	}

	return &dto.ScholarshipListResponse{
		Data: items,
		Meta: dto.PageMeta{Total: total, Page: page, Limit: limit},
	}, nil
}

func (s *scholarshipService) Get(ctx context.Context, db *gorm.DB, id string) (*models.Scholarship, error) {
	if err := requireValidID(id, "id"); err != nil {
		return nil, err
	}
	scholarship, err := s.scholarshipRepo.FindByID(withContext(ctx, db), id)
	if err != nil {
		return nil, mapNotFound(err, repositories.ErrScholarshipNotFound, apperrors.ErrScholarshipNotFound)
	}
	return scholarship, nil
}

func (s *scholarshipService) Create(ctx context.Context, db *gorm.DB, postedBy string, req *dto.CreateScholarshipRequest) (*models.Scholarship, error) {
	scholarship := &models.Scholarship{
		ScholarshipName:     req.ScholarshipName,
		UniversityName:      req.UniversityName,
		UniversityImage:     req.UniversityImage,
		State:               req.State,
		SubjectCategory:     req.SubjectCategory,
		ScholarshipCategory: models.ScholarshipCategory(req.ScholarshipCategory),
		ScholarshipAmount:   req.ScholarshipAmount.Float64(),
		ApplicationFees:     req.ApplicationFees.Float64(),
		PostedUserEmail:     postedBy,
		// рейтинг пишет только RatingAggregator
		Ratings:     0,
		TotalReview: 0,
	}
	if req.ApplicationDeadline != nil {
		scholarship.ApplicationDeadline = req.ApplicationDeadline.Time
	}
	scholarship.SetIncludes(req.Includes)

	if err := s.scholarshipRepo.Create(withContext(ctx, db), scholarship); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "Scholarship created", "scholarship_id", scholarship.ID, "posted_by", postedBy)
	return scholarship, nil
}

func (s *scholarshipService) Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateScholarshipRequest) (*models.Scholarship, error) {
	db = withContext(ctx, db)
	if err := requireValidID(id, "id"); err != nil {
		return nil, err
	}
	if _, err := s.scholarshipRepo.FindByID(db, id); err != nil {
		return nil, mapNotFound(err, repositories.ErrScholarshipNotFound, apperrors.ErrScholarshipNotFound)
	}

	updates := make(map[string]interface{})
	if req.ScholarshipName != nil {
		updates["scholarship_name"] = *req.ScholarshipName
	}
	if req.UniversityName != nil {
		updates["university_name"] = *req.UniversityName
	}
	if req.UniversityImage != nil {
		updates["university_image"] = *req.UniversityImage
	}
	if req.State != nil {
		updates["state"] = *req.State
	}
	if req.SubjectCategory != nil {
		updates["subject_category"] = *req.SubjectCategory
	}
	if req.ScholarshipCategory != nil {
		updates["scholarship_category"] = *req.ScholarshipCategory
	}
	if req.ScholarshipAmount != nil {
		updates["scholarship_amount"] = req.ScholarshipAmount.Float64()
	}
	if req.ApplicationFees != nil {
		updates["application_fees"] = req.ApplicationFees.Float64()
	}
	if req.ApplicationDeadline != nil {
		updates["application_deadline"] = req.ApplicationDeadline.Time
	}
	if req.Includes != nil {
		var tmp models.Scholarship
		tmp.SetIncludes(*req.Includes)
		updates["includes"] = tmp.Includes
	}

	if len(updates) == 0 {
		return nil, apperrors.NewBadRequestError("Nothing to update")
	}

	if err := s.scholarshipRepo.UpdateFields(db, id, updates); err != nil {
		return nil, mapNotFound(err, repositories.ErrScholarshipNotFound, apperrors.ErrScholarshipNotFound)
	}

	updated, err := s.scholarshipRepo.FindByID(db, id)
	if err != nil {
		return nil, mapNotFound(err, repositories.ErrScholarshipNotFound, apperrors.ErrScholarshipNotFound)
	}
	return updated, nil
}

func (s *scholarshipService) Delete(ctx context.Context, db *gorm.DB, sessionEmail, adminEmail, id string) (int64, error) {
	if adminEmail == "" || !strings.EqualFold(adminEmail, sessionEmail) {
		return 0, apperrors.ErrIdentityMismatch
	}
	if err := requireValidID(id, "id"); err != nil {
		return 0, err
	}

	deleted, err := s.scholarshipRepo.Delete(withContext(ctx, db), id)
	if err != nil {
		return 0, apperrors.DatabaseError(err)
	}
	if deleted == 0 {
		return 0, apperrors.ErrScholarshipNotFound
	}

	logger.CtxInfo(ctx, "Scholarship deleted", "scholarship_id", id, "by", sessionEmail)
	return deleted, nil
}
