package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"scholarly_backend/internal/logger"
	"scholarly_backend/internal/metrics"
	"scholarly_backend/internal/models"
	"scholarly_backend/internal/repositories"
	"scholarly_backend/internal/services/dto"
	"scholarly_backend/pkg/apperrors"
)

type ApplicationService interface {
	Create(ctx context.Context, db *gorm.DB, sessionEmail string, req *dto.CreateApplicationRequest) (*models.Application, error)
	ListAll(ctx context.Context, db *gorm.DB) ([]models.Application, error)
	ListByUser(ctx context.Context, db *gorm.DB, sessionEmail, email string) ([]models.Application, error)
	Get(ctx context.Context, db *gorm.DB, sessionEmail, id string) (*models.Application, error)
	// Update: владелец меняет свои данные пока заявка pending, статус и feedback - только admin
	Update(ctx context.Context, db *gorm.DB, sessionEmail, id string, req *dto.UpdateApplicationRequest) (*models.Application, error)
	SetFeedback(ctx context.Context, db *gorm.DB, id string, req *dto.FeedbackRequest) (*models.Application, error)
	Delete(ctx context.Context, db *gorm.DB, sessionEmail, id string) (int64, error)
}

type applicationService struct {
	applicationRepo repositories.ApplicationRepository
	scholarshipRepo repositories.ScholarshipRepository
	userRepo        repositories.UserRepository
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	scholarshipRepo repositories.ScholarshipRepository,
	userRepo repositories.UserRepository,
) ApplicationService {
	return &applicationService{
		applicationRepo: applicationRepo,
		scholarshipRepo: scholarshipRepo,
		userRepo:        userRepo,
	}
}

func (s *applicationService) Create(ctx context.Context, db *gorm.DB, sessionEmail string, req *dto.CreateApplicationRequest) (*models.Application, error) {
	db = withContext(ctx, db)
	if err := requireValidID(req.ScholarshipID, "scholarshipId"); err != nil {
		return nil, err
	}

	scholarship, err := s.scholarshipRepo.FindByID(db, req.ScholarshipID)
	if err != nil {
		return nil, mapNotFound(err, repositories.ErrScholarshipNotFound, apperrors.ErrScholarshipNotFound)
	}

	application := &models.Application{
		UserEmail:           sessionEmail,
		UserName:            req.UserName,
		Phone:               req.Phone,
		Address:             req.Address,
		Degree:              req.Degree,
		ScholarshipID:       scholarship.ID,
		ScholarshipName:     scholarship.ScholarshipName,
		UniversityName:      scholarship.UniversityName,
		ScholarshipCategory: scholarship.ScholarshipCategory,
		SubjectCategory:     scholarship.SubjectCategory,
		ApplicationFees:     scholarship.ApplicationFees,
		ApplicationStatus:   models.ApplicationStatusPending,
	}

	if err := s.applicationRepo.Create(db, application); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "Application submitted", "application_id", application.ID, "scholarship_id", scholarship.ID)
	return application, nil
}

func (s *applicationService) ListAll(ctx context.Context, db *gorm.DB) ([]models.Application, error) {
	applications, err := s.applicationRepo.FindAll(withContext(ctx, db))
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return nonNilApplications(applications), nil
}

func (s *applicationService) ListByUser(ctx context.Context, db *gorm.DB, sessionEmail, email string) ([]models.Application, error) {
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

	applications, err := s.applicationRepo.FindByUserEmail(db, email)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return nonNilApplications(applications), nil
}

func (s *applicationService) Get(ctx context.Context, db *gorm.DB, sessionEmail, id string) (*models.Application, error) {
	db = withContext(ctx, db)
	application, err := s.find(db, id)
	if err != nil {
		return nil, err
	}

	if application.UserEmail != sessionEmail {
		admin, err := isAdmin(db, s.userRepo, sessionEmail)
		if err != nil {
			return nil, err
		}
		if !admin {
			return nil, apperrors.ErrNotOwner
		}
	}
	return application, nil
}

func (s *applicationService) Update(ctx context.Context, db *gorm.DB, sessionEmail, id string, req *dto.UpdateApplicationRequest) (*models.Application, error) {
	db = withContext(ctx, db)
	application, err := s.find(db, id)
	if err != nil {
		return nil, err
	}

	if !req.HasDetails() && !req.HasReview() {
		return nil, apperrors.NewBadRequestError("Nothing to update")
	}

	updates := make(map[string]interface{})

	if req.HasDetails() {
		if application.UserEmail != sessionEmail {
			return nil, apperrors.ErrNotOwner
		}
		if application.ApplicationStatus != models.ApplicationStatusPending {
			return nil, apperrors.ErrApplicationNotPending
		}
		if req.UserName != nil {
			updates["user_name"] = *req.UserName
		}
		if req.Phone != nil {
			updates["phone"] = *req.Phone
		}
		if req.Address != nil {
			updates["address"] = *req.Address
		}
		if req.Degree != nil {
			updates["degree"] = *req.Degree
		}
	}

	var transition *models.ApplicationStatus
	if req.HasReview() {
		admin, err := isAdmin(db, s.userRepo, sessionEmail)
		if err != nil {
			return nil, err
		}
		if !admin {
			return nil, apperrors.ErrInsufficientPermissions
		}

		if req.ApplicationStatus != nil {
			next := models.ApplicationStatus(*req.ApplicationStatus)
			if !application.ApplicationStatus.CanTransitionTo(next) {
				return nil, apperrors.ErrInvalidStatusTransition.WithDetails(map[string]string{
					"from": string(application.ApplicationStatus),
					"to":   string(next),
				})
			}
			if next != application.ApplicationStatus {
				updates["application_status"] = next
				transition = &next
			}
		}
		if req.Feedback != nil {
			updates["feedback"] = *req.Feedback
		}
	}

	// тот же статус без других полей - no-op
	if len(updates) == 0 {
		return application, nil
	}

	if err := s.applicationRepo.UpdateFields(db, application.ID, updates); err != nil {
		return nil, mapNotFound(err, repositories.ErrApplicationNotFound, apperrors.ErrApplicationNotFound)
	}

	if transition != nil {
		metrics.RecordApplicationTransition(string(application.ApplicationStatus), string(*transition))
		logger.CtxInfo(ctx, "Application status changed",
			"application_id", application.ID,
			"from", application.ApplicationStatus,
			"to", *transition,
		)
	}

	return s.find(db, application.ID)
}

func (s *applicationService) SetFeedback(ctx context.Context, db *gorm.DB, id string, req *dto.FeedbackRequest) (*models.Application, error) {
	db = withContext(ctx, db)
	application, err := s.find(db, id)
	if err != nil {
		return nil, err
	}

	if err := s.applicationRepo.UpdateFields(db, application.ID, map[string]interface{}{"feedback": req.Feedback}); err != nil {
		return nil, mapNotFound(err, repositories.ErrApplicationNotFound, apperrors.ErrApplicationNotFound)
	}
	return s.find(db, application.ID)
}

func (s *applicationService) Delete(ctx context.Context, db *gorm.DB, sessionEmail, id string) (int64, error) {
	db = withContext(ctx, db)
	application, err := s.find(db, id)
	if err != nil {
		return 0, err
	}

	if application.UserEmail != sessionEmail {
		return 0, apperrors.ErrNotOwner
	}
	if application.ApplicationStatus != models.ApplicationStatusPending {
		return 0, apperrors.ErrApplicationNotPending
	}

	// статус мог измениться между чтением и удалением
	deleted, err := s.applicationRepo.DeleteIfStatus(db, application.ID, models.ApplicationStatusPending)
	if err != nil {
		return 0, apperrors.DatabaseError(err)
	}
	if deleted == 0 {
		return 0, apperrors.ErrApplicationNotPending
	}

	logger.CtxInfo(ctx, "Application withdrawn", "application_id", application.ID)
	return deleted, nil
}

func (s *applicationService) find(db *gorm.DB, id string) (*models.Application, error) {
	if err := requireValidID(id, "id"); err != nil {
		return nil, err
	}
	application, err := s.applicationRepo.FindByID(db, id)
	if err != nil {
		return nil, mapNotFound(err, repositories.ErrApplicationNotFound, apperrors.ErrApplicationNotFound)
	}
	return application, nil
}

func nonNilApplications(applications []models.Application) []models.Application {
	if applications == nil {
		return []models.Application{}
	}
	return applications
}
