package repositories

import (
	"errors"

	"gorm.io/gorm"

	"scholarly_backend/internal/models"
)

var (
	ErrScholarshipNotFound = errors.New("scholarship not found")
)

type ScholarshipRepository interface {
	Create(db *gorm.DB, scholarship *models.Scholarship) error
	FindByID(db *gorm.DB, id string) (*models.Scholarship, error)
	FindByIDs(db *gorm.DB, ids []string) ([]models.Scholarship, error)
	Search(db *gorm.DB, filter ScholarshipFilter) ([]models.Scholarship, int64, error)
	UpdateFields(db *gorm.DB, id string, updates map[string]interface{}) error
	UpdateRating(db *gorm.DB, id string, ratings int, totalReview int64) error
	Delete(db *gorm.DB, id string) (int64, error)
}

// ScholarshipFilter - параметры каталога. Пустые поля не фильтруют.
type ScholarshipFilter struct {
	ScholarshipCategory string
	SubjectCategory     string
	State               string
	Search              string
	Sort                models.ScholarshipSort
	Page                int
	Limit               int
}

type ScholarshipRepositoryImpl struct{}

func NewScholarshipRepository() ScholarshipRepository {
	return &ScholarshipRepositoryImpl{}
}

func (r *ScholarshipRepositoryImpl) Create(db *gorm.DB, scholarship *models.Scholarship) error {
	return db.Create(scholarship).Error
}

func (r *ScholarshipRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Scholarship, error) {
	var scholarship models.Scholarship
	if err := db.First(&scholarship, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScholarshipNotFound
		}
		return nil, err
	}
	return &scholarship, nil
}

func (r *ScholarshipRepositoryImpl) FindByIDs(db *gorm.DB, ids []string) ([]models.Scholarship, error) {
	var scholarships []models.Scholarship
	if len(ids) == 0 {
		return scholarships, nil
	}
	err := db.Where("id IN ?", ids).Find(&scholarships).Error
	return scholarships, err
}

func (r *ScholarshipRepositoryImpl) Search(db *gorm.DB, filter ScholarshipFilter) ([]models.Scholarship, int64, error) {
	var scholarships []models.Scholarship
	var total int64

	query := r.applyFilter(db.Model(&models.Scholarship{}), filter)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applySort(query, filter.Sort)
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(offset(filter.Page, filter.Limit))
	}
	if err := query.Find(&scholarships).Error; err != nil {
		return nil, 0, err
	}
	return scholarships, total, nil
}

func (r *ScholarshipRepositoryImpl) applyFilter(query *gorm.DB, filter ScholarshipFilter) *gorm.DB {
	if filter.ScholarshipCategory != "" {
		query = query.Where("scholarship_category = ?", filter.ScholarshipCategory)
	}
	if filter.SubjectCategory != "" {
		query = query.Where("subject_category = ?", filter.SubjectCategory)
	}
	if filter.State != "" {
		query = query.Where("LOWER(state) LIKE ?", containsPattern(filter.State))
	}
	if filter.Search != "" {
		pattern := containsPattern(filter.Search)
		query = query.Where(
			"LOWER(scholarship_name) LIKE ? OR LOWER(university_name) LIKE ? OR LOWER(subject_category) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	return query
}

func applySort(query *gorm.DB, sort models.ScholarshipSort) *gorm.DB {
	switch sort {
	case models.SortAmountAsc:
		query = query.Order("scholarship_amount ASC")
	case models.SortAmountDesc:
		query = query.Order("scholarship_amount DESC")
	case models.SortDeadlineAsc:
		query = query.Order("application_deadline ASC")
	case models.SortDeadlineDesc:
		query = query.Order("application_deadline DESC")
	case models.SortRatingDesc:
		query = query.Order("ratings DESC").Order("total_review DESC")
	case models.SortNewest:
		query = query.Order("created_at DESC")
	}
	// порядок вставки как базовый и как tiebreaker
	return query.Order("created_at ASC").Order("id ASC")
}

func (r *ScholarshipRepositoryImpl) UpdateFields(db *gorm.DB, id string, updates map[string]interface{}) error {
	result := db.Model(&models.Scholarship{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrScholarshipNotFound
	}
	return nil
}

func (r *ScholarshipRepositoryImpl) UpdateRating(db *gorm.DB, id string, ratings int, totalReview int64) error {
	result := db.Model(&models.Scholarship{}).Where("id = ?", id).Updates(map[string]interface{}{
		"ratings":      ratings,
		"total_review": totalReview,
	})
	return result.Error
}

func (r *ScholarshipRepositoryImpl) Delete(db *gorm.DB, id string) (int64, error) {
	result := db.Where("id = ?", id).Delete(&models.Scholarship{})
	return result.RowsAffected, result.Error
}
