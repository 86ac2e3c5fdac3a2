package dto

import "scholarly_backend/internal/models"

// ScholarshipQuery - параметры каталога. schCat/subCat - короткие алиасы клиента.
type ScholarshipQuery struct {
	ScholarshipCategory string `form:"scholarshipCategory" validate:"omitempty,is-scholarship-category"`
	SchCat              string `form:"schCat" validate:"omitempty,is-scholarship-category"`
	SubjectCategory     string `form:"subjectCategory" validate:"omitempty,is-subject-category"`
	SubCat              string `form:"subCat" validate:"omitempty,is-subject-category"`
	State               string `form:"state" validate:"omitempty,max=100"`
	Search              string `form:"search" validate:"omitempty,max=100"`
	Sort                string `form:"sort" validate:"omitempty,is-sort-key"`
	Page                int    `form:"page" validate:"omitempty,min=1"`
	Limit               int    `form:"limit" validate:"omitempty,min=1"`
}

// Category возвращает полное имя параметра, если задано, иначе алиас
func (q *ScholarshipQuery) Category() string {
	if q.ScholarshipCategory != "" {
		return q.ScholarshipCategory
	}
	return q.SchCat
}

func (q *ScholarshipQuery) Subject() string {
	if q.SubjectCategory != "" {
		return q.SubjectCategory
	}
	return q.SubCat
}

type CreateScholarshipRequest struct {
	ScholarshipName     string   `json:"scholarshipName" validate:"required,max=255"`
	UniversityName      string   `json:"universityName" validate:"required,max=255"`
	UniversityImage     string   `json:"universityImage" validate:"omitempty,url"`
	State               string   `json:"state" validate:"required,max=100"`
	SubjectCategory     string   `json:"subjectCategory" validate:"required,is-subject-category"`
	ScholarshipCategory string   `json:"scholarshipCategory" validate:"required,is-scholarship-category"`
	ScholarshipAmount   Amount   `json:"scholarshipAmount" validate:"gte=0"`
	ApplicationFees     Amount   `json:"applicationFees" validate:"gte=0"`
	ApplicationDeadline *Date    `json:"applicationDeadline" validate:"required" swaggertype:"string" format:"date"`
	Includes            []string `json:"includes" validate:"omitempty,dive,max=255"`
}

type UpdateScholarshipRequest struct {
	ScholarshipName     *string   `json:"scholarshipName,omitempty" validate:"omitempty,min=1,max=255"`
	UniversityName      *string   `json:"universityName,omitempty" validate:"omitempty,min=1,max=255"`
	UniversityImage     *string   `json:"universityImage,omitempty" validate:"omitempty,url"`
	State               *string   `json:"state,omitempty" validate:"omitempty,min=1,max=100"`
	SubjectCategory     *string   `json:"subjectCategory,omitempty" validate:"omitempty,is-subject-category"`
	ScholarshipCategory *string   `json:"scholarshipCategory,omitempty" validate:"omitempty,is-scholarship-category"`
	ScholarshipAmount   *Amount   `json:"scholarshipAmount,omitempty" validate:"omitempty,gte=0"`
	ApplicationFees     *Amount   `json:"applicationFees,omitempty" validate:"omitempty,gte=0"`
	ApplicationDeadline *Date     `json:"applicationDeadline,omitempty" swaggertype:"string" format:"date"`
	Includes            *[]string `json:"includes,omitempty"`
}

type CreateScholarshipResponse struct {
	InsertedID  string              `json:"insertedId"`
	Scholarship *models.Scholarship `json:"scholarship"`
}

type ScholarshipListResponse struct {
	Data []models.Scholarship `json:"data"`
	Meta PageMeta             `json:"meta"`
}
