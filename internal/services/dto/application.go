package dto

import "scholarly_backend/internal/models"

// CreateApplicationRequest - снимок стипендии сервер берет сам, статус всегда pending
type CreateApplicationRequest struct {
	ScholarshipID string `json:"scholarshipId" validate:"required"`
	UserName      string `json:"userName" validate:"omitempty,max=255"`
	Phone         string `json:"phone" validate:"omitempty,max=50"`
	Address       string `json:"address" validate:"omitempty,max=1000"`
	Degree        string `json:"degree" validate:"omitempty,max=100"`
}

type UpdateApplicationRequest struct {
	UserName          *string `json:"userName,omitempty" validate:"omitempty,max=255"`
	Phone             *string `json:"phone,omitempty" validate:"omitempty,max=50"`
	Address           *string `json:"address,omitempty" validate:"omitempty,max=1000"`
	Degree            *string `json:"degree,omitempty" validate:"omitempty,max=100"`
	ApplicationStatus *string `json:"applicationStatus,omitempty" validate:"omitempty,is-application-status"`
	Feedback          *string `json:"feedback,omitempty" validate:"omitempty,max=2000"`
}

// HasDetails - меняет ли запрос данные заявителя
func (r *UpdateApplicationRequest) HasDetails() bool {
	return r.UserName != nil || r.Phone != nil || r.Address != nil || r.Degree != nil
}

// HasReview - меняет ли запрос статус или отзыв админа
func (r *UpdateApplicationRequest) HasReview() bool {
	return r.ApplicationStatus != nil || r.Feedback != nil
}

type FeedbackRequest struct {
	Feedback string `json:"feedback" validate:"required,max=2000"`
}

type CreateApplicationResponse struct {
	InsertedID  string              `json:"insertedId"`
	Application *models.Application `json:"application"`
}
