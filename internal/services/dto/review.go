package dto

import "scholarly_backend/internal/models"

// UpsertReviewRequest - email берется из сессии; userName по умолчанию из токена
type UpsertReviewRequest struct {
	ScholarshipID string `json:"scholarshipId" validate:"required"`
	Rating        int    `json:"rating" validate:"required,min=1,max=5"`
	Comment       string `json:"comment" validate:"omitempty,max=2000"`
	UserName      string `json:"userName" validate:"omitempty,max=255"`
	UserImage     string `json:"userImage" validate:"omitempty,url"`
}

type ReviewUpsertResponse struct {
	Review      *models.Review `json:"review"`
	Ratings     int            `json:"ratings"`
	TotalReview int64          `json:"totalReview"`
}
