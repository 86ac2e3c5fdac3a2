package models

import (
	"time"

	"gorm.io/gorm"
)

// Review - один отзыв на пару (email, scholarshipId)
type Review struct {
	ID            string    `gorm:"type:varchar(36);primaryKey" json:"_id"`
	Email         string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_reviews_email_scholarship" json:"email"`
	ScholarshipID string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_reviews_email_scholarship;index" json:"scholarshipId"`
	UserName      string    `gorm:"type:varchar(255)" json:"userName"`
	UserImage     string    `gorm:"type:text" json:"userImage"`
	Rating        int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment       string    `gorm:"type:text" json:"comment"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedDate   time.Time `json:"updatedDate"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = NewID()
	}
	return nil
}
