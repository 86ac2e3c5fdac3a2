package models

import (
	"time"

	"gorm.io/gorm"
)

type Wishlist struct {
	ID            string    `gorm:"type:varchar(36);primaryKey" json:"_id"`
	UserEmail     string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_wishlists_user_scholarship" json:"userEmail"`
	ScholarshipID string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_wishlists_user_scholarship" json:"scholarshipId"`
	CreatedAt     time.Time `gorm:"index" json:"createdAt"`
}

func (w *Wishlist) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = NewID()
	}
	return nil
}
