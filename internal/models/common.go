package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel - общие поля документов. JSON-ключ _id оставлен для совместимости с клиентом.
type BaseModel struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"_id"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = NewID()
	}
	return nil
}

// NewID генерирует идентификатор документа
func NewID() string {
	return uuid.NewString()
}

// IsValidID проверяет, что строка может быть идентификатором документа.
// Слабые ссылки (scholarshipId) хранятся строкой и могут быть битыми.
func IsValidID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}
