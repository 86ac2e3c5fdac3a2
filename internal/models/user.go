package models

type User struct {
	BaseModel
	Email       string   `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	DisplayName string   `gorm:"type:varchar(255)" json:"displayName"`
	PhotoURL    string   `gorm:"type:text" json:"photoURL"`
	Role        UserRole `gorm:"type:varchar(20);not null;default:'student';index" json:"role"`
}
