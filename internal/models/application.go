package models

type Application struct {
	BaseModel
	UserEmail     string `gorm:"type:varchar(255);not null;index" json:"userEmail"`
	UserName      string `gorm:"type:varchar(255)" json:"userName"`
	Phone         string `gorm:"type:varchar(50)" json:"phone"`
	Address       string `gorm:"type:text" json:"address"`
	Degree        string `gorm:"type:varchar(100)" json:"degree"`
	ScholarshipID string `gorm:"type:varchar(64);not null;index" json:"scholarshipId"`

	// Снимок полей стипендии на момент подачи
	ScholarshipName     string              `gorm:"type:varchar(255)" json:"scholarshipName"`
	UniversityName      string              `gorm:"type:varchar(255)" json:"universityName"`
	ScholarshipCategory ScholarshipCategory `gorm:"type:varchar(50)" json:"scholarshipCategory"`
	SubjectCategory     string              `gorm:"type:varchar(100)" json:"subjectCategory"`
	ApplicationFees     float64             `json:"applicationFees"`

	ApplicationStatus ApplicationStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"applicationStatus"`
	Feedback          string            `gorm:"type:text" json:"feedback,omitempty"`
}
