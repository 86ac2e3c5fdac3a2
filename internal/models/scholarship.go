package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type Scholarship struct {
	BaseModel
	ScholarshipName     string              `gorm:"type:varchar(255);not null" json:"scholarshipName"`
	UniversityName      string              `gorm:"type:varchar(255);not null" json:"universityName"`
	UniversityImage     string              `gorm:"type:text" json:"universityImage"`
	State               string              `gorm:"type:varchar(100);index" json:"state"`
	SubjectCategory     string              `gorm:"type:varchar(100);index" json:"subjectCategory"`
	ScholarshipCategory ScholarshipCategory `gorm:"type:varchar(50);index" json:"scholarshipCategory"`
	ScholarshipAmount   float64             `gorm:"not null;default:0" json:"scholarshipAmount"`
	ApplicationFees     float64             `gorm:"not null;default:0" json:"applicationFees"`
	ApplicationDeadline time.Time           `json:"applicationDeadline"`
	PostedUserEmail     string              `gorm:"type:varchar(255);index" json:"postedUserEmail"`

	// Пересчитываются только из отзывов (RatingAggregator)
	Ratings     int   `gorm:"not null;default:0" json:"ratings"`
	TotalReview int64 `gorm:"not null;default:0" json:"totalReview"`

	Includes datatypes.JSON `json:"includes" swaggertype:"array,string"`
}

// IncludeList разбирает JSON-колонку includes
func (s *Scholarship) IncludeList() []string {
	var list []string
	if len(s.Includes) == 0 {
		return []string{}
	}
	if err := json.Unmarshal(s.Includes, &list); err != nil {
		return []string{}
	}
	return list
}

// SetIncludes сохраняет порядок элементов
func (s *Scholarship) SetIncludes(items []string) {
	if items == nil {
		items = []string{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		s.Includes = datatypes.JSON("[]")
		return
	}
	s.Includes = datatypes.JSON(data)
}
