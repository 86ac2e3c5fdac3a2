package dto

// AddWishlistRequest - userEmail необязателен, но если передан, должен совпадать с сессией
type AddWishlistRequest struct {
	ScholarshipID string `json:"scholarshipId" validate:"required"`
	UserEmail     string `json:"userEmail" validate:"omitempty,email"`
}

type AddWishlistResponse struct {
	Success    bool   `json:"success"`
	InsertedID string `json:"insertedId,omitempty"`
	Message    string `json:"message,omitempty"`
}

// WishlistItem - запись избранного, обогащенная полями стипендии
type WishlistItem struct {
	ID                  string  `json:"_id"`
	ScholarshipID       string  `json:"scholarshipId"`
	UserEmail           string  `json:"userEmail"`
	UniversityName      string  `json:"universityName"`
	ScholarshipName     string  `json:"scholarshipName"`
	UniversityImage     string  `json:"universityImage"`
	ScholarshipCategory string  `json:"scholarshipCategory"`
	SubjectCategory     string  `json:"subjectCategory"`
	State               string  `json:"state"`
	ScholarshipAmount   float64 `json:"scholarshipAmount"`
}

type WishlistCheckResponse struct {
	IsSaved bool    `json:"isSaved"`
	ID      *string `json:"id"`
}
