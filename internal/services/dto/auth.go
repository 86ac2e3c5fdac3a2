package dto

// IssueTokenRequest - личность, подтвержденная внешним провайдером на клиенте
type IssueTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"omitempty,max=255"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}
