package dto

import "scholarly_backend/internal/models"

type CreateUserRequest struct {
	Email       string `json:"email" validate:"required,email"`
	DisplayName string `json:"displayName" validate:"omitempty,max=255"`
	PhotoURL    string `json:"photoURL" validate:"omitempty,url"`
}

type UpdateUserRequest struct {
	DisplayName *string `json:"displayName,omitempty" validate:"omitempty,max=255"`
	PhotoURL    *string `json:"photoURL,omitempty" validate:"omitempty,url"`
	Role        *string `json:"role,omitempty" validate:"omitempty,is-user-role"`
}

// UserListQuery - параметры GET /users. filter - фильтр по роли.
type UserListQuery struct {
	Search string `form:"search" validate:"omitempty,max=100"`
	Filter string `form:"filter" validate:"omitempty,is-user-role"`
	Page   int    `form:"page" validate:"omitempty,min=1"`
	Limit  int    `form:"limit" validate:"omitempty,min=1"`
}

type CreateUserResult struct {
	Created bool
	User    *models.User
}

type CreateUserResponse struct {
	InsertedID string       `json:"insertedId"`
	User       *models.User `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type RoleResponse struct {
	Role models.UserRole `json:"role"`
}

type UserListResponse struct {
	Users      []models.User `json:"users"`
	TotalUsers int64         `json:"totalUsers"`
}
