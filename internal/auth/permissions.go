package auth

import "scholarly_backend/internal/models"

// Разрешения
const (
	PermUsersRead          = "users:read"
	PermUsersWrite         = "users:write"
	PermScholarshipsWrite  = "scholarships:write"
	PermApplicationsReview = "applications:review"
	PermReviewsReadAll     = "reviews:read_all"
	PermReviewsDelete      = "reviews:delete"
)

// Ранги ролей: student < moderator < admin
var roleRank = map[models.UserRole]int{
	models.UserRoleStudent:   1,
	models.UserRoleModerator: 2,
	models.UserRoleAdmin:     3,
}

// Permissions - capability table по ролям
var Permissions = map[models.UserRole][]string{
	models.UserRoleAdmin: {
		PermUsersRead,
		PermUsersWrite,
		PermScholarshipsWrite,
		PermApplicationsReview,
		PermReviewsReadAll,
		PermReviewsDelete,
	},
	models.UserRoleModerator: {
		PermReviewsReadAll,
	},
	models.UserRoleStudent: {},
}

// Rank возвращает 0 для неизвестной роли
func Rank(role models.UserRole) int {
	return roleRank[role]
}

// AtLeast проверяет, что роль не ниже минимальной.
func AtLeast(role, min models.UserRole) bool {
	r := Rank(role)
	return r > 0 && r >= Rank(min)
}

// HasPermission проверяет есть ли у роли указанное разрешение
func HasPermission(role models.UserRole, permission string) bool {
	for _, p := range Permissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}

func IsAdmin(role models.UserRole) bool {
	return role == models.UserRoleAdmin
}
