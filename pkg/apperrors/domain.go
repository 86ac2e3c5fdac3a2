package apperrors

import "net/http"

func notFound(domain, message string) *AppError {
	return New(CodeNotFound, domain, message, http.StatusNotFound)
}

func unauthorized(code ErrorCode, domain, message string) *AppError {
	return New(code, domain, message, http.StatusUnauthorized)
}

func forbidden(code ErrorCode, domain, message string) *AppError {
	return New(code, domain, message, http.StatusForbidden)
}

func conflict(code ErrorCode, domain, message string) *AppError {
	return New(code, domain, message, http.StatusConflict)
}

// ErrInvalidID - идентификатор в пути или теле не является UUID.
func ErrInvalidID(field string) *AppError {
	return New(CodeInvalidIdentifier, "validation", "Invalid identifier: "+field, http.StatusBadRequest)
}

// --- Auth ---

var ErrMissingSession = unauthorized(CodeUnauthorized, "auth", "unauthorized access")

var ErrInvalidToken = unauthorized(CodeInvalidToken, "auth", "unauthorized access")

// ErrInsufficientPermissions - не-админ пытается выполнить админ-действие.
var ErrInsufficientPermissions = forbidden(CodeForbidden, "auth", "Forbidden access denied")

// ErrIdentityMismatch - email из запроса не совпадает с email сессии.
var ErrIdentityMismatch = forbidden(CodeIdentityMismatch, "auth", "Forbidden: Access denied. Email mismatch.")

// ErrNotOwner - документ принадлежит другому пользователю.
var ErrNotOwner = forbidden(CodeForbidden, "auth", "access forbidden")

// --- Users ---

var ErrUserNotFound = notFound("user", "User not found")

// ErrCannotModifySelf - админ пытается снять с себя роль или удалить себя.
var ErrCannotModifySelf = forbidden(CodeForbidden, "business_logic", "Operation on self is not allowed")

// --- Scholarships ---

var ErrScholarshipNotFound = notFound("scholarship", "Scholarship not found")

// --- Applications ---

var ErrApplicationNotFound = notFound("application", "Application not found")

// ErrApplicationNotPending - заявка уже в обработке, владелец не может ее менять.
var ErrApplicationNotPending = conflict(CodeInvalidStatus, "application", "Application can only be changed by its owner while pending")

// ErrInvalidStatusTransition - переход статуса не предусмотрен.
var ErrInvalidStatusTransition = conflict(CodeInvalidStatus, "application", "Invalid application status transition")

// --- Reviews ---

var ErrReviewNotFound = notFound("review", "Review not found")

// --- Wishlists ---

var ErrWishlistNotFound = notFound("wishlist", "Wishlist entry not found")
