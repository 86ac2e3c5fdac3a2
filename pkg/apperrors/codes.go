package apperrors

// ErrorCode - машиночитаемый код в теле ответа
type ErrorCode string

const (
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"

	CodeNotFound          ErrorCode = "NOT_FOUND"
	CodeValidationFailed  ErrorCode = "VALIDATION_FAILED"
	CodeInvalidIdentifier ErrorCode = "INVALID_IDENTIFIER"
	CodeInvalidStatus     ErrorCode = "INVALID_STATUS"
	CodeRateLimited       ErrorCode = "RATE_LIMITED"

	CodeUnauthorized     ErrorCode = "UNAUTHORIZED"
	CodeForbidden        ErrorCode = "FORBIDDEN"
	CodeInvalidToken     ErrorCode = "INVALID_TOKEN"
	CodeIdentityMismatch ErrorCode = "IDENTITY_MISMATCH"
)
