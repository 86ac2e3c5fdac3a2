package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError - ошибка, которую можно отдать клиенту: код, домен, сообщение и HTTP статус.
// Err - внутренняя причина, наружу не сериализуется.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Domain   string      `json:"domain"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func New(code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{Code: code, Domain: domain, Message: message, HTTPCode: httpCode}
}

func Wrap(err error, code ErrorCode, domain, message string, httpCode int) *AppError {
	appErr := New(code, domain, message, httpCode)
	appErr.Err = err
	return appErr
}

func (e *AppError) Error() string {
	msg := fmt.Sprintf("%s/%s: %s", e.Domain, e.Code, e.Message)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *AppError) Unwrap() error { return e.Err }

// WithDetails возвращает копию; предопределенные ошибки не меняются
func (e *AppError) WithDetails(details interface{}) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

// Is: копии из WithDetails равны своему оригиналу
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Domain == t.Domain && e.Message == t.Message
}

// MarshalJSON - тело ответа: {message, code, domain, details?}
func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Message string      `json:"message"`
		Code    ErrorCode   `json:"code"`
		Domain  string      `json:"domain"`
		Details interface{} `json:"details,omitempty"`
	}{e.Message, e.Code, e.Domain, e.Details})
}

// AsAppError достает *AppError из цепочки
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)
}

func DatabaseError(err error) *AppError {
	return Wrap(err, CodeDatabaseError, "database", "Database operation failed", http.StatusInternalServerError)
}

// ValidationError - 400 с ошибками по полям в details
func ValidationError(details interface{}) *AppError {
	return New(CodeValidationFailed, "validation", "Validation failed", http.StatusBadRequest).WithDetails(details)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, "request", message, http.StatusBadRequest)
}

func NewTooManyRequestsError(message string) *AppError {
	return New(CodeRateLimited, "request", message, http.StatusTooManyRequests)
}
