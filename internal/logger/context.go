package logger

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// requestFields - поля запроса, которые попадают в каждую строку лога
type requestFields struct {
	requestID string
	userEmail string
}

func fieldsFrom(ctx context.Context) requestFields {
	if ctx == nil {
		return requestFields{}
	}
	f, _ := ctx.Value(ctxKey{}).(requestFields)
	return f
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	f := fieldsFrom(ctx)
	f.requestID = requestID
	return context.WithValue(ctx, ctxKey{}, f)
}

// WithUserEmail проставляет email сессии (после AuthMiddleware)
func WithUserEmail(ctx context.Context, email string) context.Context {
	f := fieldsFrom(ctx)
	f.userEmail = email
	return context.WithValue(ctx, ctxKey{}, f)
}

func GetRequestID(ctx context.Context) string { return fieldsFrom(ctx).requestID }
func GetUserEmail(ctx context.Context) string { return fieldsFrom(ctx).userEmail }

func FromContext(ctx context.Context) *slog.Logger {
	l := GetLogger()
	f := fieldsFrom(ctx)

	var args []any
	if f.requestID != "" {
		args = append(args, "request_id", f.requestID)
	}
	if f.userEmail != "" {
		args = append(args, "user_email", f.userEmail)
	}
	if len(args) == 0 {
		return l
	}
	return l.With(args...)
}

func CtxDebug(ctx context.Context, msg string, args ...any) { FromContext(ctx).Debug(msg, args...) }
func CtxInfo(ctx context.Context, msg string, args ...any)  { FromContext(ctx).Info(msg, args...) }
func CtxWarn(ctx context.Context, msg string, args ...any)  { FromContext(ctx).Warn(msg, args...) }
func CtxError(ctx context.Context, msg string, args ...any) { FromContext(ctx).Error(msg, args...) }

// CtxWithError добавляет "error" первым полем
func CtxWithError(ctx context.Context, msg string, err error, args ...any) {
	if err != nil {
		args = append([]any{"error", err.Error()}, args...)
	}
	FromContext(ctx).Error(msg, args...)
}
