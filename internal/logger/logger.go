package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

const serviceName = "scholarly"

var (
	mu  sync.RWMutex
	log *slog.Logger
)

// Init настраивает глобальный логгер под окружение:
// development - текст и debug, test - текст и warn без source, иначе JSON и info.
// level (debug|info|warn|error) переопределяет уровень окружения, если задан.
func Init(env, level string) {
	initWithWriter(env, level, os.Stdout)
}

func initWithWriter(env, level string, w io.Writer) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo, AddSource: true}
	text := true
	switch env {
	case "development":
		opts.Level = slog.LevelDebug
	case "test":
		opts.Level = slog.LevelWarn
		opts.AddSource = false
	default:
		text = false
	}
	if lvl, ok := ParseLevel(level); ok {
		opts.Level = lvl
	}

	var handler slog.Handler = slog.NewJSONHandler(w, opts)
	if text {
		handler = slog.NewTextHandler(w, opts)
	}
	l := slog.New(handler).With("service", serviceName, "env", env)

	mu.Lock()
	log = l
	mu.Unlock()
	slog.SetDefault(l)
}

// ParseLevel понимает debug, info, warn/warning, error (без учета регистра)
func ParseLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

func GetLogger() *slog.Logger {
	mu.RLock()
	l := log
	mu.RUnlock()
	if l == nil {
		Init("development", "")
		return GetLogger()
	}
	return l
}

func Debug(msg string, args ...any) { GetLogger().Debug(msg, args...) }
func Info(msg string, args ...any)  { GetLogger().Info(msg, args...) }
func Warn(msg string, args ...any)  { GetLogger().Warn(msg, args...) }
func Error(msg string, args ...any) { GetLogger().Error(msg, args...) }

// Fatal пишет ошибку и завершает процесс
func Fatal(msg string, args ...any) {
	GetLogger().Error(msg, args...)
	os.Exit(1)
}

// RequestLog - итог обработки одного HTTP запроса
type RequestLog struct {
	Method   string
	Path     string
	Route    string
	Status   int
	Duration time.Duration
	Size     int
	ClientIP string
}

// HTTPLog пишет строку access-лога; уровень зависит от статуса (5xx error, 4xx warn)
func HTTPLog(ctx context.Context, r RequestLog) {
	level := slog.LevelInfo
	msg := "HTTP Request"
	switch {
	case r.Status >= 500:
		level, msg = slog.LevelError, "HTTP Server Error"
	case r.Status >= 400:
		level, msg = slog.LevelWarn, "HTTP Client Error"
	}

	FromContext(ctx).LogAttrs(ctx, level, msg,
		slog.String("method", r.Method),
		slog.String("path", r.Path),
		slog.String("route", r.Route),
		slog.Int("status", r.Status),
		slog.Int64("duration_ms", r.Duration.Milliseconds()),
		slog.Int("size_bytes", r.Size),
		slog.String("client_ip", r.ClientIP),
	)
}
