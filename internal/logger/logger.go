package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	userIDKey
)

// InitLogger installs the default slog logger writing to stdout
func InitLogger(cfg Config) *slog.Logger {
	return InitLoggerWithWriter(cfg, os.Stdout)
}

// InitLoggerWithWriter installs the default slog logger writing to w
func InitLoggerWithWriter(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel(),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.isJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	l := slog.New(handler.WithAttrs(cfg.baseAttrs()))
	slog.SetDefault(l)
	return l
}

// GenerateRequestID creates a new id for tracing one HTTP request
func GenerateRequestID() string {
	return uuid.NewString()
}

// WithRequestID returns a context carrying the request id
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID returns the request id or an empty string
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithUserID returns a context whose logger is tagged with the LINE user id
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// FromContext returns the default logger tagged with any request and user id in ctx
func FromContext(ctx context.Context) *slog.Logger {
	l := slog.Default()
	if id := GetRequestID(ctx); id != "" {
		l = l.With(AttrKeyRequestID, id)
	}
	if id, _ := ctx.Value(userIDKey).(string); id != "" {
		l = l.With(AttrKeyUserID, id)
	}
	return l
}
