package logging

import (
	"context"

	"github.com/google/uuid"
)

type Module string

const (
	ModuleReminder     Module = "reminder"
	ModuleCompletion   Module = "completion"
	ModuleNotification Module = "notification"
	ModuleStats        Module = "stats"
	ModuleCategory     Module = "category"
	ModuleRepository   Module = "repository"
)

type contextKey int

const (
	requestIDKey contextKey = iota
	moduleKey
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	v, _ := ctx.Value(requestIDKey).(string)

	return v
}

func WithModule(ctx context.Context, module Module) context.Context {
	return context.WithValue(ctx, moduleKey, module)
}

func ModuleFromContext(ctx context.Context) Module {
	v, _ := ctx.Value(moduleKey).(Module)

	return v
}

// ValidateAndExtractRequestID keeps an incoming request id when it is a
// UUID and mints a UUIDv7 otherwise.
func ValidateAndExtractRequestID(header string) string {
	if header != "" {
		if id, err := uuid.Parse(header); err == nil {
			return id.String()
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
