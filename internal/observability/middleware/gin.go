package middleware

import (
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/KasumiMercury/primind-habit-remind/internal/observability/logging"
	"github.com/KasumiMercury/primind-habit-remind/internal/observability/metrics"
	"github.com/KasumiMercury/primind-habit-remind/internal/observability/tracing"
)

const requestIDHeader = "x-request-id"

type GinConfig struct {
	// SkipPaths bypass logging, tracing and metrics.
	SkipPaths []string
	// ModuleResolver picks the log module for a route; nil uses ModuleForPath.
	ModuleResolver func(*gin.Context) logging.Module
	TracerName     string
	HTTPMetrics    *metrics.HTTPMetrics
}

func Gin(cfg GinConfig) gin.HandlerFunc {
	skipSet := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skipSet[p] = struct{}{}
	}

	resolve := cfg.ModuleResolver
	if resolve == nil {
		resolve = func(c *gin.Context) logging.Module {
			return ModuleForPath(c.FullPath())
		}
	}

	tracer := otel.Tracer(cfg.TracerName)

	return func(c *gin.Context) {
		if _, skip := skipSet[c.Request.URL.Path]; skip {
			c.Next()

			return
		}

		start := time.Now()

		requestID := logging.ValidateAndExtractRequestID(c.GetHeader(requestIDHeader))
		ctx := logging.WithRequestID(c.Request.Context(), requestID)

		if module := resolve(c); module != "" {
			ctx = logging.WithModule(ctx, module)
		}

		ctx = tracing.ExtractFromHTTPRequest(ctx, c.Request)

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}

		ctx, span := tracer.Start(ctx, c.Request.Method+" "+route)
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Header(requestIDHeader, requestID)

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		span.SetAttributes(
			attribute.String("http.request.method", c.Request.Method),
			attribute.String("http.route", route),
			attribute.Int("http.response.status_code", status),
		)

		if status >= 500 {
			span.SetStatus(codes.Error, "server error")
		}

		cfg.HTTPMetrics.Record(ctx, c.Request.Method, route, status, duration)

		level := slog.LevelInfo
		if status >= 500 {
			level = slog.LevelError
		}

		slog.LogAttrs(ctx, level, "request completed",
			slog.String("event", "http.request.finish"),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("route", route),
			slog.String("remote_addr", c.ClientIP()),
			slog.Int("status", status),
			slog.Duration("duration", duration),
		)
	}
}

// ModuleForPath maps an API route to the module its logs belong to.
func ModuleForPath(route string) logging.Module {
	switch {
	case strings.Contains(route, "/completions"), strings.HasSuffix(route, "/streak"):
		return logging.ModuleCompletion
	case strings.HasSuffix(route, "/snooze"), strings.Contains(route, "/notifications"):
		return logging.ModuleNotification
	case strings.Contains(route, "/stats"):
		return logging.ModuleStats
	case strings.Contains(route, "/categories"):
		return logging.ModuleCategory
	case strings.Contains(route, "/reminders"):
		return logging.ModuleReminder
	default:
		return ""
	}
}
