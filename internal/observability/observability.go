// Package observability wires logging, tracing and metrics for the process.
package observability

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/KasumiMercury/primind-habit-remind/internal/observability/logging"
	"github.com/KasumiMercury/primind-habit-remind/internal/observability/metrics"
	"github.com/KasumiMercury/primind-habit-remind/internal/observability/tracing"
)

const instrumentationName = "github.com/KasumiMercury/primind-habit-remind"

type Config struct {
	ServiceInfo   logging.ServiceInfo
	Environment   logging.Environment
	LogLevel      slog.Level
	GCPProjectID  string
	SamplingRate  float64
	OTLPEndpoint  string
	DefaultModule logging.Module
}

type Resources struct {
	Tracing             *tracing.Provider
	Metrics             *metrics.Provider
	HTTPMetrics         *metrics.HTTPMetrics
	NotificationMetrics *metrics.NotificationMetrics
}

// Init installs the slog default handler, the W3C propagators and the
// global tracer and meter providers.
func Init(ctx context.Context, cfg Config) (*Resources, error) {
	slog.SetDefault(slog.New(logging.NewHandler(os.Stdout, logging.HandlerConfig{
		Level:         cfg.LogLevel,
		Service:       cfg.ServiceInfo,
		Environment:   cfg.Environment,
		DefaultModule: cfg.DefaultModule,
		GCPProjectID:  cfg.GCPProjectID,
	})))

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	tp, err := tracing.NewProvider(ctx, tracing.Config{
		ServiceName:    cfg.ServiceInfo.Name,
		ServiceVersion: cfg.ServiceInfo.Version,
		Environment:    string(cfg.Environment),
		SamplingRate:   cfg.SamplingRate,
		OTLPEndpoint:   cfg.OTLPEndpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	otel.SetTracerProvider(tp.TracerProvider())

	mp, err := metrics.NewProvider(ctx, metrics.Config{
		ServiceName:    cfg.ServiceInfo.Name,
		ServiceVersion: cfg.ServiceInfo.Version,
		Environment:    string(cfg.Environment),
		OTLPEndpoint:   cfg.OTLPEndpoint,
	})
	if err != nil {
		return nil, errors.Join(fmt.Errorf("init metrics: %w", err), tp.Shutdown(ctx))
	}

	otel.SetMeterProvider(mp.MeterProvider())

	meter := mp.Meter(instrumentationName)

	httpMetrics, err := metrics.NewHTTPMetrics(meter)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("init http metrics: %w", err), mp.Shutdown(ctx), tp.Shutdown(ctx))
	}

	notificationMetrics, err := metrics.NewNotificationMetrics(meter)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("init notification metrics: %w", err), mp.Shutdown(ctx), tp.Shutdown(ctx))
	}

	return &Resources{
		Tracing:             tp,
		Metrics:             mp,
		HTTPMetrics:         httpMetrics,
		NotificationMetrics: notificationMetrics,
	}, nil
}

// Shutdown flushes pending spans and metrics.
func (r *Resources) Shutdown(ctx context.Context) error {
	return errors.Join(r.Metrics.Shutdown(ctx), r.Tracing.Shutdown(ctx))
}

func TracerName() string {
	return instrumentationName
}
