//go:build !gcloud

package tracing

import (
	"context"
	"os"
	"strings"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// NewProvider exports spans over OTLP gRPC. Without an endpoint, or with
// OTEL_EXPORTER_DISABLED=true, spans are created but never exported.
func NewProvider(ctx context.Context, cfg Config) (*Provider, error) {
	sampler := sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SamplingRate))

	if os.Getenv("OTEL_EXPORTER_DISABLED") == "true" || cfg.OTLPEndpoint == "" {
		tp := sdktrace.NewTracerProvider(
			sdktrace.WithResource(newResource(cfg)),
			sdktrace.WithSampler(sampler),
		)

		return &Provider{tp: tp}, nil
	}

	endpoint := strings.TrimPrefix(strings.TrimPrefix(cfg.OTLPEndpoint, "http://"), "https://")

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(newResource(cfg)),
		sdktrace.WithSampler(sampler),
	)

	return &Provider{tp: tp}, nil
}
