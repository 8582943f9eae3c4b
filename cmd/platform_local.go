//go:build !gcloud

package main

import (
	"context"
	"log/slog"

	"github.com/KasumiMercury/primind-habit-remind/internal/config"
	"github.com/KasumiMercury/primind-habit-remind/internal/infra/pubsub"
	"github.com/KasumiMercury/primind-habit-remind/internal/observability"
	"github.com/KasumiMercury/primind-habit-remind/internal/observability/logging"
)

func initPublisher(ctx context.Context, cfg *config.Config) (pubsub.Publisher, error) {
	if cfg.PubSub.NatsURL == "" {
		slog.Warn("NATS_URL not set, fired notifications are not published")

		return nil, nil
	}

	publisher, err := pubsub.NewNATSPublisherWithStream(ctx, pubsub.NATSPublisherConfig{
		URL:    cfg.PubSub.NatsURL,
		MaxAge: cfg.PubSub.StreamMaxAge,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("NATS publisher initialized", "url", cfg.PubSub.NatsURL)

	return publisher, nil
}

func initObservability(ctx context.Context, cfg *config.Config) (*observability.Resources, error) {
	return observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:    cfg.Observability.ServiceName,
			Version: Version,
		},
		Environment:   logging.Environment(cfg.Observability.Environment),
		LogLevel:      logging.ParseLevel(cfg.Log.Level),
		SamplingRate:  cfg.Observability.SamplingRate,
		OTLPEndpoint:  cfg.Observability.OTLPEndpoint,
		DefaultModule: logging.ModuleReminder,
	})
}
