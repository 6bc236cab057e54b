//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"

	"jan-server/services/chat-insights/internal/config"
	"jan-server/services/chat-insights/internal/domain/insights"
	"jan-server/services/chat-insights/internal/infrastructure/logger"
	"jan-server/services/chat-insights/internal/infrastructure/observability"
	"jan-server/services/chat-insights/internal/interfaces/httpserver"
)

var pipelineSet = wire.NewSet(
	newNormalizer,
	newRunner,
	newStore,
)

var insightsSet = wire.NewSet(
	newWorkerPool,
	newSummaryCache,
	newInsightsOptions,
	insights.NewService,
)

// BuildApplication assembles the chat insights service with Wire.
func BuildApplication(ctx context.Context) (*Application, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		newTelemetry,
		pipelineSet,
		insightsSet,
		httpserver.New,
		NewApplication,
	)
	return nil, nil, nil
}

func newTelemetry(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*observability.Provider, func(), error) {
	provider, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := provider.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}
	return provider, cleanup, nil
}
