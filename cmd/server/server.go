package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"jan-server/services/chat-insights/internal/config"
	"jan-server/services/chat-insights/internal/domain/insights"
	"jan-server/services/chat-insights/internal/infrastructure/logger"
	"jan-server/services/chat-insights/internal/infrastructure/observability"
	"jan-server/services/chat-insights/internal/interfaces/httpserver"
)

// @title Chat Insights API
// @version 1.0
// @description Conversation corpus summaries and text normalization
// @BasePath /
type Application struct {
	httpServer *httpserver.HttpServer
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	telemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	normalizer, err := newNormalizer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize normalizer")
	}
	runner := newRunner(cfg, normalizer, log)

	store, err := newStore(ctx, cfg, runner)
	if err != nil {
		log.Fatal().Err(err).Str("dataset", cfg.DatasetPath).Msg("load dataset")
	}

	pool, err := newWorkerPool(cfg, telemetry, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize worker pool")
	}

	summaries, err := newSummaryCache(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize summary cache")
	}

	insightsService := insights.NewService(store, runner, pool, summaries, newInsightsOptions(cfg), log)

	httpServer := httpserver.New(cfg, log, insightsService)
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
