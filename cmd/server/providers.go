package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"jan-server/services/chat-insights/internal/config"
	"jan-server/services/chat-insights/internal/domain/analysis"
	"jan-server/services/chat-insights/internal/domain/insights"
	"jan-server/services/chat-insights/internal/domain/pipeline"
	"jan-server/services/chat-insights/internal/domain/textnorm"
	"jan-server/services/chat-insights/internal/infrastructure/cache"
	"jan-server/services/chat-insights/internal/infrastructure/observability"
	"jan-server/services/chat-insights/internal/infrastructure/workerpool"
)

func newNormalizer(cfg *config.Config) (*textnorm.Normalizer, error) {
	policy, err := textnorm.ParsePolicy(cfg.NormalizerPolicy)
	if err != nil {
		return nil, err
	}
	var opts []textnorm.Option
	if cfg.StopwordsFile != "" {
		words, err := textnorm.LoadStopwords(cfg.StopwordsFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, textnorm.WithStopwords(words))
	}
	return textnorm.New(policy, opts...)
}

func newRunner(cfg *config.Config, normalizer *textnorm.Normalizer, log zerolog.Logger) *pipeline.Runner {
	return pipeline.NewRunner(normalizer, cfg.WorkerPoolSize, log)
}

// newStore runs the pipeline once; the service never starts without a table.
func newStore(ctx context.Context, cfg *config.Config, runner *pipeline.Runner) (*pipeline.Store, error) {
	snapshot, err := runner.Run(ctx, cfg.DatasetPath)
	if err != nil {
		return nil, fmt.Errorf("initial pipeline run: %w", err)
	}
	return pipeline.NewStore(snapshot), nil
}

func newWorkerPool(cfg *config.Config, telemetry *observability.Provider, log zerolog.Logger) (*workerpool.Pool, error) {
	instr, err := workerpool.NewInstrumenter(telemetry.Tracer, telemetry.Meter, cfg.ServiceName)
	if err != nil {
		return nil, fmt.Errorf("worker pool instruments: %w", err)
	}
	return workerpool.New(cfg.WorkerPoolSize, cfg.WorkerQueueSize, instr, log)
}

func newSummaryCache(cfg *config.Config) (*cache.Cache[analysis.ConversationSummary], error) {
	return cache.New[analysis.ConversationSummary]("conversation_summary", cfg.SummaryCacheSize)
}

func newInsightsOptions(cfg *config.Config) insights.Options {
	return insights.Options{
		Source:        cfg.DatasetPath,
		ReloadEnabled: cfg.ReloadEnabled,
	}
}
