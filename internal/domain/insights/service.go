package insights

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"jan-server/services/chat-insights/internal/domain/analysis"
	"jan-server/services/chat-insights/internal/domain/pipeline"
	"jan-server/services/chat-insights/internal/infrastructure/cache"
	"jan-server/services/chat-insights/internal/infrastructure/workerpool"
	"jan-server/services/chat-insights/internal/utils/platformerrors"
)

// Messages returned to API clients.
const (
	MessageConversationNotFound = "Invalid conversation ID."
	MessagePoolSaturated        = "Server busy, retry later."
	MessageNotReady             = "Dataset not loaded."
	MessageReloadInProgress     = "Reload already in progress."
	MessageReloadDisabled       = "Reload is disabled."
)

// ReloadResult describes the snapshot published by a reload.
type ReloadResult struct {
	Version  string         `json:"version"`
	Source   string         `json:"source"`
	Previous string         `json:"previous_version,omitempty"`
	Stats    pipeline.Stats `json:"stats"`
}

// Service describes the operations exposed over HTTP.
type Service interface {
	Summary(ctx context.Context) (analysis.CorpusSummary, error)
	Transform(ctx context.Context, text string) (string, error)
	Analyze(ctx context.Context, conversationID string) (analysis.ConversationSummary, error)
	Reload(ctx context.Context) (ReloadResult, error)
	Ready() bool
}

// Options configures the service.
type Options struct {
	Source        string
	ReloadEnabled bool
}

type service struct {
	store    *pipeline.Store
	runner   *pipeline.Runner
	pool     *workerpool.Pool
	cache    *cache.Cache[analysis.ConversationSummary]
	opts     Options
	reloadMu sync.Mutex
	log      zerolog.Logger
}

// NewService wires the insights service. runner may be nil when reload is disabled.
func NewService(
	store *pipeline.Store,
	runner *pipeline.Runner,
	pool *workerpool.Pool,
	summaries *cache.Cache[analysis.ConversationSummary],
	opts Options,
	log zerolog.Logger,
) Service {
	return &service{
		store:  store,
		runner: runner,
		pool:   pool,
		cache:  summaries,
		opts:   opts,
		log:    log.With().Str("component", "insights-service").Logger(),
	}
}

func (s *service) snapshot(ctx context.Context) (*pipeline.Snapshot, error) {
	snap := s.store.Current()
	if snap == nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeUnavailable, MessageNotReady, nil)
	}
	return snap, nil
}

func (s *service) Ready() bool {
	return s.store.Current() != nil
}

func (s *service) Summary(ctx context.Context) (analysis.CorpusSummary, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return analysis.CorpusSummary{}, err
	}
	return snap.Analyzer.CorpusSummary(), nil
}

func (s *service) Transform(ctx context.Context, text string) (string, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return "", err
	}
	// the snapshot's normalizer keeps ad-hoc requests on the table's policy
	normalizer := snap.Normalizer
	out, err := workerpool.Submit(ctx, s.pool, "transform", func(context.Context) (string, error) {
		return normalizer.Normalize(text), nil
	})
	if err != nil {
		return "", s.poolError(ctx, err, "transform text")
	}
	return out, nil
}

func (s *service) Analyze(ctx context.Context, conversationID string) (analysis.ConversationSummary, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return analysis.ConversationSummary{}, err
	}

	key := snap.Version + "/" + conversationID
	if summary, ok := s.cache.Get(key); ok {
		return summary, nil
	}

	summary, err := workerpool.Submit(ctx, s.pool, "analyze", func(context.Context) (analysis.ConversationSummary, error) {
		return snap.Analyzer.ConversationSummary(conversationID)
	})
	if err != nil {
		if errors.Is(err, analysis.ErrConversationNotFound) {
			return analysis.ConversationSummary{}, platformerrors.NewErrorWithContext(ctx, platformerrors.LayerDomain,
				platformerrors.ErrorTypeNotFound, MessageConversationNotFound, err,
				map[string]any{"conversation_id": conversationID})
		}
		return analysis.ConversationSummary{}, s.poolError(ctx, err, "analyze conversation")
	}

	s.cache.Add(key, summary)
	return summary, nil
}

func (s *service) Reload(ctx context.Context) (ReloadResult, error) {
	if !s.opts.ReloadEnabled || s.runner == nil {
		return ReloadResult{}, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeUnavailable, MessageReloadDisabled, nil)
	}
	if !s.reloadMu.TryLock() {
		return ReloadResult{}, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeUnavailable, MessageReloadInProgress, nil)
	}
	defer s.reloadMu.Unlock()

	next, err := s.runner.Run(ctx, s.opts.Source)
	if err != nil {
		perr := platformerrors.AsError(ctx, platformerrors.LayerInfrastructure, err, "reload dataset")
		perr.Context["source"] = s.opts.Source
		platformerrors.LogError(s.log, perr)
		return ReloadResult{}, perr
	}

	result := ReloadResult{Version: next.Version, Source: next.Source, Stats: next.Stats}
	if previous := s.store.Swap(next); previous != nil {
		result.Previous = previous.Version
	}
	s.cache.Purge()
	s.log.Info().Str("version", next.Version).Str("previous_version", result.Previous).Msg("snapshot reloaded")
	return result, nil
}

func (s *service) poolError(ctx context.Context, err error, message string) error {
	switch {
	case errors.Is(err, workerpool.ErrPoolSaturated):
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeUnavailable, MessagePoolSaturated, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeUnavailable, message, err)
	default:
		perr := platformerrors.AsError(ctx, platformerrors.LayerDomain, err, message)
		platformerrors.LogError(s.log, perr)
		return perr
	}
}
