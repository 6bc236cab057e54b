package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"jan-server/services/chat-insights/internal/domain/analysis"
	"jan-server/services/chat-insights/internal/domain/conversation"
	"jan-server/services/chat-insights/internal/domain/textnorm"
	"jan-server/services/chat-insights/internal/infrastructure/metrics"
)

// transformChunk is the number of rows normalized per errgroup task.
const transformChunk = 512

// Snapshot is one immutable result of a pipeline run.
type Snapshot struct {
	Version    string
	Source     string
	LoadedAt   time.Time
	Table      *conversation.Table
	Analyzer   *analysis.Analyzer
	Normalizer *textnorm.Normalizer
	Stats      Stats
}

// Stats counts rows after each stage.
type Stats struct {
	Conversations int `json:"conversations"`
	Loaded        int `json:"loaded"`
	Cleaned       int `json:"cleaned"`
	Duplicates    int `json:"duplicates"`
}

// Runner executes load -> clean -> transform.
type Runner struct {
	normalizer  *textnorm.Normalizer
	parallelism int
	log         zerolog.Logger
}

// NewRunner creates a runner that normalizes with normalizer using up to
// parallelism goroutines.
func NewRunner(normalizer *textnorm.Normalizer, parallelism int, log zerolog.Logger) *Runner {
	if parallelism <= 0 {
		parallelism = 1
	}
	return &Runner{
		normalizer:  normalizer,
		parallelism: parallelism,
		log:         log.With().Str("component", "pipeline").Logger(),
	}
}

// Normalizer returns the normalizer applied to every table this runner builds.
func (r *Runner) Normalizer() *textnorm.Normalizer {
	return r.normalizer
}

// Run loads path and builds a snapshot. Any failure aborts the whole run.
func (r *Runner) Run(ctx context.Context, path string) (*Snapshot, error) {
	start := time.Now()
	snapshot, err := r.run(ctx, path)
	duration := time.Since(start)
	if err != nil {
		metrics.RecordPipelineRun("error", duration.Seconds(), nil)
		r.log.Error().Err(err).Str("source", path).Msg("pipeline run failed")
		return nil, err
	}

	metrics.RecordPipelineRun("success", duration.Seconds(), map[string]int{
		"loaded":  snapshot.Stats.Loaded,
		"cleaned": snapshot.Stats.Cleaned,
	})
	r.log.Info().
		Str("version", snapshot.Version).
		Str("source", path).
		Str("policy", string(r.normalizer.Policy())).
		Int("conversations", snapshot.Stats.Conversations).
		Int("rows", snapshot.Stats.Cleaned).
		Int("duplicates", snapshot.Stats.Duplicates).
		Dur("duration", duration).
		Msg("pipeline run completed")
	return snapshot, nil
}

func (r *Runner) run(ctx context.Context, path string) (*Snapshot, error) {
	rows, err := conversation.Load(path)
	if err != nil {
		return nil, err
	}
	return r.Build(ctx, path, rows)
}

// Build cleans and transforms already loaded rows.
func (r *Runner) Build(ctx context.Context, source string, rows []conversation.FlatRow) (*Snapshot, error) {
	table := conversation.Clean(rows)
	if err := Transform(ctx, table, r.normalizer, r.parallelism); err != nil {
		return nil, fmt.Errorf("transform messages: %w", err)
	}

	analyzer := analysis.New(table)
	return &Snapshot{
		Version:    ulid.Make().String(),
		Source:     source,
		LoadedAt:   time.Now().UTC(),
		Table:      table,
		Analyzer:   analyzer,
		Normalizer: r.normalizer,
		Stats: Stats{
			Conversations: analyzer.CorpusSummary().TotalConversations,
			Loaded:        len(rows),
			Cleaned:       table.Len(),
			Duplicates:    len(rows) - table.Len(),
		},
	}, nil
}

// Transform fills ProcessedMessage for every row with one normalizer.
// Chunks are disjoint, so goroutines never write the same row.
func Transform(ctx context.Context, table *conversation.Table, normalizer *textnorm.Normalizer, parallelism int) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(parallelism, 1))

	for start := 0; start < len(table.Rows); start += transformChunk {
		chunk := table.Rows[start:min(start+transformChunk, len(table.Rows))]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := range chunk {
				chunk[i].ProcessedMessage = normalizer.Normalize(chunk[i].Message)
			}
			return nil
		})
	}
	return g.Wait()
}
