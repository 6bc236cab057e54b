package workerpool

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"

	"jan-server/services/chat-insights/internal/infrastructure/metrics"
)

var (
	// ErrPoolSaturated is returned when every worker is busy and the wait queue is full.
	ErrPoolSaturated = errors.New("worker pool saturated")
	// ErrTaskPanicked wraps a panic recovered from a task.
	ErrTaskPanicked = errors.New("worker task panicked")
)

// Pool runs at most size tasks at once and lets at most queueSize more wait.
// Anything beyond that is rejected with ErrPoolSaturated.
type Pool struct {
	sem       *semaphore.Weighted
	size      int64
	queueSize int64
	waiting   atomic.Int64
	instr     *Instrumenter
	log       zerolog.Logger
}

// New creates a pool. size must be > 0; queueSize may be 0 to reject whenever
// all workers are busy.
func New(size, queueSize int, instr *Instrumenter, log zerolog.Logger) (*Pool, error) {
	if size <= 0 {
		return nil, fmt.Errorf("worker pool size must be > 0, got %d", size)
	}
	if queueSize < 0 {
		return nil, fmt.Errorf("worker pool queue size must be >= 0, got %d", queueSize)
	}
	if instr == nil {
		var err error
		instr, err = NewInstrumenter(nil, nil, "chat-insights")
		if err != nil {
			return nil, err
		}
	}
	return &Pool{
		sem:       semaphore.NewWeighted(int64(size)),
		size:      int64(size),
		queueSize: int64(queueSize),
		instr:     instr,
		log:       log.With().Str("component", "worker-pool").Logger(),
	}, nil
}

// Size returns the number of workers.
func (p *Pool) Size() int {
	return int(p.size)
}

// Waiting returns the number of tasks queued for a worker.
func (p *Pool) Waiting() int {
	return int(p.waiting.Load())
}

func (p *Pool) acquire(ctx context.Context, jobType string) error {
	if p.sem.TryAcquire(1) {
		return nil
	}
	if p.waiting.Add(1) > p.queueSize {
		p.waiting.Add(-1)
		metrics.RecordRejection(jobType)
		p.log.Warn().Str("job_type", jobType).Int64("queue_size", p.queueSize).Msg("worker pool saturated")
		return ErrPoolSaturated
	}
	metrics.WorkerPoolWaiting.Inc()
	defer func() {
		p.waiting.Add(-1)
		metrics.WorkerPoolWaiting.Dec()
	}()
	return p.sem.Acquire(ctx, 1)
}

// Submit runs fn on the pool and waits for its result. The caller stops waiting
// when ctx is done; the task itself still runs to completion and frees its worker.
func Submit[T any](ctx context.Context, p *Pool, jobType string, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if err := p.acquire(ctx, jobType); err != nil {
		return zero, err
	}

	type result struct {
		value T
		err   error
	}
	done := make(chan result, 1)

	go func() {
		defer p.sem.Release(1)
		var res result
		res.err = p.instr.InstrumentJob(ctx, jobType, func(ctx context.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					p.log.Error().
						Str("job_type", jobType).
						Interface("panic", r).
						Bytes("stack", debug.Stack()).
						Msg("worker task panicked")
					err = fmt.Errorf("%w: %v", ErrTaskPanicked, r)
				}
			}()
			res.value, err = fn(ctx)
			return err
		})
		done <- res
	}()

	select {
	case res := <-done:
		return res.value, res.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
