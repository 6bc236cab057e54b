package workerpool

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPool(t *testing.T, size, queue int) *Pool {
	t.Helper()
	p, err := New(size, queue, nil, zerolog.Nop())
	require.NoError(t, err)
	return p
}

// occupy starts a task that holds one worker until release is closed.
func occupy(t *testing.T, p *Pool) (release func(), done <-chan error) {
	t.Helper()
	started := make(chan struct{})
	unblock := make(chan struct{})
	errCh := make(chan error, 1)
	go func() {
		_, err := Submit(context.Background(), p, "block", func(ctx context.Context) (struct{}, error) {
			close(started)
			<-unblock
			return struct{}{}, nil
		})
		errCh <- err
	}()
	<-started
	return func() { close(unblock) }, errCh
}

func TestSubmitReturnsValue(t *testing.T) {
	p := newTestPool(t, 2, 0)
	got, err := Submit(context.Background(), p, "double", func(ctx context.Context) (int, error) {
		return 21 * 2, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, 2, p.Size())
}

func TestSubmitPropagatesError(t *testing.T) {
	p := newTestPool(t, 1, 0)
	boom := errors.New("boom")
	_, err := Submit(context.Background(), p, "fail", func(ctx context.Context) (string, error) {
		return "", boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestSubmitRecoversPanic(t *testing.T) {
	p := newTestPool(t, 1, 0)
	_, err := Submit(context.Background(), p, "panic", func(ctx context.Context) (int, error) {
		panic("kaboom")
	})
	require.ErrorIs(t, err, ErrTaskPanicked)
	assert.Contains(t, err.Error(), "kaboom")

	// the worker is released after a panic
	got, err := Submit(context.Background(), p, "after", func(ctx context.Context) (int, error) {
		return 1, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestSubmitRejectsWhenSaturated(t *testing.T) {
	p := newTestPool(t, 1, 0)
	release, done := occupy(t, p)

	_, err := Submit(context.Background(), p, "extra", func(ctx context.Context) (int, error) {
		return 0, nil
	})
	assert.ErrorIs(t, err, ErrPoolSaturated)

	release()
	require.NoError(t, <-done)
}

func TestSubmitQueuesUpToQueueSize(t *testing.T) {
	p := newTestPool(t, 1, 1)
	release, done := occupy(t, p)

	queued := make(chan error, 1)
	go func() {
		_, err := Submit(context.Background(), p, "queued", func(ctx context.Context) (int, error) {
			return 7, nil
		})
		queued <- err
	}()
	require.Eventually(t, func() bool { return p.Waiting() == 1 }, time.Second, time.Millisecond)

	_, err := Submit(context.Background(), p, "overflow", func(ctx context.Context) (int, error) {
		return 0, nil
	})
	assert.ErrorIs(t, err, ErrPoolSaturated)

	release()
	require.NoError(t, <-done)
	require.NoError(t, <-queued)
	assert.Equal(t, 0, p.Waiting())
}

func TestSubmitWaitingHonoursCancellation(t *testing.T) {
	p := newTestPool(t, 1, 1)
	release, done := occupy(t, p)
	defer func() {
		release()
		<-done
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := Submit(ctx, p, "late", func(ctx context.Context) (int, error) {
		return 0, nil
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSubmitBoundsConcurrency(t *testing.T) {
	const size = 3
	p := newTestPool(t, size, 100)

	var running, peak atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := Submit(context.Background(), p, "count", func(ctx context.Context) (struct{}, error) {
				n := running.Add(1)
				for {
					old := peak.Load()
					if n <= old || peak.CompareAndSwap(old, n) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				running.Add(-1)
				return struct{}{}, nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, peak.Load(), int64(size))
}

func TestNewValidatesSizes(t *testing.T) {
	_, err := New(0, 1, nil, zerolog.Nop())
	assert.Error(t, err)
	_, err = New(1, -1, nil, zerolog.Nop())
	assert.Error(t, err)
}
