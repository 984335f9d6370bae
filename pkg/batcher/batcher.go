// Package batcher provides a generic buffered batch processor with rate limiting.
package batcher

import (
	"context"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Batcher buffers items and flushes them either by size or interval. A flush
// that fails is logged and its batch dropped; the batcher keeps running.
type Batcher[T any] struct {
	logger        *zap.Logger
	flush         func(context.Context, []T) error
	items         chan T
	flushSize     int
	flushInterval time.Duration
	limiter       ratelimit.Limiter

	wg   sync.WaitGroup
	stop chan struct{}
}

// New constructs a Batcher flushing through the given callback. rps bounds
// how many flushes may happen per second.
func New[T any](logger *zap.Logger, flush func(context.Context, []T) error, flushSize int, flushInterval time.Duration, rps int) *Batcher[T] {
	return &Batcher[T]{
		logger:        logger,
		flush:         flush,
		items:         make(chan T, flushSize*2),
		flushSize:     flushSize,
		flushInterval: flushInterval,
		limiter:       ratelimit.New(rps),
		stop:          make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop drains the current buffer and stops the background loop.
func (b *Batcher[T]) Stop() {
	close(b.stop)
	b.wg.Wait()
}

// Add queues an item for batching, respecting context cancellation. Adding
// to a stopped batcher returns context.Canceled.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return context.Canceled
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case b.items <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.flushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.flushSize)

	doFlush := func() {
		if len(buf) == 0 {
			return
		}
		b.limiter.Take()
		if err := b.flush(ctx, buf); err != nil {
			b.logger.Error("batch not flushed", zap.Error(err), zap.Int("size", len(buf)))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		buf = buf[:0]
	}

	// Take whatever is still queued before the final flush.
	drain := func() {
		for {
			select {
			case item := <-b.items:
				buf = append(buf, item)
				if len(buf) >= b.flushSize {
					doFlush()
				}
			default:
				doFlush()
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			drain()
			return
		case <-b.stop:
			drain()
			return
		case item := <-b.items:
			buf = append(buf, item)
			if len(buf) >= b.flushSize {
				doFlush()
			}
		case <-ticker.C:
			doFlush()
		}
	}
}
