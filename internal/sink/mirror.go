package sink

import (
	"context"
	"time"

	"github.com/goodnatureofminers/telemetry-observer-backend/internal/model"
	"github.com/goodnatureofminers/telemetry-observer-backend/pkg/batcher"
	"go.uber.org/zap"
)

const (
	mirrorFlushSize     = 500
	mirrorFlushInterval = 5 * time.Second
	mirrorFlushRPS      = 10
)

// AuthorRowRepository stores batches of author rows durably.
type AuthorRowRepository interface {
	InsertAuthorRows(ctx context.Context, rows []model.OutputRow) error
}

// Mirror queues author rows into a batcher that flushes them to a repository
// off the event path. Inserts are best effort: a failed flush is logged by
// the batcher and the batch is dropped.
type Mirror struct {
	batcher *batcher.Batcher[model.OutputRow]
}

// NewMirror builds a Mirror flushing into the repository.
func NewMirror(repo AuthorRowRepository, logger *zap.Logger) *Mirror {
	return &Mirror{
		batcher: batcher.New(logger, repo.InsertAuthorRows, mirrorFlushSize, mirrorFlushInterval, mirrorFlushRPS),
	}
}

// Start begins the background flush loop.
func (m *Mirror) Start(ctx context.Context) {
	m.batcher.Start(ctx)
}

// Stop flushes pending rows and stops the background loop.
func (m *Mirror) Stop() {
	m.batcher.Stop()
}

// Append queues rows for mirroring.
func (m *Mirror) Append(rows []model.OutputRow) error {
	for _, row := range rows {
		if err := m.batcher.Add(context.Background(), row); err != nil {
			return err
		}
	}
	return nil
}
