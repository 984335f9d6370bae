package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/telemetry-observer-backend/internal/model"
)

// InsertAuthorRows stores author rows in ClickHouse.
func (r *Repository) InsertAuthorRows(ctx context.Context, rows []model.OutputRow) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_author_rows", err, start)
	}()

	if len(rows) == 0 {
		return nil
	}

	const query = `
INSERT INTO telemetry_author_rows (
	timestamp,
	node_name,
	node_id,
	block_number,
	block_hash,
	propagation_time
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare author rows batch: %w", err)
	}

	for _, row := range rows {
		if err = batch.Append(
			row.Timestamp,
			row.NodeName,
			row.NodeID,
			row.BlockNumber,
			row.BlockHash,
			row.PropagationTime,
		); err != nil {
			return fmt.Errorf("append author row: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert author rows: %w", err)
	}
	return nil
}
