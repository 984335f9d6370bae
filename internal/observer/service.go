// Package observer contains the aggregation core: it consumes decoded
// telemetry events, maintains the node registry and block ledger, decides
// when block records finalize, bounds memory via retention, and persists
// both stores across restarts.
package observer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/telemetry-observer-backend/internal/clock"
	"github.com/goodnatureofminers/telemetry-observer-backend/internal/model"
	"github.com/goodnatureofminers/telemetry-observer-backend/pkg/safe"
	"go.uber.org/zap"
)

// Service is the single owner of the registry and ledger. Events are applied
// one at a time: all effects of an event (mutation, sweep, retention,
// emission, persistence) complete before the next event is taken, so no
// locking is needed anywhere in the core.
type Service struct {
	logger    *zap.Logger
	registry  *NodeRegistry
	ledger    *BlockLedger
	snapshots SnapshotStore
	sink      OutputSink
	metrics   Metrics
	clock     clock.Clock
	window    int
}

// NewService restores both stores from their snapshots and builds the
// aggregation service. A missing or malformed snapshot yields an empty store,
// never a startup failure.
func NewService(snapshots SnapshotStore, sink OutputSink, metrics Metrics, clk clock.Clock, logger *zap.Logger) (*Service, error) {
	if snapshots == nil {
		return nil, errors.New("snapshot store is required")
	}
	if sink == nil {
		return nil, errors.New("output sink is required")
	}
	if metrics == nil {
		return nil, errors.New("observer metrics is required")
	}
	if clk == nil {
		clk = clock.System()
	}

	nodes, err := snapshots.LoadNodes()
	if err != nil {
		logger.Warn("nodes snapshot unreadable, starting empty", zap.Error(err))
	}
	blocks, err := snapshots.LoadBlocks()
	if err != nil {
		logger.Warn("blocks snapshot unreadable, starting empty", zap.Error(err))
	}

	s := &Service{
		logger:    logger,
		registry:  NewNodeRegistry(nodes),
		ledger:    NewBlockLedger(blocks),
		snapshots: snapshots,
		sink:      sink,
		metrics:   metrics,
		clock:     clk,
		window:    retentionWindow,
	}
	logger.Info("state restored",
		zap.Int("nodes", s.registry.Len()),
		zap.Int("blocks", s.ledger.Len()),
	)
	return s, nil
}

// Run consumes decoded events until the context is canceled or the event
// channel closes.
func (s *Service) Run(ctx context.Context, events <-chan model.Event) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			s.Apply(ev)
		}
	}
}

// Apply dispatches one decoded event. Unknown event kinds are ignored.
func (s *Service) Apply(ev model.Event) {
	started := time.Now()
	switch e := ev.(type) {
	case model.NodeAnnounce:
		s.applyNodeAnnounce(e)
		s.metrics.ObserveEvent("node_announce", started)
	case model.BlockImport:
		s.applyBlockImport(e)
		s.metrics.ObserveEvent("block_import", started)
	default:
		s.metrics.ObserveEvent("ignored", started)
	}
}

func (s *Service) applyNodeAnnounce(ev model.NodeAnnounce) {
	s.registry.Upsert(ev.Ordinal, ev.Name, ev.NodeID)
	s.logger.Debug("node announced",
		zap.Uint64("ordinal", ev.Ordinal),
		zap.String("name", ev.Name),
	)
	s.saveNodes()
}

func (s *Service) applyBlockImport(ev model.BlockImport) {
	now, err := safe.Uint64(s.clock.Now().Unix())
	if err != nil {
		s.logger.Warn("event time predates the epoch, dropping block import", zap.Error(err))
		return
	}
	reporter := s.reporterFor(ev.NodeOrdinal, now)

	rows, finalized := s.ledger.HandleBlockImport(reporter, ev.BlockNumber, ev.BlockHash, ev.PropagationTime, now)
	if finalized > 0 {
		s.metrics.AddBlocksFinalized(finalized)
	}
	if len(rows) > 0 {
		s.emit(rows)
	}

	if evicted := s.ledger.Prune(s.window); evicted > 0 {
		s.metrics.AddBlocksEvicted(evicted)
		s.logger.Debug("evicted old block records", zap.Int("evicted", evicted))
	}
	s.metrics.SetBlocksTracked(s.ledger.Len())

	s.saveNodes()
	s.saveBlocks()

	s.logger.Debug("block import applied",
		zap.Uint64("block", ev.BlockNumber),
		zap.String("hash", ev.BlockHash),
		zap.Int("tracked", s.ledger.Len()),
		zap.Int("open", s.ledger.Open()),
		zap.Int("rows", len(rows)),
	)
}

// reporterFor resolves the announced identity for an ordinal, substituting
// placeholders when the node never announced itself on this feed session.
func (s *Service) reporterFor(ordinal uint64, now uint64) model.Reporter {
	reporter := model.Reporter{
		NodeOrdinal: ordinal,
		NodeName:    fmt.Sprintf("unknown_node_%d", ordinal),
		NodeID:      unknownNodeID,
		Timestamp:   now,
	}
	if record, ok := s.registry.Lookup(ordinal); ok {
		reporter.NodeName = record.Name
		reporter.NodeID = record.NodeID
	}
	return reporter
}

// emit forwards rows to the sink. A failed write is logged and not retried:
// at-most-once emission, durability loss over stalled ingestion.
func (s *Service) emit(rows []model.OutputRow) {
	started := time.Now()
	err := s.sink.Append(rows)
	s.metrics.ObserveSinkAppend(err, len(rows), started)
	if err != nil {
		s.logger.Error("output rows dropped", zap.Int("rows", len(rows)), zap.Error(err))
		return
	}
	s.metrics.AddRowsEmitted(len(rows))
	s.logger.Info("author rows written", zap.Int("rows", len(rows)))
}

func (s *Service) saveNodes() {
	started := time.Now()
	err := s.snapshots.SaveNodes(s.registry.Snapshot())
	s.metrics.ObserveSnapshotSave("nodes", err, started)
	if err != nil {
		s.logger.Error("nodes snapshot failed", zap.Error(err))
	}
}

func (s *Service) saveBlocks() {
	started := time.Now()
	err := s.snapshots.SaveBlocks(s.ledger.Snapshot())
	s.metrics.ObserveSnapshotSave("blocks", err, started)
	if err != nil {
		s.logger.Error("blocks snapshot failed", zap.Error(err))
	}
}
