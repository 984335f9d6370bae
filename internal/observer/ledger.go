package observer

import (
	"github.com/goodnatureofminers/telemetry-observer-backend/internal/model"
)

// BlockLedger aggregates per-block reporting state keyed by block hash.
// Each record tracks the reporters tied at the lowest propagation time seen
// so far; once a record finalizes its author rows are emitted exactly once.
type BlockLedger struct {
	blocks map[string]*model.BlockRecord
}

// NewBlockLedger builds a ledger seeded from a restored snapshot.
func NewBlockLedger(blocks map[string]model.BlockRecord) *BlockLedger {
	l := &BlockLedger{blocks: make(map[string]*model.BlockRecord, len(blocks))}
	for hash, record := range blocks {
		r := record
		l.blocks[hash] = &r
	}
	return l
}

// HandleBlockImport applies one block import report and runs the finalization
// sweep over every open record. It returns the author rows emitted by records
// that finalized during this event, in ledger-iteration order, together with
// the number of records that finalized. The count can exceed the distinct
// hashes in the rows: a restored record may finalize with no reporters.
//
// Events with an empty hash or a zero propagation time carry no usable
// signal and are dropped without touching any state.
func (l *BlockLedger) HandleBlockImport(reporter model.Reporter, blockNumber uint64, blockHash string, propTime uint64, now uint64) ([]model.OutputRow, int) {
	if blockHash == "" || propTime == 0 {
		return nil, 0
	}

	record, ok := l.blocks[blockHash]
	if !ok {
		record = &model.BlockRecord{
			BlockNumber:    blockNumber,
			LowestPropTime: model.PropTimeUnknown,
			FirstSeen:      now,
		}
		l.blocks[blockHash] = record
	}

	record.ReportCount++

	switch {
	case propTime < record.LowestPropTime:
		record.LowestPropTime = propTime
		record.Reporters = []model.Reporter{reporter}
	case propTime == record.LowestPropTime:
		if !hasReporter(record.Reporters, reporter.NodeOrdinal) {
			record.Reporters = append(record.Reporters, reporter)
		}
	}

	return l.sweep(now)
}

// sweep finalizes every open record that is ready: enough reports, open for
// too long, or more than one block behind the tallest tracked height.
func (l *BlockLedger) sweep(now uint64) ([]model.OutputRow, int) {
	var maxBlockNumber uint64
	for _, record := range l.blocks {
		if record.BlockNumber > maxBlockNumber {
			maxBlockNumber = record.BlockNumber
		}
	}

	var rows []model.OutputRow
	finalized := 0
	for hash, record := range l.blocks {
		if record.Finalized {
			continue
		}
		age := saturatingSub(now, record.FirstSeen)
		if record.ReportCount < finalizeReportCount &&
			age <= finalizeMaxAgeSeconds &&
			record.BlockNumber >= saturatingSub(maxBlockNumber, 1) {
			continue
		}
		for _, reporter := range record.Reporters {
			rows = append(rows, model.OutputRow{
				Timestamp:       reporter.Timestamp,
				NodeName:        reporter.NodeName,
				NodeID:          reporter.NodeID,
				BlockNumber:     record.BlockNumber,
				BlockHash:       hash,
				PropagationTime: record.LowestPropTime,
			})
		}
		record.Finalized = true
		finalized++
	}
	return rows, finalized
}

// Len returns the number of tracked block records.
func (l *BlockLedger) Len() int {
	return len(l.blocks)
}

// Open returns how many tracked records have not finalized yet.
func (l *BlockLedger) Open() int {
	open := 0
	for _, record := range l.blocks {
		if !record.Finalized {
			open++
		}
	}
	return open
}

// Snapshot returns a deep copy of the ledger suitable for persisting.
func (l *BlockLedger) Snapshot() map[string]model.BlockRecord {
	out := make(map[string]model.BlockRecord, len(l.blocks))
	for hash, record := range l.blocks {
		r := *record
		r.Reporters = append([]model.Reporter(nil), record.Reporters...)
		out[hash] = r
	}
	return out
}

func hasReporter(reporters []model.Reporter, ordinal uint64) bool {
	for _, r := range reporters {
		if r.NodeOrdinal == ordinal {
			return true
		}
	}
	return false
}

func saturatingSub(a, b uint64) uint64 {
	if a < b {
		return 0
	}
	return a - b
}
