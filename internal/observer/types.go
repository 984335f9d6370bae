package observer

import (
	"time"

	"github.com/goodnatureofminers/telemetry-observer-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// SnapshotStore persists the node registry and block ledger as full
	// replacements and restores them at startup. A load error means the
	// returned map is empty, never partial.
	SnapshotStore interface {
		LoadNodes() (map[string]model.NodeRecord, error)
		LoadBlocks() (map[string]model.BlockRecord, error)
		SaveNodes(nodes map[string]model.NodeRecord) error
		SaveBlocks(blocks map[string]model.BlockRecord) error
	}

	// OutputSink appends finalized author rows in the order produced.
	OutputSink interface {
		Append(rows []model.OutputRow) error
	}

	// Metrics tracks observer event processing.
	Metrics interface {
		ObserveEvent(kind string, started time.Time)
		ObserveSinkAppend(err error, rows int, started time.Time)
		ObserveSnapshotSave(store string, err error, started time.Time)
		SetBlocksTracked(count int)
		AddBlocksFinalized(count int)
		AddBlocksEvicted(count int)
		AddRowsEmitted(count int)
	}
)
