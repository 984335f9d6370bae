package observer

import (
	"strconv"

	"github.com/goodnatureofminers/telemetry-observer-backend/internal/model"
)

// NodeRegistry maps a feed-session node ordinal to its announced identity.
// Records are overwritten on re-announce and never deleted.
type NodeRegistry struct {
	nodes map[string]model.NodeRecord
}

// NewNodeRegistry builds a registry seeded from a restored snapshot.
func NewNodeRegistry(nodes map[string]model.NodeRecord) *NodeRegistry {
	if nodes == nil {
		nodes = make(map[string]model.NodeRecord)
	}
	return &NodeRegistry{nodes: nodes}
}

// Upsert inserts or overwrites the record for the ordinal.
func (r *NodeRegistry) Upsert(ordinal uint64, name, nodeID string) {
	r.nodes[ordinalKey(ordinal)] = model.NodeRecord{Name: name, NodeID: nodeID}
}

// Lookup returns the stored record for the ordinal, if any.
func (r *NodeRegistry) Lookup(ordinal uint64) (model.NodeRecord, bool) {
	record, ok := r.nodes[ordinalKey(ordinal)]
	return record, ok
}

// Len returns the number of known nodes.
func (r *NodeRegistry) Len() int {
	return len(r.nodes)
}

// Snapshot returns a copy of the registry suitable for persisting.
func (r *NodeRegistry) Snapshot() map[string]model.NodeRecord {
	out := make(map[string]model.NodeRecord, len(r.nodes))
	for k, v := range r.nodes {
		out[k] = v
	}
	return out
}

// Ordinals are feed-session scoped integers but travel as opaque string keys
// in snapshots, matching the persisted layout.
func ordinalKey(ordinal uint64) string {
	return strconv.FormatUint(ordinal, 10)
}
