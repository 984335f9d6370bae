// Package model defines domain models for telemetry aggregation.
package model

import "math"

// PropTimeUnknown is the sentinel lowest propagation time carried by a block
// record until a real report arrives.
const PropTimeUnknown uint64 = math.MaxUint64

// NodeRecord is the announced identity of a feed node, keyed by the
// feed-session ordinal carried as a decimal string.
type NodeRecord struct {
	Name   string `json:"name"`
	NodeID string `json:"node_id"`
}

// Reporter is one node's lowest-time report of a block. Reporters only exist
// inside a BlockRecord's reporter set.
type Reporter struct {
	NodeOrdinal uint64 `json:"node_idx"`
	NodeName    string `json:"node_name"`
	NodeID      string `json:"node_id"`
	Timestamp   uint64 `json:"timestamp"`
}

// BlockRecord aggregates all reports observed for one block hash.
// Reporters holds only the nodes tied at LowestPropTime, in insertion order.
type BlockRecord struct {
	BlockNumber    uint64     `json:"block_number"`
	LowestPropTime uint64     `json:"lowest_prop_time"`
	Reporters      []Reporter `json:"reporters"`
	FirstSeen      uint64     `json:"first_seen"`
	ReportCount    uint64     `json:"report_count"`
	Finalized      bool       `json:"output"`
}

// OutputRow is one audit row appended to the output sink when a block record
// finalizes: one row per likely author.
type OutputRow struct {
	Timestamp       uint64
	NodeName        string
	NodeID          string
	BlockNumber     uint64
	BlockHash       string
	PropagationTime uint64
}
