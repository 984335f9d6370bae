package model

// Event is a decoded telemetry feed event. Only the two kinds below carry
// state changes; the aggregator ignores anything else.
type Event interface {
	isEvent()
}

// NodeAnnounce is an "added node" feed message: the feed assigned an ordinal
// to a node and reported its identity.
type NodeAnnounce struct {
	Ordinal uint64
	Name    string
	NodeID  string
}

// BlockImport is a "block import" feed message: a node reported seeing a
// block at the given propagation time.
type BlockImport struct {
	NodeOrdinal     uint64
	BlockNumber     uint64
	BlockHash       string
	PropagationTime uint64
}

func (NodeAnnounce) isEvent() {}
func (BlockImport) isEvent()  {}
