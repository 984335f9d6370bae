package feed

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/telemetry-observer-backend/internal/model"
)

// Feed frame actions this observer cares about. Everything else is noise.
const (
	actionAddedNode   = 3
	actionBlockImport = 6
)

const minNodeDetails = 5

// DecodeFrame decodes one feed frame into a typed event. Frames carrying an
// uninteresting action, or a payload too short to use, decode to (nil, nil).
// Only structurally invalid JSON is reported as an error.
//
// Frame shape: a JSON array whose first element is the action code and whose
// second is the action payload.
//   - added node:   [3, [ordinal, [name, _, _, _, networkID, ...]]]
//   - block import: [6, [ordinal, [blockNumber, blockHash, _, _, propTime, ...]]]
func DecodeFrame(frame []byte) (model.Event, error) {
	var arr []json.RawMessage
	if err := json.Unmarshal(frame, &arr); err != nil {
		return nil, fmt.Errorf("frame is not a JSON array: %w", err)
	}
	if len(arr) < 2 {
		return nil, nil
	}

	action, ok := decodeUint(arr[0])
	if !ok {
		return nil, fmt.Errorf("frame action is not a number")
	}

	switch action {
	case actionAddedNode:
		return decodeNodeAnnounce(arr[1]), nil
	case actionBlockImport:
		return decodeBlockImport(arr[1]), nil
	default:
		return nil, nil
	}
}

func decodeNodeAnnounce(payload json.RawMessage) model.Event {
	var outer []json.RawMessage
	if err := json.Unmarshal(payload, &outer); err != nil || len(outer) < 2 {
		return nil
	}
	ordinal, ok := decodeUint(outer[0])
	if !ok {
		return nil
	}
	var details []json.RawMessage
	if err := json.Unmarshal(outer[1], &details); err != nil || len(details) < minNodeDetails {
		return nil
	}

	name, ok := decodeString(details[0])
	if !ok {
		name = "unknown"
	}

	// The network id slot is a plain string on some feeds and a list of
	// address strings on others.
	nodeID, ok := decodeString(details[4])
	if !ok {
		var parts []json.RawMessage
		if err := json.Unmarshal(details[4], &parts); err == nil {
			ids := make([]string, 0, len(parts))
			for _, p := range parts {
				if s, ok := decodeString(p); ok {
					ids = append(ids, s)
				}
			}
			nodeID = strings.Join(ids, ",")
		} else {
			nodeID = "unknown"
		}
	}

	return model.NodeAnnounce{Ordinal: ordinal, Name: name, NodeID: nodeID}
}

func decodeBlockImport(payload json.RawMessage) model.Event {
	var outer []json.RawMessage
	if err := json.Unmarshal(payload, &outer); err != nil || len(outer) < 2 {
		return nil
	}
	ordinal, _ := decodeUint(outer[0])

	var block []json.RawMessage
	if err := json.Unmarshal(outer[1], &block); err != nil || len(block) < 5 {
		return nil
	}

	// Unusable fields decode to zero values; the aggregator rejects events
	// with an empty hash or zero propagation time.
	number, _ := decodeUint(block[0])
	hash, _ := decodeString(block[1])
	propTime, _ := decodeUint(block[4])

	return model.BlockImport{
		NodeOrdinal:     ordinal,
		BlockNumber:     number,
		BlockHash:       hash,
		PropagationTime: propTime,
	}
}

func decodeUint(raw json.RawMessage) (uint64, bool) {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, false
	}
	v, err := strconv.ParseUint(n.String(), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func decodeString(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}
