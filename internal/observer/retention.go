package observer

import "sort"

// Prune bounds the ledger to the window highest-height records, evicting the
// rest regardless of their finalized flag. Evicting an open record is a
// deliberate, silent loss: blocks that far behind the tallest tracked height
// are no longer interesting. A later import for an evicted hash starts a
// fresh record. Returns the number of evicted records.
func (l *BlockLedger) Prune(window int) int {
	if len(l.blocks) <= window {
		return 0
	}

	type ranked struct {
		hash   string
		number uint64
	}
	all := make([]ranked, 0, len(l.blocks))
	for hash, record := range l.blocks {
		all = append(all, ranked{hash: hash, number: record.BlockNumber})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].number > all[j].number })

	evicted := 0
	for _, r := range all[window:] {
		delete(l.blocks, r.hash)
		evicted++
	}
	return evicted
}
