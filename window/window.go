// Package window implements the three co-occurrence windowing strategies:
// fixed, sliding, and adaptive. Each strategy consumes coarsened NodeIds
// one at a time (as the builder streams them from the access trace) and
// emits unordered co-occurrence pairs through a callback, so no strategy
// ever materializes the whole trace in memory.
package window

import "github.com/memgraph-project/memgraph/access"

// Pair is an unordered co-occurrence between two distinct nodes.
type Pair struct {
	U, V access.NodeId
}

// EmitFunc receives one co-occurrence pair. It is called at most once per
// pair per window: duplicate pairs within the same window are counted
// once, never once per repeated occurrence.
type EmitFunc func(Pair)

// Strategy groups temporally adjacent accesses and emits one co-occurrence
// per unordered pair of distinct nodes that fall in the same window.
//
// Arrive is called once per incoming (already coarsened) node, in stream
// order. Implementations keep only bounded state (the sliding window
// keeps at most W recent distinct ids) so a strategy scales with window
// size, not trace length.
type Strategy interface {
	// Arrive processes the next coarsened node id and emits any new
	// co-occurrence pairs it causes via emit.
	Arrive(id access.NodeId, emit EmitFunc)

	// Flush emits any co-occurrences implied by a partial trailing window
	// (fixed windows accumulate a batch before emitting; the last,
	// possibly short, batch is only known to be complete once the stream
	// ends). Sliding and adaptive windows emit on every arrival and have
	// nothing to flush.
	Flush(emit EmitFunc)

	// Reset clears internal state, allowing a Strategy to be reused
	// across builds without reallocation.
	Reset()
}
