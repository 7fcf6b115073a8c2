package window

import "github.com/memgraph-project/memgraph/access"

// Fixed partitions the access stream into non-overlapping contiguous
// groups of Size accesses. Every unordered pair of distinct NodeIds within
// a group contributes one co-occurrence.
type Fixed struct {
	Size int

	batch []access.NodeId
}

// NewFixed returns a Fixed window of the given size. Size must be >= 2;
// validation happens in builder.Config, not here, since Strategy values
// are plain data structures with no error-returning constructor of their
// own.
func NewFixed(size int) *Fixed {
	return &Fixed{Size: size}
}

// Arrive implements Strategy.
func (f *Fixed) Arrive(id access.NodeId, emit EmitFunc) {
	f.batch = append(f.batch, id)
	if len(f.batch) >= f.Size {
		emitUniquePairs(f.batch, emit)
		f.batch = f.batch[:0]
	}
}

// Flush implements Strategy.
func (f *Fixed) Flush(emit EmitFunc) {
	if len(f.batch) > 0 {
		emitUniquePairs(f.batch, emit)
		f.batch = f.batch[:0]
	}
}

// Reset implements Strategy.
func (f *Fixed) Reset() {
	f.batch = f.batch[:0]
}

// emitUniquePairs emits every unordered pair of distinct ids appearing in
// batch, exactly once regardless of how many times each id repeats.
func emitUniquePairs(batch []access.NodeId, emit EmitFunc) {
	seen := make(map[access.NodeId]bool, len(batch))
	unique := make([]access.NodeId, 0, len(batch))
	for _, id := range batch {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	for i := 0; i < len(unique); i++ {
		for j := i + 1; j < len(unique); j++ {
			emit(Pair{U: unique[i], V: unique[j]})
		}
	}
}
