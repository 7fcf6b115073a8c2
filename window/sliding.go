package window

import "github.com/memgraph-project/memgraph/access"

// Sliding maintains a FIFO of the Size-1 most recent preceding node ids
// and, for every arrival, emits one co-occurrence with each distinct id
// currently in that FIFO (pairing the arrival at position i with every
// position in max(0, i-W+1)..i-1). Contiguous identical accesses
// contribute nothing because the arriving id is excluded from its own
// preceding-window set.
type Sliding struct {
	Size int

	queue  []access.NodeId
	counts map[access.NodeId]int
}

// NewSliding returns a Sliding window of the given size (W >= 2).
func NewSliding(size int) *Sliding {
	return &Sliding{
		Size:   size,
		counts: make(map[access.NodeId]int),
	}
}

// Arrive implements Strategy.
func (s *Sliding) Arrive(id access.NodeId, emit EmitFunc) {
	for y, c := range s.counts {
		if c > 0 && y != id {
			emit(Pair{U: id, V: y})
		}
	}
	s.push(id)
}

// Flush implements Strategy: sliding windows emit continuously, so there
// is nothing left to flush at end of stream.
func (s *Sliding) Flush(EmitFunc) {}

// Reset implements Strategy.
func (s *Sliding) Reset() {
	s.queue = s.queue[:0]
	for k := range s.counts {
		delete(s.counts, k)
	}
}

// push appends id to the FIFO and evicts the oldest entry if the FIFO
// exceeds its capacity (Size-1 preceding positions).
func (s *Sliding) push(id access.NodeId) {
	s.queue = append(s.queue, id)
	s.counts[id]++
	s.evictTo(s.Size - 1)
}

// evictTo trims the front of the FIFO until its length is at most cap.
func (s *Sliding) evictTo(capacity int) {
	if capacity < 0 {
		capacity = 0
	}
	for len(s.queue) > capacity {
		old := s.queue[0]
		s.queue = s.queue[1:]
		s.counts[old]--
		if s.counts[old] == 0 {
			delete(s.counts, old)
		}
	}
}
