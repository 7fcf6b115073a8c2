package window

import "github.com/memgraph-project/memgraph/access"

// Adaptive behaves like Sliding but resizes its window between accesses
// based on a running estimate of locality: the fraction of arrivals whose
// id was already present in the window. High locality (little new working
// set) shrinks the window; low locality (mostly new ids) grows it.
//
// Locality is sampled once per full cycle of currentSize arrivals, then
// the window grows or shrinks by one (or keeps its size when locality lies
// between the thresholds or the size is at a bound) and the cycle
// counters reset.
// This keeps the resize decision independent of trace length and applies
// changes only between accesses, never mid-window.
type Adaptive struct {
	base int // W, the initial and reference size (bounds max is 4*W)

	currentSize int
	minSize     int
	maxSize     int

	queue  []access.NodeId
	counts map[access.NodeId]int

	arrivalsInCycle int
	hitsInCycle     int
}

// NewAdaptive returns an Adaptive window seeded with base size w (w >= 2).
// The window is bounded to [2, 4w].
func NewAdaptive(w int) *Adaptive {
	minSize := 2
	if w < minSize {
		w = minSize
	}
	return &Adaptive{
		base:        w,
		currentSize: w,
		minSize:     minSize,
		maxSize:     4 * w,
		counts:      make(map[access.NodeId]int),
	}
}

// Arrive implements Strategy.
func (a *Adaptive) Arrive(id access.NodeId, emit EmitFunc) {
	_, inWindow := a.counts[id]

	for y, c := range a.counts {
		if c > 0 && y != id {
			emit(Pair{U: id, V: y})
		}
	}

	a.push(id)

	a.arrivalsInCycle++
	if inWindow {
		a.hitsInCycle++
	}
	if a.arrivalsInCycle >= a.currentSize {
		a.resize()
	}
}

// Flush implements Strategy: like Sliding, Adaptive emits continuously.
func (a *Adaptive) Flush(EmitFunc) {}

// Reset implements Strategy, restoring the window to its initial size.
func (a *Adaptive) Reset() {
	a.currentSize = a.base
	a.queue = a.queue[:0]
	for k := range a.counts {
		delete(a.counts, k)
	}
	a.arrivalsInCycle = 0
	a.hitsInCycle = 0
}

// resize evaluates the current cycle's locality and grows or shrinks the
// window by one step, then starts a fresh cycle. Locality above 0.75
// shrinks toward minSize; below 0.25 grows toward maxSize; in between the
// window is left unchanged.
func (a *Adaptive) resize() {
	locality := float64(a.hitsInCycle) / float64(a.arrivalsInCycle)
	switch {
	case locality > 0.75:
		if a.currentSize > a.minSize {
			a.currentSize--
		}
	case locality < 0.25:
		if a.currentSize < a.maxSize {
			a.currentSize++
		}
	}
	a.arrivalsInCycle = 0
	a.hitsInCycle = 0
	a.evictTo(a.currentSize - 1)
}

func (a *Adaptive) push(id access.NodeId) {
	a.queue = append(a.queue, id)
	a.counts[id]++
	a.evictTo(a.currentSize - 1)
}

func (a *Adaptive) evictTo(capacity int) {
	if capacity < 0 {
		capacity = 0
	}
	for len(a.queue) > capacity {
		old := a.queue[0]
		a.queue = a.queue[1:]
		a.counts[old]--
		if a.counts[old] == 0 {
			delete(a.counts, old)
		}
	}
}
