// Package graphlet counts induced subgraphs on 2, 3, and 4 nodes (the nine
// connected graphlets G0..G8) over a graph.Graph, either exactly or, for
// graphs beyond a size threshold, via edge sampling with extrapolation.
package graphlet

import (
	"errors"
	"fmt"
)

// ErrMultiEdgeInvariant names the condition of classification observing
// more edges among a candidate node set than the simple, no-multi-edge
// Graph invariant allows. Neither enumerator checks for that condition,
// so no function in this package returns this error.
var ErrMultiEdgeInvariant = errors.New("graphlet: multi-edge invariant violated")

// GraphletID identifies one of the nine connected graphlets on 2-4 nodes.
type GraphletID uint8

const (
	// G0 is a single edge (2 nodes, 1 edge).
	G0 GraphletID = iota
	// G1 is a 2-path / wedge (3 nodes, 2 edges).
	G1
	// G2 is a triangle (3 nodes, 3 edges).
	G2
	// G3 is a 3-path (4 nodes, 3 edges).
	G3
	// G4 is a 3-star / claw (4 nodes, 3 edges).
	G4
	// G5 is a 4-cycle (4 nodes, 4 edges).
	G5
	// G6 is a tailed triangle: a triangle with one pendant edge (4 nodes, 4 edges).
	G6
	// G7 is a diamond: K4 minus one edge (4 nodes, 5 edges).
	G7
	// G8 is a 4-clique (4 nodes, 6 edges).
	G8
)

// numGraphlets is the number of defined GraphletID values.
const numGraphlets = 9

// String renders the graphlet's canonical name.
func (id GraphletID) String() string {
	switch id {
	case G0:
		return "edge"
	case G1:
		return "2-path"
	case G2:
		return "triangle"
	case G3:
		return "3-path"
	case G4:
		return "3-star"
	case G5:
		return "4-cycle"
	case G6:
		return "tailed-triangle"
	case G7:
		return "diamond"
	case G8:
		return "4-clique"
	default:
		return fmt.Sprintf("GraphletID(%d)", uint8(id))
	}
}

// GraphletCount is a count (exact or extrapolated) for every graphlet
// identifier, G0 through G8. Every identifier is always present, zero
// if absent.
type GraphletCount struct {
	counts [numGraphlets]float64

	// Sampled is true when the counts were produced by the sampling
	// fallback rather than exact enumeration.
	Sampled bool
}

// Get returns the count for id.
func (c GraphletCount) Get(id GraphletID) float64 {
	return c.counts[id]
}

// set stores the count for id. Unexported: callers build a GraphletCount
// only through this package's enumerators.
func (c *GraphletCount) set(id GraphletID, v float64) {
	c.counts[id] = v
}

func (c *GraphletCount) add(id GraphletID, v float64) {
	c.counts[id] += v
}

// Total returns the sum of all nine counts.
func (c GraphletCount) Total() float64 {
	var t float64
	for _, v := range c.counts {
		t += v
	}
	return t
}

// All returns the nine counts in G0..G8 order.
func (c GraphletCount) All() [numGraphlets]float64 {
	return c.counts
}
