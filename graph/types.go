// Package graph implements the weighted, undirected, simple graph that
// backs a temporal adjacency graph.
//
// Adjacency is a hash map of NodeId to a sorted slice of (neighbour,
// weight) pairs, chosen to avoid the overhead a general-purpose graph
// library carries for directed/hypergraph/multigraph modes this domain
// never uses. The locking discipline (separate RWMutex for the node set
// and for edges/adjacency) keeps concurrent readers of adjacency from
// blocking on node-set mutation and vice versa.
package graph

import (
	"errors"
	"sync"

	"github.com/memgraph-project/memgraph/access"
)

// Sentinel errors for graph operations.
var (
	// ErrSelfLoop indicates an attempt to add an edge from a node to itself.
	ErrSelfLoop = errors.New("graph: self-loops are not allowed")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrMultiEdge is an internal invariant violation: the adjacency map
	// somehow recorded more than one weight for the same ordered pair.
	// This can only happen from a bug in this package; no function in this
	// package checks for it or returns it.
	ErrMultiEdge = errors.New("graph: multi-edge invariant violated")
)

// NodeId is re-exported from access for callers that only import graph.
type NodeId = access.NodeId

// neighbor pairs an adjacent node with the accumulated edge weight.
type neighbor struct {
	id     NodeId
	weight uint64
}

// Graph is an undirected, weighted, simple graph: no self-loops, no
// multi-edges (parallel co-occurrences are merged by summing weight).
//
// muNodes guards the node set and insertion order; muAdj guards the
// adjacency map, kept separate so a reader of adjacency never blocks on
// node-set mutation and vice versa.
type Graph struct {
	muNodes sync.RWMutex
	muAdj   sync.RWMutex

	order []NodeId          // insertion order, for stable iteration
	nodes map[NodeId]bool   // node set
	adj   map[NodeId][]neighbor
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[NodeId]bool),
		adj:   make(map[NodeId][]neighbor),
	}
}

// AddNode inserts id into the node set if absent. Idempotent.
func (g *Graph) AddNode(id NodeId) {
	g.muNodes.Lock()
	defer g.muNodes.Unlock()
	if g.nodes[id] {
		return
	}
	g.nodes[id] = true
	g.order = append(g.order, id)
}

// HasNode reports whether id is present in the node set.
func (g *Graph) HasNode(id NodeId) bool {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	return g.nodes[id]
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	return len(g.nodes)
}

// Nodes returns node ids in stable insertion order.
func (g *Graph) Nodes() []NodeId {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	out := make([]NodeId, len(g.order))
	copy(out, g.order)
	return out
}
