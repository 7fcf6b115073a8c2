package graph

import (
	"fmt"
	"sort"
)

// Edge is a materialized, read-only view of an edge for iteration.
// U is always the smaller NodeId, by convention, so callers get a stable
// canonical orientation regardless of insertion order.
type Edge struct {
	U, V   NodeId
	Weight uint64
}

// AddEdge inserts an edge between u and v with the given weight, or —
// if the edge already exists — adds weight to the existing edge, so
// repeated co-occurrences merge instead of producing parallel edges.
// Endpoints are inserted lazily if absent. Returns ErrSelfLoop if u == v.
func (g *Graph) AddEdge(u, v NodeId, weight uint64) error {
	if u == v {
		return ErrSelfLoop
	}
	g.AddNode(u)
	g.AddNode(v)

	g.muAdj.Lock()
	defer g.muAdj.Unlock()
	g.addWeightLocked(u, v, weight)
	g.addWeightLocked(v, u, weight)

	return nil
}

// IncrementEdge is AddEdge(u, v, 1) — the operation the builder performs
// once per co-occurrence pair.
func (g *Graph) IncrementEdge(u, v NodeId) error {
	return g.AddEdge(u, v, 1)
}

// addWeightLocked adds weight to the (from, to) adjacency entry, creating
// it if absent. Caller must hold muAdj.
func (g *Graph) addWeightLocked(from, to NodeId, weight uint64) {
	list := g.adj[from]
	for i := range list {
		if list[i].id == to {
			list[i].weight += weight
			return
		}
	}
	list = append(list, neighbor{id: to, weight: weight})
	sort.Slice(list, func(i, j int) bool { return list[i].id < list[j].id })
	g.adj[from] = list
}

// HasEdge reports whether an edge exists between u and v.
func (g *Graph) HasEdge(u, v NodeId) bool {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	return findWeight(g.adj[u], v) >= 0
}

// Weight returns the weight of edge (u, v) and whether it exists.
func (g *Graph) Weight(u, v NodeId) (uint64, bool) {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	idx := findWeight(g.adj[u], v)
	if idx < 0 {
		return 0, false
	}
	return g.adj[u][idx].weight, true
}

func findWeight(list []neighbor, id NodeId) int {
	// list is sorted by id; linear scan is fine since real degrees are small
	// relative to node count for the traces this package targets, and it
	// avoids a second data structure per node.
	for i := range list {
		if list[i].id == id {
			return i
		}
	}
	return -1
}

// Degree returns the number of distinct neighbours of v. Returns
// ErrNodeNotFound if v is absent.
func (g *Graph) Degree(v NodeId) (int, error) {
	if !g.HasNode(v) {
		return 0, fmt.Errorf("%w: %d", ErrNodeNotFound, v)
	}
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	return len(g.adj[v]), nil
}

// Neighbors returns the ids adjacent to v, sorted ascending for
// deterministic iteration. Returns ErrNodeNotFound if v is absent.
func (g *Graph) Neighbors(v NodeId) ([]NodeId, error) {
	if !g.HasNode(v) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, v)
	}
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	list := g.adj[v]
	out := make([]NodeId, len(list))
	for i, n := range list {
		out[i] = n.id
	}
	return out, nil
}

// NeighborWeight pairs a neighbour id with the edge weight to it.
type NeighborWeight struct {
	Neighbor NodeId
	Weight   uint64
}

// EdgesOf returns (neighbour, weight) pairs incident to v, sorted by
// neighbour id. Returns ErrNodeNotFound if v is absent.
func (g *Graph) EdgesOf(v NodeId) ([]NeighborWeight, error) {
	if !g.HasNode(v) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, v)
	}
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	list := g.adj[v]
	out := make([]NeighborWeight, len(list))
	for i, n := range list {
		out[i] = NeighborWeight{Neighbor: n.id, Weight: n.weight}
	}
	return out, nil
}

// EdgeCount returns the total number of undirected edges.
func (g *Graph) EdgeCount() int {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	total := 0
	for u, list := range g.adj {
		for _, n := range list {
			if u < n.id {
				total++
			}
		}
	}
	return total
}

// Edges returns every edge exactly once, canonically oriented (U < V) and
// sorted by (U, V) for deterministic enumeration order.
func (g *Graph) Edges() []Edge {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	out := make([]Edge, 0, len(g.adj))
	for u, list := range g.adj {
		for _, n := range list {
			if u < n.id {
				out = append(out, Edge{U: u, V: n.id, Weight: n.weight})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})
	return out
}

// Density returns 2|E| / (|V|(|V|-1)) for |V| >= 2, else 0.
func (g *Graph) Density() float64 {
	n := g.NodeCount()
	if n < 2 {
		return 0
	}
	e := g.EdgeCount()
	return 2 * float64(e) / (float64(n) * float64(n-1))
}

// MeanDegree returns the average node degree, 0 for an empty graph.
func (g *Graph) MeanDegree() float64 {
	n := g.NodeCount()
	if n == 0 {
		return 0
	}
	return 2 * float64(g.EdgeCount()) / float64(n)
}

// FilterEdges removes every edge for which keep returns false. Used by
// the builder to apply the post-hoc minimum-edge-weight threshold after
// the whole trace has been consumed, not as an online filter.
func (g *Graph) FilterEdges(keep func(Edge) bool) {
	doomed := make([]Edge, 0)
	for _, e := range g.Edges() {
		if !keep(e) {
			doomed = append(doomed, e)
		}
	}

	g.muAdj.Lock()
	defer g.muAdj.Unlock()
	for _, e := range doomed {
		g.adj[e.U] = removeNeighbor(g.adj[e.U], e.V)
		g.adj[e.V] = removeNeighbor(g.adj[e.V], e.U)
	}
}

func removeNeighbor(list []neighbor, id NodeId) []neighbor {
	for i := range list {
		if list[i].id == id {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
