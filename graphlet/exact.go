package graphlet

import (
	"context"
	"sort"

	"github.com/memgraph-project/memgraph/graph"
)

// countExact enumerates every graphlet exactly, per the edge-anchored
// algorithm: 3-node counts are derived by classifying, at every node,
// each unordered pair of its neighbours as a wedge or a triangle leg;
// 4-node counts are derived by, for every edge, pairing up candidates
// drawn from the union of both endpoints' neighbourhoods.
func countExact(ctx context.Context, g *graph.Graph) (GraphletCount, error) {
	var out GraphletCount
	out.set(G0, float64(g.EdgeCount()))

	if err := count3Node(ctx, g, &out); err != nil {
		return GraphletCount{}, err
	}
	if err := count4Node(ctx, g, &out); err != nil {
		return GraphletCount{}, err
	}

	return out, nil
}

// count3Node fills in G1 (wedge) and G2 (triangle).
//
// Every unordered pair of neighbours {a,b} of a node v is examined exactly
// once (i<j over the sorted neighbour list). A wedge a-v-b is discovered
// only at its own centre v, so the raw wedge sum needs no correction. A
// triangle {x,y,z} is discovered once at each of its three vertices, so
// the raw triangle sum is divided by three.
func count3Node(ctx context.Context, g *graph.Graph, out *GraphletCount) error {
	var wedgeRaw, triangleRaw float64

	for _, v := range g.Nodes() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		neighbors, err := g.Neighbors(v)
		if err != nil {
			return err
		}
		for i := 0; i < len(neighbors); i++ {
			for j := i + 1; j < len(neighbors); j++ {
				a, b := neighbors[i], neighbors[j]
				if g.HasEdge(a, b) {
					triangleRaw++
				} else {
					wedgeRaw++
				}
			}
		}
	}

	out.set(G1, wedgeRaw)
	out.set(G2, triangleRaw/3)
	return nil
}

// count4Node fills in G3 through G8.
//
// A given 4-set can be reached from more than one of its internal edges
// (e.g. a diamond is discovered from any of its 5 edges), so visited
// tracks 4-sets already classified, keyed by their sorted node ids, to
// count each one exactly once regardless of which edge discovered it.
func count4Node(ctx context.Context, g *graph.Graph, out *GraphletCount) error {
	visited := make(map[[4]graph.NodeId]bool)

	for _, e := range g.Edges() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		u, v := e.U, e.V // canonical, u < v
		candidates, err := candidatePairs(g, u, v)
		if err != nil {
			return err
		}

		for i := 0; i < len(candidates); i++ {
			for j := i + 1; j < len(candidates); j++ {
				x, y := candidates[i], candidates[j]
				key := sortedFour(u, v, x, y)
				if visited[key] {
					continue
				}
				visited[key] = true
				classifyFourSet(g, u, v, x, y, out)
			}
		}
	}
	return nil
}

// sortedFour returns the four ids in ascending order, used as a
// dedup key independent of which edge discovered the 4-set.
func sortedFour(a, b, c, d graph.NodeId) [4]graph.NodeId {
	s := [4]graph.NodeId{a, b, c, d}
	sort.Slice(s[:], func(i, j int) bool { return s[i] < s[j] })
	return s
}

// candidatePairs returns the distinct neighbours of u or v, excluding u
// and v themselves, sorted for deterministic pairing order.
func candidatePairs(g *graph.Graph, u, v graph.NodeId) ([]graph.NodeId, error) {
	seen := make(map[graph.NodeId]bool)
	nu, err := g.Neighbors(u)
	if err != nil {
		return nil, err
	}
	nv, err := g.Neighbors(v)
	if err != nil {
		return nil, err
	}
	for _, n := range nu {
		if n != u && n != v {
			seen[n] = true
		}
	}
	for _, n := range nv {
		if n != u && n != v {
			seen[n] = true
		}
	}

	out := make([]graph.NodeId, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// classifyFourSet determines which of G3..G8 the induced subgraph on
// {u, v, x, y} matches and increments the corresponding counter. Sets
// inducing fewer than 3 edges (disconnected or near-empty) are not one of
// the nine graphlets and are skipped.
func classifyFourSet(g *graph.Graph, u, v, x, y graph.NodeId, out *GraphletCount) {
	eUV := true // u,v are connected by construction (the anchoring edge)
	eUX := g.HasEdge(u, x)
	eUY := g.HasEdge(u, y)
	eVX := g.HasEdge(v, x)
	eVY := g.HasEdge(v, y)
	eXY := g.HasEdge(x, y)

	edgeCount := 1
	for _, e := range []bool{eUX, eUY, eVX, eVY, eXY} {
		if e {
			edgeCount++
		}
	}
	if edgeCount < 3 {
		return
	}

	degU := b2i(eUV) + b2i(eUX) + b2i(eUY)
	degV := b2i(eUV) + b2i(eVX) + b2i(eVY)
	degX := b2i(eUX) + b2i(eVX) + b2i(eXY)
	degY := b2i(eUY) + b2i(eVY) + b2i(eXY)
	maxDeg := maxOf(degU, degV, degX, degY)

	switch edgeCount {
	case 3:
		if maxDeg == 3 {
			out.add(G4, 1) // 3-star: one node connected to the other three
		} else {
			out.add(G3, 1) // 3-path
		}
	case 4:
		if hasTriangleAmongFour(eUV, eUX, eUY, eVX, eVY, eXY) {
			out.add(G6, 1) // tailed triangle
		} else {
			out.add(G5, 1) // 4-cycle
		}
	case 5:
		out.add(G7, 1) // diamond
	case 6:
		out.add(G8, 1) // 4-clique
	}
}

// hasTriangleAmongFour reports whether any 3 of the 4 nodes are mutually
// connected, given the 6 pairwise adjacency flags for (u,v,x,y).
func hasTriangleAmongFour(eUV, eUX, eUY, eVX, eVY, eXY bool) bool {
	return (eUV && eUX && eVX) ||
		(eUV && eUY && eVY) ||
		(eUX && eUY && eXY) ||
		(eVX && eVY && eXY)
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

func maxOf(vs ...int) int {
	m := vs[0]
	for _, v := range vs[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
