package graphlet

import (
	"context"
	"math/rand"

	"github.com/memgraph-project/memgraph/graph"
)

// countSampled estimates every graphlet count by drawing sampleSize edges
// uniformly with replacement and locally applying the same edge-anchored
// classification used by countExact, then extrapolating by |E|/S.
//
// The visited-set deduplication of the exact 4-node algorithm is not
// applicable here (each sampled edge is examined independently, so the
// same 4-set may be rediscovered by more than one sample); instead each
// 4-node observation is divided by the number of edges its shape can be
// reached from (see classifyFourSetWeighted). This is why the output is a
// float64 estimate rather than an exact integer count.
func countSampled(ctx context.Context, g *graph.Graph, sampleSize int, seed int64) (GraphletCount, error) {
	var out GraphletCount
	out.Sampled = true

	edges := g.Edges()
	out.set(G0, float64(len(edges)))
	if len(edges) == 0 {
		return out, nil
	}

	rng := rand.New(rand.NewSource(seed))
	scale := float64(len(edges)) / float64(sampleSize)

	for i := 0; i < sampleSize; i++ {
		if i%1024 == 0 {
			select {
			case <-ctx.Done():
				return GraphletCount{}, ctx.Err()
			default:
			}
		}

		e := edges[rng.Intn(len(edges))]
		sampleAroundEdge(g, e.U, e.V, scale, &out)
	}

	return out, nil
}

// sampleAroundEdge accumulates weighted 3-node and 4-node observations
// anchored at edge (u, v), mirroring countExact's local classification but
// without deduplicating across samples.
func sampleAroundEdge(g *graph.Graph, u, v graph.NodeId, weight float64, out *GraphletCount) {
	nu, err := g.Neighbors(u)
	if err != nil {
		return
	}
	nv, err := g.Neighbors(v)
	if err != nil {
		return
	}

	// 3-node contribution: classify u's and v's neighbours against the
	// other endpoint, using half weight per endpoint since each sampled
	// edge inspects two centres.
	classifyWedgesAndTriangles(g, u, v, nu, weight/2, out)
	classifyWedgesAndTriangles(g, v, u, nv, weight/2, out)

	// 4-node contribution: pair candidates from the union of both
	// neighbourhoods, as in the exact algorithm, but scaled and without
	// the visited-set deduplication.
	seen := make(map[graph.NodeId]bool, len(nu)+len(nv))
	candidates := make([]graph.NodeId, 0, len(nu)+len(nv))
	for _, n := range nu {
		if n != u && n != v && !seen[n] {
			seen[n] = true
			candidates = append(candidates, n)
		}
	}
	for _, n := range nv {
		if n != u && n != v && !seen[n] {
			seen[n] = true
			candidates = append(candidates, n)
		}
	}

	for i := 0; i < len(candidates); i++ {
		for j := i + 1; j < len(candidates); j++ {
			classifyFourSetWeighted(g, u, v, candidates[i], candidates[j], weight, out)
		}
	}
}

// classifyWedgesAndTriangles is the sampling analogue of the exact
// per-centre loop in count3Node, restricted to the pairs {exclude, w} for
// each neighbour w of centre other than exclude: a triangle when exclude
// and w are adjacent, a wedge centred on centre otherwise.
func classifyWedgesAndTriangles(g *graph.Graph, centre, exclude graph.NodeId, neighbors []graph.NodeId, weight float64, out *GraphletCount) {
	for _, w := range neighbors {
		if w == exclude {
			continue
		}
		if g.HasEdge(exclude, w) {
			out.add(G2, weight/3) // triangle, discounted for its 3 centres
		} else {
			out.add(G1, weight)
		}
	}
}

// classifyFourSetWeighted is classifyFourSet with a float weight instead
// of a unit increment, for extrapolated sampling. A 4-set is reached only
// from those of its edges whose endpoints together neighbour the other two
// nodes: 1 such edge for a 3-path, 3 for a 3-star or tailed triangle, 4 for
// a 4-cycle, 5 for a diamond, 6 for a 4-clique. weight is divided by that
// number so every 4-set contributes weight once in expectation.
func classifyFourSetWeighted(g *graph.Graph, u, v, x, y graph.NodeId, weight float64, out *GraphletCount) {
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

	degU := b2i(true) + b2i(eUX) + b2i(eUY)
	degV := b2i(true) + b2i(eVX) + b2i(eVY)
	degX := b2i(eUX) + b2i(eVX) + b2i(eXY)
	degY := b2i(eUY) + b2i(eVY) + b2i(eXY)
	maxDeg := maxOf(degU, degV, degX, degY)

	switch edgeCount {
	case 3:
		if maxDeg == 3 {
			out.add(G4, weight/3)
		} else {
			out.add(G3, weight)
		}
	case 4:
		if hasTriangleAmongFour(true, eUX, eUY, eVX, eVY, eXY) {
			out.add(G6, weight/3)
		} else {
			out.add(G5, weight/4)
		}
	case 5:
		out.add(G7, weight/5)
	case 6:
		out.add(G8, weight/6)
	}
}
