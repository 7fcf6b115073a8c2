package fixtures

import (
	"fmt"
	"math/rand"

	"github.com/memgraph-project/memgraph/graph"
)

const unitWeight = 1

// K4 returns the complete graph on 4 nodes {0,1,2,3}: every pair adjacent.
// Used by property-based tests as the canonical G8 (4-clique) fixture.
func K4() *graph.Graph {
	g := graph.New()
	for i := graph.NodeId(0); i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			_ = g.AddEdge(i, j, unitWeight)
		}
	}
	return g
}

// Path returns the simple path P_n on nodes 0..n-1: edges (i, i+1) for
// i = 0..n-2. Returns ErrTooFewNodes if n < 2.
func Path(n int) (*graph.Graph, error) {
	if n < 2 {
		return nil, fmt.Errorf("Path: n=%d < 2: %w", n, ErrTooFewNodes)
	}
	g := graph.New()
	for i := 0; i < n-1; i++ {
		if err := g.AddEdge(graph.NodeId(i), graph.NodeId(i+1), unitWeight); err != nil {
			return nil, fmt.Errorf("Path: AddEdge(%d,%d): %w", i, i+1, err)
		}
	}
	return g, nil
}

// Star returns the star S_n: hub node 0 with n-1 leaves 1..n-1, one edge
// per leaf. Returns ErrTooFewNodes if n < 2.
func Star(n int) (*graph.Graph, error) {
	if n < 2 {
		return nil, fmt.Errorf("Star: n=%d < 2: %w", n, ErrTooFewNodes)
	}
	g := graph.New()
	for leaf := 1; leaf < n; leaf++ {
		if err := g.AddEdge(0, graph.NodeId(leaf), unitWeight); err != nil {
			return nil, fmt.Errorf("Star: AddEdge(0,%d): %w", leaf, err)
		}
	}
	return g, nil
}

// Cycle returns the simple cycle C_n on nodes 0..n-1: edges (i, (i+1)%n)
// for i = 0..n-1. Returns ErrTooFewNodes if n < 3.
func Cycle(n int) (*graph.Graph, error) {
	if n < 3 {
		return nil, fmt.Errorf("Cycle: n=%d < 3: %w", n, ErrTooFewNodes)
	}
	g := graph.New()
	for i := 0; i < n; i++ {
		u, v := graph.NodeId(i), graph.NodeId((i+1)%n)
		if err := g.AddEdge(u, v, unitWeight); err != nil {
			return nil, fmt.Errorf("Cycle: AddEdge(%d,%d): %w", u, v, err)
		}
	}
	return g, nil
}

// RandomSparse samples an Erdos-Renyi-like graph over n nodes, including
// each unordered pair {i,j}, i<j, independently with probability p. The
// trial order (i asc, j asc) and seed fully determine the result.
// Returns ErrTooFewNodes if n < 1, ErrInvalidProbability if p is outside
// [0, 1].
func RandomSparse(n int, p float64, seed int64) (*graph.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("RandomSparse: n=%d < 1: %w", n, ErrTooFewNodes)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("RandomSparse: p=%.6f: %w", p, ErrInvalidProbability)
	}

	g := graph.New()
	for i := graph.NodeId(0); i < graph.NodeId(n); i++ {
		g.AddNode(i)
	}

	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				u, v := graph.NodeId(i), graph.NodeId(j)
				if err := g.AddEdge(u, v, unitWeight); err != nil {
					return nil, fmt.Errorf("RandomSparse: AddEdge(%d,%d): %w", u, v, err)
				}
			}
		}
	}
	return g, nil
}
