package graphlet_test

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/memgraph-project/memgraph/fixtures"
	"github.com/memgraph-project/memgraph/graph"
	"github.com/memgraph-project/memgraph/graphlet"
)

// bruteForceCounts independently recomputes all nine graphlet counts by
// exhaustively examining every 3- and 4-node subset of g, classifying
// each induced subgraph by edge count, degree sequence, and (only where
// edge count alone is ambiguous) an explicit connectivity check. It
// shares no code with the package's own exact or sampled enumerators, so
// agreement between the two is a genuine cross-check rather than a
// restatement of the same logic. O(n^4): fine for the graph sizes used
// here, not meant for production use.
func bruteForceCounts(g *graph.Graph) [9]float64 {
	nodes := g.Nodes()
	n := len(nodes)

	idx := make(map[graph.NodeId]int, n)
	for i, id := range nodes {
		idx[id] = i
	}
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	for _, e := range g.Edges() {
		i, j := idx[e.U], idx[e.V]
		adj[i][j] = true
		adj[j][i] = true
	}

	var counts [9]float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if adj[i][j] {
				counts[graphlet.G0]++
			}
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				classifyTripleIdx(adj, i, j, k, &counts)
			}
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				for l := k + 1; l < n; l++ {
					classifyQuadIdx(adj, i, j, k, l, &counts)
				}
			}
		}
	}
	return counts
}

func classifyTripleIdx(adj [][]bool, a, b, c int, counts *[9]float64) {
	edges := 0
	if adj[a][b] {
		edges++
	}
	if adj[b][c] {
		edges++
	}
	if adj[a][c] {
		edges++
	}
	switch edges {
	case 2:
		counts[graphlet.G1]++
	case 3:
		counts[graphlet.G2]++
	}
}

func classifyQuadIdx(adj [][]bool, a, b, c, d int, counts *[9]float64) {
	ab, ac, ad := adj[a][b], adj[a][c], adj[a][d]
	bc, bd, cd := adj[b][c], adj[b][d], adj[c][d]

	edgeCount := 0
	for _, e := range []bool{ab, ac, ad, bc, bd, cd} {
		if e {
			edgeCount++
		}
	}
	if edgeCount < 3 {
		return
	}

	// degree[0..3] tracks a,b,c,d respectively; positional, no lookup needed.
	var degree [4]int
	if ab {
		degree[0]++
		degree[1]++
	}
	if ac {
		degree[0]++
		degree[2]++
	}
	if ad {
		degree[0]++
		degree[3]++
	}
	if bc {
		degree[1]++
		degree[2]++
	}
	if bd {
		degree[1]++
		degree[3]++
	}
	if cd {
		degree[2]++
		degree[3]++
	}

	hasTriangle := (ab && ac && bc) || (ab && ad && bd) || (ac && ad && cd) || (bc && bd && cd)

	switch edgeCount {
	case 3:
		for _, deg := range degree {
			if deg == 0 {
				return // triangle plus an isolated vertex: disconnected, not a graphlet
			}
		}
		maxDeg := 0
		for _, deg := range degree {
			if deg > maxDeg {
				maxDeg = deg
			}
		}
		if maxDeg == 3 {
			counts[graphlet.G4]++
		} else {
			counts[graphlet.G3]++
		}
	case 4:
		if hasTriangle {
			counts[graphlet.G6]++
		} else {
			counts[graphlet.G5]++
		}
	case 5:
		counts[graphlet.G7]++
	case 6:
		counts[graphlet.G8]++
	}
}

func TestEnumerate_MatchesBruteForceOnRandomGraphs(t *testing.T) {
	cases := []struct {
		n    int
		p    float64
		seed int64
	}{
		{n: 10, p: 0.5, seed: 1},
		{n: 16, p: 0.3, seed: 2},
		{n: 25, p: 0.2, seed: 3},
		{n: 40, p: 0.15, seed: 4},
		{n: 64, p: 0.1, seed: 5},
		{n: 100, p: 0.08, seed: 6},
		{n: 150, p: 0.05, seed: 7},
		{n: 200, p: 0.03, seed: 8},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("n=%d/p=%.2f/seed=%d", tc.n, tc.p, tc.seed), func(t *testing.T) {
			g, err := fixtures.RandomSparse(tc.n, tc.p, tc.seed)
			require.NoError(t, err)

			exact, err := graphlet.Enumerate(context.Background(), g)
			require.NoError(t, err)
			require.False(t, exact.Sampled)

			want := bruteForceCounts(g)
			got := exact.All()
			require.Equal(t, want, got)
		})
	}
}

// relativeAggregateError measures how far a sampled estimate strays from
// the exact counts across the whole nine-way distribution at once,
// rather than per graphlet, since individual rare categories (e.g. G8 on
// a sparse graph) can have a legitimately noisy relative error even when
// the estimator overall has converged.
func relativeAggregateError(exact, estimate [9]float64) float64 {
	var num, den float64
	for i := range exact {
		num += math.Abs(estimate[i] - exact[i])
		den += exact[i]
	}
	if den == 0 {
		return 0
	}
	return num / den
}

func TestEnumerate_SamplingConvergesToExactAsSampleSizeGrows(t *testing.T) {
	g, err := fixtures.RandomSparse(90, 0.2, 11)
	require.NoError(t, err)

	exact, err := graphlet.Enumerate(context.Background(), g)
	require.NoError(t, err)
	want := exact.All()

	sampleSizes := []int{1000, 8000, 60000}
	var errs []float64
	for _, size := range sampleSizes {
		estimate, err := graphlet.Enumerate(context.Background(), g,
			graphlet.WithSampling(true),
			graphlet.WithSampleSize(size),
			graphlet.WithSeed(7),
		)
		require.NoError(t, err)
		require.True(t, estimate.Sampled)
		errs = append(errs, relativeAggregateError(want, estimate.All()))
	}

	require.Less(t, errs[len(errs)-1], errs[0],
		"aggregate relative error should shrink as the sample grows: %v", errs)
	require.LessOrEqual(t, errs[len(errs)-1], 0.15,
		"aggregate relative error at the largest sample size should converge within 15%%: %v", errs)
}

func TestEnumerate_K4ExactCounts(t *testing.T) {
	g := fixtures.K4()
	counts, err := graphlet.Enumerate(context.Background(), g)
	require.NoError(t, err)
	require.Equal(t, 6.0, counts.Get(graphlet.G0))
	require.Equal(t, 0.0, counts.Get(graphlet.G1))
	require.Equal(t, 4.0, counts.Get(graphlet.G2))
	require.Equal(t, 1.0, counts.Get(graphlet.G8))
	require.Equal(t, 0.0, counts.Get(graphlet.G3))
	require.Equal(t, 0.0, counts.Get(graphlet.G4))
	require.Equal(t, 0.0, counts.Get(graphlet.G5))
	require.Equal(t, 0.0, counts.Get(graphlet.G6))
	require.Equal(t, 0.0, counts.Get(graphlet.G7))
}

func TestEnumerate_PathFormulaHoldsAcrossLengths(t *testing.T) {
	for _, n := range []int{4, 5, 8, 12, 20} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			g, err := fixtures.Path(n)
			require.NoError(t, err)
			counts, err := graphlet.Enumerate(context.Background(), g)
			require.NoError(t, err)
			require.Equal(t, float64(n-1), counts.Get(graphlet.G0))
			require.Equal(t, float64(n-2), counts.Get(graphlet.G1))
			require.Equal(t, float64(n-3), counts.Get(graphlet.G3))
			require.Equal(t, 0.0, counts.Get(graphlet.G2))
			require.Equal(t, 0.0, counts.Get(graphlet.G4))
		})
	}
}

func TestEnumerate_StarFormulaHoldsAcrossSizes(t *testing.T) {
	for _, n := range []int{3, 4, 6, 9, 15} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			g, err := fixtures.Star(n)
			require.NoError(t, err)
			counts, err := graphlet.Enumerate(context.Background(), g)
			require.NoError(t, err)
			leaves := n - 1
			wantWedges := float64(leaves * (leaves - 1) / 2)
			wantStars := 0.0
			if leaves >= 3 {
				wantStars = float64(leaves * (leaves - 1) * (leaves - 2) / 6)
			}
			require.Equal(t, float64(leaves), counts.Get(graphlet.G0))
			require.Equal(t, wantWedges, counts.Get(graphlet.G1))
			require.Equal(t, wantStars, counts.Get(graphlet.G4))
			require.Equal(t, 0.0, counts.Get(graphlet.G2))
		})
	}
}

func TestEnumerate_DeterministicAcrossRepeatedRuns(t *testing.T) {
	g, err := fixtures.RandomSparse(50, 0.2, 99)
	require.NoError(t, err)

	first, err := graphlet.Enumerate(context.Background(), g)
	require.NoError(t, err)
	second, err := graphlet.Enumerate(context.Background(), g)
	require.NoError(t, err)
	require.Equal(t, first.All(), second.All())

	sampledFirst, err := graphlet.Enumerate(context.Background(), g,
		graphlet.WithSampling(true), graphlet.WithSampleSize(5000), graphlet.WithSeed(3))
	require.NoError(t, err)
	sampledSecond, err := graphlet.Enumerate(context.Background(), g,
		graphlet.WithSampling(true), graphlet.WithSampleSize(5000), graphlet.WithSeed(3))
	require.NoError(t, err)
	require.Equal(t, sampledFirst.All(), sampledSecond.All())
}
