// Package result assembles the AnalysisResult aggregate: trace metadata,
// graph statistics, graphlet counts, and ranked classifications, produced
// once per analysis pass and immutable thereafter.
package result

import (
	"context"

	"github.com/memgraph-project/memgraph/classify"
	"github.com/memgraph-project/memgraph/graph"
	"github.com/memgraph-project/memgraph/graphlet"
	"github.com/memgraph-project/memgraph/traverse"
)

// DefaultTopK is the default number of ranked classifications retained on
// an AnalysisResult.
const DefaultTopK = 3

// TraceMeta describes the input trace an analysis was run over.
type TraceMeta struct {
	SourceID        string
	TotalAccesses   int
	UniqueAddresses int
	TimestampMin    uint64
	TimestampMax    uint64
}

// GraphStats summarizes the built graph.
type GraphStats struct {
	NodeCount      int
	EdgeCount      int
	Density        float64
	MeanDegree     float64
	ComponentCount int
}

// StatsFromGraph computes GraphStats from a built graph.Graph, including
// its connected-component count (traverse.ComponentCount). ctx governs
// only the component-counting traversal; StatsFromGraph never blocks
// beyond that.
func StatsFromGraph(ctx context.Context, g *graph.Graph) (GraphStats, error) {
	components, err := traverse.ComponentCount(ctx, g)
	if err != nil {
		return GraphStats{}, err
	}
	return GraphStats{
		NodeCount:      g.NodeCount(),
		EdgeCount:      g.EdgeCount(),
		Density:        g.Density(),
		MeanDegree:     g.MeanDegree(),
		ComponentCount: components,
	}, nil
}

// AnalysisResult is the final, immutable output of one analysis pass.
type AnalysisResult struct {
	TraceMeta       TraceMeta
	GraphStats      GraphStats
	GraphletCounts  graphlet.GraphletCount
	Classifications []classify.PatternMatch

	// EmptyInput mirrors classify.Result.EmptyInput: set when the graph
	// yielded no graphlets at all (an empty trace, or a graph left with no
	// edges), never treated as an error.
	EmptyInput bool
	// Sampled mirrors GraphletCounts.Sampled, promoted here so reporters
	// don't need to reach into graphlet internals to surface it.
	Sampled bool
}

// New assembles an AnalysisResult from its constituent parts, trimming
// classifications to the top k matches (DefaultTopK if k <= 0).
func New(meta TraceMeta, stats GraphStats, counts graphlet.GraphletCount, classification classify.Result, k int) AnalysisResult {
	if k <= 0 {
		k = DefaultTopK
	}
	matches := classification.Matches
	if len(matches) > k {
		matches = matches[:k]
	}

	return AnalysisResult{
		TraceMeta:       meta,
		GraphStats:      stats,
		GraphletCounts:  counts,
		Classifications: matches,
		EmptyInput:      classification.EmptyInput,
		Sampled:         counts.Sampled,
	}
}
