package result_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/memgraph-project/memgraph/classify"
	"github.com/memgraph-project/memgraph/graph"
	"github.com/memgraph-project/memgraph/graphlet"
	"github.com/memgraph-project/memgraph/result"
	"github.com/memgraph-project/memgraph/signature"
)

func TestStatsFromGraph(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(3, 4, 1))

	stats, err := result.StatsFromGraph(context.Background(), g)
	require.NoError(t, err)
	require.Equal(t, 4, stats.NodeCount)
	require.Equal(t, 2, stats.EdgeCount)
	require.Equal(t, 2, stats.ComponentCount)
}

func TestNew_TrimsClassificationsToTopK(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(1, 3, 1))

	counts, err := graphlet.Enumerate(context.Background(), g)
	require.NoError(t, err)

	c, err := classify.New(classify.WithThreshold(0))
	require.NoError(t, err)

	stats, err := result.StatsFromGraph(context.Background(), g)
	require.NoError(t, err)
	res := result.New(result.TraceMeta{SourceID: "test"}, stats, counts,
		c.Classify(signature.FromCounts(counts)), 2)

	require.Len(t, res.Classifications, 2)
	require.False(t, res.EmptyInput)
}

func TestNew_DefaultsTopKWhenNonPositive(t *testing.T) {
	res := result.New(result.TraceMeta{}, result.GraphStats{}, graphlet.GraphletCount{},
		classify.Result{EmptyInput: true}, 0)
	require.True(t, res.EmptyInput)
	require.Empty(t, res.Classifications)
}
