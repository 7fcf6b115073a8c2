package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/memgraph-project/memgraph/fixtures"
)

func TestK4_IsComplete(t *testing.T) {
	g := fixtures.K4()
	require.Equal(t, 4, g.NodeCount())
	require.Equal(t, 6, g.EdgeCount())
	require.InDelta(t, 1.0, g.Density(), 1e-9)
}

func TestPath_HasNMinusOneEdges(t *testing.T) {
	g, err := fixtures.Path(5)
	require.NoError(t, err)
	require.Equal(t, 5, g.NodeCount())
	require.Equal(t, 4, g.EdgeCount())
}

func TestPath_RejectsTooFewNodes(t *testing.T) {
	_, err := fixtures.Path(1)
	require.ErrorIs(t, err, fixtures.ErrTooFewNodes)
}

func TestStar_HubHasDegreeNMinusOne(t *testing.T) {
	g, err := fixtures.Star(6)
	require.NoError(t, err)
	deg, err := g.Degree(0)
	require.NoError(t, err)
	require.Equal(t, 5, deg)

	leafDeg, err := g.Degree(1)
	require.NoError(t, err)
	require.Equal(t, 1, leafDeg)
}

func TestCycle_EveryNodeHasDegreeTwo(t *testing.T) {
	g, err := fixtures.Cycle(5)
	require.NoError(t, err)
	require.Equal(t, 5, g.EdgeCount())
	for _, id := range g.Nodes() {
		deg, err := g.Degree(id)
		require.NoError(t, err)
		require.Equal(t, 2, deg)
	}
}

func TestCycle_RejectsTooFewNodes(t *testing.T) {
	_, err := fixtures.Cycle(2)
	require.ErrorIs(t, err, fixtures.ErrTooFewNodes)
}

func TestRandomSparse_ZeroProbabilityYieldsNoEdges(t *testing.T) {
	g, err := fixtures.RandomSparse(20, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 20, g.NodeCount())
	require.Equal(t, 0, g.EdgeCount())
}

func TestRandomSparse_OneProbabilityYieldsCompleteGraph(t *testing.T) {
	g, err := fixtures.RandomSparse(6, 1, 1)
	require.NoError(t, err)
	require.Equal(t, 15, g.EdgeCount())
}

func TestRandomSparse_DeterministicForFixedSeed(t *testing.T) {
	a, err := fixtures.RandomSparse(30, 0.3, 42)
	require.NoError(t, err)
	b, err := fixtures.RandomSparse(30, 0.3, 42)
	require.NoError(t, err)
	require.Equal(t, a.EdgeCount(), b.EdgeCount())
	require.Equal(t, a.Edges(), b.Edges())
}

func TestRandomSparse_RejectsInvalidProbability(t *testing.T) {
	_, err := fixtures.RandomSparse(5, 1.5, 1)
	require.ErrorIs(t, err, fixtures.ErrInvalidProbability)
}
