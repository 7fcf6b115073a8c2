package builder_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/memgraph-project/memgraph/access"
	"github.com/memgraph-project/memgraph/builder"
)

func addr(a uint64) access.MemoryAccess {
	return access.MemoryAccess{Op: access.Read, Address: a}
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := builder.NewConfig()
	require.NoError(t, err)
	require.NotZero(t, cfg)
}

func TestNewConfig_RejectsSmallWindow(t *testing.T) {
	_, err := builder.NewConfig(builder.WithWindowStrategy(builder.WindowSliding, 1))
	require.True(t, errors.Is(err, builder.ErrConfigurationError))
}

func TestNewConfig_RejectsUnknownGranularity(t *testing.T) {
	_, err := builder.NewConfig(builder.WithGranularity(access.Granularity(200)))
	require.True(t, errors.Is(err, builder.ErrConfigurationError))
}

func TestNewConfig_RejectsZeroMinEdgeWeight(t *testing.T) {
	_, err := builder.NewConfig(builder.WithMinEdgeWeight(0))
	require.True(t, errors.Is(err, builder.ErrConfigurationError))
}

func TestBuild_EmptyStreamYieldsEmptyGraphNotError(t *testing.T) {
	b, err := builder.New()
	require.NoError(t, err)

	g, err := b.Build(context.Background(), access.NewSliceStream(nil))
	require.NoError(t, err)
	require.Equal(t, 0, g.NodeCount())
}

func TestBuild_FixedWindowGroupsAccesses(t *testing.T) {
	b, err := builder.New(
		builder.WithGranularity(access.Byte),
		builder.WithWindowStrategy(builder.WindowFixed, 2),
	)
	require.NoError(t, err)

	stream := access.NewSliceStream([]access.MemoryAccess{addr(1), addr(2), addr(3), addr(4)})
	g, err := b.Build(context.Background(), stream)
	require.NoError(t, err)

	require.Equal(t, 4, g.NodeCount())
	require.True(t, g.HasEdge(1, 2))
	require.True(t, g.HasEdge(3, 4))
	require.False(t, g.HasEdge(2, 3))
}

func TestBuild_MinEdgeWeightFiltersPostHoc(t *testing.T) {
	b, err := builder.New(
		builder.WithGranularity(access.Byte),
		builder.WithWindowStrategy(builder.WindowSliding, 2),
		builder.WithMinEdgeWeight(2),
	)
	require.NoError(t, err)

	// sliding W=2 pairs each arrival with its immediate predecessor only:
	// (1,2) once, (2,1) once more -> weight 2 survives; nothing else does.
	stream := access.NewSliceStream([]access.MemoryAccess{addr(1), addr(2), addr(1), addr(3)})
	g, err := b.Build(context.Background(), stream)
	require.NoError(t, err)

	require.True(t, g.HasEdge(1, 2))
	require.False(t, g.HasEdge(1, 3))
}

func TestBuild_RespectsContextCancellation(t *testing.T) {
	b, err := builder.New()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stream := access.NewSliceStream([]access.MemoryAccess{addr(1), addr(2)})
	_, err = b.Build(ctx, stream)
	require.True(t, errors.Is(err, context.Canceled))
}

func TestBuild_NegativeWindowSizeRejectedAtConstruction(t *testing.T) {
	_, err := builder.New(builder.WithWindowStrategy(builder.WindowFixed, -1))
	require.True(t, errors.Is(err, builder.ErrConfigurationError))
}

func TestBuild_AllEdgesSatisfyGraphInvariant(t *testing.T) {
	b, err := builder.New(
		builder.WithGranularity(access.Byte),
		builder.WithWindowStrategy(builder.WindowFixed, 3),
	)
	require.NoError(t, err)

	stream := access.NewSliceStream([]access.MemoryAccess{addr(1), addr(2), addr(3), addr(1), addr(2), addr(3)})
	g, err := b.Build(context.Background(), stream)
	require.NoError(t, err)

	for _, e := range g.Edges() {
		require.NotEqual(t, e.U, e.V)
		require.True(t, g.HasNode(e.U))
		require.True(t, g.HasNode(e.V))
		require.GreaterOrEqual(t, e.Weight, uint64(1))
	}
}
