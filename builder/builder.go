package builder

import (
	"context"
	"fmt"

	"github.com/memgraph-project/memgraph/access"
	"github.com/memgraph-project/memgraph/graph"
	"github.com/memgraph-project/memgraph/window"
)

// GraphBuilder consumes an access.Stream in order, coarsens each address,
// drives the configured window.Strategy, and accumulates a weighted
// undirected graph.Graph. It performs no I/O and no logging of its own
// (that is left to the traceio and cmd/memgraph ambient layers).
type GraphBuilder struct {
	cfg      Config
	strategy window.Strategy
}

// New constructs a GraphBuilder from opts, resolving deterministic
// defaults for anything unset. Returns ErrConfigurationError if the
// resolved Config is invalid.
func New(opts ...Option) (*GraphBuilder, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &GraphBuilder{cfg: cfg, strategy: newStrategy(cfg)}, nil
}

func newStrategy(cfg Config) window.Strategy {
	switch cfg.windowKind {
	case WindowFixed:
		return window.NewFixed(cfg.windowSize)
	case WindowAdaptive:
		return window.NewAdaptive(cfg.windowSize)
	default:
		return window.NewSliding(cfg.windowSize)
	}
}

// Build consumes stream to completion and returns the resulting graph.
// An empty stream yields an empty, non-nil Graph rather than an error.
// Non-monotonic timestamps are tolerated: ordering follows stream order,
// never the MemoryAccess.Timestamp field.
//
// Build checks ctx for cancellation between accesses; a cancelled context
// aborts consumption and returns ctx.Err().
func (b *GraphBuilder) Build(ctx context.Context, stream access.Stream) (*graph.Graph, error) {
	b.strategy.Reset()
	g := graph.New()

	var buildErr error
	emit := func(p window.Pair) {
		if buildErr != nil {
			return
		}
		if err := g.IncrementEdge(p.U, p.V); err != nil {
			buildErr = fmt.Errorf("builder: %w", err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		acc, ok, err := stream.Next()
		if err != nil {
			return nil, fmt.Errorf("builder: reading stream: %w", err)
		}
		if !ok {
			break
		}

		id, err := access.Coarsen(acc.Address, b.cfg.granularity)
		if err != nil {
			return nil, fmt.Errorf("builder: %w", err)
		}
		g.AddNode(id)

		b.strategy.Arrive(id, emit)
		if buildErr != nil {
			return nil, buildErr
		}
	}

	b.strategy.Flush(emit)
	if buildErr != nil {
		return nil, buildErr
	}

	minWeight := b.cfg.minEdgeWeight
	g.FilterEdges(func(e graph.Edge) bool { return e.Weight >= minWeight })

	return g, nil
}
