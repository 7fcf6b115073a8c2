package graphlet

import (
	"context"

	"github.com/memgraph-project/memgraph/graph"
)

// Thresholds beyond which exact enumeration gives way to sampling, unless
// overridden by WithSampling.
const (
	exactNodeThreshold = 10000
	exactEdgeThreshold = 250000

	defaultSampleSize = 100000
)

// config holds the enumerator's resolved options.
type config struct {
	forceSampling *bool
	sampleSize    int
	seed          int64
}

// Option customizes Enumerate.
type Option func(*config)

// WithSampling forces (true) or forbids (false) the sampling fallback,
// overriding the automatic size-based decision.
func WithSampling(force bool) Option {
	return func(c *config) { c.forceSampling = &force }
}

// WithSampleSize sets S, the number of edges drawn with replacement when
// sampling is used. Values below 1000 are raised to 1000.
func WithSampleSize(n int) Option {
	return func(c *config) {
		if n < 1000 {
			n = 1000
		}
		c.sampleSize = n
	}
}

// WithSeed fixes the sampling RNG seed for reproducibility.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// Enumerate counts every graphlet in g, exactly for graphs under the size
// thresholds and via sampling above them (or when forced by WithSampling).
// A graph with fewer than 2 nodes yields all-zero counts. ctx is checked
// for cancellation between edges.
func Enumerate(ctx context.Context, g *graph.Graph, opts ...Option) (GraphletCount, error) {
	cfg := config{sampleSize: defaultSampleSize, seed: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	if g.NodeCount() < 2 {
		return GraphletCount{}, nil
	}

	useSampling := g.NodeCount() >= exactNodeThreshold || g.EdgeCount() >= exactEdgeThreshold
	if cfg.forceSampling != nil {
		useSampling = *cfg.forceSampling
	}

	if useSampling {
		return countSampled(ctx, g, cfg.sampleSize, cfg.seed)
	}
	return countExact(ctx, g)
}
