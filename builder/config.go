package builder

import (
	"fmt"

	"github.com/memgraph-project/memgraph/access"
)

// WindowKind selects which window.Strategy the builder drives.
type WindowKind uint8

const (
	// WindowSliding groups accesses via window.Sliding.
	WindowSliding WindowKind = iota
	// WindowFixed groups accesses via window.Fixed.
	WindowFixed
	// WindowAdaptive groups accesses via window.Adaptive.
	WindowAdaptive
)

// String renders the window kind name.
func (k WindowKind) String() string {
	switch k {
	case WindowSliding:
		return "sliding"
	case WindowFixed:
		return "fixed"
	case WindowAdaptive:
		return "adaptive"
	default:
		return fmt.Sprintf("WindowKind(%d)", uint8(k))
	}
}

func (k WindowKind) valid() bool {
	switch k {
	case WindowSliding, WindowFixed, WindowAdaptive:
		return true
	default:
		return false
	}
}

// Deterministic defaults, named to avoid magic numbers.
const (
	defaultGranularity   = access.CacheLine
	defaultWindowKind    = WindowSliding
	defaultWindowSize    = 100
	defaultMinEdgeWeight = 1
)

// Config aggregates every knob GraphBuilder needs. It is built by
// NewConfig and is immutable once constructed.
type Config struct {
	granularity   access.Granularity
	windowKind    WindowKind
	windowSize    int
	minEdgeWeight uint64
}

// Option customizes a Config under construction.
type Option func(*Config)

// WithGranularity selects the address-coarsening granularity.
func WithGranularity(g access.Granularity) Option {
	return func(c *Config) { c.granularity = g }
}

// WithWindowStrategy selects the window kind and its size.
func WithWindowStrategy(kind WindowKind, size int) Option {
	return func(c *Config) {
		c.windowKind = kind
		c.windowSize = size
	}
}

// WithMinEdgeWeight sets the post-hoc edge-weight filtering threshold.
func WithMinEdgeWeight(min uint64) Option {
	return func(c *Config) { c.minEdgeWeight = min }
}

// NewConfig resolves deterministic defaults and applies opts in order
// (last one wins), then validates the result. Returns ErrConfigurationError
// wrapped with the offending field if validation fails.
func NewConfig(opts ...Option) (Config, error) {
	cfg := Config{
		granularity:   defaultGranularity,
		windowKind:    defaultWindowKind,
		windowSize:    defaultWindowSize,
		minEdgeWeight: defaultMinEdgeWeight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.granularity.Valid() {
		return Config{}, fmt.Errorf("%w: granularity %v", ErrConfigurationError, cfg.granularity)
	}
	if !cfg.windowKind.valid() {
		return Config{}, fmt.Errorf("%w: window_strategy %v", ErrConfigurationError, cfg.windowKind)
	}
	if cfg.windowSize < 2 {
		return Config{}, fmt.Errorf("%w: window_size %d < 2", ErrConfigurationError, cfg.windowSize)
	}
	if cfg.minEdgeWeight < 1 {
		return Config{}, fmt.Errorf("%w: min_edge_weight %d < 1", ErrConfigurationError, cfg.minEdgeWeight)
	}

	return cfg, nil
}
