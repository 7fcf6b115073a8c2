// Package builder consumes an access.Stream and drives an
// access.Granularity plus a window.Strategy to accumulate a weighted
// undirected graph.Graph — the GraphBuilder component.
package builder

import "errors"

// ErrConfigurationError is returned when Config validation fails: an
// unknown enum value, a window size below 2, or a threshold outside its
// valid range. Raised at construction; no partially-built Config or
// GraphBuilder is ever returned.
var ErrConfigurationError = errors.New("builder: invalid configuration")
