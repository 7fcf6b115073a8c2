// Package traverse implements breadth-first traversal over graph.Graph
// and the connected-component labelling built on top of it.
package traverse

import "errors"

// ErrGraphNil is returned when a nil graph pointer is passed.
var ErrGraphNil = errors.New("traverse: graph is nil")

// ErrStartNodeNotFound is returned when the start node is absent from the
// graph's node set.
var ErrStartNodeNotFound = errors.New("traverse: start node not found")
