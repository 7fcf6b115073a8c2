package access

import (
	"errors"
	"fmt"
)

// ErrUnknownGranularity is returned when a Granularity value outside the
// three defined levels is used to construct a graph.
var ErrUnknownGranularity = errors.New("access: unknown granularity")

// Granularity selects the address-coarsening resolution used to derive a
// graph.NodeId from a raw address. It is chosen once per GraphBuilder and
// is immutable for the resulting graph.
type Granularity uint8

const (
	// Byte performs no coarsening: NodeId == address.
	Byte Granularity = iota
	// CacheLine coarsens to 64-byte lines: NodeId == address >> 6.
	CacheLine
	// Page coarsens to 4 KiB pages: NodeId == address >> 12.
	Page
)

// shiftBits returns the number of low bits Coarsen discards for g.
func (g Granularity) shiftBits() (uint, error) {
	switch g {
	case Byte:
		return 0, nil
	case CacheLine:
		return 6, nil
	case Page:
		return 12, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownGranularity, uint8(g))
	}
}

// String renders the granularity name.
func (g Granularity) String() string {
	switch g {
	case Byte:
		return "byte"
	case CacheLine:
		return "cacheline"
	case Page:
		return "page"
	default:
		return fmt.Sprintf("Granularity(%d)", uint8(g))
	}
}

// Valid reports whether g is one of the three defined granularities.
func (g Granularity) Valid() bool {
	_, err := g.shiftBits()
	return err == nil
}

// NodeId identifies a graph node: an address coarsened to a chosen
// granularity.
type NodeId uint64

// Coarsen maps a raw address to a NodeId at the given granularity.
// Coarsening is total and deterministic; an access whose size crosses a
// coarsening boundary is attributed entirely to the start address's
// coarsened id.
func Coarsen(addr uint64, g Granularity) (NodeId, error) {
	shift, err := g.shiftBits()
	if err != nil {
		return 0, err
	}

	return NodeId(addr >> shift), nil
}

// MustCoarsen is Coarsen for callers that have already validated g (e.g.
// after construction-time validation in builder.Config).
func MustCoarsen(addr uint64, g Granularity) NodeId {
	id, err := Coarsen(addr, g)
	if err != nil {
		panic(err)
	}
	return id
}
