// Package access defines the trace-level data model consumed by the graph
// builder: individual memory accesses, their operation kind, and the
// address-coarsening function that maps a raw address to a graph NodeId.
package access

import "fmt"

// OperationKind is a sum type over the three memory-access operations a
// trace record may carry.
type OperationKind uint8

const (
	// Read marks a load from memory.
	Read OperationKind = iota
	// Write marks a store to memory.
	Write
	// Modify marks a read-then-write (e.g. an atomic RMW or `x++`).
	Modify
)

// String renders the operation kind using the native trace format's
// single-letter symbols (§6: R, W, M).
func (k OperationKind) String() string {
	switch k {
	case Read:
		return "R"
	case Write:
		return "W"
	case Modify:
		return "M"
	default:
		return fmt.Sprintf("OperationKind(%d)", uint8(k))
	}
}

// Valid reports whether k is one of the three defined operation kinds.
func (k OperationKind) Valid() bool {
	return k == Read || k == Write || k == Modify
}

// MemoryAccess is a single record in a chronologically ordered trace.
//
// Timestamp is used only for relative ordering within the stream; its
// value is never interpreted numerically and non-monotonic values are
// tolerated (ordering follows stream order, not Timestamp — see
// builder.GraphBuilder).
type MemoryAccess struct {
	Op        OperationKind
	Address   uint64
	Size      uint8
	Timestamp uint64
}

// Stream is an iterable, possibly very large, sequence of memory accesses
// delivered in stream order. Implementations may read from memory, a file,
// or a network source; the core never assumes the whole trace fits in one
// slice.
//
// Exhaustion is signalled by ok=false with a nil error, never by io.EOF:
// ok reports whether the returned access is valid. A non-nil error aborts
// consumption immediately.
type Stream interface {
	// Next advances the stream and returns the next access. ok is false
	// (with err nil) exactly when the stream is exhausted.
	Next() (acc MemoryAccess, ok bool, err error)
}

// SliceStream adapts an in-memory slice of accesses to the Stream
// interface. It is the simplest Stream implementation and is what the
// property-based and end-to-end tests use to feed synthetic traces.
type SliceStream struct {
	accesses []MemoryAccess
	pos      int
}

// NewSliceStream wraps accesses as a Stream, without copying.
func NewSliceStream(accesses []MemoryAccess) *SliceStream {
	return &SliceStream{accesses: accesses}
}

// Next implements Stream.
func (s *SliceStream) Next() (MemoryAccess, bool, error) {
	if s.pos >= len(s.accesses) {
		return MemoryAccess{}, false, nil
	}
	acc := s.accesses[s.pos]
	s.pos++

	return acc, true, nil
}
