package main

import "github.com/memgraph-project/memgraph/access"

// meteringStream wraps an access.Stream, passing every access through
// unmodified while accumulating the counters result.TraceMeta needs. The
// core never computes these itself — it stays a pure transformation from
// accesses to a graph — so the CLI observes the stream from the outside
// instead.
type meteringStream struct {
	inner access.Stream

	total        int
	seen         map[uint64]bool
	tsMin, tsMax uint64
	first        bool
}

func newMeteringStream(inner access.Stream) *meteringStream {
	return &meteringStream{inner: inner, seen: make(map[uint64]bool), first: true}
}

func (m *meteringStream) Next() (access.MemoryAccess, bool, error) {
	acc, ok, err := m.inner.Next()
	if err != nil || !ok {
		return acc, ok, err
	}

	m.total++
	m.seen[acc.Address] = true
	if m.first {
		m.tsMin, m.tsMax = acc.Timestamp, acc.Timestamp
		m.first = false
	} else {
		if acc.Timestamp < m.tsMin {
			m.tsMin = acc.Timestamp
		}
		if acc.Timestamp > m.tsMax {
			m.tsMax = acc.Timestamp
		}
	}
	return acc, ok, err
}
