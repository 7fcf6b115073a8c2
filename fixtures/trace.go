package fixtures

import (
	"fmt"
	"math/rand"

	"github.com/memgraph-project/memgraph/access"
)

// Operation selects the operation kind a trace generator assigns to each
// synthesized access. OpMixed alternates Read/Write: by index parity for
// the deterministic generators (Sequential, Strided), by independent coin
// flip for the randomized ones (Random, PointerChase, WorkingSet).
type Operation uint8

const (
	OpRead Operation = iota
	OpWrite
	OpMixed
)

func (o Operation) atIndex(i int) access.OperationKind {
	switch o {
	case OpWrite:
		return access.Write
	case OpMixed:
		if i%2 == 0 {
			return access.Read
		}
		return access.Write
	default:
		return access.Read
	}
}

func (o Operation) withRNG(rng *rand.Rand) access.OperationKind {
	if o == OpMixed {
		if rng.Intn(2) == 0 {
			return access.Read
		}
		return access.Write
	}
	return o.atIndex(0)
}

// SequentialConfig parametrizes GenerateSequential.
type SequentialConfig struct {
	StartAddr uint64
	Stride    uint64
	Operation Operation
}

// DefaultSequentialConfig mirrors generate_sequential's Python defaults.
func DefaultSequentialConfig() SequentialConfig {
	return SequentialConfig{StartAddr: 0x1000, Stride: 8, Operation: OpRead}
}

// GenerateSequential produces n linearly increasing accesses: addr =
// StartAddr + i*Stride. Returns ErrInvalidAccessCount if n <= 0.
func GenerateSequential(n int, cfg SequentialConfig) ([]access.MemoryAccess, error) {
	if n <= 0 {
		return nil, fmt.Errorf("GenerateSequential: n=%d: %w", n, ErrInvalidAccessCount)
	}
	out := make([]access.MemoryAccess, n)
	for i := 0; i < n; i++ {
		out[i] = access.MemoryAccess{
			Op:        cfg.Operation.atIndex(i),
			Address:   cfg.StartAddr + uint64(i)*cfg.Stride,
			Size:      uint8(cfg.Stride),
			Timestamp: uint64(i),
		}
	}
	return out, nil
}

// RandomConfig parametrizes GenerateRandom.
type RandomConfig struct {
	MinAddr, MaxAddr uint64
	Size             uint8
	Operation        Operation
	Seed             int64
}

// DefaultRandomConfig mirrors generate_random's Python defaults.
func DefaultRandomConfig() RandomConfig {
	return RandomConfig{MinAddr: 0x1000, MaxAddr: 0x10000, Size: 8, Operation: OpRead}
}

// GenerateRandom produces n accesses drawn uniformly from [MinAddr,
// MaxAddr), aligned to Size boundaries, per a seeded RNG for
// reproducibility. Returns ErrInvalidAccessCount if n <= 0.
func GenerateRandom(n int, cfg RandomConfig) ([]access.MemoryAccess, error) {
	if n <= 0 {
		return nil, fmt.Errorf("GenerateRandom: n=%d: %w", n, ErrInvalidAccessCount)
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	steps := int((cfg.MaxAddr - cfg.MinAddr) / uint64(cfg.Size))
	if steps < 1 {
		steps = 1
	}

	out := make([]access.MemoryAccess, n)
	for i := 0; i < n; i++ {
		addr := cfg.MinAddr + uint64(rng.Intn(steps))*uint64(cfg.Size)
		out[i] = access.MemoryAccess{
			Op:        cfg.Operation.withRNG(rng),
			Address:   addr,
			Size:      cfg.Size,
			Timestamp: uint64(i),
		}
	}
	return out, nil
}

// StridedConfig parametrizes GenerateStrided.
type StridedConfig struct {
	StartAddr uint64
	Stride    uint64
	Count     int
	Size      uint8
	Operation Operation
}

// DefaultStridedConfig mirrors generate_strided's Python defaults.
func DefaultStridedConfig() StridedConfig {
	return StridedConfig{StartAddr: 0x1000, Stride: 64, Count: 100, Size: 8, Operation: OpRead}
}

// GenerateStrided simulates column-major traversal of a row-major array:
// n accesses cycling through Count offsets spaced Stride bytes apart.
// Returns ErrInvalidAccessCount if n <= 0.
func GenerateStrided(n int, cfg StridedConfig) ([]access.MemoryAccess, error) {
	if n <= 0 {
		return nil, fmt.Errorf("GenerateStrided: n=%d: %w", n, ErrInvalidAccessCount)
	}
	count := cfg.Count
	if count < 1 {
		count = 1
	}

	out := make([]access.MemoryAccess, n)
	for i := 0; i < n; i++ {
		offset := uint64(i%count) * cfg.Stride
		out[i] = access.MemoryAccess{
			Op:        cfg.Operation.atIndex(i),
			Address:   cfg.StartAddr + offset,
			Size:      cfg.Size,
			Timestamp: uint64(i),
		}
	}
	return out, nil
}

// PointerChaseConfig parametrizes GeneratePointerChase.
type PointerChaseConfig struct {
	NumNodes  int
	StartAddr uint64
	NodeSize  uint64
	Operation Operation
	Seed      int64
}

// DefaultPointerChaseConfig mirrors generate_pointer_chase's Python
// defaults.
func DefaultPointerChaseConfig() PointerChaseConfig {
	return PointerChaseConfig{NumNodes: 100, StartAddr: 0x1000, NodeSize: 64, Operation: OpRead}
}

// GeneratePointerChase simulates a linked-list traversal: a fixed random
// permutation of NumNodes node slots, walked cyclically for n accesses.
// Returns ErrInvalidAccessCount if n <= 0, ErrTooFewNodes if NumNodes < 1.
func GeneratePointerChase(n int, cfg PointerChaseConfig) ([]access.MemoryAccess, error) {
	if n <= 0 {
		return nil, fmt.Errorf("GeneratePointerChase: n=%d: %w", n, ErrInvalidAccessCount)
	}
	if cfg.NumNodes < 1 {
		return nil, fmt.Errorf("GeneratePointerChase: NumNodes=%d: %w", cfg.NumNodes, ErrTooFewNodes)
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	order := rng.Perm(cfg.NumNodes)

	out := make([]access.MemoryAccess, n)
	for i := 0; i < n; i++ {
		nodeIdx := order[i%cfg.NumNodes]
		out[i] = access.MemoryAccess{
			Op:        cfg.Operation.withRNG(rng),
			Address:   cfg.StartAddr + uint64(nodeIdx)*cfg.NodeSize,
			Size:      8, // pointer-sized read, matching the Python generator
			Timestamp: uint64(i),
		}
	}
	return out, nil
}

// WorkingSetConfig parametrizes GenerateWorkingSet.
type WorkingSetConfig struct {
	WorkingSetSize int
	TotalAddresses int
	HotProbability float64
	StartAddr      uint64
	Size           uint8
	Operation      Operation
	Seed           int64
}

// DefaultWorkingSetConfig mirrors generate_working_set's Python defaults.
func DefaultWorkingSetConfig() WorkingSetConfig {
	return WorkingSetConfig{
		WorkingSetSize: 50, TotalAddresses: 1000, HotProbability: 0.8,
		StartAddr: 0x1000, Size: 8, Operation: OpRead,
	}
}

// GenerateWorkingSet simulates temporal locality: a small hot set of
// WorkingSetSize addresses is visited with probability HotProbability,
// otherwise an address from the remaining cold set is chosen. Returns
// ErrInvalidAccessCount if n <= 0, ErrInvalidWorkingSet if
// WorkingSetSize > TotalAddresses.
func GenerateWorkingSet(n int, cfg WorkingSetConfig) ([]access.MemoryAccess, error) {
	if n <= 0 {
		return nil, fmt.Errorf("GenerateWorkingSet: n=%d: %w", n, ErrInvalidAccessCount)
	}
	if cfg.WorkingSetSize > cfg.TotalAddresses {
		return nil, fmt.Errorf("GenerateWorkingSet: %d > %d: %w", cfg.WorkingSetSize, cfg.TotalAddresses, ErrInvalidWorkingSet)
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	allAddrs := make([]uint64, cfg.TotalAddresses)
	for i := range allAddrs {
		allAddrs[i] = cfg.StartAddr + uint64(i)*uint64(cfg.Size)
	}
	hot := allAddrs[:cfg.WorkingSetSize]
	cold := allAddrs[cfg.WorkingSetSize:]

	out := make([]access.MemoryAccess, n)
	for i := 0; i < n; i++ {
		var addr uint64
		if rng.Float64() < cfg.HotProbability && len(hot) > 0 {
			addr = hot[rng.Intn(len(hot))]
		} else if len(cold) > 0 {
			addr = cold[rng.Intn(len(cold))]
		} else {
			addr = hot[rng.Intn(len(hot))]
		}

		out[i] = access.MemoryAccess{
			Op:        cfg.Operation.withRNG(rng),
			Address:   addr,
			Size:      cfg.Size,
			Timestamp: uint64(i),
		}
	}
	return out, nil
}

// ProducerConsumerConfig parametrizes GenerateProducerConsumer.
type ProducerConsumerConfig struct {
	BufferSize             int
	StartAddrA, StartAddrB uint64
	Size                   uint8
}

// DefaultProducerConsumerConfig places two disjoint ring buffers far
// enough apart that CacheLine/Page coarsening keeps them distinct.
func DefaultProducerConsumerConfig() ProducerConsumerConfig {
	return ProducerConsumerConfig{BufferSize: 8, StartAddrA: 0x1000, StartAddrB: 0x100000, Size: 8}
}

// GenerateProducerConsumer simulates a producer writing into one ring
// buffer while a consumer reads from a second ring buffer one slot
// behind it, interleaved one access at a time, so the trace cycles through
// the same 2*BufferSize addresses in a fixed order. Under a sliding window
// of W accesses each address co-occurs with the W-1 addresses before and
// after it in that cycle, and with every other address once W exceeds
// BufferSize. The resulting graph holds no induced 4-cycle (G5) for W = 2,
// 3 or 4, nor once W exceeds BufferSize, where it is complete. There is no
// source generator for this pattern; it is built from
// pattern.Lookup("PRODUCER_CONSUMER")'s characteristics (two distinct
// address regions, alternating access).
// Returns ErrInvalidAccessCount if n <= 0, ErrTooFewNodes if
// BufferSize < 1.
func GenerateProducerConsumer(n int, cfg ProducerConsumerConfig) ([]access.MemoryAccess, error) {
	if n <= 0 {
		return nil, fmt.Errorf("GenerateProducerConsumer: n=%d: %w", n, ErrInvalidAccessCount)
	}
	if cfg.BufferSize < 1 {
		return nil, fmt.Errorf("GenerateProducerConsumer: BufferSize=%d: %w", cfg.BufferSize, ErrTooFewNodes)
	}

	out := make([]access.MemoryAccess, n)
	var producerIdx, consumerIdx int
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			slot := producerIdx % cfg.BufferSize
			out[i] = access.MemoryAccess{
				Op:        access.Write,
				Address:   cfg.StartAddrA + uint64(slot)*uint64(cfg.Size),
				Size:      cfg.Size,
				Timestamp: uint64(i),
			}
			producerIdx++
		} else {
			slot := consumerIdx % cfg.BufferSize
			out[i] = access.MemoryAccess{
				Op:        access.Read,
				Address:   cfg.StartAddrB + uint64(slot)*uint64(cfg.Size),
				Size:      cfg.Size,
				Timestamp: uint64(i),
			}
			consumerIdx++
		}
	}
	return out, nil
}
