package fixtures

import (
	"errors"
	"fmt"

	"github.com/memgraph-project/memgraph/access"
)

// ErrUnknownPattern is returned by Generate for a name not in
// AvailablePatterns.
var ErrUnknownPattern = errors.New("fixtures: unknown pattern")

// AvailablePatterns lists the pattern names Generate accepts.
func AvailablePatterns() []string {
	return []string{"sequential", "random", "strided", "pointer_chase", "working_set", "producer_consumer"}
}

// Generate dispatches to the named pattern generator with its default
// configuration, overriding only the RNG seed where the pattern is
// randomized. It is the entry point the CLI's `generate` subcommand
// drives from a --pattern flag.
func Generate(name string, n int, seed int64) ([]access.MemoryAccess, error) {
	switch name {
	case "sequential":
		return GenerateSequential(n, DefaultSequentialConfig())
	case "random":
		cfg := DefaultRandomConfig()
		cfg.Seed = seed
		return GenerateRandom(n, cfg)
	case "strided":
		return GenerateStrided(n, DefaultStridedConfig())
	case "pointer_chase":
		cfg := DefaultPointerChaseConfig()
		cfg.Seed = seed
		return GeneratePointerChase(n, cfg)
	case "working_set":
		cfg := DefaultWorkingSetConfig()
		cfg.Seed = seed
		return GenerateWorkingSet(n, cfg)
	case "producer_consumer":
		return GenerateProducerConsumer(n, DefaultProducerConsumerConfig())
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
}
