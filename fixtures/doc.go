// Package fixtures builds synthetic graphs and traces for tests and for
// the CLI's `generate` subcommand.
//
// Topology generators (K4, Path, Star, Cycle, RandomSparse) follow the
// fixed undirected semantics graph.Graph implements, giving every edge
// weight 1 — this package has no mode flags to honor, so each generator
// is a plain function rather than a functional-option constructor closure.
//
// Trace generators (Sequential, Random, Strided, PointerChase,
// WorkingSet, ProducerConsumer) each model one classifiable access
// pattern. ProducerConsumer is built from pattern.Lookup
// ("PRODUCER_CONSUMER")'s characteristics (two distinct address regions,
// alternating access) rather than any live trace; GenerateProducerConsumer
// describes the graph shape it yields.
package fixtures
