// Package memgraph turns a memory-access trace into a temporal
// co-occurrence graph, counts its 2-4 node graphlets, and classifies
// the resulting signature against a library of reference access
// patterns — sequential, strided, random, pointer-chasing, working-set
// and producer-consumer.
//
// The pipeline is a straight line:
//
//	access.Stream -> builder.GraphBuilder -> graph.Graph -> graphlet.Enumerate
//	  -> signature.FromCounts -> classify.Classifier -> result.AnalysisResult
//
// Everything left of graph.Graph only knows about individual accesses;
// everything right of it only knows about counts and vectors. Nothing
// in that chain touches a file, a socket, or a logger — those concerns
// live at the edges:
//
//	traceio/   — streaming parser and writer for the native trace format
//	fixtures/  — synthetic trace and topology generators for tests and demos
//	reportio/  — JSON and terminal rendering of an AnalysisResult
//	cmd/       — the memgraph CLI wiring the above into analyze/generate
//
// Quick look at the trace format:
//
//	R,0x1000,64,0
//	W,0x1040,64,1
//	M,0x1000,64,2
//
// three columns after the operation: address, size, timestamp. See
// traceio for the full grammar, including how M (modify) expands into
// a read immediately followed by a write.
package memgraph
