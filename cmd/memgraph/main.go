// Command memgraph drives the analysis core end to end: reading a trace,
// classifying its access pattern, and reporting the result. It is kept
// thin so all real logic stays in the library packages it wires
// together.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
