package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/memgraph-project/memgraph/fixtures"
	"github.com/memgraph-project/memgraph/traceio"
)

func newGenerateCmd() *cobra.Command {
	var (
		pattern string
		count   int
		seed    int64
		output  string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic trace in the native format",
		Long: fmt.Sprintf("Generate a synthetic access trace for one of the reference patterns: %s.",
			strings.Join(fixtures.AvailablePatterns(), ", ")),
		RunE: func(cmd *cobra.Command, args []string) error {
			accesses, err := fixtures.Generate(pattern, count, seed)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating output file: %w", err)
				}
				defer f.Close()
				w = f
			}
			return traceio.WriteNative(w, accesses)
		},
	}

	cmd.Flags().StringVar(&pattern, "pattern", "sequential", strings.Join(fixtures.AvailablePatterns(), "|"))
	cmd.Flags().IntVar(&count, "count", 10000, "number of accesses to generate")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed for randomized patterns")
	cmd.Flags().StringVar(&output, "output", "", "output file (defaults to stdout)")

	return cmd
}
