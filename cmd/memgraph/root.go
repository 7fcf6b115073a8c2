package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile string
	verbose bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "memgraph",
		Short: "Classify memory-access patterns from a trace",
		Long: "MemGraph builds a temporal adjacency graph from a memory-access trace,\n" +
			"counts its graphlet composition, and classifies the resulting signature\n" +
			"against a table of reference access patterns.",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file overriding defaults")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newAnalyzeCmd(), newGenerateCmd(), newVersionCmd())
	return cmd
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}
