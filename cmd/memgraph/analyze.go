package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/memgraph-project/memgraph/access"
	"github.com/memgraph-project/memgraph/builder"
	"github.com/memgraph-project/memgraph/classify"
	"github.com/memgraph-project/memgraph/graphlet"
	"github.com/memgraph-project/memgraph/reportio"
	"github.com/memgraph-project/memgraph/result"
	"github.com/memgraph-project/memgraph/signature"
	"github.com/memgraph-project/memgraph/traceio"
)

// newAnalyzeCmd resolves configuration in three layers, lowest to
// highest precedence: built-in defaults, --config YAML file, explicit
// flags. Flags default to defaultAnalyzeConfig()'s values so --help shows
// something meaningful, but only flags the user actually set (per
// cmd.Flags().Changed) override a value the config file supplied.
func newAnalyzeCmd() *cobra.Command {
	defaults := defaultAnalyzeConfig()
	var (
		granularity         string
		windowStrategy      string
		windowSize          int
		minEdgeWeight       uint64
		sampleSize          int
		classifierThreshold float64
		topK                int
		rngSeed             uint64
		format              string
	)

	cmd := &cobra.Command{
		Use:   "analyze <trace-file>",
		Short: "Analyze a native-format memory-access trace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := defaults
			if err := loadConfigFile(cfgFile, &cfg); err != nil {
				return err
			}
			changed := cmd.Flags().Changed
			if changed("granularity") {
				cfg.Granularity = granularity
			}
			if changed("window-strategy") {
				cfg.WindowStrategy = windowStrategy
			}
			if changed("window-size") {
				cfg.WindowSize = windowSize
			}
			if changed("min-edge-weight") {
				cfg.MinEdgeWeight = minEdgeWeight
			}
			if changed("sample-size") {
				cfg.SampleSize = sampleSize
			}
			if changed("classifier-threshold") {
				cfg.ClassifierThreshold = classifierThreshold
			}
			if changed("top-k") {
				cfg.TopK = topK
			}
			if changed("rng-seed") {
				cfg.RNGSeed = rngSeed
			}
			return runAnalyze(cmd, args[0], cfg, format)
		},
	}

	cmd.Flags().StringVar(&granularity, "granularity", defaults.Granularity, "byte|cacheline|page")
	cmd.Flags().StringVar(&windowStrategy, "window-strategy", defaults.WindowStrategy, "fixed|sliding|adaptive")
	cmd.Flags().IntVar(&windowSize, "window-size", defaults.WindowSize, "co-occurrence window size W")
	cmd.Flags().Uint64Var(&minEdgeWeight, "min-edge-weight", defaults.MinEdgeWeight, "post-hoc edge weight filter")
	cmd.Flags().IntVar(&sampleSize, "sample-size", defaults.SampleSize, "graphlet sampling budget")
	cmd.Flags().Float64Var(&classifierThreshold, "classifier-threshold", defaults.ClassifierThreshold, "minimum cosine similarity to report a match")
	cmd.Flags().IntVar(&topK, "top-k", defaults.TopK, "number of ranked classifications to report")
	cmd.Flags().Uint64Var(&rngSeed, "rng-seed", defaults.RNGSeed, "sampling RNG seed")
	cmd.Flags().StringVar(&format, "format", "text", "text|json")

	return cmd
}

func runAnalyze(cmd *cobra.Command, path string, cfg analyzeConfig, format string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	granularity, err := parseGranularity(cfg.Granularity)
	if err != nil {
		return err
	}
	windowKind, err := parseWindowKind(cfg.WindowStrategy)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening trace: %w", err)
	}
	defer f.Close()

	tstream := traceio.NewStream(f, logger)
	meter := newMeteringStream(tstream)

	gb, err := builder.New(
		builder.WithGranularity(granularity),
		builder.WithWindowStrategy(windowKind, cfg.WindowSize),
		builder.WithMinEdgeWeight(cfg.MinEdgeWeight),
	)
	if err != nil {
		return fmt.Errorf("configuring builder: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	g, err := gb.Build(ctx, meter)
	if err != nil {
		return fmt.Errorf("building graph: %w", err)
	}
	if warnings := tstream.Warnings(); warnings != nil {
		logger.Warn("trace parser skipped malformed lines", zap.Error(warnings))
	}

	graphletOpts := []graphlet.Option{
		graphlet.WithSampleSize(cfg.SampleSize),
		graphlet.WithSeed(int64(cfg.RNGSeed)),
	}
	if cfg.Sampling != nil {
		graphletOpts = append(graphletOpts, graphlet.WithSampling(*cfg.Sampling))
	}
	counts, err := graphlet.Enumerate(ctx, g, graphletOpts...)
	if err != nil {
		return fmt.Errorf("enumerating graphlets: %w", err)
	}

	classifier, err := classify.New(classify.WithThreshold(cfg.ClassifierThreshold))
	if err != nil {
		return fmt.Errorf("configuring classifier: %w", err)
	}
	classification := classifier.Classify(signature.FromCounts(counts))

	stats, err := result.StatsFromGraph(ctx, g)
	if err != nil {
		return fmt.Errorf("computing graph stats: %w", err)
	}

	meta := result.TraceMeta{
		SourceID:        path,
		TotalAccesses:   meter.total,
		UniqueAddresses: len(meter.seen),
		TimestampMin:    meter.tsMin,
		TimestampMax:    meter.tsMax,
	}
	res := result.New(meta, stats, counts, classification, cfg.TopK)

	switch format {
	case "json":
		return reportio.WriteJSON(cmd.OutOrStdout(), res)
	default:
		return reportio.WriteText(cmd.OutOrStdout(), res, path)
	}
}

func parseGranularity(s string) (access.Granularity, error) {
	switch s {
	case "byte":
		return access.Byte, nil
	case "cacheline":
		return access.CacheLine, nil
	case "page":
		return access.Page, nil
	default:
		return 0, fmt.Errorf("%w: %q", access.ErrUnknownGranularity, s)
	}
}

func parseWindowKind(s string) (builder.WindowKind, error) {
	switch s {
	case "fixed":
		return builder.WindowFixed, nil
	case "sliding":
		return builder.WindowSliding, nil
	case "adaptive":
		return builder.WindowAdaptive, nil
	default:
		return 0, fmt.Errorf("%w: unknown window strategy %q", builder.ErrConfigurationError, s)
	}
}
