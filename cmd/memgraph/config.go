package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// analyzeConfig is the resolved configuration for the analyze subcommand,
// merged from a YAML file (if --config is given) and then overridden by
// any explicitly-set command-line flags.
type analyzeConfig struct {
	Granularity         string  `yaml:"granularity"`
	WindowStrategy      string  `yaml:"window_strategy"`
	WindowSize          int     `yaml:"window_size"`
	MinEdgeWeight       uint64  `yaml:"min_edge_weight"`
	Sampling            *bool   `yaml:"sampling"`
	SampleSize          int     `yaml:"sample_size"`
	ClassifierThreshold float64 `yaml:"classifier_threshold"`
	TopK                int     `yaml:"top_k"`
	RNGSeed             uint64  `yaml:"rng_seed"`
}

func defaultAnalyzeConfig() analyzeConfig {
	return analyzeConfig{
		Granularity:         "cacheline",
		WindowStrategy:      "sliding",
		WindowSize:          100,
		MinEdgeWeight:       1,
		SampleSize:          100000,
		ClassifierThreshold: 0.6,
		TopK:                3,
		RNGSeed:             0,
	}
}

// loadConfigFile merges YAML-file values into cfg, leaving fields absent
// from the file untouched.
func loadConfigFile(path string, cfg *analyzeConfig) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}
