// Package reportio renders a result.AnalysisResult for external
// consumption: a JSON encoding for CI/tooling integration and a
// plain-text terminal report rendered with the standard library's
// text/tabwriter (see DESIGN.md for why no third-party table-rendering
// library was available to use instead).
package reportio

import (
	"encoding/json"
	"io"

	"github.com/memgraph-project/memgraph/result"
)

// jsonMatch mirrors classify.PatternMatch with stable, externally-facing
// field names, kept independent of the internal struct so renaming an
// internal field never breaks the wire format.
type jsonMatch struct {
	Label           string             `json:"label"`
	PatternName     string             `json:"pattern_name"`
	Similarity      float64            `json:"similarity"`
	LowConfidence   bool               `json:"low_confidence"`
	Evidence        []jsonEvidenceItem `json:"evidence,omitempty"`
	Recommendations []string           `json:"recommendations,omitempty"`
}

type jsonEvidenceItem struct {
	Graphlet     string  `json:"graphlet"`
	Contribution float64 `json:"contribution"`
}

type jsonReport struct {
	TraceMeta struct {
		SourceID        string `json:"source_id"`
		TotalAccesses   int    `json:"total_accesses"`
		UniqueAddresses int    `json:"unique_addresses"`
		TimestampMin    uint64 `json:"timestamp_min"`
		TimestampMax    uint64 `json:"timestamp_max"`
	} `json:"trace_meta"`
	GraphStats struct {
		NodeCount      int     `json:"node_count"`
		EdgeCount      int     `json:"edge_count"`
		Density        float64 `json:"density"`
		MeanDegree     float64 `json:"mean_degree"`
		ComponentCount int     `json:"component_count"`
	} `json:"graph_stats"`
	GraphletCounts  map[string]float64 `json:"graphlet_counts"`
	Sampled         bool               `json:"sampled"`
	Classifications []jsonMatch        `json:"classifications"`
	EmptyInput      bool               `json:"empty_input"`
}

func toJSONReport(res result.AnalysisResult) jsonReport {
	var out jsonReport
	out.TraceMeta.SourceID = res.TraceMeta.SourceID
	out.TraceMeta.TotalAccesses = res.TraceMeta.TotalAccesses
	out.TraceMeta.UniqueAddresses = res.TraceMeta.UniqueAddresses
	out.TraceMeta.TimestampMin = res.TraceMeta.TimestampMin
	out.TraceMeta.TimestampMax = res.TraceMeta.TimestampMax

	out.GraphStats.NodeCount = res.GraphStats.NodeCount
	out.GraphStats.EdgeCount = res.GraphStats.EdgeCount
	out.GraphStats.Density = res.GraphStats.Density
	out.GraphStats.MeanDegree = res.GraphStats.MeanDegree
	out.GraphStats.ComponentCount = res.GraphStats.ComponentCount

	all := res.GraphletCounts.All()
	out.GraphletCounts = make(map[string]float64, len(all))
	for i, v := range all {
		out.GraphletCounts[graphletName(i)] = v
	}
	out.Sampled = res.Sampled
	out.EmptyInput = res.EmptyInput

	out.Classifications = make([]jsonMatch, len(res.Classifications))
	for i, m := range res.Classifications {
		jm := jsonMatch{
			Label:           m.Label,
			PatternName:     m.PatternName,
			Similarity:      m.Similarity,
			LowConfidence:   m.LowConfidence,
			Recommendations: m.Recommendations,
		}
		jm.Evidence = make([]jsonEvidenceItem, len(m.Evidence))
		for j, e := range m.Evidence {
			jm.Evidence[j] = jsonEvidenceItem{Graphlet: e.Graphlet.String(), Contribution: e.Contribution}
		}
		out.Classifications[i] = jm
	}
	return out
}

// WriteJSON encodes res to w as indented JSON: trace_meta, graph_stats,
// graphlet_counts, and classifications.
func WriteJSON(w io.Writer, res result.AnalysisResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSONReport(res))
}

// MarshalMinimalJSON renders just the top classification and its
// recommendations, for CI gating use cases that only need a pass/fail
// signal rather than the full report.
func MarshalMinimalJSON(res result.AnalysisResult) ([]byte, error) {
	minimal := struct {
		Pattern         string   `json:"pattern"`
		Confidence      float64  `json:"confidence"`
		Recommendations []string `json:"recommendations"`
	}{}

	if len(res.Classifications) > 0 {
		minimal.Pattern = res.Classifications[0].Label
		minimal.Confidence = res.Classifications[0].Similarity
		minimal.Recommendations = res.Classifications[0].Recommendations
	}
	return json.MarshalIndent(minimal, "", "  ")
}
