package reportio

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/memgraph-project/memgraph/result"
)

const barWidth = 20

// WriteText renders a human-readable terminal report: trace and graph
// statistics, the graphlet distribution as a bar chart, ranked pattern
// similarities, and the top match's recommendations.
func WriteText(w io.Writer, res result.AnalysisResult, sourceLabel string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "MemGraph Analysis Report\nSource:\t%s\n\n", sourceLabel)

	if res.EmptyInput {
		fmt.Fprintln(tw, "Empty input: no accesses to analyze.")
		return tw.Flush()
	}

	fmt.Fprintln(tw, "Trace Statistics")
	fmt.Fprintf(tw, "Total Accesses:\t%d\n", res.TraceMeta.TotalAccesses)
	fmt.Fprintf(tw, "Unique Addresses:\t%d\n\n", res.TraceMeta.UniqueAddresses)

	fmt.Fprintln(tw, "Graph Statistics")
	fmt.Fprintf(tw, "Nodes:\t%d\n", res.GraphStats.NodeCount)
	fmt.Fprintf(tw, "Edges:\t%d\n", res.GraphStats.EdgeCount)
	fmt.Fprintf(tw, "Density:\t%.4f\n", res.GraphStats.Density)
	fmt.Fprintf(tw, "Avg Degree:\t%.2f\n", res.GraphStats.MeanDegree)
	fmt.Fprintf(tw, "Components:\t%d\n", res.GraphStats.ComponentCount)
	if res.Sampled {
		fmt.Fprintln(tw, "Graphlet counts:\tsampled estimate")
	}
	fmt.Fprintln(tw)

	writeGraphletDistribution(tw, res)
	writeClassification(tw, res)
	writeRecommendations(tw, res)

	return tw.Flush()
}

func writeGraphletDistribution(tw *tabwriter.Writer, res result.AnalysisResult) {
	fmt.Fprintln(tw, "Graphlet Distribution")
	all := res.GraphletCounts.All()
	total := res.GraphletCounts.Total()
	var maxFreq float64
	for _, v := range all {
		freq := 0.0
		if total > 0 {
			freq = v / total
		}
		if freq > maxFreq {
			maxFreq = freq
		}
	}
	for i, v := range all {
		freq := 0.0
		if total > 0 {
			freq = v / total
		}
		barLen := 0
		if maxFreq > 0 {
			barLen = int((freq / maxFreq) * barWidth)
		}
		fmt.Fprintf(tw, "%s\t%.0f\t%.3f\t%s\n", graphletName(i), v, freq, bar(barLen, barWidth))
	}
	fmt.Fprintln(tw)
}

func writeClassification(tw *tabwriter.Writer, res result.AnalysisResult) {
	if len(res.Classifications) == 0 {
		return
	}
	top := res.Classifications[0]
	fmt.Fprintf(tw, "Pattern Classification\n%s\tconfidence %.1f%%\n", top.Label, top.Similarity*100)
	for _, m := range res.Classifications {
		barLen := int(m.Similarity * barWidth)
		marker := ""
		if m.PatternName == top.PatternName {
			marker = " <-"
		}
		fmt.Fprintf(tw, "%s\t%.1f%%\t%s%s\n", m.PatternName, m.Similarity*100, bar(barLen, barWidth), marker)
	}
	fmt.Fprintln(tw)
}

func writeRecommendations(tw *tabwriter.Writer, res result.AnalysisResult) {
	fmt.Fprintln(tw, "Recommendations")
	if len(res.Classifications) == 0 || len(res.Classifications[0].Recommendations) == 0 {
		fmt.Fprintln(tw, "  No specific recommendations.")
		return
	}
	for _, r := range res.Classifications[0].Recommendations {
		fmt.Fprintf(tw, "  - %s\n", r)
	}
}

func bar(filled, width int) string {
	if filled > width {
		filled = width
	}
	b := make([]byte, width)
	for i := range b {
		if i < filled {
			b[i] = '#'
		} else {
			b[i] = '.'
		}
	}
	return string(b)
}
