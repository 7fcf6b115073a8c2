package reportio_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/memgraph-project/memgraph/classify"
	"github.com/memgraph-project/memgraph/graph"
	"github.com/memgraph-project/memgraph/graphlet"
	"github.com/memgraph-project/memgraph/reportio"
	"github.com/memgraph-project/memgraph/result"
	"github.com/memgraph-project/memgraph/signature"
)

func sampleResult(t *testing.T) result.AnalysisResult {
	t.Helper()
	g := graph.New()
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(1, 3, 1))

	counts, err := graphlet.Enumerate(context.Background(), g)
	require.NoError(t, err)

	c, err := classify.New(classify.WithThreshold(0))
	require.NoError(t, err)

	stats, err := result.StatsFromGraph(context.Background(), g)
	require.NoError(t, err)

	return result.New(result.TraceMeta{SourceID: "test.trace", TotalAccesses: 3}, stats, counts,
		c.Classify(signature.FromCounts(counts)), 3)
}

func TestWriteJSON_ProducesValidStableSchema(t *testing.T) {
	res := sampleResult(t)
	var buf bytes.Buffer
	require.NoError(t, reportio.WriteJSON(&buf, res))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Contains(t, decoded, "trace_meta")
	require.Contains(t, decoded, "graph_stats")
	require.Contains(t, decoded, "graphlet_counts")
	require.Contains(t, decoded, "classifications")
}

func TestWriteJSON_EmptyInputMarksFlag(t *testing.T) {
	res := result.New(result.TraceMeta{}, result.GraphStats{}, graphlet.GraphletCount{}, classify.Result{EmptyInput: true}, 3)
	var buf bytes.Buffer
	require.NoError(t, reportio.WriteJSON(&buf, res))
	require.Contains(t, buf.String(), `"empty_input": true`)
}

func TestMarshalMinimalJSON_CarriesTopPatternAndRecommendations(t *testing.T) {
	res := sampleResult(t)
	out, err := reportio.MarshalMinimalJSON(res)
	require.NoError(t, err)

	var decoded struct {
		Pattern         string   `json:"pattern"`
		Recommendations []string `json:"recommendations"`
	}
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Equal(t, res.Classifications[0].Label, decoded.Pattern)
	require.Equal(t, res.Classifications[0].Recommendations, decoded.Recommendations)
	require.NotEmpty(t, decoded.Recommendations)
}

func TestWriteText_RendersWithoutError(t *testing.T) {
	res := sampleResult(t)
	var buf bytes.Buffer
	require.NoError(t, reportio.WriteText(&buf, res, "test.trace"))
	require.NotEmpty(t, buf.String())
	require.Contains(t, buf.String(), "MemGraph Analysis Report")
}

func TestWriteText_EmptyInputShortCircuits(t *testing.T) {
	res := result.New(result.TraceMeta{}, result.GraphStats{}, graphlet.GraphletCount{}, classify.Result{EmptyInput: true}, 3)
	var buf bytes.Buffer
	require.NoError(t, reportio.WriteText(&buf, res, "empty"))
	require.Contains(t, buf.String(), "Empty input")
}
