package classify_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/memgraph-project/memgraph/classify"
	"github.com/memgraph-project/memgraph/pattern"
	"github.com/memgraph-project/memgraph/signature"
)

func sigFromVector(v [9]float64) signature.Signature {
	// Reuse FromCounts' derived-ratio logic by hand since we want to
	// inject a pre-normalized vector directly in tests.
	sig := signature.Signature{Vector: v}
	sig.EdgeRatio = v[0]
	sig.PathRatio = v[1] + v[3]
	sig.StarRatio = v[4]
	sig.TriangleRatio = v[2] + v[6] + v[7] + v[8]
	sig.CycleRatio = v[5]
	return sig
}

func TestClassify_EmptySignatureYieldsEmptyInputMarker(t *testing.T) {
	c, err := classify.New()
	require.NoError(t, err)

	result := c.Classify(signature.Signature{})
	require.True(t, result.EmptyInput)
	require.Empty(t, result.Matches)
}

func TestClassify_ExactReferenceVectorMatchesItself(t *testing.T) {
	c, err := classify.New()
	require.NoError(t, err)

	working, ok := pattern.Lookup("WORKING_SET")
	require.True(t, ok)

	result := c.Classify(sigFromVector(working.Vector))
	require.False(t, result.EmptyInput)
	require.NotEmpty(t, result.Matches)
	require.Equal(t, "WORKING_SET", result.Matches[0].Label)
	require.InDelta(t, 1.0, result.Matches[0].Similarity, 1e-9)
	require.Len(t, result.Matches[0].Evidence, 3)
}

func TestClassify_MatchCarriesReferenceRecommendations(t *testing.T) {
	c, err := classify.New()
	require.NoError(t, err)

	working, ok := pattern.Lookup("WORKING_SET")
	require.True(t, ok)

	result := c.Classify(sigFromVector(working.Vector))
	require.NotEmpty(t, result.Matches)
	require.Equal(t, working.Recommendations, result.Matches[0].Recommendations)
}

func TestClassify_NothingClearsThresholdYieldsUnknown(t *testing.T) {
	c, err := classify.New(classify.WithThreshold(0.999))
	require.NoError(t, err)

	random, ok := pattern.Lookup("RANDOM")
	require.True(t, ok)
	// perturb slightly so it no longer matches itself exactly
	v := random.Vector
	v[0] -= 0.05
	v[3] += 0.05

	result := c.Classify(sigFromVector(v))
	require.Len(t, result.Matches, 1)
	require.Equal(t, classify.UnknownLabel, result.Matches[0].Label)
	require.True(t, result.Matches[0].LowConfidence)
	require.NotEmpty(t, result.Matches[0].PatternName)
	require.NotEmpty(t, result.Matches[0].Recommendations)
}

func TestClassify_RankedDescendingBySimilarity(t *testing.T) {
	c, err := classify.New(classify.WithThreshold(0))
	require.NoError(t, err)

	sequential, ok := pattern.Lookup("SEQUENTIAL")
	require.True(t, ok)

	result := c.Classify(sigFromVector(sequential.Vector))
	require.Len(t, result.Matches, 6)
	for i := 1; i < len(result.Matches); i++ {
		require.GreaterOrEqual(t, result.Matches[i-1].Similarity, result.Matches[i].Similarity)
	}
}

func TestNew_RejectsOutOfRangeThreshold(t *testing.T) {
	_, err := classify.New(classify.WithThreshold(1.5))
	require.True(t, errors.Is(err, classify.ErrConfigurationError))

	_, err = classify.New(classify.WithThreshold(-0.1))
	require.True(t, errors.Is(err, classify.ErrConfigurationError))
}
