// Package signature derives a comparable 9-dimensional fingerprint from a
// GraphletCount and provides the similarity measures the classifier uses
// to rank reference patterns against it.
package signature

import (
	"math"

	"github.com/memgraph-project/memgraph/graphlet"
)

// dims is the number of graphlet dimensions, G0..G8.
const dims = 9

// Signature is a normalized graphlet-frequency vector plus a handful of
// derived ratios useful for quick, human-readable characterization.
type Signature struct {
	Vector [dims]float64

	EdgeRatio     float64
	PathRatio     float64
	StarRatio     float64
	TriangleRatio float64
	CycleRatio    float64
}

// FromCounts normalizes counts to sum to 1 (an all-zero input, e.g. an
// empty graph, yields an all-zero Signature rather than dividing by zero)
// and computes the derived ratios.
func FromCounts(counts graphlet.GraphletCount) Signature {
	all := counts.All()
	total := counts.Total()

	var sig Signature
	if total > 0 {
		for i, v := range all {
			sig.Vector[i] = v / total
		}
	}

	v := sig.Vector
	sig.EdgeRatio = v[graphlet.G0]
	sig.PathRatio = v[graphlet.G1] + v[graphlet.G3]
	sig.StarRatio = v[graphlet.G4]
	sig.TriangleRatio = v[graphlet.G2] + v[graphlet.G6] + v[graphlet.G7] + v[graphlet.G8]
	sig.CycleRatio = v[graphlet.G5]

	return sig
}

// IsEmpty reports whether the signature carries no graphlet mass at all
// (the classifier's distinguished empty-input case).
func (s Signature) IsEmpty() bool {
	for _, v := range s.Vector {
		if v != 0 {
			return false
		}
	}
	return true
}

// CosineSimilarity returns cos(a,b) = Σaᵢbᵢ / (‖a‖·‖b‖), which lies in
// [0,1] since every component is non-negative. Returns 0 if either vector
// has zero norm.
func CosineSimilarity(a, b [dims]float64) float64 {
	var dot, na, nb float64
	for i := 0; i < dims; i++ {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// EuclideanDistance returns the L2 distance between a and b.
func EuclideanDistance(a, b [dims]float64) float64 {
	var sum float64
	for i := 0; i < dims; i++ {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// ManhattanDistance returns the L1 distance between a and b.
func ManhattanDistance(a, b [dims]float64) float64 {
	var sum float64
	for i := 0; i < dims; i++ {
		sum += math.Abs(a[i] - b[i])
	}
	return sum
}
