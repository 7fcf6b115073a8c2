// Package classify ranks an observed signature.Signature against the
// built-in pattern.ReferencePattern table.
package classify

import (
	"errors"
	"fmt"
	"sort"

	"github.com/memgraph-project/memgraph/graphlet"
	"github.com/memgraph-project/memgraph/pattern"
	"github.com/memgraph-project/memgraph/signature"
)

// ErrConfigurationError is returned when a Classifier is constructed with
// an out-of-range threshold.
var ErrConfigurationError = errors.New("classify: invalid configuration")

// UnknownLabel is the label reported when no reference pattern exceeds
// the configured threshold.
const UnknownLabel = "UNKNOWN"

const defaultThreshold = 0.6

// EvidenceComponent names one graphlet dimension's contribution
// (observed[i] * reference[i]) to the top match's cosine similarity.
type EvidenceComponent struct {
	Graphlet     graphlet.GraphletID
	Contribution float64
}

// PatternMatch is one ranked candidate in a classification result.
type PatternMatch struct {
	// Label is the name reported to the caller: the pattern's own name
	// when it clears the threshold, or UnknownLabel otherwise.
	Label string
	// PatternName is the underlying best-matching reference pattern name,
	// always preserved for reporting even when Label is UnknownLabel.
	PatternName string
	Similarity  float64
	// LowConfidence is set only on the single fallback match returned
	// when nothing clears the threshold.
	LowConfidence bool
	// Evidence is populated only for the top-ranked match: the three
	// graphlet components contributing most to its similarity score.
	Evidence []EvidenceComponent
	// Recommendations is copied from the matched reference pattern, even
	// when Label is UnknownLabel (PatternName still names the closest
	// pattern, whose recommendations remain relevant).
	Recommendations []string
}

// Result is the outcome of classifying one Signature.
type Result struct {
	Matches []PatternMatch
	// EmptyInput distinguishes an all-zero Signature (e.g. from an empty
	// graph) from a signature that simply matched nothing: it is never
	// treated as an error.
	EmptyInput bool
}

// Classifier ranks signatures against a fixed reference pattern table.
type Classifier struct {
	threshold float64
	patterns  []pattern.ReferencePattern
}

// Option customizes a Classifier under construction.
type Option func(*Classifier)

// WithThreshold sets τ, the minimum cosine similarity a pattern must
// reach to be retained in the ranked result.
func WithThreshold(tau float64) Option {
	return func(c *Classifier) { c.threshold = tau }
}

// New constructs a Classifier against the built-in reference patterns,
// resolving a deterministic default threshold. Returns
// ErrConfigurationError if the resolved threshold is outside [0, 1].
func New(opts ...Option) (*Classifier, error) {
	c := &Classifier{threshold: defaultThreshold, patterns: pattern.Builtin()}
	for _, opt := range opts {
		opt(c)
	}
	if c.threshold < 0 || c.threshold > 1 {
		return nil, fmt.Errorf("%w: classifier_threshold %v outside [0,1]", ErrConfigurationError, c.threshold)
	}
	return c, nil
}

// Classify ranks sig against every reference pattern, retaining those at
// or above the threshold, longest-similarity-first, ties broken by
// lexicographic pattern name. If none clear the threshold, the result
// carries a single UnknownLabel match for the best-scoring pattern. An
// all-zero signature never reaches comparison: it returns an empty,
// EmptyInput result.
func (c *Classifier) Classify(sig signature.Signature) Result {
	if sig.IsEmpty() {
		return Result{EmptyInput: true}
	}

	type scored struct {
		p   pattern.ReferencePattern
		sim float64
	}
	all := make([]scored, len(c.patterns))
	for i, p := range c.patterns {
		all[i] = scored{p: p, sim: signature.CosineSimilarity(sig.Vector, p.Vector)}
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].sim != all[j].sim {
			return all[i].sim > all[j].sim
		}
		return all[i].p.Name < all[j].p.Name
	})

	var matches []PatternMatch
	for _, s := range all {
		if s.sim >= c.threshold {
			matches = append(matches, PatternMatch{
				Label:           s.p.Name,
				PatternName:     s.p.Name,
				Similarity:      s.sim,
				Recommendations: s.p.Recommendations,
			})
		}
	}

	if len(matches) == 0 {
		best := all[0]
		matches = []PatternMatch{{
			Label:           UnknownLabel,
			PatternName:     best.p.Name,
			Similarity:      best.sim,
			LowConfidence:   true,
			Recommendations: best.p.Recommendations,
		}}
	}

	matches[0].Evidence = topEvidence(sig, bestVectorFor(matches[0].PatternName, c.patterns))
	return Result{Matches: matches}
}

func bestVectorFor(name string, patterns []pattern.ReferencePattern) [9]float64 {
	for _, p := range patterns {
		if p.Name == name {
			return p.Vector
		}
	}
	return [9]float64{}
}

// topEvidence returns the three graphlet dimensions with the largest
// aᵢbᵢ contribution to the cosine similarity between sig and ref.
func topEvidence(sig signature.Signature, ref [9]float64) []EvidenceComponent {
	all := make([]EvidenceComponent, 9)
	for i := 0; i < 9; i++ {
		all[i] = EvidenceComponent{
			Graphlet:     graphlet.GraphletID(i),
			Contribution: sig.Vector[i] * ref[i],
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Contribution > all[j].Contribution })
	if len(all) > 3 {
		all = all[:3]
	}
	return all
}
