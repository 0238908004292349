// Package contact identifies candidate contact vertices between two
// independently meshed 3D surfaces that are geometrically adjacent but not
// node coincident, so a downstream mechanical solver can impose contact
// constraints exactly where the surfaces touch.
//
// The selector consumes two ordered vertex coordinate sets and a single
// user parameter, samplesize: the number of nearest cross-surface vertex
// pairs used to derive the inclusion threshold on each surface. All
// vertices within their surface's threshold of the opposite surface are
// reported as contact candidates.
package contact

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// ErrInvalidInput indicates a missing selection or an empty vertex set
	// on either surface.
	ErrInvalidInput = errors.New("invalid surface input")
	// ErrInvalidParameter indicates a samplesize outside [1, min(NA, NB)].
	ErrInvalidParameter = errors.New("invalid samplesize parameter")
)

// Surface is an ordered set of mesh vertex positions in world space.
// A vertex's position in the slice is the stable identifier used to report
// contact candidates back to the owning mesh object.
type Surface []r3.Vec

// ContactSet holds the indices of the vertices of one surface which lie
// within the contact threshold of the opposite surface, ascending.
type ContactSet []int

// Distances are rounded to 5 decimal places before the threshold
// comparison so that floating point noise cannot split geometrically
// tied vertices at the cutoff.
const distPrecision = 1e5

func roundDist(d float64) float64 {
	return math.Round(d*distPrecision) / distPrecision
}

// MinDistances returns the minimum euclidean distance from each point of
// src to the point set dst. The result is indexed like src and rounded to
// 5 decimal places. Every pairwise distance is evaluated; at the intended
// scale of use (thousands of vertices) no spatial pruning is warranted.
func MinDistances(src, dst Surface) []float64 {
	dists := make([]float64, len(src))
	for i, p := range src {
		least := math.Inf(1)
		for _, q := range dst {
			if d := r3.Norm(r3.Sub(p, q)); d < least {
				least = d
			}
		}
		dists[i] = roundDist(least)
	}
	return dists
}

// Threshold returns the samplesize-th smallest entry of dists, where the
// rank is 1-indexed: Threshold(d, 1) is the least distance. dists is left
// unmodified. Threshold panics if samplesize is outside [1, len(dists)];
// ComputeContactSets validates the parameter before deriving thresholds.
func Threshold(dists []float64, samplesize int) float64 {
	sorted := append([]float64(nil), dists...)
	sort.Float64s(sorted)
	return sorted[samplesize-1]
}

// ComputeContactSets returns the contact candidate vertices of surface a
// against surface b and of b against a. A vertex qualifies when its
// minimum distance to the opposite surface does not exceed its surface's
// threshold, the samplesize-th smallest such distance. The two thresholds
// are derived independently and may differ.
//
// Inclusion at the threshold is inclusive of ties: a set may hold more
// than samplesize vertices when several lie at exactly the threshold
// distance. The result is deterministic for a given input and swapping a
// and b swaps the returned sets.
func ComputeContactSets(a, b Surface, samplesize int) (ContactSet, ContactSet, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, nil, fmt.Errorf("%w: surface with no vertices", ErrInvalidInput)
	}
	limit := min(len(a), len(b))
	if samplesize < 1 || samplesize > limit {
		return nil, nil, fmt.Errorf("%w: samplesize=%d, must be in range [1, %d]", ErrInvalidParameter, samplesize, limit)
	}
	distA := MinDistances(a, b)
	distB := MinDistances(b, a)
	setA := withinThreshold(distA, Threshold(distA, samplesize))
	setB := withinThreshold(distB, Threshold(distB, samplesize))
	return setA, setB, nil
}

func withinThreshold(dists []float64, threshold float64) ContactSet {
	set := make(ContactSet, 0, len(dists))
	for i, d := range dists {
		if d <= threshold {
			set = append(set, i)
		}
	}
	return set
}

func min(a, b int) int {
	if a <= b {
		return a
	}
	return b
}
