package domain

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// StandardEdges are the bin edges used for interval binning of ages.
var StandardEdges = []float64{0, YoungAdultFrom, AdultFrom, SeniorFrom, 100}

// Bins assigns a label by locating a value between consecutive edges.
//
// With Right=false the intervals are [lo, hi); with Right=true they are
// (lo, hi]. IncludeLowest additionally places a value equal to the first edge
// in the first interval. Values outside the edges are left unbinned.
type Bins struct {
	Edges         []float64
	Labels        []AgeGroup
	Right         bool
	IncludeLowest bool
}

// StandardBins returns StandardEdges labelled with Groups().
func StandardBins(right, includeLowest bool) Bins {
	edges := make([]float64, len(StandardEdges))
	copy(edges, StandardEdges)
	return Bins{
		Edges:         edges,
		Labels:        Groups(),
		Right:         right,
		IncludeLowest: includeLowest,
	}
}

func (b Bins) Validate() error {
	if len(b.Edges) < 2 {
		return invalidBins("at least two edges are required")
	}
	for i := 1; i < len(b.Edges); i++ {
		if !(b.Edges[i] > b.Edges[i-1]) {
			return invalidBins(fmt.Sprintf("edges must increase monotonically (edges[%d]=%g, edges[%d]=%g)", i-1, b.Edges[i-1], i, b.Edges[i]))
		}
	}
	if len(b.Labels) != len(b.Edges)-1 {
		return invalidBins(fmt.Sprintf("expected %d labels for %d edges, got %d", len(b.Edges)-1, len(b.Edges), len(b.Labels)))
	}
	return nil
}

// Cut returns the label of the interval containing age. The boolean is false
// when age is NaN or falls outside every interval.
func (b Bins) Cut(age float64) (AgeGroup, bool) {
	n := len(b.Edges)
	if n < 2 || len(b.Labels) < n-1 || math.IsNaN(age) {
		return "", false
	}

	var idx int
	if b.Right {
		idx = sort.Search(n, func(i int) bool { return b.Edges[i] >= age })
	} else {
		idx = sort.Search(n, func(i int) bool { return b.Edges[i] > age })
	}
	if b.IncludeLowest && age == b.Edges[0] {
		idx = 1
	}

	if idx == 0 || idx == n {
		return "", false
	}
	return b.Labels[idx-1], true
}

func (b Bins) String() string {
	if len(b.Edges) < 2 {
		return "bins(empty)"
	}
	open, end := "[", ")"
	if b.Right {
		open, end = "(", "]"
	}
	parts := make([]string, 0, len(b.Edges)-1)
	for i := 1; i < len(b.Edges); i++ {
		o := open
		if i == 1 && b.IncludeLowest {
			o = "["
		}
		parts = append(parts, fmt.Sprintf("%s%g, %g%s", o, b.Edges[i-1], b.Edges[i], end))
	}
	return strings.Join(parts, " ")
}

func invalidBins(msg string) error {
	return &OpError{
		Op:   "domain.bins",
		Kind: KindInvalidConfig,
		Err:  fmt.Errorf("%s: %w", msg, ErrInvalidConfig),
	}
}
