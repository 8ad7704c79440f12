package usecase

import (
	"context"

	"github.com/axzolotle/learning-intern/internal/domain"
)

// BinningRow compares the canonical group of one age with its binned group.
type BinningRow struct {
	Name      string          `json:"name"`
	Age       float64         `json:"age"`
	Canonical domain.AgeGroup `json:"canonical"`
	Binned    domain.AgeGroup `json:"binned,omitempty"`
	Unbinned  bool            `json:"unbinned,omitempty"`
	Agree     bool            `json:"agree"`
	Probe     bool            `json:"probe,omitempty"`
}

type BinningComparison struct {
	Bins      string       `json:"bins"`
	Rows      []BinningRow `json:"rows"`
	Divergent int          `json:"divergent"`
}

type CompareBinning struct {
	probes bool
}

type CompareOption func(*CompareBinning)

// WithEdgeProbes appends one row per bin edge so divergence on the edges is
// visible even when no record sits on one.
func WithEdgeProbes(enabled bool) CompareOption {
	return func(uc *CompareBinning) { uc.probes = enabled }
}

func NewCompareBinning(opts ...CompareOption) *CompareBinning {
	uc := &CompareBinning{}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *CompareBinning) Execute(ctx context.Context, records []domain.Record, bins domain.Bins) (BinningComparison, error) {
	if err := bins.Validate(); err != nil {
		return BinningComparison{}, err
	}

	out := BinningComparison{
		Bins: bins.String(),
		Rows: make([]BinningRow, 0, len(records)+len(bins.Edges)),
	}

	add := func(name string, age float64, probe bool) {
		row := BinningRow{
			Name:      name,
			Age:       age,
			Canonical: domain.Classify(age),
			Probe:     probe,
		}
		if g, ok := bins.Cut(age); ok {
			row.Binned = g
			row.Agree = g == row.Canonical
		} else {
			row.Unbinned = true
		}
		if !row.Agree {
			out.Divergent++
		}
		out.Rows = append(out.Rows, row)
	}

	for _, r := range records {
		if err := ctx.Err(); err != nil {
			return BinningComparison{}, err
		}
		add(r.Name, r.Age, false)
	}

	if uc.probes {
		for _, e := range bins.Edges {
			add("edge", e, true)
		}
	}

	return out, nil
}
