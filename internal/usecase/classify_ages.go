package usecase

import (
	"context"
	"fmt"

	"github.com/axzolotle/learning-intern/internal/domain"
)

// ClassifyAges classifies ad-hoc ages that are not backed by a dataset file.
type ClassifyAges struct {
	workers int
}

func NewClassifyAges(workers int) *ClassifyAges {
	if workers < 1 {
		workers = 1
	}
	return &ClassifyAges{workers: workers}
}

// Execute names each age by its 1-based position ("#1", "#2", ...) and
// returns the rows in input order.
func (uc *ClassifyAges) Execute(ctx context.Context, ages []float64) ([]domain.ClassifiedRecord, error) {
	records := make([]domain.Record, len(ages))
	for i, a := range ages {
		records[i] = domain.Record{Name: fmt.Sprintf("#%d", i+1), Age: a}
	}
	return classifyParallel(ctx, records, uc.workers)
}
