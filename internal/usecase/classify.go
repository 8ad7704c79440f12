package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/axzolotle/learning-intern/internal/domain"
)

// classifyParallel classifies records with at most workers goroutines. Each
// result is written at its record's index, so output order matches input
// order regardless of scheduling.
func classifyParallel(ctx context.Context, records []domain.Record, workers int) ([]domain.ClassifiedRecord, error) {
	out := make([]domain.ClassifiedRecord, len(records))
	if workers < 1 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, r := range records {
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = domain.ClassifiedRecord{Record: r, Group: domain.Classify(r.Age)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
