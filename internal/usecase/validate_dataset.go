package usecase

import (
	"context"

	"github.com/axzolotle/learning-intern/internal/domain"
	"github.com/axzolotle/learning-intern/internal/ports"
)

type ValidateDataset struct {
	datasets ports.DatasetLoader
}

func NewValidateDataset(dl ports.DatasetLoader) *ValidateDataset {
	return &ValidateDataset{datasets: dl}
}

// Execute loads the dataset and checks every record without classifying it.
// All record failures are reported together.
func (uc *ValidateDataset) Execute(ctx context.Context, path string) (domain.Dataset, error) {
	ds, err := uc.datasets.LoadDataset(path)
	if err != nil {
		return domain.Dataset{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.Dataset{}, err
	}
	return ds, domain.ValidateDataset(ds)
}
