package ports

import "github.com/axzolotle/learning-intern/internal/domain"

// DatasetLoader loads datasets from a source (e.g., filesystem).
type DatasetLoader interface {
	LoadDataset(path string) (domain.Dataset, error)
	ListDatasets(root string) ([]domain.DatasetRef, error)
}
