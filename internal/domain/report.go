package domain

import "time"

// Report is the persisted result of classifying one dataset.
type Report struct {
	ID string `json:"id"`

	DatasetName string `json:"dataset"`
	DatasetPath string `json:"dataset_path"`

	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`

	Rows    []ClassifiedRecord `json:"rows"`
	Summary Summary            `json:"summary"`
}
