package usecase

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/axzolotle/learning-intern/internal/domain"
	"github.com/axzolotle/learning-intern/internal/ports"
)

type ClassifyDataset struct {
	datasets ports.DatasetLoader
	store    ports.ReportStore

	workers int
	newID   func() string
	now     func() time.Time
	log     *slog.Logger
}

type ClassifyOption func(*ClassifyDataset)

// WithWorkers bounds the classification fan-out. Values below 1 are ignored.
func WithWorkers(n int) ClassifyOption {
	return func(uc *ClassifyDataset) {
		if n >= 1 {
			uc.workers = n
		}
	}
}

func WithIDGenerator(fn func() string) ClassifyOption {
	return func(uc *ClassifyDataset) {
		if fn != nil {
			uc.newID = fn
		}
	}
}

func WithClock(now func() time.Time) ClassifyOption {
	return func(uc *ClassifyDataset) {
		if now != nil {
			uc.now = now
		}
	}
}

func WithLogger(l *slog.Logger) ClassifyOption {
	return func(uc *ClassifyDataset) {
		if l != nil {
			uc.log = l
		}
	}
}

// NewClassifyDataset wires the use case. store may be nil, in which case
// reports are returned but never persisted.
func NewClassifyDataset(dl ports.DatasetLoader, store ports.ReportStore, opts ...ClassifyOption) *ClassifyDataset {
	uc := &ClassifyDataset{
		datasets: dl,
		store:    store,
		workers:  1,
		newID:    uuid.NewString,
		now:      time.Now,
		log:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute loads the dataset at path, classifies every record and saves the
// report when a store is configured. The returned id is the store id ("" when
// nothing was saved). On a save failure the report is still returned.
func (uc *ClassifyDataset) Execute(ctx context.Context, path string) (domain.Report, string, error) {
	ds, err := uc.datasets.LoadDataset(path)
	if err != nil {
		return domain.Report{}, "", err
	}

	report := domain.Report{
		ID:          uc.newID(),
		DatasetName: ds.Name,
		DatasetPath: path,
		StartedAt:   uc.now(),
	}

	uc.log.Info("classify.start", "dataset", ds.Name, "path", path, "records", len(ds.Records), "workers", uc.workers)

	rows, err := classifyParallel(ctx, ds.Records, uc.workers)
	if err != nil {
		uc.log.Warn("classify.aborted", "dataset", ds.Name, "err", err)
		return domain.Report{}, "", err
	}

	report.Rows = rows
	report.Summary = domain.Summarize(rows)
	report.EndedAt = uc.now()

	for _, c := range report.Summary.Counts {
		uc.log.Debug("classify.group", "dataset", ds.Name, "group", c.Group.String(), "count", c.Count)
	}

	if uc.store == nil {
		uc.log.Info("classify.ok", "dataset", ds.Name, "saved", false)
		return report, "", nil
	}

	id, err := uc.store.SaveReport(report)
	if err != nil {
		uc.log.Error("report.save_failed", "dataset", ds.Name, "err", err)
		return report, "", err
	}

	uc.log.Info("report.saved", "dataset", ds.Name, "id", id, "report_id", report.ID)
	return report, id, nil
}
