package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/axzolotle/learning-intern/internal/domain"
)

func TestClassifyDataset_ClassifiesAndSaves(t *testing.T) {
	start := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	clock := start
	store := &fakeStore{id: "20261018T090000Z_customers"}

	uc := NewClassifyDataset(
		fakeDatasetLoader{ds: customers()},
		store,
		WithWorkers(3),
		WithIDGenerator(func() string { return "report-1" }),
		WithClock(func() time.Time {
			clock = clock.Add(time.Second)
			return clock
		}),
	)

	report, id, err := uc.Execute(context.Background(), "datasets/customers.yaml")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if id != store.id {
		t.Fatalf("expected id %q, got %q", store.id, id)
	}
	if report.ID != "report-1" || report.DatasetName != "customers" || report.DatasetPath != "datasets/customers.yaml" {
		t.Fatalf("unexpected report header: %+v", report)
	}
	if !report.EndedAt.After(report.StartedAt) {
		t.Fatalf("expected EndedAt after StartedAt, got %v / %v", report.StartedAt, report.EndedAt)
	}

	groups := make([]domain.AgeGroup, len(report.Rows))
	for i, r := range report.Rows {
		groups[i] = r.Group
	}
	want := []domain.AgeGroup{domain.Teen, domain.YoungAdult, domain.Adult, domain.Adult, domain.Senior, domain.YoungAdult}
	if diff := cmp.Diff(want, groups); diff != "" {
		t.Fatalf("groups mismatch (-want +got):\n%s", diff)
	}
	if report.Summary.Total != 6 || report.Summary.Count(domain.YoungAdult) != 2 {
		t.Fatalf("unexpected summary: %+v", report.Summary)
	}
	if len(store.saved) != 1 {
		t.Fatalf("expected one saved report, got %d", len(store.saved))
	}
}

func TestClassifyDataset_OrderPreservedWithManyWorkers(t *testing.T) {
	ds := domain.Dataset{Name: "big"}
	for i := 0; i < 500; i++ {
		ds.Records = append(ds.Records, domain.Record{Name: fmt.Sprintf("r%03d", i), Age: float64(i % 90)})
	}

	uc := NewClassifyDataset(fakeDatasetLoader{ds: ds}, nil, WithWorkers(16))
	report, id, err := uc.Execute(context.Background(), "big.csv")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if id != "" {
		t.Fatalf("expected no id without store, got %q", id)
	}
	if diff := cmp.Diff(domain.ClassifyRecords(ds.Records), report.Rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifyDataset_DoesNotMutateDataset(t *testing.T) {
	ds := customers()
	before := append([]domain.Record(nil), ds.Records...)

	uc := NewClassifyDataset(fakeDatasetLoader{ds: ds}, nil, WithWorkers(4))
	if _, _, err := uc.Execute(context.Background(), "x"); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if diff := cmp.Diff(before, ds.Records); diff != "" {
		t.Fatalf("dataset mutated (-before +after):\n%s", diff)
	}
}

func TestClassifyDataset_LoadError(t *testing.T) {
	loadErr := &domain.OpError{Op: "fsdataset.load", Kind: domain.KindNotFound, Err: domain.ErrNotFound}
	store := &fakeStore{}

	uc := NewClassifyDataset(fakeDatasetLoader{err: loadErr}, store)
	_, _, err := uc.Execute(context.Background(), "missing.yaml")
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
	if len(store.saved) != 0 {
		t.Fatal("nothing should be saved on load error")
	}
}

func TestClassifyDataset_SaveErrorStillReturnsReport(t *testing.T) {
	saveErr := errors.New("disk full")
	uc := NewClassifyDataset(fakeDatasetLoader{ds: customers()}, &fakeStore{err: saveErr})

	report, id, err := uc.Execute(context.Background(), "x")
	if !errors.Is(err, saveErr) {
		t.Fatalf("expected saveErr, got %v", err)
	}
	if id != "" {
		t.Fatalf("expected empty id, got %q", id)
	}
	if len(report.Rows) != 6 {
		t.Fatalf("expected report rows despite save error, got %d", len(report.Rows))
	}
}

func TestClassifyDataset_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := &fakeStore{}
	uc := NewClassifyDataset(fakeDatasetLoader{ds: customers()}, store, WithWorkers(2))
	_, _, err := uc.Execute(ctx, "x")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(store.saved) != 0 {
		t.Fatal("nothing should be saved after cancellation")
	}
}

func TestClassifyDataset_IgnoresInvalidWorkerCount(t *testing.T) {
	uc := NewClassifyDataset(fakeDatasetLoader{ds: customers()}, nil, WithWorkers(0))
	if uc.workers != 1 {
		t.Fatalf("expected default of 1 worker, got %d", uc.workers)
	}
}

func TestClassifyAges(t *testing.T) {
	rows, err := NewClassifyAges(2).Execute(context.Background(), []float64{15, 22, 35, 47, 63, 29})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	want := []domain.ClassifiedRecord{
		{Record: domain.Record{Name: "#1", Age: 15}, Group: domain.Teen},
		{Record: domain.Record{Name: "#2", Age: 22}, Group: domain.YoungAdult},
		{Record: domain.Record{Name: "#3", Age: 35}, Group: domain.Adult},
		{Record: domain.Record{Name: "#4", Age: 47}, Group: domain.Adult},
		{Record: domain.Record{Name: "#5", Age: 63}, Group: domain.Senior},
		{Record: domain.Record{Name: "#6", Age: 29}, Group: domain.YoungAdult},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifyAges_Empty(t *testing.T) {
	rows, err := NewClassifyAges(0).Execute(context.Background(), nil)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}
