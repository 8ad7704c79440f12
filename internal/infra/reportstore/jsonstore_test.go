package reportstore

import (
	"bufio"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/axzolotle/learning-intern/internal/domain"
)

func sampleReport(start time.Time) domain.Report {
	rows := domain.ClassifyRecords([]domain.Record{
		{Name: "A", Age: 15},
		{Name: "E", Age: 63},
	})
	return domain.Report{
		ID:          "8d1f4c7e-0000-4000-8000-000000000001",
		DatasetName: "Customer List",
		DatasetPath: "datasets/customers.yaml",
		StartedAt:   start,
		EndedAt:     start.Add(time.Millisecond),
		Rows:        rows,
		Summary:     domain.Summarize(rows),
	}
}

func TestSaveReport_CreatesJSONFile(t *testing.T) {
	tmp := t.TempDir()

	cfg := domain.DefaultConfig()
	store := NewJSONStore(tmp, cfg)

	start := time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC)
	id, err := store.SaveReport(sampleReport(start))
	if err != nil {
		t.Fatalf("SaveReport error: %v", err)
	}
	if id != "20260203T101112Z_customer-list" {
		t.Fatalf("unexpected id %q", id)
	}

	b, err := os.ReadFile(filepath.Join(tmp, "reports", id+".json"))
	if err != nil {
		t.Fatalf("read file: %v", err)
	}

	var decoded domain.Report
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.DatasetName != "Customer List" {
		t.Fatalf("expected dataset name, got=%q", decoded.DatasetName)
	}
	if len(decoded.Rows) != 2 || decoded.Rows[1].Group != domain.Senior {
		t.Fatalf("unexpected rows: %+v", decoded.Rows)
	}
	if decoded.Rows[0].Name != "A" {
		t.Fatalf("expected names kept without masking, got %q", decoded.Rows[0].Name)
	}
	if decoded.Summary.Count(domain.Teen) != 1 {
		t.Fatalf("expected summary to round-trip, got %+v", decoded.Summary)
	}
}

func TestSaveReport_MasksNamesWithoutMutatingInput(t *testing.T) {
	tmp := t.TempDir()

	cfg := domain.DefaultConfig()
	cfg.Masking.Enabled = true
	store := NewJSONStore(tmp, cfg)

	report := sampleReport(time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC))
	id, err := store.SaveReport(report)
	if err != nil {
		t.Fatalf("SaveReport error: %v", err)
	}
	if report.Rows[0].Name != "A" {
		t.Fatalf("expected original report not mutated")
	}

	b, err := os.ReadFile(filepath.Join(tmp, "reports", id+".json"))
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	var decoded domain.Report
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, r := range decoded.Rows {
		if r.Name != maskValue {
			t.Fatalf("expected masked name, got %q", r.Name)
		}
	}
	if decoded.Rows[0].Age != 15 || decoded.Rows[0].Group != domain.Teen {
		t.Fatalf("expected age and group kept, got %+v", decoded.Rows[0])
	}
}

func TestSaveReport_UsesNowAndPathWhenUnset(t *testing.T) {
	tmp := t.TempDir()
	now := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)

	store := NewJSONStore(tmp, domain.DefaultConfig(), WithNow(func() time.Time { return now }))

	id, err := store.SaveReport(domain.Report{DatasetPath: "datasets/walk_ins.csv"})
	if err != nil {
		t.Fatalf("SaveReport error: %v", err)
	}
	if id != "20261001T080000Z_walk-ins" {
		t.Fatalf("unexpected id %q", id)
	}
}

func TestSaveReport_WritesIndex(t *testing.T) {
	tmp := t.TempDir()
	cfg := domain.DefaultConfig()
	cfg.Paths.ReportsDir = "out"

	store := NewJSONStore(tmp, cfg, WithIndex(true))
	start := time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC)

	for i := 0; i < 2; i++ {
		if _, err := store.SaveReport(sampleReport(start.Add(time.Duration(i) * time.Second))); err != nil {
			t.Fatalf("SaveReport error: %v", err)
		}
	}

	f, err := os.Open(filepath.Join(tmp, "out", "index.jsonl"))
	if err != nil {
		t.Fatalf("open index: %v", err)
	}
	defer f.Close()

	var lines int
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var entry IndexEntry
		if err := json.Unmarshal(sc.Bytes(), &entry); err != nil {
			t.Fatalf("index line is not JSON: %v", err)
		}
		if entry.Dataset != "Customer List" || entry.Rows != 2 || entry.Masked {
			t.Fatalf("unexpected index entry: %+v", entry)
		}
		if entry.Groups["Teen"] != 1 || entry.Groups["Senior"] != 1 || entry.Groups["Young Adult"] != 0 {
			t.Fatalf("unexpected group counts: %v", entry.Groups)
		}
		if _, ok := entry.Groups["Adult"]; !ok {
			t.Fatalf("expected empty groups to be listed, got %v", entry.Groups)
		}
		lines++
	}
	if lines != 2 {
		t.Fatalf("expected 2 index lines, got %d", lines)
	}
}

func TestSaveReport_RejectsNonFiniteAges(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig(), WithIndex(true))

	for _, age := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		report := sampleReport(time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC))
		report.Rows[1].Age = age

		id, err := store.SaveReport(report)
		if !domain.IsKind(err, domain.KindInvalidInput) {
			t.Fatalf("age %v: expected KindInvalidInput, got id=%q err=%v", age, id, err)
		}
		if !strings.Contains(err.Error(), "rows[1].age") {
			t.Fatalf("age %v: expected field in error, got %v", age, err)
		}
	}

	if _, err := os.Stat(filepath.Join(tmp, "reports")); !os.IsNotExist(err) {
		t.Fatalf("expected nothing written, stat err=%v", err)
	}
}

func TestSaveReport_StampsUTC(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig())

	jakarta := time.FixedZone("WIB", 7*60*60)
	report := sampleReport(time.Date(2026, 2, 3, 17, 11, 12, 0, jakarta))

	id, err := store.SaveReport(report)
	if err != nil {
		t.Fatalf("SaveReport error: %v", err)
	}
	if id != "20260203T101112Z_customer-list" {
		t.Fatalf("unexpected id %q", id)
	}
	if report.StartedAt.Location() != jakarta {
		t.Fatal("expected input report not mutated")
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Customer List":  "customer-list",
		"  walk_ins  ":   "walk-ins",
		"A--B":           "a-b",
		"***":            "",
		"Ünïcode Names!": "n-code-names",
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Errorf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
