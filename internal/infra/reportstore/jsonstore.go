// Package reportstore persists classification reports as JSON files under the
// workspace reports directory, with an optional JSONL index of every save.
package reportstore

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/axzolotle/learning-intern/internal/domain"
	"github.com/axzolotle/learning-intern/internal/ports"
)

const (
	indexFile = "index.jsonl"
	maskValue = "********"
	idLayout  = "20060102T150405Z"
)

type JSONStore struct {
	dir   string
	mask  bool
	index bool
	now   func() time.Time
}

type Option func(*JSONStore)

// WithIndex appends one line per saved report to <reports>/index.jsonl.
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.index = enabled }
}

func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewJSONStore stores reports in <root>/<cfg.Paths.ReportsDir>. Record names
// are masked on disk when cfg.Masking.Enabled is set.
func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	reports := strings.TrimSpace(cfg.Paths.ReportsDir)
	if reports == "" {
		reports = domain.DefaultConfig().Paths.ReportsDir
	}

	s := &JSONStore{
		dir:  filepath.Join(root, reports),
		mask: cfg.Masking.Enabled,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ReportStore = (*JSONStore)(nil)

// SaveReport writes <dir>/<UTC start>_<dataset slug>.json and returns the
// file stem as id. Rows with a non-finite age are refused before anything is
// written.
func (s *JSONStore) SaveReport(report domain.Report) (string, error) {
	if err := checkRows(report.Rows); err != nil {
		return "", err
	}

	out := s.prepare(report)
	id := reportID(out)
	path := filepath.Join(s.dir, id+".json")

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", storeErr("reportstore.marshal", path, err)
	}
	if err := s.writeFile(path, b); err != nil {
		return "", err
	}

	if s.index {
		_ = s.appendIndex(id, out)
	}
	return id, nil
}

// prepare returns the copy that goes to disk: start time stamped in UTC and
// names masked when configured. report itself is left untouched.
func (s *JSONStore) prepare(report domain.Report) domain.Report {
	out := report
	if out.StartedAt.IsZero() {
		out.StartedAt = s.now()
	}
	out.StartedAt = out.StartedAt.UTC()
	if !out.EndedAt.IsZero() {
		out.EndedAt = out.EndedAt.UTC()
	}

	out.Rows = make([]domain.ClassifiedRecord, len(report.Rows))
	copy(out.Rows, report.Rows)
	if s.mask {
		for i := range out.Rows {
			out.Rows[i].Name = maskValue
		}
	}
	return out
}

func (s *JSONStore) writeFile(path string, b []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return storeErr("reportstore.mkdir", s.dir, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return storeErr("reportstore.write", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return storeErr("reportstore.rename", path, err)
	}
	return nil
}

// IndexEntry is one line of index.jsonl.
type IndexEntry struct {
	ID        string         `json:"id"`
	ReportID  string         `json:"report_id,omitempty"`
	Dataset   string         `json:"dataset"`
	Rows      int            `json:"rows"`
	Groups    map[string]int `json:"groups"`
	Masked    bool           `json:"masked"`
	StartedAt time.Time      `json:"started_at"`
	EndedAt   time.Time      `json:"ended_at,omitzero"`
}

func (s *JSONStore) appendIndex(id string, report domain.Report) error {
	entry := IndexEntry{
		ID:        id,
		ReportID:  report.ID,
		Dataset:   report.DatasetName,
		Rows:      len(report.Rows),
		Groups:    make(map[string]int, len(report.Summary.Counts)),
		Masked:    s.mask,
		StartedAt: report.StartedAt,
		EndedAt:   report.EndedAt,
	}
	for _, c := range report.Summary.Counts {
		entry.Groups[c.Group.String()] = c.Count
	}

	line, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(s.dir, indexFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

func checkRows(rows []domain.ClassifiedRecord) error {
	for i, r := range rows {
		if math.IsNaN(r.Age) || math.IsInf(r.Age, 0) {
			return &domain.OpError{
				Op:   "reportstore.check",
				Kind: domain.KindInvalidInput,
				Err:  fmt.Errorf("field rows[%d].age: %v is not a finite age: %w", i, r.Age, domain.ErrInvalidInput),
			}
		}
	}
	return nil
}

// reportID is "<UTC start>_<slug>", the slug coming from the dataset name or,
// failing that, the dataset file stem.
func reportID(report domain.Report) string {
	slug := slugify(report.DatasetName)
	if slug == "" {
		base := filepath.Base(report.DatasetPath)
		slug = slugify(strings.TrimSuffix(base, filepath.Ext(base)))
	}
	if slug == "" {
		slug = "report"
	}
	return report.StartedAt.Format(idLayout) + "_" + slug
}

// slugify keeps runs of [a-z0-9] and joins them with single dashes.
func slugify(s string) string {
	parts := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < '0' || r > '9')
	})
	return strings.Join(parts, "-")
}

func storeErr(op, path string, err error) error {
	return &domain.OpError{Op: op, Kind: domain.KindExecution, Path: path, Err: err}
}
