package fsdataset

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/axzolotle/learning-intern/internal/domain"
	"github.com/axzolotle/learning-intern/internal/infra/frame"
	"github.com/axzolotle/learning-intern/internal/ports"
)

type Loader struct {
	datasetsDir string
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{datasetsDir: "datasets"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type Option func(*Loader)

func WithDatasetsDir(dir string) Option {
	return func(l *Loader) { l.datasetsDir = dir }
}

var _ ports.DatasetLoader = (*Loader)(nil)

// LoadDataset reads a YAML (.yaml/.yml) or CSV (.csv) dataset.
func (l *Loader) LoadDataset(path string) (domain.Dataset, error) {
	if isCSV(path) {
		return frame.LoadCSV(path)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Dataset{}, &domain.OpError{
			Op:   "fsdataset.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var yd yamlDataset
	if err := yaml.Unmarshal(b, &yd); err != nil {
		return domain.Dataset{}, &domain.OpError{
			Op:   "fsdataset.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return mapDataset(path, yd)
}

func (l *Loader) ListDatasets(root string) ([]domain.DatasetRef, error) {
	dir := filepath.Join(root, l.datasetsDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "fsdataset.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.DatasetRef
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !IsDatasetFile(name) {
			continue
		}

		p := filepath.Join(dir, name)
		n := ""
		if !isCSV(name) {
			n, _ = readDatasetName(p)
		}
		if strings.TrimSpace(n) == "" {
			n = strings.TrimSuffix(name, filepath.Ext(name))
		}

		refs = append(refs, domain.DatasetRef{Name: n, Path: p})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

// IsDatasetFile reports whether name has an extension the loader understands.
func IsDatasetFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".csv":
		return true
	}
	return false
}

func isCSV(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".csv")
}

func readDatasetName(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var v struct {
		Name string `yaml:"name"`
	}
	if err := yaml.Unmarshal(b, &v); err != nil {
		return "", err
	}
	return v.Name, nil
}

type yamlDataset struct {
	Name    string       `yaml:"name"`
	Records []yamlRecord `yaml:"records"`
}

type yamlRecord struct {
	Name string   `yaml:"name"`
	Age  *float64 `yaml:"age"`
}

func mapDataset(path string, yd yamlDataset) (domain.Dataset, error) {
	name := strings.TrimSpace(yd.Name)
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	ds := domain.Dataset{
		Name:    name,
		Records: make([]domain.Record, 0, len(yd.Records)),
	}

	for i, r := range yd.Records {
		if r.Age == nil {
			return domain.Dataset{}, invalidField(path, fmt.Sprintf("records[%d].age", i), "age is required")
		}
		if math.IsNaN(*r.Age) || math.IsInf(*r.Age, 0) {
			return domain.Dataset{}, invalidField(path, fmt.Sprintf("records[%d].age", i), "age must be a finite number")
		}
		ds.Records = append(ds.Records, domain.Record{Name: r.Name, Age: *r.Age})
	}

	return ds, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "fsdataset.validate",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
