// Package frame adapts datasets to and from gota dataframes. CSV datasets are
// parsed here, and the table output renders a frame with a derived age_group column.
package frame

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/axzolotle/learning-intern/internal/domain"
)

const (
	ColName     = "name"
	ColAge      = "age"
	ColAgeGroup = "age_group"
)

// LoadCSV reads a CSV dataset from disk. The dataset is named after the file stem.
func LoadCSV(path string) (domain.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Dataset{}, &domain.OpError{
			Op:   "frame.load_csv",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	ds, err := ReadCSV(f, name)
	if err != nil {
		var oe *domain.OpError
		if errors.As(err, &oe) && oe.Path == "" {
			oe.Path = path
		}
		return domain.Dataset{}, err
	}
	return ds, nil
}

// ReadCSV parses a CSV with a header row holding at least "name" and "age".
// Extra columns are ignored. Names are taken literally; ages must be finite.
// A header with no rows is an empty dataset.
func ReadCSV(r io.Reader, name string) (domain.Dataset, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return domain.Dataset{}, invalid("csv", err.Error())
	}
	if len(rows) == 0 {
		return domain.Dataset{}, invalid("csv", "header row is required")
	}
	if len(rows) == 1 {
		if err := requireColumns(rows[0]); err != nil {
			return domain.Dataset{}, err
		}
		return domain.Dataset{Name: name, Records: []domain.Record{}}, nil
	}

	df := dataframe.LoadRecords(rows,
		dataframe.HasHeader(true),
		dataframe.NaNValues(nil),
		dataframe.WithTypes(map[string]series.Type{
			ColName: series.String,
			ColAge:  series.Float,
		}),
	)
	if df.Err != nil {
		return domain.Dataset{}, invalid("csv", df.Err.Error())
	}

	names := df.Col(ColName)
	if names.Err != nil {
		return domain.Dataset{}, invalid(ColName, "column is required")
	}
	ages := df.Col(ColAge)
	if ages.Err != nil {
		return domain.Dataset{}, invalid(ColAge, "column is required")
	}

	nameVals := names.Records()
	ageVals := ages.Float()
	nan := ages.IsNaN()

	ds := domain.Dataset{
		Name:    name,
		Records: make([]domain.Record, 0, df.Nrow()),
	}
	for i, age := range ageVals {
		if nan[i] || math.IsInf(age, 0) {
			return domain.Dataset{}, invalid(fmt.Sprintf("records[%d].age", i), "age must be a finite number")
		}
		ds.Records = append(ds.Records, domain.Record{Name: nameVals[i], Age: age})
	}
	return ds, nil
}

func requireColumns(header []string) error {
	for _, col := range []string{ColName, ColAge} {
		if !slices.Contains(header, col) {
			return invalid(col, "column is required")
		}
	}
	return nil
}

// FromDataset builds a two-column (name, age) frame in record order.
func FromDataset(ds domain.Dataset) dataframe.DataFrame {
	return dataframe.New(
		series.New(ds.Names(), series.String, ColName),
		series.New(ds.Ages(), series.Float, ColAge),
	)
}

// WithAgeGroup returns a new frame for ds with an age_group column taken from
// groups, which must be index-aligned with ds.Records. ds is not modified.
func WithAgeGroup(ds domain.Dataset, groups []domain.AgeGroup) (dataframe.DataFrame, error) {
	if len(groups) != len(ds.Records) {
		return dataframe.DataFrame{}, &domain.OpError{
			Op:   "frame.with_age_group",
			Kind: domain.KindExecution,
			Err:  fmt.Errorf("%d groups for %d records: %w", len(groups), len(ds.Records), domain.ErrExecution),
		}
	}

	labels := make([]string, len(groups))
	for i, g := range groups {
		labels[i] = g.String()
	}

	df := FromDataset(ds).Mutate(series.New(labels, series.String, ColAgeGroup))
	if df.Err != nil {
		return dataframe.DataFrame{}, &domain.OpError{
			Op:   "frame.with_age_group",
			Kind: domain.KindExecution,
			Err:  df.Err,
		}
	}
	return df, nil
}

// FromClassified is WithAgeGroup for rows that already carry their group.
func FromClassified(name string, rows []domain.ClassifiedRecord) (dataframe.DataFrame, error) {
	ds := domain.Dataset{Name: name, Records: make([]domain.Record, len(rows))}
	groups := make([]domain.AgeGroup, len(rows))
	for i, r := range rows {
		ds.Records[i] = r.Record
		groups[i] = r.Group
	}
	return WithAgeGroup(ds, groups)
}

func invalid(field, msg string) error {
	return &domain.OpError{
		Op:   "frame.read_csv",
		Kind: domain.KindInvalidConfig,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
