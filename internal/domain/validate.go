package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ValidateRecord checks r before classification. Classify itself accepts any
// number; this is the boundary check for callers that want to reject bad input.
func ValidateRecord(i int, r Record) error {
	field := fmt.Sprintf("records[%d]", i)

	if strings.TrimSpace(r.Name) == "" {
		return invalidInput(field+".name", "name is required")
	}
	if math.IsNaN(r.Age) || math.IsInf(r.Age, 0) {
		return invalidInput(field+".age", fmt.Sprintf("age must be a finite number, got %v", r.Age))
	}
	if r.Age < 0 {
		return invalidInput(field+".age", fmt.Sprintf("age must not be negative, got %g", r.Age))
	}
	return nil
}

// ValidateDataset validates every record and joins the failures.
func ValidateDataset(ds Dataset) error {
	var errs []error
	for i, r := range ds.Records {
		if err := ValidateRecord(i, r); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func invalidInput(field, msg string) error {
	return &OpError{
		Op:   "domain.validate",
		Kind: KindInvalidInput,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, ErrInvalidInput),
	}
}
