package domain

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestValidateRecord_OK(t *testing.T) {
	if err := ValidateRecord(0, Record{Name: "A", Age: 0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRecord_Failures(t *testing.T) {
	cases := []struct {
		rec   Record
		field string
	}{
		{Record{Name: " ", Age: 20}, "records[3].name"},
		{Record{Name: "A", Age: -1}, "records[3].age"},
		{Record{Name: "A", Age: math.NaN()}, "records[3].age"},
		{Record{Name: "A", Age: math.Inf(1)}, "records[3].age"},
	}
	for _, c := range cases {
		err := ValidateRecord(3, c.rec)
		if err == nil {
			t.Fatalf("expected error for %+v", c.rec)
		}
		if !IsKind(err, KindInvalidInput) {
			t.Fatalf("expected KindInvalidInput, got %v", err)
		}
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput in chain, got %v", err)
		}
		if !strings.Contains(err.Error(), c.field) {
			t.Fatalf("expected %s in error, got %v", c.field, err)
		}
	}
}

func TestValidateDataset_JoinsErrors(t *testing.T) {
	ds := Dataset{Records: []Record{
		{Name: "A", Age: 10},
		{Name: "", Age: 10},
		{Name: "C", Age: -2},
	}}

	err := ValidateDataset(ds)
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "records[1].name") || !strings.Contains(msg, "records[2].age") {
		t.Fatalf("expected both fields in error, got %v", err)
	}
	if strings.Contains(msg, "records[0]") {
		t.Fatalf("valid record reported: %v", err)
	}
	if !IsKind(err, KindInvalidInput) {
		t.Fatalf("expected KindInvalidInput, got %v", err)
	}
}

func TestValidateDataset_Valid(t *testing.T) {
	if err := ValidateDataset(sampleDataset()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
