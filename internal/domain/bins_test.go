package domain

import (
	"math"
	"testing"
)

func TestBins_LeftClosedMatchesClassifyInsideEdges(t *testing.T) {
	b := StandardBins(false, false)
	for age := 0.0; age < 100; age += 0.5 {
		got, ok := b.Cut(age)
		if !ok {
			t.Fatalf("Cut(%g) unbinned", age)
		}
		if got != Classify(age) {
			t.Fatalf("Cut(%g) = %q, Classify = %q", age, got, Classify(age))
		}
	}
}

func TestBins_RightClosedDivergesOnEdges(t *testing.T) {
	b := StandardBins(true, true)

	cases := []struct {
		age  float64
		want AgeGroup
	}{
		{0, Teen},
		{17, Teen},
		{35, YoungAdult},
		{50, Adult},
		{100, Senior},
		{15, Teen},
		{22, YoungAdult},
		{47, Adult},
		{63, Senior},
	}
	for _, c := range cases {
		got, ok := b.Cut(c.age)
		if !ok {
			t.Fatalf("Cut(%g) unbinned", c.age)
		}
		if got != c.want {
			t.Errorf("Cut(%g) = %q, want %q", c.age, got, c.want)
		}
	}
}

func TestBins_IncludeLowest(t *testing.T) {
	if _, ok := StandardBins(true, false).Cut(0); ok {
		t.Fatal("expected 0 to be unbinned for (0, 17] without include-lowest")
	}
	if g, ok := StandardBins(true, true).Cut(0); !ok || g != Teen {
		t.Fatalf("expected 0 -> Teen with include-lowest, got %q ok=%v", g, ok)
	}
}

func TestBins_OutOfRange(t *testing.T) {
	b := StandardBins(false, false)
	for _, age := range []float64{-1, 100, 120, math.NaN()} {
		if g, ok := b.Cut(age); ok {
			t.Errorf("Cut(%g) = %q, expected unbinned", age, g)
		}
	}
}

func TestBins_Validate(t *testing.T) {
	if err := StandardBins(false, false).Validate(); err != nil {
		t.Fatalf("standard bins should be valid: %v", err)
	}

	bad := []Bins{
		{Edges: []float64{1}, Labels: nil},
		{Edges: []float64{0, 10, 10}, Labels: []AgeGroup{Teen, Adult}},
		{Edges: []float64{0, 10, 20}, Labels: []AgeGroup{Teen}},
	}
	for i, b := range bad {
		err := b.Validate()
		if err == nil {
			t.Fatalf("case %d: expected error", i)
		}
		if !IsKind(err, KindInvalidConfig) {
			t.Fatalf("case %d: expected KindInvalidConfig, got %v", i, err)
		}
	}
}

func TestBins_String(t *testing.T) {
	got := StandardBins(true, true).String()
	want := "[0, 17] (17, 35] (35, 50] (50, 100]"
	if got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestStandardBins_CopiesEdges(t *testing.T) {
	b := StandardBins(false, false)
	b.Edges[0] = -10
	if StandardEdges[0] != 0 {
		t.Fatal("StandardBins must not alias StandardEdges")
	}
}
