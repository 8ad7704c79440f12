package domain

import "fmt"

// AgeGroup is a categorical label derived from a numeric age.
type AgeGroup string

const (
	Teen       AgeGroup = "Teen"
	YoungAdult AgeGroup = "Young Adult"
	Adult      AgeGroup = "Adult"
	Senior     AgeGroup = "Senior"
)

// Lower bounds (inclusive) of each group after Teen, in years.
const (
	YoungAdultFrom = 17
	AdultFrom      = 35
	SeniorFrom     = 50
)

// Groups returns every AgeGroup in ascending age order.
func Groups() []AgeGroup {
	return []AgeGroup{Teen, YoungAdult, Adult, Senior}
}

func (g AgeGroup) String() string { return string(g) }

// Valid reports whether g is one of the four known groups.
func (g AgeGroup) Valid() bool {
	switch g {
	case Teen, YoungAdult, Adult, Senior:
		return true
	}
	return false
}

// ParseAgeGroup accepts the display label ("Young Adult") or the compact
// identifier ("YoungAdult").
func ParseAgeGroup(s string) (AgeGroup, error) {
	switch s {
	case "Teen":
		return Teen, nil
	case "Young Adult", "YoungAdult":
		return YoungAdult, nil
	case "Adult":
		return Adult, nil
	case "Senior":
		return Senior, nil
	}
	return "", &OpError{
		Op:   "domain.parse_age_group",
		Kind: KindInvalidInput,
		Err:  fmt.Errorf("unknown age group %q: %w", s, ErrInvalidInput),
	}
}

// Classify maps an age in years to its group. Boundaries are left-inclusive and
// checked in ascending order, so the first matching threshold wins:
//
//	age < 17        Teen
//	17 <= age < 35  Young Adult
//	35 <= age < 50  Adult
//	age >= 50       Senior
//
// Classify never fails. Negative ages are Teen; NaN is Senior because it fails
// every "<" comparison. Use ValidateRecord to reject such input first.
func Classify(age float64) AgeGroup {
	switch {
	case age < YoungAdultFrom:
		return Teen
	case age < AdultFrom:
		return YoungAdult
	case age < SeniorFrom:
		return Adult
	default:
		return Senior
	}
}

// ClassifyAll classifies each age and returns a new slice aligned by index with
// ages. The input is not modified.
func ClassifyAll(ages []float64) []AgeGroup {
	out := make([]AgeGroup, len(ages))
	for i, a := range ages {
		out[i] = Classify(a)
	}
	return out
}
