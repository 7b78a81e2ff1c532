// Package grades implements the planner's grade computations: the
// per-course weighted average over arbitrary graded components, and the
// stricter two-component (lecture/exercise) calculator with its discrete
// grade bands.
//
// The two calculators deliberately differ in how they treat bad numbers.
// The weighted average is permissive: an unparseable weight or score counts
// as 0 for that field only. The two-component calculator rejects any
// non-numeric input outright. Callers must not unify the two policies.
package grades

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrInvalidInput reports a two-component input that does not parse
	// as a number.
	ErrInvalidInput = errors.New("grades: all fields must be numbers")

	// ErrInvalidWeight reports two-component weights that do not sum to
	// exactly 100.
	ErrInvalidWeight = errors.New("grades: total weight must be exactly 100")
)

// Weighted is one graded component: a weight and a score, both percentages
// kept as entered by the user.
type Weighted struct {
	Weight string
	Score  string
}

// WeightedAverage computes the weighted percentage over components.
// Weights are normalized by their own sum, so they need not total 100.
// An empty sequence, or one whose weights are all zero or unparseable,
// yields 0. The result is not clamped to [0,100].
func WeightedAverage(components []Weighted) float64 {
	var totalWeight, weightedSum float64
	for _, c := range components {
		weight := parseLenient(c.Weight)
		score := parseLenient(c.Score)
		totalWeight += weight
		weightedSum += weight * score / 100
	}
	if totalWeight == 0 {
		return 0
	}
	return weightedSum / totalWeight * 100
}

// parseLenient parses a percentage field, treating anything unparseable
// (including empty) as 0.
func parseLenient(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// Result is one two-component computation, as shown to the user.
type Result struct {
	ID           string  `json:"id"`
	FinalPercent float64 `json:"finalPercent"` // rounded to 2 decimals
	Point        int     `json:"grade"`
	Label        string  `json:"description"`
}

// Grade bands, descending; first match wins. Thresholds are inclusive on
// the lower bound of each band.
var bands = []struct {
	min   float64
	point int
	label string
}{
	{90, 10, "Excellent"},
	{80, 9, "Very Good"},
	{70, 8, "Good"},
	{60, 7, "Satisfactory"},
	{50, 6, "Sufficient"},
}

// TwoComponent computes the final percentage and discrete grade from a
// lecture/exercise split. All four inputs must parse as numbers
// (ErrInvalidInput) and the two weights must sum to exactly 100
// (ErrInvalidWeight). No partial result is produced on failure.
func TwoComponent(lectureWeight, exerciseWeight, lectureScore, exerciseScore string) (Result, error) {
	lw, err1 := strconv.ParseFloat(strings.TrimSpace(lectureWeight), 64)
	ew, err2 := strconv.ParseFloat(strings.TrimSpace(exerciseWeight), 64)
	ls, err3 := strconv.ParseFloat(strings.TrimSpace(lectureScore), 64)
	es, err4 := strconv.ParseFloat(strings.TrimSpace(exerciseScore), 64)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return Result{}, ErrInvalidInput
	}
	if lw+ew != 100 {
		return Result{}, ErrInvalidWeight
	}

	final := (ls*lw + es*ew) / 100

	point, label := 5, "Fail"
	for _, b := range bands {
		if final >= b.min {
			point, label = b.point, b.label
			break
		}
	}

	return Result{
		FinalPercent: math.Round(final*100) / 100,
		Point:        point,
		Label:        label,
	}, nil
}
