// Package testutil provides reusable test helpers for the integration tests:
// sample grids, tabulated functions and tolerance assertions.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance    = 1e-10
	RegressionTolerance = 1e-6
	IntegralTolerance   = 1e-3
	CrossCheckTolerance = 1e-4
)

// LogGrid returns n points spaced evenly in log10 between 10^lo and 10^hi,
// the numpy 10**linspace(lo, hi, n) grid.
func LogGrid(lo, hi float64, n int) []float64 {
	return floats.LogSpan(make([]float64, n), math.Pow(10, lo), math.Pow(10, hi))
}

// LinGrid returns n points spaced evenly between lo and hi.
func LinGrid(lo, hi float64, n int) []float64 {
	return floats.Span(make([]float64, n), lo, hi)
}

// Tabulate samples fn at every x.
func Tabulate(x []float64, fn func(float64) float64) []float64 {
	f := make([]float64, len(x))
	for i, xi := range x {
		f[i] = fn(xi)
	}
	return f
}

// Ones returns a slice of n ones.
func Ones(n int) []float64 {
	f := make([]float64, n)
	for i := range f {
		f[i] = 1
	}
	return f
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertMonotonic verifies that a slice is strictly increasing.
func AssertMonotonic(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] <= s[i-1] {
			return assert.Fail(t, "not strictly increasing",
				"s[%d]=%g <= s[%d]=%g", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%g, actual=%g)",
		relError, tolerance, expected, actual)
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t *testing.T, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, "value out of range",
			"value %g is outside range [%g, %g]", value, minVal, maxVal)
	}
	return true
}
