// Package mathutil provides the spherical Bessel functions j_l and their
// closed-form trigonometric expansions.
package mathutil

import (
	"math"
)

// Term is one coefficient-power pair of a closed-form expansion. It
// contributes Coeff * x^Exp to the multiplier of sin(x) or cos(x).
type Term struct {
	Coeff float64
	Exp   int
}

// Expansion writes j_l(x) as
//
//	j_l(x) = (Σ Sin[i].Coeff x^Sin[i].Exp) sin x + (Σ Cos[i].Coeff x^Cos[i].Exp) cos x
type Expansion struct {
	Sin []Term
	Cos []Term
}

// expansions holds the closed forms for l = 0..4:
//
//	j0 = sin/x
//	j1 = sin/x² - cos/x
//	j2 = (3/x³ - 1/x) sin - (3/x²) cos
//	j3 = (15/x⁴ - 6/x²) sin - (15/x³ - 1/x) cos
//	j4 = (105/x⁵ - 45/x³ + 1/x) sin - (105/x⁴ - 10/x²) cos
var expansions = [MaxOrder + 1]Expansion{
	{
		Sin: []Term{{1, -1}},
	},
	{
		Sin: []Term{{1, -2}},
		Cos: []Term{{-1, -1}},
	},
	{
		Sin: []Term{{3, -3}, {-1, -1}},
		Cos: []Term{{-3, -2}},
	},
	{
		Sin: []Term{{15, -4}, {-6, -2}},
		Cos: []Term{{-15, -3}, {1, -1}},
	},
	{
		Sin: []Term{{105, -5}, {-45, -3}, {1, -1}},
		Cos: []Term{{-105, -4}, {10, -2}},
	},
}

// doubleFactorial holds (2l+1)!! for l = 0..4.
var doubleFactorial = [MaxOrder + 1]float64{1, 3, 15, 105, 945}

// SphericalExpansion returns the closed-form expansion of j_l.
// ok is false when l is outside 0..MaxOrder.
func SphericalExpansion(l int) (exp Expansion, ok bool) {
	if l < 0 || l > MaxOrder {
		return Expansion{}, false
	}
	return expansions[l], true
}

// SphericalJ computes the spherical Bessel function of the first kind j_l(x)
// for l = 0..4. It returns NaN for unsupported orders.
func SphericalJ(l int, x float64) float64 {
	s, c := math.Sincos(x)
	return SphericalJSinCos(l, x, s, c)
}

// SphericalJSinCos is SphericalJ with sin(x) and cos(x) supplied by the
// caller, for use with a precomputed trig table.
//
// Near the origin the power series is used:
//   - For |x| < 2: series, sinx and cosx are ignored
//   - Otherwise: closed form from the trigonometric expansion
func SphericalJSinCos(l int, x, sinx, cosx float64) float64 {
	if l < 0 || l > MaxOrder {
		return math.NaN()
	}
	if math.Abs(x) < seriesArgThreshold {
		return sphericalSeries(l, x)
	}
	return closedForm(l, x, sinx, cosx)
}

func closedForm(l int, x, sinx, cosx float64) float64 {
	e := expansions[l]
	return EvalTerms(e.Sin, x, 0)*sinx + EvalTerms(e.Cos, x, 0)*cosx
}

// EvalTerms returns Σ t.Coeff * x^(t.Exp+shift).
func EvalTerms(terms []Term, x float64, shift int) float64 {
	var sum float64
	for _, t := range terms {
		sum += t.Coeff * IntPow(x, t.Exp+shift)
	}
	return sum
}

// sphericalSeries evaluates the ascending series of j_l(x).
func sphericalSeries(l int, x float64) float64 {
	q := -seriesHalf * x * x
	term := 1.0
	sum := 1.0
	for k := 1; k <= seriesMaxTerms; k++ {
		odd := float64(seriesOddStride*(l+k) + seriesOddOffset)
		term *= q / (float64(k) * odd)
		sum += term
		if math.Abs(term) < seriesEpsilon*math.Abs(sum) {
			break
		}
	}
	return IntPow(x, l) / doubleFactorial[l] * sum
}

// IntPow computes x^k for integer k by repeated squaring. Negative k
// returns 1/x^|k|.
func IntPow(x float64, k int) float64 {
	if k < 0 {
		return 1 / IntPow(x, -k)
	}
	result := 1.0
	for k > 0 {
		if k&1 == 1 {
			result *= x
		}
		x *= x
		k >>= 1
	}
	return result
}
