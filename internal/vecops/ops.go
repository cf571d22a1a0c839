// Package vecops provides the elementwise array operations the integrator
// needs: power shifts, products, trig tables and reductions.
//
// Reductions and scaling delegate to github.com/tphakala/simd, products and
// spans to gonum's floats package. Every function that builds a power-shifted
// integrand writes into a fresh or caller-supplied buffer and never modifies
// its inputs.
package vecops

import (
	"math"

	"github.com/tphakala/go-spherical-bessel/internal/mathutil"
	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/floats"
)

// Ops bundles the accelerated kernels behind function pointers so callers
// can swap in the pure Go references (see Reference).
type Ops struct {
	// Sum returns the sum of all elements.
	Sum func(a []float64) float64

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s.
	// dst and a may alias.
	Scale func(dst, a []float64, s float64)
}

var (
	simdOps = Ops{
		Sum:   f64.Sum,
		Scale: f64.Scale,
	}
	refOps = Ops{
		Sum:   floats.Sum,
		Scale: scaleRef,
	}
)

// Default returns the SIMD-backed operations.
func Default() *Ops {
	return &simdOps
}

// Reference returns pure Go implementations of the same operations.
func Reference() *Ops {
	return &refOps
}

func scaleRef(dst, a []float64, s float64) {
	floats.ScaleTo(dst, s, a)
}

// Mul returns dst[i] = a[i]*b[i], allocating dst when nil.
func Mul(dst, a, b []float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(a))
	}
	return floats.MulTo(dst, a, b)
}

// PowerShift returns dst[i] = c * f[i] * x[i]^k, allocating dst when nil.
func PowerShift(dst, x, f []float64, k int, c float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(x))
	}
	for i, xi := range x {
		dst[i] = c * f[i] * mathutil.IntPow(xi, k)
	}
	return dst
}

// PowerSeries returns dst[i] = f[i] * Σ t.Coeff * x[i]^(t.Exp+n), allocating
// dst when nil. An empty term list yields zeros.
func PowerSeries(dst, x, f []float64, terms []mathutil.Term, n int) []float64 {
	if dst == nil {
		dst = make([]float64, len(x))
	}
	for i, xi := range x {
		dst[i] = f[i] * mathutil.EvalTerms(terms, xi, n)
	}
	return dst
}

// SinCos returns freshly allocated tables of sin(x[i]) and cos(x[i]).
func SinCos(x []float64) (sinx, cosx []float64) {
	sinx = make([]float64, len(x))
	cosx = make([]float64, len(x))
	for i, xi := range x {
		sinx[i], cosx[i] = math.Sincos(xi)
	}
	return sinx, cosx
}
