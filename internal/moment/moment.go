// Package moment implements the elementary integration rules over a sampled
// function f(x_i):
//
//   - Sine moment:   ∫ f(x) x^k sin x dx
//   - Cosine moment: ∫ f(x) x^k cos x dx
//   - Direct:        ∫ f(x) x^k j_l(x) dx by the trapezoidal rule, stopping
//     where the grid becomes too coarse for the oscillation
//
// The sine and cosine rules take f as linear between samples and integrate
// the trigonometric kernel exactly, so they stay accurate when an interval
// spans many periods.
package moment

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-spherical-bessel/internal/mathutil"
	"github.com/tphakala/go-spherical-bessel/internal/vecops"
	"gonum.org/v1/gonum/integrate"
)

// Method selects the elementary rule.
type Method int

const (
	// MethodSine integrates f(x) x^k sin x.
	MethodSine Method = iota

	// MethodCosine integrates f(x) x^k cos x.
	MethodCosine

	// MethodDirect integrates f(x) x^k j_order(x) by the trapezoidal rule.
	MethodDirect
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case MethodSine:
		return "sine"
	case MethodCosine:
		return "cosine"
	case MethodDirect:
		return "direct"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Errors returned by Integrate.
var (
	// ErrInvalidInput indicates malformed sample arrays.
	ErrInvalidInput = errors.New("invalid input samples")

	// ErrInvalidOrder indicates an unsupported Bessel order or power.
	ErrInvalidOrder = errors.New("unsupported order or power")

	// ErrInvalidMethod indicates an unknown Method value.
	ErrInvalidMethod = errors.New("unknown integration method")
)

// Request describes one elementary integral.
type Request struct {
	// Method selects the rule.
	Method Method

	// Negate flips the sign of the result.
	Negate bool

	// Ops supplies the reduction kernels. Nil uses vecops.Default().
	Ops *vecops.Ops

	// X is the sample grid: strictly increasing, positive, finite.
	X []float64

	// F holds f(X[i]).
	F []float64

	// SinX and CosX optionally hold sin(X[i]) and cos(X[i]). When either is
	// nil both are computed from X.
	SinX []float64
	CosX []float64

	// Start skips the intervals before X[Start].
	Start int

	// Power is k in x^k. Sine and cosine moments accept 0..2; direct
	// quadrature accepts any integer.
	Power int

	// Order is l of j_l for direct quadrature.
	Order int

	// Threshold is the samples-per-cycle floor for direct quadrature.
	// Zero or negative integrates the whole grid.
	Threshold float64
}

// Integrate evaluates req.
//
// For sine and cosine moments next is len(X)-1. For direct quadrature next is
// the index where integration stopped; the integral covers [X[Start], X[next]].
func Integrate(req Request) (next int, value float64, err error) {
	switch req.Method {
	case MethodSine, MethodCosine:
		if req.Power < minExactPower || req.Power > maxExactPower {
			return 0, 0, fmt.Errorf("%w: %s moment power %d outside [%d, %d]",
				ErrInvalidOrder, req.Method, req.Power, minExactPower, maxExactPower)
		}
	case MethodDirect:
		if req.Order < 0 || req.Order > maxDirectOrder {
			return 0, 0, fmt.Errorf("%w: direct quadrature order %d outside [0, %d]",
				ErrInvalidOrder, req.Order, maxDirectOrder)
		}
	default:
		return 0, 0, fmt.Errorf("%w: %s", ErrInvalidMethod, req.Method)
	}

	if err := validate(&req); err != nil {
		return 0, 0, err
	}

	sinx, cosx := req.SinX, req.CosX
	if sinx == nil || cosx == nil {
		sinx, cosx = vecops.SinCos(req.X)
	}

	scale := 1.0
	if req.Negate {
		scale = -1
	}
	ops := req.Ops
	if ops == nil {
		ops = vecops.Default()
	}

	if req.Method == MethodDirect {
		next, value = direct(req.X, req.F, sinx, cosx, req.Start, req.Power, req.Order, req.Threshold)
		return next, scale * value, nil
	}

	value = oscillatory(ops, req.Method, req.X, req.F, sinx, cosx, req.Start, req.Power, scale)
	return len(req.X) - 1, value, nil
}

// ValidateGrid checks that x has at least two points and is positive,
// finite and strictly increasing.
func ValidateGrid(x []float64) error {
	if len(x) < minGridLength {
		return fmt.Errorf("%w: need at least %d samples, got %d", ErrInvalidInput, minGridLength, len(x))
	}
	if !(x[0] > 0) {
		return fmt.Errorf("%w: grid must be positive, x[0]=%g", ErrInvalidInput, x[0])
	}
	for i, xi := range x {
		if math.IsNaN(xi) || math.IsInf(xi, 0) {
			return fmt.Errorf("%w: x[%d] is not finite", ErrInvalidInput, i)
		}
		if i > 0 && xi <= x[i-1] {
			return fmt.Errorf("%w: grid not strictly increasing at x[%d]=%g", ErrInvalidInput, i, xi)
		}
	}
	return nil
}

// ValidateValues checks that f pairs with a grid of n points and is finite.
func ValidateValues(f []float64, n int) error {
	if len(f) != n {
		return fmt.Errorf("%w: got %d function values for %d grid points", ErrInvalidInput, len(f), n)
	}
	for i, fi := range f {
		if math.IsNaN(fi) || math.IsInf(fi, 0) {
			return fmt.Errorf("%w: f[%d] is not finite", ErrInvalidInput, i)
		}
	}
	return nil
}

func validate(req *Request) error {
	if err := ValidateGrid(req.X); err != nil {
		return err
	}
	n := len(req.X)
	if err := ValidateValues(req.F, n); err != nil {
		return err
	}
	if req.SinX != nil && len(req.SinX) != n {
		return fmt.Errorf("%w: sin table has %d entries for %d grid points", ErrInvalidInput, len(req.SinX), n)
	}
	if req.CosX != nil && len(req.CosX) != n {
		return fmt.Errorf("%w: cos table has %d entries for %d grid points", ErrInvalidInput, len(req.CosX), n)
	}
	if req.Start < 0 || req.Start >= n {
		return fmt.Errorf("%w: start index %d outside [0, %d)", ErrInvalidInput, req.Start, n)
	}
	return nil
}

// oscillatory sums the per-interval sine or cosine moments from start.
func oscillatory(ops *vecops.Ops, m Method, x, f, sinx, cosx []float64, start, power int, scale float64) float64 {
	intervals := len(x) - 1 - start
	if intervals <= 0 {
		return 0
	}

	contrib := make([]float64, intervals)
	for i := start; i < len(x)-1; i++ {
		if m == MethodSine {
			contrib[i-start] = sineInterval(power, x[i], x[i+1], f[i], f[i+1], sinx[i], sinx[i+1], cosx[i], cosx[i+1])
		} else {
			contrib[i-start] = cosineInterval(power, x[i], x[i+1], f[i], f[i+1], sinx[i], sinx[i+1], cosx[i], cosx[i+1])
		}
	}

	if scale != 1 {
		ops.Scale(contrib, contrib, scale)
	}
	return ops.Sum(contrib)
}

// sineInterval integrates (f0 + b(x-x0)) x^k sin x over [x0, x1].
func sineInterval(k int, x0, x1, f0, f1, s0, s1, c0, c1 float64) float64 {
	h := x1 - x0
	b := (f1 - f0) / h
	if k == 0 {
		// ∫ (x-x0) sin x = sin x - (x-x0) cos x
		return f0*(c0-c1) + b*(s1-s0-h*c1)
	}
	dk := sinAntideriv(k, x1, s1, c1) - sinAntideriv(k, x0, s0, c0)
	dk1 := sinAntideriv(k+1, x1, s1, c1) - sinAntideriv(k+1, x0, s0, c0)
	return (f0-b*x0)*dk + b*dk1
}

// cosineInterval integrates (f0 + b(x-x0)) x^k cos x over [x0, x1].
func cosineInterval(k int, x0, x1, f0, f1, s0, s1, c0, c1 float64) float64 {
	h := x1 - x0
	b := (f1 - f0) / h
	if k == 0 {
		// ∫ (x-x0) cos x = (x-x0) sin x + cos x
		return f0*(s1-s0) + b*(h*s1+c1-c0)
	}
	dk := cosAntideriv(k, x1, s1, c1) - cosAntideriv(k, x0, s0, c0)
	dk1 := cosAntideriv(k+1, x1, s1, c1) - cosAntideriv(k+1, x0, s0, c0)
	return (f0-b*x0)*dk + b*dk1
}

// direct applies the trapezoidal rule to f x^power j_order from start up to
// the handoff index.
func direct(x, f, sinx, cosx []float64, start, power, order int, threshold float64) (int, float64) {
	stop := handoffIndex(x, start, order, threshold)
	if stop == start {
		return stop, 0
	}

	xs := x[start : stop+1]
	kernel := make([]float64, len(xs))
	for j, xi := range xs {
		i := start + j
		kernel[j] = mathutil.IntPow(xi, power) * mathutil.SphericalJSinCos(order, xi, sinx[i], cosx[i])
	}
	g := vecops.Mul(kernel, kernel, f[start:stop+1])

	return stop, integrate.Trapezoidal(xs, g)
}

// handoffIndex returns the first index i >= start at or beyond the order's
// handoff point whose next interval holds fewer than threshold samples per
// cycle, or len(x)-1 if there is none.
func handoffIndex(x []float64, start, order int, threshold float64) int {
	last := len(x) - 1
	if threshold <= 0 {
		return last
	}

	minX := handoffPerOrder * float64(order+1)
	for i := start; i < last; i++ {
		if x[i] >= minX && twoPi/(x[i+1]-x[i]) < threshold {
			return i
		}
	}
	return last
}
