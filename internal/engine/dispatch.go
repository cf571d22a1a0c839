// Package engine reduces ∫ j_l(x) f(x) x^n dx to sine, cosine and direct
// moment integrals, one closed-form case per order l.
package engine

import (
	"fmt"

	"github.com/tphakala/go-spherical-bessel/internal/mathutil"
	"github.com/tphakala/go-spherical-bessel/internal/moment"
	"github.com/tphakala/go-spherical-bessel/internal/vecops"
)

// Method selects how Integrate evaluates the integral.
type Method int

const (
	// MethodAuto uses the per-order analytic reduction with a direct
	// near-origin segment where needed.
	MethodAuto Method = iota

	// MethodDirect integrates f x^n j_l over the whole grid by the
	// trapezoidal rule.
	MethodDirect
)

// Config controls the dispatcher.
type Config struct {
	// Method selects analytic reduction or direct quadrature.
	Method Method

	// Threshold is the samples-per-cycle floor below which direct
	// quadrature hands off to the analytic tail. Zero uses the default.
	Threshold float64
}

// PowerRange returns the supported range of n for order l.
func PowerRange(l int) (minN, maxN int, err error) {
	if l < 0 || l > mathutil.MaxOrder {
		return 0, 0, fmt.Errorf("%w: order l=%d outside [0, %d]", moment.ErrInvalidOrder, l, mathutil.MaxOrder)
	}
	return -(l + minPowerOffset), l + maxPowerOffset, nil
}

// Integrate computes ∫ j_l(x) f(x) x^n dx over the sampled domain.
func Integrate(s Samples, f []float64, l, n int, cfg Config) (float64, error) {
	minN, maxN, err := PowerRange(l)
	if err != nil {
		return 0, err
	}
	if n < minN || n > maxN {
		return 0, fmt.Errorf("%w: power n=%d outside [%d, %d] for l=%d", moment.ErrInvalidOrder, n, minN, maxN, l)
	}
	if err := moment.ValidateValues(f, s.Len()); err != nil {
		return 0, err
	}

	switch cfg.Method {
	case MethodAuto:
	case MethodDirect:
		return integrateDirect(s, f, l, n)
	default:
		return 0, fmt.Errorf("%w: dispatch method %d", moment.ErrInvalidMethod, cfg.Method)
	}

	threshold := cfg.Threshold
	if threshold <= 0 {
		threshold = moment.DefaultThreshold
	}

	switch l {
	case 0:
		return integrateJ0(s, f, n)
	case 1:
		if n >= j1AnalyticMinPower {
			return integrateJ1(s, f, n)
		}
		return integrateSplit(s, f, l, n, threshold)
	default:
		return integrateSplit(s, f, l, n, threshold)
	}
}

// integrateJ0 uses j0 = sin x / x.
func integrateJ0(s Samples, f []float64, n int) (float64, error) {
	req := s.request(moment.MethodSine, f)
	if n >= j0ExactMinPower && n <= j0ExactMaxPower {
		req.Power = n - 1
	} else {
		req.F = vecops.PowerShift(nil, s.X, f, n-1, 1)
	}
	_, v, err := moment.Integrate(req)
	return v, err
}

// integrateJ1 uses j1 = sin x / x² - cos x / x for 2 <= n <= 3, where both
// powers are non-negative and no near-origin segment is needed.
func integrateJ1(s Samples, f []float64, n int) (float64, error) {
	sinReq := s.request(moment.MethodSine, f)
	sinReq.Power = n - 2
	_, sv, err := moment.Integrate(sinReq)
	if err != nil {
		return 0, err
	}

	cosReq := s.request(moment.MethodCosine, f)
	cosReq.Power = n - 1
	cosReq.Negate = true
	_, cv, err := moment.Integrate(cosReq)
	if err != nil {
		return 0, err
	}
	return sv + cv, nil
}

// integrateSplit integrates directly up to the handoff index and adds the
// analytic tail from there.
func integrateSplit(s Samples, f []float64, l, n int, threshold float64) (float64, error) {
	req := s.request(moment.MethodDirect, f)
	req.Power = n
	req.Order = l
	req.Threshold = threshold
	split, near, err := moment.Integrate(req)
	if err != nil {
		return 0, err
	}

	tail, err := analyticTail(s.suffix(split), f[split:], l, n)
	if err != nil {
		return 0, err
	}
	return near + tail, nil
}

// analyticTail integrates j_l f x^n over s using the closed form of j_l:
// one sine moment of f·Σ c x^(e+n) and one cosine moment of the same for
// the cos terms.
func analyticTail(s Samples, f []float64, l, n int) (float64, error) {
	if s.Len() < minTailLength {
		return 0, nil
	}
	e, ok := mathutil.SphericalExpansion(l)
	if !ok {
		return 0, fmt.Errorf("%w: no closed form for l=%d", moment.ErrInvalidOrder, l)
	}

	_, sv, err := moment.Integrate(s.request(moment.MethodSine, vecops.PowerSeries(nil, s.X, f, e.Sin, n)))
	if err != nil {
		return 0, err
	}
	if len(e.Cos) == 0 {
		return sv, nil
	}
	_, cv, err := moment.Integrate(s.request(moment.MethodCosine, vecops.PowerSeries(nil, s.X, f, e.Cos, n)))
	if err != nil {
		return 0, err
	}
	return sv + cv, nil
}

// integrateDirect applies the trapezoidal rule to f x^n j_l over the whole
// grid.
func integrateDirect(s Samples, f []float64, l, n int) (float64, error) {
	req := s.request(moment.MethodDirect, f)
	req.Power = n
	req.Order = l
	_, v, err := moment.Integrate(req)
	return v, err
}

// Moment computes ∫ f(x) x^k sin x dx (m = moment.MethodSine) or the cosine
// counterpart for any integer k. Powers without an exact rule are folded
// into f.
func Moment(s Samples, f []float64, k int, m moment.Method) (float64, error) {
	if m != moment.MethodSine && m != moment.MethodCosine {
		return 0, fmt.Errorf("%w: %s is not a moment rule", moment.ErrInvalidMethod, m)
	}
	if err := moment.ValidateValues(f, s.Len()); err != nil {
		return 0, err
	}

	req := s.request(m, f)
	if k >= exactMomentMinPower && k <= exactMomentMaxPower {
		req.Power = k
	} else {
		req.F = vecops.PowerShift(nil, s.X, f, k, 1)
	}
	_, v, err := moment.Integrate(req)
	return v, err
}
