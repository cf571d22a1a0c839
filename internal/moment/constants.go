package moment

import "math"

// Exact-antiderivative powers
const (
	// Sine and cosine moments are exact for f linear on each interval when
	// the power is in [minExactPower, maxExactPower]; the rule then needs the
	// antiderivative of x^(k+1) {sin,cos} x, which is tabulated up to k+1 = 3.
	minExactPower = 0
	maxExactPower = 2

	// Direct quadrature supports the same orders as the closed forms.
	maxDirectOrder = 4
)

// Near-origin handoff policy
const (
	// DefaultThreshold is the minimum number of samples per oscillation
	// cycle for which direct trapezoidal quadrature is kept.
	DefaultThreshold = 128.0

	// Direct quadrature never hands off below x = handoffPerOrder*(order+1);
	// closer to the origin the 1/x^k terms of the closed form dominate j_l
	// and the tail rule loses accuracy.
	handoffPerOrder = 2.0

	twoPi = 2 * math.Pi
)

// minGridLength is the smallest grid with at least one interval.
const minGridLength = 2
