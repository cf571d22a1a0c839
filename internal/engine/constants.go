package engine

// Supported powers: n ranges over [-(l+minPowerOffset), l+maxPowerOffset].
// At the lower end the integrand behaves like 1/x at the origin; the upper
// end matches n <= 2 for j0 and n <= 3 for j1.
const (
	minPowerOffset = 1
	maxPowerOffset = 2
)

// Per-order branch limits
const (
	// j0 with 1 <= n <= 2 maps onto an exact sine moment of power n-1.
	j0ExactMinPower = 1
	j0ExactMaxPower = 2

	// j1 with n >= 2 has non-negative powers in both terms.
	j1AnalyticMinPower = 2

	// Sine and cosine moments are exact for these powers; others are folded
	// into f.
	exactMomentMinPower = 0
	exactMomentMaxPower = 2

	// A tail needs at least one interval.
	minTailLength = 2
)
