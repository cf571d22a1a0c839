package mathutil

// Spherical Bessel evaluation constants
const (
	// MaxOrder is the highest spherical Bessel order with a tabulated
	// closed form.
	MaxOrder = 4

	// Below this |x| the closed forms lose digits to cancellation between
	// the 1/x^k sin and cos terms, so the power series is used instead.
	seriesArgThreshold = 2.0

	// Series truncation: stop once a term is below seriesEpsilon relative
	// to the running sum, or after seriesMaxTerms terms.
	seriesEpsilon  = 1e-17
	seriesMaxTerms = 40
)

// Series recurrence constants for
//
//	j_l(x) = x^l/(2l+1)!! Σ_k (-x²/2)^k / (k! (2l+3)(2l+5)...(2l+2k+1))
const (
	seriesHalf      = 0.5 // factor in -x²/2
	seriesOddOffset = 1   // 2l+2k+1
	seriesOddStride = 2
)
