package moment

// Antiderivatives of x^m sin x and x^m cos x for m = 0..3, evaluated from
// precomputed sin(x) and cos(x).

// sinAntideriv returns S_m(x) with S_m' = x^m sin x.
func sinAntideriv(m int, x, s, c float64) float64 {
	switch m {
	case 0:
		return -c
	case 1:
		return s - x*c
	case 2:
		return (2-x*x)*c + 2*x*s
	default:
		return 3*(x*x-2)*s - x*(x*x-6)*c
	}
}

// cosAntideriv returns C_m(x) with C_m' = x^m cos x.
func cosAntideriv(m int, x, s, c float64) float64 {
	switch m {
	case 0:
		return s
	case 1:
		return x*s + c
	case 2:
		return (x*x-2)*s + 2*x*c
	default:
		return (3*x*x-6)*c + (x*x*x-6*x)*s
	}
}
