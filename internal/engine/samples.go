package engine

import (
	"fmt"

	"github.com/tphakala/go-spherical-bessel/internal/moment"
	"github.com/tphakala/go-spherical-bessel/internal/vecops"
)

// Samples is a validated sample grid together with sin and cos tables of
// the same length. The engine reads but never writes the slices.
type Samples struct {
	X    []float64
	SinX []float64
	CosX []float64
}

// NewSamples validates x and computes its trig tables.
func NewSamples(x []float64) (Samples, error) {
	if err := moment.ValidateGrid(x); err != nil {
		return Samples{}, err
	}
	sinx, cosx := vecops.SinCos(x)
	return Samples{X: x, SinX: sinx, CosX: cosx}, nil
}

// NewSamplesWithTrig validates x and pairs it with caller-supplied tables.
func NewSamplesWithTrig(x, sinx, cosx []float64) (Samples, error) {
	if err := moment.ValidateGrid(x); err != nil {
		return Samples{}, err
	}
	if len(sinx) != len(x) || len(cosx) != len(x) {
		return Samples{}, fmt.Errorf("%w: trig tables have %d/%d entries for %d grid points",
			moment.ErrInvalidInput, len(sinx), len(cosx), len(x))
	}
	return Samples{X: x, SinX: sinx, CosX: cosx}, nil
}

// Len returns the number of grid points.
func (s Samples) Len() int {
	return len(s.X)
}

// suffix returns the samples from index i on.
func (s Samples) suffix(i int) Samples {
	return Samples{X: s.X[i:], SinX: s.SinX[i:], CosX: s.CosX[i:]}
}

// request builds a moment request over s for f.
func (s Samples) request(m moment.Method, f []float64) moment.Request {
	return moment.Request{Method: m, X: s.X, F: f, SinX: s.SinX, CosX: s.CosX}
}
