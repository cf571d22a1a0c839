package sphbessel

import (
	"fmt"
	"slices"

	"github.com/tphakala/go-spherical-bessel/internal/engine"
	"github.com/tphakala/go-spherical-bessel/internal/moment"
)

// Grid is a validated sample grid with cached sin x and cos x tables.
// Integrating many functions tabulated on the same points through one Grid
// avoids recomputing the trig tables. A Grid is immutable and safe for
// concurrent use.
type Grid struct {
	s engine.Samples
}

// NewGrid validates x and precomputes sin x and cos x. The grid keeps its
// own copy of x.
func NewGrid(x []float64) (*Grid, error) {
	return newGridShared(slices.Clone(x))
}

// NewGridSinCos is like NewGrid but uses caller-supplied sin x and cos x
// tables, which must have len(x) entries. All three slices are copied.
func NewGridSinCos(x, sinx, cosx []float64) (*Grid, error) {
	s, err := engine.NewSamplesWithTrig(slices.Clone(x), slices.Clone(sinx), slices.Clone(cosx))
	if err != nil {
		return nil, err
	}
	return &Grid{s: s}, nil
}

// newGridShared builds a Grid that aliases x.
func newGridShared(x []float64) (*Grid, error) {
	s, err := engine.NewSamples(x)
	if err != nil {
		return nil, err
	}
	return &Grid{s: s}, nil
}

// Len returns the number of sample points.
func (g *Grid) Len() int {
	return g.s.Len()
}

// X returns a copy of the sample points.
func (g *Grid) X() []float64 {
	return slices.Clone(g.s.X)
}

// Integrate computes ∫ j_l(x) f(x) x^n dx with DefaultConfig.
func (g *Grid) Integrate(f []float64, l, n int) (float64, error) {
	return g.IntegrateWithConfig(f, l, n, nil)
}

// IntegrateWithConfig computes ∫ j_l(x) f(x) x^n dx. A nil cfg uses
// DefaultConfig.
func (g *Grid) IntegrateWithConfig(f []float64, l, n int, cfg *Config) (float64, error) {
	cfg, err := resolveConfig(cfg)
	if err != nil {
		return 0, err
	}
	v, err := engine.Integrate(g.s, f, l, n, cfg.engineConfig())
	if err != nil {
		return 0, fmt.Errorf("j%d x^%d: %w", l, n, err)
	}
	return v, nil
}

// SinInteg computes ∫ f(x) x^k sin x dx.
func (g *Grid) SinInteg(f []float64, k int) (float64, error) {
	return engine.Moment(g.s, f, k, moment.MethodSine)
}

// CosInteg computes ∫ f(x) x^k cos x dx.
func (g *Grid) CosInteg(f []float64, k int) (float64, error) {
	return engine.Moment(g.s, f, k, moment.MethodCosine)
}
