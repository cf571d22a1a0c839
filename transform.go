package sphbessel

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-spherical-bessel/internal/mathutil"
	"github.com/tphakala/go-spherical-bessel/internal/moment"
)

// Transform computes the order-l spherical Hankel transform
//
//	4π (-i)^l ∫ r^n j_l(k r) f(r) dr
//
// of f tabulated on r. With n = 2 this is the Fourier transform of
// f(r) Y_lm(r̂) up to the spherical harmonic, e.g. a correlation function
// to a power spectrum. k must be positive and finite.
func Transform(k float64, r, f []float64, l, n int) (complex128, error) {
	return TransformWithConfig(k, r, f, l, n, nil)
}

// TransformWithConfig is like Transform with explicit settings. A nil cfg
// uses DefaultConfig.
func TransformWithConfig(k float64, r, f []float64, l, n int, cfg *Config) (complex128, error) {
	cfg, err := resolveConfig(cfg)
	if err != nil {
		return 0, err
	}
	return transform(k, r, f, l, n, cfg)
}

// TransformBatch evaluates Transform for every wavenumber in ks using up to
// cfg.Workers goroutines. Results are in the order of ks. The first error
// or a cancelled ctx stops the remaining evaluations and no results are
// returned.
func TransformBatch(ctx context.Context, ks, r, f []float64, l, n int, cfg *Config) ([]complex128, error) {
	cfg, err := resolveConfig(cfg)
	if err != nil {
		return nil, err
	}

	minN, maxN, err := PowerRange(l)
	if err != nil {
		return nil, err
	}
	if n < minN || n > maxN {
		return nil, fmt.Errorf("%w: power n=%d outside [%d, %d] for l=%d", ErrInvalidOrder, n, minN, maxN, l)
	}
	if err := moment.ValidateGrid(r); err != nil {
		return nil, err
	}
	if err := moment.ValidateValues(f, len(r)); err != nil {
		return nil, err
	}

	out := make([]complex128, len(ks))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.workers())

	for i, k := range ks {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			v, err := transform(k, r, f, l, n, cfg)
			if err != nil {
				return fmt.Errorf("k[%d]=%v: %w", i, k, err)
			}
			out[i] = v
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// transform evaluates one wavenumber with a validated cfg.
func transform(k float64, r, f []float64, l, n int, cfg *Config) (complex128, error) {
	if !(k > minWavenumber) || math.IsInf(k, 0) {
		return 0, fmt.Errorf("%w: wavenumber must be positive and finite, got %v", ErrInvalidInput, k)
	}

	x := make([]float64, len(r))
	floats.ScaleTo(x, k, r)

	g, err := newGridShared(x)
	if err != nil {
		return 0, err
	}
	v, err := g.IntegrateWithConfig(f, l, n, cfg)
	if err != nil {
		return 0, err
	}

	v *= fourPi * mathutil.IntPow(k, -(n+1))
	return phase(l) * complex(v, 0), nil
}

// phase returns (-i)^l.
func phase(l int) complex128 {
	switch l % phasePeriod {
	case 0:
		return 1
	case 1:
		return -1i
	case 2:
		return -1
	default:
		return 1i
	}
}
