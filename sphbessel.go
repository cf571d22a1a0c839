package sphbessel

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/tphakala/go-spherical-bessel/internal/engine"
	"github.com/tphakala/go-spherical-bessel/internal/mathutil"
	"github.com/tphakala/go-spherical-bessel/internal/moment"
)

// Method selects how an integral is evaluated.
type Method int

const (
	// MethodAuto reduces the integral to sine and cosine moments, with a
	// direct near-origin segment for the orders that need one.
	MethodAuto Method = iota

	// MethodDirect applies the trapezoidal rule to f x^n j_l over the whole
	// grid. Accurate only when the grid resolves every oscillation.
	MethodDirect
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case MethodAuto:
		return "auto"
	case MethodDirect:
		return "direct"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod converts a method name as printed by [Method.String].
func ParseMethod(s string) (Method, error) {
	switch s {
	case "", "auto":
		return MethodAuto, nil
	case "direct":
		return MethodDirect, nil
	default:
		return 0, fmt.Errorf("%w: unknown method %q", ErrInvalidMethod, s)
	}
}

// Config holds integration settings.
type Config struct {
	// Method selects analytic reduction or direct quadrature.
	Method Method

	// Threshold is the number of samples per cycle of sin x below which
	// the near-origin direct segment hands off to the analytic tail.
	// Set to 0 to use DefaultThreshold. Only MethodAuto reads it.
	Threshold float64

	// Workers bounds the goroutines used by TransformBatch.
	// Set to 0 to use GOMAXPROCS.
	Workers int
}

// Common errors returned by the package.
var (
	// ErrInvalidInput indicates a malformed grid or function table.
	ErrInvalidInput = moment.ErrInvalidInput

	// ErrInvalidOrder indicates an unsupported order l or power n.
	ErrInvalidOrder = moment.ErrInvalidOrder

	// ErrInvalidMethod indicates an unknown integration method.
	ErrInvalidMethod = moment.ErrInvalidMethod

	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid integration configuration")
)

// DefaultConfig returns the settings used by Integrate.
func DefaultConfig() *Config {
	return &Config{
		Method:    MethodAuto,
		Threshold: DefaultThreshold,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Method != MethodAuto && c.Method != MethodDirect {
		return fmt.Errorf("%w: %w: %s", ErrInvalidConfig, ErrInvalidMethod, c.Method)
	}

	if c.Threshold < 0 {
		return fmt.Errorf("%w: threshold must be non-negative, got %v", ErrInvalidConfig, c.Threshold)
	}

	if c.Workers < 0 || c.Workers > maxWorkers {
		return fmt.Errorf("%w: workers must be 0-%d, got %d", ErrInvalidConfig, maxWorkers, c.Workers)
	}

	return nil
}

// engineConfig converts c for the dispatcher.
func (c *Config) engineConfig() engine.Config {
	m := engine.MethodAuto
	if c.Method == MethodDirect {
		m = engine.MethodDirect
	}
	return engine.Config{Method: m, Threshold: c.Threshold}
}

// workers returns the effective batch parallelism.
func (c *Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// resolveConfig validates cfg, substituting defaults for nil.
func resolveConfig(cfg *Config) (*Config, error) {
	if cfg == nil {
		return DefaultConfig(), nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Integrate computes ∫ j_l(x) f(x) x^n dx over the sampled domain of x.
//
// x must be strictly increasing and positive, f must have the same length
// (at least 2) and f is treated as linear between samples. l must be in
// [0, 4] and n in [PowerRange(l)].
func Integrate(x, f []float64, l, n int) (float64, error) {
	return IntegrateWithConfig(x, f, l, n, nil)
}

// IntegrateWithConfig is like Integrate with explicit settings. A nil cfg
// uses DefaultConfig.
func IntegrateWithConfig(x, f []float64, l, n int, cfg *Config) (float64, error) {
	g, err := newGridShared(x)
	if err != nil {
		return 0, err
	}
	return g.IntegrateWithConfig(f, l, n, cfg)
}

// IntegrateDirect integrates f x^n j_l by the trapezoidal rule over the
// whole grid.
func IntegrateDirect(x, f []float64, l, n int) (float64, error) {
	return IntegrateWithConfig(x, f, l, n, &Config{Method: MethodDirect})
}

// SinInteg computes ∫ f(x) x^k sin x dx with f linear between samples.
func SinInteg(x, f []float64, k int) (float64, error) {
	g, err := newGridShared(x)
	if err != nil {
		return 0, err
	}
	return g.SinInteg(f, k)
}

// CosInteg computes ∫ f(x) x^k cos x dx with f linear between samples.
func CosInteg(x, f []float64, k int) (float64, error) {
	g, err := newGridShared(x)
	if err != nil {
		return 0, err
	}
	return g.CosInteg(f, k)
}

// PowerRange returns the supported powers n for order l.
func PowerRange(l int) (minN, maxN int, err error) {
	return engine.PowerRange(l)
}

// SphericalJ returns the spherical Bessel function j_l(x) for l in [0, 4].
// It returns NaN for other orders.
func SphericalJ(l int, x float64) float64 {
	return mathutil.SphericalJ(l, x)
}
