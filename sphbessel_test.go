package sphbessel

import (
	"math"
	"slices"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-spherical-bessel/internal/testutil"
)

// TestIntegrate_UnitFunction checks ∫ j_l dx over 10^[-4, 5].
func TestIntegrate_UnitFunction(t *testing.T) {
	tests := []struct {
		l      int
		points int
		want   float64
	}{
		{0, 1001, math.Pi / 2},
		{1, 2001, 1},
		{2, 3001, math.Pi / 4},
		{3, 4001, 2.0 / 3.0},
	}

	want := make([]float64, len(tests))
	got := make([]float64, len(tests))
	for i, tt := range tests {
		x := testutil.LogGrid(-4, 5, tt.points)
		v, err := Integrate(x, testutil.Ones(len(x)), tt.l, 0)
		require.NoError(t, err, "l=%d", tt.l)
		want[i], got[i] = tt.want, v
	}

	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, testutil.IntegralTolerance)); diff != "" {
		t.Errorf("Integrate(1, l, 0) mismatch (-want +got):\n%s", diff)
	}
}

func TestSinCosInteg_TwoPoints(t *testing.T) {
	x := []float64{0.5, 1.5}
	f := []float64{1, 1}

	s, err := SinInteg(x, f, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.806845, s, testutil.RegressionTolerance)

	c, err := CosInteg(x, f, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.518069, c, testutil.RegressionTolerance)
}

func TestSinCosInteg_Linearity(t *testing.T) {
	x := testutil.LogGrid(-2, 2, 801)
	f := testutil.Tabulate(x, func(v float64) float64 { return math.Exp(-v) })
	g := testutil.Tabulate(x, func(v float64) float64 { return 1 / (1 + v*v) })
	const a, b = 2.5, -0.75

	h := make([]float64, len(x))
	for i := range h {
		h[i] = a*f[i] + b*g[i]
	}

	for _, integ := range []struct {
		name string
		fn   func(x, f []float64, k int) (float64, error)
	}{
		{"sin", SinInteg},
		{"cos", CosInteg},
	} {
		for k := -1; k <= 3; k++ {
			vf, err := integ.fn(x, f, k)
			require.NoError(t, err)
			vg, err := integ.fn(x, g, k)
			require.NoError(t, err)
			vh, err := integ.fn(x, h, k)
			require.NoError(t, err)

			want := a*vf + b*vg
			assert.InDelta(t, want, vh, testutil.DefaultTolerance*math.Max(1, math.Abs(want)),
				"%s k=%d", integ.name, k)
		}
	}
}

func TestIntegrate_MatchesDirect(t *testing.T) {
	x := testutil.LogGrid(-3, math.Log10(30), 6001)
	f := testutil.Tabulate(x, func(v float64) float64 { return math.Exp(-v * v / 8) })

	for l := range MaxOrder + 1 {
		minN, maxN, err := PowerRange(l)
		require.NoError(t, err)
		for n := minN; n <= maxN; n++ {
			auto, err := Integrate(x, f, l, n)
			require.NoError(t, err)
			direct, err := IntegrateDirect(x, f, l, n)
			require.NoError(t, err)
			assert.InDelta(t, direct, auto, testutil.CrossCheckTolerance*math.Max(1, math.Abs(direct)),
				"l=%d n=%d", l, n)
		}
	}
}

func TestIntegrate_Deterministic(t *testing.T) {
	x := testutil.LogGrid(-4, 4, 1501)
	f := testutil.Tabulate(x, func(v float64) float64 { return v / (1 + v*v*v) })

	for l := range MaxOrder + 1 {
		first, err := Integrate(x, f, l, 0)
		require.NoError(t, err)
		for range 3 {
			again, err := Integrate(x, f, l, 0)
			require.NoError(t, err)
			assert.Equal(t, math.Float64bits(first), math.Float64bits(again), "l=%d", l)
		}
	}
}

func TestIntegrate_DoesNotMutateInputs(t *testing.T) {
	x := testutil.LogGrid(-3, 3, 501)
	f := testutil.Tabulate(x, math.Sqrt)
	xc, fc := slices.Clone(x), slices.Clone(f)

	for l := range MaxOrder + 1 {
		_, err := Integrate(x, f, l, 0)
		require.NoError(t, err)
	}
	_, err := SinInteg(x, f, -2)
	require.NoError(t, err)

	assert.Equal(t, xc, x)
	assert.Equal(t, fc, f)
}

func TestIntegrate_ZeroFunction(t *testing.T) {
	x := testutil.LogGrid(-3, 3, 301)
	f := make([]float64, len(x))

	for l := range MaxOrder + 1 {
		got, err := Integrate(x, f, l, 0)
		require.NoError(t, err)
		assert.Zero(t, got, "l=%d", l)
	}
}

func TestIntegrate_Errors(t *testing.T) {
	x := testutil.LogGrid(-2, 2, 101)
	f := testutil.Ones(len(x))

	tests := []struct {
		name    string
		x, f    []float64
		l, n    int
		cfg     *Config
		wantErr error
	}{
		{"order 5", x, f, 5, 0, nil, ErrInvalidOrder},
		{"negative order", x, f, -1, 0, nil, ErrInvalidOrder},
		{"j0 n=3", x, f, 0, 3, nil, ErrInvalidOrder},
		{"j2 n=-4", x, f, 2, -4, nil, ErrInvalidOrder},
		{"single point", x[:1], f[:1], 0, 0, nil, ErrInvalidInput},
		{"length mismatch", x, f[:50], 0, 0, nil, ErrInvalidInput},
		{"decreasing grid", []float64{2, 1}, []float64{1, 1}, 0, 0, nil, ErrInvalidInput},
		{"non-positive grid", []float64{0, 1}, []float64{1, 1}, 0, 0, nil, ErrInvalidInput},
		{"NaN value", []float64{1, 2}, []float64{1, math.NaN()}, 0, 0, nil, ErrInvalidInput},
		{"unknown method", x, f, 0, 0, &Config{Method: Method(9)}, ErrInvalidConfig},
		{"negative threshold", x, f, 0, 0, &Config{Threshold: -1}, ErrInvalidConfig},
		{"negative workers", x, f, 0, 0, &Config{Workers: -1}, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := IntegrateWithConfig(tt.x, tt.f, tt.l, tt.n, tt.cfg)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
	require.NoError(t, (&Config{Method: MethodDirect, Workers: 8}).Validate())

	err := (&Config{Method: Method(3)}).Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.ErrorIs(t, err, ErrInvalidMethod)

	require.ErrorIs(t, (&Config{Workers: maxWorkers + 1}).Validate(), ErrInvalidConfig)
}

func TestIntegrate_ThresholdZeroIsDefault(t *testing.T) {
	x := testutil.LogGrid(-3, 2, 2001)
	f := testutil.Tabulate(x, func(v float64) float64 { return math.Exp(-v / 4) })

	for l := 2; l <= MaxOrder; l++ {
		zero, err := IntegrateWithConfig(x, f, l, 0, &Config{})
		require.NoError(t, err)
		def, err := IntegrateWithConfig(x, f, l, 0, DefaultConfig())
		require.NoError(t, err)
		assert.Equal(t, def, zero, "l=%d", l)
	}
}

func TestParseMethod(t *testing.T) {
	for _, m := range []Method{MethodAuto, MethodDirect} {
		got, err := ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	got, err := ParseMethod("")
	require.NoError(t, err)
	assert.Equal(t, MethodAuto, got)

	_, err = ParseMethod("simpson")
	require.ErrorIs(t, err, ErrInvalidMethod)

	assert.Equal(t, "Method(7)", Method(7).String())
}

func TestSphericalJ(t *testing.T) {
	assert.InDelta(t, 1.0, SphericalJ(0, 0), testutil.DefaultTolerance)
	assert.InDelta(t, 0.0, SphericalJ(0, math.Pi), testutil.DefaultTolerance)
	assert.InDelta(t, math.Sin(3)/9-math.Cos(3)/3, SphericalJ(1, 3), testutil.DefaultTolerance)
	assert.True(t, math.IsNaN(SphericalJ(MaxOrder+1, 1)))
}

func BenchmarkIntegrate(b *testing.B) {
	x := testutil.LogGrid(-4, 4, 4096)
	f := testutil.Tabulate(x, func(v float64) float64 { return math.Exp(-v) })

	for _, l := range []int{0, 2, 4} {
		b.Run("l="+strconv.Itoa(l), func(b *testing.B) {
			for b.Loop() {
				_, _ = Integrate(x, f, l, 0)
			}
		})
	}
}
