package sphbessel

import (
	"context"
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/tphakala/go-spherical-bessel/internal/testutil"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// gaussianTransform is 4π (-i)^l ∫ r^(l+2) j_l(kr) e^{-r²/2} dr.
func gaussianTransform(k float64, l int) complex128 {
	v := fourPi * math.Sqrt(math.Pi/2) * math.Pow(k, float64(l)) * math.Exp(-k*k/2)
	return phase(l) * complex(v, 0)
}

func gaussianTable() (r, f []float64) {
	r = testutil.LogGrid(-3, math.Log10(12), 4001)
	f = testutil.Tabulate(r, func(v float64) float64 { return math.Exp(-v * v / 2) })
	return r, f
}

func TestTransform_Gaussian(t *testing.T) {
	r, f := gaussianTable()

	for l := range MaxOrder + 1 {
		for _, k := range []float64{0.5, 1, 2} {
			got, err := Transform(k, r, f, l, l+2)
			require.NoError(t, err, "l=%d k=%v", l, k)

			want := gaussianTransform(k, l)
			diff := cmplx.Abs(got - want)
			assert.LessOrEqual(t, diff, testutil.IntegralTolerance*cmplx.Abs(want), "l=%d k=%v got=%v want=%v", l, k, got, want)
		}
	}
}

func TestTransform_Phase(t *testing.T) {
	assert.Equal(t, complex128(1), phase(0))
	assert.Equal(t, complex128(-1i), phase(1))
	assert.Equal(t, complex128(-1), phase(2))
	assert.Equal(t, complex128(1i), phase(3))
	assert.Equal(t, complex128(1), phase(4))
}

func TestTransform_InvalidWavenumber(t *testing.T) {
	r, f := gaussianTable()

	for _, k := range []float64{0, -1, math.Inf(1), math.NaN()} {
		_, err := Transform(k, r, f, 0, 2)
		require.ErrorIs(t, err, ErrInvalidInput, "k=%v", k)
	}
}

func TestTransformBatch_MatchesSequential(t *testing.T) {
	r, f := gaussianTable()
	ks := testutil.LinGrid(0.1, 3, 24)

	got, err := TransformBatch(context.Background(), ks, r, f, 1, 3, &Config{Workers: 4})
	require.NoError(t, err)
	require.Len(t, got, len(ks))

	im := make([]float64, len(got))
	for i, v := range got {
		im[i] = imag(v)
	}
	testutil.AssertNoNaNOrInf(t, im)

	for i, k := range ks {
		want, err := Transform(k, r, f, 1, 3)
		require.NoError(t, err)
		assert.Equal(t, want, got[i], "k=%v", k)
	}
}

func TestTransformBatch_Empty(t *testing.T) {
	r, f := gaussianTable()

	got, err := TransformBatch(context.Background(), nil, r, f, 0, 2, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTransformBatch_Cancelled(t *testing.T) {
	r, f := gaussianTable()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := TransformBatch(ctx, testutil.LinGrid(0.1, 3, 64), r, f, 0, 2, nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestTransformBatch_Errors(t *testing.T) {
	r, f := gaussianTable()
	ks := []float64{0.5, 1, -1, 2}

	_, err := TransformBatch(context.Background(), ks, r, f, 0, 2, &Config{Workers: 2})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = TransformBatch(context.Background(), ks[:2], r, f, 5, 0, nil)
	require.ErrorIs(t, err, ErrInvalidOrder)

	_, err = TransformBatch(context.Background(), ks[:2], r, f, 0, 3, nil)
	require.ErrorIs(t, err, ErrInvalidOrder)

	_, err = TransformBatch(context.Background(), ks[:2], r, f[:10], 0, 2, nil)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = TransformBatch(context.Background(), ks[:2], r, f, 0, 2, &Config{Workers: -3})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func BenchmarkTransformBatch(b *testing.B) {
	r, f := gaussianTable()
	ks := testutil.LogGrid(-2, 1, 128)

	for b.Loop() {
		_, _ = TransformBatch(context.Background(), ks, r, f, 0, 2, nil)
	}
}
