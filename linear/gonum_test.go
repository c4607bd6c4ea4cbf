// SPDX-License-Identifier: MIT
// Package linear_test cross-checks the generic kernels against gonum.
package linear_test

import (
	"math"
	"math/rand"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"

	"github.com/katalvlaran/lvmath/linear"
	"github.com/katalvlaran/lvmath/provider"
)

const oracleTol = 1e-12

func TestGonumOracle_Matrix(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(2024))
	for n := 0; n < 32; n++ {
		a, b := randMatrix64(rng), randMatrix64(rng)

		var want mat.Dense
		want.Mul(a.Dense(), b.Dense())
		require.True(t, mat.EqualApprox(&want, a.Mul(b).Dense(), oracleTol), "Mul #%d", n)

		var sum mat.Dense
		sum.Add(a.Dense(), b.Dense())
		require.True(t, mat.Equal(&sum, a.Add(b).Dense()), "Add #%d", n)

		require.True(t, mat.Equal(a.Dense().T(), a.Transpose().Dense()), "Transpose #%d", n)
		require.InDelta(t, mat.Det(a.Dense()), a.Determinant().Value(), oracleTol, "Det #%d", n)

		v := vec(rng.Float64(), rng.Float64(), rng.Float64())
		var mv mat.VecDense
		mv.MulVec(a.Dense(), v.VecDense())
		require.True(t, mat.EqualApprox(&mv, a.MulVec(v).VecDense(), oracleTol), "MulVec #%d", n)

		if math.Abs(a.Determinant().Value()) < 0.1 {
			continue
		}
		inv, err := a.Inverse()
		require.NoError(t, err)
		var wantInv mat.Dense
		require.NoError(t, wantInv.Inverse(a.Dense()))
		require.True(t, mat.EqualApprox(&wantInv, inv.Dense(), 1e-9), "Inverse #%d", n)
	}
}

func TestGonumOracle_Quaternion(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	for n := 0; n < 32; n++ {
		p, q := randQuat64(rng), randQuat64(rng)
		want := quat.Mul(p.Quat(), q.Quat())
		have := p.Mul(q).Quat()

		require.InDelta(t, want.Real, have.Real, oracleTol)
		require.InDelta(t, want.Imag, have.Imag, oracleTol)
		require.InDelta(t, want.Jmag, have.Jmag, oracleTol)
		require.InDelta(t, want.Kmag, have.Kmag, oracleTol)
		require.InDelta(t, quat.Abs(q.Quat()), mustLength(t, q), oracleTol)

		wantConj := quat.Conj(q.Quat())
		require.Equal(t, wantConj, q.Conjugate().Quat())
	}
}

func mustLength(t *testing.T, q q64) float64 {
	t.Helper()
	l, err := q.Length()
	require.NoError(t, err)

	return l.Value()
}

func TestGonum_RoundTrip(t *testing.T) {
	t.Parallel()

	a := mat3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	back, err := linear.Matrix33FromDense[float64, provider.Float64](a.Dense())
	require.NoError(t, err)
	require.True(t, back.Equal(a))

	dec, err := linear.Matrix33FromDense[sdkmath.LegacyDec, provider.Decimal](mat.NewDense(3, 3, []float64{
		0.5, 0, 0,
		0, 0.25, 0,
		0, 0, 2,
	}))
	require.NoError(t, err)
	require.True(t, dec.Determinant().Equal(numDec("0.25")))

	q := quat.Number{Real: 1, Imag: 2, Jmag: 3, Kmag: 4}
	require.Equal(t, q, linear.QuaternionFromQuat[float64, provider.Float64](q).Quat())

	for _, shape := range [][2]int{{2, 3}, {3, 2}, {4, 4}} {
		_, err := linear.Matrix33FromDense[float64, provider.Float64](mat.NewDense(shape[0], shape[1], nil))
		require.ErrorIs(t, err, linear.ErrDimensionMismatch, "shape %v", shape)
	}
}
