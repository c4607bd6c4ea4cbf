// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"math"
	"strconv"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/lvmath/linear"
	"github.com/katalvlaran/lvmath/provider"
)

func parseRow(t *testing.T, r row) [3]float64 {
	t.Helper()
	require.Len(t, r, 3)
	var out [3]float64
	for i, s := range r {
		f, err := strconv.ParseFloat(s, 64)
		require.NoError(t, err, "component %q", s)
		out[i] = f
	}

	return out
}

func TestRun_ComposeMatchesProduct(t *testing.T) {
	t.Parallel()

	j := job{steps: []step{
		{axis: linear.AxisX, radians: 0.3},
		{axis: linear.AxisZ, radians: -0.8},
		{axis: linear.AxisY, radians: 1.1},
	}}
	rep, err := run[float64, provider.Float64](context.Background(), j, zaptest.NewLogger(t))
	require.NoError(t, err)

	want := linear.XRotation[float64, provider.Float64](0.3).
		Mul(linear.ZRotation[float64, provider.Float64](-0.8)).
		Mul(linear.YRotation[float64, provider.Float64](1.1))
	require.Equal(t, want.String(), rep.matrixText)
	require.Len(t, rep.Matrix, 3)
	require.Empty(t, rep.Vector)
}

func TestRun_ProvidersAgree(t *testing.T) {
	t.Parallel()

	v := [3]float64{1, 2, 3}
	j := job{
		steps:  []step{{axis: linear.AxisZ, radians: math.Pi / 2}, {axis: linear.AxisX, radians: math.Pi / 4}},
		vector: &v,
	}
	log := zaptest.NewLogger(t)

	r64, err := run[float64, provider.Float64](context.Background(), j, log)
	require.NoError(t, err)
	r32, err := run[float32, provider.Float32](context.Background(), j, log)
	require.NoError(t, err)
	rDec, err := run[sdkmath.LegacyDec, provider.Decimal](context.Background(), j, log)
	require.NoError(t, err)

	want := parseRow(t, r64.Vector)
	got32, gotDec := parseRow(t, r32.Vector), parseRow(t, rDec.Vector)
	for i := range want {
		require.InDelta(t, want[i], got32[i], 1e-5)
		require.InDelta(t, want[i], gotDec[i], 1e-15)
	}
}

func TestRun_QuaternionRotatesVector(t *testing.T) {
	t.Parallel()

	half := math.Sqrt2 / 2
	q := [4]float64{half, 0, 0, half} // 90° about Z
	v := [3]float64{1, 0, 0}
	rep, err := run[float64, provider.Float64](context.Background(),
		job{quat: &q, vector: &v}, zaptest.NewLogger(t))
	require.NoError(t, err)

	got := parseRow(t, rep.Vector)
	require.InDelta(t, 0, got[0], 1e-15)
	require.InDelta(t, 1, got[1], 1e-15)
	require.InDelta(t, 0, got[2], 1e-15)

	zero := [4]float64{}
	_, err = run[float64, provider.Float64](context.Background(),
		job{quat: &zero, normalize: true}, zaptest.NewLogger(t))
	require.ErrorIs(t, err, linear.ErrZeroLength)
}

func TestRun_Aborted(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	j := job{steps: []step{{axis: linear.AxisX, radians: 1}}}
	_, err := run[sdkmath.LegacyDec, provider.Decimal](ctx, j, zaptest.NewLogger(t))
	require.ErrorIs(t, err, ErrAborted)
	require.True(t, errors.Is(err, context.Canceled))
}

func TestDispatch_UnknownScalar(t *testing.T) {
	t.Parallel()

	_, err := dispatch(context.Background(), "float16", job{}, zaptest.NewLogger(t))
	require.ErrorIs(t, err, ErrUnknownScalar)

	rep, err := dispatch(context.Background(), scalarFloat32, job{}, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.Equal(t, scalarFloat32, rep.Scalar)
}
