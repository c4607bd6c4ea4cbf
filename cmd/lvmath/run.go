// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvmath/linear"
	"github.com/katalvlaran/lvmath/number"
	"github.com/katalvlaran/lvmath/provider"
	"github.com/katalvlaran/lvmath/scalar"
)

// Scalar representations selectable with --scalar.
const (
	scalarFloat64 = "float64"
	scalarFloat32 = "float32"
	scalarDecimal = "decimal"
)

// job is a provider-independent description of one computation. Inputs are
// float64 and enter each provider through its Conversion capability.
type job struct {
	quat      *[4]float64 // w, x, y, z; nil for axis rotations
	normalize bool
	steps     []step
	vector    *[3]float64
}

// dispatch instantiates run for the configured scalar representation.
func dispatch(ctx context.Context, name string, j job, log *zap.Logger) (report, error) {
	var (
		rep report
		err error
	)
	switch name {
	case scalarFloat64:
		rep, err = run[float64, provider.Float64](ctx, j, log)
	case scalarFloat32:
		rep, err = run[float32, provider.Float32](ctx, j, log)
	case scalarDecimal:
		rep, err = run[sdkmath.LegacyDec, provider.Decimal](ctx, j, log)
	default:
		return report{}, fmt.Errorf("%w: %q", ErrUnknownScalar, name)
	}
	rep.Scalar = name

	return rep, err
}

// axisRotation returns the rotation about a by phi radians.
func axisRotation[T any, M scalar.Math[T]](a linear.Axis, phi float64) linear.Matrix33[T, M] {
	switch a {
	case linear.AxisX:
		return linear.XRotation[T, M](phi)
	case linear.AxisY:
		return linear.YRotation[T, M](phi)
	default:
		return linear.ZRotation[T, M](phi)
	}
}

// run evaluates j with provider M. Steps are multiplied left to right onto
// the starting matrix (Identity, or FromQuaternion for quaternion jobs); the
// context is checked before each step.
func run[T any, M scalar.Math[T]](ctx context.Context, j job, log *zap.Logger) (report, error) {
	f := number.FromFloat64[T, M]
	m := linear.IdentityMatrix33[T, M]()

	var q linear.Quaternion[T, M]
	if j.quat != nil {
		q = linear.QuaternionOf(f(j.quat[0]), f(j.quat[1]), f(j.quat[2]), f(j.quat[3]))
		if j.normalize {
			n, err := q.Normalize()
			if err != nil {
				return report{}, fmt.Errorf("quat: %w", err)
			}
			q = n
		}
		m = linear.FromQuaternion(q)
		log.Debug("quaternion", zap.Stringer("q", q))
	}

	for i, s := range j.steps {
		select {
		case <-ctx.Done():
			log.Warn("composition aborted", zap.Int("step", i+1), zap.Int("steps", len(j.steps)))
			return report{}, fmt.Errorf("step %d: %w", i+1, ErrAborted)
		default:
		}
		m = m.Mul(axisRotation[T, M](s.axis, s.radians))
		log.Debug("rotation applied",
			zap.Int("step", i+1),
			zap.Stringer("axis", s.axis),
			zap.Float64("radians", s.radians),
		)
	}

	rep := matrixReport(m)
	if j.vector != nil {
		v := linear.Vector3Of(f(j.vector[0]), f(j.vector[1]), f(j.vector[2]))
		if j.quat != nil {
			v = q.Rotate(v)
		} else {
			v = m.MulVec(v)
		}
		setVector(&rep, v)
	}
	log.Info("computed", zap.Uint64("hash", m.Hash()), zap.Bool("vector", j.vector != nil))

	return rep, nil
}
