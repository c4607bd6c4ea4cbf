// SPDX-License-Identifier: MIT
// Package linear_test contains test helpers.
//
// Purpose:
//   - Short aliases for the three provider instantiations under test.
//   - Deterministic random fixtures (fixed seeds) for algebraic properties.

package linear_test

import (
	"math/rand"

	sdkmath "cosmossdk.io/math"

	"github.com/katalvlaran/lvmath/linear"
	"github.com/katalvlaran/lvmath/number"
	"github.com/katalvlaran/lvmath/provider"
)

type (
	n64 = number.Number[float64, provider.Float64]
	v64 = linear.Vector3[float64, provider.Float64]
	q64 = linear.Quaternion[float64, provider.Float64]
	m64 = linear.Matrix33[float64, provider.Float64]

	v32 = linear.Vector3[float32, provider.Float32]
	m32 = linear.Matrix33[float32, provider.Float32]

	nDec = number.Number[sdkmath.LegacyDec, provider.Decimal]
	vDec = linear.Vector3[sdkmath.LegacyDec, provider.Decimal]
	qDec = linear.Quaternion[sdkmath.LegacyDec, provider.Decimal]
	mDec = linear.Matrix33[sdkmath.LegacyDec, provider.Decimal]
)

// num wraps a float64.
func num(v float64) n64 { return number.New[float64, provider.Float64](v) }

// vec builds a float64 vector.
func vec(x, y, z float64) v64 { return linear.NewVector3[float64, provider.Float64](x, y, z) }

// mat3 builds a float64 matrix from nine row-major values.
func mat3(e ...float64) m64 {
	return linear.NewMatrix33[float64, provider.Float64](
		e[0], e[1], e[2],
		e[3], e[4], e[5],
		e[6], e[7], e[8],
	)
}

// d parses a decimal literal.
func d(s string) sdkmath.LegacyDec { return sdkmath.LegacyMustNewDecFromStr(s) }

// numDec wraps a decimal literal.
func numDec(s string) nDec { return number.New[sdkmath.LegacyDec, provider.Decimal](d(s)) }

// vecDec builds a decimal vector from literals.
func vecDec(x, y, z string) vDec {
	return linear.NewVector3[sdkmath.LegacyDec, provider.Decimal](d(x), d(y), d(z))
}

// randMatrix64 fills a matrix with values in [-1, 1).
func randMatrix64(rng *rand.Rand) m64 {
	e := make([]float64, 9)
	for i := range e {
		e[i] = rng.Float64()*2 - 1
	}

	return mat3(e...)
}

// randMatrixDec fills a decimal matrix with values in [-1, 1) quantised to 18 digits.
func randMatrixDec(rng *rand.Rand) mDec {
	var a mDec
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			_ = a.Set(i, j, number.FromFloat64[sdkmath.LegacyDec, provider.Decimal](rng.Float64()*2-1))
		}
	}

	return a
}

// randQuat64 returns a random, non-normalized quaternion.
func randQuat64(rng *rand.Rand) q64 {
	return linear.NewQuaternion[float64, provider.Float64](
		rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1,
	)
}
