// SPDX-License-Identifier: MIT
// Package linear: gonum interop.
// Conversions go through the provider's Conversion capability (float64),
// so they are exact for Float64, rounding for Float32 and quantising for
// Decimal. Decimal panics on NaN/Inf input, as its FromFloat64 does.

package linear

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"

	"github.com/katalvlaran/lvmath/number"
	"github.com/katalvlaran/lvmath/scalar"
)

// Dense returns a as a 3×3 gonum matrix.
func (a Matrix33[T, M]) Dense() *mat.Dense {
	data := make([]float64, 0, 9)
	for i := range a.m {
		for j := range a.m[i] {
			data = append(data, a.m[i][j].Float64())
		}
	}

	return mat.NewDense(3, 3, data)
}

// Matrix33FromDense converts a 3×3 gonum matrix; any other shape yields
// ErrDimensionMismatch.
func Matrix33FromDense[T any, M scalar.Math[T]](d mat.Matrix) (Matrix33[T, M], error) {
	if r, c := d.Dims(); r != 3 || c != 3 {
		return Matrix33[T, M]{}, linearErrorf(opFromDense, ErrDimensionMismatch)
	}
	var a Matrix33[T, M]
	for i := range a.m {
		for j := range a.m[i] {
			a.m[i][j] = number.FromFloat64[T, M](d.At(i, j))
		}
	}

	return a, nil
}

// VecDense returns v as a gonum column vector.
func (v Vector3[T, M]) VecDense() *mat.VecDense {
	return mat.NewVecDense(3, []float64{v.e[0].Float64(), v.e[1].Float64(), v.e[2].Float64()})
}

// Quat returns q as a gonum quaternion (Real=W, Imag=X, Jmag=Y, Kmag=Z).
func (q Quaternion[T, M]) Quat() quat.Number {
	return quat.Number{
		Real: q.w.Float64(),
		Imag: q.v.e[0].Float64(),
		Jmag: q.v.e[1].Float64(),
		Kmag: q.v.e[2].Float64(),
	}
}

// QuaternionFromQuat converts a gonum quaternion.
func QuaternionFromQuat[T any, M scalar.Math[T]](q quat.Number) Quaternion[T, M] {
	f := number.FromFloat64[T, M]
	return QuaternionOf(f(q.Real), f(q.Imag), f(q.Jmag), f(q.Kmag))
}
