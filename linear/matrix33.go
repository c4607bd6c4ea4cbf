// SPDX-License-Identifier: MIT
// Package linear: Matrix33 storage, constructors & safe accessors.
//
// Purpose:
//   - A 3×3 row-major value type of Numbers, addressable by (row, column) or
//     by named row vectors Right/Up/Into (rows 0/1/2).
//   - Guarantee safety at the public surface: At/Set/Row/SetRow/Column return
//     ErrOutOfRange instead of panicking.
//
// Behavior highlights:
//   - Matrices are values: `b := a` copies all nine elements.
//   - Row getters build a fresh Vector3; row setters overwrite storage. A read
//     row never aliases the matrix.
//   - Set/SetRow/SetRight/SetUp/SetInto mutate the receiver in place and are
//     not synchronized; everything else is pure.
//
// Rotation sign placement (right-handed):
//   - X: -sin at (1,2), +sin at (2,1).
//   - Y: +sin at (0,2), -sin at (2,0).
//   - Z: -sin at (0,1), +sin at (1,0).

package linear

import (
	"strings"

	"github.com/katalvlaran/lvmath/number"
	"github.com/katalvlaran/lvmath/scalar"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]"
	_fmtSep      = " "
	_fmtRowBreak = "\n"
)

// Named row indices.
const (
	RowRight = 0
	RowUp    = 1
	RowInto  = 2
)

// Matrix33 is a 3×3 row-major matrix of Numbers sharing one provider.
// The zero value is the zero matrix.
type Matrix33[T any, M scalar.Math[T]] struct {
	m [3][3]number.Number[T, M]
}

// NewMatrix33 builds a matrix from nine raw scalars in row-major order.
func NewMatrix33[T any, M scalar.Math[T]](
	m00, m01, m02,
	m10, m11, m12,
	m20, m21, m22 T,
) Matrix33[T, M] {
	n := number.New[T, M]
	return Matrix33Of(
		n(m00), n(m01), n(m02),
		n(m10), n(m11), n(m12),
		n(m20), n(m21), n(m22),
	)
}

// Matrix33Of builds a matrix from nine Numbers in row-major order.
func Matrix33Of[T any, M scalar.Math[T]](
	m00, m01, m02,
	m10, m11, m12,
	m20, m21, m22 number.Number[T, M],
) Matrix33[T, M] {
	return Matrix33[T, M]{m: [3][3]number.Number[T, M]{
		{m00, m01, m02},
		{m10, m11, m12},
		{m20, m21, m22},
	}}
}

// Matrix33FromRows builds a matrix whose rows are right, up and into.
func Matrix33FromRows[T any, M scalar.Math[T]](right, up, into Vector3[T, M]) Matrix33[T, M] {
	return Matrix33[T, M]{m: [3][3]number.Number[T, M]{right.e, up.e, into.e}}
}

// ZeroMatrix33 returns a matrix with every element set to Zero.
func ZeroMatrix33[T any, M scalar.Math[T]]() Matrix33[T, M] {
	z := number.Zero[T, M]()
	return Matrix33Of(z, z, z, z, z, z, z, z, z)
}

// OneMatrix33 returns a matrix with every element set to One.
func OneMatrix33[T any, M scalar.Math[T]]() Matrix33[T, M] {
	o := number.One[T, M]()
	return Matrix33Of(o, o, o, o, o, o, o, o, o)
}

// IdentityMatrix33 returns I: One on the diagonal, Zero elsewhere.
func IdentityMatrix33[T any, M scalar.Math[T]]() Matrix33[T, M] {
	o, z := number.One[T, M](), number.Zero[T, M]()
	return Matrix33Of(
		o, z, z,
		z, o, z,
		z, z, o,
	)
}

// XRotation returns the rotation by phi radians about the X axis.
func XRotation[T any, M scalar.Math[T]](phi float64) Matrix33[T, M] {
	s, c := number.Sin[T, M](phi), number.Cos[T, M](phi)
	o, z := number.One[T, M](), number.Zero[T, M]()

	return Matrix33Of(
		o, z, z,
		z, c, s.Neg(),
		z, s, c,
	)
}

// YRotation returns the rotation by phi radians about the Y axis.
func YRotation[T any, M scalar.Math[T]](phi float64) Matrix33[T, M] {
	s, c := number.Sin[T, M](phi), number.Cos[T, M](phi)
	o, z := number.One[T, M](), number.Zero[T, M]()

	return Matrix33Of(
		c, z, s,
		z, o, z,
		s.Neg(), z, c,
	)
}

// ZRotation returns the rotation by phi radians about the Z axis.
func ZRotation[T any, M scalar.Math[T]](phi float64) Matrix33[T, M] {
	s, c := number.Sin[T, M](phi), number.Cos[T, M](phi)
	o, z := number.One[T, M](), number.Zero[T, M]()

	return Matrix33Of(
		c, s.Neg(), z,
		s, c, z,
		z, z, o,
	)
}

// FromQuaternion returns the rotation matrix of q. The doubled components
// 2X, 2Y, 2Z are formed through the Scaling capability. q is assumed to be a
// unit quaternion; no normalization is performed.
func FromQuaternion[T any, M scalar.Math[T]](q Quaternion[T, M]) Matrix33[T, M] {
	tX := q.X().Scale(2.0)
	tY := q.Y().Scale(2.0)
	tZ := q.Z().Scale(2.0)

	tWX := tX.Mul(q.W())
	tWY := tY.Mul(q.W())
	tWZ := tZ.Mul(q.W())
	tXX := tX.Mul(q.X())
	tXY := tY.Mul(q.X())
	tXZ := tZ.Mul(q.X())
	tYY := tY.Mul(q.Y())
	tYZ := tZ.Mul(q.Y())
	tZZ := tZ.Mul(q.Z())

	one := number.One[T, M]()

	return Matrix33Of(
		one.Sub(tYY.Add(tZZ)), tXY.Sub(tWZ), tXZ.Add(tWY),
		tXY.Add(tWZ), one.Sub(tXX.Add(tZZ)), tYZ.Sub(tWX),
		tXZ.Sub(tWY), tYZ.Add(tWX), one.Sub(tXX.Add(tYY)),
	)
}

// inRange reports whether i is a valid row, column or component index.
func inRange(i int) bool { return i >= 0 && i < 3 }

// At returns the element at (row, col).
func (a Matrix33[T, M]) At(row, col int) (number.Number[T, M], error) {
	if !inRange(row) || !inRange(col) {
		return number.Number[T, M]{}, indexErrorf("Matrix33", opAt, row, col, ErrOutOfRange)
	}

	return a.m[row][col], nil
}

// Set assigns n at (row, col) in place.
func (a *Matrix33[T, M]) Set(row, col int, n number.Number[T, M]) error {
	if !inRange(row) || !inRange(col) {
		return indexErrorf("Matrix33", opSet, row, col, ErrOutOfRange)
	}
	a.m[row][col] = n

	return nil
}

// Row returns a copy of row r; r outside {0,1,2} yields ErrOutOfRange.
func (a Matrix33[T, M]) Row(r int) (Vector3[T, M], error) {
	if !inRange(r) {
		return Vector3[T, M]{}, componentErrorf("Matrix33", opRow, r, ErrOutOfRange)
	}

	return Vector3[T, M]{e: a.m[r]}, nil
}

// SetRow overwrites row r with the components of v.
func (a *Matrix33[T, M]) SetRow(r int, v Vector3[T, M]) error {
	if !inRange(r) {
		return componentErrorf("Matrix33", opSetRow, r, ErrOutOfRange)
	}
	a.m[r] = v.e

	return nil
}

// Column returns a copy of column c.
func (a Matrix33[T, M]) Column(c int) (Vector3[T, M], error) {
	if !inRange(c) {
		return Vector3[T, M]{}, componentErrorf("Matrix33", opColumn, c, ErrOutOfRange)
	}

	return Vector3Of(a.m[0][c], a.m[1][c], a.m[2][c]), nil
}

// Right returns row 0.
func (a Matrix33[T, M]) Right() Vector3[T, M] { return Vector3[T, M]{e: a.m[RowRight]} }

// Up returns row 1.
func (a Matrix33[T, M]) Up() Vector3[T, M] { return Vector3[T, M]{e: a.m[RowUp]} }

// Into returns row 2.
func (a Matrix33[T, M]) Into() Vector3[T, M] { return Vector3[T, M]{e: a.m[RowInto]} }

// SetRight overwrites row 0.
func (a *Matrix33[T, M]) SetRight(v Vector3[T, M]) { a.m[RowRight] = v.e }

// SetUp overwrites row 1.
func (a *Matrix33[T, M]) SetUp(v Vector3[T, M]) { a.m[RowUp] = v.e }

// SetInto overwrites row 2.
func (a *Matrix33[T, M]) SetInto(v Vector3[T, M]) { a.m[RowInto] = v.e }

// Equal reports exact equality of all nine elements. Every position is
// compared; there is no early exit.
func (a Matrix33[T, M]) Equal(b Matrix33[T, M]) bool {
	eq := true
	for i := range a.m {
		for j := range a.m[i] {
			if !a.m[i][j].Equal(b.m[i][j]) {
				eq = false
			}
		}
	}

	return eq
}

// NotEqual reports whether any of the nine element pairs differ.
func (a Matrix33[T, M]) NotEqual(b Matrix33[T, M]) bool { return !a.Equal(b) }

// ApproxEqual reports whether every element differs by at most the
// tolerance selected by opts (DefaultEpsilon when none).
func (a Matrix33[T, M]) ApproxEqual(b Matrix33[T, M], opts ...Option) bool {
	eps := tolerance[T, M](opts...)
	for i := range a.m {
		for j := range a.m[i] {
			if !a.m[i][j].ApproxEqual(b.m[i][j], eps) {
				return false
			}
		}
	}

	return true
}

// Hash returns a hash consistent with Equal.
func (a Matrix33[T, M]) Hash() uint64 {
	return hashNumbers(
		a.m[0][0], a.m[0][1], a.m[0][2],
		a.m[1][0], a.m[1][1], a.m[1][2],
		a.m[2][0], a.m[2][1], a.m[2][2],
	)
}

// String renders three bracketed rows, one per line, for diagnostics:
//
//	[1 0 0]
//	[0 1 0]
//	[0 0 1]
func (a Matrix33[T, M]) String() string {
	var b strings.Builder
	for i := range a.m {
		if i > 0 {
			b.WriteString(_fmtRowBreak)
		}
		writeRow(&b, a.m[i])
	}

	return b.String()
}
