// SPDX-License-Identifier: MIT
// Package linear: Vector3.
//
// Purpose:
//   - A 3-component value type addressed as X/Y/Z or index 0/1/2.
//   - All arithmetic goes through number.Number; the provider is part of the type.
//
// Behavior highlights:
//   - Pure: every operation returns a new vector; there is no in-place axis
//     mutation (With returns a modified copy).
//   - Index accessors return ErrOutOfRange instead of panicking.
//   - Equal is exact and componentwise; ApproxEqual takes a tolerance Option.

package linear

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmath/number"
	"github.com/katalvlaran/lvmath/scalar"
)

// Axis names a vector component.
type Axis int

// Component axes; their values are the component indices.
const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String implements fmt.Stringer.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Vector3 is a 3-component vector of Numbers sharing one provider.
// The zero value is the zero vector.
type Vector3[T any, M scalar.Math[T]] struct {
	e [3]number.Number[T, M]
}

// NewVector3 builds a vector from raw scalars.
func NewVector3[T any, M scalar.Math[T]](x, y, z T) Vector3[T, M] {
	return Vector3[T, M]{e: [3]number.Number[T, M]{
		number.New[T, M](x),
		number.New[T, M](y),
		number.New[T, M](z),
	}}
}

// Vector3Of builds a vector from Numbers.
func Vector3Of[T any, M scalar.Math[T]](x, y, z number.Number[T, M]) Vector3[T, M] {
	return Vector3[T, M]{e: [3]number.Number[T, M]{x, y, z}}
}

// ZeroVector3 returns (0, 0, 0) in the provider's representation.
func ZeroVector3[T any, M scalar.Math[T]]() Vector3[T, M] {
	z := number.Zero[T, M]()
	return Vector3Of(z, z, z)
}

// UnitX returns (1, 0, 0).
func UnitX[T any, M scalar.Math[T]]() Vector3[T, M] {
	return Vector3Of(number.One[T, M](), number.Zero[T, M](), number.Zero[T, M]())
}

// UnitY returns (0, 1, 0).
func UnitY[T any, M scalar.Math[T]]() Vector3[T, M] {
	return Vector3Of(number.Zero[T, M](), number.One[T, M](), number.Zero[T, M]())
}

// UnitZ returns (0, 0, 1).
func UnitZ[T any, M scalar.Math[T]]() Vector3[T, M] {
	return Vector3Of(number.Zero[T, M](), number.Zero[T, M](), number.One[T, M]())
}

// X returns component 0.
func (v Vector3[T, M]) X() number.Number[T, M] { return v.e[0] }

// Y returns component 1.
func (v Vector3[T, M]) Y() number.Number[T, M] { return v.e[1] }

// Z returns component 2.
func (v Vector3[T, M]) Z() number.Number[T, M] { return v.e[2] }

// At returns component i; i outside {0,1,2} yields ErrOutOfRange.
func (v Vector3[T, M]) At(i int) (number.Number[T, M], error) {
	if i < 0 || i >= len(v.e) {
		return number.Number[T, M]{}, componentErrorf("Vector3", opAt, i, ErrOutOfRange)
	}

	return v.e[i], nil
}

// Axis returns the component named by a.
func (v Vector3[T, M]) Axis(a Axis) (number.Number[T, M], error) { return v.At(int(a)) }

// With returns a copy of v whose component i is n.
func (v Vector3[T, M]) With(i int, n number.Number[T, M]) (Vector3[T, M], error) {
	if i < 0 || i >= len(v.e) {
		return Vector3[T, M]{}, componentErrorf("Vector3", opWith, i, ErrOutOfRange)
	}
	v.e[i] = n

	return v, nil
}

// Add returns v + w.
func (v Vector3[T, M]) Add(w Vector3[T, M]) (u Vector3[T, M]) {
	for i := range u.e {
		u.e[i] = v.e[i].Add(w.e[i])
	}
	return
}

// Sub returns v - w.
func (v Vector3[T, M]) Sub(w Vector3[T, M]) (u Vector3[T, M]) {
	for i := range u.e {
		u.e[i] = v.e[i].Sub(w.e[i])
	}
	return
}

// Neg returns -v.
func (v Vector3[T, M]) Neg() (u Vector3[T, M]) {
	for i := range u.e {
		u.e[i] = v.e[i].Neg()
	}
	return
}

// Scale returns s ⋅ v.
func (v Vector3[T, M]) Scale(s number.Number[T, M]) (u Vector3[T, M]) {
	for i := range u.e {
		u.e[i] = v.e[i].Mul(s)
	}
	return
}

// ScaleBy returns v scaled by a float64 factor through the Scaling capability.
func (v Vector3[T, M]) ScaleBy(f float64) (u Vector3[T, M]) {
	for i := range u.e {
		u.e[i] = v.e[i].Scale(f)
	}
	return
}

// Div returns v / s; division by zero is defined by the provider.
func (v Vector3[T, M]) Div(s number.Number[T, M]) (Vector3[T, M], error) {
	var u Vector3[T, M]
	for i := range u.e {
		q, err := v.e[i].Div(s)
		if err != nil {
			return Vector3[T, M]{}, linearErrorf(opDiv, err)
		}
		u.e[i] = q
	}

	return u, nil
}

// Dot returns v ⋅ w.
func (v Vector3[T, M]) Dot(w Vector3[T, M]) number.Number[T, M] {
	return v.e[0].Mul(w.e[0]).Add(v.e[1].Mul(w.e[1])).Add(v.e[2].Mul(w.e[2]))
}

// Cross returns v × w (right-handed).
func (v Vector3[T, M]) Cross(w Vector3[T, M]) Vector3[T, M] {
	return Vector3Of(
		v.e[1].Mul(w.e[2]).Sub(v.e[2].Mul(w.e[1])),
		v.e[2].Mul(w.e[0]).Sub(v.e[0].Mul(w.e[2])),
		v.e[0].Mul(w.e[1]).Sub(v.e[1].Mul(w.e[0])),
	)
}

// LengthSquared returns v ⋅ v.
func (v Vector3[T, M]) LengthSquared() number.Number[T, M] { return v.Dot(v) }

// Length returns the Euclidean length of v via the SquareRoot capability.
func (v Vector3[T, M]) Length() (number.Number[T, M], error) {
	l, err := v.Dot(v).Sqrt()
	if err != nil {
		return number.Number[T, M]{}, linearErrorf(opLength, err)
	}

	return l, nil
}

// Normalize returns v scaled to unit length; the zero vector yields ErrZeroLength.
func (v Vector3[T, M]) Normalize() (Vector3[T, M], error) {
	l, err := v.Length()
	if err != nil {
		return Vector3[T, M]{}, err
	}
	if l.IsZero() {
		return Vector3[T, M]{}, linearErrorf(opNormalize, ErrZeroLength)
	}

	return v.Div(l)
}

// Distance returns |v - w|.
func (v Vector3[T, M]) Distance(w Vector3[T, M]) (number.Number[T, M], error) {
	return v.Sub(w).Length()
}

// Equal reports exact componentwise equality.
func (v Vector3[T, M]) Equal(w Vector3[T, M]) bool {
	return v.e[0].Equal(w.e[0]) && v.e[1].Equal(w.e[1]) && v.e[2].Equal(w.e[2])
}

// ApproxEqual reports whether every component differs by at most the
// tolerance selected by opts (DefaultEpsilon when none).
func (v Vector3[T, M]) ApproxEqual(w Vector3[T, M], opts ...Option) bool {
	eps := tolerance[T, M](opts...)
	for i := range v.e {
		if !v.e[i].ApproxEqual(w.e[i], eps) {
			return false
		}
	}

	return true
}

// Hash returns a hash consistent with Equal.
func (v Vector3[T, M]) Hash() uint64 { return hashNumbers(v.e[0], v.e[1], v.e[2]) }

// String renders v as "[x y z]".
func (v Vector3[T, M]) String() string {
	var b strings.Builder
	writeRow(&b, v.e)

	return b.String()
}

// writeRow renders three Numbers as "[a b c]".
func writeRow[T any, M scalar.Math[T]](b *strings.Builder, row [3]number.Number[T, M]) {
	b.WriteString(_fmtRowOpen)
	for j, n := range row {
		if j > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(n.String())
	}
	b.WriteString(_fmtRowClose)
}
