// SPDX-License-Identifier: MIT
// Package linear: Quaternion.
//
// Purpose:
//   - A (W, X, Y, Z) rotation value; W is the real part, (X, Y, Z) the vector part.
//   - Feeds FromQuaternion one way; Matrix33 never produces a Quaternion.
//
// Behavior highlights:
//   - The unit-length invariant is NOT enforced on construction. Rotate and
//     FromQuaternion assume a unit quaternion; call Normalize first when unsure.
//   - Mul is the Hamilton product in vector form:
//     (r₁, v₁)(r₂, v₂) = (r₁r₂ − v₁⋅v₂, r₁v₂ + r₂v₁ + v₁×v₂).

package linear

import (
	"strings"

	"github.com/katalvlaran/lvmath/number"
	"github.com/katalvlaran/lvmath/scalar"
)

// Quaternion is a quaternion of Numbers sharing one provider.
// The zero value is the zero quaternion (not the identity).
type Quaternion[T any, M scalar.Math[T]] struct {
	w number.Number[T, M]
	v Vector3[T, M]
}

// NewQuaternion builds a quaternion from raw scalars.
func NewQuaternion[T any, M scalar.Math[T]](w, x, y, z T) Quaternion[T, M] {
	return Quaternion[T, M]{w: number.New[T, M](w), v: NewVector3[T, M](x, y, z)}
}

// QuaternionOf builds a quaternion from Numbers.
func QuaternionOf[T any, M scalar.Math[T]](w, x, y, z number.Number[T, M]) Quaternion[T, M] {
	return Quaternion[T, M]{w: w, v: Vector3Of(x, y, z)}
}

// IdentityQuaternion returns (1, 0, 0, 0), the rotation that does nothing.
func IdentityQuaternion[T any, M scalar.Math[T]]() Quaternion[T, M] {
	return Quaternion[T, M]{w: number.One[T, M](), v: ZeroVector3[T, M]()}
}

// QuaternionFromAxisAngle returns the unit quaternion rotating by phi radians
// around axis. The axis is normalized; a zero axis yields ErrZeroLength.
func QuaternionFromAxisAngle[T any, M scalar.Math[T]](axis Vector3[T, M], phi float64) (Quaternion[T, M], error) {
	n, err := axis.Normalize()
	if err != nil {
		return Quaternion[T, M]{}, linearErrorf(opAxisAngle, err)
	}
	half := phi / 2

	return Quaternion[T, M]{
		w: number.Cos[T, M](half),
		v: n.Scale(number.Sin[T, M](half)),
	}, nil
}

// W returns the real component.
func (q Quaternion[T, M]) W() number.Number[T, M] { return q.w }

// X returns the i component.
func (q Quaternion[T, M]) X() number.Number[T, M] { return q.v.e[0] }

// Y returns the j component.
func (q Quaternion[T, M]) Y() number.Number[T, M] { return q.v.e[1] }

// Z returns the k component.
func (q Quaternion[T, M]) Z() number.Number[T, M] { return q.v.e[2] }

// Vector returns the imaginary part (X, Y, Z) as a copy.
func (q Quaternion[T, M]) Vector() Vector3[T, M] { return q.v }

// Add returns q + p.
func (q Quaternion[T, M]) Add(p Quaternion[T, M]) Quaternion[T, M] {
	return Quaternion[T, M]{w: q.w.Add(p.w), v: q.v.Add(p.v)}
}

// Sub returns q - p.
func (q Quaternion[T, M]) Sub(p Quaternion[T, M]) Quaternion[T, M] {
	return Quaternion[T, M]{w: q.w.Sub(p.w), v: q.v.Sub(p.v)}
}

// Scale returns s ⋅ q.
func (q Quaternion[T, M]) Scale(s number.Number[T, M]) Quaternion[T, M] {
	return Quaternion[T, M]{w: q.w.Mul(s), v: q.v.Scale(s)}
}

// Mul returns the Hamilton product q ⋅ p. Applying the result rotates by p
// first, then by q.
func (q Quaternion[T, M]) Mul(p Quaternion[T, M]) Quaternion[T, M] {
	v := p.v.Scale(q.w).Add(q.v.Scale(p.w)).Add(q.v.Cross(p.v))

	return Quaternion[T, M]{w: q.w.Mul(p.w).Sub(q.v.Dot(p.v)), v: v}
}

// Conjugate returns (W, -X, -Y, -Z).
func (q Quaternion[T, M]) Conjugate() Quaternion[T, M] {
	return Quaternion[T, M]{w: q.w, v: q.v.Neg()}
}

// Dot returns the four-component dot product.
func (q Quaternion[T, M]) Dot(p Quaternion[T, M]) number.Number[T, M] {
	return q.w.Mul(p.w).Add(q.v.Dot(p.v))
}

// LengthSquared returns W²+X²+Y²+Z².
func (q Quaternion[T, M]) LengthSquared() number.Number[T, M] { return q.Dot(q) }

// Length returns the norm of q.
func (q Quaternion[T, M]) Length() (number.Number[T, M], error) {
	l, err := q.Dot(q).Sqrt()
	if err != nil {
		return number.Number[T, M]{}, linearErrorf(opLength, err)
	}

	return l, nil
}

// Normalize returns q scaled to unit length; the zero quaternion yields ErrZeroLength.
func (q Quaternion[T, M]) Normalize() (Quaternion[T, M], error) {
	l, err := q.Length()
	if err != nil {
		return Quaternion[T, M]{}, err
	}
	if l.IsZero() {
		return Quaternion[T, M]{}, linearErrorf(opNormalize, ErrZeroLength)
	}
	w, err := q.w.Div(l)
	if err != nil {
		return Quaternion[T, M]{}, linearErrorf(opNormalize, err)
	}
	v, err := q.v.Div(l)
	if err != nil {
		return Quaternion[T, M]{}, linearErrorf(opNormalize, err)
	}

	return Quaternion[T, M]{w: w, v: v}, nil
}

// Inverse returns q⁻¹ = conj(q) / |q|²; the zero quaternion yields ErrZeroLength.
func (q Quaternion[T, M]) Inverse() (Quaternion[T, M], error) {
	n := q.LengthSquared()
	if n.IsZero() {
		return Quaternion[T, M]{}, linearErrorf(opInverse, ErrZeroLength)
	}
	c := q.Conjugate()
	w, err := c.w.Div(n)
	if err != nil {
		return Quaternion[T, M]{}, linearErrorf(opInverse, err)
	}
	v, err := c.v.Div(n)
	if err != nil {
		return Quaternion[T, M]{}, linearErrorf(opInverse, err)
	}

	return Quaternion[T, M]{w: w, v: v}, nil
}

// Rotate returns q ⋅ (0, v) ⋅ q*, the rotation of v by unit quaternion q.
func (q Quaternion[T, M]) Rotate(v Vector3[T, M]) Vector3[T, M] {
	p := Quaternion[T, M]{w: number.Zero[T, M](), v: v}

	return q.Mul(p).Mul(q.Conjugate()).v
}

// Equal reports exact componentwise equality.
func (q Quaternion[T, M]) Equal(p Quaternion[T, M]) bool {
	return q.w.Equal(p.w) && q.v.Equal(p.v)
}

// ApproxEqual reports whether every component differs by at most the
// tolerance selected by opts.
func (q Quaternion[T, M]) ApproxEqual(p Quaternion[T, M], opts ...Option) bool {
	return q.w.ApproxEqual(p.w, tolerance[T, M](opts...)) && q.v.ApproxEqual(p.v, opts...)
}

// Hash returns a hash consistent with Equal.
func (q Quaternion[T, M]) Hash() uint64 { return hashNumbers(q.w, q.v.e[0], q.v.e[1], q.v.e[2]) }

// String renders q as "[w x y z]".
func (q Quaternion[T, M]) String() string {
	var b strings.Builder
	b.WriteString(_fmtRowOpen)
	b.WriteString(q.w.String())
	for _, n := range q.v.e {
		b.WriteString(_fmtSep)
		b.WriteString(n.String())
	}
	b.WriteString(_fmtRowClose)

	return b.String()
}
