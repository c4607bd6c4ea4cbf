// SPDX-License-Identifier: MIT

package number

import "github.com/katalvlaran/lvmath/scalar"

// Number is a scalar value bound to the shared provider for (T, M).
// The zero Number is valid: it holds the zero value of T and resolves the
// provider from the registry on first use.
type Number[T any, M scalar.Math[T]] struct {
	v T
	m *M
}

// New wraps v, resolving the shared provider once.
func New[T any, M scalar.Math[T]](v T) Number[T, M] {
	return Number[T, M]{v: v, m: scalar.Shared[T, M]()}
}

// Zero returns the provider's additive identity.
func Zero[T any, M scalar.Math[T]]() Number[T, M] {
	m := scalar.Shared[T, M]()
	return Number[T, M]{v: (*m).Zero(), m: m}
}

// One returns the provider's multiplicative identity.
func One[T any, M scalar.Math[T]]() Number[T, M] {
	m := scalar.Shared[T, M]()
	return Number[T, M]{v: (*m).One(), m: m}
}

// FromFloat64 converts f through the provider.
func FromFloat64[T any, M scalar.Math[T]](f float64) Number[T, M] {
	m := scalar.Shared[T, M]()
	return Number[T, M]{v: (*m).FromFloat64(f), m: m}
}

// Sin returns sin(phi) in the provider's representation; phi is in radians.
// Providers without NaN panic on a non-finite phi.
func Sin[T any, M scalar.Math[T]](phi float64) Number[T, M] {
	m := scalar.Shared[T, M]()
	return Number[T, M]{v: (*m).Sin(phi), m: m}
}

// Cos returns cos(phi) in the provider's representation; phi is in radians.
func Cos[T any, M scalar.Math[T]](phi float64) Number[T, M] {
	m := scalar.Shared[T, M]()
	return Number[T, M]{v: (*m).Cos(phi), m: m}
}

// Epsilon returns the provider's approximate-equality step.
func Epsilon[T any, M scalar.Math[T]]() Number[T, M] {
	m := scalar.Shared[T, M]()
	return Number[T, M]{v: (*m).Epsilon(), m: m}
}

// MinValue returns the provider's lower bound.
func MinValue[T any, M scalar.Math[T]]() Number[T, M] {
	m := scalar.Shared[T, M]()
	return Number[T, M]{v: (*m).MinValue(), m: m}
}

// MaxValue returns the provider's upper bound.
func MaxValue[T any, M scalar.Math[T]]() Number[T, M] {
	m := scalar.Shared[T, M]()
	return Number[T, M]{v: (*m).MaxValue(), m: m}
}

// Math returns the shared provider bound to n.
func (n Number[T, M]) Math() *M {
	if n.m != nil {
		return n.m
	}

	return scalar.Shared[T, M]()
}

// wrap builds a Number sharing n's provider.
func (n Number[T, M]) wrap(v T) Number[T, M] {
	return Number[T, M]{v: v, m: n.Math()}
}

// Value unwraps the raw scalar.
func (n Number[T, M]) Value() T { return n.v }

// Float64 converts n to float64 through the provider.
func (n Number[T, M]) Float64() float64 { return (*n.Math()).Float64(n.v) }

// String renders n with the provider's Format.
func (n Number[T, M]) String() string { return (*n.Math()).Format(n.v) }
