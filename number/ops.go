// SPDX-License-Identifier: MIT
// Package number: operators.
// Every method forwards to one capability of the bound provider. Errors
// returned by the provider are propagated unchanged.

package number

import "github.com/katalvlaran/lvmath/scalar"

// Add returns n + o.
func (n Number[T, M]) Add(o Number[T, M]) Number[T, M] {
	return n.wrap((*n.Math()).Add(n.v, o.v))
}

// Sub returns n - o.
func (n Number[T, M]) Sub(o Number[T, M]) Number[T, M] {
	return n.wrap((*n.Math()).Subtract(n.v, o.v))
}

// Mul returns n · o.
func (n Number[T, M]) Mul(o Number[T, M]) Number[T, M] {
	return n.wrap((*n.Math()).Multiply(n.v, o.v))
}

// Div returns n / o. Division by zero is defined by the provider.
func (n Number[T, M]) Div(o Number[T, M]) (Number[T, M], error) {
	v, err := (*n.Math()).Divide(n.v, o.v)
	if err != nil {
		return Number[T, M]{}, err
	}

	return n.wrap(v), nil
}

// Neg returns -n.
func (n Number[T, M]) Neg() Number[T, M] { return n.wrap((*n.Math()).Negate(n.v)) }

// Abs returns |n|.
func (n Number[T, M]) Abs() Number[T, M] { return n.wrap((*n.Math()).Abs(n.v)) }

// Scale returns n · factor.
func (n Number[T, M]) Scale(factor float64) Number[T, M] {
	return n.wrap((*n.Math()).Scale(n.v, factor))
}

// Sqrt returns the square root of n.
func (n Number[T, M]) Sqrt() (Number[T, M], error) {
	v, err := (*n.Math()).Sqrt(n.v)
	if err != nil {
		return Number[T, M]{}, err
	}

	return n.wrap(v), nil
}

// Log returns the natural logarithm of n.
func (n Number[T, M]) Log() (Number[T, M], error) {
	v, err := (*n.Math()).Log(n.v)
	if err != nil {
		return Number[T, M]{}, err
	}

	return n.wrap(v), nil
}

// Exp returns e^n.
func (n Number[T, M]) Exp() (Number[T, M], error) {
	v, err := (*n.Math()).Exp(n.v)
	if err != nil {
		return Number[T, M]{}, err
	}

	return n.wrap(v), nil
}

// Pow returns n^e.
func (n Number[T, M]) Pow(e float64) (Number[T, M], error) {
	v, err := (*n.Math()).Pow(n.v, e)
	if err != nil {
		return Number[T, M]{}, err
	}

	return n.wrap(v), nil
}

// Compare returns -1, 0 or +1 as n is less than, equal to or greater than o.
func (n Number[T, M]) Compare(o Number[T, M]) int { return (*n.Math()).Compare(n.v, o.v) }

// Equal reports exact equality under the provider's Comparison.
func (n Number[T, M]) Equal(o Number[T, M]) bool { return (*n.Math()).Equal(n.v, o.v) }

// Less reports n < o.
func (n Number[T, M]) Less(o Number[T, M]) bool { return n.Compare(o) < 0 }

// Greater reports n > o.
func (n Number[T, M]) Greater(o Number[T, M]) bool { return n.Compare(o) > 0 }

// IsZero reports whether n equals the provider's Zero.
func (n Number[T, M]) IsZero() bool {
	m := n.Math()
	return (*m).Equal(n.v, (*m).Zero())
}

// ApproxEqual reports |n-o| <= eps; a NaN difference is never within eps.
func (n Number[T, M]) ApproxEqual(o, eps Number[T, M]) bool {
	return scalar.ApproxEqual(n.Math(), n.v, o.v, eps.v)
}

// Hash returns a hash consistent with Equal.
func (n Number[T, M]) Hash() uint64 { return (*n.Math()).Hash(n.v) }
