// SPDX-License-Identifier: MIT
// Package scalar: capability contracts.
//
// Purpose:
//   - Declare one narrow interface per group of elementary operations.
//   - Keep every contract independent so a provider can be assembled from parts.
//   - Bundle all of them in Math, the only constraint higher layers depend on.
//
// Contract notes:
//   - Zero and One are the additive and multiplicative identities of T.
//   - Compare/Equal follow the natural ordering of the representation.
//   - Hash(a) == Hash(b) whenever Equal(a, b).
//   - Angles passed to Sin/Cos are float64 radians regardless of T's precision.
//     IEEE providers return NaN for a NaN or ±Inf angle; providers without
//     NaN (Decimal) panic, as their FromFloat64 does.

package scalar

// AbsoluteValue computes magnitudes. Abs(x) is never less than Zero.
type AbsoluteValue[T any] interface {
	Abs(x T) T
}

// Arithmetic supplies the field operations of the representation.
//
// Divide by Zero is provider-specific but consistent: IEEE providers return
// ±Inf/NaN and a nil error, representations without infinities return
// ErrDivisionByZero.
type Arithmetic[T any] interface {
	Zero() T
	One() T
	Add(a, b T) T
	Subtract(a, b T) T
	Multiply(a, b T) T
	Divide(a, b T) (T, error)
	Negate(x T) T
}

// Comparison orders values and defines equality and hashing explicitly, so
// that composite types never rely on Go's == for scalars (which compares
// pointers for big-number representations).
type Comparison[T any] interface {
	// Compare returns -1, 0 or +1 as a is less than, equal to or greater than b.
	Compare(a, b T) int
	Equal(a, b T) bool
	Hash(x T) uint64
}

// Limits exposes representation bounds and the smallest meaningful step,
// intended for approximate-equality checks by callers.
type Limits[T any] interface {
	MinValue() T
	MaxValue() T
	Epsilon() T
}

// Logarithmics supplies logarithms and exponentiation.
type Logarithmics[T any] interface {
	// Log returns the natural logarithm of x.
	Log(x T) (T, error)
	// LogN returns the logarithm of x in the given base.
	LogN(x T, base float64) (T, error)
	Exp(x T) (T, error)
	Pow(x T, e float64) (T, error)
}

// Scaling multiplies a value by an arbitrary float64 factor.
type Scaling[T any] interface {
	Scale(x T, factor float64) T
}

// Trigonometrics evaluates sine and cosine of an angle in radians.
// A non-finite angle yields NaN where T has one and panics otherwise.
type Trigonometrics[T any] interface {
	Sin(phi float64) T
	Cos(phi float64) T
}

// SquareRoot is required by vector and quaternion lengths.
type SquareRoot[T any] interface {
	Sqrt(x T) (T, error)
}

// Conversion moves values to and from float64 and renders them for diagnostics.
type Conversion[T any] interface {
	FromFloat64(f float64) T
	Float64(x T) float64
	Format(x T) string
}

// Math is the full capability bundle a provider must implement.
type Math[T any] interface {
	AbsoluteValue[T]
	Arithmetic[T]
	Comparison[T]
	Limits[T]
	Logarithmics[T]
	Scaling[T]
	Trigonometrics[T]
	SquareRoot[T]
	Conversion[T]
}
