// SPDX-License-Identifier: MIT

// Package scalar defines the capability contracts a numeric "math provider"
// implements for one scalar representation, and the process-wide registry
// that hands out one shared provider instance per (scalar, provider) pairing.
//
// The capability set is split into narrow contracts:
//
//   - AbsoluteValue  — Abs.
//   - Arithmetic     — Zero/One, Add, Subtract, Multiply, Divide, Negate.
//   - Comparison     — Compare, Equal, Hash (Hash is consistent with Equal).
//   - Limits         — MinValue, MaxValue, Epsilon.
//   - Logarithmics   — Log, LogN, Exp, Pow.
//   - Scaling        — Scale by a float64 factor.
//   - Trigonometrics — Sin, Cos of a float64 angle in radians.
//   - SquareRoot     — Sqrt.
//   - Conversion     — FromFloat64, Float64, Format.
//
// Math bundles all of them. Higher layers (package number and package linear)
// are written against Math only and never touch a raw scalar operation.
//
// Providers are stateless value types. Resolve them with Shared:
//
//	m := scalar.Shared[float64, provider.Float64]()
//
// Shared is lazy, safe for concurrent first use, and returns the same pointer
// for every call with the same pairing.
package scalar
