// SPDX-License-Identifier: MIT

// Package provider implements scalar.Math for concrete scalar representations.
//
//   - Float64 — IEEE-754 double precision.
//   - Float32 — IEEE-754 single precision (math32 kernels).
//   - Decimal — fixed-point decimal with 18 fractional digits (cosmossdk.io/math LegacyDec).
//
// All providers are stateless, comparable value types. Obtain the shared
// instance through scalar.Shared rather than constructing them ad hoc:
//
//	f := scalar.Shared[float64, provider.Float64]()
//	d := scalar.Shared[sdkmath.LegacyDec, provider.Decimal]()
//
// Division by zero and out-of-domain logarithms follow IEEE semantics for the
// float providers (±Inf/NaN, nil error) and return scalar.ErrDivisionByZero /
// scalar.ErrDomain for Decimal, which has no infinities.
package provider
