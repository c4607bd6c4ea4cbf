// SPDX-License-Identifier: MIT

// Package linear implements scalar-agnostic 3D linear algebra: Vector3,
// Quaternion and Matrix33, generic over the scalar representation T and the
// math provider M bound at compile time.
//
// Every type is built purely from number.Number[T, M]; no method touches a raw
// scalar operation. Swapping float64 for float32 or for an 18-digit fixed-point
// decimal is a change of type arguments only:
//
//	type M3 = linear.Matrix33[float64, provider.Float64]
//	r := linear.ZRotation[float64, provider.Float64](math.Pi / 2)
//	v := r.MulVec(linear.UnitX[float64, provider.Float64]()) // ≈ (0, 1, 0)
//
// Values & mutation:
//   - All three types are plain values; assignment copies.
//   - Only Matrix33.Set/SetRow/SetRight/SetUp/SetInto mutate, in place on the
//     receiver. Row getters return copies, never live views.
//
// Errors:
//   - Indexers return ErrOutOfRange for indices outside {0,1,2}.
//   - Scalar-domain errors (scalar.ErrDivisionByZero, scalar.ErrDomain, ...)
//     pass through wrapped with an operation tag; match them with errors.Is.
//
// Equality:
//   - Equal is exact; ApproxEqual accepts WithEpsilon / WithProviderEpsilon.
//   - Hash is consistent with Equal and built from the provider's Hash.
//
// Interop: Matrix33.Dense, Vector3.VecDense and Quaternion.Quat convert to
// gonum types; Matrix33FromDense and QuaternionFromQuat convert back.
package linear
