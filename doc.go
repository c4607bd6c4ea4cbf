// Package lvmath is a small 3D linear-algebra kit whose every value is generic
// over the scalar it is built from: float64, float32 or an 18-digit
// fixed-point decimal, with the arithmetic supplied by a math provider chosen
// at compile time.
//
// 🚀 What is in the box?
//
//   - Scalar capability contracts: arithmetic, comparison, limits,
//     logarithms, scaling, trigonometry, square root, conversion
//   - Providers: Float64, Float32 and Decimal, shared per process
//   - Number: a scalar bundled with its provider, with operator methods
//   - Linear types: Vector3, Quaternion and Matrix33 (rotations, products,
//     transpose, determinant, inverse)
//   - gonum interop and a small CLI (cmd/lvmath)
//
// ✨ Why lvmath?
//
//   - One code path for all precisions: change the type arguments, not the code
//   - Value semantics: matrices and vectors copy on assignment
//   - Safe indexers: out-of-range rows and columns are errors, not panics
//   - Scalar errors (division by zero, domain) surface through errors.Is
//
// Under the hood, everything is organized under four subpackages:
//
//	scalar/   — capability interfaces, sentinel errors, shared-provider registry
//	provider/ — Float64, Float32 and Decimal implementations
//	number/   — Number[T, M], the scalar wrapper every composite is built from
//	linear/   — Vector3, Quaternion, Matrix33 and gonum conversions
//
// Quick example:
//
//	r := linear.ZRotation[float64, provider.Float64](math.Pi / 2)
//	v := r.MulVec(linear.UnitX[float64, provider.Float64]())
//	fmt.Println(v.ApproxEqual(linear.UnitY[float64, provider.Float64]())) // true
//
//	go get github.com/katalvlaran/lvmath/linear
package lvmath
