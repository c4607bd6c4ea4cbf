// SPDX-License-Identifier: MIT

// Package number couples a raw scalar with its shared math provider.
//
// Number[T, M] is the unit of computation for every higher type: vectors,
// quaternions and matrices are written purely in terms of Number and never
// perform a raw scalar operation themselves. The provider is part of the
// type, so combining Numbers bound to different providers does not compile.
//
// Numbers are immutable values; every operation returns a new Number that
// shares the receiver's provider pointer. Go's == compares the raw scalar
// representation (which for big-number scalars means pointers), so always
// use Equal and Hash, which delegate to the provider.
//
//	type F = number.Number[float64, provider.Float64]
//	a := number.New[float64, provider.Float64](1.5)
//	b := a.Mul(a).Add(number.One[float64, provider.Float64]())
//	fmt.Println(b) // 3.25
package number
