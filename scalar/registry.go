// SPDX-License-Identifier: MIT
// Package scalar: provider registry.
//
// One provider instance exists per (T, M) pairing. It is created on first
// request, published with LoadOrStore so racing first callers agree on a
// single winner, and never replaced afterwards. Readers take no lock after
// the first resolution beyond sync.Map's read path.

package scalar

import (
	"reflect"
	"sync"
)

// pairing exists only to give every (T, M) instantiation a distinct type key.
type pairing[T any, M Math[T]] struct{}

// registry maps reflect.Type(pairing[T, M]) to *M.
var registry sync.Map

// Shared returns the process-wide provider instance for the (T, M) pairing.
// Every call with the same type arguments returns the same pointer.
// Complexity: O(1) amortized.
func Shared[T any, M Math[T]]() *M {
	key := reflect.TypeOf((*pairing[T, M])(nil)).Elem()
	if p, ok := registry.Load(key); ok {
		return p.(*M)
	}
	p, _ := registry.LoadOrStore(key, new(M))

	return p.(*M)
}

// ApproxEqual reports whether |a-b| <= eps under provider m. A difference
// that is not equal to itself (NaN) is never within tolerance.
func ApproxEqual[T any, M Math[T]](m *M, a, b, eps T) bool {
	d := (*m).Abs((*m).Subtract(a, b))
	if !(*m).Equal(d, d) {
		return false
	}

	return (*m).Compare(d, eps) <= 0
}
