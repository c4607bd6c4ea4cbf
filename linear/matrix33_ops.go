// SPDX-License-Identifier: MIT
// Package linear: Matrix33 algebra.
//
// Determinism & Policy:
//   - Fixed i-j-k loop orders; accumulation is ((a·b + c·d) + e·f) for every
//     product element, so results are reproducible for a given provider.
//   - All kernels are pure and return a fresh matrix or vector.

package linear

import "github.com/katalvlaran/lvmath/number"

// Mul returns the matrix product a ⋅ f (row-by-column).
// Complexity: 27 multiplications, 18 additions.
func (a Matrix33[T, M]) Mul(f Matrix33[T, M]) (p Matrix33[T, M]) {
	for i := range p.m {
		for j := range p.m[i] {
			p.m[i][j] = a.m[i][0].Mul(f.m[0][j]).
				Add(a.m[i][1].Mul(f.m[1][j])).
				Add(a.m[i][2].Mul(f.m[2][j]))
		}
	}
	return
}

// MulVec transforms v, treated as a column vector: component i is row_i ⋅ v.
func (a Matrix33[T, M]) MulVec(v Vector3[T, M]) (u Vector3[T, M]) {
	for i := range u.e {
		u.e[i] = a.m[i][0].Mul(v.e[0]).
			Add(a.m[i][1].Mul(v.e[1])).
			Add(a.m[i][2].Mul(v.e[2]))
	}
	return
}

// Add returns the element-wise sum a + b.
func (a Matrix33[T, M]) Add(b Matrix33[T, M]) (s Matrix33[T, M]) {
	for i := range s.m {
		for j := range s.m[i] {
			s.m[i][j] = a.m[i][j].Add(b.m[i][j])
		}
	}
	return
}

// Sub returns the element-wise difference a - b.
func (a Matrix33[T, M]) Sub(b Matrix33[T, M]) (s Matrix33[T, M]) {
	for i := range s.m {
		for j := range s.m[i] {
			s.m[i][j] = a.m[i][j].Sub(b.m[i][j])
		}
	}
	return
}

// Scale returns α ⋅ a.
func (a Matrix33[T, M]) Scale(alpha number.Number[T, M]) (s Matrix33[T, M]) {
	for i := range s.m {
		for j := range s.m[i] {
			s.m[i][j] = a.m[i][j].Mul(alpha)
		}
	}
	return
}

// Transpose returns aᵀ. For a pure rotation this is also the inverse.
func (a Matrix33[T, M]) Transpose() (t Matrix33[T, M]) {
	for i := range t.m {
		t.m[i][i] = a.m[i][i]
		for j := i + 1; j < len(t.m); j++ {
			t.m[i][j], t.m[j][i] = a.m[j][i], a.m[i][j]
		}
	}
	return
}

// cofactors returns the first-row cofactors shared by Determinant and Inverse.
func (a Matrix33[T, M]) cofactors() (c0, c1, c2 number.Number[T, M]) {
	n := &a.m
	c0 = n[1][1].Mul(n[2][2]).Sub(n[1][2].Mul(n[2][1]))
	c1 = n[1][2].Mul(n[2][0]).Sub(n[1][0].Mul(n[2][2]))
	c2 = n[1][0].Mul(n[2][1]).Sub(n[1][1].Mul(n[2][0]))
	return
}

// Determinant returns det(a) by cofactor expansion along the first row.
func (a Matrix33[T, M]) Determinant() number.Number[T, M] {
	c0, c1, c2 := a.cofactors()

	return a.m[0][0].Mul(c0).Add(a.m[0][1].Mul(c1)).Add(a.m[0][2].Mul(c2))
}

// Inverse returns a⁻¹ as the adjugate divided by the determinant.
// A zero determinant yields ErrSingular; provider division errors propagate.
func (a Matrix33[T, M]) Inverse() (Matrix33[T, M], error) {
	n := &a.m
	c0, c1, c2 := a.cofactors()
	det := n[0][0].Mul(c0).Add(n[0][1].Mul(c1)).Add(n[0][2].Mul(c2))
	if det.IsZero() {
		return Matrix33[T, M]{}, linearErrorf(opInverse, ErrSingular)
	}
	idet, err := number.One[T, M]().Div(det)
	if err != nil {
		return Matrix33[T, M]{}, linearErrorf(opInverse, err)
	}

	adj := Matrix33Of(
		c0,
		n[0][2].Mul(n[2][1]).Sub(n[0][1].Mul(n[2][2])),
		n[0][1].Mul(n[1][2]).Sub(n[0][2].Mul(n[1][1])),

		c1,
		n[0][0].Mul(n[2][2]).Sub(n[0][2].Mul(n[2][0])),
		n[0][2].Mul(n[1][0]).Sub(n[0][0].Mul(n[1][2])),

		c2,
		n[0][1].Mul(n[2][0]).Sub(n[0][0].Mul(n[2][1])),
		n[0][0].Mul(n[1][1]).Sub(n[0][1].Mul(n[1][0])),
	)

	return adj.Scale(idet), nil
}
