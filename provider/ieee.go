// SPDX-License-Identifier: MIT
// Package provider: shared IEEE-754 core.
// ieee implements the representation-independent half of scalar.Math for any
// float type; Float32 and Float64 embed it and add the transcendental kernels.

package provider

import (
	"cmp"
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

type ieee[F constraints.Float] struct{}

func (ieee[F]) Zero() F { return 0 }

func (ieee[F]) One() F { return 1 }

func (ieee[F]) Add(a, b F) F { return a + b }

func (ieee[F]) Subtract(a, b F) F { return a - b }

func (ieee[F]) Multiply(a, b F) F { return a * b }

// Divide follows IEEE semantics; the error is always nil.
func (ieee[F]) Divide(a, b F) (F, error) { return a / b, nil }

func (ieee[F]) Negate(x F) F { return -x }

// Abs clears the sign; -0 becomes +0 and NaN stays NaN.
func (ieee[F]) Abs(x F) F {
	if x < 0 {
		return -x
	}
	if x == 0 {
		return 0
	}

	return x
}

// Compare orders a and b as cmp.Compare does: NaN sorts before every other
// value and compares equal only to NaN. Equal stays IEEE (NaN != NaN), so
// Compare(x, y) == 0 does not imply Equal(x, y) for NaN.
func (ieee[F]) Compare(a, b F) int { return cmp.Compare(a, b) }

func (ieee[F]) Equal(a, b F) bool { return a == b }

// Hash digests the canonical float64 bit pattern. -0 folds into +0 so that
// Equal(+0, -0) implies equal hashes.
func (ieee[F]) Hash(x F) uint64 {
	v := float64(x)
	if v == 0 {
		v = 0
	}
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))

	return xxhash.Sum64(buf[:])
}

func (ieee[F]) Scale(x F, factor float64) F { return F(float64(x) * factor) }

func (ieee[F]) Sin(phi float64) F { return F(math.Sin(phi)) }

func (ieee[F]) Cos(phi float64) F { return F(math.Cos(phi)) }

func (ieee[F]) FromFloat64(f float64) F { return F(f) }

func (ieee[F]) Float64(x F) float64 { return float64(x) }
