// SPDX-License-Identifier: MIT
package linear_test

import (
	"math/rand"
	"testing"

	sdkmath "cosmossdk.io/math"

	"github.com/katalvlaran/lvmath/linear"
	"github.com/katalvlaran/lvmath/provider"
)

// Sinks keep results alive across iterations.
var (
	benchSink64  m64
	benchSink32  m32
	benchSinkDec mDec
	benchSinkV64 v64
	benchSinkQ64 q64
)

func BenchmarkMatrix33Mul_Float64(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	x, y := randMatrix64(rng), randMatrix64(rng)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink64 = x.Mul(y)
	}
}

func BenchmarkMatrix33Mul_Float32(b *testing.B) {
	x := linear.ZRotation[float32, provider.Float32](0.3)
	y := linear.XRotation[float32, provider.Float32](1.2)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink32 = x.Mul(y)
	}
}

func BenchmarkMatrix33Mul_Decimal(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	x, y := randMatrixDec(rng), randMatrixDec(rng)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSinkDec = x.Mul(y)
	}
}

func BenchmarkMatrix33Inverse_Float64(b *testing.B) {
	a := mat3(4, 7, 2, 3, 6, 1, 2, 5, 3)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink64, _ = a.Inverse()
	}
}

func BenchmarkMatrix33MulVec_Float64(b *testing.B) {
	a := linear.YRotation[float64, provider.Float64](0.5)
	v := vec(1, 2, 3)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSinkV64 = a.MulVec(v)
	}
}

func BenchmarkQuaternionRotate_Float64(b *testing.B) {
	q, err := linear.QuaternionFromAxisAngle(vec(1, 1, 0), 0.8)
	if err != nil {
		b.Fatal(err)
	}
	v := vec(1, 2, 3)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSinkV64 = q.Rotate(v)
	}
}

func BenchmarkFromQuaternion_Decimal(b *testing.B) {
	q, err := linear.QuaternionFromAxisAngle(linear.UnitZ[sdkmath.LegacyDec, provider.Decimal](), 0.8)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSinkDec = linear.FromQuaternion(q)
	}
}

func BenchmarkQuaternionMul_Float64(b *testing.B) {
	rng := rand.New(rand.NewSource(3))
	p, q := randQuat64(rng), randQuat64(rng)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSinkQ64 = p.Mul(q)
	}
}
