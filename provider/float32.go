// SPDX-License-Identifier: MIT

package provider

import (
	"math"
	"strconv"

	"github.com/chewxy/math32"

	"github.com/katalvlaran/lvmath/scalar"
)

// Float32 is the IEEE-754 single-precision provider. Transcendental kernels
// run natively in float32; Sin and Cos evaluate the float64 angle in double
// precision and round once.
type Float32 struct {
	ieee[float32]
}

var _ scalar.Math[float32] = Float32{}

// MinValue is the most negative finite float32.
func (Float32) MinValue() float32 { return -math.MaxFloat32 }

func (Float32) MaxValue() float32 { return math.MaxFloat32 }

// Epsilon is the gap between 1 and the next float32.
func (Float32) Epsilon() float32 { return 0x1p-23 }

func (Float32) Log(x float32) (float32, error) { return math32.Log(x), nil }

func (Float32) LogN(x float32, base float64) (float32, error) {
	return math32.Log(x) / math32.Log(float32(base)), nil
}

func (Float32) Exp(x float32) (float32, error) { return math32.Exp(x), nil }

func (Float32) Pow(x float32, e float64) (float32, error) {
	return math32.Pow(x, float32(e)), nil
}

func (Float32) Sqrt(x float32) (float32, error) { return math32.Sqrt(x), nil }

func (Float32) Format(x float32) string { return strconv.FormatFloat(float64(x), 'g', -1, 32) }
