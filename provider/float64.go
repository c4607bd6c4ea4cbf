// SPDX-License-Identifier: MIT

package provider

import (
	"math"
	"strconv"

	"github.com/katalvlaran/lvmath/scalar"
)

// Float64 is the IEEE-754 double-precision provider.
type Float64 struct {
	ieee[float64]
}

var _ scalar.Math[float64] = Float64{}

// MinValue is the most negative finite float64.
func (Float64) MinValue() float64 { return -math.MaxFloat64 }

func (Float64) MaxValue() float64 { return math.MaxFloat64 }

// Epsilon is the machine epsilon, the gap between 1 and the next float64.
func (Float64) Epsilon() float64 { return 0x1p-52 }

func (Float64) Log(x float64) (float64, error) { return math.Log(x), nil }

func (Float64) LogN(x float64, base float64) (float64, error) {
	return math.Log(x) / math.Log(base), nil
}

func (Float64) Exp(x float64) (float64, error) { return math.Exp(x), nil }

func (Float64) Pow(x float64, e float64) (float64, error) { return math.Pow(x, e), nil }

func (Float64) Sqrt(x float64) (float64, error) { return math.Sqrt(x), nil }

func (Float64) Format(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }
