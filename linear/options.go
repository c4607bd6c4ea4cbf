// SPDX-License-Identifier: MIT
// Package linear: functional options for approximate comparisons.
//
// Exact equality (Equal) never takes options. ApproxEqual on Vector3,
// Quaternion and Matrix33 accepts ...Option to pick the tolerance:
//   - WithEpsilon(eps): an explicit float64 tolerance, converted through the
//     provider (panics on nonsensical values; programmer error).
//   - WithProviderEpsilon(): the provider's own Limits.Epsilon.
//
// Defaults live in constants below; no global state.

package linear

import (
	"math"

	"github.com/katalvlaran/lvmath/number"
	"github.com/katalvlaran/lvmath/scalar"
)

// DefaultEpsilon is the tolerance used by ApproxEqual when no option is given.
const DefaultEpsilon = 1e-9

const panicEpsilonInvalid = "linear: WithEpsilon: eps must be finite, non-negative"

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options holds the effective comparison policy after applying Option setters.
type Options struct {
	eps         float64 // >= 0; DefaultEpsilon
	providerEps bool    // use Limits.Epsilon instead of eps
}

// WithEpsilon sets the absolute tolerance for approximate comparisons.
// Panics when eps is negative, NaN or infinite.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) {
		o.eps = eps
		o.providerEps = false
	}
}

// WithProviderEpsilon compares within the provider's Epsilon (machine
// epsilon for floats, one ulp of the last decimal digit for Decimal).
func WithProviderEpsilon() Option {
	return func(o *Options) { o.providerEps = true }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// tolerance converts the policy into a Number of the caller's provider.
func tolerance[T any, M scalar.Math[T]](opts ...Option) number.Number[T, M] {
	o := gatherOptions(opts...)
	if o.providerEps {
		return number.Epsilon[T, M]()
	}

	return number.FromFloat64[T, M](o.eps)
}
