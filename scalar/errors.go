// SPDX-License-Identifier: MIT
// Package scalar: sentinel error set.
// Providers return these sentinels (optionally wrapped with an operation tag)
// for scalar-domain failures. Callers match them via errors.Is; higher layers
// propagate them unchanged.

package scalar

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned by providers whose representation has no
	// infinity when the divisor equals the provider's Zero.
	ErrDivisionByZero = errors.New("scalar: division by zero")

	// ErrDomain signals an argument outside the mathematical domain of the
	// operation (log of a non-positive value, square root of a negative value).
	ErrDomain = errors.New("scalar: argument outside domain")

	// ErrNonFinite signals a NaN or ±Inf handed to a provider that cannot
	// represent it.
	ErrNonFinite = errors.New("scalar: NaN or Inf encountered")

	// ErrOverflow signals a result beyond the provider's MaxValue/MinValue range.
	ErrOverflow = errors.New("scalar: result out of representable range")
)

// Operation tags used by providers when wrapping sentinels.
const (
	OpDivide = "Divide"
	OpLog    = "Log"
	OpLogN   = "LogN"
	OpExp    = "Exp"
	OpPow    = "Pow"
	OpSqrt   = "Sqrt"
)

// Errorf wraps err with an operation tag, preserving it for errors.Is.
// Use only with a non-nil err.
func Errorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
