// SPDX-License-Identifier: MIT
// Package linear: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the linear
// package. Public indexers and algorithms return these sentinels (wrapped with
// an operation tag) and tests check them via errors.Is. Scalar-domain errors
// from the provider (scalar.Err*) pass through unchanged underneath the tag.

package linear

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "linear: ..." for consistency and grepping.
var (
	// ErrOutOfRange indicates a row, column or component index outside {0,1,2}.
	// Public indexers (At/Set/Row/SetRow/Column) MUST return this, not panic.
	ErrOutOfRange = errors.New("linear: index out of range")

	// ErrSingular is returned by Inverse when the determinant equals Zero.
	ErrSingular = errors.New("linear: singular matrix")

	// ErrZeroLength is returned when a direction is required but the vector
	// or quaternion has zero length (Normalize, Inverse, axis-angle).
	ErrZeroLength = errors.New("linear: zero length")

	// ErrDimensionMismatch indicates a foreign matrix whose shape is not 3×3.
	ErrDimensionMismatch = errors.New("linear: dimension mismatch")
)

// Operation tags for uniform error wrapping.
const (
	opAt        = "At"
	opSet       = "Set"
	opRow       = "Row"
	opSetRow    = "SetRow"
	opColumn    = "Column"
	opInverse   = "Inverse"
	opNormalize = "Normalize"
	opLength    = "Length"
	opDiv       = "Div"
	opWith      = "With"
	opFromDense = "Matrix33FromDense"
	opAxisAngle = "QuaternionFromAxisAngle"
)

// linearErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func linearErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexErrorf attaches coordinates to an index error, "Matrix33.At(3,0): ...".
func indexErrorf(typ, method string, row, col int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", typ, method, row, col, err)
}

// componentErrorf attaches a single index to an index error, "Vector3.At(3): ...".
func componentErrorf(typ, method string, i int, err error) error {
	return fmt.Errorf("%s.%s(%d): %w", typ, method, i, err)
}
