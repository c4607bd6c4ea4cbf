// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrAborted is returned when a composition is cancelled between steps.
	// It wraps context.Canceled.
	ErrAborted = fmt.Errorf("operation aborted: %w", context.Canceled)

	// ErrUnknownScalar indicates a --scalar value with no bundled provider.
	ErrUnknownScalar = errors.New("lvmath: unknown scalar representation")

	// ErrUnknownOutput indicates an --output value other than text or yaml.
	ErrUnknownOutput = errors.New("lvmath: unknown output format")

	// ErrInvalidAxis indicates an axis name other than x, y or z.
	ErrInvalidAxis = errors.New("lvmath: invalid axis")

	// ErrInvalidNumber indicates a non-numeric, non-finite or oversized input.
	ErrInvalidNumber = errors.New("lvmath: invalid number")

	// ErrInvalidVector indicates a --vector value that is not "x,y,z".
	ErrInvalidVector = errors.New("lvmath: invalid vector")

	// ErrInvalidStep indicates a compose argument that is not "axis:angle".
	ErrInvalidStep = errors.New("lvmath: invalid rotation step")
)
