// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvmath/linear"
)

// maxInput bounds every numeric input so that all providers, including the
// 18-digit decimal, can represent it.
const maxInput = 1e15

// step is a single axis rotation of a composition.
type step struct {
	axis    linear.Axis
	radians float64
}

// parseNumber accepts finite values within ±maxInput.
func parseNumber(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}

	return f, checkNumber(f)
}

func checkNumber(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > maxInput {
		return fmt.Errorf("%w: %v", ErrInvalidNumber, f)
	}

	return nil
}

// parseAxis maps "x", "y", "z" (any case) to an Axis.
func parseAxis(s string) (linear.Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return linear.AxisX, nil
	case "y":
		return linear.AxisY, nil
	case "z":
		return linear.AxisZ, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidAxis, s)
	}
}

// parseVector reads "x,y,z".
func parseVector(s string) ([3]float64, error) {
	var v [3]float64
	parts := strings.Split(s, ",")
	if len(parts) != len(v) {
		return v, fmt.Errorf("%w: %q: want 3 comma-separated components", ErrInvalidVector, s)
	}
	for i, p := range parts {
		f, err := parseNumber(p)
		if err != nil {
			return v, fmt.Errorf("%w: component %d: %w", ErrInvalidVector, i, err)
		}
		v[i] = f
	}

	return v, nil
}

// toRadians converts an angle given in the configured unit.
func toRadians(angle float64, degrees bool) float64 {
	if degrees {
		return angle * math.Pi / 180
	}

	return angle
}

// parseStep reads "axis:angle", e.g. "x:90".
func parseStep(s string, degrees bool) (step, error) {
	name, value, ok := strings.Cut(s, ":")
	if !ok {
		return step{}, fmt.Errorf("%w: %q: want axis:angle", ErrInvalidStep, s)
	}
	axis, err := parseAxis(name)
	if err != nil {
		return step{}, fmt.Errorf("%w: %w", ErrInvalidStep, err)
	}
	angle, err := parseNumber(value)
	if err != nil {
		return step{}, fmt.Errorf("%w: %w", ErrInvalidStep, err)
	}

	return step{axis: axis, radians: toRadians(angle, degrees)}, nil
}
