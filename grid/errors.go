// SPDX-License-Identifier: MIT

package grid

import "errors"

var (
	// ErrBadStep indicates a non-positive or non-finite step.
	ErrBadStep = errors.New("grid: step must be finite and > 0")

	// ErrEmptyRange indicates a range or point set that yields no samples.
	ErrEmptyRange = errors.New("grid: empty range")

	// ErrNaNInf indicates a NaN or ±Inf bound or point.
	ErrNaNInf = errors.New("grid: NaN or Inf encountered")

	// ErrNotIncreasing indicates points that are not strictly increasing.
	ErrNotIncreasing = errors.New("grid: points must be strictly increasing")

	// ErrLengthMismatch indicates a value slice whose length differs from the grid.
	ErrLengthMismatch = errors.New("grid: length mismatch")

	// ErrTooLarge indicates a range/step combination above MaxPoints.
	ErrTooLarge = errors.New("grid: too many points")
)
