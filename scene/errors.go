// SPDX-License-Identifier: MIT

package scene

import "errors"

var (
	// ErrBadBounds indicates an unordered or non-positive slider policy.
	ErrBadBounds = errors.New("scene: invalid bounds")

	// ErrNaNInf indicates a NaN or ±Inf parameter write.
	ErrNaNInf = errors.New("scene: NaN or Inf value")

	// ErrUnknownParam indicates a Param outside the four scene parameters.
	ErrUnknownParam = errors.New("scene: unknown parameter")

	// ErrNilRenderer indicates New was called without a renderer.
	ErrNilRenderer = errors.New("scene: renderer is nil")

	// ErrEmptyGrid indicates New was called with an empty grid.
	ErrEmptyGrid = errors.New("scene: empty grid")
)
