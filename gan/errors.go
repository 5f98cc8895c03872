// SPDX-License-Identifier: MIT

package gan

import "errors"

var (
	// ErrUnknownMode indicates a Mode outside {minimax, jensen-shannon, non-saturating}.
	ErrUnknownMode = errors.New("gan: unknown value mode")

	// ErrEmptyGrid indicates evaluation over a grid with no points.
	ErrEmptyGrid = errors.New("gan: empty sample grid")

	// ErrUnknownParam indicates a generator Param that GeneratorGradient cannot vary.
	ErrUnknownParam = errors.New("gan: unknown generator parameter")

	// ErrVarianceTooSmall indicates the generator variance is too small for a
	// central finite difference.
	ErrVarianceTooSmall = errors.New("gan: variance too small for gradient step")
)
