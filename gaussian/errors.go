// SPDX-License-Identifier: MIT

package gaussian

import "errors"

// Sentinel errors returned by Params.Validate. Callers branch with errors.Is.
var (
	// ErrNonPositiveVariance indicates Variance <= 0.
	ErrNonPositiveVariance = errors.New("gaussian: variance must be > 0")

	// ErrNaNInf indicates a NaN or ±Inf mean or variance.
	ErrNaNInf = errors.New("gaussian: NaN or Inf parameter")
)
