// SPDX-License-Identifier: MIT

package gan

import (
	"fmt"

	"gonum.org/v1/gonum/diff/fd"

	"github.com/katalvlaran/ganvalue/gaussian"
	"github.com/katalvlaran/ganvalue/grid"
)

// Param names a generator parameter that can be varied.
type Param int

const (
	// ParamMean is the generator mean.
	ParamMean Param = iota

	// ParamVariance is the generator variance.
	ParamVariance
)

// String returns "mean" or "variance".
func (p Param) String() string {
	switch p {
	case ParamMean:
		return "mean"
	case ParamVariance:
		return "variance"
	default:
		return fmt.Sprintf("Param(%d)", int(p))
	}
}

// ParseParam accepts "mean" and "variance" and the short forms "mu" and "var".
func ParseParam(s string) (Param, error) {
	switch s {
	case "mean", "mu":
		return ParamMean, nil
	case "variance", "var":
		return ParamVariance, nil
	}

	return ParamMean, fmt.Errorf("ParseParam(%q): %w", s, ErrUnknownParam)
}

// With returns gen with parameter p replaced by v.
func (p Param) With(gen gaussian.Params, v float64) gaussian.Params {
	if p == ParamVariance {
		gen.Variance = v
	} else {
		gen.Mean = v
	}

	return gen
}

// Get returns the value of parameter p in gen.
func (p Param) Get(gen gaussian.Params) float64 {
	if p == ParamVariance {
		return gen.Variance
	}

	return gen.Mean
}

// GradientStep is the finite-difference step used by GeneratorGradient.
const GradientStep = 1e-4

const opGradient = "GeneratorGradient"

// GeneratorGradient returns d/dθ of the value-curve integral, where θ is the
// generator parameter p and the discriminator is re-optimised at every θ.
// It uses a central finite difference.
//
// Far from convergence the Minimax gradient with respect to the mean
// vanishes while the NonSaturating one stays large.
func GeneratorGradient(g grid.Grid, t, gen gaussian.Params, mode Mode, p Param) (float64, error) {
	if g.Len() == 0 {
		return 0, fmt.Errorf("%s: %w", opGradient, ErrEmptyGrid)
	}
	if !mode.Valid() {
		return 0, fmt.Errorf("%s: %v: %w", opGradient, mode, ErrUnknownMode)
	}
	if p != ParamMean && p != ParamVariance {
		return 0, fmt.Errorf("%s: %v: %w", opGradient, p, ErrUnknownParam)
	}
	if p == ParamVariance && gen.Variance <= 2*GradientStep {
		return 0, fmt.Errorf("%s: variance %g: %w", opGradient, gen.Variance, ErrVarianceTooSmall)
	}

	objective := func(theta float64) float64 {
		res, err := Evaluate(g, t, p.With(gen, theta), mode)
		if err != nil {
			return 0
		}

		return res.Integral()
	}

	return fd.Derivative(objective, p.Get(gen), &fd.Settings{
		Formula: fd.Central,
		Step:    GradientStep,
	}), nil
}
