// SPDX-License-Identifier: MIT

package gaussian

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Mass is the integral of Density over the whole real line for any valid
// Params: ∫ exp(-(x-m)²/v) dx = sqrt(π·v), divided by sqrt(2·π·v).
const Mass = 1 / math.Sqrt2

// twoPi is the constant under the square root of the normaliser.
const twoPi = 2 * math.Pi

// DensityFunc maps a sample point to a density value.
type DensityFunc func(x float64) float64

// Params is an immutable (Mean, Variance) pair.
//
// Invariant: Variance > 0. Density does not guard it; use Validate at the
// boundary where the values enter the program.
type Params struct {
	Mean     float64 `json:"mean" yaml:"mean"`
	Variance float64 `json:"variance" yaml:"variance"`
}

// Validate reports whether p satisfies the Params invariant.
func (p Params) Validate() error {
	if math.IsNaN(p.Mean) || math.IsInf(p.Mean, 0) || math.IsNaN(p.Variance) || math.IsInf(p.Variance, 0) {
		return fmt.Errorf("%v: %w", p, ErrNaNInf)
	}
	if p.Variance <= 0 {
		return fmt.Errorf("%v: %w", p, ErrNonPositiveVariance)
	}

	return nil
}

// String renders p as "N(mean, variance)".
func (p Params) String() string {
	return fmt.Sprintf("N(%g, %g)", p.Mean, p.Variance)
}

// Density returns exp(-(x-mean)²/variance) / sqrt(2·π·variance).
//
// The result is undefined for variance <= 0.
func Density(x, mean, variance float64) float64 {
	d := x - mean

	return math.Exp(-(d*d)/variance) / math.Sqrt(twoPi*variance)
}

// Density evaluates the density of p at x.
func (p Params) Density(x float64) float64 {
	return Density(x, p.Mean, p.Variance)
}

// Densities evaluates the density of p at every point of xs.
// The returned slice is freshly allocated and has len(xs) elements.
func (p Params) Densities(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = Density(x, p.Mean, p.Variance)
	}

	return out
}

// Func returns p.Density as a DensityFunc closure.
func (p Params) Func() DensityFunc {
	return p.Density
}

// Normal returns the textbook normal distribution with the same shape as
// p.Density, i.e. standard deviation sqrt(Variance/2).
// For every x: p.Density(x) == Mass * p.Normal().Prob(x), up to rounding.
func (p Params) Normal() distuv.Normal {
	return distuv.Normal{Mu: p.Mean, Sigma: math.Sqrt(p.Variance / 2)}
}
