// SPDX-License-Identifier: MIT

package gan

import (
	"fmt"

	"github.com/katalvlaran/ganvalue/gaussian"
	"github.com/katalvlaran/ganvalue/grid"
)

const opEvaluate = "Evaluate"

// Result holds the four derived curves of one evaluation, aligned with X.
// A Result is produced fresh by every Evaluate call and is never mutated by
// this package afterwards.
type Result struct {
	Mode Mode            `json:"mode" yaml:"mode"`
	True gaussian.Params `json:"true" yaml:"true"`
	Gen  gaussian.Params `json:"generator" yaml:"generator"`

	X             []float64 `json:"x" yaml:"x"`
	TrueDensity   []float64 `json:"true_density" yaml:"true_density"`
	GenDensity    []float64 `json:"gen_density" yaml:"gen_density"`
	Discriminator []float64 `json:"discriminator" yaml:"discriminator"`
	Value         []float64 `json:"value" yaml:"value"`

	grid grid.Grid
}

// Evaluate computes, for every point of g, the true density, the generator
// density, the optimal discriminator and the value-curve contribution of mode.
//
// Errors:
//   - ErrEmptyGrid    — g has no points.
//   - ErrUnknownMode  — mode is not one of the declared modes.
//
// Variance positivity of t and gen is not checked here.
func Evaluate(g grid.Grid, t, gen gaussian.Params, mode Mode) (Result, error) {
	if g.Len() == 0 {
		return Result{}, fmt.Errorf("%s: %w", opEvaluate, ErrEmptyGrid)
	}
	if !mode.Valid() {
		return Result{}, fmt.Errorf("%s: %v: %w", opEvaluate, mode, ErrUnknownMode)
	}

	xs := g.Points()
	pt := t.Densities(xs)
	pg := gen.Densities(xs)
	d := make([]float64, len(xs))
	v := make([]float64, len(xs))
	for i := range xs {
		d[i] = Discriminator(pt[i], pg[i])
		v[i] = ValueAt(mode, pt[i], pg[i], d[i])
	}

	return Result{
		Mode:          mode,
		True:          t,
		Gen:           gen,
		X:             xs,
		TrueDensity:   pt,
		GenDensity:    pg,
		Discriminator: d,
		Value:         v,
		grid:          g,
	}, nil
}

// Len returns the number of sample points.
func (r Result) Len() int { return len(r.X) }

// Integral returns the trapezoidal integral of the value curve over the grid.
func (r Result) Integral() float64 {
	return r.integrate(r.Value)
}

// Mass returns the trapezoidal integrals of the true and generator densities.
// For a wide enough grid both approach gaussian.Mass (1/√2), not 1.
func (r Result) Mass() (trueMass, genMass float64) {
	return r.integrate(r.TrueDensity), r.integrate(r.GenDensity)
}

// NormalizedIntegral divides Integral by the mean density mass, cancelling
// the 1/√2 factor of the density formula. At G = T it reads -log 4 for
// Minimax and 0 for JensenShannon.
func (r Result) NormalizedIntegral() float64 {
	mt, mg := r.Mass()

	return r.Integral() / ((mt + mg) / 2)
}

// At returns the four curve values at index i.
func (r Result) At(i int) (pTrue, pGen, d, v float64) {
	return r.TrueDensity[i], r.GenDensity[i], r.Discriminator[i], r.Value[i]
}

func (r Result) integrate(ys []float64) float64 {
	g := r.grid
	if g.Len() != len(r.X) {
		// Result rebuilt by a decoder carries no grid; recover it from X.
		var err error
		if g, err = grid.FromPoints(r.X); err != nil {
			return 0
		}
	}
	v, err := g.Trapezoid(ys)
	if err != nil {
		return 0
	}

	return v
}
