// SPDX-License-Identifier: MIT

package scene

import (
	"fmt"
	"math"
)

// Slider defaults used by the demos.
const (
	DefaultMeanMin     = -5.0
	DefaultMeanMax     = 5.0
	DefaultVarianceMin = 0.1
	DefaultVarianceMax = 1.9
	DefaultStep        = 0.1
)

// Bounds is the slider policy applied to every parameter write.
type Bounds struct {
	MeanMin     float64
	MeanMax     float64
	VarianceMin float64
	VarianceMax float64
	Step        float64
}

// DefaultBounds returns mean ∈ [-5, 5], variance ∈ [0.1, 1.9], step 0.1.
func DefaultBounds() Bounds {
	return Bounds{
		MeanMin:     DefaultMeanMin,
		MeanMax:     DefaultMeanMax,
		VarianceMin: DefaultVarianceMin,
		VarianceMax: DefaultVarianceMax,
		Step:        DefaultStep,
	}
}

// Validate checks that the ranges are finite, ordered, that the variance
// range is strictly positive and that Step > 0.
func (b Bounds) Validate() error {
	for _, v := range []float64{b.MeanMin, b.MeanMax, b.VarianceMin, b.VarianceMax, b.Step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("bounds %+v: %w", b, ErrNaNInf)
		}
	}
	if b.MeanMin >= b.MeanMax || b.VarianceMin >= b.VarianceMax {
		return fmt.Errorf("bounds %+v: %w", b, ErrBadBounds)
	}
	if b.VarianceMin <= 0 {
		return fmt.Errorf("bounds %+v: variance minimum must be > 0: %w", b, ErrBadBounds)
	}
	if b.Step <= 0 {
		return fmt.Errorf("bounds %+v: step must be > 0: %w", b, ErrBadBounds)
	}

	return nil
}

// Range returns the [min, max] interval of parameter p.
func (b Bounds) Range(p Param) (lo, hi float64) {
	if p.IsVariance() {
		return b.VarianceMin, b.VarianceMax
	}

	return b.MeanMin, b.MeanMax
}

// Clamp limits v to the range of p.
func (b Bounds) Clamp(p Param, v float64) float64 {
	lo, hi := b.Range(p)

	return math.Min(math.Max(v, lo), hi)
}

// snap rounds v to 1e-9 so repeated slider steps do not accumulate
// representation noise such as 0.30000000000000004.
func snap(v float64) float64 {
	return math.Round(v*1e9) / 1e9
}
