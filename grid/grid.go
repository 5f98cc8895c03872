// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// MaxPoints caps the size of a grid built by New.
const MaxPoints = 1 << 20

const (
	opNew        = "New"
	opFromPoints = "FromPoints"
	opTrapezoid  = "Trapezoid"
	opSum        = "Sum"
)

// Grid is an immutable, strictly increasing sequence of sample points.
// The zero Grid is empty.
type Grid struct {
	xs []float64
}

// New builds the half-open grid [low, high) with points low + i·step for
// i = 0 … ceil((high-low)/step)-1.
//
// Errors:
//   - ErrNaNInf      — low or high is not finite.
//   - ErrBadStep     — step <= 0 or not finite.
//   - ErrEmptyRange  — high <= low.
//   - ErrTooLarge    — more than MaxPoints samples.
//   - ErrNotIncreasing — step too small to separate points at this magnitude.
func New(low, high, step float64) (Grid, error) {
	if math.IsNaN(low) || math.IsInf(low, 0) || math.IsNaN(high) || math.IsInf(high, 0) {
		return Grid{}, fmt.Errorf("%s: %w", opNew, ErrNaNInf)
	}
	if math.IsNaN(step) || math.IsInf(step, 0) || step <= 0 {
		return Grid{}, fmt.Errorf("%s(step=%g): %w", opNew, step, ErrBadStep)
	}
	if high <= low {
		return Grid{}, fmt.Errorf("%s(%g, %g): %w", opNew, low, high, ErrEmptyRange)
	}

	count := math.Ceil((high - low) / step)
	if count > MaxPoints {
		return Grid{}, fmt.Errorf("%s(%g, %g, %g): %w", opNew, low, high, step, ErrTooLarge)
	}

	n := int(count)
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = low + float64(i)*step
		if i > 0 && xs[i] <= xs[i-1] {
			return Grid{}, fmt.Errorf("%s(%g, %g, %g): step below float resolution at %g: %w",
				opNew, low, high, step, xs[i], ErrNotIncreasing)
		}
	}

	return Grid{xs: xs}, nil
}

// MustNew is New that panics on error. Intended for constants and tests.
func MustNew(low, high, step float64) Grid {
	g, err := New(low, high, step)
	if err != nil {
		panic(err)
	}

	return g
}

// FromPoints copies xs into a Grid after checking it is non-empty, finite and
// strictly increasing.
func FromPoints(xs []float64) (Grid, error) {
	if len(xs) == 0 {
		return Grid{}, fmt.Errorf("%s: %w", opFromPoints, ErrEmptyRange)
	}
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Grid{}, fmt.Errorf("%s: xs[%d]: %w", opFromPoints, i, ErrNaNInf)
		}
		if i > 0 && x <= xs[i-1] {
			return Grid{}, fmt.Errorf("%s: xs[%d]=%g after %g: %w", opFromPoints, i, x, xs[i-1], ErrNotIncreasing)
		}
	}

	return Grid{xs: append([]float64(nil), xs...)}, nil
}

// Len returns the number of sample points.
func (g Grid) Len() int { return len(g.xs) }

// At returns the i-th point. It panics if i is out of range, like a slice index.
func (g Grid) At(i int) float64 { return g.xs[i] }

// Low returns the first point, or 0 for an empty grid.
func (g Grid) Low() float64 {
	if len(g.xs) == 0 {
		return 0
	}

	return g.xs[0]
}

// High returns the last point, or 0 for an empty grid.
func (g Grid) High() float64 {
	if len(g.xs) == 0 {
		return 0
	}

	return g.xs[len(g.xs)-1]
}

// Points returns a copy of the sample points.
func (g Grid) Points() []float64 {
	return append([]float64(nil), g.xs...)
}

// Index returns the index of the point closest to x.
// It returns -1 for an empty grid.
func (g Grid) Index(x float64) int {
	if len(g.xs) == 0 {
		return -1
	}
	best, bestDist := 0, math.Inf(1)
	for i, p := range g.xs {
		if d := math.Abs(p - x); d < bestDist {
			best, bestDist = i, d
		}
	}

	return best
}

// Trapezoid integrates ys sampled on g with the trapezoidal rule.
// A single-point grid integrates to 0.
func (g Grid) Trapezoid(ys []float64) (float64, error) {
	if len(ys) != len(g.xs) {
		return 0, fmt.Errorf("%s: %d values for %d points: %w", opTrapezoid, len(ys), len(g.xs), ErrLengthMismatch)
	}
	if len(g.xs) < 2 {
		return 0, nil
	}

	return integrate.Trapezoidal(g.xs, ys), nil
}

// Sum returns the plain sum of ys, the grid's Riemann-style total without
// the step factor.
func (g Grid) Sum(ys []float64) (float64, error) {
	if len(ys) != len(g.xs) {
		return 0, fmt.Errorf("%s: %d values for %d points: %w", opSum, len(ys), len(g.xs), ErrLengthMismatch)
	}

	return floats.Sum(ys), nil
}
