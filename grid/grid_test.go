// SPDX-License-Identifier: MIT

package grid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ganvalue/grid"
)

// TestNew_DemoGrid checks the [-3, 6) step 0.1 configuration used by the demos.
func TestNew_DemoGrid(t *testing.T) {
	g, err := grid.New(-3, 6, 0.1)
	require.NoError(t, err)
	require.Equal(t, 90, g.Len(), "arange(-3, 6, 0.1) has 90 points")
	assert.Equal(t, -3.0, g.Low())
	assert.InDelta(t, 5.9, g.High(), 1e-12)
	assert.Equal(t, 0.0, g.At(30), "index 30 is exactly the origin")
	assert.Equal(t, 3.0, g.At(60), "index 60 is exactly 3")

	xs := g.Points()
	for i := 1; i < len(xs); i++ {
		require.Greater(t, xs[i], xs[i-1], "strictly increasing at %d", i)
	}
}

func TestNew_HalfOpen(t *testing.T) {
	g, err := grid.New(0, 1, 0.25)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75}, g.Points(), "high bound is excluded")

	g, err = grid.New(0, 1, 0.3)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Len(), "ceil(1/0.3) = 4")
}

func TestNew_Errors(t *testing.T) {
	_, err := grid.New(0, 1, 0)
	assert.ErrorIs(t, err, grid.ErrBadStep)
	_, err = grid.New(0, 1, -0.1)
	assert.ErrorIs(t, err, grid.ErrBadStep)
	_, err = grid.New(0, 1, math.NaN())
	assert.ErrorIs(t, err, grid.ErrBadStep)
	_, err = grid.New(1, 1, 0.1)
	assert.ErrorIs(t, err, grid.ErrEmptyRange)
	_, err = grid.New(2, 1, 0.1)
	assert.ErrorIs(t, err, grid.ErrEmptyRange)
	_, err = grid.New(math.Inf(-1), 1, 0.1)
	assert.ErrorIs(t, err, grid.ErrNaNInf)
	_, err = grid.New(0, 1e9, 1e-3)
	assert.ErrorIs(t, err, grid.ErrTooLarge)

	assert.Panics(t, func() { grid.MustNew(0, 0, 1) })
}

func TestNew_MaxPoints(t *testing.T) {
	g, err := grid.New(0, grid.MaxPoints, 1)
	require.NoError(t, err)
	assert.Equal(t, grid.MaxPoints, g.Len())

	_, err = grid.New(0, grid.MaxPoints+1, 1)
	assert.ErrorIs(t, err, grid.ErrTooLarge)
}

// TestNew_StepBelowResolution: at 1e17 adjacent float64 values are 16 apart,
// so a unit step would repeat points.
func TestNew_StepBelowResolution(t *testing.T) {
	_, err := grid.New(1e17, 1e17+10, 1)
	assert.ErrorIs(t, err, grid.ErrNotIncreasing)

	g, err := grid.New(1e17, 1e17+64, 16)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Len())
}

func TestFromPoints(t *testing.T) {
	src := []float64{-1, 0, 2.5}
	g, err := grid.FromPoints(src)
	require.NoError(t, err)
	src[0] = 100
	assert.Equal(t, -1.0, g.At(0), "FromPoints must copy its input")

	pts := g.Points()
	pts[1] = 42
	assert.Equal(t, 0.0, g.At(1), "Points must return a copy")

	_, err = grid.FromPoints(nil)
	assert.ErrorIs(t, err, grid.ErrEmptyRange)
	_, err = grid.FromPoints([]float64{0, 0})
	assert.ErrorIs(t, err, grid.ErrNotIncreasing)
	_, err = grid.FromPoints([]float64{0, 2, 1})
	assert.ErrorIs(t, err, grid.ErrNotIncreasing)
	_, err = grid.FromPoints([]float64{0, math.NaN()})
	assert.ErrorIs(t, err, grid.ErrNaNInf)
}

func TestIndex(t *testing.T) {
	g := grid.MustNew(-3, 6, 0.1)
	assert.Equal(t, 30, g.Index(0))
	assert.Equal(t, 60, g.Index(3.01))
	assert.Equal(t, 0, g.Index(-100))
	assert.Equal(t, 89, g.Index(100))
	assert.Equal(t, -1, grid.Grid{}.Index(0))
}

func TestTrapezoid(t *testing.T) {
	g := grid.MustNew(0, 1.0001, 0.25) // 0, .25, .5, .75, 1
	require.Equal(t, 5, g.Len())

	ones := []float64{1, 1, 1, 1, 1}
	got, err := g.Trapezoid(ones)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-12)

	lin := g.Points() // ∫ x dx on [0,1] is exact under the trapezoidal rule
	got, err = g.Trapezoid(lin)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, got, 1e-12)

	_, err = g.Trapezoid([]float64{1, 2})
	assert.ErrorIs(t, err, grid.ErrLengthMismatch)

	single, err := grid.FromPoints([]float64{3})
	require.NoError(t, err)
	got, err = single.Trapezoid([]float64{7})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestSum(t *testing.T) {
	g := grid.MustNew(0, 3, 1)
	s, err := g.Sum([]float64{1, 2, 3.5})
	require.NoError(t, err)
	assert.Equal(t, 6.5, s)

	_, err = g.Sum([]float64{1})
	assert.ErrorIs(t, err, grid.ErrLengthMismatch)
}

func TestZeroGrid(t *testing.T) {
	var g grid.Grid
	assert.Equal(t, 0, g.Len())
	assert.Equal(t, 0.0, g.Low())
	assert.Equal(t, 0.0, g.High())
	assert.Empty(t, g.Points())
}
