// SPDX-License-Identifier: MIT

package gan_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/ganvalue/gan"
	"github.com/katalvlaran/ganvalue/gaussian"
	"github.com/katalvlaran/ganvalue/grid"
)

var (
	logHalf = math.Log(0.5)
	log4    = math.Log(4)
)

// EvaluateSuite covers Evaluate on the demo grid [-3, 6) step 0.1.
type EvaluateSuite struct {
	suite.Suite
	g    grid.Grid
	tru  gaussian.Params
	gen  gaussian.Params
	same gaussian.Params
}

func (s *EvaluateSuite) SetupTest() {
	s.g = grid.MustNew(-3, 6, 0.1)
	s.tru = gaussian.Params{Mean: 3, Variance: 0.5}
	s.gen = gaussian.Params{Mean: 0, Variance: 1}
	s.same = gaussian.Params{Mean: 0, Variance: 1}
}

func (s *EvaluateSuite) eval(t, g gaussian.Params, m gan.Mode) gan.Result {
	res, err := gan.Evaluate(s.g, t, g, m)
	require.NoError(s.T(), err)
	require.Equal(s.T(), s.g.Len(), res.Len())

	return res
}

// TestShapes: all four curves are aligned with the grid.
func (s *EvaluateSuite) TestShapes() {
	res := s.eval(s.tru, s.gen, gan.Minimax)
	require.Len(s.T(), res.X, 90)
	require.Len(s.T(), res.TrueDensity, 90)
	require.Len(s.T(), res.GenDensity, 90)
	require.Len(s.T(), res.Discriminator, 90)
	require.Len(s.T(), res.Value, 90)
	require.Equal(s.T(), s.g.Points(), res.X)
	require.Equal(s.T(), gan.Minimax, res.Mode)
	require.Equal(s.T(), s.tru, res.True)
	require.Equal(s.T(), s.gen, res.Gen)
}

// TestDiscriminatorOpenInterval: D in (0,1) for every mode and point.
func (s *EvaluateSuite) TestDiscriminatorOpenInterval() {
	for _, m := range gan.Modes() {
		res := s.eval(s.tru, s.gen, m)
		for i, d := range res.Discriminator {
			require.Greater(s.T(), d, 0.0, "mode=%v i=%d", m, i)
			require.Less(s.T(), d, 1.0, "mode=%v i=%d", m, i)
		}
	}
}

// TestSeparatedDistributions: true (3, 0.5) vs generator (0, 1).
func (s *EvaluateSuite) TestSeparatedDistributions() {
	res := s.eval(s.tru, s.gen, gan.Minimax)
	i0, i3 := s.g.Index(0), s.g.Index(3)
	require.Equal(s.T(), 0.0, res.X[i0])
	require.Equal(s.T(), 3.0, res.X[i3])

	s.Greater(res.Discriminator[i3], 0.9, "true distribution dominates near its mean")
	s.Less(res.Discriminator[i0], 0.2, "generator dominates near its mean")

	// V(D*, G) = -log 4 + 2·JSD(T‖G) ≥ -log 4, so a separated pair sits above
	// the equilibrium value, both raw and normalised.
	s.Greater(res.Integral(), -log4)
	s.Greater(res.NormalizedIntegral(), -log4)
	s.InDelta(-0.0256, res.Integral(), 1e-3)

	js := s.eval(s.tru, s.gen, gan.JensenShannon)
	s.Greater(js.Integral(), 0.0, "JS divergence is positive when G ≠ T")
	s.LessOrEqual(js.NormalizedIntegral(), 2*math.Ln2+1e-9, "2·JSD is bounded by 2·log 2")
}

// TestEquilibrium: T == G gives D == 1/2 everywhere and the textbook
// integrals after mass normalisation.
func (s *EvaluateSuite) TestEquilibrium() {
	mm := s.eval(s.same, s.same, gan.Minimax)
	for i, d := range mm.Discriminator {
		s.InDelta(0.5, d, 1e-15, "i=%d", i)
	}
	s.InDelta(-log4, mm.NormalizedIntegral(), 1e-9)

	// The raw integral carries the density mass 1/√2.
	mt, mg := mm.Mass()
	s.InDelta(gaussian.Mass, mt, 1e-4)
	s.InDelta(mt, mg, 0)
	s.InDelta(-log4*mt, mm.Integral(), 1e-9)
	s.InDelta(-0.9802, mm.Integral(), 1e-3)

	js := s.eval(s.same, s.same, gan.JensenShannon)
	s.InDelta(0.0, js.Integral(), 1e-12)
	s.InDelta(0.0, js.NormalizedIntegral(), 1e-12)
	for i, v := range js.Value {
		s.InDelta(0.0, v, 1e-15, "i=%d", i)
	}

	ns := s.eval(s.same, s.same, gan.NonSaturating)
	s.InDelta(-math.Ln2, ns.NormalizedIntegral(), 1e-9)
}

// TestJensenShannonShift: V_js = V_minimax - (p_T + p_G)·log ½, pointwise and
// in the integral.
func (s *EvaluateSuite) TestJensenShannonShift() {
	pairs := [][2]gaussian.Params{
		{s.tru, s.gen},
		{s.same, s.same},
		{{Mean: 3, Variance: 0.5}, {Mean: 2.5, Variance: 0.6}},
		{{Mean: -1, Variance: 1.9}, {Mean: 4, Variance: 0.1}},
	}
	for _, p := range pairs {
		mm := s.eval(p[0], p[1], gan.Minimax)
		js := s.eval(p[0], p[1], gan.JensenShannon)
		shift := make([]float64, mm.Len())
		for i := range mm.Value {
			shift[i] = (mm.TrueDensity[i] + mm.GenDensity[i]) * logHalf
			s.InDelta(mm.Value[i]-shift[i], js.Value[i], 1e-12, "%v/%v i=%d", p[0], p[1], i)
		}
		shiftIntegral, err := s.g.Trapezoid(shift)
		s.Require().NoError(err)
		s.InDelta(mm.Integral()-shiftIntegral, js.Integral(), 1e-10)

		mt, mg := mm.Mass()
		s.InDelta(mm.Integral()-(mt+mg)*logHalf, js.Integral(), 1e-10)
		s.InDelta(mm.NormalizedIntegral()-2*logHalf, js.NormalizedIntegral(), 1e-10)
	}
}

// TestNonSaturatingFormula: V = p_G·log D exactly.
func (s *EvaluateSuite) TestNonSaturatingFormula() {
	res := s.eval(s.tru, s.gen, gan.NonSaturating)
	for i := range res.Value {
		pt, pg, d, v := res.At(i)
		s.Equal(pg*math.Log(d), v, "i=%d", i)
		s.Equal(pt/(pt+pg), d, "i=%d", i)
	}
	s.Less(res.Integral(), -10.0)
}

// TestMinimaxFormula: V = p_T·log D + p_G·log max(1-D, 1e-50) exactly.
func (s *EvaluateSuite) TestMinimaxFormula() {
	res := s.eval(s.tru, s.gen, gan.Minimax)
	for i := range res.Value {
		pt, pg, d, v := res.At(i)
		s.Equal(pt*math.Log(d)+pg*math.Log(math.Max(1-d, 1e-50)), v, "i=%d", i)
	}
}

// TestDensitiesMatchGaussian: the density curves are the gaussian package's.
func (s *EvaluateSuite) TestDensitiesMatchGaussian() {
	res := s.eval(s.tru, s.gen, gan.Minimax)
	s.Equal(s.tru.Densities(res.X), res.TrueDensity)
	s.Equal(s.gen.Densities(res.X), res.GenDensity)
}

func TestEvaluateSuite(t *testing.T) {
	suite.Run(t, new(EvaluateSuite))
}

// TestEvaluate_ClampFloor: when p_G underflows to 0, D rounds to exactly 1
// and the clamp keeps the minimax term finite instead of 0·(-Inf) = NaN.
func TestEvaluate_ClampFloor(t *testing.T) {
	g, err := grid.FromPoints([]float64{0, 5.9})
	require.NoError(t, err)
	tru := gaussian.Params{Mean: 0, Variance: 1}
	gen := gaussian.Params{Mean: -5, Variance: 0.1}

	res, err := gan.Evaluate(g, tru, gen, gan.Minimax)
	require.NoError(t, err)
	_, pg, d, v := res.At(1)
	require.Equal(t, 0.0, pg, "generator density underflows far from its mean")
	require.Equal(t, 1.0, d)
	assert.False(t, math.IsNaN(v), "clamp must prevent NaN")
	assert.Equal(t, 0.0, v)

	// The clamped log itself.
	assert.InDelta(t, math.Log(1e-50), math.Log(math.Max(1-d, gan.ClampFloor)), 0)
	assert.Equal(t, 1e-50, gan.ClampFloor)

	// A tiny but non-zero p_G shows the floor at work: p_G·log(1e-50).
	v = gan.ValueAt(gan.Minimax, 1, 1e-60, 1)
	assert.InDelta(t, 1e-60*math.Log(1e-50), v, 1e-70)
	v = gan.ValueAt(gan.JensenShannon, 1, 1e-60, 1)
	assert.InDelta(t, -logHalf+1e-60*(math.Log(1e-50)-logHalf), v, 1e-12)
}

// TestEvaluate_TrueDensityUnderflow: at the slider extremes p_T underflows to
// 0 where only the generator has mass. D is then exactly 0, log D is -Inf and
// the unclamped true term gives 0·(-Inf) = NaN for minimax and JS.
func TestEvaluate_TrueDensityUnderflow(t *testing.T) {
	g := grid.MustNew(-3, 6, 0.1)
	tru := gaussian.Params{Mean: -5, Variance: 0.1}
	gen := gaussian.Params{Mean: 5, Variance: 0.1}

	for _, m := range gan.Modes() {
		res, err := gan.Evaluate(g, tru, gen, m)
		require.NoError(t, err)

		zeros := 0
		for i, x := range res.X {
			pt, pg, d, v := res.At(i)
			if x < 3.65 {
				require.Greater(t, d, 0.0, "mode=%v x=%g", m, x)
				require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "mode=%v x=%g", m, x)

				continue
			}
			zeros++
			require.Equal(t, 0.0, pt, "x=%g", x)
			require.Greater(t, pg, 0.0, "x=%g", x)
			require.Equal(t, 0.0, d, "x=%g", x)
			if m == gan.NonSaturating {
				require.True(t, math.IsInf(v, -1), "x=%g v=%g", x, v)
			} else {
				require.True(t, math.IsNaN(v), "mode=%v x=%g v=%g", m, x, v)
			}
		}
		assert.Equal(t, 23, zeros, "points from 3.7 to 5.9")

		if m == gan.NonSaturating {
			assert.True(t, math.IsInf(res.Integral(), -1))
		} else {
			assert.True(t, math.IsNaN(res.Integral()), "mode=%v", m)
			assert.True(t, math.IsNaN(res.NormalizedIntegral()), "mode=%v", m)
		}
	}

	// Mirrored, it is p_G that underflows: D rounds to 1 and the clamp keeps
	// every value finite.
	res, err := gan.Evaluate(g, gen, tru, gan.Minimax)
	require.NoError(t, err)
	for i, v := range res.Value {
		require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "i=%d", i)
	}
}

func TestEvaluate_Errors(t *testing.T) {
	p := gaussian.Params{Mean: 0, Variance: 1}
	_, err := gan.Evaluate(grid.Grid{}, p, p, gan.Minimax)
	assert.ErrorIs(t, err, gan.ErrEmptyGrid)

	_, err = gan.Evaluate(grid.MustNew(0, 1, 0.5), p, p, gan.Mode(7))
	assert.ErrorIs(t, err, gan.ErrUnknownMode)
}

func TestDiscriminator(t *testing.T) {
	assert.Equal(t, 0.5, gan.Discriminator(0.3, 0.3))
	assert.InDelta(t, 0.75, gan.Discriminator(3, 1), 1e-15)

	tru := gaussian.Params{Mean: 3, Variance: 0.5}
	gen := gaussian.Params{Mean: 0, Variance: 1}
	xs := []float64{-1, 0, 1.5, 3, 4}
	ds := gan.Discriminators(xs, tru.Func(), gen.Func())
	require.Len(t, ds, len(xs))
	for i, x := range xs {
		assert.Equal(t, gan.Discriminator(tru.Density(x), gen.Density(x)), ds[i])
	}
}

// TestValueCurve_MatchesEvaluate: the function-based entry point and Evaluate
// share the same formula.
func TestValueCurve_MatchesEvaluate(t *testing.T) {
	g := grid.MustNew(-3, 6, 0.1)
	tru := gaussian.Params{Mean: 3, Variance: 0.5}
	gen := gaussian.Params{Mean: 0.7, Variance: 1.3}
	for _, m := range gan.Modes() {
		res, err := gan.Evaluate(g, tru, gen, m)
		require.NoError(t, err)
		vc, err := gan.ValueCurve(g.Points(), tru.Func(), gen.Func(), m)
		require.NoError(t, err)
		assert.Equal(t, res.Value, vc, "mode=%v", m)
	}

	_, err := gan.ValueCurve([]float64{0}, tru.Func(), gen.Func(), gan.Mode(-1))
	assert.ErrorIs(t, err, gan.ErrUnknownMode)
	assert.True(t, math.IsNaN(gan.ValueAt(gan.Mode(9), 1, 1, 0.5)))
}

func TestAxes(t *testing.T) {
	l, r := gan.Axes(gan.Minimax)
	assert.Equal(t, gan.AxisRange{Min: -0.05, Max: 1.05}, l)
	assert.Equal(t, gan.AxisRange{Min: -3.05, Max: 3.05}, r)

	_, r = gan.Axes(gan.JensenShannon)
	assert.Equal(t, gan.AxisRange{Min: -3.05, Max: 3.05}, r)

	l, r = gan.Axes(gan.NonSaturating)
	assert.Equal(t, gan.DensityAxis, l)
	assert.Equal(t, gan.AxisRange{Min: -8.2, Max: 0.2}, r)
	assert.InDelta(t, 8.4, r.Span(), 1e-12)
	assert.True(t, r.Contains(0))
	assert.False(t, r.Contains(0.3))
}
