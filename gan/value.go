// SPDX-License-Identifier: MIT

package gan

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ganvalue/gaussian"
)

// ClampFloor is the lower bound applied to 1-D before taking its logarithm.
// When D rounds to exactly 1 the generator term becomes p_G·log(1e-50)
// instead of 0·(-Inf) = NaN.
const ClampFloor = 1e-50

// logHalf is log(0.5), the per-term shift of the Jensen–Shannon curve.
var logHalf = math.Log(0.5)

// Discriminator returns the optimal discriminator pTrue / (pTrue + pGen).
// For strictly positive densities the result lies in (0, 1).
func Discriminator(pTrue, pGen float64) float64 {
	return pTrue / (pTrue + pGen)
}

// Discriminators evaluates Discriminator elementwise over xs.
func Discriminators(xs []float64, trueFn, genFn gaussian.DensityFunc) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = Discriminator(trueFn(x), genFn(x))
	}

	return out
}

// ValueAt returns the value-curve contribution at one sample point, given the
// two densities and the discriminator value d at that point.
//
// It is the single place where the three objectives are written down; every
// curve in the package is built from it. An invalid mode yields NaN.
func ValueAt(mode Mode, pTrue, pGen, d float64) float64 {
	switch mode {
	case Minimax:
		return pTrue*math.Log(d) + pGen*math.Log(math.Max(1-d, ClampFloor))
	case JensenShannon:
		return pTrue*(math.Log(d)-logHalf) + pGen*(math.Log(math.Max(1-d, ClampFloor))-logHalf)
	case NonSaturating:
		return pGen * math.Log(d)
	default:
		return math.NaN()
	}
}

// ValueCurve evaluates the value curve of mode over xs for arbitrary density
// functions, computing the discriminator from them first.
func ValueCurve(xs []float64, trueFn, genFn gaussian.DensityFunc, mode Mode) ([]float64, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("ValueCurve: %v: %w", mode, ErrUnknownMode)
	}
	out := make([]float64, len(xs))
	for i, x := range xs {
		pt, pg := trueFn(x), genFn(x)
		out[i] = ValueAt(mode, pt, pg, Discriminator(pt, pg))
	}

	return out, nil
}
