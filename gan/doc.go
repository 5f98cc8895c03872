// SPDX-License-Identifier: MIT

// Package gan computes the closed-form optimal discriminator and the GAN value
// curves for a pair of one-dimensional Gaussians over a sample grid.
//
// 🚀 What is computed?
//
//	For a true density p_T and a generator density p_G:
//
//	  D*(x)            = p_T(x) / (p_T(x) + p_G(x))
//	  minimax        V = p_T·log D + p_G·log max(1-D, 1e-50)
//	  jensen-shannon V = p_T·(log D - log ½) + p_G·(log max(1-D, 1e-50) - log ½)
//	  non-saturating V = p_G·log D
//
//	The three value curves share one dispatch (ValueAt), selected by Mode, so
//	the identity V_js = V_minimax - (p_T+p_G)·log ½ holds pointwise and in the
//	integral.
//
// ⚙️ Usage:
//
//	g := grid.MustNew(-3, 6, 0.1)
//	res, err := gan.Evaluate(g,
//	    gaussian.Params{Mean: 3, Variance: 0.5}, // true
//	    gaussian.Params{Mean: 0, Variance: 1},   // generator
//	    gan.Minimax)
//	v := res.Integral()
//
// Every function is pure, synchronous and re-entrant. Variance positivity is
// a caller precondition (see gaussian.Params.Validate); the only numeric guard
// is the ClampFloor applied to 1-D.
package gan
