// SPDX-License-Identifier: MIT

// Package gaussian models the one-dimensional Gaussian distributions that the
// GAN value-function demos compare: the "true" distribution and the
// "generator" distribution.
//
// 🚀 What lives here?
//
//	Params  — an immutable (Mean, Variance) pair.
//	Density — the closed-form density used by every downstream curve.
//
// ⚠️ Density quirk:
//
//	Density evaluates
//
//	    exp(-(x-mean)² / variance) / sqrt(2·π·variance)
//
//	The exponent divides by variance, not 2·variance, so the curve is a
//	Gaussian whose shape has variance/2 while the normalising constant is the
//	textbook one for variance. The curve therefore integrates to Mass = 1/√2,
//	not 1. The formula is kept exactly as the demos plot it, because the
//	discriminator and value curves are built on top of it; Params.Normal and
//	Mass document the relation to the textbook distribution:
//
//	    Density(x) == Mass · Normal().Prob(x)
//
// ⚙️ Usage:
//
//	t := gaussian.Params{Mean: 3, Variance: 0.5}
//	if err := t.Validate(); err != nil { ... }
//	ys := t.Densities(xs)
//
// All functions are pure and safe for concurrent use.
package gaussian
