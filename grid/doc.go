// SPDX-License-Identifier: MIT

// Package grid provides the ordered sample grid every curve is evaluated on.
//
// A Grid is strictly increasing, has a fixed length and is read-only once
// built. New mirrors a half-open arange: [low, high) with a fixed step, so the
// demo configuration New(-3, 6, 0.1) yields 90 points -3.0 … 5.9.
//
// Integrals over a grid use the trapezoidal rule from gonum/integrate.
package grid
