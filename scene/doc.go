// SPDX-License-Identifier: MIT

// Package scene owns the mutable state of an interactive demo: the true and
// generator (mean, variance) pairs and the value mode, each held in an
// observable.Value.
//
// Every write to any of those cells triggers a synchronous redraw: the scene
// reads the current parameters, calls gan.Evaluate and hands the resulting
// Frame to its Renderer. The numeric core never sees the cells.
//
// ⚙️ Usage:
//
//	s, err := scene.New(g, renderer,
//	    scene.WithTrue(gaussian.Params{Mean: 3, Variance: 0.5}),
//	    scene.WithMode(gan.NonSaturating))
//	s.Nudge(scene.GenMean, +1) // one slider step, one redraw
//
// Slider policy (Bounds) clamps every write; it is UI policy, not a numeric
// invariant.
package scene
