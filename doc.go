// Package ganvalue is a small laboratory for the GAN value function on
// one-dimensional Gaussians: how the optimal discriminator and the minimax,
// Jensen–Shannon and non-saturating objectives behave as the generator
// moves towards (or away from) the true distribution.
//
// 🚀 What is inside?
//
//	A pure numeric core plus the terminal front-ends around it:
//		• Densities: Gaussian parameters and their density on a grid
//		• Discriminator: the closed-form optimum D* = p_T / (p_T + p_G)
//		• Value curves: minimax, jensen-shannon, non-saturating
//		• Integrals & gradients: trapezoid integral, finite-difference slope
//		• Interactive scene: reactive parameter cells that redraw on change
//
// ✨ Why?
//
//   - Reproducible – every number comes from one pure Evaluate call
//   - Explorable – sliders in a terminal UI, or one-shot plots and tables
//   - Honest – the density keeps its historical normalisation and says so
//
// Packages:
//
//	gaussian/   — Params, Density, the Mass of the unnormalised density
//	grid/       — ordered sample grids and trapezoid integration
//	gan/        — Discriminator, ValueAt, Evaluate, Axes, GeneratorGradient
//	observable/ — generic reactive value cells
//	scene/      — UI-owned parameter state bound to a Renderer
//	render/     — terminal chart, tables (text, csv, json, yaml)
//	sweep/      — concurrent evaluation over a generator parameter
//	config/     — YAML configuration and a hot-reload Watcher
//	logging/    — zap logger construction
//	tui/        — bubbletea slider UI
//	cmd/ganviz  — the command-line tool
//
// Quick ASCII example (minimax, true N(3, 0.5), generator N(0, 1)):
//
//	 1 ┤      ggg               dddddddd
//	   │    gg   gg   ddddddd       tt
//	 0 ┼vvvvvvvvvvvvvvvvvvvvvvvvvvvvvvvv
//
//	the discriminator saturates where the generator has no mass, so the
//	minimax value is flat there and gives the generator nothing to follow.
//
//	go install github.com/katalvlaran/ganvalue/cmd/ganviz@latest
package ganvalue
