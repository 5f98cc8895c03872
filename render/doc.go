// SPDX-License-Identifier: MIT

// Package render is the drawing collaborator of a scene: it turns a
// scene.Frame into terminal output.
//
//	Chart      — two-axis text plot. Densities and the discriminator use the
//	             left axis, the value curve uses the mode-dependent right axis.
//	WriteTable — per-point dump as an aligned table, CSV, JSON or YAML.
//
// Styling goes through lipgloss and is switched off by WithColor(false), which
// also makes the output byte-stable for golden comparisons.
package render
