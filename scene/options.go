// SPDX-License-Identifier: MIT

package scene

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/ganvalue/gan"
	"github.com/katalvlaran/ganvalue/gaussian"
)

// Option configures New. Constructors panic on nonsensical values; those are
// programmer errors, not runtime input.
type Option func(*options)

type options struct {
	logger *zap.Logger
	bounds Bounds
	tru    gaussian.Params
	gen    gaussian.Params
	mode   gan.Mode
}

func defaultOptions() options {
	return options{
		logger: zap.NewNop(),
		bounds: DefaultBounds(),
		tru:    gaussian.Params{Mean: 3, Variance: 0.5},
		gen:    gaussian.Params{Mean: 0, Variance: 1},
		mode:   gan.Minimax,
	}
}

// WithLogger sets the logger used for redraw diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithBounds sets the slider policy. It panics on invalid bounds.
func WithBounds(b Bounds) Option {
	if err := b.Validate(); err != nil {
		panic("scene: WithBounds: " + err.Error())
	}

	return func(o *options) { o.bounds = b }
}

// WithTrue sets the initial true distribution. It panics on invalid params.
func WithTrue(p gaussian.Params) Option {
	if err := p.Validate(); err != nil {
		panic("scene: WithTrue: " + err.Error())
	}

	return func(o *options) { o.tru = p }
}

// WithGenerator sets the initial generator distribution. It panics on
// invalid params.
func WithGenerator(p gaussian.Params) Option {
	if err := p.Validate(); err != nil {
		panic("scene: WithGenerator: " + err.Error())
	}

	return func(o *options) { o.gen = p }
}

// WithMode sets the initial value mode. It panics on an unknown mode.
func WithMode(m gan.Mode) Option {
	if !m.Valid() {
		panic("scene: WithMode: " + m.String())
	}

	return func(o *options) { o.mode = m }
}
