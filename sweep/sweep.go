// SPDX-License-Identifier: MIT

// Package sweep evaluates the value-curve integral while one generator
// parameter moves across a range, the classic "objective versus generator
// mean" picture.
//
// Each point is an independent call into the pure gan core, so points are
// spread over a bounded errgroup. Results come back in input order.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ganvalue/gan"
	"github.com/katalvlaran/ganvalue/gaussian"
	"github.com/katalvlaran/ganvalue/grid"
	"github.com/katalvlaran/ganvalue/logging"
)

var (
	// ErrNoValues indicates an empty list of parameter values.
	ErrNoValues = errors.New("sweep: no values")

	// ErrBadRange indicates a Range call with from > to, a non-positive step
	// or non-finite bounds.
	ErrBadRange = errors.New("sweep: invalid range")
)

// Point is one sweep sample.
type Point struct {
	Value              float64 `json:"value" yaml:"value"`
	Integral           float64 `json:"integral" yaml:"integral"`
	NormalizedIntegral float64 `json:"normalized_integral" yaml:"normalized_integral"`
	Gradient           float64 `json:"gradient" yaml:"gradient"`
}

// Option configures Run.
type Option func(*options)

type options struct {
	workers int
	logger  *zap.Logger
	noGrad  bool
}

// WithWorkers bounds concurrency. It panics for n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("sweep: WithWorkers(%d): need at least one worker", n))
	}

	return func(o *options) { o.workers = n }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = logging.OrNop(l) }
}

// WithoutGradient skips the finite-difference gradient for each point.
func WithoutGradient() Option {
	return func(o *options) { o.noGrad = true }
}

// Range returns from, from+step, … up to and including to (within step/2).
func Range(from, to, step float64) ([]float64, error) {
	for _, v := range []float64{from, to, step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("Range(%g, %g, %g): %w", from, to, step, ErrBadRange)
		}
	}
	if step <= 0 || from > to {
		return nil, fmt.Errorf("Range(%g, %g, %g): %w", from, to, step, ErrBadRange)
	}
	n := int(math.Floor((to-from)/step+0.5)) + 1
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Round((from+float64(i)*step)*1e9) / 1e9
	}

	return out, nil
}

// Run evaluates mode for every value of generator parameter p in values,
// keeping t and the other generator parameter fixed.
//
// Values that make the generator invalid (e.g. variance <= 0) fail the whole
// sweep with the gaussian validation error.
func Run(ctx context.Context, g grid.Grid, t, gen gaussian.Params, mode gan.Mode, p gan.Param, values []float64, opts ...Option) ([]Point, error) {
	if len(values) == 0 {
		return nil, ErrNoValues
	}
	o := options{workers: runtime.GOMAXPROCS(0), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("sweep: true: %w", err)
	}

	out := make([]Point, len(values))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.workers)

	for i, v := range values {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			pg := p.With(gen, v)
			if err := pg.Validate(); err != nil {
				return fmt.Errorf("sweep: %v=%g: %w", p, v, err)
			}
			res, err := gan.Evaluate(g, t, pg, mode)
			if err != nil {
				return err
			}
			pt := Point{Value: v, Integral: res.Integral(), NormalizedIntegral: res.NormalizedIntegral()}
			if !o.noGrad {
				if pt.Gradient, err = gan.GeneratorGradient(g, t, pg, mode, p); err != nil {
					return err
				}
			}
			out[i] = pt

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	o.logger.Debug("sweep done",
		zap.Stringer("param", p),
		zap.Stringer("mode", mode),
		zap.Int("points", len(out)),
		zap.Int("workers", o.workers))

	return out, nil
}
