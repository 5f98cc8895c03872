// SPDX-License-Identifier: MIT

package scene

import (
	"fmt"
	"math"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/ganvalue/gan"
	"github.com/katalvlaran/ganvalue/gaussian"
	"github.com/katalvlaran/ganvalue/grid"
	"github.com/katalvlaran/ganvalue/observable"
)

// Frame is everything a renderer needs for one redraw.
type Frame struct {
	// Seq increases by one per redraw, starting at 1.
	Seq uint64

	Result gan.Result
	Left   gan.AxisRange
	Right  gan.AxisRange

	Integral           float64
	NormalizedIntegral float64

	// Bounds is the slider policy in force, for drawing slider positions.
	Bounds Bounds
}

// Renderer draws frames. Render is called synchronously on the goroutine
// that changed a parameter, one call at a time. A Renderer must not write
// to the Scene that calls it.
type Renderer interface {
	Render(Frame) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(Frame) error

// Render calls f(fr).
func (f RendererFunc) Render(fr Frame) error { return f(fr) }

// Scene binds observable parameters to a renderer.
//
// Writes may come from several goroutines. Redraws are serialised, so frames
// reach the Renderer in Seq order and each one reflects the parameters read
// at its own evaluation. A write that lands while Apply is running is folded
// into Apply's single redraw.
type Scene struct {
	grid     grid.Grid
	bounds   Bounds
	renderer Renderer
	logger   *zap.Logger

	cells [4]*observable.Value[float64]
	mode  *observable.Value[gan.Mode]

	// drawMu serialises Redraw; mu guards the fields below it.
	drawMu sync.Mutex

	mu    sync.Mutex
	batch int
	seq   uint64
	frame Frame
	err   error
}

// New builds a scene over g, draws the first frame and returns the scene.
// Initial parameters are clamped into the bounds.
//
// Errors:
//   - ErrEmptyGrid, ErrNilRenderer — invalid arguments.
//   - any error returned by the first Render call.
func New(g grid.Grid, r Renderer, opts ...Option) (*Scene, error) {
	if g.Len() == 0 {
		return nil, ErrEmptyGrid
	}
	if r == nil {
		return nil, ErrNilRenderer
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Scene{
		grid:     g,
		bounds:   o.bounds,
		renderer: r,
		logger:   o.logger.Named("scene"),
		mode:     observable.New(o.mode),
	}
	initial := [4]float64{o.tru.Mean, o.tru.Variance, o.gen.Mean, o.gen.Variance}
	for _, p := range Params() {
		s.cells[p] = observable.New(o.bounds.Clamp(p, initial[p]))
		s.cells[p].Subscribe(func(_, _ float64) { s.changed() })
	}
	s.mode.Subscribe(func(_, _ gan.Mode) { s.changed() })

	if err := s.Redraw(); err != nil {
		return nil, err
	}

	return s, nil
}

// Cell exposes the observable behind p so external inputs can bind to it.
// Writes through the cell bypass Bounds.
func (s *Scene) Cell(p Param) (*observable.Value[float64], error) {
	if !p.Valid() {
		return nil, fmt.Errorf("Cell(%v): %w", p, ErrUnknownParam)
	}

	return s.cells[p], nil
}

// Grid returns the sample grid.
func (s *Scene) Grid() grid.Grid { return s.grid }

// Bounds returns the slider policy.
func (s *Scene) Bounds() Bounds { return s.bounds }

// Get returns the current value of p, or NaN for an unknown p.
func (s *Scene) Get(p Param) float64 {
	if !p.Valid() {
		return math.NaN()
	}

	return s.cells[p].Get()
}

// Params returns the current true and generator distributions.
func (s *Scene) Params() (tru, gen gaussian.Params) {
	tru = gaussian.Params{Mean: s.cells[TrueMean].Get(), Variance: s.cells[TrueVariance].Get()}
	gen = gaussian.Params{Mean: s.cells[GenMean].Get(), Variance: s.cells[GenVariance].Get()}

	return tru, gen
}

// Mode returns the current value mode.
func (s *Scene) Mode() gan.Mode { return s.mode.Get() }

// Set clamps v into the bounds of p, stores it and redraws.
// It returns the stored value.
func (s *Scene) Set(p Param, v float64) (float64, error) {
	if !p.Valid() {
		return 0, fmt.Errorf("Set(%v): %w", p, ErrUnknownParam)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return s.cells[p].Get(), fmt.Errorf("Set(%v, %g): %w", p, v, ErrNaNInf)
	}
	v = s.bounds.Clamp(p, snap(v))
	s.cells[p].Set(v)

	return v, nil
}

// Nudge moves p by steps slider steps.
func (s *Scene) Nudge(p Param, steps int) (float64, error) {
	if !p.Valid() {
		return 0, fmt.Errorf("Nudge(%v): %w", p, ErrUnknownParam)
	}

	return s.Set(p, s.cells[p].Get()+float64(steps)*s.bounds.Step)
}

// SetMode switches the value mode and redraws.
func (s *Scene) SetMode(m gan.Mode) error {
	if !m.Valid() {
		return fmt.Errorf("SetMode(%v): %w", m, gan.ErrUnknownMode)
	}
	s.mode.Set(m)

	return nil
}

// CycleMode advances to the next mode and returns it.
func (s *Scene) CycleMode() gan.Mode {
	m := s.mode.Update(func(m gan.Mode) gan.Mode { return m.Next() })

	return m
}

// Apply replaces all parameters and the mode with a single redraw.
func (s *Scene) Apply(tru, gen gaussian.Params, m gan.Mode) error {
	if err := tru.Validate(); err != nil {
		return fmt.Errorf("Apply: true: %w", err)
	}
	if err := gen.Validate(); err != nil {
		return fmt.Errorf("Apply: generator: %w", err)
	}
	if !m.Valid() {
		return fmt.Errorf("Apply(%v): %w", m, gan.ErrUnknownMode)
	}

	s.mu.Lock()
	s.batch++
	s.mu.Unlock()

	values := [4]float64{tru.Mean, tru.Variance, gen.Mean, gen.Variance}
	for _, p := range Params() {
		s.cells[p].Set(s.bounds.Clamp(p, values[p]))
	}
	s.mode.Set(m)

	s.mu.Lock()
	s.batch--
	s.mu.Unlock()

	return s.Redraw()
}

// Frame returns the most recent frame.
func (s *Scene) Frame() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.frame
}

// Err returns the error of the most recent Render call, if any.
func (s *Scene) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}

// changed is the subscriber attached to every cell.
func (s *Scene) changed() {
	s.mu.Lock()
	batching := s.batch > 0
	s.mu.Unlock()
	if batching {
		return
	}
	_ = s.Redraw()
}

// Redraw evaluates the current parameters and renders the frame.
// Render errors are recorded (see Err), logged and returned.
func (s *Scene) Redraw() error {
	s.drawMu.Lock()
	defer s.drawMu.Unlock()

	tru, gen := s.Params()
	mode := s.mode.Get()

	res, err := gan.Evaluate(s.grid, tru, gen, mode)
	if err != nil {
		return err
	}
	left, right := gan.Axes(mode)

	s.mu.Lock()
	s.seq++
	fr := Frame{
		Seq:                s.seq,
		Result:             res,
		Left:               left,
		Right:              right,
		Integral:           res.Integral(),
		NormalizedIntegral: res.NormalizedIntegral(),
		Bounds:             s.bounds,
	}
	s.frame = fr
	s.mu.Unlock()

	err = s.renderer.Render(fr)

	s.mu.Lock()
	s.err = err
	s.mu.Unlock()

	if err != nil {
		s.logger.Warn("render failed", zap.Uint64("seq", fr.Seq), zap.Error(err))

		return err
	}
	s.logger.Debug("redraw",
		zap.Uint64("seq", fr.Seq),
		zap.Stringer("mode", mode),
		zap.Stringer("true", tru),
		zap.Stringer("generator", gen),
		zap.Float64("integral", fr.Integral))

	return nil
}
