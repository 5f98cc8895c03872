// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/ganvalue/gan"
	"github.com/katalvlaran/ganvalue/scene"
)

// ErrNilWriter indicates a Chart without an output writer.
var ErrNilWriter = errors.New("render: writer is nil")

// Plot glyphs, one per series.
const (
	glyphTrue  = 't'
	glyphGen   = 'g'
	glyphDisc  = 'd'
	glyphValue = 'v'
	glyphEmpty = ' '
	glyphZero  = '·'
)

// Default plot area size in cells.
const (
	DefaultWidth  = 90
	DefaultHeight = 22
)

const labelWidth = 7

// Chart renders frames as a text plot. It implements scene.Renderer.
type Chart struct {
	w      io.Writer
	width  int
	height int
	color  bool
	styles styles
}

// ChartOption configures NewChart.
type ChartOption func(*Chart)

// WithSize sets the plot area in cells. It panics on sizes below 8×4.
func WithSize(width, height int) ChartOption {
	if width < 8 || height < 4 {
		panic(fmt.Sprintf("render: WithSize(%d, %d): plot area too small", width, height))
	}

	return func(c *Chart) { c.width, c.height = width, height }
}

// WithColor toggles lipgloss styling.
func WithColor(on bool) ChartOption {
	return func(c *Chart) { c.color = on }
}

// NewChart returns a Chart writing to w.
func NewChart(w io.Writer, opts ...ChartOption) *Chart {
	c := &Chart{w: w, width: DefaultWidth, height: DefaultHeight, color: true}
	for _, opt := range opts {
		opt(c)
	}
	c.styles = newStyles(c.color)

	return c
}

// Render writes Draw(f) followed by a newline.
func (c *Chart) Render(f scene.Frame) error {
	if c.w == nil {
		return ErrNilWriter
	}
	_, err := io.WriteString(c.w, c.Draw(f)+"\n")

	return err
}

// Draw returns the chart for f without writing it.
func (c *Chart) Draw(f scene.Frame) string {
	canvas := c.plot(f)

	var sb strings.Builder
	sb.WriteString(c.styles.title.Render(fmt.Sprintf("GAN value function · %s", f.Result.Mode)))
	sb.WriteByte('\n')

	for row, line := range canvas {
		sb.WriteString(c.styles.axis.Render(axisLabel(f.Left, row, c.height)))
		sb.WriteString("│")
		for _, r := range line {
			sb.WriteString(c.styles.glyph(r))
		}
		sb.WriteString("│")
		sb.WriteString(c.styles.axis.Render(axisLabel(f.Right, row, c.height)))
		sb.WriteByte('\n')
	}

	sb.WriteString(strings.Repeat(" ", labelWidth))
	sb.WriteString(xLabels(f.Result.X, c.width+2))
	sb.WriteByte('\n')
	sb.WriteString(c.legend(f))

	if !c.color {
		return sb.String()
	}

	return c.styles.frame.Render(sb.String())
}

// plot rasterises the four series onto a height×width rune grid.
// Later series overwrite earlier ones: value, discriminator, generator, true.
func (c *Chart) plot(f scene.Frame) [][]rune {
	canvas := make([][]rune, c.height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(string(glyphEmpty), c.width))
	}

	r := f.Result
	if r.Len() == 0 {
		return canvas
	}

	// Zero line of the value axis, when visible.
	if f.Right.Contains(0) {
		row := c.row(f.Right, 0)
		for col := range canvas[row] {
			canvas[row][col] = glyphZero
		}
	}

	c.series(canvas, r.X, r.Value, f.Right, glyphValue)
	c.series(canvas, r.X, r.Discriminator, f.Left, glyphDisc)
	c.series(canvas, r.X, r.GenDensity, f.Left, glyphGen)
	c.series(canvas, r.X, r.TrueDensity, f.Left, glyphTrue)

	return canvas
}

func (c *Chart) series(canvas [][]rune, xs, ys []float64, axis gan.AxisRange, glyph rune) {
	lo, hi := xs[0], xs[len(xs)-1]
	for i, y := range ys {
		if math.IsNaN(y) || math.IsInf(y, 0) || !axis.Contains(y) {
			continue
		}
		col := 0
		if hi > lo {
			col = int(math.Round((xs[i] - lo) / (hi - lo) * float64(c.width-1)))
		}
		canvas[c.row(axis, y)][col] = glyph
	}
}

// row maps y in axis to a canvas row, row 0 being axis.Max.
func (c *Chart) row(axis gan.AxisRange, y float64) int {
	r := int(math.Round((axis.Max - y) / axis.Span() * float64(c.height-1)))

	return min(max(r, 0), c.height-1)
}

func (c *Chart) legend(f scene.Frame) string {
	r := f.Result
	parts := []string{
		c.styles.glyph(glyphTrue) + " true " + r.True.String(),
		c.styles.glyph(glyphGen) + " generator " + r.Gen.String(),
		c.styles.glyph(glyphDisc) + " D*",
		c.styles.glyph(glyphValue) + " " + r.Mode.String(),
	}
	stats := fmt.Sprintf("∫V=%.4f  normalized=%.4f  #%d", f.Integral, f.NormalizedIntegral, f.Seq)

	return strings.Join(parts, "   ") + "\n" + c.styles.stats.Render(stats)
}

// axisLabel prints the axis value on the top, middle and bottom rows.
func axisLabel(axis gan.AxisRange, row, height int) string {
	var v float64
	switch row {
	case 0:
		v = axis.Max
	case height / 2:
		v = axis.Max - axis.Span()*float64(row)/float64(height-1)
	case height - 1:
		v = axis.Min
	default:
		return strings.Repeat(" ", labelWidth)
	}

	return fmt.Sprintf("%*.2f", labelWidth, v)
}

// xLabels spreads the first, middle and last sample positions across width.
func xLabels(xs []float64, width int) string {
	if len(xs) == 0 {
		return ""
	}
	first := fmt.Sprintf("%.1f", xs[0])
	mid := fmt.Sprintf("%.1f", (xs[0]+xs[len(xs)-1])/2)
	last := fmt.Sprintf("%.1f", xs[len(xs)-1])

	line := []rune(strings.Repeat(" ", width))
	place := func(at int, s string) {
		for i, r := range s {
			if at+i >= 0 && at+i < len(line) {
				line[at+i] = r
			}
		}
	}
	place(0, first)
	place(width/2-len(mid)/2, mid)
	place(width-len(last), last)

	return string(line)
}

// SliderBar renders v within [lo, hi] as a fixed-width bar.
func SliderBar(v, lo, hi float64, width int) string {
	if width < 1 {
		return ""
	}
	frac := 0.0
	if hi > lo {
		frac = (v - lo) / (hi - lo)
	}
	frac = math.Min(math.Max(frac, 0), 1)
	filled := int(math.Round(frac * float64(width)))

	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// styles groups the lipgloss styles used by Chart.
type styles struct {
	title, axis, stats, frame lipgloss.Style
	series                    map[rune]lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()

		return styles{title: plain, axis: plain, stats: plain, frame: plain}
	}

	return styles{
		title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A")),
		axis:  lipgloss.NewStyle().Foreground(lipgloss.Color("#7f8c8d")),
		stats: lipgloss.NewStyle().Italic(true),
		frame: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		series: map[rune]lipgloss.Style{
			glyphTrue:  lipgloss.NewStyle().Foreground(lipgloss.Color("#4db6ac")),
			glyphGen:   lipgloss.NewStyle().Foreground(lipgloss.Color("#e57373")),
			glyphDisc:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ffd54f")),
			glyphValue: lipgloss.NewStyle().Foreground(lipgloss.Color("#2196F3")).Bold(true),
			glyphZero:  lipgloss.NewStyle().Faint(true),
		},
	}
}

func (s styles) glyph(r rune) string {
	if st, ok := s.series[r]; ok {
		return st.Render(string(r))
	}

	return string(r)
}
