// SPDX-License-Identifier: MIT

// Package tui is the interactive slider front-end: a bubbletea program that
// owns a scene.Scene, moves its parameters on key presses and shows the
// chart the scene redraws after every change.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/katalvlaran/ganvalue/config"
	"github.com/katalvlaran/ganvalue/render"
	"github.com/katalvlaran/ganvalue/scene"
)

// sliderWidth is the width of each slider bar in cells.
const sliderWidth = 24

// ConfigMsg carries a reloaded configuration into the program.
// Send it with tea.Program.Send from a config.Watcher callback.
type ConfigMsg struct {
	Config config.Config
}

// view holds the chart text produced by the scene's last redraw. Model is
// copied by value through bubbletea, so the sink lives behind a pointer.
type view struct {
	chart string
}

// Model is the bubbletea model of the slider UI.
type Model struct {
	scene    *scene.Scene
	view     *view
	initial  config.Config
	selected int
	keys     keyMap
	help     help.Model
	base     *zap.Logger
	logger   *zap.Logger
	err      error

	styles modelStyles
}

type modelStyles struct {
	selected, normal, status, errText lipgloss.Style
}

// New builds the scene described by cfg and returns the model.
func New(cfg config.Config, logger *zap.Logger) (Model, error) {
	if err := cfg.Validate(); err != nil {
		return Model{}, err
	}
	g, err := cfg.BuildGrid()
	if err != nil {
		return Model{}, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	v := &view{}
	chart := render.NewChart(nil,
		render.WithSize(cfg.Render.Width, cfg.Render.Height),
		render.WithColor(cfg.Render.Color))
	sink := scene.RendererFunc(func(f scene.Frame) error {
		v.chart = chart.Draw(f)

		return nil
	})

	s, err := scene.New(g, sink,
		scene.WithBounds(cfg.Bounds()),
		scene.WithTrue(cfg.True),
		scene.WithGenerator(cfg.Generator),
		scene.WithMode(cfg.Mode),
		scene.WithLogger(logger))
	if err != nil {
		return Model{}, err
	}

	return Model{
		scene:    s,
		view:     v,
		initial:  cfg,
		selected: int(scene.GenMean),
		keys:     defaultKeyMap(),
		help:     help.New(),
		base:     logger,
		logger:   logger.Named("tui"),
		styles: modelStyles{
			selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A")),
			normal:   lipgloss.NewStyle(),
			status:   lipgloss.NewStyle().Faint(true),
			errText:  lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935")),
		},
	}, nil
}

// Scene exposes the underlying scene.
func (m Model) Scene() *scene.Scene { return m.scene }

// Selected returns the slider under the cursor.
func (m Model) Selected() scene.Param { return scene.Param(m.selected) }

// Err returns the last error reported to the status line.
func (m Model) Err() error { return m.err }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case ConfigMsg:
		return m.reload(msg.Config), nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// reload applies cfg. Parameter and mode changes go through the current
// scene; a new grid, slider policy or chart size rebuilds the scene and
// keeps the cursor and help state. An invalid cfg leaves everything as is
// and reports the error.
func (m Model) reload(cfg config.Config) Model {
	if err := cfg.Validate(); err != nil {
		m.err = err
		m.logger.Warn("config rejected", zap.Error(err))

		return m
	}

	if cfg.Grid != m.initial.Grid || cfg.Sliders != m.initial.Sliders || cfg.Render != m.initial.Render {
		next, err := New(cfg, m.base)
		if err != nil {
			m.err = err

			return m
		}
		next.selected = m.selected
		next.help = m.help
		next.logger.Info("config applied, scene rebuilt",
			zap.Int("points", next.scene.Grid().Len()),
			zap.Stringer("mode", cfg.Mode))

		return next
	}

	if m.err = m.scene.Apply(cfg.True, cfg.Generator, cfg.Mode); m.err == nil {
		m.initial = cfg
		m.logger.Info("config applied", zap.Stringer("mode", cfg.Mode))
	}

	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(scene.Params())
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.selected = (m.selected + n - 1) % n
	case key.Matches(msg, m.keys.Down):
		m.selected = (m.selected + 1) % n
	case key.Matches(msg, m.keys.Left):
		_, m.err = m.scene.Nudge(m.Selected(), -1)
	case key.Matches(msg, m.keys.Right):
		_, m.err = m.scene.Nudge(m.Selected(), 1)
	case key.Matches(msg, m.keys.FastLeft):
		_, m.err = m.scene.Nudge(m.Selected(), -5)
	case key.Matches(msg, m.keys.FastRight):
		_, m.err = m.scene.Nudge(m.Selected(), 5)
	case key.Matches(msg, m.keys.Mode):
		m.scene.CycleMode()
	case key.Matches(msg, m.keys.Reset):
		m.err = m.scene.Apply(m.initial.True, m.initial.Generator, m.initial.Mode)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	if m.err == nil {
		m.err = m.scene.Err()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.view.chart)
	sb.WriteString("\n\n")

	b := m.scene.Bounds()
	for _, p := range scene.Params() {
		lo, hi := b.Range(p)
		v := m.scene.Get(p)
		cursor, st := "  ", m.styles.normal
		if int(p) == m.selected {
			cursor, st = "▸ ", m.styles.selected
		}
		line := fmt.Sprintf("%s%-14s %s %6.2f", cursor, p, render.SliderBar(v, lo, hi, sliderWidth), v)
		sb.WriteString(st.Render(line))
		sb.WriteByte('\n')
	}

	sb.WriteString(m.styles.status.Render(fmt.Sprintf("mode: %s", m.scene.Mode())))
	sb.WriteByte('\n')
	if m.err != nil {
		sb.WriteString(m.styles.errText.Render("error: " + m.err.Error()))
		sb.WriteByte('\n')
	}
	sb.WriteString(m.help.View(m.keys))

	return sb.String()
}
