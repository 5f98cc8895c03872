// SPDX-License-Identifier: MIT

// Package config loads the YAML configuration of the ganviz tool: sample
// grid, initial true/generator parameters, value mode, slider policy,
// rendering size and logging.
//
// Default reproduces the first demo. A file only needs the keys it
// changes; everything else keeps its default.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ganvalue/gan"
	"github.com/katalvlaran/ganvalue/gaussian"
	"github.com/katalvlaran/ganvalue/grid"
	"github.com/katalvlaran/ganvalue/logging"
	"github.com/katalvlaran/ganvalue/scene"
)

// Sentinel errors returned (wrapped) by Load and Validate.
var (
	ErrInvalid = errors.New("config: invalid configuration")
	ErrRead    = errors.New("config: cannot read file")
)

// Config holds all ganviz configuration.
type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	True      gaussian.Params `yaml:"target"`
	Generator gaussian.Params `yaml:"generator"`
	Mode      gan.Mode        `yaml:"mode"`
	Sliders   SliderConfig    `yaml:"sliders"`
	Render    RenderConfig    `yaml:"render"`
	Logging   logging.Config  `yaml:"logging"`
}

// GridConfig describes the half-open sample grid [Low, High) with Step.
type GridConfig struct {
	Low  float64 `yaml:"low"`
	High float64 `yaml:"high"`
	Step float64 `yaml:"step"`
}

// SliderConfig is the UI policy for interactive parameters.
type SliderConfig struct {
	MeanMin     float64 `yaml:"mean_min"`
	MeanMax     float64 `yaml:"mean_max"`
	VarianceMin float64 `yaml:"variance_min"`
	VarianceMax float64 `yaml:"variance_max"`
	Step        float64 `yaml:"step"`
}

// RenderConfig sizes the terminal chart.
type RenderConfig struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	Color  bool `yaml:"color"`
}

// Minimum chart size accepted by Validate.
const (
	MinWidth  = 20
	MinHeight = 8
)

// Default returns the configuration of the first demo: true N(3, 0.5),
// generator N(0, 1), grid [-3, 6) step 0.1, minimax.
func Default() Config {
	return Config{
		Grid:      GridConfig{Low: -3, High: 6, Step: 0.1},
		True:      gaussian.Params{Mean: 3, Variance: 0.5},
		Generator: gaussian.Params{Mean: 0, Variance: 1},
		Mode:      gan.Minimax,
		Sliders: SliderConfig{
			MeanMin: scene.DefaultMeanMin, MeanMax: scene.DefaultMeanMax,
			VarianceMin: scene.DefaultVarianceMin, VarianceMax: scene.DefaultVarianceMax,
			Step: scene.DefaultStep,
		},
		Render:  RenderConfig{Width: 90, Height: 22, Color: true},
		Logging: logging.Config{Level: "info"},
	}
}

// Load reads path over Default and validates the result.
// Unknown keys are rejected. An empty file yields Default.
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrRead, err)
	}
	defer f.Close()

	if err = Decode(f, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Decode overlays YAML from r onto cfg and validates the result.
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return cfg.Validate()
}

// Marshal renders cfg as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks every invariant the rest of the program relies on.
func (c Config) Validate() error {
	if _, err := c.BuildGrid(); err != nil {
		return fmt.Errorf("%w: grid: %w", ErrInvalid, err)
	}
	if err := c.True.Validate(); err != nil {
		return fmt.Errorf("%w: true: %w", ErrInvalid, err)
	}
	if err := c.Generator.Validate(); err != nil {
		return fmt.Errorf("%w: generator: %w", ErrInvalid, err)
	}
	if !c.Mode.Valid() {
		return fmt.Errorf("%w: mode: %w", ErrInvalid, gan.ErrUnknownMode)
	}
	if err := c.Bounds().Validate(); err != nil {
		return fmt.Errorf("%w: sliders: %w", ErrInvalid, err)
	}
	if c.Render.Width < MinWidth || c.Render.Height < MinHeight {
		return fmt.Errorf("%w: render size %dx%d below %dx%d", ErrInvalid,
			c.Render.Width, c.Render.Height, MinWidth, MinHeight)
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging: %w", ErrInvalid, err)
	}

	return nil
}

// BuildGrid constructs the sample grid.
func (c Config) BuildGrid() (grid.Grid, error) {
	return grid.New(c.Grid.Low, c.Grid.High, c.Grid.Step)
}

// Bounds converts the slider policy into scene.Bounds.
func (c Config) Bounds() scene.Bounds {
	return scene.Bounds{
		MeanMin:     c.Sliders.MeanMin,
		MeanMax:     c.Sliders.MeanMax,
		VarianceMin: c.Sliders.VarianceMin,
		VarianceMax: c.Sliders.VarianceMax,
		Step:        c.Sliders.Step,
	}
}
