// SPDX-License-Identifier: MIT

// Package logging builds the zap loggers used by the ganviz tool.
// Library packages never build their own logger: they accept a *zap.Logger
// through an option and default to zap.NewNop().
package logging

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrBadLevel indicates an unrecognised level name.
var ErrBadLevel = errors.New("logging: unknown level")

// Config selects the logger flavour.
type Config struct {
	// Level is one of debug, info, warn, error. Empty means info.
	Level string `yaml:"level" json:"level"`

	// Development switches to the console encoder with caller and stack traces.
	Development bool `yaml:"development" json:"development"`

	// OutputPaths overrides the sinks (default stderr).
	OutputPaths []string `yaml:"output_paths,omitempty" json:"output_paths,omitempty"`
}

// ParseLevel maps a level name to a zapcore.Level.
func ParseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		return zapcore.InfoLevel, nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("ParseLevel(%q): %w", s, ErrBadLevel)
	}

	return lvl, nil
}

// New builds a logger from cfg. verbose forces the debug level.
func New(cfg Config, verbose bool) (*zap.Logger, error) {
	lvl, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{"stderr"}
	if len(cfg.OutputPaths) > 0 {
		zc.OutputPaths = cfg.OutputPaths
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger, nil
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}

	return l
}
