// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ganvalue/config"
	"github.com/katalvlaran/ganvalue/gan"
)

// paramFlags override the configured distributions and mode.
type paramFlags struct {
	mode     string
	trueMean float64
	trueVar  float64
	genMean  float64
	genVar   float64
}

func (p *paramFlags) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&p.mode, "mode", "m", "", "value mode: minimax, jensen-shannon or non-saturating")
	f.Float64Var(&p.trueMean, "true-mean", 0, "true distribution mean")
	f.Float64Var(&p.trueVar, "true-var", 0, "true distribution variance")
	f.Float64Var(&p.genMean, "gen-mean", 0, "generator mean")
	f.Float64Var(&p.genVar, "gen-var", 0, "generator variance")
}

// apply returns cfg with every flag the user set applied, validated.
func (p *paramFlags) apply(cmd *cobra.Command, cfg config.Config) (config.Config, error) {
	f := cmd.Flags()
	if f.Changed("mode") {
		m, err := gan.ParseMode(p.mode)
		if err != nil {
			return cfg, err
		}
		cfg.Mode = m
	}
	if f.Changed("true-mean") {
		cfg.True.Mean = p.trueMean
	}
	if f.Changed("true-var") {
		cfg.True.Variance = p.trueVar
	}
	if f.Changed("gen-mean") {
		cfg.Generator.Mean = p.genMean
	}
	if f.Changed("gen-var") {
		cfg.Generator.Variance = p.genVar
	}

	return cfg, cfg.Validate()
}
