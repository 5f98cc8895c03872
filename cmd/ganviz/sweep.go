// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ganvalue/gan"
	"github.com/katalvlaran/ganvalue/render"
	"github.com/katalvlaran/ganvalue/sweep"
)

func newSweepCmd(a *app) *cobra.Command {
	var (
		params         paramFlags
		param, format  string
		from, to, step float64
		workers        int
		noGradient     bool
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Tabulate the integral and its gradient over a generator parameter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := gan.ParseParam(param)
			if err != nil {
				return err
			}
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}
			cfg, err := params.apply(cmd, a.cfg)
			if err != nil {
				return err
			}
			g, err := cfg.BuildGrid()
			if err != nil {
				return err
			}
			values, err := sweep.Range(from, to, step)
			if err != nil {
				return err
			}
			if workers < 1 {
				workers = 1
			}
			opts := []sweep.Option{sweep.WithWorkers(workers), sweep.WithLogger(a.logger)}
			if noGradient {
				opts = append(opts, sweep.WithoutGradient())
			}

			points, err := sweep.Run(cmd.Context(), g, cfg.True, cfg.Generator, cfg.Mode, p, values, opts...)
			if err != nil {
				return err
			}

			return render.WriteSweep(cmd.OutOrStdout(), p, points, f)
		},
	}
	params.bind(cmd)
	fl := cmd.Flags()
	fl.StringVarP(&param, "param", "p", "mean", "generator parameter to sweep: mean or variance")
	fl.Float64Var(&from, "from", -2, "first value")
	fl.Float64Var(&to, "to", 5, "last value (inclusive)")
	fl.Float64Var(&step, "step", 0.25, "increment")
	fl.IntVarP(&workers, "workers", "w", 4, "concurrent evaluations")
	fl.BoolVar(&noGradient, "no-gradient", false, "skip the finite-difference gradient")
	fl.StringVarP(&format, "format", "f", "table", "output format: table, csv, json or yaml")

	return cmd
}
