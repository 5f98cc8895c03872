// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ganvalue/render"
	"github.com/katalvlaran/ganvalue/scene"
)

func newPlotCmd(a *app) *cobra.Command {
	var (
		params  paramFlags
		noColor bool
	)
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Draw the chart once and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := params.apply(cmd, a.cfg)
			if err != nil {
				return err
			}
			g, err := cfg.BuildGrid()
			if err != nil {
				return err
			}
			chart := render.NewChart(cmd.OutOrStdout(),
				render.WithSize(cfg.Render.Width, cfg.Render.Height),
				render.WithColor(cfg.Render.Color && !noColor))

			// New draws the first frame.
			_, err = scene.New(g, chart,
				scene.WithBounds(cfg.Bounds()),
				scene.WithTrue(cfg.True),
				scene.WithGenerator(cfg.Generator),
				scene.WithMode(cfg.Mode),
				scene.WithLogger(a.logger))

			return err
		},
	}
	params.bind(cmd)
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable styling")

	return cmd
}
