// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/ganvalue/gan"
	"github.com/katalvlaran/ganvalue/render"
)

func newEvalCmd(a *app) *cobra.Command {
	var (
		params paramFlags
		format string
	)
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Print densities, discriminator and value at every grid point",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
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
			res, err := gan.Evaluate(g, cfg.True, cfg.Generator, cfg.Mode)
			if err != nil {
				return err
			}
			a.logger.Debug("evaluated",
				zap.Int("points", res.Len()),
				zap.Float64("integral", res.Integral()))

			return render.WriteTable(cmd.OutOrStdout(), res, f)
		},
	}
	params.bind(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format: table, csv, json or yaml")

	return cmd
}
