// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ganvalue/gan"
)

var modeFormulas = map[gan.Mode]string{
	gan.Minimax:       "pT·log D + pG·log(1-D)",
	gan.JensenShannon: "pT·(log D - log ½) + pG·(log(1-D) - log ½)",
	gan.NonSaturating: "pG·log D",
}

func newModesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List value modes with their formula and value axis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, m := range gan.Modes() {
				_, right := gan.Axes(m)
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-15s %-45s [%g, %g]\n",
					m, modeFormulas[m], right.Min, right.Max); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
