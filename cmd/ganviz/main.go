// SPDX-License-Identifier: MIT

// Command ganviz evaluates and plots the GAN value function for a pair of
// one-dimensional Gaussians.
//
//	ganviz eval --gen-mean 1 --format csv
//	ganviz plot --mode non-saturating
//	ganviz sweep --param mean --from -2 --to 5 --step 0.25
//	ganviz tui --config ganviz.yaml --watch
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/ganvalue/config"
	"github.com/katalvlaran/ganvalue/logging"
)

// app carries the state shared by every sub-command.
type app struct {
	configPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "ganviz",
		Short: "GAN value function explorer for 1-D Gaussians",
		Long: `ganviz computes the true and generator densities, the optimal
discriminator D = p_true / (p_true + p_gen) and the value curve
(minimax, jensen-shannon or non-saturating) over a sample grid.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML config file (default: built-in demo)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newEvalCmd(a),
		newPlotCmd(a),
		newSweepCmd(a),
		newTUICmd(a),
		newModesCmd(),
	)

	return root
}

// setup loads the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	logger, err := logging.New(a.cfg.Logging, a.verbose)
	if err != nil {
		return err
	}
	a.logger = logger
	a.logger.Debug("config loaded",
		zap.String("path", a.configPath),
		zap.Stringer("mode", a.cfg.Mode),
		zap.Stringer("true", a.cfg.True),
		zap.Stringer("generator", a.cfg.Generator))

	return nil
}
