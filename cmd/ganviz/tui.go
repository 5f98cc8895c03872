// SPDX-License-Identifier: MIT

package main

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/ganvalue/config"
	"github.com/katalvlaran/ganvalue/tui"
)

var errWatchNeedsConfig = errors.New("--watch requires --config")

func newTUICmd(a *app) *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Interactive sliders for both distributions",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if watch && a.configPath == "" {
				return errWatchNeedsConfig
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Log lines on stderr would tear the alt screen.
			logger := a.logger
			if len(a.cfg.Logging.OutputPaths) == 0 {
				logger = zap.NewNop()
			}

			m, err := tui.New(a.cfg, logger)
			if err != nil {
				return err
			}
			p := tea.NewProgram(m,
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()))

			if watch {
				w, err := config.NewWatcher(a.configPath, func(cfg config.Config) {
					p.Send(tui.ConfigMsg{Config: cfg})
				}, logger)
				if err != nil {
					return err
				}
				if err = w.Start(cmd.Context()); err != nil {
					w.Stop()

					return err
				}
				defer w.Stop()
			}

			_, err = p.Run()

			return err
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", false, "reload the config file when it changes")

	return cmd
}
