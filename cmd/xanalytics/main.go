// xanalytics: mock profile analytics dashboard for social-media handles.
//
// Usage:
//
//	xanalytics [flags]                 run the interactive dashboard
//	xanalytics profile <handle>        print a profile report
//	xanalytics version                 print version information
//
// Flags:
//
//	--config    Path to the YAML config (default: ~/.xanalytics/config.yaml)
//	--verbose   Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/Mr-Dark-debug/xanalytics/internal/config"
	"github.com/Mr-Dark-debug/xanalytics/internal/logging"
	"github.com/Mr-Dark-debug/xanalytics/internal/profile"
	"github.com/Mr-Dark-debug/xanalytics/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// app carries state shared by every subcommand once the root command has
// loaded configuration.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "xanalytics",
		Short: "X_ANALYTICS - profile intelligence dashboard",
		Long: `xanalytics renders a mock analytics dashboard for a social-media handle.

All statistics are synthesized from the characters of the handle; nothing is
fetched from the network and nothing is stored.

Run without arguments to start the interactive dashboard.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg

			// The dashboard owns the terminal, so it logs to a file only.
			if cmd.Parent() == nil {
				a.logger, err = logging.ForDashboard(cfg.Logging)
			} else {
				a.logger, err = logging.ForCLI(cfg.Logging, a.verbose)
			}
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDashboard()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath(), "Path to YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newProfileCmd(a), newVersionCmd())
	return root
}

// runDashboard starts the interactive TUI.
func (a *app) runDashboard() error {
	model := tui.NewModel(tui.Options{
		Generator:     profile.NewGenerator(a.cfg.GeneratorMode()),
		Logger:        a.logger,
		Latency:       a.cfg.Latency.Std(),
		RevealDelay:   a.cfg.RevealDelay.Std(),
		FrameInterval: a.cfg.FrameInterval.Std(),
	})

	a.logger.Info("dashboard starting",
		zap.String("generator", string(a.cfg.GeneratorMode())),
		zap.Duration("latency", a.cfg.Latency.Std()))

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "xanalytics v%s (commit: %s, built: %s)\n", Version, GitCommit, BuildTime)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
