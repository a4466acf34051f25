// Package cmd provides Cobra CLI commands for paneset.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/paneset/internal/cli"
	"github.com/bnema/paneset/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	logLevel   string
	rootCmd    = &cobra.Command{
		Use:   "paneset",
		Short: "An adaptive one-dimensional pane layout engine",
		Long: `Paneset lays out a row or column of panes inside a container and keeps
them consistent while the container is resized and handles are dragged.

Features:
  - Per-pane minimum, maximum, fixed size and weight
  - Anchor/bearing resizing: the panes on each side of the anchor
    absorb container changes while the anchor edge holds still
  - Three handle policies: give-take, spreadsheet and slinky
  - Scripted scenarios in TOML, YAML or JSON

Use 'paneset layout' to replay scenario files, 'paneset drag' for a
one-off drag, or 'paneset demo' to resize panes interactively.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{ConfigFile: configFile, LogLevel: logLevel})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default $XDG_CONFIG_HOME/paneset/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override logging.level (trace, debug, info, warn, error, disabled)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
