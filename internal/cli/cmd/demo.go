package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/paneset/internal/cli/model"
	"github.com/bnema/paneset/internal/infrastructure/config"
	"github.com/bnema/paneset/internal/logging"
)

var demoPanes int

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Resize panes interactively",
	Long: `Open an interactive container that fills the terminal width.

Select a handle with [ and ], drag it with the arrow keys and release it
with enter (or cancel with esc). Resize the container with + and -, cycle
the handle policy with tab, add and remove panes with a and x.

Changes to the config file are picked up while the demo runs.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().IntVarP(&demoPanes, "panes", "n", 3, "number of panes")
}

func runDemo(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if demoPanes < 1 {
		return fmt.Errorf("at least one pane is required")
	}

	log := logging.FromContext(app.Ctx())

	m, err := model.NewDemoModel(app.Ctx(), app.Theme, app.Config.Engine.Settings(), demoPanes)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())

	app.Manager.OnConfigChange(func(cfg *config.Config) {
		p.Send(model.ConfigChangedMsg{Config: cfg})
	})
	if err := app.Manager.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watching disabled")
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run demo: %w", err)
	}
	return nil
}
