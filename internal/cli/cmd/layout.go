package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/bnema/paneset/internal/cli/styles"
	"github.com/bnema/paneset/internal/infrastructure/config"
	"github.com/bnema/paneset/internal/infrastructure/scenario"
)

const defaultBarWidth = 60

var scenarioExts = []string{".toml", ".yaml", ".yml", ".json"}

var (
	layoutParallel int
	layoutWidth    int
	layoutAllSteps bool
)

var layoutCmd = &cobra.Command{
	Use:   "layout [scenario...]",
	Short: "Replay scenario files and show the resulting layouts",
	Long: `Replay scenario files against the layout engine and draw the geometry
after each scenario.

A scenario declares a container, its panes and a script of steps (extent
changes, pane edits, anchor moves, policy changes and drags). Arguments may
be paths or bare names looked up in the scenario directory. Without
arguments every scenario in the scenario directory is run.

Examples:
  paneset layout three-up.toml            # Run one file
  paneset layout three-up pinned --steps  # Bare names, draw every step
  paneset layout -p 1                     # Run the scenario directory serially`,
	RunE: runLayout,
}

func init() {
	rootCmd.AddCommand(layoutCmd)
	layoutCmd.Flags().IntVarP(&layoutParallel, "parallel", "p", 4, "scenarios run at the same time (0 for no limit)")
	layoutCmd.Flags().IntVarP(&layoutWidth, "width", "w", defaultBarWidth, "width of the layout bar in cells")
	layoutCmd.Flags().BoolVarP(&layoutAllSteps, "steps", "s", false, "draw the layout after every step")
}

func runLayout(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	paths, err := resolveScenarioPaths(args, app.Config.ScenarioDir)
	if err != nil {
		return err
	}
	scenarios, err := scenario.LoadAll(paths)
	if err != nil {
		return err
	}

	runner := scenario.NewRunner(app.Config.Engine.Settings())
	reports, err := runner.RunAll(app.Ctx(), scenarios, layoutParallel)
	if err != nil {
		return err
	}

	renderer := styles.NewReportRenderer(app.Theme)
	for _, report := range reports {
		fmt.Fprint(cmd.OutOrStdout(), renderer.Render(report, layoutWidth, layoutAllSteps))
	}
	return nil
}

// resolveScenarioPaths turns arguments into scenario files. Arguments that
// are not existing files are looked up in dir, with or without an extension.
// No arguments selects every scenario file in dir.
func resolveScenarioPaths(args []string, dir string) ([]string, error) {
	if dir == "" {
		var err error
		if dir, err = config.GetScenarioDir(); err != nil {
			return nil, fmt.Errorf("resolve scenario directory: %w", err)
		}
	}

	if len(args) == 0 {
		return scenariosIn(dir)
	}

	paths := make([]string, 0, len(args))
	for _, arg := range args {
		path, err := findScenario(arg, dir)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func findScenario(arg, dir string) (string, error) {
	candidates := []string{arg, filepath.Join(dir, arg)}
	if filepath.Ext(arg) == "" {
		for _, ext := range scenarioExts {
			candidates = append(candidates, filepath.Join(dir, arg+ext))
		}
	}

	for _, c := range candidates {
		info, err := os.Stat(c)
		if err == nil && !info.IsDir() {
			return c, nil
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}
	return "", fmt.Errorf("scenario %q not found (looked in %s)", arg, dir)
}

func scenariosIn(dir string) ([]string, error) {
	var paths []string
	for _, ext := range scenarioExts {
		matches, err := filepath.Glob(filepath.Join(dir, "*"+ext))
		if err != nil {
			return nil, err
		}
		paths = append(paths, matches...)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no scenario files in %s", dir)
	}
	sort.Strings(paths)
	return paths, nil
}
