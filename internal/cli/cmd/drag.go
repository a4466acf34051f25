package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/paneset/internal/cli/styles"
	"github.com/bnema/paneset/internal/infrastructure/scenario"
)

var (
	dragPanes  string
	dragExtent int
	dragPane   string
	dragPath   []int
	dragPolicy string
	dragCancel bool
	dragWidth  int
)

var dragCmd = &cobra.Command{
	Use:   "drag",
	Short: "Drag one handle along a pointer path",
	Long: `Lay out a container, press the handle after one pane and move the
pointer through a path of positions, then show how far the handle followed.

Panes are given as a comma separated list of id[:min[:max]]. A missing or
zero max is unbounded.

Examples:
  paneset drag --panes a,b,c --path 100,140
  paneset drag --panes a:0:120,b:80 --extent 250 --policy give-take --path 100,140
  paneset drag --panes a,b,c --pane b --path 200,150 --cancel`,
	RunE: runDrag,
}

func init() {
	rootCmd.AddCommand(dragCmd)
	dragCmd.Flags().StringVar(&dragPanes, "panes", "a,b,c", "panes as id[:min[:max]], comma separated")
	dragCmd.Flags().IntVarP(&dragExtent, "extent", "e", 300, "container extent")
	dragCmd.Flags().StringVar(&dragPane, "pane", "", "pane owning the dragged handle (default first pane)")
	dragCmd.Flags().IntSliceVar(&dragPath, "path", nil, "pointer positions; the first one presses the handle")
	dragCmd.Flags().StringVar(&dragPolicy, "policy", "", "handle policy (default engine.policy)")
	dragCmd.Flags().BoolVar(&dragCancel, "cancel", false, "cancel the drag instead of releasing it")
	dragCmd.Flags().IntVarP(&dragWidth, "width", "w", defaultBarWidth, "width of the layout bar in cells")
	_ = dragCmd.MarkFlagRequired("path")
}

func runDrag(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	panes, err := parsePaneSpecs(dragPanes)
	if err != nil {
		return err
	}
	pane := dragPane
	if pane == "" {
		pane = panes[0].ID
	}

	sc := &scenario.Scenario{
		Name:   "drag",
		Extent: dragExtent,
		Panes:  panes,
		Steps: []scenario.Step{{
			Op:     scenario.OpDrag,
			Pane:   pane,
			Path:   dragPath,
			Cancel: dragCancel,
		}},
	}
	sc.Settings.Policy = dragPolicy
	if err := sc.Validate(); err != nil {
		return err
	}

	report, err := scenario.NewRunner(app.Config.Engine.Settings()).Run(app.Ctx(), sc)
	if err != nil {
		return err
	}

	renderer := styles.NewReportRenderer(app.Theme)
	fmt.Fprint(cmd.OutOrStdout(), renderer.Render(report, dragWidth, true))
	return nil
}

// parsePaneSpecs parses "id[:min[:max]]" items separated by commas.
func parsePaneSpecs(s string) ([]scenario.PaneSpec, error) {
	var specs []scenario.PaneSpec
	for i, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		fields := strings.Split(item, ":")
		if len(fields) > 3 {
			return nil, fmt.Errorf("pane %d: %q has too many fields (want id[:min[:max]])", i, item)
		}
		spec := scenario.PaneSpec{ID: fields[0]}
		if spec.ID == "" {
			return nil, fmt.Errorf("pane %d: id is required", i)
		}

		bounds := []*int{&spec.Min, &spec.Max}
		for j, f := range fields[1:] {
			if f == "" {
				continue
			}
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("pane %s: invalid bound %q: %w", spec.ID, f, err)
			}
			*bounds[j] = n
		}
		specs = append(specs, spec)
	}

	if len(specs) == 0 {
		return nil, fmt.Errorf("at least one pane is required")
	}
	return specs, nil
}
