package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/paneset/internal/infrastructure/scenario"
)

// ReportRenderer renders scenario runs.
type ReportRenderer struct {
	theme *Theme
	bar   *BarRenderer
}

// NewReportRenderer creates a new report renderer with the given theme.
func NewReportRenderer(theme *Theme) *ReportRenderer {
	return &ReportRenderer{theme: theme, bar: NewBarRenderer(theme)}
}

// Render draws a report at width cells. Only the final layout is drawn
// unless allSteps is set.
func (r *ReportRenderer) Render(report *scenario.Report, width int, allSteps bool) string {
	var sb strings.Builder

	sb.WriteString(r.renderHeader(report))
	sb.WriteString("\n")

	steps := report.Steps
	if !allSteps && len(steps) > 0 {
		steps = steps[len(steps)-1:]
	}
	for _, step := range steps {
		sb.WriteString(r.RenderStep(step, width))
		sb.WriteString("\n")
	}

	if final := report.Final(); final != nil {
		sb.WriteString(RenderPlacementTable(r.theme, final))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (r *ReportRenderer) renderHeader(report *scenario.Report) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	settings := report.Settings

	meta := fmt.Sprintf("%s, %s, handle %d", settings.Orientation, settings.Policy, settings.HandleSize)
	header := fmt.Sprintf("\n  %s %s %s",
		iconStyle.Render(IconPane),
		r.theme.Title.Render(report.Scenario.Name),
		r.theme.Subtle.Render("("+meta+")"),
	)
	if report.Scenario.Path != "" {
		header += "\n    " + r.theme.Subtle.Render(report.Scenario.Path)
	}
	return header
}

// RenderStep draws one step: a title line, the bar and a summary.
func (r *ReportRenderer) RenderStep(step scenario.StepResult, width int) string {
	title := r.theme.Highlight.Render(string(step.Op))
	if step.Pane != "" {
		title += " " + r.theme.Normal.Render(step.Pane)
	}

	lines := []string{
		fmt.Sprintf("  %s %s", lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconCursor), title),
	}
	for _, sample := range step.Samples {
		lines = append(lines, "    "+r.RenderDragSample(sample))
	}
	lines = append(lines,
		indent(r.bar.Render(step.Output, width, NoPane), "    "),
		"    "+r.summary(step),
	)
	return strings.Join(lines, "\n")
}

func (r *ReportRenderer) summary(step scenario.StepResult) string {
	out := step.Output
	if out == nil {
		return ""
	}

	parts := []string{
		fmt.Sprintf("extent %d", out.Extent),
		fmt.Sprintf("required %dx%d", out.Required.Width, out.Required.Height),
	}
	if step.Op == scenario.OpDrag {
		parts = append(parts, fmt.Sprintf("moved %d of %d", step.Applied, step.Requested))
	}
	text := r.theme.Subtle.Render(strings.Join(parts, "  "))

	if out.Residual != 0 {
		text += "  " + r.theme.WarningStyle.Render(fmt.Sprintf("%s residual %d", IconWarning, out.Residual))
	}
	return text
}

// RenderDragSample draws one pointer sample of a drag.
func (r *ReportRenderer) RenderDragSample(sample scenario.DragSample) string {
	text := fmt.Sprintf("pointer %4d  requested %+d  applied %+d", sample.Pointer, sample.Requested, sample.Applied)
	if dropped := sample.Requested - sample.Applied; dropped != 0 {
		return r.theme.WarningStyle.Render(fmt.Sprintf("%s  dropped %+d", text, dropped))
	}
	return r.theme.Normal.Render(text)
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
