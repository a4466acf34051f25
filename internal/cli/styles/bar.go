package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/paneset/internal/application/usecase"
	"github.com/bnema/paneset/internal/domain/entity"
)

// NoPane marks bar cells that fall on handles, gaps or unused space.
const NoPane = -1

// Segment is a run of bar cells owned by one pane.
type Segment struct {
	Pane  int
	Width int
}

// BarSegments maps placements spanning extent units onto width cells.
// A non-positive extent uses the trailing edge of the last placement.
func BarSegments(placements []entity.Placement, extent, width int) []Segment {
	if extent <= 0 && len(placements) > 0 {
		extent = placements[len(placements)-1].End()
	}
	if width <= 0 || extent <= 0 {
		return nil
	}

	var segs []Segment
	p := 0
	for col := 0; col < width; col++ {
		pos := col * extent / width
		for p < len(placements) && placements[p].End() <= pos {
			p++
		}
		owner := NoPane
		if p < len(placements) && placements[p].Offset <= pos {
			owner = p
		}
		if n := len(segs); n > 0 && segs[n-1].Pane == owner {
			segs[n-1].Width++
		} else {
			segs = append(segs, Segment{Pane: owner, Width: 1})
		}
	}
	return segs
}

// BarRenderer draws a container's placements as a one-line bar with the
// bearing marked underneath.
type BarRenderer struct {
	theme *Theme
}

// NewBarRenderer creates a new bar renderer with the given theme.
func NewBarRenderer(theme *Theme) *BarRenderer {
	return &BarRenderer{theme: theme}
}

// Render draws out at width cells. The pane at index selected is
// highlighted; pass NoPane to highlight nothing.
func (r *BarRenderer) Render(out *usecase.LayoutOutput, width, selected int) string {
	if out == nil || len(out.Placements) == 0 || width <= 0 {
		return r.theme.Subtle.Render("(no panes)")
	}

	extent := r.extent(out)
	var bar strings.Builder
	for _, seg := range BarSegments(out.Placements, extent, width) {
		switch {
		case seg.Pane == NoPane:
			bar.WriteString(r.theme.Marker.Render(strings.Repeat("┃", seg.Width)))
		case seg.Pane == selected:
			bar.WriteString(r.theme.SelectedCell.Render(fitLabel(string(out.Placements[seg.Pane].PaneID), seg.Width)))
		default:
			bar.WriteString(r.theme.PaneCell.Render(fitLabel(string(out.Placements[seg.Pane].PaneID), seg.Width)))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, bar.String(), r.renderMarker(out, extent, width))
}

func (r *BarRenderer) renderMarker(out *usecase.LayoutOutput, extent, width int) string {
	col := out.Bearing * width / extent
	col = entity.Clamp(col, 0, width-1)

	label := fmt.Sprintf(" %s @ %d", out.Anchor, out.Bearing)
	if col+1+len(label) > width && col >= len(label) {
		return strings.Repeat(" ", col-len(label)) + r.theme.Subtle.Render(label) + r.theme.Marker.Render("▲")
	}
	return strings.Repeat(" ", col) + r.theme.Marker.Render("▲") + r.theme.Subtle.Render(label)
}

func (*BarRenderer) extent(out *usecase.LayoutOutput) int {
	extent := out.Extent
	if last := out.Placements[len(out.Placements)-1].End(); last > extent {
		extent = last
	}
	if out.Bearing > extent {
		extent = out.Bearing
	}
	return extent
}

// fitLabel pads or truncates label to exactly width cells.
func fitLabel(label string, width int) string {
	runes := []rune(label)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return " " + label + strings.Repeat(" ", width-len(runes)-1)
}
