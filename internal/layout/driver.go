package layout

import "github.com/bnema/paneset/internal/domain/entity"

// ContentFunc reports the natural content extent of a pane. The engine
// never measures content itself.
type ContentFunc func(p *entity.Pane) entity.Extent

// HandleExtent returns the handle allowance of the pane at index i.
// The terminal pane only carries one when trailing handles are enabled.
func HandleExtent(c *entity.Container, i int) int {
	p := c.Panes[i]
	if !p.HasHandle {
		return 0
	}
	if i == c.Last() && !c.Settings.TrailingHandles {
		return 0
	}
	return c.Settings.HandleSize
}

// LayoutAxis runs a full layout pass over the container and returns the
// total nominal extent of its panes.
//
// Every pane is reset, grown to at least its content-driven size and given
// a nominal size. The container's required extent becomes that total along
// the axis and the largest content extent across it, both plus the insets.
// An empty container keeps its previous required extent.
func LayoutAxis(c *entity.Container, content ContentFunc) int {
	axis := c.Settings.Orientation
	if c.IsEmpty() {
		c.MarkClean()
		return axis.Main(c.Required)
	}

	cross := 0
	for i, p := range c.Panes {
		ext := entity.Extent{}
		if content != nil {
			ext = content(p)
		}
		natural := max(axis.Main(ext), 0)
		ResetPane(p, natural, c.Settings.Padding, HandleExtent(c, i))

		desired := natural + p.Allowance()
		if p.IsPinned() {
			desired = p.Nominal
		}
		if desired > p.Size {
			growSpan([]*entity.Pane{p}, desired-p.Size, unitWeight)
		}

		cross = max(cross, axis.Cross(ext))
	}

	total := 0
	for _, p := range c.Panes {
		total += SetNominal(p)
	}

	inset := 2 * c.Settings.Inset
	c.Required = axis.Extent(total+inset, cross+inset)
	c.MarkClean()
	return total
}

// Placements returns each pane's offset and size along the axis. Offsets
// start after the container's leading inset.
func Placements(c *entity.Container) []entity.Placement {
	out := make([]entity.Placement, 0, len(c.Panes))
	offset := c.Settings.Inset
	for _, p := range c.Panes {
		out = append(out, entity.Placement{PaneID: p.ID, Offset: offset, Size: p.Size})
		offset += p.Size
	}
	return out
}
