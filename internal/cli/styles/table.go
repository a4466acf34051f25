package styles

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/paneset/internal/application/usecase"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithWidth(width),
	)
	t.SetStyles(tableStyles(theme))
	return t
}

func tableStyles(theme *Theme) table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Muted).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(theme.Text).
		Background(theme.Pane).
		Bold(true)
	s.Cell = s.Cell.
		Foreground(theme.Text)
	return s
}

// PlacementColumns returns columns for the placement table.
func PlacementColumns() []table.Column {
	return []table.Column{
		{Title: "Pane", Width: 14},
		{Title: "Offset", Width: 8},
		{Title: "Size", Width: 8},
		{Title: "End", Width: 8},
		{Title: "", Width: 2},
	}
}

// PlacementRows converts a layout into table rows. The anchor row is marked.
func PlacementRows(out *usecase.LayoutOutput) []table.Row {
	if out == nil {
		return nil
	}
	rows := make([]table.Row, 0, len(out.Placements))
	for _, p := range out.Placements {
		mark := ""
		if p.PaneID == out.Anchor {
			mark = IconAnchor
		}
		rows = append(rows, table.Row{
			string(p.PaneID),
			strconv.Itoa(p.Offset),
			strconv.Itoa(p.Size),
			strconv.Itoa(p.End()),
			mark,
		})
	}
	return rows
}

// RenderPlacementTable renders a static placement table.
func RenderPlacementTable(theme *Theme, out *usecase.LayoutOutput) string {
	columns := PlacementColumns()
	rows := PlacementRows(out)

	width := 0
	for _, c := range columns {
		width += c.Width + 2
	}
	t := NewStyledTable(theme, columns, rows, width, len(rows)+2)

	// No row is selected in static output.
	s := tableStyles(theme)
	s.Selected = s.Cell
	t.SetStyles(s)
	t.Blur()
	return t.View()
}
