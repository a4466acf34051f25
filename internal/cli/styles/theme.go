// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/paneset/internal/infrastructure/config"
)

// Theme holds lipgloss colors and styles derived from config.
type Theme struct {
	// Base colors (from config.PaletteConfig)
	Accent  lipgloss.Color
	Pane    lipgloss.Color
	Handle  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Warning lipgloss.Color

	// Semantic colors
	Error   lipgloss.Color
	Success lipgloss.Color

	// Pre-built styles
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	// Axis bar styles
	PaneCell     lipgloss.Style
	SelectedCell lipgloss.Style
	HandleCell   lipgloss.Style
	Marker       lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	Box lipgloss.Style
}

// NewTheme creates a Theme from config, falling back to the default palette.
func NewTheme(cfg *config.Config) *Theme {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return NewThemeFromPalette(cfg.Appearance.Palette)
}

// NewThemeFromPalette creates a Theme from a PaletteConfig.
func NewThemeFromPalette(p config.PaletteConfig) *Theme {
	t := &Theme{
		Accent:  lipgloss.Color(p.Accent),
		Pane:    lipgloss.Color(p.Pane),
		Handle:  lipgloss.Color(p.Handle),
		Text:    lipgloss.Color(p.Text),
		Muted:   lipgloss.Color(p.Muted),
		Warning: lipgloss.Color(p.Warning),

		Error:   lipgloss.Color(p.Warning),
		Success: lipgloss.Color(p.Accent),
	}

	t.buildStyles()
	return t
}

// buildStyles creates all derived lipgloss styles.
func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Subtitle = lipgloss.NewStyle().
		Foreground(t.Muted).
		Bold(true)

	t.Normal = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	t.PaneCell = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Pane)

	t.SelectedCell = lipgloss.NewStyle().
		Foreground(t.Pane).
		Background(t.Accent).
		Bold(true)

	t.HandleCell = lipgloss.NewStyle().
		Background(t.Handle)

	t.Marker = lipgloss.NewStyle().
		Foreground(t.Handle).
		Bold(true)

	t.HelpKey = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.HelpDesc = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Muted).
		Padding(0, 1)
}
