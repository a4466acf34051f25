// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/paneset/internal/application/port"
	"github.com/bnema/paneset/internal/application/usecase"
	"github.com/bnema/paneset/internal/cli/styles"
	"github.com/bnema/paneset/internal/domain/entity"
	"github.com/bnema/paneset/internal/infrastructure/config"
	"github.com/bnema/paneset/internal/layout"
	"github.com/bnema/paneset/internal/logging"
)

const (
	demoContainer = entity.ContainerID("demo")

	barMargin  = 2
	dragStep   = 2
	extentStep = 4
)

// ConfigChangedMsg carries a reloaded configuration into the demo.
type ConfigChangedMsg struct {
	Config *config.Config
}

// commitCounter counts geometry commits from the engine.
type commitCounter struct {
	n atomic.Int64
}

func (c *commitCounter) Commit(context.Context, entity.ContainerID, entity.Extent, []entity.Placement) error {
	c.n.Add(1)
	return nil
}

// DemoModel is the Bubble Tea model for the interactive layout demo. One
// terminal cell is one layout unit.
type DemoModel struct {
	// UI components
	help  help.Model
	keys  styles.DemoKeyMap
	bar   *styles.BarRenderer
	theme *styles.Theme

	// State
	out      *usecase.LayoutOutput
	last     *usecase.DragOutput
	policy   entity.PolicyKind
	selected int
	pointer  int
	dragging bool
	nextID   int
	showHelp bool
	width    int
	height   int
	err      error

	// Dependencies
	ctx     context.Context
	uc      *usecase.ManagePanesUseCase
	commits *commitCounter
}

// NewDemoModel creates a demo container holding panes equal panes.
func NewDemoModel(ctx context.Context, theme *styles.Theme, settings entity.Settings, panes int) (DemoModel, error) {
	ctx = logging.WithComponent(ctx, "demo")
	log := logging.FromContext(ctx)

	commits := &commitCounter{}
	sizer := port.ContentSizerFunc(func(*entity.Pane) entity.Extent { return entity.Extent{} })
	uc := usecase.NewManagePanesUseCase(sizer, commits)

	if err := uc.CreateContainer(ctx, demoContainer, settings); err != nil {
		return DemoModel{}, err
	}
	for i := 1; i <= panes; i++ {
		if err := uc.AddPane(ctx, usecase.AddPaneInput{
			ContainerID: demoContainer,
			PaneID:      entity.PaneID(strconv.Itoa(i)),
			Config:      usecase.DefaultPaneConfig(),
			Index:       -1,
		}); err != nil {
			return DemoModel{}, err
		}
	}
	out, err := uc.Flush(ctx, demoContainer)
	if err != nil {
		return DemoModel{}, err
	}

	log.Debug().Int("panes", panes).Str("policy", string(settings.Policy)).Msg("demo model created")

	return DemoModel{
		help:    styles.NewStyledHelp(theme),
		keys:    styles.DefaultDemoKeyMap(),
		bar:     styles.NewBarRenderer(theme),
		theme:   theme,
		out:     out,
		policy:  settings.Policy,
		nextID:  panes + 1,
		width:   80,
		height:  24,
		ctx:     ctx,
		uc:      uc,
		commits: commits,
	}, nil
}

// Layout returns the geometry currently shown.
func (m DemoModel) Layout() *usecase.LayoutOutput { return m.out }

// Policy returns the active handle policy.
func (m DemoModel) Policy() entity.PolicyKind { return m.policy }

// Dragging reports whether a handle is held.
func (m DemoModel) Dragging() bool { return m.dragging }

// Selected returns the index of the pane whose handle is selected.
func (m DemoModel) Selected() int { return m.selected }

// Commits returns how many geometry commits the engine has made.
func (m DemoModel) Commits() int { return int(m.commits.n.Load()) }

// Err returns the error of the last action, if any.
func (m DemoModel) Err() error { return m.err }

// Init implements tea.Model.
func (DemoModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m DemoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m.resize(msg.Width - 2*barMargin), nil

	case ConfigChangedMsg:
		return m.handleConfigChanged(msg), nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

func (m DemoModel) handleConfigChanged(msg ConfigChangedMsg) DemoModel {
	if msg.Config == nil {
		return m
	}
	m.theme = styles.NewTheme(msg.Config)
	m.bar = styles.NewBarRenderer(m.theme)
	m.help = styles.NewStyledHelp(m.theme)
	m.help.Width = m.width

	logging.FromContext(m.ctx).Debug().Str("policy", msg.Config.Engine.Policy).Msg("config reloaded")

	kind := entity.PolicyKind(msg.Config.Engine.Policy)
	if kind == m.policy {
		return m
	}
	return m.setPolicy(kind)
}

func (m DemoModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Left):
		return m.drag(-dragStep), nil
	case key.Matches(msg, m.keys.Right):
		return m.drag(dragStep), nil
	case key.Matches(msg, m.keys.Release):
		return m.release(), nil
	case key.Matches(msg, m.keys.Cancel):
		return m.cancel(), nil
	case key.Matches(msg, m.keys.PrevHandle):
		return m.selectHandle(-1), nil
	case key.Matches(msg, m.keys.NextHandle):
		return m.selectHandle(1), nil
	case key.Matches(msg, m.keys.Grow):
		return m.resize(m.out.Extent + extentStep), nil
	case key.Matches(msg, m.keys.Shrink):
		return m.resize(m.out.Extent - extentStep), nil
	case key.Matches(msg, m.keys.Policy):
		return m.setPolicy(nextPolicy(m.policy)), nil
	case key.Matches(msg, m.keys.Add):
		return m.addPane(), nil
	case key.Matches(msg, m.keys.Remove):
		return m.removePane(), nil
	case key.Matches(msg, m.keys.Anchor):
		return m.anchor(), nil
	}
	return m, nil
}

func (m DemoModel) drag(step int) DemoModel {
	if !m.dragging {
		if m.selected >= len(m.out.Placements) {
			return m
		}
		pane := m.out.Placements[m.selected]
		m.pointer = pane.End()
		if err := m.uc.BeginDrag(m.ctx, usecase.BeginDragInput{
			ContainerID: demoContainer,
			PaneID:      pane.PaneID,
			Pointer:     m.pointer,
		}); err != nil {
			m.err = err
			return m
		}
		m.dragging = true
	}

	m.pointer += step
	out, err := m.uc.DragTo(m.ctx, demoContainer, m.pointer)
	if err != nil {
		m.err = err
		return m
	}
	// Keep the pointer on the handle so reversing direction responds at once.
	m.pointer -= out.Dropped()
	m.last = out
	m.out = &out.LayoutOutput
	m.err = nil
	return m
}

func (m DemoModel) release() DemoModel {
	if !m.dragging {
		return m
	}
	m.dragging = false
	m.last = nil
	return m.apply(m.uc.EndDrag(m.ctx, demoContainer))
}

func (m DemoModel) cancel() DemoModel {
	if !m.dragging {
		return m
	}
	m.dragging = false
	m.last = nil
	return m.apply(m.uc.CancelDrag(m.ctx, demoContainer))
}

func (m DemoModel) selectHandle(d int) DemoModel {
	if m.dragging {
		m.err = usecase.ErrDragInProgress
		return m
	}
	m.selected = entity.Clamp(m.selected+d, 0, max(len(m.out.Placements)-2, 0))
	return m
}

func (m DemoModel) resize(extent int) DemoModel {
	return m.apply(m.uc.SetExtent(m.ctx, demoContainer, max(extent, 0)))
}

func (m DemoModel) setPolicy(kind entity.PolicyKind) DemoModel {
	if err := m.uc.SetPolicy(m.ctx, demoContainer, kind); err != nil {
		m.err = err
		return m
	}
	m.policy = kind
	m.err = nil
	return m
}

func (m DemoModel) addPane() DemoModel {
	id := entity.PaneID(strconv.Itoa(m.nextID))
	if err := m.uc.AddPane(m.ctx, usecase.AddPaneInput{
		ContainerID: demoContainer,
		PaneID:      id,
		Config:      usecase.DefaultPaneConfig(),
		Index:       -1,
	}); err != nil {
		m.err = err
		return m
	}
	m.nextID++
	return m.apply(m.uc.Flush(m.ctx, demoContainer))
}

func (m DemoModel) removePane() DemoModel {
	if len(m.out.Placements) <= 1 {
		return m
	}
	id := m.out.Placements[m.selected].PaneID
	if err := m.uc.RemovePane(m.ctx, demoContainer, id); err != nil {
		m.err = err
		return m
	}
	m = m.apply(m.uc.Flush(m.ctx, demoContainer))
	m.selected = entity.Clamp(m.selected, 0, max(len(m.out.Placements)-2, 0))
	return m
}

func (m DemoModel) anchor() DemoModel {
	if m.selected >= len(m.out.Placements) {
		return m
	}
	if err := m.uc.SetAnchor(m.ctx, demoContainer, m.out.Placements[m.selected].PaneID); err != nil {
		m.err = err
		return m
	}
	return m.apply(m.uc.Snapshot(m.ctx, demoContainer))
}

func (m DemoModel) apply(out *usecase.LayoutOutput, err error) DemoModel {
	if err != nil {
		m.err = err
		return m
	}
	m.out = out
	m.err = nil
	return m
}

func nextPolicy(current entity.PolicyKind) entity.PolicyKind {
	kinds := layout.Policies()
	for i, k := range kinds {
		if k == current {
			return kinds[(i+1)%len(kinds)]
		}
	}
	return kinds[0]
}

// View implements tea.Model.
func (m DemoModel) View() string {
	width := max(m.width-2*barMargin, 1)
	margin := strings.Repeat(" ", barMargin)

	title := fmt.Sprintf("%s %s  %s",
		m.theme.Highlight.Render(styles.IconPane),
		m.theme.Title.Render("paneset demo"),
		m.theme.Subtle.Render(fmt.Sprintf("policy %s  extent %d", m.policy, m.out.Extent)),
	)

	lines := []string{
		"",
		margin + title,
		"",
		indentLines(m.bar.Render(m.out, width, m.selected), margin),
		"",
		margin + m.renderStatus(),
	}
	if m.err != nil {
		lines = append(lines, margin+m.theme.ErrorStyle.Render(fmt.Sprintf("%s %v", styles.IconX, m.err)))
	}
	lines = append(lines, "", margin+m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m DemoModel) renderStatus() string {
	parts := []string{
		fmt.Sprintf("required %dx%d", m.out.Required.Width, m.out.Required.Height),
		fmt.Sprintf("commits %d", m.Commits()),
	}
	if m.selected < len(m.out.Placements) {
		parts = append(parts, fmt.Sprintf("handle after %s", m.out.Placements[m.selected].PaneID))
	}
	status := m.theme.Subtle.Render(strings.Join(parts, "  "))

	if m.dragging && m.last != nil {
		drag := fmt.Sprintf("  dragging %+d/%+d", m.last.Applied, m.last.Requested)
		if m.last.Dropped() != 0 {
			status += m.theme.WarningStyle.Render(drag)
		} else {
			status += m.theme.Highlight.Render(drag)
		}
	}
	if m.out.Residual != 0 {
		status += m.theme.WarningStyle.Render(fmt.Sprintf("  %s residual %d", styles.IconWarning, m.out.Residual))
	}
	return status
}

func indentLines(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
