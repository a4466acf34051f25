// Package scenario loads scripted layout sessions from files and replays
// them against the pane management use case.
package scenario

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/bnema/paneset/internal/application/usecase"
	"github.com/bnema/paneset/internal/domain/entity"
)

var ErrInvalidScenario = errors.New("invalid scenario")

// Op names a scenario step.
type Op string

const (
	OpExtent    Op = "extent"
	OpAdd       Op = "add"
	OpRemove    Op = "remove"
	OpConfigure Op = "configure"
	OpAnchor    Op = "anchor"
	OpPolicy    Op = "policy"
	OpDrag      Op = "drag"
	OpFlush     Op = "flush"
)

// Scenario is a container, its initial panes and a script of steps.
type Scenario struct {
	Name     string       `mapstructure:"name"`
	Extent   int          `mapstructure:"extent"`
	Settings SettingsSpec `mapstructure:"settings"`
	Panes    []PaneSpec   `mapstructure:"panes"`
	Steps    []Step       `mapstructure:"steps"`

	// Path is the file the scenario was loaded from.
	Path string `mapstructure:"-"`
}

// SettingsSpec overrides the configured container settings.
type SettingsSpec struct {
	HandleSize      *int   `mapstructure:"handle_size"`
	Padding         *int   `mapstructure:"padding"`
	Inset           *int   `mapstructure:"inset"`
	TrailingHandles *bool  `mapstructure:"trailing_handles"`
	Policy          string `mapstructure:"policy"`
	Orientation     string `mapstructure:"orientation"`
}

// Apply returns base with the overrides applied.
func (s SettingsSpec) Apply(base entity.Settings) entity.Settings {
	if s.HandleSize != nil {
		base.HandleSize = *s.HandleSize
	}
	if s.Padding != nil {
		base.Padding = *s.Padding
	}
	if s.Inset != nil {
		base.Inset = *s.Inset
	}
	if s.TrailingHandles != nil {
		base.TrailingHandles = *s.TrailingHandles
	}
	if s.Policy != "" {
		base.Policy = entity.PolicyKind(s.Policy)
	}
	if axis, ok := entity.ParseAxis(s.Orientation); ok {
		base.Orientation = axis
	}
	return base
}

// PaneSpec declares a pane. Zero Max and Fixed mean unbounded and unpinned.
type PaneSpec struct {
	ID        string   `mapstructure:"id"`
	Min       int      `mapstructure:"min"`
	Max       int      `mapstructure:"max"`
	Fixed     int      `mapstructure:"fixed"`
	Weight    *float64 `mapstructure:"weight"`
	HasHandle *bool    `mapstructure:"has_handle"`
	NoGrow    bool     `mapstructure:"no_grow"`
	NoShrink  bool     `mapstructure:"no_shrink"`
	// Content is the natural content extent along the axis, Cross across it.
	Content int `mapstructure:"content"`
	Cross   int `mapstructure:"cross"`
}

// Config converts the declaration into a use case pane configuration.
func (p PaneSpec) Config() usecase.PaneConfig {
	cfg := usecase.DefaultPaneConfig()
	cfg.Min = p.Min
	if p.Max > 0 {
		cfg.Max = p.Max
	}
	if p.Fixed > 0 {
		cfg.Fixed = p.Fixed
	}
	if p.Weight != nil {
		cfg.Weight = *p.Weight
	}
	if p.HasHandle != nil {
		cfg.HasHandle = *p.HasHandle
	}
	cfg.Resize = entity.ResizeMask{CanGrow: !p.NoGrow, CanShrink: !p.NoShrink}
	return cfg
}

// Step is one scripted operation.
type Step struct {
	Op     Op        `mapstructure:"op"`
	Pane   string    `mapstructure:"pane"`
	Extent int       `mapstructure:"extent"`
	Index  *int      `mapstructure:"index"`
	Policy string    `mapstructure:"policy"`
	Config *PaneSpec `mapstructure:"config"`
	// Path holds pointer positions; the first one presses the handle.
	Path   []int `mapstructure:"path"`
	Cancel bool  `mapstructure:"cancel"`
}

// Load reads a scenario file. The format follows the file extension
// (toml, yaml or json).
func Load(path string) (*Scenario, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read scenario %s: %w", path, err)
	}

	sc := &Scenario{}
	if err := v.Unmarshal(sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", path, err)
	}
	sc.Path = path
	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Validate checks pane declarations and steps.
func (sc *Scenario) Validate() error {
	var problems []string

	if sc.Extent < 0 {
		problems = append(problems, "extent must be non-negative")
	}

	seen := make(map[string]bool, len(sc.Panes))
	for i, p := range sc.Panes {
		switch {
		case p.ID == "":
			problems = append(problems, fmt.Sprintf("panes[%d]: id is required", i))
		case seen[p.ID]:
			problems = append(problems, fmt.Sprintf("panes[%d]: duplicate id %q", i, p.ID))
		}
		seen[p.ID] = true
	}

	for i, s := range sc.Steps {
		if msg := s.validate(); msg != "" {
			problems = append(problems, fmt.Sprintf("steps[%d] (%s): %s", i, s.Op, msg))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidScenario, strings.Join(problems, "\n  - "))
	}
	return nil
}

func (s Step) validate() string {
	switch s.Op {
	case OpExtent:
		if s.Extent < 0 {
			return "extent must be non-negative"
		}
	case OpAdd:
		if s.Pane == "" && (s.Config == nil || s.Config.ID == "") {
			return "pane is required"
		}
	case OpRemove, OpAnchor:
		if s.Pane == "" {
			return "pane is required"
		}
	case OpConfigure:
		if s.Pane == "" || s.Config == nil {
			return "pane and config are required"
		}
	case OpPolicy:
		if s.Policy == "" {
			return "policy is required"
		}
	case OpDrag:
		if s.Pane == "" || len(s.Path) == 0 {
			return "pane and a non-empty path are required"
		}
	case OpFlush:
	default:
		return "unknown op"
	}
	return ""
}
