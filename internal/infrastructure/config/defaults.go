package config

import "github.com/bnema/paneset/internal/domain/entity"

// Default configuration constants
const (
	defaultHandleSize  = 4
	defaultPolicy      = string(entity.PolicySlinky)
	defaultOrientation = "horizontal"

	defaultLogLevel  = "info"
	defaultLogFormat = "console"

	// Palette defaults
	defaultAccentColor  = "#7aa2f7"
	defaultPaneColor    = "#3b4261"
	defaultHandleColor  = "#e0af68"
	defaultTextColor    = "#c0caf5"
	defaultMutedColor   = "#565f89"
	defaultWarningColor = "#f7768e"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			HandleSize:  defaultHandleSize,
			Policy:      defaultPolicy,
			Orientation: defaultOrientation,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Appearance: AppearanceConfig{
			Palette: PaletteConfig{
				Accent:  defaultAccentColor,
				Pane:    defaultPaneColor,
				Handle:  defaultHandleColor,
				Text:    defaultTextColor,
				Muted:   defaultMutedColor,
				Warning: defaultWarningColor,
			},
		},
	}
}

// Settings converts the engine section into container settings.
// The section must have passed validation.
func (e EngineConfig) Settings() entity.Settings {
	axis, _ := entity.ParseAxis(e.Orientation)
	return entity.Settings{
		Orientation:     axis,
		HandleSize:      e.HandleSize,
		Padding:         e.Padding,
		Inset:           e.Inset,
		TrailingHandles: e.TrailingHandles,
		Policy:          entity.PolicyKind(e.Policy),
	}
}
