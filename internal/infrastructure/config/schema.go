package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Config represents the complete configuration for paneset.
type Config struct {
	// Engine holds the layout parameters applied to every new container.
	Engine     EngineConfig     `mapstructure:"engine" toml:"engine" json:"engine"`
	Logging    LoggingConfig    `mapstructure:"logging" toml:"logging" json:"logging"`
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance" json:"appearance"`
	// ScenarioDir is searched for scenario files given by bare name.
	ScenarioDir string `mapstructure:"scenario_dir" toml:"scenario_dir" json:"scenario_dir"`
}

// EngineConfig controls container layout.
type EngineConfig struct {
	// HandleSize is the extent of a resize handle along the axis.
	HandleSize int `mapstructure:"handle_size" toml:"handle_size" json:"handle_size" jsonschema:"minimum=0"`
	// Padding is added to every pane along the axis.
	Padding int `mapstructure:"padding" toml:"padding" json:"padding" jsonschema:"minimum=0"`
	// Inset is the border reserved at both ends of the container.
	Inset int `mapstructure:"inset" toml:"inset" json:"inset" jsonschema:"minimum=0"`
	// TrailingHandles gives the terminal pane a handle as well.
	TrailingHandles bool `mapstructure:"trailing_handles" toml:"trailing_handles" json:"trailing_handles"`
	// Policy is the handle adjustment policy (slinky, give-take, spreadsheet).
	Policy string `mapstructure:"policy" toml:"policy" json:"policy" jsonschema:"enum=slinky,enum=give-take,enum=spreadsheet"`
	// Orientation is the layout axis (horizontal, vertical).
	Orientation string `mapstructure:"orientation" toml:"orientation" json:"orientation" jsonschema:"enum=horizontal,enum=vertical"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// AppearanceConfig controls the terminal rendering of layouts.
type AppearanceConfig struct {
	Palette PaletteConfig `mapstructure:"palette" toml:"palette" json:"palette"`
}

// PaletteConfig holds hex colors used by the CLI.
type PaletteConfig struct {
	Accent  string `mapstructure:"accent" toml:"accent" json:"accent"`
	Pane    string `mapstructure:"pane" toml:"pane" json:"pane"`
	Handle  string `mapstructure:"handle" toml:"handle" json:"handle"`
	Text    string `mapstructure:"text" toml:"text" json:"text"`
	Muted   string `mapstructure:"muted" toml:"muted" json:"muted"`
	Warning string `mapstructure:"warning" toml:"warning" json:"warning"`
}

// GenerateSchema returns the JSON schema of the configuration file.
func GenerateSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	r.FieldNameTag = "toml"
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/paneset/config.schema.json"
	schema.Title = "Paneset Configuration"
	schema.Description = "Configuration schema for paneset, an adaptive pane layout engine"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
