package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bnema/paneset/internal/domain/entity"
	"github.com/bnema/paneset/internal/layout"
)

var hexColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateEngine(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validatePalette(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateEngine(config *Config) []string {
	var validationErrors []string
	e := config.Engine

	if e.HandleSize < 0 {
		validationErrors = append(validationErrors, "engine.handle_size must be non-negative")
	}
	if e.Padding < 0 {
		validationErrors = append(validationErrors, "engine.padding must be non-negative")
	}
	if e.Inset < 0 {
		validationErrors = append(validationErrors, "engine.inset must be non-negative")
	}
	if _, err := layout.PolicyFor(entity.PolicyKind(e.Policy)); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"engine.policy must be one of %s (got %q)", policyNames(), e.Policy))
	}
	if _, ok := entity.ParseAxis(e.Orientation); !ok {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"engine.orientation must be horizontal or vertical (got %q)", e.Orientation))
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string

	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of trace, debug, info, warn, error, disabled (got %q)", config.Logging.Level))
	}

	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be console or json (got %q)", config.Logging.Format))
	}
	return validationErrors
}

func validatePalette(config *Config) []string {
	var validationErrors []string
	p := config.Appearance.Palette

	colors := []struct {
		key   string
		value string
	}{
		{"accent", p.Accent},
		{"pane", p.Pane},
		{"handle", p.Handle},
		{"text", p.Text},
		{"muted", p.Muted},
		{"warning", p.Warning},
	}
	for _, c := range colors {
		if !hexColorPattern.MatchString(c.value) {
			validationErrors = append(validationErrors, fmt.Sprintf(
				"appearance.palette.%s must be a hex color like #7aa2f7 (got %q)", c.key, c.value))
		}
	}
	return validationErrors
}

func policyNames() string {
	kinds := layout.Policies()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
