// Package cli wires configuration, logging and theming for the paneset commands.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/paneset/internal/cli/styles"
	"github.com/bnema/paneset/internal/domain/build"
	"github.com/bnema/paneset/internal/infrastructure/config"
	"github.com/bnema/paneset/internal/logging"
)

// Options control how the App is built.
type Options struct {
	// ConfigFile overrides the XDG config file location.
	ConfigFile string
	// LogLevel overrides logging.level from the config file.
	LogLevel string
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// Context with logger
	ctx context.Context
}

// NewApp loads the configuration and builds the logger and theme.
func NewApp(opts Options) (*App, error) {
	mgr, err := config.NewManager(opts.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	level := cfg.Logging.Level
	if override := strings.TrimSpace(opts.LogLevel); override != "" {
		level = override
	}
	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	})
	ctx := logging.WithContext(context.Background(), logger)

	logger.Debug().
		Str("config_file", mgr.GetConfigFile()).
		Str("policy", cfg.Engine.Policy).
		Str("orientation", cfg.Engine.Orientation).
		Msg("configuration loaded")

	return &App{
		Config:  cfg,
		Manager: mgr,
		Theme:   styles.NewTheme(cfg),
		ctx:     ctx,
	}, nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
