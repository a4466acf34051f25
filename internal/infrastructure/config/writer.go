package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// EncodeTOML writes the configuration as TOML, fields in definition order.
func EncodeTOML(cfg *Config, w io.Writer) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// WriteConfigFile writes the configuration to path, creating parent
// directories as needed.
func WriteConfigFile(cfg *Config, path string) error {
	var buf bytes.Buffer
	if err := EncodeTOML(cfg, &buf); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
