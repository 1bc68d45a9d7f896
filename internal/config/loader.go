package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// configNames are the file names looked up in each config directory.
var configNames = []string{"board.yaml", "board.toml"}

// Load loads the board configuration. Files ending in .toml are decoded as
// TOML, everything else as YAML. Keys missing from a file keep their default.
// Search order: customPath -> ~/.panelboard/configs/board.{yaml,toml} ->
// ./configs/board.{yaml,toml} -> embedded default -> hardcoded default
func Load(customPath string) (BoardConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := decodeFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, dir := range searchDirs() {
		for _, name := range configNames {
			cfg, err := decodeFile(filepath.Join(dir, name))
			if err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := Decode(defaultBoardYAML, "yaml")
	if err != nil {
		return DefaultBoardConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Decode parses configuration data in the given format ("yaml" or "toml")
// on top of the defaults. A grid preset named in the data is applied to the
// defaults before the data, so keys set explicitly in the same file win over
// the preset.
func Decode(data []byte, format string) (BoardConfig, error) {
	cfg := DefaultBoardConfig()
	cfg.Grid = ""
	if err := decodeInto(data, format, &cfg); err != nil {
		return cfg, err
	}
	if !cfg.Grid.Valid() {
		// Unknown presets are left for Validate to report.
		if cfg.Grid == "" {
			cfg.Grid = DefaultBoardConfig().Grid
		}
		return cfg, nil
	}

	preset := cfg.Grid
	cfg = DefaultBoardConfig()
	ApplyGridPreset(&cfg, preset)
	if err := decodeInto(data, format, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func decodeInto(data []byte, format string, cfg *BoardConfig) error {
	switch format {
	case "toml":
		_, err := toml.Decode(string(data), cfg)
		return err
	case "yaml", "":
		return yaml.Unmarshal(data, cfg)
	}
	return fmt.Errorf("unsupported config format %q", format)
}

func decodeFile(path string) (BoardConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultBoardConfig(), fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Decode(data, formatOf(path))
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func formatOf(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return "toml"
	}
	return "yaml"
}

// searchDirs returns the user and local config directories, in order.
func searchDirs() []string {
	var dirs []string
	if userDir := userConfigDir(); userDir != "" {
		dirs = append(dirs, userDir)
	}
	return append(dirs, "configs")
}

// userConfigDir returns the user config directory, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".panelboard", "configs")
}
