package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the application configuration.
// Search order: customPath -> ~/.pathviz/config.yaml -> ./configs/pathviz.yaml -> embedded default
func Load(customPath string) (Config, error) {
	var cfg Config

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/pathviz.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return normalize(cfg), nil
}

// userConfigPath returns the path to the user config file, or empty if
// home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pathviz", filename)
}

// normalize fills missing fields from the defaults and clamps the speed
// setting into its valid range.
func normalize(cfg Config) Config {
	def := Default()

	if cfg.Playback.DefaultSpeed < 1 || cfg.Playback.DefaultSpeed > 10 {
		cfg.Playback.DefaultSpeed = def.Playback.DefaultSpeed
	}
	if cfg.Playback.FrontierPreview < 0 {
		cfg.Playback.FrontierPreview = def.Playback.FrontierPreview
	}

	if cfg.Theme.Wall == "" {
		cfg.Theme.Wall = def.Theme.Wall
	}
	if cfg.Theme.Start == "" {
		cfg.Theme.Start = def.Theme.Start
	}
	if cfg.Theme.End == "" {
		cfg.Theme.End = def.Theme.End
	}
	if cfg.Theme.Visited == "" {
		cfg.Theme.Visited = def.Theme.Visited
	}
	if cfg.Theme.Path == "" {
		cfg.Theme.Path = def.Theme.Path
	}
	if cfg.Theme.Frontier == "" {
		cfg.Theme.Frontier = def.Theme.Frontier
	}
	if cfg.Theme.Cursor == "" {
		cfg.Theme.Cursor = def.Theme.Cursor
	}

	return cfg
}
