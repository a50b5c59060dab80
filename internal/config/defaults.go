package config

import (
	_ "embed"
)

//go:embed defaults/pathviz.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration, used when the
// embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Playback: PlaybackConfig{
			DefaultSpeed:    5,
			FrontierPreview: 8,
		},
		Grid: GridConfig{
			Rows: 0,
			Cols: 0,
		},
		Theme: ThemeConfig{
			Wall:     "252",
			Start:    "10",
			End:      "9",
			Visited:  "39",
			Path:     "11",
			Frontier: "13",
			Cursor:   "208",
		},
	}
}

// DefaultYAML returns the embedded default configuration file, useful for
// writing a starter config to disk.
func DefaultYAML() []byte {
	return defaultYAML
}
