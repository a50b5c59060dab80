// Package config provides YAML-based application configuration for the
// visualizer: playback pacing, default grid dimensions, and the color
// theme used by the terminal renderer.
package config

// Config is the root configuration structure.
type Config struct {
	Playback PlaybackConfig `yaml:"playback"`
	Grid     GridConfig     `yaml:"grid"`
	Theme    ThemeConfig    `yaml:"theme"`
}

// PlaybackConfig controls animation pacing.
type PlaybackConfig struct {
	// DefaultSpeed is the initial speed setting, 1 (slow) to 10 (fast).
	DefaultSpeed int `yaml:"default_speed"`

	// FrontierPreview is how many upcoming cells to highlight ahead of
	// the reveal cursor. Zero disables the preview.
	FrontierPreview int `yaml:"frontier_preview"`
}

// GridConfig controls the default board dimensions. Zero means size the
// board to the terminal.
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// ThemeConfig maps cell kinds to ANSI 256-color codes used by the
// renderer.
type ThemeConfig struct {
	Wall     string `yaml:"wall"`
	Start    string `yaml:"start"`
	End      string `yaml:"end"`
	Visited  string `yaml:"visited"`
	Path     string `yaml:"path"`
	Frontier string `yaml:"frontier"`
	Cursor   string `yaml:"cursor"`
}
