package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
playback:
  default_speed: 8
  frontier_preview: 3
grid:
  rows: 12
  cols: 30
theme:
  wall: "240"
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Playback.DefaultSpeed != 8 {
		t.Errorf("DefaultSpeed = %d, expected 8", cfg.Playback.DefaultSpeed)
	}
	if cfg.Playback.FrontierPreview != 3 {
		t.Errorf("FrontierPreview = %d, expected 3", cfg.Playback.FrontierPreview)
	}
	if cfg.Grid.Rows != 12 || cfg.Grid.Cols != 30 {
		t.Errorf("Grid = %dx%d, expected 12x30", cfg.Grid.Rows, cfg.Grid.Cols)
	}
	if cfg.Theme.Wall != "240" {
		t.Errorf("Theme.Wall = %q, expected 240", cfg.Theme.Wall)
	}
	// Unset theme fields are filled from the defaults
	if cfg.Theme.Path == "" {
		t.Error("Unset theme field was not filled from defaults")
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing custom config")
	}
}

func TestNormalizeClampsSpeed(t *testing.T) {
	tests := []struct {
		name     string
		speed    int
		expected int
	}{
		{"zero falls back to default", 0, 5},
		{"negative falls back to default", -3, 5},
		{"above range falls back to default", 42, 5},
		{"valid speed kept", 2, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{}
			cfg.Playback.DefaultSpeed = tc.speed

			got := normalize(cfg)
			if got.Playback.DefaultSpeed != tc.expected {
				t.Errorf("DefaultSpeed = %d, expected %d", got.Playback.DefaultSpeed, tc.expected)
			}
		})
	}
}

func TestDefaultMatchesEmbedded(t *testing.T) {
	if len(DefaultYAML()) == 0 {
		t.Fatal("Embedded default config is empty")
	}

	def := Default()
	if def.Playback.DefaultSpeed < 1 || def.Playback.DefaultSpeed > 10 {
		t.Errorf("Default speed %d outside valid range", def.Playback.DefaultSpeed)
	}
	if def.Theme.Wall == "" || def.Theme.Visited == "" || def.Theme.Path == "" {
		t.Error("Default theme has empty color codes")
	}
}
