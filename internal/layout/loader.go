package layout

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Loader loads layout files from a directory tree.
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at the given directory.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all layout files.
// Returns layouts sorted by ID for deterministic ordering; files that
// fail to parse or validate are skipped.
func (l *Loader) LoadAll() ([]Layout, error) {
	var layouts []Layout

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		layout, err := l.LoadFile(path)
		if err != nil {
			return nil
		}

		layouts = append(layouts, layout)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("layout: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(layouts, func(i, j int) bool {
		return layouts[i].ID < layouts[j].ID
	})
	return layouts, nil
}

// LoadFile loads and validates a single layout file.
func (l *Loader) LoadFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("layout: read %s: %w", path, err)
	}

	layout, err := Parse(data)
	if err != nil {
		return Layout{}, fmt.Errorf("layout: parse %s: %w", path, err)
	}

	layout.FilePath = path
	if layout.ID == "" {
		layout.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return layout, nil
}

// Save writes the layout under the loader root as <id>.yaml, creating the
// directory if needed.
func (l *Loader) Save(layout Layout) (string, error) {
	if err := layout.Validate(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(l.Root, 0o755); err != nil {
		return "", fmt.Errorf("layout: cannot create directory %s: %w", l.Root, err)
	}

	data, err := layout.Marshal()
	if err != nil {
		return "", err
	}

	path := filepath.Join(l.Root, layout.ID+".yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("layout: write %s: %w", path, err)
	}
	return path, nil
}
