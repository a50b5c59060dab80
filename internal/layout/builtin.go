package layout

import (
	"embed"
	"io/fs"
	"sort"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtin returns the layouts shipped with the binary, sorted by ID.
func Builtin() []Layout {
	entries, err := fs.Glob(builtinFS, "builtin/*.yaml")
	if err != nil {
		return nil
	}

	var layouts []Layout
	for _, path := range entries {
		data, err := builtinFS.ReadFile(path)
		if err != nil {
			continue
		}
		l, err := Parse(data)
		if err != nil {
			continue
		}
		l.FilePath = path
		layouts = append(layouts, l)
	}

	sort.Slice(layouts, func(i, j int) bool {
		return layouts[i].ID < layouts[j].ID
	})
	return layouts
}

// FindBuiltin returns the builtin layout with the given ID, if any.
func FindBuiltin(id string) (Layout, bool) {
	for _, l := range Builtin() {
		if l.ID == id {
			return l, true
		}
	}
	return Layout{}, false
}
