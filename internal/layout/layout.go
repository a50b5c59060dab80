// Package layout provides YAML grid layout files: painted walls plus the
// start and end markers, loadable back into the visualizer or the
// headless solver. It depends on grid but grid does not depend on it.
package layout

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pathviz/internal/grid"
)

// ErrInvalid wraps all layout validation failures.
var ErrInvalid = errors.New("layout: invalid layout")

// Layout is a complete grid definition.
type Layout struct {
	ID       string
	Name     string
	Rows     int
	Cols     int
	Start    grid.Coord
	End      grid.Coord
	Walls    []grid.Coord
	FilePath string
}

// yamlLayout is the on-disk YAML structure.
type yamlLayout struct {
	ID    string      `yaml:"id"`
	Name  string      `yaml:"name"`
	Size  yamlSize    `yaml:"size"`
	Start yamlCoord   `yaml:"start"`
	End   yamlCoord   `yaml:"end"`
	Walls []yamlCoord `yaml:"walls"`
}

type yamlSize struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

type yamlCoord struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Parse decodes a YAML layout file.
func Parse(data []byte) (Layout, error) {
	var yl yamlLayout
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Layout{}, fmt.Errorf("layout: yaml unmarshal: %w", err)
	}

	l := Layout{
		ID:    yl.ID,
		Name:  yl.Name,
		Rows:  yl.Size.Rows,
		Cols:  yl.Size.Cols,
		Start: grid.At(yl.Start.Row, yl.Start.Col),
		End:   grid.At(yl.End.Row, yl.End.Col),
	}
	for _, w := range yl.Walls {
		l.Walls = append(l.Walls, grid.At(w.Row, w.Col))
	}

	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// Validate checks the structural invariants: minimum dimensions, both
// markers in bounds and distinct, and no wall on a marker cell.
func (l Layout) Validate() error {
	if l.Rows < grid.MinSize || l.Cols < grid.MinSize {
		return fmt.Errorf("%w: size %dx%d below minimum %d", ErrInvalid, l.Rows, l.Cols, grid.MinSize)
	}
	inBounds := func(c grid.Coord) bool {
		return c.Row >= 0 && c.Row < l.Rows && c.Col >= 0 && c.Col < l.Cols
	}
	if !inBounds(l.Start) {
		return fmt.Errorf("%w: start %v out of bounds", ErrInvalid, l.Start)
	}
	if !inBounds(l.End) {
		return fmt.Errorf("%w: end %v out of bounds", ErrInvalid, l.End)
	}
	if l.Start == l.End {
		return fmt.Errorf("%w: start and end coincide at %v", ErrInvalid, l.Start)
	}
	for _, w := range l.Walls {
		if !inBounds(w) {
			return fmt.Errorf("%w: wall %v out of bounds", ErrInvalid, w)
		}
		if w == l.Start || w == l.End {
			return fmt.Errorf("%w: wall on marker cell %v", ErrInvalid, w)
		}
	}
	return nil
}

// ToGrid builds a fresh grid from the layout. Markers are placed
// directly rather than moved one at a time, so a layout marker sitting on
// the fresh grid's default marker cell cannot be refused.
func (l Layout) ToGrid() *grid.Grid {
	g := grid.NewWithMarkers(l.Rows, l.Cols, l.Start, l.End)
	for _, w := range l.Walls {
		g.SetWall(w)
	}
	return g
}

// FromGrid captures the current walls and markers of a grid as a layout.
func FromGrid(g *grid.Grid, id, name string) Layout {
	return Layout{
		ID:    id,
		Name:  name,
		Rows:  g.Rows(),
		Cols:  g.Cols(),
		Start: g.Start(),
		End:   g.End(),
		Walls: g.Walls(),
	}
}

// Marshal encodes the layout to its YAML file form.
func (l Layout) Marshal() ([]byte, error) {
	yl := yamlLayout{
		ID:    l.ID,
		Name:  l.Name,
		Size:  yamlSize{Rows: l.Rows, Cols: l.Cols},
		Start: yamlCoord{Row: l.Start.Row, Col: l.Start.Col},
		End:   yamlCoord{Row: l.End.Row, Col: l.End.Col},
	}
	for _, w := range l.Walls {
		yl.Walls = append(yl.Walls, yamlCoord{Row: w.Row, Col: w.Col})
	}

	data, err := yaml.Marshal(&yl)
	if err != nil {
		return nil, fmt.Errorf("layout: yaml marshal: %w", err)
	}
	return data, nil
}
