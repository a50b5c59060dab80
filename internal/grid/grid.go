package grid

// Grid is a rectangular board of cells stored in row-major order:
// index = row*cols + col. Exactly one cell carries KindStart and exactly
// one carries KindEnd; both are always traversable.
type Grid struct {
	rows  int
	cols  int
	cells []Kind
	start Coord
	end   Coord
}

// MinSize is the smallest allowed dimension for either axis.
const MinSize = 2

// New creates a grid of the given dimensions with start and end markers
// placed on the middle row, a quarter in from each side. Dimensions below
// MinSize are raised to it.
func New(rows, cols int) *Grid {
	if rows < MinSize {
		rows = MinSize
	}
	if cols < MinSize {
		cols = MinSize
	}

	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Kind, rows*cols),
	}

	g.start = Coord{Row: rows / 2, Col: cols / 4}
	g.end = Coord{Row: rows / 2, Col: cols - 1 - cols/4}
	if g.start == g.end {
		g.end = Coord{Row: rows / 2, Col: cols - 1}
		if g.start == g.end {
			g.start = Coord{Row: rows / 2, Col: 0}
		}
	}
	g.cells[g.index(g.start)] = KindStart
	g.cells[g.index(g.end)] = KindEnd
	return g
}

// NewWithMarkers creates a grid with the start and end markers at the
// given cells, bypassing the default placement (and with it SetStart's
// refusal to land on the other marker's default cell). Falls back to the
// default placement when the cells are out of bounds or coincide.
func NewWithMarkers(rows, cols int, start, end Coord) *Grid {
	g := New(rows, cols)
	if !g.InBounds(start) || !g.InBounds(end) || start == end {
		return g
	}
	g.cells[g.index(g.start)] = KindEmpty
	g.cells[g.index(g.end)] = KindEmpty
	g.start, g.end = start, end
	g.cells[g.index(start)] = KindStart
	g.cells[g.index(end)] = KindEnd
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// InBounds returns true if the coordinate lies within the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Kind returns the kind of the cell at c. Out-of-bounds coordinates
// report KindWall so callers treat the border as blocked.
func (g *Grid) Kind(c Coord) Kind {
	if !g.InBounds(c) {
		return KindWall
	}
	return g.cells[g.index(c)]
}

// SetKind sets the display kind of the cell at c. The start and end
// markers cannot be overwritten; out-of-bounds writes are ignored.
func (g *Grid) SetKind(c Coord, k Kind) {
	if !g.InBounds(c) || c == g.start || c == g.end {
		return
	}
	g.cells[g.index(c)] = k
}

// Walkable reports whether the cell at c exists and is not a wall.
func (g *Grid) Walkable(c Coord) bool {
	return g.InBounds(c) && g.cells[g.index(c)] != KindWall
}

// Start returns the start marker position.
func (g *Grid) Start() Coord {
	return g.start
}

// End returns the end marker position.
func (g *Grid) End() Coord {
	return g.end
}

// SetStart moves the start marker to c. The move is refused when c is out
// of bounds, a wall, or the end marker; the vacated cell becomes empty.
func (g *Grid) SetStart(c Coord) bool {
	if !g.InBounds(c) || c == g.end || g.cells[g.index(c)] == KindWall {
		return false
	}
	g.cells[g.index(g.start)] = KindEmpty
	g.start = c
	g.cells[g.index(c)] = KindStart
	return true
}

// SetEnd moves the end marker to c under the same rules as SetStart.
func (g *Grid) SetEnd(c Coord) bool {
	if !g.InBounds(c) || c == g.start || g.cells[g.index(c)] == KindWall {
		return false
	}
	g.cells[g.index(g.end)] = KindEmpty
	g.end = c
	g.cells[g.index(c)] = KindEnd
	return true
}

// ToggleWall flips the cell at c between wall and empty.
// Start and end cells are never turned into walls.
func (g *Grid) ToggleWall(c Coord) {
	if !g.InBounds(c) || c == g.start || c == g.end {
		return
	}
	i := g.index(c)
	if g.cells[i] == KindWall {
		g.cells[i] = KindEmpty
	} else {
		g.cells[i] = KindWall
	}
}

// SetWall makes the cell at c a wall. Start and end cells are left alone.
func (g *Grid) SetWall(c Coord) {
	if !g.InBounds(c) || c == g.start || c == g.end {
		return
	}
	g.cells[g.index(c)] = KindWall
}

// ClearRun resets all visited/path/frontier cells to empty, leaving walls
// and the start/end markers in place. Called before every visualization.
func (g *Grid) ClearRun() {
	for i, k := range g.cells {
		if k.transient() {
			g.cells[i] = KindEmpty
		}
	}
}

// ClearWalls removes every wall from the grid.
func (g *Grid) ClearWalls() {
	for i, k := range g.cells {
		if k == KindWall {
			g.cells[i] = KindEmpty
		}
	}
}

// WallCount returns the number of wall cells.
func (g *Grid) WallCount() int {
	n := 0
	for _, k := range g.cells {
		if k == KindWall {
			n++
		}
	}
	return n
}

// Walls returns the coordinates of every wall cell in row-major order.
func (g *Grid) Walls() []Coord {
	var walls []Coord
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if g.cells[row*g.cols+col] == KindWall {
				walls = append(walls, Coord{Row: row, Col: col})
			}
		}
	}
	return walls
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Kind, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		rows:  g.rows,
		cols:  g.cols,
		cells: cells,
		start: g.start,
		end:   g.end,
	}
}
