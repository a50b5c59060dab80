// Package search implements the graph-search algorithms operating over a
// uniform-cost 4-connected grid. All algorithms share the same neighbor
// order and path reconstruction so their visit sequences are deterministic
// and directly comparable.
package search

import "github.com/vovakirdan/tui-pathviz/internal/grid"

// Result is the outcome of one search run. VisitedInOrder is the exact
// sequence in which cells were marked visited; it drives the animation.
// Path is nil when Success is false, otherwise the ordered cells from
// start to end inclusive. A missing path is a normal result, not an error.
type Result struct {
	VisitedInOrder []grid.Coord
	Path           []grid.Coord
	Success        bool
}

// state is the per-run scratch bookkeeping, held in side maps keyed by
// coordinate rather than on the grid cells themselves. Each Solve call
// owns a fresh state, so runs never leak into one another and the engine
// is safe to use concurrently on independent grids.
type state struct {
	visited map[grid.Coord]bool
	dist    map[grid.Coord]int
	heur    map[grid.Coord]int
	prev    map[grid.Coord]grid.Coord
}

func newState() *state {
	return &state{
		visited: make(map[grid.Coord]bool),
		dist:    make(map[grid.Coord]int),
		heur:    make(map[grid.Coord]int),
		prev:    make(map[grid.Coord]grid.Coord),
	}
}

// neighborOffsets is the fixed expansion order: up, right, down, left.
// The order is observable in every algorithm's visit sequence.
var neighborOffsets = [4]grid.Coord{
	{Row: -1, Col: 0},
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
}

// neighbors returns the in-bounds orthogonal neighbors of c in the fixed
// order. Walls are included; callers decide whether to expand them.
func neighbors(g *grid.Grid, c grid.Coord) []grid.Coord {
	out := make([]grid.Coord, 0, 4)
	for _, off := range neighborOffsets {
		n := c.Add(off.Row, off.Col)
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// reconstruct walks predecessor links backward from end and reverses,
// yielding the path from start to end inclusive. Only meaningful after a
// successful search.
func reconstruct(st *state, start, end grid.Coord) []grid.Coord {
	path := []grid.Coord{end}
	cur := end
	for cur != start {
		p, ok := st.prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Run executes the named algorithm on g from start to end. Unrecognized
// names fall back to breadth-first search. The grid is only read; all
// per-run bookkeeping lives in the Solver's own scratch state.
//
// start == end is degenerate per the engine's contract; it is handled as
// an immediate success with a single-cell path.
func Run(g *grid.Grid, start, end grid.Coord, name string) Result {
	return New(name).Solve(g, start, end)
}
