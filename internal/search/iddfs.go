package search

import "github.com/vovakirdan/tui-pathviz/internal/grid"

// iterativeDeepening repeats a depth-limited DFS with the limit increasing
// from 0 until the goal is reached or the limit exceeds the grid area.
// Visited order accumulates across limit iterations, so cells reappear in
// the animation on every outer pass (and within a pass when re-entered with
// a larger remaining budget); that repetition is the observable signature
// of the algorithm. Optimal in step count on a unit-cost grid.
type iterativeDeepening struct{}

func init() {
	register("iterative-deepening", func() Solver { return iterativeDeepening{} })
}

func (iterativeDeepening) Name() string  { return "iterative-deepening" }
func (iterativeDeepening) Title() string { return "Iterative-Deepening DFS" }
func (iterativeDeepening) Optimal() bool { return true }

func (iterativeDeepening) Solve(g *grid.Grid, start, end grid.Coord) Result {
	maxDepth := g.Rows() * g.Cols()
	var order []grid.Coord

	for limit := 0; limit <= maxDepth; limit++ {
		// Fresh depth/predecessor scratch for each pass.
		st := newState()
		if depthLimited(g, st, &order, start, end, limit) {
			return Result{VisitedInOrder: order, Path: reconstruct(st, start, end), Success: true}
		}
	}

	return Result{VisitedInOrder: order, Success: false}
}

// depthLimited is a recursive DFS bounded to the given remaining depth.
// Every cell it touches is appended to order. st.dist records the largest
// remaining budget a cell has been entered with; a cell is re-expanded when
// reached with more budget than before, otherwise a shallow route poisoned
// by an earlier deep detour would never reach the goal and the pass at the
// true shortest distance could fail.
func depthLimited(g *grid.Grid, st *state, order *[]grid.Coord, cur, end grid.Coord, limit int) bool {
	st.dist[cur] = limit
	*order = append(*order, cur)

	if cur == end {
		return true
	}
	if limit == 0 {
		return false
	}

	for _, n := range neighbors(g, cur) {
		if !g.Walkable(n) {
			continue
		}
		if seen, ok := st.dist[n]; ok && seen >= limit-1 {
			continue
		}
		st.prev[n] = cur
		if depthLimited(g, st, order, n, end, limit-1) {
			return true
		}
	}
	return false
}
