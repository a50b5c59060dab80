package search

import "github.com/vovakirdan/tui-pathviz/internal/grid"

// dfs is depth-first search: LIFO frontier. Neighbors are pushed in
// reverse of the fixed order so expansion still proceeds up, right,
// down, left. Does not guarantee a shortest path.
type dfs struct{}

func init() {
	register("dfs", func() Solver { return dfs{} })
}

func (dfs) Name() string  { return "dfs" }
func (dfs) Title() string { return "Depth-First Search" }
func (dfs) Optimal() bool { return false }

func (dfs) Solve(g *grid.Grid, start, end grid.Coord) Result {
	st := newState()
	st.visited[start] = true

	stack := []grid.Coord{start}
	var order []grid.Coord

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if g.Kind(cur) == grid.KindWall {
			continue
		}
		order = append(order, cur)

		if cur == end {
			return Result{VisitedInOrder: order, Path: reconstruct(st, start, end), Success: true}
		}

		nbrs := neighbors(g, cur)
		for i := len(nbrs) - 1; i >= 0; i-- {
			n := nbrs[i]
			if st.visited[n] || !g.Walkable(n) {
				continue
			}
			st.visited[n] = true
			st.prev[n] = cur
			stack = append(stack, n)
		}
	}

	return Result{VisitedInOrder: order, Success: false}
}
