package search

import "github.com/vovakirdan/tui-pathviz/internal/grid"

// bfs is breadth-first search: FIFO frontier, visits in level order,
// shortest path on an unweighted grid.
type bfs struct{}

func init() {
	register("bfs", func() Solver { return bfs{} })
}

func (bfs) Name() string  { return "bfs" }
func (bfs) Title() string { return "Breadth-First Search" }
func (bfs) Optimal() bool { return true }

func (bfs) Solve(g *grid.Grid, start, end grid.Coord) Result {
	st := newState()
	st.visited[start] = true
	st.dist[start] = 0

	queue := []grid.Coord{start}
	var order []grid.Coord

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if g.Kind(cur) == grid.KindWall {
			continue
		}
		order = append(order, cur)

		if cur == end {
			return Result{VisitedInOrder: order, Path: reconstruct(st, start, end), Success: true}
		}

		for _, n := range neighbors(g, cur) {
			if st.visited[n] || !g.Walkable(n) {
				continue
			}
			st.visited[n] = true
			st.prev[n] = cur
			st.dist[n] = st.dist[cur] + 1
			queue = append(queue, n)
		}
	}

	return Result{VisitedInOrder: order, Success: false}
}
