package search

import "github.com/vovakirdan/tui-pathviz/internal/grid"

// astar orders the frontier by distance-from-start plus the Manhattan
// estimate to the goal. The Manhattan heuristic is admissible on a
// 4-connected unit-cost grid, so the returned path is shortest.
type astar struct{}

func init() {
	register("astar", func() Solver { return astar{} })
}

func (astar) Name() string  { return "astar" }
func (astar) Title() string { return "A* Search" }
func (astar) Optimal() bool { return true }

func (astar) Solve(g *grid.Grid, start, end grid.Coord) Result {
	st := newState()
	st.dist[start] = 0
	st.heur[start] = start.Manhattan(end)

	f := newFrontier()
	f.push(start, st.heur[start])
	var order []grid.Coord

	for !f.empty() {
		cur, _ := f.pop()

		if g.Kind(cur) == grid.KindWall || st.visited[cur] {
			continue
		}
		st.visited[cur] = true
		order = append(order, cur)

		if cur == end {
			return Result{VisitedInOrder: order, Path: reconstruct(st, start, end), Success: true}
		}

		for _, n := range neighbors(g, cur) {
			if st.visited[n] || !g.Walkable(n) {
				continue
			}
			tentative := st.dist[cur] + 1
			if d, ok := st.dist[n]; ok && tentative >= d {
				continue
			}
			st.dist[n] = tentative
			st.heur[n] = n.Manhattan(end)
			st.prev[n] = cur
			f.push(n, tentative+st.heur[n])
		}
	}

	return Result{VisitedInOrder: order, Success: false}
}
