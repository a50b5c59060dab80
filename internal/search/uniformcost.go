package search

import "github.com/vovakirdan/tui-pathviz/internal/grid"

// uniformCost is Dijkstra's algorithm on a unit-cost grid: the frontier is
// ordered by distance from start. Guarantees a shortest path.
type uniformCost struct{}

func init() {
	register("uniform-cost", func() Solver { return uniformCost{} })
}

func (uniformCost) Name() string  { return "uniform-cost" }
func (uniformCost) Title() string { return "Uniform-Cost Search" }
func (uniformCost) Optimal() bool { return true }

func (uniformCost) Solve(g *grid.Grid, start, end grid.Coord) Result {
	st := newState()
	st.dist[start] = 0

	f := newFrontier()
	f.push(start, 0)
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
			st.prev[n] = cur
			f.push(n, tentative)
		}
	}

	return Result{VisitedInOrder: order, Success: false}
}
