package search

import "github.com/vovakirdan/tui-pathviz/internal/grid"

// greedy is greedy best-first search: the frontier is ordered by the
// Manhattan estimate to the goal alone. A neighbor's heuristic and
// predecessor are fixed the first time it is discovered and never
// revised afterwards, so a cell reached first via a longer route keeps
// pointing through it. Non-optimal by design.
type greedy struct{}

func init() {
	register("greedy-bfs", func() Solver { return greedy{} })
}

func (greedy) Name() string  { return "greedy-bfs" }
func (greedy) Title() string { return "Greedy Best-First Search" }
func (greedy) Optimal() bool { return false }

func (greedy) Solve(g *grid.Grid, start, end grid.Coord) Result {
	st := newState()
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
			if _, seen := st.heur[n]; seen {
				continue
			}
			st.heur[n] = n.Manhattan(end)
			st.prev[n] = cur
			f.push(n, st.heur[n])
		}
	}

	return Result{VisitedInOrder: order, Success: false}
}
