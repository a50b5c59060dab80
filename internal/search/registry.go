package search

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-pathviz/internal/grid"
)

// Solver is a single search algorithm. Implementations are stateless;
// all per-run bookkeeping lives in a state created inside Solve.
type Solver interface {
	// Name returns the identifier used for CLI flags and run records
	// (e.g. "bfs", "astar").
	Name() string

	// Title returns a human-readable name for display.
	Title() string

	// Optimal reports whether the algorithm guarantees a shortest path
	// on an unweighted grid.
	Optimal() bool

	// Solve runs the search from start to end over a borrowed grid view.
	Solve(g *grid.Grid, start, end grid.Coord) Result
}

// Info contains metadata about a registered algorithm.
type Info struct {
	Name    string
	Title   string
	Optimal bool
}

// Factory is a function that creates a new instance of a solver.
type Factory func() Solver

// DefaultName is the algorithm used when a requested name is unknown.
const DefaultName = "bfs"

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]Info)
	mu        sync.RWMutex
)

// register adds a solver factory. Called from each algorithm's init().
// Panics if an algorithm with the same name is already registered.
func register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("search: algorithm %q already registered", name))
	}

	factories[name] = f

	s := f()
	infos[name] = Info{Name: name, Title: s.Title(), Optimal: s.Optimal()}
}

// List returns information about all registered algorithms, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// New instantiates a solver by name, falling back to breadth-first search
// for unrecognized names.
func New(name string) Solver {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		f = factories[DefaultName]
	}
	return f()
}

// Exists checks whether an algorithm with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
