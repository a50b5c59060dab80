package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pathviz/internal/layout"
	"github.com/vovakirdan/tui-pathviz/internal/search"
	"github.com/vovakirdan/tui-pathviz/internal/storage"
)

var (
	flagSolveAlgorithm string
	flagSolveAll       bool
	flagSolveNoSave    bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <layout>",
	Short: "Run algorithms on a layout without the TUI",
	Long: `Run one or all algorithms on a saved layout and print the results.

The layout argument is a built-in layout ID, a saved layout ID, or a
path to a layout YAML file. Results are recorded to the run history
unless --no-save is given.

Examples:
  pathviz solve corridor
  pathviz solve corridor --algorithm astar
  pathviz solve ./boards/maze.yaml --all`,
	Args: cobra.ExactArgs(1),
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&flagSolveAlgorithm, "algorithm", search.DefaultName, "Algorithm to run")
	solveCmd.Flags().BoolVar(&flagSolveAll, "all", false, "Run every registered algorithm")
	solveCmd.Flags().BoolVar(&flagSolveNoSave, "no-save", false, "Do not record results to the run history")
}

func runSolve(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "pathviz"})

	loader := layout.NewLoader(flagLayoutsDir)
	l, err := resolveLayout(loader, args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading layout: %v\n", err)
		os.Exit(1)
	}

	var algos []search.Info
	if flagSolveAll {
		algos = search.List()
	} else {
		if !search.Exists(flagSolveAlgorithm) {
			fmt.Fprintf(os.Stderr, "Error: unknown algorithm %q\n", flagSolveAlgorithm)
			fmt.Fprintln(os.Stderr, "Run 'pathviz list' to see available algorithms.")
			os.Exit(1)
		}
		for _, a := range search.List() {
			if a.Name == flagSolveAlgorithm {
				algos = append(algos, a)
			}
		}
	}

	var store *storage.Store
	if !flagSolveNoSave {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open run database, results will not be saved", "error", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	fmt.Printf("Layout: %s (%dx%d, %d walls)\n\n", l.ID, l.Rows, l.Cols, len(l.Walls))
	fmt.Printf("  %-22s  %-8s  %-6s  %-8s  %s\n", "Algorithm", "Visited", "Path", "Result", "Time")
	fmt.Printf("  %-22s  %-8s  %-6s  %-8s  %s\n", "---------", "-------", "----", "------", "----")

	for _, a := range algos {
		g := l.ToGrid()

		began := time.Now()
		res := search.Run(g, g.Start(), g.End(), a.Name)
		elapsed := time.Since(began)

		result := "no path"
		pathLen := "-"
		if res.Success {
			result = "found"
			pathLen = fmt.Sprintf("%d", len(res.Path))
		}
		fmt.Printf("  %-22s  %-8d  %-6s  %-8s  %s\n",
			a.Title, len(res.VisitedInOrder), pathLen, result, elapsed.Round(time.Microsecond))

		if store != nil {
			if _, saveErr := store.SaveRun(storage.RunRecord{
				Algorithm:  a.Name,
				Rows:       g.Rows(),
				Cols:       g.Cols(),
				Walls:      g.WallCount(),
				Visited:    len(res.VisitedInOrder),
				PathLen:    len(res.Path),
				Success:    res.Success,
				DurationMs: elapsed.Milliseconds(),
			}); saveErr != nil {
				logger.Warn("could not save run", "algorithm", a.Name, "error", saveErr)
			}
		}
	}
}
