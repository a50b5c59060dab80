// pathviz is a TUI visualizer for grid pathfinding algorithms.
//
// Usage:
//
//	pathviz run               - Open the interactive board editor and visualizer
//	pathviz solve <layout>    - Run algorithms on a saved layout without the TUI
//	pathviz list              - List available algorithms and built-in layouts
//	pathviz history           - Show recorded runs and per-algorithm stats
//	pathviz serve             - Start SSH server for remote sessions
//
// Global flags:
//
//	--fps <rate>      - Set animation tick rate (default: 60)
//	--db <path>       - Set database path (default: ~/.pathviz/runs.db)
//	--layouts <dir>   - Directory for saved layouts (default: ~/.pathviz/layouts)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagLayoutsDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pathviz",
	Short: "Pathviz - Watch pathfinding algorithms explore a grid",
	Long: `Pathviz is a terminal-based pathfinding visualizer. Paint walls on a
grid, pick an algorithm, and watch it explore cell by cell until it
finds (or fails to find) a path.

Available commands:
  run      - Interactive board editor and visualizer
  solve    - Run algorithms on a layout without animation
  list     - Show all algorithms and built-in layouts
  history  - View recorded runs and statistics
  serve    - Start SSH server for remote sessions

Examples:
  pathviz run
  pathviz run --algorithm astar --layout corridor
  pathviz solve corridor --all
  pathviz history --algorithm bfs
  pathviz serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Animation tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pathviz/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLayoutsDir, "layouts", defaultLayoutsDir(), "Directory for saved layouts")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// defaultLayoutsDir resolves the default layouts directory under the
// user's home, falling back to a relative path if home is unknown.
func defaultLayoutsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "layouts"
	}
	return home + "/.pathviz/layouts"
}
