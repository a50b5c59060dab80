package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pathviz/internal/config"
	"github.com/vovakirdan/tui-pathviz/internal/layout"
	"github.com/vovakirdan/tui-pathviz/internal/platform/tui"
	"github.com/vovakirdan/tui-pathviz/internal/search"
	"github.com/vovakirdan/tui-pathviz/internal/storage"
)

var (
	flagAlgorithm string
	flagLayout    string
	flagSpeed     int
	flagConfig    string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the interactive visualizer",
	Long: `Open the board editor and visualizer.

Controls:
  Arrows/hjkl  - Move cursor
  Space        - Toggle wall
  S / E        - Place start / end marker
  Tab          - Cycle algorithm
  + / -        - Change animation speed
  Enter        - Run the selected algorithm
  P            - Pause/resume animation
  X            - Stop animation
  C / N        - Clear walls / clear last run
  W            - Save the board as a layout
  T            - Run history
  Q/Ctrl+C     - Quit

Examples:
  pathviz run
  pathviz run --algorithm astar
  pathviz run --layout corridor --speed 8
  pathviz run --layout ./boards/maze.yaml
  pathviz run --config ./my-pathviz.yaml`,
	Run: runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagAlgorithm, "algorithm", search.DefaultName, "Algorithm to preselect")
	runCmd.Flags().StringVar(&flagLayout, "layout", "", "Built-in layout ID or path to a layout YAML")
	runCmd.Flags().IntVar(&flagSpeed, "speed", 0, "Animation speed 1-10 (0 = config default)")
	runCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
}

func runRun(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if !search.Exists(flagAlgorithm) {
		fmt.Fprintf(os.Stderr, "Error: unknown algorithm %q\n", flagAlgorithm)
		fmt.Fprintln(os.Stderr, "Run 'pathviz list' to see available algorithms.")
		os.Exit(1)
	}

	loader := layout.NewLoader(flagLayoutsDir)

	var initial *layout.Layout
	if flagLayout != "" {
		l, loadErr := resolveLayout(loader, flagLayout)
		if loadErr != nil {
			fmt.Fprintf(os.Stderr, "Error loading layout: %v\n", loadErr)
			os.Exit(1)
		}
		initial = &l
	}

	// Get terminal size for the auto-sized board
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open run history storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - the visualizer still works
		store = nil
	}

	runErr := tui.Run(tui.RunParams{
		Config:    cfg,
		Store:     store,
		Layouts:   loader,
		Algorithm: flagAlgorithm,
		Speed:     flagSpeed,
		TickRate:  flagFPS,
		ScreenW:   width,
		ScreenH:   height,
		Layout:    initial,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running visualizer: %v\n", runErr)
		os.Exit(1)
	}
}

// resolveLayout finds a layout by built-in ID, saved-layout ID, or file path.
func resolveLayout(loader *layout.Loader, ref string) (layout.Layout, error) {
	if l, ok := layout.FindBuiltin(ref); ok {
		return l, nil
	}
	if saved, err := loader.LoadAll(); err == nil {
		for _, l := range saved {
			if l.ID == ref {
				return l, nil
			}
		}
	}
	if _, err := os.Stat(ref); err == nil {
		return loader.LoadFile(ref)
	}
	return layout.Layout{}, fmt.Errorf("no layout named %q (not a built-in, saved layout, or file)", ref)
}
