package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pathviz/internal/layout"
	"github.com/vovakirdan/tui-pathviz/internal/search"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List algorithms and built-in layouts",
	Long:  `Shows all registered algorithms and the built-in layouts.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	algos := search.List()

	fmt.Println("Available algorithms:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, a := range algos {
		if len(a.Name) > maxNameLen {
			maxNameLen = len(a.Name)
		}
	}

	fmt.Printf("  %-*s  %-26s  %s\n", maxNameLen, "Name", "Title", "Shortest path")
	fmt.Printf("  %-*s  %-26s  %s\n", maxNameLen, "----", "-----", "-------------")

	for _, a := range algos {
		optimal := "no"
		if a.Optimal {
			optimal = "yes"
		}
		fmt.Printf("  %-*s  %-26s  %s\n", maxNameLen, a.Name, a.Title, optimal)
	}

	builtins := layout.Builtin()
	if len(builtins) > 0 {
		fmt.Println()
		fmt.Println("Built-in layouts:")
		fmt.Println()
		for _, l := range builtins {
			fmt.Printf("  %-12s  %s (%dx%d)\n", l.ID, l.Name, l.Rows, l.Cols)
		}
	}

	fmt.Println()
	fmt.Println("Run 'pathviz run --algorithm <name>' to visualize one.")
}
