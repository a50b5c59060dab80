package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pathviz/internal/search"
	"github.com/vovakirdan/tui-pathviz/internal/storage"
)

var (
	flagHistoryAlgorithm string
	flagHistoryLimit     int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded runs and statistics",
	Long: `Display recent runs and per-algorithm statistics from the run history.

Examples:
  pathviz history
  pathviz history --algorithm astar
  pathviz history --limit 50`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&flagHistoryAlgorithm, "algorithm", "", "Only show runs for this algorithm")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of recent runs to show")
}

func runHistory(cmd *cobra.Command, args []string) {
	if flagHistoryAlgorithm != "" && !search.Exists(flagHistoryAlgorithm) {
		fmt.Fprintf(os.Stderr, "Error: unknown algorithm %q\n", flagHistoryAlgorithm)
		fmt.Fprintln(os.Stderr, "Run 'pathviz list' to see available algorithms.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.RecentRuns(flagHistoryAlgorithm, flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	title := "Recent runs"
	if flagHistoryAlgorithm != "" {
		title = fmt.Sprintf("Recent runs - %s", flagHistoryAlgorithm)
	}
	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'pathviz run' or 'pathviz solve <layout>' to record one.")
		return
	}

	fmt.Printf("  %-16s  %-22s  %-8s  %-8s  %-6s  %-8s  %s\n",
		"When", "Algorithm", "Grid", "Visited", "Path", "Result", "ms")
	fmt.Printf("  %-16s  %-22s  %-8s  %-8s  %-6s  %-8s  %s\n",
		"----", "---------", "----", "-------", "----", "------", "--")

	for _, r := range runs {
		result := "no path"
		pathLen := "-"
		if r.Success {
			result = "found"
			pathLen = fmt.Sprintf("%d", r.PathLen)
		}
		fmt.Printf("  %-16s  %-22s  %-8s  %-8d  %-6s  %-8s  %d\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Algorithm,
			fmt.Sprintf("%dx%d", r.Rows, r.Cols),
			r.Visited, pathLen, result, r.DurationMs)
	}

	// Per-algorithm summary
	if flagHistoryAlgorithm != "" {
		stats, statsErr := store.Stats(flagHistoryAlgorithm)
		if statsErr == nil && stats != nil {
			fmt.Println()
			fmt.Printf("Total runs: %d  Successes: %d  Avg visited: %.1f  Avg path: %.1f\n",
				stats.Runs, stats.Successes, stats.AvgVisited, stats.AvgPathLen)
		}
		return
	}

	all, allErr := store.AllStats()
	if allErr != nil || len(all) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Per-algorithm statistics:")
	fmt.Println()
	fmt.Printf("  %-22s  %-6s  %-10s  %-12s  %s\n", "Algorithm", "Runs", "Successes", "Avg visited", "Avg path")
	fmt.Printf("  %-22s  %-6s  %-10s  %-12s  %s\n", "---------", "----", "---------", "-----------", "--------")

	for _, a := range search.List() {
		s, ok := all[a.Name]
		if !ok {
			continue
		}
		fmt.Printf("  %-22s  %-6d  %-10d  %-12.1f  %.1f\n",
			a.Name, s.Runs, s.Successes, s.AvgVisited, s.AvgPathLen)
	}
}
