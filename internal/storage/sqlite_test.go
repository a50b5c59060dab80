package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	runs := []RunRecord{
		{Algorithm: "bfs", Rows: 10, Cols: 20, Walls: 5, Visited: 120, PathLen: 28, Success: true, DurationMs: 3},
		{Algorithm: "bfs", Rows: 10, Cols: 20, Walls: 40, Visited: 60, PathLen: 0, Success: false, DurationMs: 2},
		{Algorithm: "astar", Rows: 10, Cols: 20, Walls: 5, Visited: 45, PathLen: 28, Success: true, DurationMs: 1},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	// All algorithms, newest first
	all, err := store.RecentRuns("", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(all))
	}
	if all[0].Algorithm != "astar" {
		t.Errorf("Expected newest run first, got %q", all[0].Algorithm)
	}
	if all[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not recorded")
	}

	// Filtered by algorithm
	bfsRuns, err := store.RecentRuns("bfs", 10)
	if err != nil {
		t.Fatalf("RecentRuns(bfs) failed: %v", err)
	}
	if len(bfsRuns) != 2 {
		t.Fatalf("Expected 2 bfs runs, got %d", len(bfsRuns))
	}
	if bfsRuns[0].Success {
		t.Error("Newest bfs run should be the failed one")
	}
	if bfsRuns[1].Visited != 120 || bfsRuns[1].PathLen != 28 {
		t.Errorf("Run fields mangled: visited=%d path=%d", bfsRuns[1].Visited, bfsRuns[1].PathLen)
	}
}

func TestRecentRunsLimit(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		if _, err := store.SaveRun(RunRecord{Algorithm: "dfs", Rows: 5, Cols: 5, Visited: i}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns("dfs", 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit 3, got %d", len(runs))
	}
	if runs[0].Visited != 4 {
		t.Errorf("Expected newest run (visited=4) first, got visited=%d", runs[0].Visited)
	}
}

func TestStats(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, r := range []RunRecord{
		{Algorithm: "astar", Rows: 8, Cols: 8, Visited: 10, PathLen: 6, Success: true},
		{Algorithm: "astar", Rows: 8, Cols: 8, Visited: 30, PathLen: 0, Success: false},
		{Algorithm: "bfs", Rows: 8, Cols: 8, Visited: 50, PathLen: 6, Success: true},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	stats, err := store.Stats("astar")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 {
		t.Errorf("Runs = %d, expected 2", stats.Runs)
	}
	if stats.Successes != 1 {
		t.Errorf("Successes = %d, expected 1", stats.Successes)
	}
	if stats.AvgVisited != 20 {
		t.Errorf("AvgVisited = %f, expected 20", stats.AvgVisited)
	}
	if stats.LastRun.IsZero() {
		t.Error("LastRun was not recorded")
	}

	// Algorithm that was never run
	empty, err := store.Stats("greedy-bfs")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.Successes != 0 {
		t.Errorf("Expected zero stats, got runs=%d successes=%d", empty.Runs, empty.Successes)
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 algorithms, got %d", len(all))
	}
	if all["bfs"].AvgVisited != 50 {
		t.Errorf("bfs AvgVisited = %f, expected 50", all["bfs"].AvgVisited)
	}
}

func TestClearRuns(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, algo := range []string{"bfs", "bfs", "dfs"} {
		if _, err := store.SaveRun(RunRecord{Algorithm: algo, Rows: 5, Cols: 5}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	if err := store.ClearRuns("bfs"); err != nil {
		t.Fatalf("ClearRuns(bfs) failed: %v", err)
	}
	runs, _ := store.RecentRuns("", 10)
	if len(runs) != 1 || runs[0].Algorithm != "dfs" {
		t.Errorf("Expected only the dfs run to remain, got %d runs", len(runs))
	}

	if err := store.ClearRuns(""); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	runs, _ = store.RecentRuns("", 10)
	if len(runs) != 0 {
		t.Errorf("Expected no runs after full clear, got %d", len(runs))
	}
}

func TestOpenCreatesParentDirs(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Dir(dbPath)); err != nil {
		t.Errorf("Parent directories were not created: %v", err)
	}
}
