// Package playback turns a search result into a paced, interruptible
// animation. A run is compiled up front into an ordered list of timed
// frames; a scheduler then advances a single cursor over that list, so
// pausing or stopping never leaves a stale callback behind.
package playback

import (
	"time"

	"github.com/vovakirdan/tui-pathviz/internal/grid"
	"github.com/vovakirdan/tui-pathviz/internal/search"
)

// Timing constants. The per-step delay is BaseDelay divided by the speed
// setting; path cells reveal pathDelayFactor times slower than visited
// cells to emphasize the final route.
const (
	BaseDelay       = 500 * time.Millisecond
	MinSpeed        = 1
	MaxSpeed        = 10
	pathDelayFactor = 3
	settleDelay     = 250 * time.Millisecond

	// DefaultPreview is the default number of upcoming visited-order
	// cells highlighted as the rolling frontier.
	DefaultPreview = 8
)

// CellUpdate is one outbound mutation request: mark the cell at Coord
// with the given display kind.
type CellUpdate struct {
	Coord grid.Coord
	Kind  grid.Kind
}

// Frame is a group of cell updates that fire together at offset At from
// the start of the animation.
type Frame struct {
	At      time.Duration
	Updates []CellUpdate
}

// Plan is the complete compiled animation: frames in non-decreasing At
// order, and the total duration including the settle delay before the
// run is considered complete.
type Plan struct {
	Frames []Frame
	Total  time.Duration
}

// Options configures plan compilation.
type Options struct {
	// Speed is the animation speed in [MinSpeed, MaxSpeed]; values
	// outside the range are clamped.
	Speed int

	// Preview is the maximum number of upcoming cells highlighted as
	// frontier at each visited step. Zero disables the preview.
	Preview int

	// Start and End are never overpainted by the animation.
	Start grid.Coord
	End   grid.Coord
}

// StepDelay returns the per-step delay for a speed setting, clamping the
// speed into the valid range.
func StepDelay(speed int) time.Duration {
	if speed < MinSpeed {
		speed = MinSpeed
	}
	if speed > MaxSpeed {
		speed = MaxSpeed
	}
	return BaseDelay / time.Duration(speed)
}

// Build compiles a search result into a plan. Phase 1 reveals visited
// cells at i*delay with a rolling frontier preview; phase 2 reveals path
// cells three times slower, anchored to the end of phase 1; the plan
// completes after a fixed settle delay.
func Build(res search.Result, opts Options) Plan {
	delay := StepDelay(opts.Speed)

	skip := func(c grid.Coord) bool {
		return c == opts.Start || c == opts.End
	}

	var frames []Frame
	revealed := make(map[grid.Coord]bool)
	var prevPreview []grid.Coord

	for i, cur := range res.VisitedInOrder {
		at := time.Duration(i) * delay
		var updates []CellUpdate

		// Clear the previous step's frontier highlight first, keeping
		// cells that stay highlighted this step.
		next := previewWindow(res.VisitedInOrder, i+1, opts.Preview, revealed, opts)
		inNext := make(map[grid.Coord]bool, len(next))
		for _, c := range next {
			inNext[c] = true
		}
		for _, c := range prevPreview {
			if c == cur || inNext[c] || revealed[c] {
				continue
			}
			updates = append(updates, CellUpdate{Coord: c, Kind: grid.KindEmpty})
		}

		if !skip(cur) {
			updates = append(updates, CellUpdate{Coord: cur, Kind: grid.KindVisited})
		}
		revealed[cur] = true

		for _, c := range next {
			updates = append(updates, CellUpdate{Coord: c, Kind: grid.KindFrontier})
		}
		prevPreview = next

		if len(updates) > 0 {
			frames = append(frames, Frame{At: at, Updates: updates})
		}
	}

	visitedEnd := time.Duration(len(res.VisitedInOrder)) * delay

	// The frontier overlay is fully cleared once the visited phase ends.
	var clear []CellUpdate
	for _, c := range prevPreview {
		if !revealed[c] {
			clear = append(clear, CellUpdate{Coord: c, Kind: grid.KindEmpty})
		}
	}
	if len(clear) > 0 {
		frames = append(frames, Frame{At: visitedEnd, Updates: clear})
	}

	total := visitedEnd
	if res.Success {
		pathDelay := delay * pathDelayFactor
		for j, c := range res.Path {
			if skip(c) {
				continue
			}
			at := visitedEnd + time.Duration(j)*pathDelay
			frames = append(frames, Frame{At: at, Updates: []CellUpdate{{Coord: c, Kind: grid.KindPath}}})
		}
		total = visitedEnd + time.Duration(len(res.Path))*pathDelay
	}

	return Plan{Frames: frames, Total: total + settleDelay}
}

// previewWindow returns up to max not-yet-revealed cells from the visited
// order starting at index from, excluding the start and end markers.
func previewWindow(order []grid.Coord, from, max int, revealed map[grid.Coord]bool, opts Options) []grid.Coord {
	if max <= 0 {
		return nil
	}
	var window []grid.Coord
	seen := make(map[grid.Coord]bool)
	for i := from; i < len(order) && len(window) < max; i++ {
		c := order[i]
		if revealed[c] || seen[c] || c == opts.Start || c == opts.End {
			continue
		}
		seen[c] = true
		window = append(window, c)
	}
	return window
}
