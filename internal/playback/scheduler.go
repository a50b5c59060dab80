package playback

import (
	"time"

	"github.com/vovakirdan/tui-pathviz/internal/search"
)

// State is the scheduler's lifecycle state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateCompleted
	StateStopped
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateCompleted:
		return "completed"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Hooks are the scheduler's outbound signals. Any hook may be nil.
type Hooks struct {
	// Started fires when a new run begins.
	Started func()

	// Finished fires on the transition to Completed (not Stopped).
	Finished func()

	// PauseChanged fires whenever pause/resume/stop/completion changes
	// the pause state. canPause is true only while running.
	PauseChanged func(isPaused, canPause bool)
}

// Scheduler drives a compiled plan as elapsed time is fed in through
// Advance. It is the single owner of the animation cursor: Pause freezes
// it, Resume continues with the paused span excised, and Stop abandons
// the rest of the plan while leaving already-applied updates in place.
//
// The scheduler is designed for a single-threaded cooperative loop (a
// Bubble Tea tick); it performs no timing of its own.
type Scheduler struct {
	hooks   Hooks
	plan    Plan
	state   State
	elapsed time.Duration
	next    int
}

// NewScheduler creates an idle scheduler with the given hooks.
func NewScheduler(hooks Hooks) *Scheduler {
	return &Scheduler{hooks: hooks}
}

// State returns the current lifecycle state.
func (s *Scheduler) State() State {
	return s.state
}

// CanPause reports whether Pause would have an effect.
func (s *Scheduler) CanPause() bool {
	return s.state == StateRunning
}

// Active reports whether an animation is in flight (running or paused).
func (s *Scheduler) Active() bool {
	return s.state == StateRunning || s.state == StatePaused
}

// Progress returns the number of frames fired and the total frame count
// of the current plan.
func (s *Scheduler) Progress() (fired, total int) {
	return s.next, len(s.plan.Frames)
}

// Start compiles the result into a plan and begins phase 1 from index 0.
// It is a no-op while a run is already in flight; Completed and Stopped
// are re-entered directly into Running.
func (s *Scheduler) Start(res search.Result, opts Options) {
	if s.Active() {
		return
	}

	s.plan = Build(res, opts)
	s.state = StateRunning
	s.elapsed = 0
	s.next = 0

	if s.hooks.Started != nil {
		s.hooks.Started()
	}
	s.signalPause()
}

// Advance feeds elapsed wall time into the scheduler and returns the cell
// updates that became due, in plan order. Outside Running it returns nil,
// so paused wall time never counts against the animation's schedule.
func (s *Scheduler) Advance(dt time.Duration) []CellUpdate {
	if s.state != StateRunning {
		return nil
	}

	s.elapsed += dt

	var due []CellUpdate
	for s.next < len(s.plan.Frames) && s.plan.Frames[s.next].At <= s.elapsed {
		due = append(due, s.plan.Frames[s.next].Updates...)
		s.next++
	}

	if s.next == len(s.plan.Frames) && s.elapsed >= s.plan.Total {
		s.state = StateCompleted
		if s.hooks.Finished != nil {
			s.hooks.Finished()
		}
		s.signalPause()
	}

	return due
}

// Pause freezes the animation at the current reveal index. Valid only
// while running; otherwise a no-op.
func (s *Scheduler) Pause() {
	if s.state != StateRunning {
		return
	}
	s.state = StatePaused
	s.signalPause()
}

// Resume continues a paused animation. Remaining frame timings are
// preserved relative to the frozen elapsed clock, so only the paused
// duration is excised. Valid only while paused; otherwise a no-op.
func (s *Scheduler) Resume() {
	if s.state != StatePaused {
		return
	}
	s.state = StateRunning
	s.signalPause()
}

// Stop abandons all pending frames immediately and freezes the grid's
// current visual state. Stopped is terminal until a new run begins.
func (s *Scheduler) Stop() {
	if !s.Active() {
		return
	}
	s.state = StateStopped
	s.next = len(s.plan.Frames)
	s.signalPause()
}

func (s *Scheduler) signalPause() {
	if s.hooks.PauseChanged != nil {
		s.hooks.PauseChanged(s.state == StatePaused, s.state == StateRunning)
	}
}
