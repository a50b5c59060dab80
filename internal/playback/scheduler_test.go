package playback

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pathviz/internal/grid"
)

// drain advances in fixed ticks until the scheduler leaves Running,
// collecting every returned update. The step cap guards against a
// scheduler that never completes.
func drain(t *testing.T, s *Scheduler, tick time.Duration) []CellUpdate {
	t.Helper()

	var all []CellUpdate
	for i := 0; i < 100000; i++ {
		all = append(all, s.Advance(tick)...)
		if s.State() != StateRunning {
			return all
		}
	}
	t.Fatal("scheduler never completed")
	return nil
}

func TestSchedulerLifecycle(t *testing.T) {
	var started, finished int
	s := NewScheduler(Hooks{
		Started:  func() { started++ },
		Finished: func() { finished++ },
	})

	assert.Equal(t, StateIdle, s.State())
	assert.False(t, s.Active())

	res, opts := rowResult(6)
	s.Start(res, opts)

	assert.Equal(t, StateRunning, s.State())
	assert.True(t, s.Active())
	assert.True(t, s.CanPause())
	assert.Equal(t, 1, started)
	assert.Equal(t, 0, finished)

	drain(t, s, 10*time.Millisecond)

	assert.Equal(t, StateCompleted, s.State())
	assert.False(t, s.Active())
	assert.Equal(t, 1, started)
	assert.Equal(t, 1, finished)

	fired, total := s.Progress()
	assert.Equal(t, total, fired, "all frames fired")
}

func TestAdvanceDeliversEveryUpdateExactlyOnce(t *testing.T) {
	s := NewScheduler(Hooks{})
	res, opts := rowResult(8)
	opts.Preview = 2
	s.Start(res, opts)

	all := drain(t, s, 7*time.Millisecond) // Tick not aligned to the step delay

	plan := Build(res, opts)
	var want []CellUpdate
	for _, f := range plan.Frames {
		want = append(want, f.Updates...)
	}
	assert.Equal(t, want, all, "updates arrive complete and in plan order")
}

func TestAdvanceOutsideRunningReturnsNil(t *testing.T) {
	s := NewScheduler(Hooks{})
	assert.Nil(t, s.Advance(time.Second), "idle scheduler ignores time")

	res, opts := rowResult(6)
	s.Start(res, opts)
	s.Pause()
	assert.Nil(t, s.Advance(time.Hour), "paused scheduler ignores time")
	assert.Equal(t, StatePaused, s.State())
}

func TestPauseResumePreservesSchedule(t *testing.T) {
	res, opts := rowResult(6)
	delay := StepDelay(opts.Speed)

	run := func(pauseMid bool) []CellUpdate {
		s := NewScheduler(Hooks{})
		s.Start(res, opts)

		var all []CellUpdate
		all = append(all, s.Advance(delay)...)
		if pauseMid {
			s.Pause()
			// Wall time spent paused must not count against the schedule.
			assert.Nil(t, s.Advance(time.Hour))
			s.Resume()
		}
		all = append(all, drain(t, s, delay)...)
		return all
	}

	assert.Equal(t, run(false), run(true), "pause/resume changes nothing but wall time")
}

func TestStopFreezesRevealedState(t *testing.T) {
	s := NewScheduler(Hooks{})
	res, opts := rowResult(10)
	delay := StepDelay(opts.Speed)
	s.Start(res, opts)

	// Reveal exactly three visited cells, then stop.
	got := s.Advance(3 * delay)
	require.Len(t, got, 3)
	for _, u := range got {
		assert.Equal(t, grid.KindVisited, u.Kind)
	}

	s.Stop()
	assert.Equal(t, StateStopped, s.State())
	assert.False(t, s.Active())

	// Nothing further arrives, no matter how much time passes.
	assert.Nil(t, s.Advance(time.Hour))

	fired, total := s.Progress()
	assert.Equal(t, total, fired, "remaining frames abandoned")
}

func TestStopDoesNotFireFinished(t *testing.T) {
	var finished int
	s := NewScheduler(Hooks{Finished: func() { finished++ }})

	res, opts := rowResult(6)
	s.Start(res, opts)
	s.Advance(StepDelay(opts.Speed))
	s.Stop()
	s.Advance(time.Hour)

	assert.Equal(t, 0, finished)
}

func TestInvalidTransitionsAreNoOps(t *testing.T) {
	s := NewScheduler(Hooks{})

	// Nothing to pause, resume, or stop while idle.
	s.Pause()
	s.Resume()
	s.Stop()
	assert.Equal(t, StateIdle, s.State())

	res, opts := rowResult(6)
	s.Start(res, opts)

	// Resume while running is a no-op.
	s.Resume()
	assert.Equal(t, StateRunning, s.State())

	// Start while a run is in flight is ignored.
	firedBefore, totalBefore := s.Progress()
	s.Start(res, opts)
	fired, total := s.Progress()
	assert.Equal(t, firedBefore, fired)
	assert.Equal(t, totalBefore, total)

	// Pause while paused stays paused.
	s.Pause()
	s.Pause()
	assert.Equal(t, StatePaused, s.State())
}

func TestRestartAfterTerminalStates(t *testing.T) {
	res, opts := rowResult(6)

	for _, terminal := range []func(s *Scheduler){
		func(s *Scheduler) { drain(t, s, 50*time.Millisecond) }, // to Completed
		func(s *Scheduler) { s.Stop() },                         // to Stopped
	} {
		s := NewScheduler(Hooks{})
		s.Start(res, opts)
		terminal(s)
		require.False(t, s.Active())

		s.Start(res, opts)
		assert.Equal(t, StateRunning, s.State(), "terminal states accept a new run")
	}
}

func TestPauseChangedSignals(t *testing.T) {
	type signal struct{ paused, canPause bool }
	var signals []signal
	s := NewScheduler(Hooks{
		PauseChanged: func(isPaused, canPause bool) {
			signals = append(signals, signal{isPaused, canPause})
		},
	})

	res, opts := rowResult(6)
	s.Start(res, opts)
	s.Pause()
	s.Resume()
	s.Stop()

	assert.Equal(t, []signal{
		{false, true},  // started
		{true, false},  // paused
		{false, true},  // resumed
		{false, false}, // stopped
	}, signals)
}
