package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pathviz/internal/config"
	"github.com/vovakirdan/tui-pathviz/internal/grid"
	"github.com/vovakirdan/tui-pathviz/internal/layout"
	"github.com/vovakirdan/tui-pathviz/internal/playback"
	"github.com/vovakirdan/tui-pathviz/internal/search"
	"github.com/vovakirdan/tui-pathviz/internal/storage"
)

// hudLines is the number of terminal rows reserved above/below the board.
const hudLines = 4

// runSignals collects the scheduler's outbound signals between ticks.
// The hooks write into it and handleTick drains it; everything runs on
// the Bubble Tea goroutine, so no locking is needed.
type runSignals struct {
	started  bool
	finished bool
	paused   bool
	canPause bool
}

// RunParams configures a visualizer session.
type RunParams struct {
	Config    config.Config
	Store     *storage.Store // may be nil; history is then disabled
	Layouts   *layout.Loader // destination for saved boards
	Algorithm string
	Speed     int
	TickRate  int
	ScreenW   int
	ScreenH   int
	Layout    *layout.Layout // optional initial board
}

// Model is the Bubble Tea model for the visualizer session.
type Model struct {
	board     *grid.Grid
	cursor    grid.Coord
	algos     []search.Info
	algoIdx   int
	speed     int
	cfg       config.Config
	store     *storage.Store
	layouts   *layout.Loader
	sched     *playback.Scheduler
	signals   *runSignals
	theme     *Theme
	keys      *KeyMapper
	history   *HistoryModel
	tickRate  int
	width     int
	height    int
	status    string
	lastRes   search.Result
	runBegan  time.Time
	runSaved  bool
	quitting  bool
	autoBoard bool // board was sized to the terminal, resize rebuilds it
}

// NewModel creates a visualizer model.
func NewModel(p RunParams) Model {
	if p.TickRate <= 0 {
		p.TickRate = 60
	}
	if p.Speed < playback.MinSpeed || p.Speed > playback.MaxSpeed {
		p.Speed = p.Config.Playback.DefaultSpeed
	}

	m := Model{
		algos:    search.List(),
		speed:    p.Speed,
		cfg:      p.Config,
		store:    p.Store,
		layouts:  p.Layouts,
		signals:  &runSignals{},
		theme:    NewTheme(p.Config.Theme),
		keys:     NewKeyMapper(),
		tickRate: p.TickRate,
		width:    p.ScreenW,
		height:   p.ScreenH,
		status:   "paint walls, then press enter to run",
	}

	for i, a := range m.algos {
		if a.Name == p.Algorithm {
			m.algoIdx = i
			break
		}
	}

	sig := m.signals
	m.sched = playback.NewScheduler(playback.Hooks{
		Started:  func() { sig.started = true },
		Finished: func() { sig.finished = true },
		PauseChanged: func(isPaused, canPause bool) {
			sig.paused = isPaused
			sig.canPause = canPause
		},
	})

	if p.Layout != nil {
		m.board = p.Layout.ToGrid()
	} else {
		rows, cols := p.Config.Grid.Rows, p.Config.Grid.Cols
		if rows <= 0 || cols <= 0 {
			rows, cols = boardSize(p.ScreenW, p.ScreenH)
			m.autoBoard = true
		}
		m.board = grid.New(rows, cols)
	}
	m.cursor = m.board.Start()

	return m
}

// boardSize derives board dimensions from the terminal size.
func boardSize(w, h int) (rows, cols int) {
	rows = h - hudLines - 1
	cols = (w - 1) / cellWidth
	if rows < grid.MinSize {
		rows = grid.MinSize
	}
	if cols < grid.MinSize {
		cols = grid.MinSize
	}
	return rows, cols
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// While the history screen is open it owns all input.
	if m.history != nil {
		return m.updateHistory(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// updateHistory delegates to the history screen until it closes.
func (m Model) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	newHistory, cmd := m.history.Update(msg)
	if h, ok := newHistory.(HistoryModel); ok {
		m.history = &h
	}
	if m.history.Quitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.history.GoingBack() {
		m.history = nil
		return m, tickCmd(m.tickRate)
	}
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case ActionMoveUp:
		m.moveCursor(-1, 0)
	case ActionMoveDown:
		m.moveCursor(1, 0)
	case ActionMoveLeft:
		m.moveCursor(0, -1)
	case ActionMoveRight:
		m.moveCursor(0, 1)

	case ActionToggleWall:
		if !m.sched.Active() {
			m.board.ToggleWall(m.cursor)
		}
	case ActionPlaceStart:
		if !m.sched.Active() && !m.board.SetStart(m.cursor) {
			m.status = "cannot place start here"
		}
	case ActionPlaceEnd:
		if !m.sched.Active() && !m.board.SetEnd(m.cursor) {
			m.status = "cannot place end here"
		}

	case ActionNextAlgorithm:
		if !m.sched.Active() {
			m.algoIdx = (m.algoIdx + 1) % len(m.algos)
		}
	case ActionPrevAlgorithm:
		if !m.sched.Active() {
			m.algoIdx = (m.algoIdx - 1 + len(m.algos)) % len(m.algos)
		}

	case ActionSpeedUp:
		if m.speed < playback.MaxSpeed {
			m.speed++
		}
	case ActionSpeedDown:
		if m.speed > playback.MinSpeed {
			m.speed--
		}

	case ActionRun:
		m.startRun()
	case ActionPauseResume:
		switch m.sched.State() {
		case playback.StateRunning:
			m.sched.Pause()
		case playback.StatePaused:
			m.sched.Resume()
		}
	case ActionStop:
		m.sched.Stop()
		if m.sched.State() == playback.StateStopped {
			m.status = "stopped"
		}

	case ActionClearWalls:
		if !m.sched.Active() {
			m.board.ClearWalls()
		}
	case ActionClearRun:
		if !m.sched.Active() {
			m.board.ClearRun()
			m.status = "cleared"
		}

	case ActionSaveLayout:
		m.saveLayout()

	case ActionHistory:
		if m.store != nil && !m.sched.Active() {
			h := NewHistoryModel(m.store, m.algos, m.width, m.height)
			m.history = &h
			return m, m.history.Init()
		}
	}

	return m, nil
}

func (m *Model) moveCursor(dr, dc int) {
	next := m.cursor.Add(dr, dc)
	if m.board.InBounds(next) {
		m.cursor = next
	}
}

// startRun executes the selected algorithm synchronously and hands the
// result to the scheduler. A no-op while an animation is in flight.
func (m *Model) startRun() {
	if m.sched.Active() {
		return
	}

	m.board.ClearRun()
	algo := m.algos[m.algoIdx]

	began := time.Now()
	res := search.Run(m.board, m.board.Start(), m.board.End(), algo.Name)
	m.lastRes = res
	m.runBegan = began
	m.runSaved = false

	m.sched.Start(res, playback.Options{
		Speed:   m.speed,
		Preview: m.cfg.Playback.FrontierPreview,
		Start:   m.board.Start(),
		End:     m.board.End(),
	})

	if res.Success {
		m.status = fmt.Sprintf("%s: visited %d cells, path length %d",
			algo.Title, len(res.VisitedInOrder), len(res.Path))
	} else {
		m.status = fmt.Sprintf("%s: visited %d cells, no path",
			algo.Title, len(res.VisitedInOrder))
	}
}

// saveLayout writes the current board to the layouts directory.
func (m *Model) saveLayout() {
	if m.layouts == nil {
		return
	}
	id := fmt.Sprintf("board-%s", time.Now().Format("20060102-150405"))
	l := layout.FromGrid(m.board, id, "Saved board")
	path, err := m.layouts.Save(l)
	if err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	m.status = fmt.Sprintf("saved %s", path)
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	// Auto-sized boards are rebuilt to fit the new terminal.
	// Note: this clears the painted walls, like starting fresh.
	if m.autoBoard && !m.sched.Active() {
		rows, cols := boardSize(msg.Width, msg.Height)
		if rows != m.board.Rows() || cols != m.board.Cols() {
			m.board = grid.New(rows, cols)
			m.cursor = m.board.Start()
		}
	}
	return m, nil
}

// handleTick advances the animation clock and applies due cell updates.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	interval := time.Second / time.Duration(m.tickRate)

	for _, u := range m.sched.Advance(interval) {
		m.board.SetKind(u.Coord, u.Kind)
	}

	if m.signals.finished {
		m.signals.finished = false
		m.status = "done - enter to run again, n to clear"
		m.recordRun()
	}
	if m.signals.started {
		m.signals.started = false
	}

	return m, tickCmd(m.tickRate)
}

// recordRun persists the finished run once per visualization.
func (m *Model) recordRun() {
	if m.store == nil || m.runSaved {
		return
	}
	//nolint:errcheck // Best-effort save, the session continues regardless
	m.store.SaveRun(storage.RunRecord{
		Algorithm:  m.algos[m.algoIdx].Name,
		Rows:       m.board.Rows(),
		Cols:       m.board.Cols(),
		Walls:      m.board.WallCount(),
		Visited:    len(m.lastRes.VisitedInOrder),
		PathLen:    len(m.lastRes.Path),
		Success:    m.lastRes.Success,
		DurationMs: time.Since(m.runBegan).Milliseconds(),
	})
	m.runSaved = true
}

// View renders the board with its HUD.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.history != nil {
		return m.history.View()
	}

	algo := m.algos[m.algoIdx]

	// The pause signals mirror the scheduler while a run is in flight;
	// terminal states come from the scheduler itself.
	stateLabel := m.sched.State().String()
	switch {
	case m.signals.paused:
		stateLabel = "paused"
	case m.signals.canPause:
		stateLabel = "running"
	}

	header := m.theme.hud.Render(fmt.Sprintf("pathviz - %s", algo.Title)) +
		m.theme.dim.Render(fmt.Sprintf("  speed %d/%d  [%s]", m.speed, playback.MaxSpeed, stateLabel))

	help := m.theme.dim.Render(
		"arrows move · space wall · s/e markers · tab algorithm · +/- speed · enter run · p pause · x stop · t history · q quit")

	return header + "\n" +
		m.theme.RenderBoard(m.board, m.cursor, !m.sched.Active()) + "\n" +
		m.theme.RenderLegend() + "\n" +
		m.theme.dim.Render(m.status) + "\n" +
		help
}

// Run starts the Bubble Tea program for a visualizer session.
func Run(p RunParams) error {
	model := NewModel(p)

	prog := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := prog.Run()
	return err
}
