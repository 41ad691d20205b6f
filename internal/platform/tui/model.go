package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/render"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Options configure a Model. Engine is required; nil fields get defaults.
type Options struct {
	Engine    *snake.Engine
	Config    config.SnakeConfig
	Runtime   core.RuntimeConfig
	Scheduler Scheduler
	Logger    *log.Logger
}

// Model is the Bubble Tea model for the game. It owns the engine,
// the renderer and the tick schedule.
type Model struct {
	engine  *snake.Engine
	board   *render.Board
	painter *ScreenPainter
	screen  *core.Screen
	sched   Scheduler
	keys    *KeyMapper
	setup   Setup
	logger  *log.Logger
	runLog  *log.Logger

	width     int
	height    int
	lastScore int
	played    bool
	quitting  bool
}

// NewModel creates a model showing the setup screen.
func NewModel(opts Options) Model {
	if opts.Scheduler == nil {
		opts.Scheduler = TeaScheduler{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	rt := opts.Runtime
	if rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		def := core.DefaultConfig()
		rt.ScreenW, rt.ScreenH = def.ScreenW, def.ScreenH
	}

	setup := NewSetup(opts.Config)
	return Model{
		engine:  opts.Engine,
		board:   render.NewBoard(setup.Color()),
		painter: NewScreenPainter(),
		screen:  core.NewScreen(rt.ScreenW, rt.ScreenH),
		sched:   opts.Scheduler,
		keys:    NewKeyMapper(),
		setup:   setup,
		logger:  opts.Logger,
		runLog:  opts.Logger,
		width:   rt.ScreenW,
		height:  rt.ScreenH,
	}
}

// Init waits for the player on the setup screen.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.engine.State() == snake.StateInit {
		switch m.setup.HandleKey(msg) {
		case SetupStart:
			return m.start()
		case SetupQuit:
			return m.quit()
		}
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		return m.quit()
	}
	if !action.IsDirectional() {
		return m, nil
	}
	if dir, ok := snake.DirectionFor(action); ok {
		m.engine.SetDirection(dir)
	}
	return m, nil
}

// start leaves the setup screen and arms the first tick.
func (m Model) start() (tea.Model, tea.Cmd) {
	if !m.engine.Start(m.setup.Interval()) {
		return m, nil
	}

	m.board.SnakeColor = m.setup.Color()
	m.runLog = m.logger.With("run", uuid.NewString())
	m.runLog.Info("run started",
		"color", m.setup.ColorName(),
		"interval", m.engine.Interval(),
	)
	return m, m.sched.Schedule(m.engine.Interval())
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.logger.Debug("quit", "state", m.engine.State())
	m.quitting = true
	return m, tea.Quit
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the engine once and re-arms the timer for the
// interval the engine asks for.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	step := m.engine.Advance()

	if step.Scored {
		m.runLog.Debug("prey eaten", "score", m.engine.Score())
	}
	if step.Collided {
		m.lastScore = m.engine.Score()
		m.played = true
		m.runLog.Info("collision", "score", m.lastScore)
	}
	if step.Reset {
		m.runLog.Info("reset", "score", m.lastScore)
		m.runLog = m.logger
		return m, nil
	}
	if step.Next <= 0 {
		return m, nil
	}
	return m, m.sched.Schedule(step.Next)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.engine.State() == snake.StateInit {
		note := ""
		if m.played {
			note = fmt.Sprintf("Last score: %d", m.lastScore)
		}
		return m.setup.View(m.width, m.height, note)
	}

	m.board.Render(m.engine.Snapshot(), m.screen)
	return m.painter.Paint(m.screen)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	if opts.Engine == nil {
		return fmt.Errorf("tui: engine is required")
	}

	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
