package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// Model is the Bubble Tea model for a Breakout session.
type Model struct {
	game     *breakout.Game
	screen   *core.Screen
	renderer *Renderer
	input    *InputState
	step     *core.FixedStep
	logger   *log.Logger

	keys KeyMap
	help help.Model

	last     time.Time
	frame    breakout.Frame
	paused   bool
	quitting bool
}

// NewModel creates a model around game. The screen starts at the size in
// rt and follows window size messages. A nil lg renders for the local
// terminal; a nil logger discards.
func NewModel(game *breakout.Game, rt core.RuntimeConfig, lg *lipgloss.Renderer, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:     game,
		screen:   core.NewScreen(rt.ScreenW, max(rt.ScreenH-1, 0)),
		renderer: NewRenderer(lg),
		input:    NewInputState(game.Config().Input.HoldTicks),
		step:     core.NewFixedStep(rt.TickRate),
		logger:   logger,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		frame:    game.Frame(),
	}
	m.help.Width = rt.ScreenW
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started", "game", m.game.ID(), "title", m.game.Title())
	return tickCmd(m.step.Step())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("game quit", "score", m.frame.Score, "level", m.frame.Level)
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		m.input.Clear()
		m.step.Reset()

	case key.Matches(msg, m.keys.Restart):
		m.game.Reset()
		m.input.Clear()
		m.frame = m.game.Frame()
		m.logger.Info("game restarted")

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Left):
		m.input.Press(core.DirLeft)

	case key.Matches(msg, m.keys.Right):
		m.input.Press(core.DirRight)
	}

	return m, nil
}

// handleMouse maps presses and drags on either half of the field to a held
// direction.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	v := NewViewport(m.screen.Width(), m.screen.Height(), m.game.Config().Field)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.input.MouseDown(v.DirectionAt(msg.X))
		}
	case tea.MouseActionMotion:
		m.input.MouseMove(v.DirectionAt(msg.X))
	case tea.MouseActionRelease:
		m.input.MouseUp()
	}
	return m, nil
}

// handleTick runs as many fixed simulation steps as real time allows.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := m.step.Step()
	if !m.last.IsZero() {
		elapsed = now.Sub(m.last)
	}
	m.last = now

	if m.paused {
		return m, tickCmd(m.step.Step())
	}

	for range m.step.Advance(elapsed) {
		m.frame = m.game.Tick(m.input.Input())
		m.input.Advance()
		m.logEvents(m.frame)
	}

	return m, tickCmd(m.step.Step())
}

// logEvents reports game transitions.
func (m Model) logEvents(f breakout.Frame) {
	switch {
	case f.Events.Has(breakout.EventGameOver):
		m.logger.Info("game over", "tick", f.Tick)
	case f.Events.Has(breakout.EventLevelCleared):
		m.logger.Info("level cleared", "level", f.Level, "score", f.Score)
	case f.Events.Has(breakout.EventLifeLost):
		m.logger.Debug("life lost", "lives", f.Lives)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Draw(m.screen, m.frame, m.game.Config().Field, m.paused)
	return m.renderer.Render(m.screen) + "\n" + m.help.View(m.keys)
}

// Frame returns the last simulated frame.
func (m Model) Frame() breakout.Frame {
	return m.frame
}

// Run starts a local Bubble Tea program for game.
func Run(game *breakout.Game, rt core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(game, rt, nil, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: run: %w", err)
	}
	return nil
}
