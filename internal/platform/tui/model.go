package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blocks"
	"github.com/vovakirdan/blockfall/internal/platform/canvas"
)

// Model is the Bubble Tea model hosting one blocks engine.
type Model struct {
	engine *blocks.Engine
	canvas *canvas.Canvas
	status *Status
	screen *core.Screen
	config core.RuntimeConfig
	keys   KeyMap
	help   help.Model
	log    *log.Logger

	gen      int // current tick schedule
	quitting bool
}

// Option customises a Model.
type Option func(*Model)

// WithGrid paints dots in empty field cells.
func WithGrid(on bool) Option {
	return func(m *Model) {
		m.canvas.SetGrid(on)
	}
}

// NewModel creates the engine, its canvas and status sink, and the model
// hosting them. A zero seed picks a time-based one.
func NewModel(opts blocks.Options, cfg core.RuntimeConfig, logger *log.Logger, options ...Option) (Model, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cv := canvas.New(opts.Cols(), opts.Rows())
	status := &Status{}
	engine, err := blocks.New(opts, cv, status)
	if err != nil {
		return Model{}, err
	}
	engine.SetLogger(logger)
	engine.Seed(cfg.Seed)

	m := Model{
		engine: engine,
		canvas: cv,
		status: status,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		log:    logger,
	}
	for _, opt := range options {
		opt(&m)
	}
	return m, nil
}

// Engine returns the hosted engine.
func (m Model) Engine() *blocks.Engine {
	return m.engine
}

// Init starts the first game and the gravity schedule.
func (m Model) Init() tea.Cmd {
	m.engine.Start()
	return tickCmd(m.gen, m.engine.FallInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil

	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionPause:
		if !m.engine.TogglePause() {
			return m, nil
		}
		// Drop the pending tick; resuming starts a fresh schedule.
		m.gen++
		if m.engine.Paused() {
			return m, nil
		}
		return m, tickCmd(m.gen, m.engine.FallInterval())

	case core.ActionRestart:
		if !m.engine.Handle(action) {
			return m, nil
		}
		m.gen++
		return m, tickCmd(m.gen, m.engine.FallInterval())
	}

	m.engine.Handle(action)
	return m, nil
}

// handleResize processes window resize events. The field keeps its size;
// only the layout around it changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one gravity step and schedules the next one at the
// engine's current interval. Ticking stops at game over.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen {
		return m, nil
	}

	res := m.engine.Tick()
	if res.GameOver || m.engine.Phase() == blocks.PhaseGameOver {
		return m, nil
	}
	if m.engine.Paused() {
		return m, nil
	}
	return m, tickCmd(m.gen, m.engine.FallInterval())
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	dir := filepath.Join(os.Getenv("HOME"), ".blockfall", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("blockfall_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot", "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// draw paints the HUD, the field and any overlay onto the screen buffer.
func (m *Model) draw() {
	s := m.screen
	s.Clear()

	fw, fh := m.canvas.Size()
	if s.Width() < fw || s.Height() < fh+1 {
		s.DrawTextCentered(s.Height()/2, fmt.Sprintf("Terminal too small: need %dx%d", fw, fh+2))
		return
	}

	x := core.Clamp((s.Width()-fw)/2, 0, s.Width()-fw)
	y := core.Clamp((s.Height()-fh-1)/2, 0, s.Height()-fh-1)

	hud := m.status.Line()
	if m.engine.Paused() {
		hud += "  [paused]"
	}
	s.DrawText(x, y, hud)
	m.canvas.Draw(s, x, y+1)

	if m.status.Over {
		m.drawDialog(m.status.GameOverText(), "r: restart  q: quit")
	} else if m.engine.Paused() {
		m.drawDialog([]string{"Paused"}, "p: resume")
	}
}

// drawDialog draws a framed message box in the middle of the screen.
func (m *Model) drawDialog(lines []string, footer string) {
	s := m.screen
	w := len([]rune(footer))
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	w += 4
	h := len(lines) + 4

	r := core.NewRect((s.Width()-w)/2, (s.Height()-h)/2, w, h)
	s.DrawRect(r, ' ')
	s.DrawBox(r)
	for i, l := range lines {
		s.DrawTextCentered(r.Y+1+i, l)
	}
	s.DrawTextCentered(r.Bottom()-2, footer)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		helpStyle.Render(m.help.View(m.keys)),
	)
}

// Run starts the Bubble Tea program for a new game.
func Run(opts blocks.Options, cfg core.RuntimeConfig, logger *log.Logger, options ...Option) error {
	model, err := NewModel(opts, cfg, logger, options...)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
