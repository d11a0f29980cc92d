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
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/torus-snake/internal/config"
	"github.com/vovakirdan/torus-snake/internal/core"
	"github.com/vovakirdan/torus-snake/internal/games/snake"
)

// Model is the Bubble Tea model hosting one snake game.
type Model struct {
	game      *snake.Game
	palette   config.Palette
	screen    *core.Screen
	layout    Layout
	keys      *KeyMapper
	help      help.Model
	logger    *log.Logger
	config    core.RuntimeConfig
	shotDir   string
	lastFrame time.Time
	lastState snake.RunState
	quitting  bool
}

// NewModel creates a model for game. The last screen row is kept for the
// key help line.
func NewModel(game *snake.Game, gameCfg config.SnakeConfig, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:      game,
		palette:   gameCfg.Palette,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		layout:    NewLayout(game.Grid(), gameCfg.Render.CellSize, cfg.ScreenW),
		keys:      NewKeyMapper(DefaultKeyMap()),
		help:      h,
		logger:    logger,
		config:    cfg,
		lastState: game.RunState(),
	}
}

// WithScreenshotDir enables ctrl+s screenshots into dir.
func (m Model) WithScreenshotDir(dir string) Model {
	m.shotDir = dir
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("session started", "grid", fmt.Sprintf("%dx%d", m.game.Grid().W, m.game.Grid().H))
	return tickCmd(m.config.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey forwards bound keys to the game as press events.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	ev, ok, quit := m.keys.MapKey(msg)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	if ok {
		m.game.OnInput(ev)
		m = m.observe()
	}
	return m, nil
}

// handleResize refits the screen buffer. The game keeps running; only the
// layout moves.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-1)
	m.layout = NewLayout(m.game.Grid(), m.layout.CellSize, msg.Width)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the game by the wall time since the previous frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var dt float64
	if !m.lastFrame.IsZero() {
		dt = now.Sub(m.lastFrame).Seconds()
	}
	m.lastFrame = now

	m.game.OnTick(dt)
	m = m.observe()

	return m, tickCmd(m.config.FPS)
}

// observe logs run state transitions.
func (m Model) observe() Model {
	state := m.game.RunState()
	if state == m.lastState {
		return m
	}

	switch state {
	case snake.StateGameOver:
		m.logger.Info("game over", "length", m.game.Growth()+1, "ticks", m.game.Ticks())
		m.logger.Debug("final state", "snapshot", m.game.DebugState())
	case snake.StatePaused:
		m.logger.Debug("paused", "ticks", m.game.Ticks())
	case snake.StateRunning:
		if m.lastState == snake.StateGameOver {
			m.logger.Info("new round")
		} else {
			m.logger.Debug("resumed", "ticks", m.game.Ticks())
		}
	}
	m.lastState = state
	return m
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() {
	if m.shotDir == "" {
		return
	}
	DrawFrame(m.screen, m.layout, m.game, m.palette)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	name := fmt.Sprintf("snake_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(m.shotDir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawFrame(m.screen, m.layout, m.game, m.palette)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys.Keys())
}

// Run starts a local Bubble Tea program for game.
func Run(game *snake.Game, gameCfg config.SnakeConfig, cfg core.RuntimeConfig, logger *log.Logger, shotDir string) error {
	model := NewModel(game, gameCfg, cfg, logger).WithScreenshotDir(shotDir)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
