package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-xenzia/internal/core"
	"github.com/vovakirdan/snake-xenzia/internal/games/snake"
)

// helpHeight is the number of terminal lines reserved below the game screen.
const helpHeight = 1

// Model is the Bubble Tea model for one play session.
// It is the scheduler and input collaborator around a single engine:
// every engine call happens on the Bubble Tea event loop, so calls never overlap.
type Model struct {
	game     *snake.Game
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	swipe    *SwipeRecognizer
	logger   *log.Logger
	tickGen  int  // current tick loop; stale TickMsgs are dropped
	paused   bool // tick source stopped by the player
	quitting bool
}

// NewModel creates a new Bubble Tea model around the given engine.
func NewModel(game *snake.Game, cfg core.RuntimeConfig, swipeThreshold int, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(0, cfg.ScreenH-helpHeight)),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		swipe:  NewSwipeRecognizer(swipeThreshold),
		logger: logger,
	}
}

// Init initializes the model. The game waits in the idle phase until started.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("Snake Xenzia")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleAction(m.swipe.HandleMouse(msg))

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screen) {
		m.saveScreenshot()
		return m, nil
	}
	return m.handleAction(m.keys.MapKey(msg))
}

// handleAction applies a semantic action to the engine or the tick source.
func (m Model) handleAction(action core.Action) (tea.Model, tea.Cmd) {
	switch {
	case action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case action.IsDirection():
		if !m.paused {
			m.game.RequestDirection(directionFor(action))
		}

	case action == core.ActionStart:
		if m.game.Phase() != snake.PhaseRunning {
			m.game.StartGame()
			m.paused = false
			m.logger.Debug("game started", "best", m.game.HighScore())
			return m, m.restartTicks()
		}

	case action == core.ActionPause:
		if m.game.Phase() != snake.PhaseRunning {
			return m, nil
		}
		m.paused = !m.paused
		if m.paused {
			// Invalidate the tick already in flight.
			m.tickGen++
			return m, nil
		}
		return m, m.restartTicks()
	}

	return m, nil
}

// restartTicks starts a new tick loop, orphaning any earlier one.
func (m *Model) restartTicks() tea.Cmd {
	m.tickGen++
	return tickCmd(m.tickGen)
}

// handleResize processes window resize events.
// The game keeps running; only the screen buffer changes size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, max(0, msg.Height-helpHeight))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the engine once and re-arms the tick while running.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.tickGen || m.paused || m.game.Phase() != snake.PhaseRunning {
		return m, nil
	}

	res := m.game.Tick()
	if res.NewHighScore {
		m.logger.Debug("new high score", "score", m.game.HighScore())
	}
	if res.Collision != snake.CollisionNone {
		m.logger.Info("game over",
			"collision", res.Collision.String(),
			"score", m.game.Score(),
			"best", m.game.HighScore(),
		)
		m.logger.Debug("final state", "state", m.game.DebugState())
		return m, nil
	}

	return m, tickCmd(m.tickGen)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	snake.Render(m.screen, m.game.Snapshot())

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", snake.GameID, timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snake.Render(m.screen, m.game.Snapshot())
	if m.paused {
		snake.RenderOverlay(m.screen, "Paused", "Press P to continue")
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Paused reports whether the player has stopped the tick source.
func (m Model) Paused() bool {
	return m.paused
}

// Run starts the Bubble Tea program for the given engine.
func Run(game *snake.Game, cfg core.RuntimeConfig, swipeThreshold int, logger *log.Logger) error {
	model := NewModel(game, cfg, swipeThreshold, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse drags act as swipes
	)

	_, err := p.Run()
	return err
}
