package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crawler/internal/config"
	"github.com/vovakirdan/tui-crawler/internal/core"
	"github.com/vovakirdan/tui-crawler/internal/registry"
	"github.com/vovakirdan/tui-crawler/internal/storage"
)

// defaultHoldTicks is used when the runtime config leaves HoldTicks unset.
const defaultHoldTicks = 9

// GameModel is the Bubble Tea model for running a dungeon. It is used on its
// own by the play command and inside SessionModel over SSH.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	hold       *core.HoldTracker
	pointer    *PointerTracker
	keyMapper  *KeyMapper
	gameState  core.GameState
	ticks      uint64 // ticks in the current run
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current run has been recorded
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	holdTicks := cfg.HoldTicks
	if holdTicks <= 0 {
		holdTicks = defaultHoldTicks
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		hold:       core.NewHoldTracker(holdTicks),
		pointer:    &PointerTracker{},
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.pointer.Apply(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame, m.hold) {
		m.recordRun(core.OutcomeQuit)
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu only while paused or after the run ended
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.recordRun(core.OutcomeQuit)
		m.backToMenu = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}

	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	m.hold.Apply(&m.inputFrame)

	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// A restart from the game over screen begins a new run
	if wasOver && !m.gameState.GameOver {
		m.runSaved = false
		m.ticks = 0
		m.hold.Release()
	}
	if !m.gameState.Paused && !m.gameState.GameOver {
		m.ticks++
	}

	if m.gameState.GameOver {
		m.recordRun(m.gameState.Outcome)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordRun saves the score and run summary once per run. Failures are
// logged and otherwise ignored.
func (m *GameModel) recordRun(outcome core.Outcome) {
	if m.runSaved || m.ticks == 0 {
		return
	}
	m.runSaved = true
	if m.store == nil {
		return
	}

	gameID := m.game.ID()
	state := m.game.State()
	if state.Score > 0 {
		if _, err := m.store.SaveScore(gameID, state.Score); err != nil {
			log.Warn("could not save score", "game", gameID, "error", err)
		}
	}

	reporter, ok := m.game.(registry.RunReporter)
	if !ok {
		return
	}
	rate := m.config.TickRate
	if rate <= 0 {
		rate = 60
	}
	duration := time.Duration(m.ticks) * time.Second / time.Duration(rate)
	run := storage.NewRun(gameID, reporter.RunStats(), outcome, duration)
	if _, err := m.store.SaveRun(run); err != nil {
		log.Warn("could not save run", "game", gameID, "error", err)
		return
	}
	log.Info("run saved", "game", gameID, "run", run.RunID, "outcome", run.Outcome, "coins", run.Coins)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := config.UserPath("screenshots")
	if dir == "" {
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		log.Warn("could not save screenshot", "error", err)
		return
	}
	log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.gameState.Paused {
		m.drawHelp()
	}
	return RenderScreen(m.screen)
}

// drawHelp writes the short key help on the bottom row.
func (m GameModel) drawHelp() {
	bindings := m.keyMapper.Keys().ShortHelp()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	line := strings.Join(parts, " • ")
	x := max(0, (m.screen.Width()-len([]rune(line)))/2)
	m.screen.DrawTextColored(x, m.screen.Height()-1, line, core.ColorGray)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // pointer hover aims the knife
	)

	_, err := p.Run()
	return err
}
