package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/juan-jump/internal/audio"
	"github.com/vovakirdan/juan-jump/internal/core"
	"github.com/vovakirdan/juan-jump/internal/registry"
	"github.com/vovakirdan/juan-jump/internal/storage"
)

// Options are the collaborators a game session runs with. All are optional.
type Options struct {
	Store     *storage.Store
	Player    *audio.Player
	AllowBack bool // Esc/B on game over or pause leaves the game
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	player     *audio.Player
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	tilt       TiltStick
	keyMapper  *KeyMapper
	gameState  core.GameState
	allowBack  bool
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
// Games that persist scores get a keeper backed by the store.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	player := opts.Player
	if player == nil {
		player = audio.Silent()
	}

	if p, ok := game.(registry.Persistent); ok && opts.Store != nil {
		p.SetScoreKeeper(opts.Store.Keeper(game.ID()))
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		player:     player,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		tilt:       NewTiltStick(),
		keyMapper:  NewKeyMapper(),
		allowBack:  opts.AllowBack,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// gameState is set on the first tick (value receiver)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The world has a fixed logical size, so resizing only changes the projection
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame, &m.tilt) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.allowBack && m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, tea.Quit
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.tilt.Level()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	m.inputFrame.SetTilt(m.tilt.Sample(), 0)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.player.Play(result.Sounds...)

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	m.tilt.Tick()
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScore appends the finished game to the score history.
// Failures are logged; the game continues regardless.
func (m *Model) saveScore() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
		log.Warn("could not save score", "game", m.game.ID(), "score", m.gameState.Score, "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		log.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".juan", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		log.Warn("could not save screenshot", "error", err)
		return
	}
	log.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// GameState returns the state seen on the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

// PlayResult reports how a game session run from a menu ended.
type PlayResult struct {
	Config     core.RuntimeConfig
	BackToMenu bool
}

// RunFromMenu runs a game that may return to the menu.
func RunFromMenu(game registry.Game, cfg core.RuntimeConfig, opts Options) (PlayResult, error) {
	opts.AllowBack = true
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return PlayResult{Config: cfg}, err
	}

	m, ok := final.(Model)
	if !ok {
		return PlayResult{Config: cfg}, nil
	}
	return PlayResult{Config: m.config, BackToMenu: m.backToMenu}, nil
}
