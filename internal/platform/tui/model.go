package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vmarchenko/rockfall/internal/core"
	"github.com/vmarchenko/rockfall/internal/game"
	"github.com/vmarchenko/rockfall/internal/registry"
	"github.com/vmarchenko/rockfall/internal/storage"
)

// snapshotter is implemented by games that can report a detailed run
// record for persistence.
type snapshotter interface {
	Snapshot() game.Snapshot
}

// GameModel is the Bubble Tea model that runs one game session.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	frame      core.InputFrame
	state      core.GameState
	acc        *tickAccumulator
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
	runSaved   bool
}

// NewGameModel creates a model for the given game.
func NewGameModel(g registry.Game, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	return GameModel{
		game:      g,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		frame:     core.NewInputFrame(),
		acc:       newTickAccumulator(cfg.TickMS),
		keyMapper: NewKeyMapper(),
	}
}

// Init starts the game and the frame loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return frameCmd(m.config.FrameRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The playfield is fixed size; only the outer buffer follows
		// the terminal.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen = core.NewScreen(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey buffers input until the next physics tick.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.frame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu from the end screen or pause overlay.
	if m.frame.Has(core.ActionBack) && (m.state.GameOver || m.state.Paused) {
		m.backToMenu = true
		return m, nil
	}

	return m, nil
}

// handleFrame advances the accumulator and runs at most one physics
// tick.
func (m GameModel) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if !m.acc.Advance(now) {
		return m, frameCmd(m.config.FrameRate)
	}

	if m.frame.Has(core.ActionRestart) && m.state.GameOver {
		m.runSaved = false
	}

	result := m.game.Step(m.frame)
	m.state = result.State

	if m.state.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	// Terminals deliver no key-release events, so held state lasts
	// exactly one tick.
	m.frame = core.NewInputFrame()

	return m, frameCmd(m.config.FrameRate)
}

// saveRun persists the finished attempt, best effort.
func (m *GameModel) saveRun() {
	if m.store == nil {
		return
	}
	sn, ok := m.game.(snapshotter)
	if !ok {
		return
	}
	s := sn.Snapshot()
	//nolint:errcheck // Best-effort save, session continues regardless
	m.store.SaveRun(storage.RunEntry{
		Cave:       m.config.Cave,
		Difficulty: m.config.Difficulty,
		Diamonds:   s.Diamonds,
		Score:      s.Score,
		Ticks:      s.Tick,
		Cleared:    s.State == game.StateCleared,
	})
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested the cave menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for one game session.
func Run(g registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewGameModel(g, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
