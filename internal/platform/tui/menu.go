package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vmarchenko/rockfall/internal/cave"
	"github.com/vmarchenko/rockfall/internal/core"
	"github.com/vmarchenko/rockfall/internal/storage"
)

// CaveSelection is the outcome of the cave picker.
type CaveSelection struct {
	Cave       int
	Difficulty int
}

// MenuModel is the Bubble Tea model for the cave picker.
type MenuModel struct {
	cursor         int
	difficulty     int
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *CaveSelection
	openScoreboard bool
}

// NewMenuModel creates a new cave picker.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	cursor := cfg.Cave - 1
	if cursor < 0 || cursor >= cave.CaveCount() {
		cursor = 0
	}
	difficulty := cfg.Difficulty
	if difficulty < 1 || difficulty > 5 {
		difficulty = 1
	}

	return MenuModel{
		cursor:     cursor,
		difficulty: difficulty,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "tab" {
		m.openScoreboard = true
		return m, tea.Quit
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < cave.CaveCount()-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if m.difficulty > 1 {
			m.difficulty--
		}

	case MenuActionRight:
		if m.difficulty < 5 {
			m.difficulty++
		}

	case MenuActionSelect:
		m.selected = &CaveSelection{Cave: m.cursor + 1, Difficulty: m.difficulty}
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("  R O C K F A L L  ", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a cave", m.width))
	b.WriteString("\n\n")

	for i := 0; i < cave.CaveCount(); i++ {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		best := ""
		if m.store != nil {
			if high, err := m.store.HighScore(i + 1); err == nil && high > 0 {
				best = fmt.Sprintf("  (best %d)", high)
			}
		}

		line := fmt.Sprintf("%sCave %d: %s%s", cursor, i+1, cave.CaveName(i+1), best)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Difficulty: < %d >", m.difficulty), m.width))
	b.WriteString("\n\n")
	controls := "Up/Down: Cave  |  Left/Right: Difficulty  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the picked cave, or nil if none selected.
func (m MenuModel) Selected() *CaveSelection {
	return m.selected
}

// IsQuitting returns true if the user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if the user requested the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by
// resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu standalone.
type MenuResult struct {
	Selection       *CaveSelection
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the cave picker and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Selection: m.Selected(),
		Config:    m.Config(),
	}

	if m.WantsScoreboard() {
		result.WantsScoreboard = true
		return result, nil
	}

	if m.IsQuitting() || result.Selection == nil {
		result.Quit = true
	}

	return result, nil
}
