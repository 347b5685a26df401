package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vmarchenko/rockfall/internal/core"
)

// KeyMapper translates Bubble Tea key messages to controller buttons
// and meta actions. This centralizes key bindings and makes them
// testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a button press and meta action.
// Either result may be zero. isQuit reports a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (buttons core.Buttons, action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return 0, core.ActionQuit, true
	}

	switch key {
	case "w", "up", "k":
		return core.BtnUp, core.ActionNone, false
	case "d", "right", "l":
		return core.BtnRight, core.ActionNone, false
	case "s", "down", "j":
		return core.BtnDown, core.ActionNone, false
	case "a", "left", "h":
		return core.BtnLeft, core.ActionNone, false
	case "enter", " ":
		return core.BtnA, core.ActionConfirm, false
	case "b", "esc":
		return 0, core.ActionBack, false
	case "p":
		return 0, core.ActionPause, false
	case "r":
		return 0, core.ActionRestart, false
	}

	return 0, core.ActionNone, false
}

// MapKeyToFrame updates an input frame from a key message. Returns true
// if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	buttons, action, isQuit := km.MapKey(msg)
	frame.Press(buttons)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
