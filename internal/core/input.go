// Package core provides fundamental types shared by the game and the
// platform layer: the screen buffer, the input model and the runtime
// configuration. It has no external dependencies (especially no Bubble
// Tea) so game logic stays pure and testable.
package core

import "github.com/vmarchenko/rockfall/internal/cave"

// Buttons is the 8-button controller state maintained by the platform
// keymap. The engine reads it once per tick and derives at most one
// movement direction.
type Buttons uint8

const (
	BtnUp Buttons = 1 << iota
	BtnRight
	BtnDown
	BtnLeft
	BtnA
	BtnB
	BtnStart
	BtnSelect
)

// Has reports whether every button in mask is held.
func (b Buttons) Has(mask Buttons) bool {
	return b&mask == mask
}

// Direction resolves the held directional buttons to a single movement
// intent. When several are asserted the priority is up > right > down >
// left.
func (b Buttons) Direction() cave.Direction {
	switch {
	case b.Has(BtnUp):
		return cave.DirUp
	case b.Has(BtnRight):
		return cave.DirRight
	case b.Has(BtnDown):
		return cave.DirDown
	case b.Has(BtnLeft):
		return cave.DirLeft
	}
	return cave.DirNone
}

// Action is a semantic meta action, abstracted from physical key presses.
// Movement travels through Buttons; actions cover the session controls.
type Action int

const (
	ActionNone Action = iota
	ActionPause
	ActionRestart
	ActionConfirm
	ActionBack
	ActionQuit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// InputFrame is the complete input state for one simulation tick: the
// held button mask plus any meta actions triggered since the last tick.
type InputFrame struct {
	Buttons Buttons
	actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{actions: make(map[Action]bool)}
}

// Press adds buttons to the held mask.
func (f *InputFrame) Press(b Buttons) {
	f.Buttons |= b
}

// Release removes buttons from the held mask.
func (f *InputFrame) Release(b Buttons) {
	f.Buttons &^= b
}

// Set marks a meta action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.actions == nil {
		f.actions = make(map[Action]bool)
	}
	f.actions[a] = true
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.actions[a]
}

// ClearActions resets the one-shot meta actions, keeping held buttons.
// Called by the platform after every physics tick.
func (f *InputFrame) ClearActions() {
	for k := range f.actions {
		delete(f.actions, k)
	}
}

// Clone returns a copy of the frame.
func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	c.Buttons = f.Buttons
	for k, v := range f.actions {
		c.actions[k] = v
	}
	return c
}
