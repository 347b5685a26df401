package core

// RuntimeConfig is passed to a game on Reset. It carries everything the
// game needs to size its screen and select its content.
type RuntimeConfig struct {
	ScreenW    int
	ScreenH    int
	FrameRate  int // render frames per second
	TickMS     int // physics tick period in milliseconds
	Cave       int // 1-based cave id
	Difficulty int // 1..5
}

// GameState is the coarse per-session state the platform needs for its
// chrome: the score line, game-over handling and pause overlay.
type GameState struct {
	Score    int
	GameOver bool
	Won      bool
	Paused   bool
}

// StepResult is returned from every game step so the platform can react
// without inspecting game internals.
type StepResult struct {
	State   GameState
	Changed bool // frame needs a redraw
}
