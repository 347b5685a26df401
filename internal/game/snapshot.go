package game

// SessionState names the coarse phase of a run.
type SessionState string

const (
	StatePortal   SessionState = "portal"
	StatePlaying  SessionState = "playing"
	StatePaused   SessionState = "paused"
	StateGameOver SessionState = "game_over"
	StateCleared  SessionState = "cleared"
)

// Snapshot captures the observable game state for determinism testing
// and replay verification.
type Snapshot struct {
	Tick      uint64
	Cave      int
	Diamonds  int
	Required  int
	Score     int
	TicksLeft int
	ExitOpen  bool
	PlayerCol int
	PlayerRow int
	Sprites   int
	GridHash  uint64
	State     SessionState
}

// Snapshot returns the current snapshot. The grid hash folds every cell
// so two snapshots match only when the worlds are cell-for-cell equal.
func (g *Game) Snapshot() Snapshot {
	if g.world == nil {
		return Snapshot{State: StateGameOver}
	}

	st := g.world.Status()
	state := StatePlaying
	switch {
	case st.Cleared:
		state = StateCleared
	case st.Dead:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case st.PortalPending:
		state = StatePortal
	}

	col, row := -1, -1
	if p := g.world.Player(); p != nil {
		col, row = p.Col, p.Row
	}

	// FNV-1a over the raw grid cells.
	var hash uint64 = 14695981039346656037
	for y := 0; y < g.world.Grid.H; y++ {
		for x := 0; x < g.world.Grid.W; x++ {
			hash ^= uint64(g.world.Grid.At(x, y))
			hash *= 1099511628211
		}
	}

	return Snapshot{
		Tick:      st.Tick,
		Cave:      g.world.Info.ID,
		Diamonds:  st.Diamonds,
		Required:  st.DiamondsRequired,
		Score:     st.Score,
		TicksLeft: st.TicksLeft,
		ExitOpen:  st.ExitOpen,
		PlayerCol: col,
		PlayerRow: row,
		Sprites:   len(g.world.Sprites()),
		GridHash:  hash,
		State:     state,
	}
}
