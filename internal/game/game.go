// Package game adapts the cave core to the arcade platform: it owns a
// live world, maps controller input to movement intents, and paints the
// playfield plus HUD into the screen buffer.
package game

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vmarchenko/rockfall/internal/cave"
	"github.com/vmarchenko/rockfall/internal/core"
	"github.com/vmarchenko/rockfall/internal/registry"
	"github.com/vmarchenko/rockfall/internal/theme"
)

const hudHeight = 2

// Game implements the rockfall game on top of the cave core.
type Game struct {
	cfg     core.RuntimeConfig
	world   *cave.World
	loadErr error

	paused bool

	offsetX int
	offsetY int
}

// Package-level collaborators injected by the platform before Reset.
var (
	activeTheme *theme.Theme
	logger      *log.Logger
)

// SetTheme sets the tile theme used by Render. Must be called with a
// validated theme before the first frame.
func SetTheme(t *theme.Theme) {
	activeTheme = t
}

// SetLogger sets the logger handed to new worlds.
func SetLogger(l *log.Logger) {
	logger = l
}

// New creates an unstarted game. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("rockfall", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "rockfall"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Rockfall"
}

// Reset decodes the configured cave and builds a fresh world.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.paused = false
	g.world = nil
	g.loadErr = nil

	decoded, err := cave.Decode(cfg.Cave, cfg.Difficulty)
	if err != nil {
		// Config validation should make this unreachable; surface it
		// instead of crashing the session.
		g.loadErr = err
		if logger != nil {
			logger.Error("cave decode failed", "cave", cfg.Cave, "difficulty", cfg.Difficulty, "err", err)
		}
		return
	}
	g.world = cave.NewWorld(decoded, logger)

	g.offsetX = (cfg.ScreenW - cave.Width) / 2
	if g.offsetX < 0 {
		g.offsetX = 0
	}
	g.offsetY = hudHeight
}

// Step advances the simulation by one physics tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.loadErr != nil {
		return core.StepResult{State: g.State()}
	}

	st := g.world.Status()
	if in.Has(core.ActionRestart) && (st.Dead || st.Cleared) {
		g.Reset(g.cfg)
		return core.StepResult{State: g.State(), Changed: true}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || st.Dead || st.Cleared {
		return core.StepResult{State: g.State()}
	}

	g.world.Step(in.Buttons.Direction())
	return core.StepResult{State: g.State(), Changed: true}
}

// Render draws the HUD, the playfield and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.loadErr != nil {
		g.renderOverlay(dst, "Cave failed to load", g.loadErr.Error())
		return
	}

	g.renderHUD(dst)
	g.renderField(dst)

	st := g.world.Status()
	switch {
	case st.Cleared:
		g.renderOverlay(dst, "Cave cleared!", fmt.Sprintf("Score: %d", st.Score))
	case st.Dead:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	st := g.world.Status()

	diamondColor := core.ColorCyan
	if st.ExitOpen {
		diamondColor = core.ColorWhite
	}
	hud := fmt.Sprintf(" Cave %d: %s", g.world.Info.ID, g.world.Info.Name)
	dst.DrawText(0, 0, hud, core.ColorYellow)

	right := fmt.Sprintf("%d/%d  $%d  %3ds ",
		st.Diamonds, st.DiamondsRequired, st.Score, st.TicksLeft/cave.TicksPerSecond)
	dst.DrawText(dst.W-len(right), 0, right, diamondColor)

	for x := 0; x < dst.W; x++ {
		dst.SetCell(x, 1, core.Cell{Rune: '─', Color: core.ColorGray})
	}
}

func (g *Game) renderField(dst *core.Screen) {
	for row := 0; row < g.world.Grid.H; row++ {
		for col := 0; col < g.world.Grid.W; col++ {
			obj := g.world.Grid.At(col, row)
			frame := 0
			if sp := g.world.SpriteAt(col, row); sp != nil {
				obj = sp.Obj
				frame = sp.Frame
			}
			dst.SetCell(g.offsetX+col, g.offsetY+row, activeTheme.Cell(obj, frame))
		}
	}
}

func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := core.Max(len(line1), len(line2)) + 4
	boxH := 5
	boxX := (dst.W - boxW) / 2
	boxY := (dst.H - boxH) / 2

	dst.Fill(boxX, boxY, boxW, boxH, core.Cell{Rune: ' ', Color: core.ColorDefault})
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)
	dst.DrawText(boxX+(boxW-len(line1))/2, boxY+1, line1, core.ColorYellow)
	dst.DrawText(boxX+(boxW-len(line2))/2, boxY+3, line2, core.ColorWhite)
}

// State returns the coarse session state.
func (g *Game) State() core.GameState {
	if g.loadErr != nil {
		return core.GameState{GameOver: true}
	}
	st := g.world.Status()
	return core.GameState{
		Score:    st.Score,
		GameOver: st.Dead || st.Cleared,
		Won:      st.Cleared,
		Paused:   g.paused,
	}
}

// World exposes the live world for the CLI decoder dump and tests.
func (g *Game) World() *cave.World {
	return g.world
}
