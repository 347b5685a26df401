package cave

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// FallState tracks whether a fallable sprite is resting or in flight.
type FallState uint8

const (
	Resting FallState = iota
	Falling
)

// String returns "resting" or "falling".
func (s FallState) String() string {
	if s == Falling {
		return "falling"
	}
	return "resting"
}

// Direction is a player movement intent for one tick.
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirRight
	DirDown
	DirLeft
)

// Delta returns the (dcol, drow) offset of the direction.
func (d Direction) Delta() (dcol, drow int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	}
	return 0, 0
}

// String returns a lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	}
	return "none"
}

// Sprite is one live entity on the grid.
type Sprite struct {
	Col, Row int
	Obj      Object
	Caps     Capabilities
	State    FallState

	// Frame advances through [0, Caps.FrameCount) for animated sprites.
	// CyclesLeft counts remaining full animation cycles for
	// self-terminating animations; -1 means the sprite animates forever.
	Frame      int
	CyclesLeft int

	dead bool
}

// World is the live mutable game state: the background grid, the sprite
// list, and a dense coordinate index giving O(1) sprite-at lookups.
type World struct {
	Grid *Grid
	Info Info

	sprites []*Sprite
	index   []*Sprite // W*H, row-major

	tick      uint64
	diamonds  int
	score     int
	ticksLeft int
	exitOpen  bool
	cleared   bool
	dead      bool

	logger *log.Logger
}

// TicksPerSecond is the physics rate: one tick per 100 ms.
const TicksPerSecond = 10

// NewWorld expands a decoded cave into live state: exactly one sprite per
// non-space cell. Cells holding a code absent from the object table are
// logged and skipped, not fatal. A nil logger silences warnings.
func NewWorld(d *Decoded, logger *log.Logger) *World {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w := &World{
		Grid:      d.Grid,
		Info:      d.Info,
		index:     make([]*Sprite, d.Grid.W*d.Grid.H),
		ticksLeft: d.Info.TimeSeconds * TicksPerSecond,
		logger:    logger,
	}
	for row := 0; row < w.Grid.H; row++ {
		for col := 0; col < w.Grid.W; col++ {
			obj := w.Grid.At(col, row)
			if obj == ObjSpace {
				continue
			}
			caps, ok := Caps(obj)
			if !ok {
				logger.Warn("skipping unknown object code during expansion",
					"code", fmt.Sprintf("0x%02X", uint8(obj)), "col", col, "row", row)
				w.Grid.Set(col, row, ObjSpace)
				continue
			}
			w.spawn(col, row, obj, caps)
		}
	}
	return w
}

// spawn creates a sprite at an empty cell. Two sprites on one coordinate
// is an internal invariant violation, not a recoverable condition.
func (w *World) spawn(col, row int, obj Object, caps Capabilities) *Sprite {
	if cur := w.SpriteAt(col, row); cur != nil {
		panic(fmt.Sprintf("cave: sprite exclusivity violated at (%d,%d): %s over %s", col, row, obj, cur.Obj))
	}
	cycles := -1
	if caps.PortalCycles > 0 {
		cycles = caps.PortalCycles
	}
	if isExplosion(obj) {
		cycles = 1
	}
	s := &Sprite{Col: col, Row: row, Obj: obj, Caps: caps, CyclesLeft: cycles}
	w.sprites = append(w.sprites, s)
	w.index[row*w.Grid.W+col] = s
	w.Grid.Set(col, row, obj)
	return s
}

// SpriteAt returns the sprite occupying (col, row), or nil.
func (w *World) SpriteAt(col, row int) *Sprite {
	if !w.Grid.InBounds(col, row) {
		return nil
	}
	return w.index[row*w.Grid.W+col]
}

// isEmpty reports whether a cell holds neither a sprite nor a wall.
// Out-of-bounds cells are never empty.
func (w *World) isEmpty(col, row int) bool {
	return w.Grid.InBounds(col, row) &&
		w.Grid.At(col, row) == ObjSpace &&
		w.SpriteAt(col, row) == nil
}

// move relocates a sprite, keeping grid and index in sync. The target
// must be empty.
func (w *World) move(s *Sprite, col, row int) {
	if cur := w.SpriteAt(col, row); cur != nil && cur != s {
		panic(fmt.Sprintf("cave: sprite exclusivity violated at (%d,%d): moving %s over %s", col, row, s.Obj, cur.Obj))
	}
	w.index[s.Row*w.Grid.W+s.Col] = nil
	w.Grid.Set(s.Col, s.Row, ObjSpace)
	s.Col, s.Row = col, row
	w.index[row*w.Grid.W+col] = s
	w.Grid.Set(col, row, s.Obj)
}

// remove destroys a sprite and clears its cell.
func (w *World) remove(s *Sprite) {
	if s.dead {
		return
	}
	s.dead = true
	w.index[s.Row*w.Grid.W+s.Col] = nil
	w.Grid.Set(s.Col, s.Row, ObjSpace)
}

// compact drops dead sprites from the list. Called once per tick.
func (w *World) compact() {
	live := w.sprites[:0]
	for _, s := range w.sprites {
		if !s.dead {
			live = append(live, s)
		}
	}
	w.sprites = live
}

// Sprites returns the live sprite list. The slice is owned by the world;
// callers must not mutate it.
func (w *World) Sprites() []*Sprite {
	return w.sprites
}

// findObj returns the first live sprite with the given object code.
func (w *World) findObj(obj Object) *Sprite {
	for _, s := range w.sprites {
		if !s.dead && s.Obj == obj {
			return s
		}
	}
	return nil
}

// Player returns the player sprite, or nil before portal entry or after
// death.
func (w *World) Player() *Sprite {
	return w.findObj(ObjPlayer)
}

// Status is a read-only summary of the run for HUDs and tests.
type Status struct {
	Tick             uint64
	Diamonds         int
	DiamondsRequired int
	Score            int
	TicksLeft        int
	ExitOpen         bool
	Cleared          bool
	Dead             bool
	PortalPending    bool
}

// Status reports the current run state.
func (w *World) Status() Status {
	return Status{
		Tick:             w.tick,
		Diamonds:         w.diamonds,
		DiamondsRequired: w.Info.DiamondsRequired,
		Score:            w.score,
		TicksLeft:        w.ticksLeft,
		ExitOpen:         w.exitOpen,
		Cleared:          w.cleared,
		Dead:             w.dead,
		PortalPending:    w.findObj(ObjInBox) != nil,
	}
}

func isExplosion(o Object) bool {
	return (o >= ObjExplodeToSpace1 && o <= ObjExplodeToSpace5) ||
		(o >= ObjExplodeToDiamond1 && o <= ObjExplodeToDiamond5)
}
