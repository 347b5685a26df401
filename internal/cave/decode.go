package cave

import (
	"errors"
	"fmt"
)

// Decode failure modes. Out-of-range identifiers fail before any work;
// a malformed stream fails the whole decode, no partial grid escapes.
var (
	ErrInvalidCaveID     = errors.New("cave: invalid cave identifier")
	ErrInvalidDifficulty = errors.New("cave: difficulty must be in 1..5")
	ErrMalformedCave     = errors.New("cave: malformed cave data")
)

// Info carries the header scalar fields of a decoded cave.
type Info struct {
	ID               int
	Name             string
	DiamondsRequired int // diamonds needed to open the out-box
	TimeSeconds      int
	DiamondValue     int // points per diamond at the chosen difficulty
	Difficulty       int
}

// Decoded is the result of a successful cave decode.
type Decoded struct {
	Info Info
	Grid *Grid
}

// Compass is one of the eight drawing directions used by line
// instructions, numbered clockwise from up.
type Compass uint8

const (
	CompassUp Compass = iota
	CompassUpRight
	CompassRight
	CompassDownRight
	CompassDown
	CompassDownLeft
	CompassLeft
	CompassUpLeft
)

// compassDeltas maps a Compass to its (dcol, drow) step.
var compassDeltas = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// Delta returns the per-step column and row offsets.
func (c Compass) Delta() (dcol, drow int) {
	d := compassDeltas[c&7]
	return d[0], d[1]
}

// Instruction is one decoded drawing command. The opcode byte carries the
// kind in its top two bits and the object code in the low six; each kind
// has an exact field set.
type Instruction interface {
	apply(g *Grid) error
}

// Place writes a single object at one cell. Wire size 3 bytes.
type Place struct {
	Obj      Object
	Col, Row int
}

// Line draws Length cells stepping in a compass direction. Wire size 5.
type Line struct {
	Obj      Object
	Col, Row int
	Length   int
	Dir      Compass
}

// Rect draws a Width*Height rectangle: border cells get Obj, interior
// cells get Fill. Wire size 6 bytes.
type Rect struct {
	Obj, Fill Object
	Col, Row  int
	W, H      int
}

// SolidRect draws a Width*Height rectangle filled entirely with Obj.
// Wire size 5 bytes.
type SolidRect struct {
	Obj      Object
	Col, Row int
	W, H     int
}

func (p Place) apply(g *Grid) error {
	if !g.InBounds(p.Col, p.Row) {
		return fmt.Errorf("%w: place %s at (%d,%d) out of bounds", ErrMalformedCave, p.Obj, p.Col, p.Row)
	}
	g.Set(p.Col, p.Row, p.Obj)
	return nil
}

func (l Line) apply(g *Grid) error {
	dcol, drow := l.Dir.Delta()
	col, row := l.Col, l.Row
	for i := 0; i < l.Length; i++ {
		if !g.InBounds(col, row) {
			return fmt.Errorf("%w: line %s runs out of bounds at (%d,%d)", ErrMalformedCave, l.Obj, col, row)
		}
		g.Set(col, row, l.Obj)
		col += dcol
		row += drow
	}
	return nil
}

func (r Rect) apply(g *Grid) error {
	if !g.InBounds(r.Col, r.Row) || !g.InBounds(r.Col+r.W-1, r.Row+r.H-1) {
		return fmt.Errorf("%w: rect %s at (%d,%d) %dx%d out of bounds", ErrMalformedCave, r.Obj, r.Col, r.Row, r.W, r.H)
	}
	for row := r.Row; row < r.Row+r.H; row++ {
		for col := r.Col; col < r.Col+r.W; col++ {
			onEdge := row == r.Row || row == r.Row+r.H-1 || col == r.Col || col == r.Col+r.W-1
			if onEdge {
				g.Set(col, row, r.Obj)
			} else {
				g.Set(col, row, r.Fill)
			}
		}
	}
	return nil
}

func (r SolidRect) apply(g *Grid) error {
	if !g.InBounds(r.Col, r.Row) || !g.InBounds(r.Col+r.W-1, r.Row+r.H-1) {
		return fmt.Errorf("%w: solid rect %s at (%d,%d) %dx%d out of bounds", ErrMalformedCave, r.Obj, r.Col, r.Row, r.W, r.H)
	}
	for row := r.Row; row < r.Row+r.H; row++ {
		for col := r.Col; col < r.Col+r.W; col++ {
			g.Set(col, row, r.Obj)
		}
	}
	return nil
}

// sentinel terminates the instruction stream.
const sentinel = 0xFF

// instrSize is the wire size in bytes of each instruction kind.
var instrSize = [4]int{3, 5, 6, 5}

// rowBias compensates for the two score-display rows reserved at the top
// of the original coordinate space: stored row bytes are actual row + 2.
const rowBias = 2

// Decode reconstructs the full level grid for a 1-based cave identifier
// and a difficulty in 1..5. Decoding is a pure function of its inputs.
func Decode(caveID, difficulty int) (*Decoded, error) {
	if caveID < 1 || caveID > len(builtinCaves) {
		return nil, fmt.Errorf("%w: %d (have %d caves)", ErrInvalidCaveID, caveID, len(builtinCaves))
	}
	def := builtinCaves[caveID-1]
	d, err := DecodeBytes(def.data, difficulty)
	if err != nil {
		return nil, fmt.Errorf("cave %d (%s): %w", caveID, def.name, err)
	}
	d.Info.ID = caveID
	d.Info.Name = def.name
	return d, nil
}

// DecodeBytes decodes a raw cave description. Exposed so tests and the
// decode CLI can feed hand-built byte sequences.
func DecodeBytes(data []byte, difficulty int) (*Decoded, error) {
	if difficulty < 1 || difficulty > 5 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDifficulty, difficulty)
	}
	if len(data) < headerLen+1 {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the %d-byte header", ErrMalformedCave, len(data), headerLen)
	}

	info := Info{
		DiamondsRequired: int(data[offDiamondsMin]),
		TimeSeconds:      int(data[offTime]),
		DiamondValue:     int(data[offDiamondVals+difficulty-1]),
		Difficulty:       difficulty,
	}

	g := NewGrid()
	randomFill(g, data, difficulty)

	instrs, err := parseInstructions(data[offInstructions:])
	if err != nil {
		return nil, err
	}
	for _, in := range instrs {
		if err := in.apply(g); err != nil {
			return nil, err
		}
	}
	return &Decoded{Info: info, Grid: g}, nil
}

// randomFill assigns every interior cell from a PRNG draw compared against
// the header's cumulative probability bounds. The comparisons run in
// strict cumulative order: the first bound exceeding the draw wins, and
// dirt is the fallback when the draw clears all four. Reordering them
// would change the fill bias.
func randomFill(g *Grid, data []byte, difficulty int) {
	rng := NewRNG(uint32(data[offSeeds+difficulty-1]))
	for row := 1; row < g.H-1; row++ {
		for col := 1; col < g.W-1; col++ {
			v := int(rng.NextByte())
			obj := ObjDirt
			bound := 0
			for i := 0; i < 4; i++ {
				bound += int(data[offThresholds+i])
				if v < bound {
					obj = Object(data[offRandomObjs+i])
					break
				}
			}
			g.Set(col, row, obj)
		}
	}
}

// parseInstructions decodes the byte stream into typed instructions. The
// stream must end with the 0xFF sentinel before the data runs out.
func parseInstructions(stream []byte) ([]Instruction, error) {
	var out []Instruction
	i := 0
	for {
		if i >= len(stream) {
			return nil, fmt.Errorf("%w: instruction stream ended without sentinel", ErrMalformedCave)
		}
		op := stream[i]
		if op == sentinel {
			return out, nil
		}

		kind := op >> 6
		obj := Object(op & 0x3F)
		need := instrSize[kind]
		if i+need > len(stream) {
			return nil, fmt.Errorf("%w: truncated instruction (kind %d) at offset %d", ErrMalformedCave, kind, i)
		}
		col := int(stream[i+1])
		row := int(stream[i+2]) - rowBias

		switch kind {
		case 0:
			out = append(out, Place{Obj: obj, Col: col, Row: row})
		case 1:
			out = append(out, Line{
				Obj: obj, Col: col, Row: row,
				Length: int(stream[i+3]),
				Dir:    Compass(stream[i+4] & 7),
			})
		case 2:
			out = append(out, Rect{
				Obj: obj, Col: col, Row: row,
				W: int(stream[i+3]), H: int(stream[i+4]),
				Fill: Object(stream[i+5]),
			})
		case 3:
			out = append(out, SolidRect{
				Obj: obj, Col: col, Row: row,
				W: int(stream[i+3]), H: int(stream[i+4]),
			})
		}
		i += need
	}
}
