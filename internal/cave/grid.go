package cave

// Standard cave dimensions. Every built-in cave decodes to this size.
const (
	Width  = 40
	Height = 22
)

// Grid is the static background layer: a fixed-size rectangular array of
// object codes stored row-major (index = row*Width + col).
type Grid struct {
	W, H  int
	cells []Object
}

// NewGrid allocates a grid of the standard cave size with a steel-wall
// border and dirt interior.
func NewGrid() *Grid {
	g := &Grid{W: Width, H: Height, cells: make([]Object, Width*Height)}
	for row := 0; row < g.H; row++ {
		for col := 0; col < g.W; col++ {
			if g.IsBorder(col, row) {
				g.cells[row*g.W+col] = ObjSteelWall
			} else {
				g.cells[row*g.W+col] = ObjDirt
			}
		}
	}
	return g
}

// InBounds reports whether (col, row) lies on the grid.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.W && row >= 0 && row < g.H
}

// IsBorder reports whether (col, row) is a border cell. Border cells are
// always steel wall and are never consumable.
func (g *Grid) IsBorder(col, row int) bool {
	return row == 0 || row == g.H-1 || col == 0 || col == g.W-1
}

// At returns the object at (col, row). Out-of-bounds reads answer steel
// wall, which keeps every neighbor probe in the engine safely blocked.
func (g *Grid) At(col, row int) Object {
	if !g.InBounds(col, row) {
		return ObjSteelWall
	}
	return g.cells[row*g.W+col]
}

// Set writes the object at (col, row). Border cells are immutable.
func (g *Grid) Set(col, row int, o Object) {
	if !g.InBounds(col, row) || g.IsBorder(col, row) {
		return
	}
	g.cells[row*g.W+col] = o
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Object, len(g.cells))
	copy(cells, g.cells)
	return &Grid{W: g.W, H: g.H, cells: cells}
}

// Equal reports whether two grids hold identical cells.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}

// Statistics builds a histogram of object codes across the interior of the
// grid, excluding the border. Diagnostic only; the sum over all buckets
// plus the border cell count equals W*H.
func (g *Grid) Statistics() map[Object]int {
	stats := make(map[Object]int)
	for row := 1; row < g.H-1; row++ {
		for col := 1; col < g.W-1; col++ {
			stats[g.At(col, row)]++
		}
	}
	return stats
}
