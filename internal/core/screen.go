package core

import "strings"

// Cell is a single screen cell: a rune plus its palette color.
type Cell struct {
	Rune  rune
	Color Color
}

// Screen is a fixed-size cell buffer the game draws into each frame.
// The platform layer turns it into styled terminal output.
type Screen struct {
	W, H  int
	cells []Cell
}

// NewScreen creates a blank screen of the given size.
func NewScreen(w, h int) *Screen {
	s := &Screen{W: w, H: h, cells: make([]Cell, w*h)}
	s.Clear()
	return s
}

// Clear resets every cell to a default-colored space.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = Cell{Rune: ' ', Color: ColorDefault}
	}
}

// InBounds reports whether (x, y) lies on the screen.
func (s *Screen) InBounds(x, y int) bool {
	return x >= 0 && x < s.W && y >= 0 && y < s.H
}

// Set writes a default-colored rune. Out-of-bounds writes are ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, Cell{Rune: r, Color: ColorDefault})
}

// SetCell writes a cell. Out-of-bounds writes are ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if !s.InBounds(x, y) {
		return
	}
	s.cells[y*s.W+x] = c
}

// Get returns the rune at (x, y), or space when out of bounds.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at (x, y), or a blank cell when out of bounds.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.InBounds(x, y) {
		return Cell{Rune: ' ', Color: ColorDefault}
	}
	return s.cells[y*s.W+x]
}

// DrawText writes a string starting at (x, y), clipped to the screen.
func (s *Screen) DrawText(x, y int, text string, color Color) {
	for i, r := range text {
		s.SetCell(x+i, y, Cell{Rune: r, Color: color})
	}
}

// DrawBox draws a single-line box with the given corners.
func (s *Screen) DrawBox(x, y, w, h int, color Color) {
	if w < 2 || h < 2 {
		return
	}
	for cx := x + 1; cx < x+w-1; cx++ {
		s.SetCell(cx, y, Cell{Rune: '─', Color: color})
		s.SetCell(cx, y+h-1, Cell{Rune: '─', Color: color})
	}
	for cy := y + 1; cy < y+h-1; cy++ {
		s.SetCell(x, cy, Cell{Rune: '│', Color: color})
		s.SetCell(x+w-1, cy, Cell{Rune: '│', Color: color})
	}
	s.SetCell(x, y, Cell{Rune: '┌', Color: color})
	s.SetCell(x+w-1, y, Cell{Rune: '┐', Color: color})
	s.SetCell(x, y+h-1, Cell{Rune: '└', Color: color})
	s.SetCell(x+w-1, y+h-1, Cell{Rune: '┘', Color: color})
}

// Fill sets every cell in the rectangle to the given cell, clipped.
func (s *Screen) Fill(x, y, w, h int, c Cell) {
	for cy := y; cy < y+h; cy++ {
		for cx := x; cx < x+w; cx++ {
			s.SetCell(cx, cy, c)
		}
	}
}

// String renders the buffer as plain text, one line per row, without
// colors. Used by tests.
func (s *Screen) String() string {
	var b strings.Builder
	b.Grow((s.W + 1) * s.H)
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			b.WriteRune(s.cells[y*s.W+x].Rune)
		}
		if y < s.H-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
