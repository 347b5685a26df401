package cave

import "testing"

func TestNewGridBorderAndInterior(t *testing.T) {
	g := NewGrid()
	for row := 0; row < g.H; row++ {
		for col := 0; col < g.W; col++ {
			want := ObjDirt
			if g.IsBorder(col, row) {
				want = ObjSteelWall
			}
			if got := g.At(col, row); got != want {
				t.Fatalf("cell (%d,%d) = %s, want %s", col, row, got, want)
			}
		}
	}
}

func TestGridBorderIsImmutable(t *testing.T) {
	g := NewGrid()
	g.Set(0, 0, ObjDiamond)
	g.Set(5, 0, ObjDiamond)
	g.Set(0, 5, ObjDiamond)
	g.Set(Width-1, Height-1, ObjDiamond)
	for _, pos := range [][2]int{{0, 0}, {5, 0}, {0, 5}, {Width - 1, Height - 1}} {
		if got := g.At(pos[0], pos[1]); got != ObjSteelWall {
			t.Errorf("border cell (%d,%d) = %s after Set, want steel wall", pos[0], pos[1], got)
		}
	}
}

func TestGridOutOfBoundsReadsSteel(t *testing.T) {
	g := NewGrid()
	for _, pos := range [][2]int{{-1, 5}, {Width, 5}, {5, -1}, {5, Height}} {
		if got := g.At(pos[0], pos[1]); got != ObjSteelWall {
			t.Errorf("out-of-bounds At(%d,%d) = %s, want steel wall", pos[0], pos[1], got)
		}
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := NewGrid()
	g.Set(5, 5, ObjDiamond)
	c := g.Clone()
	if !g.Equal(c) {
		t.Fatal("clone should equal the original")
	}
	c.Set(6, 6, ObjBoulder)
	if g.At(6, 6) == ObjBoulder {
		t.Fatal("mutating the clone leaked into the original")
	}
	if g.Equal(c) {
		t.Fatal("grids should differ after divergent mutation")
	}
}

func TestStatisticsExcludesBorder(t *testing.T) {
	g := NewGrid()
	stats := g.Statistics()
	if stats[ObjSteelWall] != 0 {
		t.Errorf("interior steel count = %d, want 0 on a fresh grid", stats[ObjSteelWall])
	}
	if stats[ObjDirt] != (Width-2)*(Height-2) {
		t.Errorf("dirt count = %d, want %d", stats[ObjDirt], (Width-2)*(Height-2))
	}
}
